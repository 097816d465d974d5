// Package interactive provides the interactive command-line interface
// for notifyme.
package interactive

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/patternkit/patternkit-go/pkg/log"
	"github.com/patternkit/patternkit-go/pkg/stock"
)

// Shell drives a single product from typed commands.
type Shell struct {
	product *stock.Product
	users   map[string]*stock.User
	out     io.Writer
	rl      *readline.Instance
}

// New creates a shell for a new product. Console lines and user
// notifications are written through the readline output; config.Logger, if
// set, receives every event as well.
func New(productName string, config stock.Config) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "notifyme> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    completer,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	s := newShell(productName, config, rl.Stdout())
	s.rl = rl
	return s, nil
}

func newShell(productName string, config stock.Config, out io.Writer) *Shell {
	config.Logger = log.NewMultiLogger(log.NewConsoleLogger(out), config.Logger)
	return &Shell{
		product: stock.NewProductWithConfig(productName, config),
		users:   make(map[string]*stock.User),
		out:     out,
	}
}

var completer = readline.NewPrefixCompleter(
	readline.PcItem("sub"),
	readline.PcItem("unsub"),
	readline.PcItem("stock",
		readline.PcItem("in"),
		readline.PcItem("out"),
	),
	readline.PcItem("notify"),
	readline.PcItem("list"),
	readline.PcItem("inbox"),
	readline.PcItem("status"),
	readline.PcItem("help"),
	readline.PcItem("quit"),
)

// Product returns the product driven by the shell.
func (s *Shell) Product() *stock.Product {
	return s.product
}

// Stdout returns a writer that properly coordinates with the readline input.
func (s *Shell) Stdout() io.Writer {
	return s.out
}

// Run starts the interactive command loop. It returns when the user quits,
// input ends, or ctx is cancelled.
func (s *Shell) Run(ctx context.Context) {
	defer s.rl.Close()

	s.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := s.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.out, "Exiting...")
			return
		}

		if !s.Execute(line) {
			return
		}
	}
}

// Execute runs one command line. It returns false when the shell should exit.
func (s *Shell) Execute(line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return true
	}

	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		s.printHelp()

	case "sub", "register":
		s.cmdRegister(args)

	case "unsub", "deregister":
		s.cmdDeregister(args)

	case "stock":
		s.cmdStock(args)

	case "notify", "n":
		s.product.NotifyAll()

	case "list", "ls":
		s.cmdList()

	case "inbox":
		s.cmdInbox(args)

	case "status":
		s.cmdStatus()

	case "quit", "exit", "q":
		fmt.Fprintln(s.out, "Exiting...")
		return false

	default:
		fmt.Fprintf(s.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}

	return true
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, `
Restock Commands:
  Subscriptions:
    sub <name>...      - Subscribe users (created on first use)
    unsub <name>...    - Unsubscribe users
    list               - List subscribers in notification order
    inbox <name>       - Show notifications a user has received

  Stock:
    stock in|out       - Set availability (in notifies all subscribers)
    notify             - Notify all subscribers now
    status             - Show product status

  General:
    help               - Show this help
    quit               - Exit`)
}

// user returns the named user, creating it on first use.
func (s *Shell) user(name string) *stock.User {
	u, ok := s.users[name]
	if !ok {
		u = stock.NewUser(name, s.out)
		s.users[name] = u
	}
	return u
}

func (s *Shell) cmdRegister(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.out, "Usage: sub <name>...")
		return
	}
	for _, name := range args {
		if !s.product.Register(s.user(name)) {
			fmt.Fprintf(s.out, "%s is already subscribed\n", name)
		}
	}
}

func (s *Shell) cmdDeregister(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.out, "Usage: unsub <name>...")
		return
	}
	for _, name := range args {
		u, ok := s.users[name]
		if !ok || !s.product.Deregister(u) {
			fmt.Fprintf(s.out, "%s is not subscribed\n", name)
		}
	}
}

func (s *Shell) cmdStock(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: stock in|out")
		return
	}
	switch strings.ToLower(args[0]) {
	case "in", "true", "on":
		s.product.SetAvailability(true)
	case "out", "false", "off":
		s.product.SetAvailability(false)
	default:
		fmt.Fprintf(s.out, "Invalid stock state: %s (use in or out)\n", args[0])
	}
}

func (s *Shell) cmdList() {
	subs := s.product.Subscribers()
	if len(subs) == 0 {
		fmt.Fprintln(s.out, "No subscribers")
		return
	}
	for i, sub := range subs {
		fmt.Fprintf(s.out, "  %d. %s\n", i+1, sub.Name())
	}
}

func (s *Shell) cmdInbox(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: inbox <name>")
		return
	}
	u, ok := s.users[args[0]]
	if !ok {
		fmt.Fprintf(s.out, "Unknown user: %s\n", args[0])
		return
	}
	received := u.Received()
	fmt.Fprintf(s.out, "%s has %d notification(s)\n", u.Name(), len(received))
	for _, product := range received {
		fmt.Fprintf(s.out, "  %s\n", product)
	}
}

func (s *Shell) cmdStatus() {
	state := "out of stock"
	if s.product.Available() {
		state = "in stock"
	}
	fmt.Fprintf(s.out, "Product:     %s\n", s.product.Name())
	fmt.Fprintf(s.out, "ID:          %s\n", s.product.ID())
	fmt.Fprintf(s.out, "State:       %s\n", state)
	fmt.Fprintf(s.out, "Subscribers: %d\n", s.product.Len())
}
