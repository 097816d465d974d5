// Command notifyme demonstrates back-in-stock notifications.
//
// By default it replays the embedded restock scenario: two users subscribe,
// the product goes out of stock, a third user subscribes, and the product
// comes back in stock, notifying all three.
//
// Usage:
//
//	go run ./cmd/notifyme
//	go run ./cmd/notifyme -scenario my-scenario.yaml -event-log restock.nlog
//	go run ./cmd/notifyme -interactive -product "Steam Deck"
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/patternkit/patternkit-go/cmd/notifyme/interactive"
	"github.com/patternkit/patternkit-go/internal/scenario"
	eventlog "github.com/patternkit/patternkit-go/pkg/log"
	"github.com/patternkit/patternkit-go/pkg/stock"
)

// Config holds command configuration.
type Config struct {
	ScenarioFile string
	Product      string
	EventLog     string
	LogLevel     string
	Interactive  bool
}

var config Config

func init() {
	flag.StringVar(&config.ScenarioFile, "scenario", "", "Scenario YAML file (default: embedded "+scenario.DefaultName+" scenario)")
	flag.StringVar(&config.Product, "product", "", "Product name (overrides the scenario's product)")
	flag.StringVar(&config.EventLog, "event-log", "", "Write registry events to this file (CBOR, readable with notify-log)")
	flag.StringVar(&config.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flag.BoolVar(&config.Interactive, "interactive", false, "Start an interactive shell instead of running a scenario")
}

func main() {
	flag.Parse()

	setupLogging(config.LogLevel)

	if err := run(); err != nil {
		log.Fatalf("notifyme: %v", err)
	}
}

func run() error {
	var loggers []eventlog.Logger
	if config.EventLog != "" {
		fileLogger, err := eventlog.NewFileLogger(config.EventLog)
		if err != nil {
			return fmt.Errorf("failed to create event log: %w", err)
		}
		defer func() {
			if err := fileLogger.Close(); err != nil {
				log.Printf("Error closing event log: %v", err)
				return
			}
			log.Printf("Wrote %d events to %s", fileLogger.Written(), fileLogger.Path())
		}()
		loggers = append(loggers, fileLogger)
	}
	if config.LogLevel == "debug" {
		loggers = append(loggers, eventlog.NewSlogAdapter(slog.Default()))
	}

	productConfig := stock.DefaultConfig()
	if len(loggers) > 0 {
		productConfig.Logger = eventlog.NewMultiLogger(loggers...)
	}

	if config.Interactive {
		return runInteractive(productConfig)
	}
	return runScenario(productConfig)
}

func setupLogging(level string) {
	log.SetFlags(log.Ltime | log.Lmicroseconds)

	switch level {
	case "debug":
		log.SetFlags(log.Ltime | log.Lmicroseconds | log.Lshortfile)
		slog.SetLogLoggerLevel(slog.LevelDebug)
	case "warn", "error":
		log.SetFlags(log.Ltime)
	}
}

func loadScenario() (*scenario.Scenario, error) {
	if config.ScenarioFile == "" {
		return scenario.Default()
	}
	return scenario.Load(config.ScenarioFile)
}

func runScenario(productConfig stock.Config) error {
	sc, err := loadScenario()
	if err != nil {
		return err
	}

	name := sc.Product
	if config.Product != "" {
		name = config.Product
	}

	productConfig.Logger = eventlog.NewMultiLogger(eventlog.NewConsoleLogger(os.Stdout), productConfig.Logger)
	product := stock.NewProductWithConfig(name, productConfig)

	result, err := sc.Run(product, os.Stdout)
	if err != nil {
		return err
	}

	if config.LogLevel == "debug" {
		log.Printf("Ran %d steps on %s (%s), %d notification(s) delivered",
			len(result.Steps), product.Name(), product.ID(), result.Notifications)
	}
	return nil
}

func runInteractive(productConfig stock.Config) error {
	name := config.Product
	if name == "" {
		name = "PlayStation 5"
	}

	shell, err := interactive.New(name, productConfig)
	if err != nil {
		return err
	}
	log.SetOutput(shell.Stdout())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(shell.Stdout(), "Watching %s (%s)\n", shell.Product().Name(), shell.Product().ID())
	shell.Run(ctx)
	return nil
}
