// Command pizza-example builds a pizza from a menu and prints its price as
// each topping is added.
//
// Usage:
//
//	go run ./cmd/pizza-example
//	go run ./cmd/pizza-example -toppings olives,cheese
//	go run ./cmd/pizza-example -menu my-menu.yaml -base large
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/patternkit/patternkit-go/pkg/pricing"
)

func main() {
	menuPath := flag.String("menu", "", "Menu YAML file (default: embedded "+pricing.DefaultMenu+" menu)")
	base := flag.String("base", "plain", "Base item ID")
	toppings := flag.String("toppings", "olives,mushrooms,cheese", "Comma-separated modifier IDs, applied in order")
	list := flag.Bool("list", false, "List menu entries and exit")
	flag.Parse()

	log.SetFlags(log.Ltime | log.Lmicroseconds)

	menu, err := loadMenu(*menuPath)
	if err != nil {
		log.Fatalf("Failed to load menu: %v", err)
	}

	if *list {
		printMenu(os.Stdout, menu)
		return
	}

	item, err := menu.Build(*base, splitIDs(*toppings)...)
	if err != nil {
		log.Fatalf("Failed to build item: %v", err)
	}

	printReceipt(os.Stdout, item)
}

func loadMenu(path string) (*pricing.Menu, error) {
	if path == "" {
		return pricing.LoadMenu(pricing.DefaultMenu)
	}
	return pricing.LoadMenuFile(path)
}

// splitIDs splits a comma-separated list, dropping empty entries.
func splitIDs(s string) []string {
	var ids []string
	for _, id := range strings.Split(s, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// printReceipt writes one line per layer, base first.
func printReceipt(w io.Writer, item pricing.Item) {
	for _, layer := range pricing.Layers(item) {
		fmt.Fprintf(w, "%s | Cost: $%s\n", layer.Describe(), layer.Cost())
	}
}

func printMenu(w io.Writer, menu *pricing.Menu) {
	fmt.Fprintf(w, "Menu: %s\n", menu.Name)
	if menu.Description != "" {
		fmt.Fprintf(w, "  %s\n", menu.Description)
	}
	fmt.Fprintln(w, "Bases:")
	for _, b := range menu.Bases {
		fmt.Fprintf(w, "  %-12s %-20s $%s\n", b.ID, b.Label, b.Price)
	}
	fmt.Fprintln(w, "Modifiers:")
	for _, m := range menu.Modifiers {
		fmt.Fprintf(w, "  %-12s %-20s +$%s\n", m.ID, m.Suffix, m.Increment)
	}
}
