package pricing

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed menus/*.yaml
var menuFS embed.FS

// DefaultMenu is the name of the embedded menu used when none is given.
const DefaultMenu = "classic"

// Menu lookup errors.
var (
	ErrUnknownBase     = errors.New("unknown base")
	ErrUnknownModifier = errors.New("unknown modifier")
	ErrInvalidMenu     = errors.New("invalid menu")
)

// Menu declares the bases and modifier kinds available for building items.
type Menu struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Bases       []BaseSpec     `yaml:"bases"`
	Modifiers   []ModifierSpec `yaml:"modifiers"`
}

// BaseSpec is a base item entry.
type BaseSpec struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
	Price Price  `yaml:"price"`
}

// ModifierSpec is a modifier kind entry.
type ModifierSpec struct {
	ID        string `yaml:"id"`
	Suffix    string `yaml:"suffix"`
	Increment Price  `yaml:"increment"`
}

// MenuError provides details about a menu that failed to load or validate.
type MenuError struct {
	// Source is the menu name or file path.
	Source string

	// Message describes the error.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

func (e *MenuError) Error() string {
	msg := e.Source + ": " + e.Message
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *MenuError) Unwrap() error {
	return e.Cause
}

// ---------------------------------------------------------------------------
// Loading
// ---------------------------------------------------------------------------

var (
	cacheMu sync.RWMutex
	cache   = make(map[string]*Menu)
)

// ParseMenu parses and validates a menu from YAML bytes.
func ParseMenu(data []byte) (*Menu, error) {
	var m Menu
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, &MenuError{Source: "menu", Message: "failed to parse YAML", Cause: err}
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// LoadMenu loads an embedded menu by name (e.g. "classic").
func LoadMenu(name string) (*Menu, error) {
	cacheMu.RLock()
	if m, ok := cache[name]; ok {
		cacheMu.RUnlock()
		return m, nil
	}
	cacheMu.RUnlock()

	data, err := menuFS.ReadFile("menus/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("menu %q not found: %w", name, err)
	}

	m, err := ParseMenu(data)
	if err != nil {
		var me *MenuError
		if errors.As(err, &me) {
			me.Source = name
		}
		return nil, err
	}

	cacheMu.Lock()
	cache[name] = m
	cacheMu.Unlock()

	return m, nil
}

// LoadMenuFile loads a menu from a YAML file.
func LoadMenuFile(path string) (*Menu, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &MenuError{Source: path, Message: "failed to read file", Cause: err}
	}

	m, err := ParseMenu(data)
	if err != nil {
		var me *MenuError
		if errors.As(err, &me) {
			me.Source = path
		}
		return nil, err
	}
	return m, nil
}

// AvailableMenus returns the names of all embedded menus.
func AvailableMenus() ([]string, error) {
	entries, err := menuFS.ReadDir("menus")
	if err != nil {
		return nil, fmt.Errorf("reading menus directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		name := e.Name()
		if strings.HasSuffix(name, ".yaml") {
			names = append(names, strings.TrimSuffix(name, ".yaml"))
		}
	}
	sort.Strings(names)
	return names, nil
}

// ---------------------------------------------------------------------------
// Validation and lookup
// ---------------------------------------------------------------------------

// Validate checks IDs are present and unique, labels are set and no price is negative.
func (m *Menu) Validate() error {
	source := m.Name
	if source == "" {
		source = "menu"
	}
	invalid := func(format string, args ...any) error {
		return &MenuError{Source: source, Message: fmt.Sprintf(format, args...), Cause: ErrInvalidMenu}
	}

	if len(m.Bases) == 0 {
		return invalid("no bases defined")
	}

	seen := make(map[string]bool)
	for i, b := range m.Bases {
		if b.ID == "" {
			return invalid("base %d has no id", i)
		}
		if seen[b.ID] {
			return invalid("duplicate base id %q", b.ID)
		}
		seen[b.ID] = true
		if b.Label == "" {
			return invalid("base %q has no label", b.ID)
		}
		if b.Price < 0 {
			return invalid("base %q has negative price %s", b.ID, b.Price)
		}
	}

	seen = make(map[string]bool)
	for i, mod := range m.Modifiers {
		if mod.ID == "" {
			return invalid("modifier %d has no id", i)
		}
		if seen[mod.ID] {
			return invalid("duplicate modifier id %q", mod.ID)
		}
		seen[mod.ID] = true
		if mod.Suffix == "" {
			return invalid("modifier %q has no suffix", mod.ID)
		}
		if mod.Increment < 0 {
			return invalid("modifier %q has negative increment %s", mod.ID, mod.Increment)
		}
	}

	return nil
}

// Base returns a new base item for the given ID.
func (m *Menu) Base(id string) (*BaseItem, error) {
	for _, b := range m.Bases {
		if b.ID == id {
			return NewBaseItem(b.Label, b.Price), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBase, id)
}

// Kind returns the modifier kind for the given ID.
func (m *Menu) Kind(id string) (ModifierKind, error) {
	for _, mod := range m.Modifiers {
		if mod.ID == id {
			return ModifierKind{Name: mod.Suffix, Increment: mod.Increment}, nil
		}
	}
	return ModifierKind{}, fmt.Errorf("%w: %q", ErrUnknownModifier, id)
}

// Build creates the base item and wraps it with each modifier in order.
func (m *Menu) Build(baseID string, modifierIDs ...string) (Item, error) {
	base, err := m.Base(baseID)
	if err != nil {
		return nil, err
	}

	var item Item = base
	for _, id := range modifierIDs {
		kind, err := m.Kind(id)
		if err != nil {
			return nil, err
		}
		if item, err = NewModifier(item, kind); err != nil {
			return nil, err
		}
	}
	return item, nil
}

// BaseIDs returns the base IDs in declaration order.
func (m *Menu) BaseIDs() []string {
	ids := make([]string, len(m.Bases))
	for i, b := range m.Bases {
		ids[i] = b.ID
	}
	return ids
}

// ModifierIDs returns the modifier IDs in declaration order.
func (m *Menu) ModifierIDs() []string {
	ids := make([]string, len(m.Modifiers))
	for i, mod := range m.Modifiers {
		ids[i] = mod.ID
	}
	return ids
}
