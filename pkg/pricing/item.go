package pricing

import "errors"

// Chain construction errors.
var (
	ErrNilItem           = errors.New("wrapped item is nil")
	ErrNegativeIncrement = errors.New("modifier increment is negative")
)

// Item is anything with a description and a cost.
type Item interface {
	// Describe returns the fully composed description.
	Describe() string

	// Cost returns the fully composed price.
	Cost() Price
}

// BaseItem is the innermost item of a chain.
type BaseItem struct {
	label string
	price Price
}

// NewBaseItem creates a leaf item.
func NewBaseItem(label string, price Price) *BaseItem {
	return &BaseItem{label: label, price: price}
}

// Describe returns the item's label.
func (b *BaseItem) Describe() string {
	return b.label
}

// Cost returns the item's base price.
func (b *BaseItem) Cost() Price {
	return b.price
}

// ModifierKind describes one kind of modifier: the suffix it appends and the
// amount it adds.
type ModifierKind struct {
	// Name is appended to the wrapped description after ", ".
	Name string

	// Increment is added to the wrapped cost. Must not be negative.
	Increment Price
}

// Modifier wraps an Item, adding its kind's suffix and increment.
type Modifier struct {
	wrapped Item
	kind    ModifierKind
}

// NewModifier wraps an item with a modifier of the given kind.
func NewModifier(wrapped Item, kind ModifierKind) (*Modifier, error) {
	if wrapped == nil {
		return nil, ErrNilItem
	}
	if kind.Increment < 0 {
		return nil, ErrNegativeIncrement
	}
	return &Modifier{wrapped: wrapped, kind: kind}, nil
}

// MustWrap is like NewModifier but panics on error.
func MustWrap(wrapped Item, kind ModifierKind) *Modifier {
	m, err := NewModifier(wrapped, kind)
	if err != nil {
		panic("pricing: " + err.Error())
	}
	return m
}

// Describe returns the wrapped description followed by ", " and the suffix.
func (m *Modifier) Describe() string {
	return m.wrapped.Describe() + ", " + m.kind.Name
}

// Cost returns the wrapped cost plus the increment.
func (m *Modifier) Cost() Price {
	return m.wrapped.Cost() + m.kind.Increment
}

// Kind returns the modifier's kind.
func (m *Modifier) Kind() ModifierKind {
	return m.kind
}

// Unwrap returns the wrapped item.
func (m *Modifier) Unwrap() Item {
	return m.wrapped
}

// Layers returns the chain from the innermost item outwards. Items that do not
// implement Unwrap end the walk.
func Layers(item Item) []Item {
	var layers []Item
	for item != nil {
		layers = append(layers, item)
		u, ok := item.(interface{ Unwrap() Item })
		if !ok {
			break
		}
		item = u.Unwrap()
	}

	for i, j := 0, len(layers)-1; i < j; i, j = i+1, j-1 {
		layers[i], layers[j] = layers[j], layers[i]
	}
	return layers
}

// Compile-time interface satisfaction checks.
var (
	_ Item = (*BaseItem)(nil)
	_ Item = (*Modifier)(nil)
)
