package pricing

import (
	"errors"
	"strings"
	"testing"
)

func TestPlainPizza(t *testing.T) {
	p := PlainPizza()

	if got := p.Describe(); got != "Plain pizza" {
		t.Errorf("Describe() = %q, want %q", got, "Plain pizza")
	}
	if got := p.Cost(); got != 500 {
		t.Errorf("Cost() = %s, want 5.00", got)
	}
}

func TestClassicChain(t *testing.T) {
	pizza := WithExtraCheese(WithMushrooms(WithOlives(PlainPizza())))

	if got, want := pizza.Describe(), "Plain pizza, Olives, Mushrooms, Extra Cheese"; got != want {
		t.Errorf("Describe() = %q, want %q", got, want)
	}
	if got := pizza.Cost(); got != 1025 {
		t.Errorf("Cost() = %s, want 10.25", got)
	}
	if got := pizza.Cost().String(); got != "10.25" {
		t.Errorf("Cost().String() = %q, want %q", got, "10.25")
	}
}

func TestIntermediateChain(t *testing.T) {
	// Olives then mushrooms
	pizza := WithMushrooms(WithOlives(PlainPizza()))

	if got, want := pizza.Describe(), "Plain pizza, Olives, Mushrooms"; got != want {
		t.Errorf("Describe() = %q, want %q", got, want)
	}
	if got := pizza.Cost(); got != 825 {
		t.Errorf("Cost() = %s, want 8.25", got)
	}
}

func TestCostIsOrderIndependent(t *testing.T) {
	kinds := []ModifierKind{Olives, Mushrooms, ExtraCheese, Olives}
	orders := [][]int{
		{0, 1, 2, 3},
		{3, 2, 1, 0},
		{1, 3, 0, 2},
		{2, 0, 3, 1},
	}

	want := PlainPizzaPrice
	for _, k := range kinds {
		want += k.Increment
	}

	for _, order := range orders {
		var item Item = PlainPizza()
		for _, i := range order {
			item = MustWrap(item, kinds[i])
		}

		if got := item.Cost(); got != want {
			t.Errorf("order %v: Cost() = %s, want %s", order, got, want)
		}

		desc := item.Describe()
		if !strings.HasPrefix(desc, "Plain pizza") {
			t.Errorf("order %v: Describe() = %q, want prefix %q", order, desc, "Plain pizza")
		}
		last := kinds[order[len(order)-1]].Name
		if !strings.HasSuffix(desc, ", "+last) {
			t.Errorf("order %v: Describe() = %q, want suffix %q", order, desc, last)
		}

		parts := strings.Split(desc, ", ")
		for j, i := range order {
			if parts[j+1] != kinds[i].Name {
				t.Errorf("order %v: part %d = %q, want %q", order, j+1, parts[j+1], kinds[i].Name)
			}
		}
	}
}

func TestDeepChain(t *testing.T) {
	const depth = 1000
	var item Item = NewBaseItem("Base", 0)
	for i := 0; i < depth; i++ {
		item = MustWrap(item, ModifierKind{Name: "x", Increment: 1})
	}

	if got := item.Cost(); got != depth {
		t.Errorf("Cost() = %d, want %d", got, depth)
	}
	if got := len(Layers(item)); got != depth+1 {
		t.Errorf("len(Layers()) = %d, want %d", got, depth+1)
	}
}

func TestRepeatedCallsAreIdempotent(t *testing.T) {
	pizza := WithOlives(PlainPizza())

	for i := 0; i < 3; i++ {
		if got := pizza.Describe(); got != "Plain pizza, Olives" {
			t.Fatalf("call %d: Describe() = %q", i, got)
		}
		if got := pizza.Cost(); got != 650 {
			t.Fatalf("call %d: Cost() = %s", i, got)
		}
	}
}

func TestWrappingDoesNotChangeInner(t *testing.T) {
	base := PlainPizza()
	withOlives := WithOlives(base)
	_ = WithExtraCheese(withOlives)
	_ = WithMushrooms(withOlives)

	if got := withOlives.Describe(); got != "Plain pizza, Olives" {
		t.Errorf("inner Describe() = %q after further wrapping", got)
	}
	if got := base.Cost(); got != PlainPizzaPrice {
		t.Errorf("base Cost() = %s after wrapping", got)
	}
}

func TestNewModifierErrors(t *testing.T) {
	if _, err := NewModifier(nil, Olives); !errors.Is(err, ErrNilItem) {
		t.Errorf("NewModifier(nil) error = %v, want %v", err, ErrNilItem)
	}

	_, err := NewModifier(PlainPizza(), ModifierKind{Name: "Coupon", Increment: -100})
	if !errors.Is(err, ErrNegativeIncrement) {
		t.Errorf("NewModifier(negative) error = %v, want %v", err, ErrNegativeIncrement)
	}

	m, err := NewModifier(PlainPizza(), ModifierKind{Name: "Free basil", Increment: 0})
	if err != nil {
		t.Fatalf("NewModifier(zero increment) failed: %v", err)
	}
	if m.Cost() != PlainPizzaPrice {
		t.Errorf("Cost() = %s, want %s", m.Cost(), PlainPizzaPrice)
	}
}

func TestMustWrapPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustWrap(nil) did not panic")
		}
	}()
	MustWrap(nil, Olives)
}

func TestLayers(t *testing.T) {
	base := PlainPizza()
	olives := WithOlives(base)
	cheese := WithExtraCheese(olives)

	layers := Layers(cheese)
	if len(layers) != 3 {
		t.Fatalf("len(Layers()) = %d, want 3", len(layers))
	}
	if layers[0] != Item(base) {
		t.Errorf("layers[0] = %v, want base", layers[0])
	}
	if layers[2] != Item(cheese) {
		t.Errorf("layers[2] = %v, want outermost", layers[2])
	}
	if m, ok := layers[1].(*Modifier); !ok || m.Kind() != Olives {
		t.Errorf("layers[1] = %v, want olives modifier", layers[1])
	}

	if got := Layers(nil); len(got) != 0 {
		t.Errorf("Layers(nil) = %v, want empty", got)
	}
}
