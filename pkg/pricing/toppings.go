package pricing

// Plain pizza and its standard toppings.
var (
	Olives      = ModifierKind{Name: "Olives", Increment: 150}
	Mushrooms   = ModifierKind{Name: "Mushrooms", Increment: 175}
	ExtraCheese = ModifierKind{Name: "Extra Cheese", Increment: 200}
)

// PlainPizzaPrice is the price of a pizza without toppings.
const PlainPizzaPrice Price = 500

// PlainPizza returns a new plain pizza.
func PlainPizza() *BaseItem {
	return NewBaseItem("Plain pizza", PlainPizzaPrice)
}

// WithOlives adds olives.
func WithOlives(item Item) *Modifier { return MustWrap(item, Olives) }

// WithMushrooms adds mushrooms.
func WithMushrooms(item Item) *Modifier { return MustWrap(item, Mushrooms) }

// WithExtraCheese adds extra cheese.
func WithExtraCheese(item Item) *Modifier { return MustWrap(item, ExtraCheese) }
