// Package pricing composes priced items from a base and stacked modifiers.
//
// An Item exposes a description and a cost. A BaseItem is a leaf with a fixed
// label and price; a Modifier wraps exactly one other Item and adds a fixed
// description suffix and a non-negative cost increment:
//
//	pizza := pricing.WithExtraCheese(pricing.WithMushrooms(pricing.WithOlives(pricing.PlainPizza())))
//	pizza.Describe() // "Plain pizza, Olives, Mushrooms, Extra Cheese"
//	pizza.Cost()     // 10.25
//
// Chains are immutable. Describe and Cost recompute over the whole chain on
// every call.
//
// # Money
//
// Prices are integer cents (Price), so totals are exact and independent of the
// order in which modifiers were applied.
//
// # Menus
//
// Bases and modifier kinds can be declared in YAML menus. The "classic" menu is
// embedded; other menus are loaded from files with LoadMenuFile.
package pricing
