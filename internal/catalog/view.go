// internal/catalog/view.go
package catalog

import "github.com/shopspring/decimal"

// Membership reports whether a cart currently holds a line for an item.
type Membership interface {
	Contains(id ItemID) bool
}

// IsInCart is derived from the ledger on every call; items never carry an in-cart flag.
func IsInCart(id ItemID, m Membership) bool {
	return m != nil && m.Contains(id)
}

// Card is the presentation of one catalog item.
type Card struct {
	ID          ItemID
	Name        string
	Description string
	Color       string
	Image       string
	Price       string
	InCart      bool
}

// View describes the whole catalog section.
type View struct {
	Cards []Card
}

// Render builds the catalog view for items against the current cart membership.
func Render(items []Item, m Membership) View {
	cards := make([]Card, 0, len(items))
	for _, item := range items {
		cards = append(cards, Card{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Color:       item.Color,
			Image:       item.Image,
			Price:       FormatPrice(item.Price),
			InCart:      IsInCart(item.ID, m),
		})
	}
	return View{Cards: cards}
}

// FormatPrice renders an amount with exactly two decimal places.
func FormatPrice(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
