// internal/cart/view.go
package cart

import "storefront/internal/catalog"

// Line is the presentation of one ledger entry.
type Line struct {
	ItemID   catalog.ItemID
	Name     string
	Color    string
	Image    string
	Price    string
	Quantity int
}

// View describes the cart section: its lines in ledger order, the formatted total
// and whether the empty-cart message is shown.
type View struct {
	Lines []Line
	Total string
	Empty bool
}

func (l *Ledger) Render() View {
	lines := make([]Line, 0, len(l.lines))
	for _, entry := range l.lines {
		item, _ := l.catalog.Lookup(entry.ItemID)
		lines = append(lines, Line{
			ItemID:   entry.ItemID,
			Name:     item.Name,
			Color:    item.Color,
			Image:    item.Image,
			Price:    catalog.FormatPrice(item.Price),
			Quantity: entry.Quantity,
		})
	}

	return View{
		Lines: lines,
		Total: catalog.FormatPrice(l.Total()),
		Empty: len(l.lines) == 0,
	}
}
