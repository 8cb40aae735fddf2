// internal/cart/ledger.go
package cart

import (
	"fmt"

	"github.com/shopspring/decimal"

	"storefront/internal/catalog"
)

// Ledger is the ordered set of line items in one cart, keyed by item id.
// Display order is the order of first add. A Ledger is not safe for concurrent
// use; the owning session serializes access.
type Ledger struct {
	catalog Lookup
	lines   []LineItem
}

// NewLedger creates an empty ledger resolving items through lookup.
func NewLedger(lookup Lookup) *Ledger {
	return &Ledger{catalog: lookup}
}

func (l *Ledger) find(id catalog.ItemID) int {
	for i := range l.lines {
		if l.lines[i].ItemID == id {
			return i
		}
	}
	return -1
}

// Add appends a new line with quantity 1. Adding an item that already has a line is
// rejected with ErrAlreadyInCart and leaves the ledger unchanged.
func (l *Ledger) Add(id catalog.ItemID) error {
	if _, ok := l.catalog.Lookup(id); !ok {
		return fmt.Errorf("add %d: %w", id, ErrUnknownItem)
	}
	if l.find(id) >= 0 {
		return fmt.Errorf("add %d: %w", id, ErrAlreadyInCart)
	}
	l.lines = append(l.lines, LineItem{ItemID: id, Quantity: 1})
	return nil
}

func (l *Ledger) Increase(id catalog.ItemID) error {
	i := l.find(id)
	if i < 0 {
		return fmt.Errorf("increase %d: %w", id, ErrNotInCart)
	}
	l.lines[i].Quantity++
	return nil
}

// Decrease removes the line when its quantity would drop to zero.
func (l *Ledger) Decrease(id catalog.ItemID) error {
	i := l.find(id)
	if i < 0 {
		return fmt.Errorf("decrease %d: %w", id, ErrNotInCart)
	}
	if l.lines[i].Quantity <= 1 {
		l.removeAt(i)
		return nil
	}
	l.lines[i].Quantity--
	return nil
}

// Remove drops the line for id whatever its quantity. Removing an absent item is a no-op.
func (l *Ledger) Remove(id catalog.ItemID) {
	if i := l.find(id); i >= 0 {
		l.removeAt(i)
	}
}

func (l *Ledger) removeAt(i int) {
	l.lines = append(l.lines[:i], l.lines[i+1:]...)
}

// Total sums price times quantity over every line. It is recomputed on each call.
func (l *Ledger) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range l.lines {
		item, ok := l.catalog.Lookup(line.ItemID)
		if !ok {
			continue
		}
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

func (l *Ledger) Contains(id catalog.ItemID) bool {
	return l.find(id) >= 0
}

// Quantity returns 0 for items without a line.
func (l *Ledger) Quantity(id catalog.ItemID) int {
	if i := l.find(id); i >= 0 {
		return l.lines[i].Quantity
	}
	return 0
}

// Lines returns a copy of the ledger in display order.
func (l *Ledger) Lines() []LineItem {
	out := make([]LineItem, len(l.lines))
	copy(out, l.lines)
	return out
}

func (l *Ledger) Len() int {
	return len(l.lines)
}
