// internal/catalog/domain.go
package catalog

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultCollection is the key under which a catalog document lists its items.
const DefaultCollection = "shoes"

var (
	ErrAlreadyLoaded = errors.New("catalog already loaded")
	ErrDuplicateID   = errors.New("duplicate item id")
	ErrInvalidItem   = errors.New("invalid item")
)

// ItemID identifies an item for the lifetime of the process.
type ItemID int

// Item represents a purchasable catalog entry. Items are never mutated after load.
type Item struct {
	ID          ItemID          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Color       string          `json:"color"`
	Image       string          `json:"image"`
	Price       decimal.Decimal `json:"price"`
}

// LoadError is returned when a catalog source cannot be fetched, decoded or validated.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load catalog from %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// validate enforces the catalog invariants: positive, unique ids and non-negative prices.
func validate(items []Item) error {
	seen := make(map[ItemID]struct{}, len(items))
	for _, item := range items {
		if item.ID <= 0 {
			return fmt.Errorf("%w: id %d must be positive", ErrInvalidItem, item.ID)
		}
		if item.Price.IsNegative() {
			return fmt.Errorf("%w: item %d has negative price %s", ErrInvalidItem, item.ID, item.Price)
		}
		if _, dup := seen[item.ID]; dup {
			return fmt.Errorf("%w: %d", ErrDuplicateID, item.ID)
		}
		seen[item.ID] = struct{}{}
	}
	return nil
}
