// internal/cart/domain.go
package cart

import (
	"errors"

	"storefront/internal/catalog"
)

var (
	ErrUnknownItem   = errors.New("item not in catalog")
	ErrNotInCart     = errors.New("item not in cart")
	ErrAlreadyInCart = errors.New("item already in cart")
)

// LineItem pairs a catalog item id with a quantity of at least one.
// Item metadata stays with the catalog; only the quantity lives here.
type LineItem struct {
	ItemID   catalog.ItemID `json:"item_id"`
	Quantity int            `json:"quantity"`
}

// Lookup resolves item ids against the catalog.
type Lookup interface {
	Lookup(id catalog.ItemID) (catalog.Item, bool)
}
