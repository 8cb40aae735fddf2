// internal/catalog/service.go
package catalog

import (
	"context"
)

// Service defines the interface for the catalog store.
type Service interface {
	Load(ctx context.Context, src Source) ([]Item, error)
	Items() []Item
	Lookup(id ItemID) (Item, bool)
	Digest() string
}

// Source fetches the catalog document from wherever it lives.
type Source interface {
	Fetch(ctx context.Context) ([]Item, error)
	String() string
}
