package storefront

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"storefront/internal/cart"
	"storefront/internal/catalog"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type staticSource []catalog.Item

func (s staticSource) Fetch(ctx context.Context) ([]catalog.Item, error) { return s, nil }
func (s staticSource) String() string                                    { return "static" }

func loadedCatalog(t *testing.T) catalog.Service {
	t.Helper()
	svc := catalog.NewService(nil)
	_, err := svc.Load(context.Background(), staticSource{
		{ID: 1, Name: "Nike Air Max", Description: "Classic", Color: "#e1e7ed", Image: "air.png", Price: decimal.RequireFromString("50.00")},
		{ID: 2, Name: "Nike Blazer", Description: "Retro", Color: "#4dd5e2", Image: "blazer.png", Price: decimal.RequireFromString("20.00")},
	})
	require.NoError(t, err)
	return svc
}

func dispatch(t *testing.T, s *Session, kind ActionKind, id catalog.ItemID) Views {
	t.Helper()
	views, err := s.Dispatch(context.Background(), Action{Kind: kind, ItemID: id})
	require.NoError(t, err)
	return views
}

func TestSessionDispatchScenario(t *testing.T) {
	s := NewSession(uuid.New(), loadedCatalog(t))

	dispatch(t, s, ActionAdd, 1)
	dispatch(t, s, ActionAdd, 2)
	dispatch(t, s, ActionIncrease, 1)
	views := dispatch(t, s, ActionDecrease, 2)

	assert.Equal(t, []cart.LineItem{{ItemID: 1, Quantity: 2}}, s.Lines())
	assert.Equal(t, "100.00", views.Cart.Total)
	assert.False(t, views.Cart.Empty)

	require.Len(t, views.Catalog.Cards, 2)
	assert.True(t, views.Catalog.Cards[0].InCart)
	assert.False(t, views.Catalog.Cards[1].InCart)
}

func TestSessionRejectedActionKeepsState(t *testing.T) {
	s := NewSession(uuid.New(), loadedCatalog(t))
	dispatch(t, s, ActionAdd, 1)

	views, err := s.Dispatch(context.Background(), Action{Kind: ActionAdd, ItemID: 1})
	require.ErrorIs(t, err, cart.ErrAlreadyInCart)
	assert.Equal(t, "50.00", views.Cart.Total)

	_, err = s.Dispatch(context.Background(), Action{Kind: ActionAdd, ItemID: 42})
	require.ErrorIs(t, err, cart.ErrUnknownItem)

	_, err = s.Dispatch(context.Background(), Action{Kind: ActionIncrease, ItemID: 2})
	require.ErrorIs(t, err, cart.ErrNotInCart)

	assert.Equal(t, []cart.LineItem{{ItemID: 1, Quantity: 1}}, s.Lines())
}

func TestSessionEmptyViews(t *testing.T) {
	s := NewSession(uuid.New(), loadedCatalog(t))

	views := s.Views()
	assert.True(t, views.Cart.Empty)
	assert.Equal(t, "0.00", views.Cart.Total)
	for _, card := range views.Catalog.Cards {
		assert.False(t, card.InCart)
	}
}

func TestSessionEmptyCatalog(t *testing.T) {
	s := NewSession(uuid.New(), catalog.NewService(nil))

	_, err := s.Dispatch(context.Background(), Action{Kind: ActionAdd, ItemID: 1})
	assert.ErrorIs(t, err, cart.ErrUnknownItem)
	assert.Empty(t, s.Views().Catalog.Cards)
}

func TestSessionSerializesActions(t *testing.T) {
	s := NewSession(uuid.New(), loadedCatalog(t))
	dispatch(t, s, ActionAdd, 1)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Dispatch(context.Background(), Action{Kind: ActionIncrease, ItemID: 1})
		}()
	}
	wg.Wait()

	assert.Equal(t, []cart.LineItem{{ItemID: 1, Quantity: 51}}, s.Lines())
	assert.Equal(t, "2550.00", s.Views().Cart.Total)
}
