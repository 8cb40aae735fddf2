// internal/storefront/session.go
package storefront

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"

	"storefront/internal/cart"
	"storefront/internal/catalog"
)

// Views is everything a page shows, rendered from one consistent state.
type Views struct {
	Catalog catalog.View
	Cart    cart.View
}

// Session owns one visitor's cart and shares the catalog with every other session.
// Each action and the render that follows it run to completion under mu.
type Session struct {
	ID uuid.UUID

	mu      sync.Mutex
	catalog catalog.Service
	ledger  *cart.Ledger

	// guarded by the owning Registry
	lastSeen time.Time

	tracer  trace.Tracer
	actions metric.Int64Counter
}

// NewSession creates a session with an empty ledger, counting actions on the global meter provider.
func NewSession(id uuid.UUID, svc catalog.Service) *Session {
	return newSession(id, svc, actionCounter(otel.GetMeterProvider()))
}

func newSession(id uuid.UUID, svc catalog.Service, actions metric.Int64Counter) *Session {
	return &Session{
		ID:      id,
		catalog: svc,
		ledger:  cart.NewLedger(svc),
		tracer:  otel.Tracer("storefront/session"),
		actions: actions,
	}
}

func actionCounter(mp metric.MeterProvider) metric.Int64Counter {
	actions, err := mp.Meter("storefront/session").Int64Counter("storefront.cart.actions",
		metric.WithDescription("Cart actions dispatched, by action and outcome"),
	)
	if err != nil {
		return noop.Int64Counter{}
	}
	return actions
}

// Dispatch applies a to the ledger and renders both views. A rejected action leaves the
// ledger untouched; the views are returned either way.
func (s *Session) Dispatch(ctx context.Context, a Action) (Views, error) {
	ctx, span := s.tracer.Start(ctx, "session.dispatch",
		trace.WithAttributes(
			attribute.String("session.id", s.ID.String()),
			attribute.String("action.kind", string(a.Kind)),
			attribute.Int("item.id", int(a.ItemID)),
		),
	)
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	err := a.apply(s.ledger)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "action rejected")
	}
	s.actions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("action", string(a.Kind)),
		attribute.String("outcome", outcome(err)),
	))

	return s.render(), err
}

// Views renders the current state without changing it.
func (s *Session) Views() Views {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.render()
}

// Lines returns the cart contents in display order.
func (s *Session) Lines() []cart.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Lines()
}

func (s *Session) render() Views {
	return Views{
		Catalog: catalog.Render(s.catalog.Items(), s.ledger),
		Cart:    s.ledger.Render(),
	}
}
