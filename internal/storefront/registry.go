// internal/storefront/registry.go
package storefront

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"storefront/internal/catalog"
)

// Registry maps visitor session ids to sessions.
type Registry struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session

	catalog catalog.Service
	ttl     time.Duration
	now     func() time.Time
	logger  *zap.Logger

	meterProvider metric.MeterProvider
	actions       metric.Int64Counter
}

type Option func(*Registry)

// WithTTL sets how long an idle session survives. Zero disables expiry.
func WithTTL(ttl time.Duration) Option {
	return func(r *Registry) { r.ttl = ttl }
}

func WithLogger(logger *zap.Logger) Option {
	return func(r *Registry) { r.logger = logger }
}

// WithMeterProvider sets where session action counts are recorded. Defaults to the global provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(r *Registry) { r.meterProvider = mp }
}

func WithClock(now func() time.Time) Option {
	return func(r *Registry) { r.now = now }
}

func NewRegistry(svc catalog.Service, opts ...Option) *Registry {
	r := &Registry{
		sessions: make(map[uuid.UUID]*Session),
		catalog:  svc,
		now:      time.Now,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.meterProvider == nil {
		r.meterProvider = otel.GetMeterProvider()
	}
	r.actions = actionCounter(r.meterProvider)
	return r
}

// Create registers a fresh session under a random id.
func (r *Registry) Create() *Session {
	s := newSession(uuid.New(), r.catalog, r.actions)

	r.mu.Lock()
	s.lastSeen = r.now()
	r.sessions[s.ID] = s
	r.mu.Unlock()

	r.logger.Debug("session created", zap.Stringer("session_id", s.ID))
	return s
}

// Get returns the session for id and marks it as seen.
func (r *Registry) Get(id uuid.UUID) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if ok {
		s.lastSeen = r.now()
	}
	return s, ok
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep drops sessions idle for longer than the TTL and reports how many went.
func (r *Registry) Sweep() int {
	if r.ttl <= 0 {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-r.ttl)
	expired := 0
	for id, s := range r.sessions {
		if s.lastSeen.Before(cutoff) {
			delete(r.sessions, id)
			expired++
		}
	}
	if expired > 0 {
		r.logger.Info("expired idle sessions", zap.Int("count", expired), zap.Int("remaining", len(r.sessions)))
	}
	return expired
}

// Run sweeps every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}
