// internal/catalog/implementation.go
package catalog

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/crypto/blake2b"
)

// store implements the Service interface.
type store struct {
	mu      sync.RWMutex
	items   []Item
	index   map[ItemID]int
	digest  string
	started bool

	logger *zap.Logger
	tracer trace.Tracer
}

// NewService creates an empty catalog store.
func NewService(logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &store{
		index:  make(map[ItemID]int),
		logger: logger,
		tracer: otel.Tracer("storefront/catalog"),
	}
}

// Load fetches the catalog once. Failures are logged and leave the store empty.
func (s *store) Load(ctx context.Context, src Source) ([]Item, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.load",
		trace.WithAttributes(attribute.String("catalog.source", src.String())),
	)
	defer span.End()

	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return nil, ErrAlreadyLoaded
	}
	s.started = true
	s.mu.Unlock()

	// Readers are not blocked while the source is in flight.
	items, err := src.Fetch(ctx)
	if err == nil {
		err = validate(items)
	}
	var digest string
	if err == nil {
		digest, err = digestOf(items)
	}
	if err != nil {
		loadErr := &LoadError{Source: src.String(), Err: err}
		span.RecordError(loadErr)
		span.SetStatus(codes.Error, "catalog load failed")
		s.logger.Error("catalog load failed",
			zap.String("source", src.String()),
			zap.Error(err),
		)
		return nil, loadErr
	}

	s.mu.Lock()
	s.items = items
	for i, item := range items {
		s.index[item.ID] = i
	}
	s.digest = digest
	s.mu.Unlock()

	span.SetAttributes(attribute.Int("catalog.items", len(items)))
	s.logger.Info("catalog loaded",
		zap.String("source", src.String()),
		zap.Int("items", len(items)),
		zap.String("digest", digest),
	)

	return s.Items(), nil
}

// Items returns the catalog in document order.
func (s *store) Items() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *store) Lookup(id ItemID) (Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return Item{}, false
	}
	return s.items[i], true
}

// Digest returns the hex BLAKE2b-256 digest of the loaded catalog, or "" before a successful load.
func (s *store) Digest() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.digest
}

func digestOf(items []Item) (string, error) {
	data, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("failed to marshal catalog for digest: %w", err)
	}
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
