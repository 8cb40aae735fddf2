package storefront

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func TestRegistryCreateAndGet(t *testing.T) {
	reg := NewRegistry(loadedCatalog(t))

	s := reg.Create()
	got, ok := reg.Get(s.ID)
	require.True(t, ok)
	assert.Same(t, s, got)

	_, ok = reg.Get(uuid.New())
	assert.False(t, ok)
	assert.Equal(t, 1, reg.Len())
}

func TestRegistrySessionsAreIndependent(t *testing.T) {
	reg := NewRegistry(loadedCatalog(t))
	a, b := reg.Create(), reg.Create()

	dispatch(t, a, ActionAdd, 1)

	assert.Len(t, a.Lines(), 1)
	assert.Empty(t, b.Lines())
	assert.NotEqual(t, a.ID, b.ID)
}

func TestRegistrySweep(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)}
	reg := NewRegistry(loadedCatalog(t), WithTTL(10*time.Minute), WithClock(clock.Now))

	idle := reg.Create()
	active := reg.Create()

	clock.Advance(8 * time.Minute)
	_, ok := reg.Get(active.ID)
	require.True(t, ok)

	clock.Advance(5 * time.Minute)
	assert.Equal(t, 1, reg.Sweep())

	_, ok = reg.Get(idle.ID)
	assert.False(t, ok)
	_, ok = reg.Get(active.ID)
	assert.True(t, ok)
}

func TestRegistrySweepWithoutTTL(t *testing.T) {
	clock := &fakeClock{t: time.Now()}
	reg := NewRegistry(loadedCatalog(t), WithClock(clock.Now))
	reg.Create()

	clock.Advance(24 * time.Hour)
	assert.Equal(t, 0, reg.Sweep())
	assert.Equal(t, 1, reg.Len())
}

func TestRegistryRunStopsWithContext(t *testing.T) {
	reg := NewRegistry(loadedCatalog(t), WithTTL(time.Nanosecond))
	reg.Create()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		reg.Run(ctx, time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool { return reg.Len() == 0 }, time.Second, time.Millisecond)
	cancel()
	<-done
}
