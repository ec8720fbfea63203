package service

import (
	"sync"
	"testing"

	"github.com/cuemby/cookshow/pkg/events"
	"github.com/cuemby/cookshow/pkg/storage"
	"github.com/stretchr/testify/require"
)

// recorder captures published events in order
type recorder struct {
	mu     sync.Mutex
	events []*events.Event
}

func (r *recorder) Publish(event *events.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recorder) types() []events.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []events.EventType{}
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

func newTestServices(t *testing.T) (*Services, *recorder) {
	t.Helper()
	store, err := storage.NewBoltStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	rec := &recorder{}
	return New(store, rec), rec
}

// newBrokenServices returns services over a closed store, so every storage
// call fails with a non-"not found" error
func newBrokenServices(t *testing.T) *Services {
	t.Helper()
	store, err := storage.NewBoltStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Close())
	return New(store, nil)
}

func newTestServicesWithoutEvents(t *testing.T) *Services {
	t.Helper()
	store, err := storage.NewBoltStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return New(store, nil)
}
