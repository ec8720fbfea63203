package events

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/cuemby/cookshow/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, sub Subscriber) *Event {
	t.Helper()
	select {
	case event := <-sub:
		return event
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return nil
	}
}

func TestNewEvent(t *testing.T) {
	event := NewEvent(EventRecipeCreated, "r-1", "recipe created", map[string]string{"author": "Alice"})

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, EventRecipeCreated, event.Type)
	assert.Equal(t, "r-1", event.EntityID)
	assert.False(t, event.Timestamp.IsZero())
	assert.Equal(t, "Alice", event.Metadata["author"])
}

func TestBrokerFanOut(t *testing.T) {
	broker := NewBroker()
	broker.Start()
	defer broker.Stop()

	sub1 := broker.Subscribe()
	sub2 := broker.Subscribe()
	assert.Equal(t, 2, broker.SubscriberCount())

	broker.Publish(&Event{Type: EventChefCreated, EntityID: "c-1"})

	for _, sub := range []Subscriber{sub1, sub2} {
		event := receive(t, sub)
		assert.Equal(t, EventChefCreated, event.Type)
		assert.False(t, event.Timestamp.IsZero(), "timestamp should be filled in")
	}
}

func TestBrokerUnsubscribe(t *testing.T) {
	broker := NewBroker()
	sub := broker.Subscribe()

	broker.Unsubscribe(sub)
	assert.Equal(t, 0, broker.SubscriberCount())

	_, ok := <-sub
	assert.False(t, ok, "channel should be closed")

	// Second unsubscribe must not panic on a closed channel
	broker.Unsubscribe(sub)
}

func TestBrokerSkipsFullSubscriber(t *testing.T) {
	broker := NewBroker()
	slow := broker.Subscribe()
	for i := 0; i < subscriberBuffer; i++ {
		slow <- &Event{}
	}

	done := make(chan struct{})
	go func() {
		broker.broadcast(&Event{Type: EventRecipeDeleted})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("broadcast blocked on a full subscriber")
	}
	assert.Len(t, slow, subscriberBuffer)
}

func TestBrokerPublishAfterStop(t *testing.T) {
	broker := NewBroker()
	broker.Stop()
	broker.Stop()

	done := make(chan struct{})
	go func() {
		for i := 0; i < brokerBuffer*2; i++ {
			broker.Publish(&Event{Type: EventViewerCreated})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a stopped broker")
	}
}

func TestDispatch(t *testing.T) {
	metrics.EventsTotal.Reset()

	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	sub := make(Subscriber, 4)
	sub <- NewEvent(EventParticipantCreated, "p-1", "participant created", map[string]string{"season": "3"})
	sub <- NewEvent(EventParticipantCreated, "p-2", "participant created", nil)
	sub <- NewEvent(EventRecipeUpdated, "r-1", "recipe updated", nil)
	close(sub)

	Dispatch(context.Background(), sub, AuditLog(logger), CountMetrics())

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.EventsTotal.WithLabelValues("participant.created")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.EventsTotal.WithLabelValues("recipe.updated")))

	out := buf.String()
	assert.Contains(t, out, `"type":"participant.created"`)
	assert.Contains(t, out, `"season":"3"`)
	assert.Contains(t, out, `"entity_id":"r-1"`)
}

func TestDispatchStopsOnContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	sub := make(Subscriber)

	done := make(chan struct{})
	go func() {
		Dispatch(ctx, sub)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		require.Fail(t, "Dispatch did not return after cancel")
	}
}
