package events

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// EventType represents the type of event
type EventType string

const (
	EventChefCreated        EventType = "chef.created"
	EventChefDeleted        EventType = "chef.deleted"
	EventViewerCreated      EventType = "viewer.created"
	EventViewerDeleted      EventType = "viewer.deleted"
	EventParticipantCreated EventType = "participant.created"
	EventParticipantDeleted EventType = "participant.deleted"
	EventRecipeCreated      EventType = "recipe.created"
	EventRecipeUpdated      EventType = "recipe.updated"
	EventRecipeDeleted      EventType = "recipe.deleted"
)

// Event records a committed change to one document
type Event struct {
	ID        string
	Type      EventType
	EntityID  string
	Timestamp time.Time
	Message   string
	Metadata  map[string]string
}

// NewEvent builds an event with a fresh id and the current time
func NewEvent(eventType EventType, entityID, message string, metadata map[string]string) *Event {
	return &Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		EntityID:  entityID,
		Timestamp: time.Now(),
		Message:   message,
		Metadata:  metadata,
	}
}

// Publisher accepts events; Broker is the in-process implementation
type Publisher interface {
	Publish(event *Event)
}

// Subscriber is a channel that receives events
type Subscriber chan *Event

const (
	brokerBuffer     = 100
	subscriberBuffer = 50
)

// Broker fans events out to subscribers. A subscriber whose buffer is full
// misses the event rather than stalling the others.
type Broker struct {
	subscribers map[Subscriber]bool
	mu          sync.RWMutex
	eventCh     chan *Event
	stopCh      chan struct{}
	stopOnce    sync.Once
}

var _ Publisher = (*Broker)(nil)

// NewBroker creates a new event broker
func NewBroker() *Broker {
	return &Broker{
		subscribers: make(map[Subscriber]bool),
		eventCh:     make(chan *Event, brokerBuffer),
		stopCh:      make(chan struct{}),
	}
}

// Start begins the broker's event distribution loop
func (b *Broker) Start() {
	go b.run()
}

// Stop stops the broker; later Publish calls return immediately
func (b *Broker) Stop() {
	b.stopOnce.Do(func() { close(b.stopCh) })
}

// Subscribe creates a new subscription and returns a channel
func (b *Broker) Subscribe() Subscriber {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := make(Subscriber, subscriberBuffer)
	b.subscribers[sub] = true
	return sub
}

// Unsubscribe removes a subscription and closes its channel
func (b *Broker) Unsubscribe(sub Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.subscribers[sub]; !ok {
		return
	}
	delete(b.subscribers, sub)
	close(sub)
}

// Publish queues an event for distribution. It blocks while the broker
// queue is full unless the broker has been stopped.
func (b *Broker) Publish(event *Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	select {
	case <-b.stopCh:
		return
	default:
	}

	select {
	case b.eventCh <- event:
	case <-b.stopCh:
	}
}

func (b *Broker) run() {
	for {
		select {
		case event := <-b.eventCh:
			b.broadcast(event)
		case <-b.stopCh:
			return
		}
	}
}

func (b *Broker) broadcast(event *Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for sub := range b.subscribers {
		select {
		case sub <- event:
		default:
			// Subscriber buffer full, skip
		}
	}
}

// SubscriberCount returns the number of active subscribers
func (b *Broker) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
