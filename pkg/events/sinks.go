package events

import (
	"context"

	"github.com/cuemby/cookshow/pkg/metrics"
	"github.com/rs/zerolog"
)

// Handler consumes a single event
type Handler func(*Event)

// Dispatch feeds every event from sub to the handlers, in order, until ctx
// is done or the subscription is closed.
func Dispatch(ctx context.Context, sub Subscriber, handlers ...Handler) {
	for {
		select {
		case event, ok := <-sub:
			if !ok {
				return
			}
			for _, h := range handlers {
				h(event)
			}
		case <-ctx.Done():
			return
		}
	}
}

// AuditLog writes one info line per event
func AuditLog(logger zerolog.Logger) Handler {
	return func(event *Event) {
		e := logger.Info().
			Str("event_id", event.ID).
			Str("type", string(event.Type)).
			Str("entity_id", event.EntityID).
			Time("at", event.Timestamp)
		for k, v := range event.Metadata {
			e = e.Str(k, v)
		}
		e.Msg(event.Message)
	}
}

// CountMetrics increments cookshow_events_total for each event type
func CountMetrics() Handler {
	return func(event *Event) {
		metrics.EventsTotal.WithLabelValues(string(event.Type)).Inc()
	}
}
