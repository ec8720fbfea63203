/*
Package events provides an in-process publish/subscribe broker for domain
events.

Services publish an Event after each committed create, update or delete.
The Broker queues events (buffer of 100) and a single goroutine fans them
out to every subscriber channel (buffer of 50 each). A subscriber that falls
behind misses events; it never slows down publishers or other subscribers.

# Event Types

	chef.created         chef.deleted
	viewer.created       viewer.deleted
	participant.created  participant.deleted
	recipe.created       recipe.updated       recipe.deleted

# Usage

	broker := events.NewBroker()
	broker.Start()
	defer broker.Stop()

	sub := broker.Subscribe()
	go events.Dispatch(ctx, sub,
		events.AuditLog(log.WithComponent("audit")),
		events.CountMetrics(),
	)

	broker.Publish(events.NewEvent(events.EventRecipeCreated, recipe.ID, "Recipe created", nil))

Publish blocks only while the broker queue itself is full, and returns
immediately once the broker is stopped. Events are not persisted; a process
restart loses anything still queued.
*/
package events
