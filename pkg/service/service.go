package service

import (
	"github.com/cuemby/cookshow/pkg/events"
	"github.com/cuemby/cookshow/pkg/storage"
)

// Services bundles the four domain services over one store
type Services struct {
	Chefs        *ChefService
	Viewers      *ViewerService
	Participants *ParticipantService
	Recipes      *RecipeService
}

// New wires every service to store. publisher may be nil.
func New(store storage.Store, publisher events.Publisher) *Services {
	participants := NewParticipantService(store, publisher)
	return &Services{
		Chefs:        NewChefService(store, publisher),
		Viewers:      NewViewerService(store, publisher),
		Participants: participants,
		Recipes:      NewRecipeService(store, store, store, participants, publisher),
	}
}

func publish(p events.Publisher, eventType events.EventType, entityID, message string, metadata map[string]string) {
	if p == nil {
		return
	}
	p.Publish(events.NewEvent(eventType, entityID, message, metadata))
}
