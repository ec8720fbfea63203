package service

import (
	"errors"

	"github.com/cuemby/cookshow/pkg/events"
	"github.com/cuemby/cookshow/pkg/log"
	"github.com/cuemby/cookshow/pkg/storage"
	"github.com/cuemby/cookshow/pkg/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ChefService manages the chefs collection
type ChefService struct {
	store  storage.ChefStore
	events events.Publisher
	logger zerolog.Logger
}

// NewChefService creates a chef service; publisher may be nil
func NewChefService(store storage.ChefStore, publisher events.Publisher) *ChefService {
	return &ChefService{
		store:  store,
		events: publisher,
		logger: log.WithComponent("chef-service"),
	}
}

// Create adds a chef. Names are unique among chefs.
func (s *ChefService) Create(fullName string) (*types.Chef, error) {
	if err := ValidateName(fullName); err != nil {
		return nil, err
	}

	existing, err := s.store.GetChefByName(fullName)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		s.logger.Error().Err(err).Str("full_name", fullName).Msg("Failed to look up chef")
		return nil, storeError(err, "check chef %q", fullName)
	}
	if existing != nil {
		s.logger.Warn().Str("full_name", fullName).Msg("Chef already exists")
		return nil, conflict("chef %q", fullName)
	}

	chef := types.NewChef(uuid.New().String(), fullName)
	if err := s.store.CreateChef(chef); err != nil {
		s.logger.Error().Err(err).Str("full_name", fullName).Msg("Failed to create chef")
		return nil, storeError(err, "create chef %q", fullName)
	}

	s.logger.Info().Str("id", chef.ID).Str("full_name", fullName).Msg("Chef created")
	publish(s.events, events.EventChefCreated, chef.ID, "Chef created", map[string]string{"full_name": fullName})
	return chef, nil
}

// Get returns the chef with the given id
func (s *ChefService) Get(id string) (*types.Chef, error) {
	chef, err := s.store.GetChef(id)
	if err != nil {
		return nil, storeError(err, "chef %s", id)
	}
	return chef, nil
}

// GetByName returns the chef with the given full name
func (s *ChefService) GetByName(fullName string) (*types.Chef, error) {
	chef, err := s.store.GetChefByName(fullName)
	if err != nil {
		return nil, storeError(err, "chef %q", fullName)
	}
	return chef, nil
}

// List returns every chef
func (s *ChefService) List() ([]*types.Chef, error) {
	chefs, err := s.store.ListChefs()
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list chefs")
		return nil, storeError(err, "list chefs")
	}
	return chefs, nil
}

// Delete removes a chef after confirming it exists
func (s *ChefService) Delete(id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.store.DeleteChef(id); err != nil {
		s.logger.Error().Err(err).Str("id", id).Msg("Failed to delete chef")
		return storeError(err, "delete chef %s", id)
	}

	s.logger.Info().Str("id", id).Msg("Chef deleted")
	publish(s.events, events.EventChefDeleted, id, "Chef deleted", nil)
	return nil
}
