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

// ViewerService manages the viewers collection
type ViewerService struct {
	store  storage.ViewerStore
	events events.Publisher
	logger zerolog.Logger
}

// NewViewerService creates a viewer service; publisher may be nil
func NewViewerService(store storage.ViewerStore, publisher events.Publisher) *ViewerService {
	return &ViewerService{
		store:  store,
		events: publisher,
		logger: log.WithComponent("viewer-service"),
	}
}

// Create adds a viewer. Names are unique among viewers.
func (s *ViewerService) Create(fullName string) (*types.Viewer, error) {
	if err := ValidateName(fullName); err != nil {
		return nil, err
	}

	existing, err := s.store.GetViewerByName(fullName)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		s.logger.Error().Err(err).Str("full_name", fullName).Msg("Failed to look up viewer")
		return nil, storeError(err, "check viewer %q", fullName)
	}
	if existing != nil {
		s.logger.Warn().Str("full_name", fullName).Msg("Viewer already exists")
		return nil, conflict("viewer %q", fullName)
	}

	viewer := types.NewViewer(uuid.New().String(), fullName)
	if err := s.store.CreateViewer(viewer); err != nil {
		s.logger.Error().Err(err).Str("full_name", fullName).Msg("Failed to create viewer")
		return nil, storeError(err, "create viewer %q", fullName)
	}

	s.logger.Info().Str("id", viewer.ID).Str("full_name", fullName).Msg("Viewer created")
	publish(s.events, events.EventViewerCreated, viewer.ID, "Viewer created", map[string]string{"full_name": fullName})
	return viewer, nil
}

// Get returns the viewer with the given id
func (s *ViewerService) Get(id string) (*types.Viewer, error) {
	viewer, err := s.store.GetViewer(id)
	if err != nil {
		return nil, storeError(err, "viewer %s", id)
	}
	return viewer, nil
}

// GetByName returns the viewer with the given full name
func (s *ViewerService) GetByName(fullName string) (*types.Viewer, error) {
	viewer, err := s.store.GetViewerByName(fullName)
	if err != nil {
		return nil, storeError(err, "viewer %q", fullName)
	}
	return viewer, nil
}

// List returns every viewer
func (s *ViewerService) List() ([]*types.Viewer, error) {
	viewers, err := s.store.ListViewers()
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list viewers")
		return nil, storeError(err, "list viewers")
	}
	return viewers, nil
}

// Delete removes a viewer after confirming it exists
func (s *ViewerService) Delete(id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.store.DeleteViewer(id); err != nil {
		s.logger.Error().Err(err).Str("id", id).Msg("Failed to delete viewer")
		return storeError(err, "delete viewer %s", id)
	}

	s.logger.Info().Str("id", id).Msg("Viewer deleted")
	publish(s.events, events.EventViewerDeleted, id, "Viewer deleted", nil)
	return nil
}
