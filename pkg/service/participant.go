package service

import (
	"errors"
	"strconv"

	"github.com/cuemby/cookshow/pkg/events"
	"github.com/cuemby/cookshow/pkg/log"
	"github.com/cuemby/cookshow/pkg/storage"
	"github.com/cuemby/cookshow/pkg/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ParticipantService manages the participants collection
type ParticipantService struct {
	store  storage.ParticipantStore
	events events.Publisher
	logger zerolog.Logger
}

// NewParticipantService creates a participant service; publisher may be nil
func NewParticipantService(store storage.ParticipantStore, publisher events.Publisher) *ParticipantService {
	return &ParticipantService{
		store:  store,
		events: publisher,
		logger: log.WithComponent("participant-service"),
	}
}

// Create adds a participant to a season. Names are unique among participants
// regardless of season.
func (s *ParticipantService) Create(fullName string, season int) (*types.Participant, error) {
	if err := ValidateName(fullName); err != nil {
		return nil, err
	}
	if err := ValidateSeason(season); err != nil {
		return nil, err
	}

	existing, err := s.store.GetParticipantByName(fullName)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		s.logger.Error().Err(err).Str("full_name", fullName).Msg("Failed to look up participant")
		return nil, storeError(err, "check participant %q", fullName)
	}
	if existing != nil {
		s.logger.Warn().Str("full_name", fullName).Msg("Participant already exists")
		return nil, conflict("participant %q", fullName)
	}

	participant := types.NewParticipant(uuid.New().String(), fullName, season)
	if err := s.store.CreateParticipant(participant); err != nil {
		s.logger.Error().Err(err).Str("full_name", fullName).Msg("Failed to create participant")
		return nil, storeError(err, "create participant %q", fullName)
	}

	s.logger.Info().
		Str("id", participant.ID).
		Str("full_name", fullName).
		Int("season", season).
		Msg("Participant created")
	publish(s.events, events.EventParticipantCreated, participant.ID, "Participant created", map[string]string{
		"full_name": fullName,
		"season":    strconv.Itoa(season),
	})
	return participant, nil
}

// Get returns the participant with the given id
func (s *ParticipantService) Get(id string) (*types.Participant, error) {
	participant, err := s.store.GetParticipant(id)
	if err != nil {
		return nil, storeError(err, "participant %s", id)
	}
	return participant, nil
}

// GetByName returns the participant with the given full name
func (s *ParticipantService) GetByName(fullName string) (*types.Participant, error) {
	participant, err := s.store.GetParticipantByName(fullName)
	if err != nil {
		return nil, storeError(err, "participant %q", fullName)
	}
	return participant, nil
}

// List returns every participant
func (s *ParticipantService) List() ([]*types.Participant, error) {
	participants, err := s.store.ListParticipants()
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list participants")
		return nil, storeError(err, "list participants")
	}
	return participants, nil
}

// ListBySeason returns the participants of one season; none is not an error
func (s *ParticipantService) ListBySeason(season int) ([]*types.Participant, error) {
	participants, err := s.store.ListParticipantsBySeason(season)
	if err != nil {
		s.logger.Error().Err(err).Int("season", season).Msg("Failed to list participants")
		return nil, storeError(err, "list participants of season %d", season)
	}
	return participants, nil
}

// Delete removes a participant after confirming it exists
func (s *ParticipantService) Delete(id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.store.DeleteParticipant(id); err != nil {
		s.logger.Error().Err(err).Str("id", id).Msg("Failed to delete participant")
		return storeError(err, "delete participant %s", id)
	}

	s.logger.Info().Str("id", id).Msg("Participant deleted")
	publish(s.events, events.EventParticipantDeleted, id, "Participant deleted", nil)
	return nil
}
