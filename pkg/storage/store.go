package storage

import (
	"errors"

	"github.com/cuemby/cookshow/pkg/types"
)

// ErrNotFound is wrapped by every lookup that finds no matching record
var ErrNotFound = errors.New("not found")

// ChefStore persists chefs
type ChefStore interface {
	CreateChef(chef *types.Chef) error
	GetChef(id string) (*types.Chef, error)
	GetChefByName(fullName string) (*types.Chef, error)
	ListChefs() ([]*types.Chef, error)
	UpdateChef(chef *types.Chef) error
	DeleteChef(id string) error
}

// ViewerStore persists viewers
type ViewerStore interface {
	CreateViewer(viewer *types.Viewer) error
	GetViewer(id string) (*types.Viewer, error)
	GetViewerByName(fullName string) (*types.Viewer, error)
	ListViewers() ([]*types.Viewer, error)
	UpdateViewer(viewer *types.Viewer) error
	DeleteViewer(id string) error
}

// ParticipantStore persists participants
type ParticipantStore interface {
	CreateParticipant(participant *types.Participant) error
	GetParticipant(id string) (*types.Participant, error)
	GetParticipantByName(fullName string) (*types.Participant, error)
	ListParticipants() ([]*types.Participant, error)
	ListParticipantsBySeason(season int) ([]*types.Participant, error)
	UpdateParticipant(participant *types.Participant) error
	DeleteParticipant(id string) error
}

// RecipeStore persists recipes
type RecipeStore interface {
	CreateRecipe(recipe *types.Recipe) error
	GetRecipe(id string) (*types.Recipe, error)
	// GetRecipeByAuthor returns the first recipe whose author matches exactly
	GetRecipeByAuthor(author string) (*types.Recipe, error)
	GetRecipeByNum(num int) (*types.Recipe, error)
	ListRecipes() ([]*types.Recipe, error)
	ListRecipesByIngredient(ingredient string) ([]*types.Recipe, error)
	UpdateRecipe(recipe *types.Recipe) error
	DeleteRecipe(id string) error
}

// Store defines the interface for cookshow state storage.
// Create and Update are upserts keyed by ID; Delete is idempotent.
type Store interface {
	ChefStore
	ViewerStore
	ParticipantStore
	RecipeStore

	// Utility
	Ping() error
	Close() error
}
