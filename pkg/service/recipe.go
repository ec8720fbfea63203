package service

import (
	"errors"
	"strconv"
	"strings"

	"github.com/cuemby/cookshow/pkg/events"
	"github.com/cuemby/cookshow/pkg/log"
	"github.com/cuemby/cookshow/pkg/storage"
	"github.com/cuemby/cookshow/pkg/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RecipeInput is the flat form of a new recipe. Ingredients are comma
// separated, instructions semicolon separated.
type RecipeInput struct {
	Title        string `json:"title" yaml:"title"`
	Author       string `json:"author" yaml:"author"`
	Ingredients  string `json:"ingredients" yaml:"ingredients"`
	Instructions string `json:"instructions" yaml:"instructions"`
}

// RecipePatch holds the fields to replace on update; nil fields are kept
type RecipePatch struct {
	Title        *string `json:"title,omitempty"`
	Author       *string `json:"author,omitempty"`
	Ingredients  *string `json:"ingredients,omitempty"`
	Instructions *string `json:"instructions,omitempty"`
}

// RecipeService manages recipes and resolves their authors
type RecipeService struct {
	store        storage.RecipeStore
	chefs        storage.ChefStore
	viewers      storage.ViewerStore
	participants *ParticipantService
	events       events.Publisher
	logger       zerolog.Logger
}

// NewRecipeService creates a recipe service; publisher may be nil
func NewRecipeService(
	store storage.RecipeStore,
	chefs storage.ChefStore,
	viewers storage.ViewerStore,
	participants *ParticipantService,
	publisher events.Publisher,
) *RecipeService {
	return &RecipeService{
		store:        store,
		chefs:        chefs,
		viewers:      viewers,
		participants: participants,
		events:       publisher,
		logger:       log.WithComponent("recipe-service"),
	}
}

// Create parses the flat input, numbers the recipe and stores it
func (s *RecipeService) Create(input RecipeInput) (*types.Recipe, error) {
	if strings.TrimSpace(input.Author) == "" {
		return nil, invalid("recipe author cannot be empty")
	}

	num, err := s.nextNum()
	if err != nil {
		return nil, err
	}

	recipe := &types.Recipe{
		ID:           uuid.New().String(),
		Title:        input.Title,
		Author:       input.Author,
		Num:          num,
		Ingredients:  ParseIngredients(input.Ingredients),
		Instructions: ParseInstructions(input.Instructions),
	}
	if err := s.store.CreateRecipe(recipe); err != nil {
		s.logger.Error().Err(err).Str("author", input.Author).Msg("Failed to create recipe")
		return nil, storeError(err, "create recipe by %q", input.Author)
	}

	s.logger.Info().
		Str("id", recipe.ID).
		Str("author", recipe.Author).
		Int("num", recipe.Num).
		Msg("Recipe created")
	publish(s.events, events.EventRecipeCreated, recipe.ID, "Recipe created", map[string]string{
		"author": recipe.Author,
		"num":    strconv.Itoa(recipe.Num),
	})
	return recipe, nil
}

// nextNum returns one past the highest number in use, or 1 when there are
// no recipes. Concurrent creates may receive the same number.
func (s *RecipeService) nextNum() (int, error) {
	recipes, err := s.store.ListRecipes()
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list recipes for numbering")
		return 0, storeError(err, "number recipe")
	}
	highest := 0
	for _, r := range recipes {
		if r.Num > highest {
			highest = r.Num
		}
	}
	return highest + 1, nil
}

// Get returns the recipe with the given id
func (s *RecipeService) Get(id string) (*types.Recipe, error) {
	recipe, err := s.store.GetRecipe(id)
	if err != nil {
		return nil, storeError(err, "recipe %s", id)
	}
	return recipe, nil
}

// GetByParticipant returns the recipe written by a participant together
// with that participant's season
func (s *RecipeService) GetByParticipant(authorName string) (*types.RecipeView, error) {
	recipe, err := s.store.GetRecipeByAuthor(authorName)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		s.logger.Error().Err(err).Str("author", authorName).Msg("Failed to look up recipe")
		return nil, storeError(err, "recipe by %q", authorName)
	}

	participant, perr := s.participants.GetByName(authorName)
	if perr != nil {
		return nil, perr
	}

	if recipe == nil {
		s.logger.Debug().Str("author", authorName).Msg("Participant has no recipe")
		return nil, notFound("recipe by participant %q", authorName)
	}

	return types.NewRecipeView(recipe, participant.Season), nil
}

// GetByAuthor returns the recipe of a chef or viewer. The name must belong to
// at least one of the two collections.
func (s *RecipeService) GetByAuthor(name string) (*types.Recipe, error) {
	known, err := s.isChefOrViewer(name)
	if err != nil {
		return nil, err
	}
	if !known {
		s.logger.Debug().Str("author", name).Msg("Author is neither chef nor viewer")
		return nil, notFound("author %q", name)
	}

	recipe, err := s.store.GetRecipeByAuthor(name)
	if err != nil {
		return nil, storeError(err, "recipe by %q", name)
	}
	return recipe, nil
}

func (s *RecipeService) isChefOrViewer(name string) (bool, error) {
	_, err := s.chefs.GetChefByName(name)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return false, storeError(err, "chef %q", name)
	}

	_, err = s.viewers.GetViewerByName(name)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return false, storeError(err, "viewer %q", name)
	}
	return false, nil
}

// List returns every recipe
func (s *RecipeService) List() ([]*types.Recipe, error) {
	recipes, err := s.store.ListRecipes()
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list recipes")
		return nil, storeError(err, "list recipes")
	}
	return recipes, nil
}

// GetByNumber returns the recipe with the given sequence number
func (s *RecipeService) GetByNumber(num int) (*types.Recipe, error) {
	recipe, err := s.store.GetRecipeByNum(num)
	if err != nil {
		return nil, storeError(err, "recipe #%d", num)
	}
	return recipe, nil
}

// ListBySeason returns a view for every participant of the season that has
// a recipe, in participant order. Participants without a recipe are skipped.
func (s *RecipeService) ListBySeason(season int) ([]*types.RecipeView, error) {
	participants, err := s.participants.ListBySeason(season)
	if err != nil {
		return nil, err
	}

	views := make([]*types.RecipeView, 0, len(participants))
	for _, p := range participants {
		view, err := s.GetByParticipant(p.FullName)
		if err != nil {
			if !errors.Is(err, ErrNotFound) {
				return nil, err
			}
			s.logger.Warn().
				Str("participant", p.FullName).
				Int("season", season).
				Msg("Participant has no recipe, skipping")
			continue
		}
		views = append(views, view)
	}
	return views, nil
}

// ListByIngredient returns recipes that list the exact ingredient
func (s *RecipeService) ListByIngredient(ingredient string) ([]*types.Recipe, error) {
	recipes, err := s.store.ListRecipesByIngredient(ingredient)
	if err != nil {
		s.logger.Error().Err(err).Str("ingredient", ingredient).Msg("Failed to list recipes")
		return nil, storeError(err, "list recipes with %q", ingredient)
	}
	return recipes, nil
}

// Update replaces the fields present in patch. The number never changes.
func (s *RecipeService) Update(id string, patch RecipePatch) (*types.Recipe, error) {
	recipe, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		recipe.Title = *patch.Title
	}
	if patch.Author != nil {
		if strings.TrimSpace(*patch.Author) == "" {
			return nil, invalid("recipe author cannot be empty")
		}
		recipe.Author = *patch.Author
	}
	if patch.Ingredients != nil {
		recipe.Ingredients = ParseIngredients(*patch.Ingredients)
	}
	if patch.Instructions != nil {
		recipe.Instructions = ParseInstructions(*patch.Instructions)
	}

	if err := s.store.UpdateRecipe(recipe); err != nil {
		s.logger.Error().Err(err).Str("id", id).Msg("Failed to update recipe")
		return nil, storeError(err, "update recipe %s", id)
	}

	s.logger.Info().Str("id", id).Msg("Recipe updated")
	publish(s.events, events.EventRecipeUpdated, id, "Recipe updated", map[string]string{"author": recipe.Author})
	return recipe, nil
}

// Delete removes a recipe after confirming it exists
func (s *RecipeService) Delete(id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.store.DeleteRecipe(id); err != nil {
		s.logger.Error().Err(err).Str("id", id).Msg("Failed to delete recipe")
		return storeError(err, "delete recipe %s", id)
	}

	s.logger.Info().Str("id", id).Msg("Recipe deleted")
	publish(s.events, events.EventRecipeDeleted, id, "Recipe deleted", nil)
	return nil
}
