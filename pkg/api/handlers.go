package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/cuemby/cookshow/pkg/service"
)

// CreateCookerRequest is the body of POST /chef and POST /viewer
type CreateCookerRequest struct {
	FullName string `json:"fullName"`
}

// CreateParticipantRequest is the body of POST /participant
type CreateParticipantRequest struct {
	FullName string `json:"fullName"`
	Season   int    `json:"season"`
}

// intPathValue parses a numeric path segment
func intPathValue(r *http.Request, name string) (int, error) {
	raw := r.PathValue(name)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", name, raw)
	}
	return n, nil
}

// Chef handlers

func (s *Server) handleCreateChef(w http.ResponseWriter, r *http.Request) {
	var req CreateCookerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		badRequest(w, r, err)
		return
	}
	chef, err := s.services.Chefs.Create(req.FullName)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, chef)
}

func (s *Server) handleGetChef(w http.ResponseWriter, r *http.Request) {
	chef, err := s.services.Chefs.Get(r.PathValue("id"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, chef)
}

func (s *Server) handleDeleteChef(w http.ResponseWriter, r *http.Request) {
	if err := s.services.Chefs.Delete(r.PathValue("id")); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Participant handlers

func (s *Server) handleCreateParticipant(w http.ResponseWriter, r *http.Request) {
	var req CreateParticipantRequest
	if err := decodeJSON(w, r, &req); err != nil {
		badRequest(w, r, err)
		return
	}
	participant, err := s.services.Participants.Create(req.FullName, req.Season)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, participant)
}

func (s *Server) handleGetParticipantByName(w http.ResponseWriter, r *http.Request) {
	participant, err := s.services.Participants.GetByName(r.PathValue("fullName"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, participant)
}

func (s *Server) handleGetParticipant(w http.ResponseWriter, r *http.Request) {
	participant, err := s.services.Participants.Get(r.PathValue("id"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, participant)
}

func (s *Server) handleDeleteParticipant(w http.ResponseWriter, r *http.Request) {
	if err := s.services.Participants.Delete(r.PathValue("id")); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Viewer handlers

func (s *Server) handleCreateViewer(w http.ResponseWriter, r *http.Request) {
	var req CreateCookerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		badRequest(w, r, err)
		return
	}
	viewer, err := s.services.Viewers.Create(req.FullName)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, viewer)
}

func (s *Server) handleGetViewerByName(w http.ResponseWriter, r *http.Request) {
	viewer, err := s.services.Viewers.GetByName(r.PathValue("fullName"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, viewer)
}

func (s *Server) handleDeleteViewer(w http.ResponseWriter, r *http.Request) {
	if err := s.services.Viewers.Delete(r.PathValue("id")); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Recipe handlers

func (s *Server) handleCreateRecipe(w http.ResponseWriter, r *http.Request) {
	var input service.RecipeInput
	if err := decodeJSON(w, r, &input); err != nil {
		badRequest(w, r, err)
		return
	}
	recipe, err := s.services.Recipes.Create(input)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, recipe)
}

func (s *Server) handleListRecipes(w http.ResponseWriter, r *http.Request) {
	recipes, err := s.services.Recipes.List()
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, recipes)
}

func (s *Server) handleGetRecipeByParticipant(w http.ResponseWriter, r *http.Request) {
	view, err := s.services.Recipes.GetByParticipant(r.PathValue("authorName"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// handleGetRecipeByAuthor serves both the chef and the viewer lookup; either
// accepts a name found among chefs or viewers
func (s *Server) handleGetRecipeByAuthor(param string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recipe, err := s.services.Recipes.GetByAuthor(r.PathValue(param))
		if err != nil {
			s.writeServiceError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, recipe)
	}
}

func (s *Server) handleGetRecipeByNumber(w http.ResponseWriter, r *http.Request) {
	num, err := intPathValue(r, "number")
	if err != nil {
		badRequest(w, r, err)
		return
	}
	recipe, err := s.services.Recipes.GetByNumber(num)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, recipe)
}

func (s *Server) handleListRecipesBySeason(w http.ResponseWriter, r *http.Request) {
	season, err := intPathValue(r, "season")
	if err != nil {
		badRequest(w, r, err)
		return
	}
	views, err := s.services.Recipes.ListBySeason(season)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, views)
}

func (s *Server) handleListRecipesByIngredient(w http.ResponseWriter, r *http.Request) {
	recipes, err := s.services.Recipes.ListByIngredient(r.PathValue("ingredient"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, recipes)
}

func (s *Server) handleUpdateRecipe(w http.ResponseWriter, r *http.Request) {
	var patch service.RecipePatch
	if err := decodeJSON(w, r, &patch); err != nil {
		badRequest(w, r, err)
		return
	}
	recipe, err := s.services.Recipes.Update(r.PathValue("id"), patch)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, recipe)
}

func (s *Server) handleDeleteRecipe(w http.ResponseWriter, r *http.Request) {
	if err := s.services.Recipes.Delete(r.PathValue("id")); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
