package api

import (
	"net/http"

	"github.com/cuemby/cookshow/pkg/metrics"
)

// setupRoutes configures all HTTP routes and middleware
func (s *Server) setupRoutes() http.Handler {
	mux := http.NewServeMux()

	// System endpoints (no rate limiting)
	registerSystemRoutes(mux)

	// Chefs
	s.route(mux, "POST /chef", s.handleCreateChef)
	s.route(mux, "GET /chef/{id}", s.handleGetChef)
	s.route(mux, "DELETE /chef/{id}", s.handleDeleteChef)

	// Participants
	s.route(mux, "POST /participant", s.handleCreateParticipant)
	s.route(mux, "GET /participant/name/{fullName}", s.handleGetParticipantByName)
	s.route(mux, "GET /participant/id/{id}", s.handleGetParticipant)
	s.route(mux, "DELETE /participant/{id}", s.handleDeleteParticipant)

	// Viewers
	s.route(mux, "POST /viewer", s.handleCreateViewer)
	s.route(mux, "GET /viewer/{fullName}", s.handleGetViewerByName)
	s.route(mux, "DELETE /viewer/{id}", s.handleDeleteViewer)

	// Recipes
	s.route(mux, "POST /recipe", s.handleCreateRecipe)
	s.route(mux, "GET /recipe", s.handleListRecipes)
	s.route(mux, "GET /recipe/participant/{authorName}", s.handleGetRecipeByParticipant)
	s.route(mux, "GET /recipe/chef/{chefName}", s.handleGetRecipeByAuthor("chefName"))
	s.route(mux, "GET /recipe/viewer/{viewerName}", s.handleGetRecipeByAuthor("viewerName"))
	s.route(mux, "GET /recipe/number/{number}", s.handleGetRecipeByNumber)
	s.route(mux, "GET /recipe/season/{season}", s.handleListRecipesBySeason)
	s.route(mux, "GET /recipe/ingredient/{ingredient}", s.handleListRecipesByIngredient)
	s.route(mux, "PUT /recipe/{id}", s.handleUpdateRecipe)
	s.route(mux, "DELETE /recipe/{id}", s.handleDeleteRecipe)

	return mux
}

func (s *Server) route(mux *http.ServeMux, pattern string, handler http.HandlerFunc) {
	mux.HandleFunc(pattern, s.withMiddleware(pattern, handler))
}

// registerSystemRoutes mounts health, readiness and metrics endpoints
func registerSystemRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", metrics.HealthHandler())
	mux.HandleFunc("GET /ready", metrics.ReadyHandler())
	mux.Handle("GET /metrics", metrics.Handler())
}
