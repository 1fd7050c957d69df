package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ekuzmina/fridge-recipes/internal/logger"
	"github.com/ekuzmina/fridge-recipes/internal/models"
	"github.com/ekuzmina/fridge-recipes/internal/services"
)

// Searcher defines the interface that the search service must implement.
type Searcher interface {
	Search(ctx context.Context, ingredients string) ([]models.RecipeResponse, error)
}

// SearchRequest represents the JSON body for an ingredient search
// swagger:model SearchRequest
type SearchRequest struct {
	// Comma-separated ingredient list
	// required: true
	// default: apples,flour,sugar
	Ingredients string `json:"ingredients"`
}

// SearchResponse represents a successful search response
// swagger:model SearchResponse
type SearchResponse struct {
	// Matched recipes
	Recipes []models.RecipeResponse `json:"recipes"`
}

// SearchErrorResponse represents an error response for search
// swagger:model SearchErrorResponse
type SearchErrorResponse struct {
	// Error message
	// default: Ingredients are required
	Error string `json:"error"`
}

// NewSearchHandler returns an HTTP handler for searching recipes by
// fridge ingredients.
// @Summary Search recipes by ingredients
// @Description Returns up to the configured number of recipes matching the given comma-separated ingredient list
// @Tags recipes
// @Accept json
// @Produce json
// @Param searchRequest body handlers.SearchRequest true "Ingredient search request"
// @Success 200 {object} handlers.SearchResponse "Matched recipes"
// @Failure 400 {object} handlers.SearchErrorResponse "Ingredients are required"
// @Failure 502 {object} handlers.SearchErrorResponse "Recipe provider unavailable"
// @Router /search [post]
// @Security BearerAuth
func NewSearchHandler(svc Searcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SearchRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SearchErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		recipes, err := svc.Search(r.Context(), req.Ingredients)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SearchErrorResponse{
					Error: "Ingredients are required",
				})
			case errors.Is(err, services.ErrUpstreamUnavailable):
				w.WriteHeader(http.StatusBadGateway)
				json.NewEncoder(w).Encode(SearchErrorResponse{
					Error: "Recipe provider unavailable",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SearchErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SearchResponse{
			Recipes: recipes,
		})
	}
}
