package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ekuzmina/fridge-recipes/internal/logger"
	"github.com/ekuzmina/fridge-recipes/internal/models"
	"github.com/ekuzmina/fridge-recipes/internal/services"
)

// RecipePersister defines the interface that the persist service must implement.
type RecipePersister interface {
	Persist(ctx context.Context, recipeID int64) (*models.RecipeResponse, error)
}

// RecipeGetter defines the interface that the recipe read service must implement.
type RecipeGetter interface {
	Get(ctx context.Context, recipeID int64) (*models.RecipeResponse, error)
}

// PersistRecipeRequest represents the JSON body for persisting a recipe
// swagger:model PersistRecipeRequest
type PersistRecipeRequest struct {
	// Upstream recipe id
	// required: true
	// default: 632660
	RecipeID int64 `json:"recipe_id"`
}

// RecipeErrorResponse represents an error response for recipe operations
// swagger:model RecipeErrorResponse
type RecipeErrorResponse struct {
	// Error message
	// default: Recipe not found
	Error string `json:"error"`
}

// NewPersistRecipeHandler returns an HTTP handler that stores a selected
// recipe with its ingredients, instructions and equipment.
// @Summary Persist a recipe
// @Description Fetches the recipe from the upstream provider and stores it with its ingredients, instructions and equipment. Idempotent: an already stored recipe is returned as-is.
// @Tags recipes
// @Accept json
// @Produce json
// @Param persistRecipeRequest body handlers.PersistRecipeRequest true "Recipe persist request"
// @Success 201 {object} models.RecipeResponse "Stored recipe"
// @Failure 400 {object} handlers.RecipeErrorResponse "Invalid recipe id"
// @Failure 502 {object} handlers.RecipeErrorResponse "Recipe provider unavailable"
// @Router /recipes [post]
// @Security BearerAuth
func NewPersistRecipeHandler(svc RecipePersister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PersistRecipeRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RecipeErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		recipe, err := svc.Persist(r.Context(), req.RecipeID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(RecipeErrorResponse{
					Error: "Invalid recipe id",
				})
			case errors.Is(err, services.ErrUpstreamUnavailable):
				w.WriteHeader(http.StatusBadGateway)
				json.NewEncoder(w).Encode(RecipeErrorResponse{
					Error: "Recipe provider unavailable",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(RecipeErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(recipe)
	}
}

// NewGetRecipeHandler returns an HTTP handler for reading a stored recipe.
// @Summary Get a stored recipe
// @Description Returns the stored recipe with its ingredients, ordered instructions and equipment
// @Tags recipes
// @Produce json
// @Param recipeID path int true "Recipe ID"
// @Success 200 {object} models.RecipeResponse "Stored recipe"
// @Failure 400 {object} handlers.RecipeErrorResponse "Invalid recipe id"
// @Failure 404 {object} handlers.RecipeErrorResponse "Recipe not found"
// @Router /recipes/{recipeID} [get]
// @Security BearerAuth
func NewGetRecipeHandler(svc RecipeGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recipeID, err := strconv.ParseInt(chi.URLParam(r, "recipeID"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RecipeErrorResponse{
				Error: "Invalid recipe id",
			})
			return
		}

		recipe, err := svc.Get(r.Context(), recipeID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrRecipeNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(RecipeErrorResponse{
					Error: "Recipe not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(RecipeErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(recipe)
	}
}
