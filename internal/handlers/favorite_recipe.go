package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ekuzmina/fridge-recipes/internal/logger"
	"github.com/ekuzmina/fridge-recipes/internal/services"
)

// FavoriteTokener defines only the token methods needed by this handler.
type FavoriteTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetUserID(ctx context.Context, tokenString string) (int64, error)
}

// RecipeFavoriter defines the interface that the saved-recipe service must implement.
type RecipeFavoriter interface {
	Favorite(ctx context.Context, userID, recipeID int64) error
}

// FavoriteRecipeResponse represents a successful favorite response
// swagger:model FavoriteRecipeResponse
type FavoriteRecipeResponse struct {
	// Success message
	// default: Recipe favorited
	Message string `json:"message"`
}

// FavoriteRecipeErrorResponse represents an error response for favoriting
// swagger:model FavoriteRecipeErrorResponse
type FavoriteRecipeErrorResponse struct {
	// Error message
	// default: Recipe is not saved
	Error string `json:"error"`
}

// NewFavoriteRecipeHandler returns an HTTP handler that marks a saved
// recipe as favorite. Favoriting an already favorited recipe is a no-op.
// @Summary Favorite a saved recipe
// @Description Marks a recipe in the authenticated user's collection as favorite
// @Tags saved
// @Produce json
// @Param recipeID path int true "Recipe ID"
// @Success 200 {object} handlers.FavoriteRecipeResponse "Recipe favorited"
// @Failure 401 {object} handlers.FavoriteRecipeErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.FavoriteRecipeErrorResponse "Recipe is not saved"
// @Router /recipes/{recipeID}/favorite [post]
// @Security BearerAuth
func NewFavoriteRecipeHandler(svc RecipeFavoriter, tokenGetter FavoriteTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := userIDFromRequest(ctx, r, tokenGetter)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(FavoriteRecipeErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		recipeID, err := strconv.ParseInt(chi.URLParam(r, "recipeID"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(FavoriteRecipeErrorResponse{
				Error: "Invalid recipe id",
			})
			return
		}

		if err := svc.Favorite(ctx, userID, recipeID); err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(FavoriteRecipeErrorResponse{
					Error: "Invalid recipe id",
				})
			case errors.Is(err, services.ErrSavedRecipeNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(FavoriteRecipeErrorResponse{
					Error: "Recipe is not saved",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(FavoriteRecipeErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(FavoriteRecipeResponse{
			Message: "Recipe favorited",
		})
	}
}
