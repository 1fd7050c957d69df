package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ekuzmina/fridge-recipes/internal/logger"
	"github.com/ekuzmina/fridge-recipes/internal/models"
)

// SavedRecipesTokener defines only the token methods needed by these handlers.
type SavedRecipesTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetUserID(ctx context.Context, tokenString string) (int64, error)
}

// SavedRecipeLister defines the interface that the saved-recipe service must implement.
type SavedRecipeLister interface {
	List(ctx context.Context, userID int64) ([]models.SavedRecipeResponse, error)
	ListFavorites(ctx context.Context, userID int64) ([]models.SavedRecipeResponse, error)
}

// SavedRecipesResponse represents the user's saved-recipe collection
// swagger:model SavedRecipesResponse
type SavedRecipesResponse struct {
	// Saved recipes with recipe summaries
	Recipes []models.SavedRecipeResponse `json:"recipes"`
}

// SavedRecipesErrorResponse represents an error response for listing
// swagger:model SavedRecipesErrorResponse
type SavedRecipesErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewListSavedRecipesHandler returns an HTTP handler listing all recipes
// the user has saved.
// @Summary List saved recipes
// @Description Returns every recipe in the authenticated user's collection
// @Tags saved
// @Produce json
// @Success 200 {object} handlers.SavedRecipesResponse "Saved recipes"
// @Failure 401 {object} handlers.SavedRecipesErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.SavedRecipesErrorResponse "Internal server error"
// @Router /saved-recipes [get]
// @Security BearerAuth
func NewListSavedRecipesHandler(svc SavedRecipeLister, tokenGetter SavedRecipesTokener) http.HandlerFunc {
	return listHandler(tokenGetter, func(ctx context.Context, userID int64) ([]models.SavedRecipeResponse, error) {
		return svc.List(ctx, userID)
	})
}

// NewListFavoriteRecipesHandler returns an HTTP handler listing the user's
// favorited recipes.
// @Summary List favorite recipes
// @Description Returns the favorited recipes in the authenticated user's collection
// @Tags saved
// @Produce json
// @Success 200 {object} handlers.SavedRecipesResponse "Favorite recipes"
// @Failure 401 {object} handlers.SavedRecipesErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.SavedRecipesErrorResponse "Internal server error"
// @Router /saved-recipes/favorites [get]
// @Security BearerAuth
func NewListFavoriteRecipesHandler(svc SavedRecipeLister, tokenGetter SavedRecipesTokener) http.HandlerFunc {
	return listHandler(tokenGetter, func(ctx context.Context, userID int64) ([]models.SavedRecipeResponse, error) {
		return svc.ListFavorites(ctx, userID)
	})
}

func listHandler(
	tokenGetter SavedRecipesTokener,
	list func(ctx context.Context, userID int64) ([]models.SavedRecipeResponse, error),
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := userIDFromRequest(ctx, r, tokenGetter)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(SavedRecipesErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		recipes, err := list(ctx, userID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(SavedRecipesErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SavedRecipesResponse{
			Recipes: recipes,
		})
	}
}
