package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ekuzmina/fridge-recipes/internal/logger"
	"github.com/ekuzmina/fridge-recipes/internal/models"
	"github.com/ekuzmina/fridge-recipes/internal/services"
)

// SaveTokener defines only the token methods needed by this handler.
type SaveTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetUserID(ctx context.Context, tokenString string) (int64, error)
}

// RecipeSaver defines the interface that the saved-recipe service must implement.
type RecipeSaver interface {
	Save(ctx context.Context, userID, recipeID int64, favorite bool) (*models.SavedRecipeDB, error)
}

// SaveRecipeRequest represents the optional JSON body for saving a recipe
// swagger:model SaveRecipeRequest
type SaveRecipeRequest struct {
	// Mark the recipe as favorite immediately
	// default: false
	Favorite bool `json:"favorite"`
}

// SaveRecipeResponse represents a successful save response
// swagger:model SaveRecipeResponse
type SaveRecipeResponse struct {
	// Success message
	// default: Recipe saved
	Message string `json:"message"`

	// Saved association
	Saved *models.SavedRecipeDB `json:"saved"`
}

// SaveRecipeErrorResponse represents an error response for saving a recipe
// swagger:model SaveRecipeErrorResponse
type SaveRecipeErrorResponse struct {
	// Error message
	// default: Recipe not found
	Error string `json:"error"`
}

// NewSaveRecipeHandler returns an HTTP handler that adds a stored recipe
// to the user's collection. Saving twice keeps the single existing row.
// @Summary Save a recipe for the user
// @Description Adds the stored recipe to the authenticated user's collection. Repeated saves are no-ops and never clear an earlier favorite mark.
// @Tags saved
// @Accept json
// @Produce json
// @Param recipeID path int true "Recipe ID"
// @Param saveRecipeRequest body handlers.SaveRecipeRequest false "Save options"
// @Success 201 {object} handlers.SaveRecipeResponse "Recipe saved"
// @Failure 401 {object} handlers.SaveRecipeErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.SaveRecipeErrorResponse "Recipe not found"
// @Router /recipes/{recipeID}/save [post]
// @Security BearerAuth
func NewSaveRecipeHandler(svc RecipeSaver, tokenGetter SaveTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := userIDFromRequest(ctx, r, tokenGetter)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(SaveRecipeErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		recipeID, err := strconv.ParseInt(chi.URLParam(r, "recipeID"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SaveRecipeErrorResponse{
				Error: "Invalid recipe id",
			})
			return
		}

		// The body is optional; an empty body means default options.
		var req SaveRecipeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SaveRecipeErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		saved, err := svc.Save(ctx, userID, recipeID, req.Favorite)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SaveRecipeErrorResponse{
					Error: "Invalid recipe id",
				})
			case errors.Is(err, services.ErrRecipeNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(SaveRecipeErrorResponse{
					Error: "Recipe not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SaveRecipeErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(SaveRecipeResponse{
			Message: "Recipe saved",
			Saved:   saved,
		})
	}
}

func userIDFromRequest(ctx context.Context, r *http.Request, tokenGetter SaveTokener) (int64, error) {
	tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Error("unauthorized request: missing or invalid token")
		return 0, err
	}

	userID, err := tokenGetter.GetUserID(ctx, tokenStr)
	if err != nil {
		logger.Log.Errorw("failed to parse token claims", "error", err)
		return 0, err
	}

	return userID, nil
}
