package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/ekuzmina/fridge-recipes/internal/logger"
	"github.com/ekuzmina/fridge-recipes/internal/models"
)

// SavedRecipeReadRepository handles saved-recipe read operations
type SavedRecipeReadRepository struct {
	db *sqlx.DB
}

func NewSavedRecipeReadRepository(db *sqlx.DB) *SavedRecipeReadRepository {
	return &SavedRecipeReadRepository{db: db}
}

// Get returns the association for a (user, recipe) pair, or nil when the
// user never saved that recipe.
func (r *SavedRecipeReadRepository) Get(ctx context.Context, userID, recipeID int64) (*models.SavedRecipeDB, error) {
	const query = `
		SELECT saved_id, user_id, recipe_id, favorite, tried, rating, comment
		FROM saved_recipes
		WHERE user_id = $1 AND recipe_id = $2
	`

	var saved models.SavedRecipeDB
	err := r.db.GetContext(ctx, &saved, query, userID, recipeID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, recipeID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &saved, nil
}

// GetByUser returns all saved recipes of a user joined with recipe display
// fields. An unknown user yields an empty slice.
func (r *SavedRecipeReadRepository) GetByUser(ctx context.Context, userID int64) ([]models.SavedRecipeWithRecipeDB, error) {
	const query = `
		SELECT sr.saved_id, sr.user_id, sr.recipe_id, sr.favorite, sr.tried, sr.rating, sr.comment,
		       r.title, r.image, r.servings, r.source_url
		FROM saved_recipes sr
		JOIN recipes r ON r.recipe_id = sr.recipe_id
		WHERE sr.user_id = $1
		ORDER BY sr.saved_id
	`

	var saved []models.SavedRecipeWithRecipeDB
	err := r.db.SelectContext(ctx, &saved, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(saved),
		"error", err,
	)

	return saved, err
}

// GetFavoritesByUser returns the user's favorited saved recipes
func (r *SavedRecipeReadRepository) GetFavoritesByUser(ctx context.Context, userID int64) ([]models.SavedRecipeWithRecipeDB, error) {
	const query = `
		SELECT sr.saved_id, sr.user_id, sr.recipe_id, sr.favorite, sr.tried, sr.rating, sr.comment,
		       r.title, r.image, r.servings, r.source_url
		FROM saved_recipes sr
		JOIN recipes r ON r.recipe_id = sr.recipe_id
		WHERE sr.user_id = $1 AND sr.favorite = TRUE
		ORDER BY sr.saved_id
	`

	var saved []models.SavedRecipeWithRecipeDB
	err := r.db.SelectContext(ctx, &saved, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(saved),
		"error", err,
	)

	return saved, err
}

// SavedRecipeWriteRepository handles saved-recipe write operations
type SavedRecipeWriteRepository struct {
	db *sqlx.DB
}

func NewSavedRecipeWriteRepository(db *sqlx.DB) *SavedRecipeWriteRepository {
	return &SavedRecipeWriteRepository{db: db}
}

// Save performs an UPSERT: creates the association if absent, otherwise
// keeps the existing row. The favorite flag only ever goes from false to
// true, so repeated saves cannot revert it.
func (r *SavedRecipeWriteRepository) Save(ctx context.Context, userID, recipeID int64, favorite bool) (*models.SavedRecipeDB, error) {
	query := `
		INSERT INTO saved_recipes (user_id, recipe_id, favorite, tried, created_at, updated_at)
		VALUES ($1, $2, $3, FALSE, NOW(), NOW())
		ON CONFLICT (user_id, recipe_id)
		DO UPDATE SET favorite = saved_recipes.favorite OR EXCLUDED.favorite, updated_at = NOW()
		RETURNING saved_id, user_id, recipe_id, favorite, tried, rating, comment
	`
	args := []any{userID, recipeID, favorite}

	var saved models.SavedRecipeDB
	err := sqlx.GetContext(ctx, r.db, &saved, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &saved, nil
}

// Favorite marks an existing association as favorite. It returns
// sql.ErrNoRows when the user never saved the recipe.
func (r *SavedRecipeWriteRepository) Favorite(ctx context.Context, userID, recipeID int64) error {
	query := `
		UPDATE saved_recipes
		SET favorite = TRUE, updated_at = NOW()
		WHERE user_id = $1 AND recipe_id = $2
	`
	args := []any{userID, recipeID}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
