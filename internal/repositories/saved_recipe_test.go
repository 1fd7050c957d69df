package repositories

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ekuzmina/fridge-recipes/internal/models"
)

func secondRecipe() models.RecipeDB {
	return models.RecipeDB{
		RecipeID:  632661,
		Title:     "Apple Crumble",
		Image:     "https://img.example.com/crumble.jpg",
		Servings:  6,
		SourceURL: "https://example.com/apple-crumble",
	}
}

func TestSavedRecipeWriteRepository_SaveUpsert(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	ctx := context.Background()

	user, err := NewUserWriteRepository(db).Save(ctx, "alice@example.com", "hash", "")
	assert.NoError(t, err)

	recipes := NewRecipeWriteRepository(db, nil)
	seedRecipe(t, recipes, 632660)

	repo := NewSavedRecipeWriteRepository(db)

	first, err := repo.Save(ctx, user.UserID, 632660, false)
	assert.NoError(t, err)
	assert.False(t, first.Favorite)

	// A repeated save keeps the single existing row.
	second, err := repo.Save(ctx, user.UserID, 632660, false)
	assert.NoError(t, err)
	assert.Equal(t, first.SavedID, second.SavedID)

	var count int
	err = db.Get(&count, "SELECT COUNT(*) FROM saved_recipes WHERE user_id=$1 AND recipe_id=$2", user.UserID, 632660)
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSavedRecipeWriteRepository_FavoriteMonotonic(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	ctx := context.Background()

	user, err := NewUserWriteRepository(db).Save(ctx, "bob@example.com", "hash", "")
	assert.NoError(t, err)

	recipes := NewRecipeWriteRepository(db, nil)
	seedRecipe(t, recipes, 632660)

	repo := NewSavedRecipeWriteRepository(db)

	saved, err := repo.Save(ctx, user.UserID, 632660, true)
	assert.NoError(t, err)
	assert.True(t, saved.Favorite)

	// Re-saving without the favorite flag must not clear it.
	saved, err = repo.Save(ctx, user.UserID, 632660, false)
	assert.NoError(t, err)
	assert.True(t, saved.Favorite)
}

func TestSavedRecipeWriteRepository_Favorite(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	ctx := context.Background()

	user, err := NewUserWriteRepository(db).Save(ctx, "carol@example.com", "hash", "")
	assert.NoError(t, err)

	recipes := NewRecipeWriteRepository(db, nil)
	seedRecipe(t, recipes, 632660)

	repo := NewSavedRecipeWriteRepository(db)
	readRepo := NewSavedRecipeReadRepository(db)

	t.Run("NeverSaved", func(t *testing.T) {
		err := repo.Favorite(ctx, user.UserID, 632660)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	t.Run("SavedThenFavorited", func(t *testing.T) {
		_, err := repo.Save(ctx, user.UserID, 632660, false)
		assert.NoError(t, err)

		assert.NoError(t, repo.Favorite(ctx, user.UserID, 632660))

		saved, err := readRepo.Get(ctx, user.UserID, 632660)
		assert.NoError(t, err)
		assert.NotNil(t, saved)
		assert.True(t, saved.Favorite)

		// Favoriting again is a no-op, not an error.
		assert.NoError(t, repo.Favorite(ctx, user.UserID, 632660))
	})
}

func TestSavedRecipeReadRepository_Lists(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	ctx := context.Background()

	user, err := NewUserWriteRepository(db).Save(ctx, "dana@example.com", "hash", "")
	assert.NoError(t, err)

	recipes := NewRecipeWriteRepository(db, nil)
	seedRecipe(t, recipes, 632660)
	assert.NoError(t, recipes.SaveRecipe(ctx, secondRecipe()))

	writeRepo := NewSavedRecipeWriteRepository(db)
	readRepo := NewSavedRecipeReadRepository(db)

	_, err = writeRepo.Save(ctx, user.UserID, 632660, true)
	assert.NoError(t, err)
	_, err = writeRepo.Save(ctx, user.UserID, 632661, false)
	assert.NoError(t, err)

	t.Run("GetByUser", func(t *testing.T) {
		rows, err := readRepo.GetByUser(ctx, user.UserID)
		assert.NoError(t, err)
		assert.Len(t, rows, 2)
		assert.Equal(t, "Apple Pie", rows[0].Title)
		assert.Equal(t, "Apple Crumble", rows[1].Title)
	})

	t.Run("GetFavoritesByUser", func(t *testing.T) {
		rows, err := readRepo.GetFavoritesByUser(ctx, user.UserID)
		assert.NoError(t, err)
		assert.Len(t, rows, 1)
		assert.Equal(t, int64(632660), rows[0].RecipeID)
		assert.True(t, rows[0].Favorite)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		rows, err := readRepo.GetByUser(ctx, 424242)
		assert.NoError(t, err)
		assert.Empty(t, rows)
	})
}
