package repositories

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/ekuzmina/fridge-recipes/internal/models"
)

func seedRecipe(t *testing.T, write *RecipeWriteRepository, recipeID int64) {
	t.Helper()
	ctx := context.Background()

	ready := 45
	err := write.SaveRecipe(ctx, models.RecipeDB{
		RecipeID:  recipeID,
		Title:     "Apple Pie",
		Image:     "https://img.example.com/pie.jpg",
		Servings:  4,
		SourceURL: "https://example.com/apple-pie",
		ReadyMins: &ready,
	})
	assert.NoError(t, err)

	assert.NoError(t, write.SaveIngredient(ctx, recipeID, 9003, 1.33, "cups", "apples"))
	assert.NoError(t, write.SaveIngredient(ctx, recipeID, 20081, 2, "cups", "flour"))
	assert.NoError(t, write.SaveInstruction(ctx, recipeID, 1, "Peel the apples."))
	assert.NoError(t, write.SaveInstruction(ctx, recipeID, 2, "Bake."))
	assert.NoError(t, write.SaveEquipment(ctx, recipeID, "knife"))
	assert.NoError(t, write.SaveEquipment(ctx, recipeID, "oven"))
}

func TestRecipeRepositories_RoundTrip(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	write := NewRecipeWriteRepository(db, nil)
	read := NewRecipeReadRepository(db)
	ctx := context.Background()

	seedRecipe(t, write, 632660)

	recipe, err := read.Get(ctx, 632660)
	assert.NoError(t, err)
	assert.NotNil(t, recipe)
	assert.Equal(t, "Apple Pie", recipe.Title)
	assert.Nil(t, recipe.CookingMins)
	assert.Equal(t, 45, *recipe.ReadyMins)

	agg, err := read.GetAggregate(ctx, 632660)
	assert.NoError(t, err)
	assert.NotNil(t, agg)
	assert.Len(t, agg.Ingredients, 2)
	assert.Equal(t, "apples", agg.Ingredients[0].Name)
	assert.Equal(t, 1.33, agg.Ingredients[0].Amount)
	assert.Len(t, agg.Instructions, 2)
	assert.Equal(t, 1, agg.Instructions[0].StepNum)
	assert.Equal(t, "Peel the apples.", agg.Instructions[0].StepInstruction)
	assert.Equal(t, []string{"knife", "oven"}, []string{agg.Equipment[0].Equipment, agg.Equipment[1].Equipment})
}

func TestRecipeReadRepository_GetAbsent(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	read := NewRecipeReadRepository(db)
	ctx := context.Background()

	recipe, err := read.Get(ctx, 424242)
	assert.NoError(t, err)
	assert.Nil(t, recipe)

	agg, err := read.GetAggregate(ctx, 424242)
	assert.NoError(t, err)
	assert.Nil(t, agg)
}

func TestRecipeWriteRepository_DuplicateStepRejected(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	write := NewRecipeWriteRepository(db, nil)
	ctx := context.Background()

	err := write.SaveRecipe(ctx, models.RecipeDB{RecipeID: 7, Title: "Soup"})
	assert.NoError(t, err)

	assert.NoError(t, write.SaveInstruction(ctx, 7, 1, "Chop."))
	assert.Error(t, write.SaveInstruction(ctx, 7, 1, "Chop again."))
}

func TestRecipeWriteRepository_TxRollback(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	ctx := context.Background()

	tx, err := db.Beginx()
	assert.NoError(t, err)

	write := NewRecipeWriteRepository(db, func(context.Context) *sqlx.Tx { return tx })
	read := NewRecipeReadRepository(db)

	err = write.SaveRecipe(ctx, models.RecipeDB{RecipeID: 8, Title: "Stew"})
	assert.NoError(t, err)
	assert.NoError(t, write.SaveIngredient(ctx, 8, 11124, 3, "pieces", "carrots"))

	assert.NoError(t, tx.Rollback())

	recipe, err := read.Get(ctx, 8)
	assert.NoError(t, err)
	assert.Nil(t, recipe)
}
