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

// RecipeReadRepository handles recipe read operations
type RecipeReadRepository struct {
	db *sqlx.DB
}

func NewRecipeReadRepository(db *sqlx.DB) *RecipeReadRepository {
	return &RecipeReadRepository{db: db}
}

// Get returns the recipe row with the given id, or nil when it has not been
// persisted yet.
func (r *RecipeReadRepository) Get(ctx context.Context, recipeID int64) (*models.RecipeDB, error) {
	const query = `
		SELECT recipe_id, title, image, servings, source_url, cooking_mins, prep_mins, ready_mins
		FROM recipes
		WHERE recipe_id = $1
	`

	var recipe models.RecipeDB
	err := r.db.GetContext(ctx, &recipe, query, recipeID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{recipeID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &recipe, nil
}

// GetAggregate returns the recipe together with its ingredients, ordered
// instructions and equipment, or nil when the recipe is absent.
func (r *RecipeReadRepository) GetAggregate(ctx context.Context, recipeID int64) (*models.RecipeAggregate, error) {
	recipe, err := r.Get(ctx, recipeID)
	if err != nil || recipe == nil {
		return nil, err
	}

	agg := models.RecipeAggregate{Recipe: *recipe}

	const ingredientsQuery = `
		SELECT rec_ing_id, recipe_id, ingredient_id, amount, unit, name
		FROM recipe_ingredients
		WHERE recipe_id = $1
		ORDER BY rec_ing_id
	`
	if err := r.db.SelectContext(ctx, &agg.Ingredients, ingredientsQuery, recipeID); err != nil {
		return nil, err
	}

	const instructionsQuery = `
		SELECT instruction_id, recipe_id, step_num, step_instruction
		FROM instructions
		WHERE recipe_id = $1
		ORDER BY step_num
	`
	if err := r.db.SelectContext(ctx, &agg.Instructions, instructionsQuery, recipeID); err != nil {
		return nil, err
	}

	const equipmentQuery = `
		SELECT equipment_id, recipe_id, equipment
		FROM equipment
		WHERE recipe_id = $1
		ORDER BY equipment_id
	`
	if err := r.db.SelectContext(ctx, &agg.Equipment, equipmentQuery, recipeID); err != nil {
		return nil, err
	}

	logger.Log.Infow(
		"aggregate", recipeID,
		"ingredients", len(agg.Ingredients),
		"instructions", len(agg.Instructions),
		"equipment", len(agg.Equipment),
	)

	return &agg, nil
}

// RecipeWriteRepository handles recipe write operations. All writes go
// through the request transaction when one is present in the context, so a
// partial aggregate insert rolls back as a whole.
type RecipeWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewRecipeWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *RecipeWriteRepository {
	return &RecipeWriteRepository{db: db, txGetter: txGetter}
}

func (r *RecipeWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}
	return executor
}

// SaveRecipe inserts the recipe row. Callers check existence first; the
// repository itself does not deduplicate.
func (r *RecipeWriteRepository) SaveRecipe(ctx context.Context, recipe models.RecipeDB) error {
	query := `
		INSERT INTO recipes (recipe_id, title, image, servings, source_url, cooking_mins, prep_mins, ready_mins, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
	`
	args := []any{
		recipe.RecipeID, recipe.Title, recipe.Image, recipe.Servings,
		recipe.SourceURL, recipe.CookingMins, recipe.PrepMins, recipe.ReadyMins,
	}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{recipe.RecipeID, recipe.Title},
		"error", err,
	)

	return err
}

// SaveIngredient inserts one ingredient row for a recipe
func (r *RecipeWriteRepository) SaveIngredient(ctx context.Context, recipeID, ingredientID int64, amount float64, unit, name string) error {
	query := `
		INSERT INTO recipe_ingredients (recipe_id, ingredient_id, amount, unit, name)
		VALUES ($1, $2, $3, $4, $5)
	`
	args := []any{recipeID, ingredientID, amount, unit, name}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// SaveInstruction inserts one instruction step for a recipe
func (r *RecipeWriteRepository) SaveInstruction(ctx context.Context, recipeID int64, stepNum int, text string) error {
	query := `
		INSERT INTO instructions (recipe_id, step_num, step_instruction)
		VALUES ($1, $2, $3)
	`
	args := []any{recipeID, stepNum, text}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{recipeID, stepNum},
		"error", err,
	)

	return err
}

// SaveEquipment inserts one equipment row for a recipe
func (r *RecipeWriteRepository) SaveEquipment(ctx context.Context, recipeID int64, name string) error {
	query := `
		INSERT INTO equipment (recipe_id, equipment)
		VALUES ($1, $2)
	`
	args := []any{recipeID, name}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}
