package services

import (
	"context"

	"github.com/ekuzmina/fridge-recipes/internal/logger"
	"github.com/ekuzmina/fridge-recipes/internal/models"
	"github.com/ekuzmina/fridge-recipes/internal/normalize"
)

// RecipeInformationReader fetches the full recipe payload from the upstream API.
type RecipeInformationReader interface {
	GetInformation(ctx context.Context, recipeID int64) (*models.SearchRecipe, error)
}

// RecipeReader defines recipe read operations.
type RecipeReader interface {
	Get(ctx context.Context, recipeID int64) (*models.RecipeDB, error)
	GetAggregate(ctx context.Context, recipeID int64) (*models.RecipeAggregate, error)
}

// RecipeWriter defines recipe aggregate write operations.
type RecipeWriter interface {
	SaveRecipe(ctx context.Context, recipe models.RecipeDB) error
	SaveIngredient(ctx context.Context, recipeID, ingredientID int64, amount float64, unit, name string) error
	SaveInstruction(ctx context.Context, recipeID int64, stepNum int, text string) error
	SaveEquipment(ctx context.Context, recipeID int64, name string) error
}

// RecipeService persists upstream recipes and serves stored recipe detail.
type RecipeService struct {
	readRepo  RecipeReader
	writeRepo RecipeWriter
	upstream  RecipeInformationReader
}

// NewRecipeService creates a new RecipeService.
func NewRecipeService(readRepo RecipeReader, writeRepo RecipeWriter, upstream RecipeInformationReader) *RecipeService {
	return &RecipeService{
		readRepo:  readRepo,
		writeRepo: writeRepo,
		upstream:  upstream,
	}
}

// Persist stores a recipe and its children on first save of a given
// upstream id. Re-persisting an already stored id returns the stored
// aggregate without re-inserting any child rows. The caller's transaction
// covers the whole insert sequence.
func (svc *RecipeService) Persist(ctx context.Context, recipeID int64) (*models.RecipeResponse, error) {
	if recipeID <= 0 {
		return nil, ErrValidation
	}

	existing, err := svc.readRepo.Get(ctx, recipeID)
	if err != nil {
		logger.Log.Errorw("failed to check recipe exists", "recipe_id", recipeID, "error", err)
		return nil, err
	}
	if existing != nil {
		return svc.Get(ctx, recipeID)
	}

	raw, err := svc.upstream.GetInformation(ctx, recipeID)
	if err != nil {
		logger.Log.Errorw("failed to fetch recipe information", "recipe_id", recipeID, "error", err)
		return nil, ErrUpstreamUnavailable
	}

	details := normalize.RecipeDetails(*raw)
	times := normalize.RecipeTimes(*raw)

	recipe := models.RecipeDB{
		RecipeID:    details.RecipeID,
		Title:       details.Title,
		Image:       details.Image,
		Servings:    details.Servings,
		SourceURL:   details.SourceURL,
		CookingMins: times.CookingMins,
		PrepMins:    times.PrepMins,
		ReadyMins:   times.ReadyMins,
	}
	if err := svc.writeRepo.SaveRecipe(ctx, recipe); err != nil {
		logger.Log.Errorw("failed to save recipe", "recipe_id", recipeID, "error", err)
		return nil, err
	}

	ingredients := normalize.RecipeIngredients(*raw)
	for _, ing := range ingredients {
		if err := svc.writeRepo.SaveIngredient(ctx, recipeID, ing.IngredientID, ing.Amount, ing.Unit, ing.Name); err != nil {
			logger.Log.Errorw("failed to save ingredient", "recipe_id", recipeID, "error", err)
			return nil, err
		}
	}

	// Step numbers are positional: upstream numbering restarts per section.
	instructions := normalize.RecipeInstructions(*raw)
	for i, step := range instructions {
		if err := svc.writeRepo.SaveInstruction(ctx, recipeID, i+1, step); err != nil {
			logger.Log.Errorw("failed to save instruction", "recipe_id", recipeID, "step", i+1, "error", err)
			return nil, err
		}
	}

	equipment := normalize.RecipeEquipment(*raw)
	for _, name := range equipment {
		if err := svc.writeRepo.SaveEquipment(ctx, recipeID, name); err != nil {
			logger.Log.Errorw("failed to save equipment", "recipe_id", recipeID, "error", err)
			return nil, err
		}
	}

	resp := models.RecipeResponse{
		Details:      details,
		Times:        times,
		Ingredients:  ingredients,
		Instructions: instructions,
		Equipment:    equipment,
	}

	return &resp, nil
}

// Get returns the stored recipe detail through the display path.
func (svc *RecipeService) Get(ctx context.Context, recipeID int64) (*models.RecipeResponse, error) {
	if recipeID <= 0 {
		return nil, ErrValidation
	}

	agg, err := svc.readRepo.GetAggregate(ctx, recipeID)
	if err != nil {
		logger.Log.Errorw("failed to get recipe aggregate", "recipe_id", recipeID, "error", err)
		return nil, err
	}
	if agg == nil {
		return nil, ErrRecipeNotFound
	}

	resp := normalize.Aggregate(*agg)
	return &resp, nil
}
