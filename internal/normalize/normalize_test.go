package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ekuzmina/fridge-recipes/internal/models"
	"github.com/ekuzmina/fridge-recipes/internal/normalize"
)

func intPtr(v int) *int { return &v }

func samplePayload() models.SearchRecipe {
	return models.SearchRecipe{
		ID:             632660,
		Title:          "Apple Pie",
		Image:          "https://img.example.com/632660.jpg",
		Servings:       4,
		SourceURL:      "https://example.com/apple-pie",
		ReadyInMinutes: intPtr(45),
		CookingMinutes: intPtr(30),
		ExtendedIngredients: []models.SearchIngredient{
			{ID: 9003, Amount: 1.3333333, Unit: "cups", Name: "apples"},
			{ID: 20081, Amount: 2, Unit: "cups", Name: "flour"},
			{ID: 19335, Amount: 0.125, Unit: "cups", Name: "sugar"},
		},
		AnalyzedInstructions: []models.InstructionSection{
			{
				Name: "",
				Steps: []models.SearchStep{
					{Number: 1, Step: "Peel the apples.", Equipment: []models.SearchEquipment{{ID: 404783, Name: "knife"}}},
					{Number: 2, Step: "Mix flour and sugar.", Equipment: []models.SearchEquipment{{ID: 404661, Name: "bowl"}}},
				},
			},
			{
				Name: "Baking",
				Steps: []models.SearchStep{
					{Number: 1, Step: "Bake for 30 minutes.", Equipment: []models.SearchEquipment{{ID: 404784, Name: "oven"}, {ID: 404661, Name: "bowl"}}},
				},
			},
		},
	}
}

func TestRecipeDetails(t *testing.T) {
	details := normalize.RecipeDetails(samplePayload())

	assert.Equal(t, int64(632660), details.RecipeID)
	assert.Equal(t, "Apple Pie", details.Title)
	assert.Equal(t, "https://img.example.com/632660.jpg", details.Image)
	assert.Equal(t, 4, details.Servings)
	assert.Equal(t, "https://example.com/apple-pie", details.SourceURL)
}

func TestRecipeDetails_MissingFields(t *testing.T) {
	details := normalize.RecipeDetails(models.SearchRecipe{ID: 1})

	assert.Equal(t, int64(1), details.RecipeID)
	assert.Empty(t, details.Title)
	assert.Empty(t, details.Image)
	assert.Zero(t, details.Servings)
	assert.Empty(t, details.SourceURL)
}

func TestRecipeTimes(t *testing.T) {
	times := normalize.RecipeTimes(samplePayload())

	assert.Nil(t, times.PrepMins, "preparationMinutes omitted upstream")
	assert.Equal(t, 30, *times.CookingMins)
	assert.Equal(t, 45, *times.ReadyMins)
}

func TestRecipeTimes_AllMissing(t *testing.T) {
	times := normalize.RecipeTimes(models.SearchRecipe{})

	assert.Nil(t, times.CookingMins)
	assert.Nil(t, times.PrepMins)
	assert.Nil(t, times.ReadyMins)
}

func TestRecipeIngredients_RoundsAmounts(t *testing.T) {
	ingredients := normalize.RecipeIngredients(samplePayload())

	assert.Len(t, ingredients, 3)
	assert.Equal(t, 1.33, ingredients[0].Amount)
	assert.Equal(t, 2.0, ingredients[1].Amount)
	assert.Equal(t, 0.13, ingredients[2].Amount)
	assert.Equal(t, int64(9003), ingredients[0].IngredientID)
	assert.Equal(t, "apples", ingredients[0].Name)
}

func TestRecipeInstructions_FlattensSections(t *testing.T) {
	steps := normalize.RecipeInstructions(samplePayload())

	assert.Equal(t, []string{
		"Peel the apples.",
		"Mix flour and sugar.",
		"Bake for 30 minutes.",
	}, steps)
}

func TestRecipeInstructions_Empty(t *testing.T) {
	assert.Empty(t, normalize.RecipeInstructions(models.SearchRecipe{}))
}

func TestRecipeEquipment_DeduplicatesInFirstAppearanceOrder(t *testing.T) {
	equipment := normalize.RecipeEquipment(samplePayload())

	assert.Equal(t, []string{"knife", "bowl", "oven"}, equipment)
}

func TestRoundAmount(t *testing.T) {
	assert.Equal(t, 0.13, normalize.RoundAmount(0.125))
	assert.Equal(t, 1.33, normalize.RoundAmount(4.0/3.0))
	assert.Equal(t, 2.0, normalize.RoundAmount(2))
}

// The payload ingested through the parse path and rebuilt from a stored
// aggregate must render identically.
func TestRoundTrip_PayloadToAggregate(t *testing.T) {
	raw := samplePayload()
	fromPayload := normalize.Recipe(raw)

	details := normalize.RecipeDetails(raw)
	times := normalize.RecipeTimes(raw)

	agg := models.RecipeAggregate{
		Recipe: models.RecipeDB{
			RecipeID:    details.RecipeID,
			Title:       details.Title,
			Image:       details.Image,
			Servings:    details.Servings,
			SourceURL:   details.SourceURL,
			CookingMins: times.CookingMins,
			PrepMins:    times.PrepMins,
			ReadyMins:   times.ReadyMins,
		},
	}
	for _, ing := range normalize.RecipeIngredients(raw) {
		agg.Ingredients = append(agg.Ingredients, models.RecipeIngredientDB{
			RecipeID:     details.RecipeID,
			IngredientID: ing.IngredientID,
			Amount:       ing.Amount,
			Unit:         ing.Unit,
			Name:         ing.Name,
		})
	}
	for i, step := range normalize.RecipeInstructions(raw) {
		agg.Instructions = append(agg.Instructions, models.InstructionDB{
			RecipeID:        details.RecipeID,
			StepNum:         i + 1,
			StepInstruction: step,
		})
	}
	for _, eq := range normalize.RecipeEquipment(raw) {
		agg.Equipment = append(agg.Equipment, models.EquipmentDB{
			RecipeID:  details.RecipeID,
			Equipment: eq,
		})
	}

	fromAggregate := normalize.Aggregate(agg)

	assert.Equal(t, fromPayload, fromAggregate)
}
