// Package normalize maps between the upstream recipe payload and this
// system's storage and response shapes. All functions are pure: missing
// upstream fields map to zero values or nil, never to an error.
package normalize

import (
	"math"

	"github.com/ekuzmina/fridge-recipes/internal/models"
)

// RecipeDetails extracts the identity and display fields of an upstream
// recipe payload.
func RecipeDetails(raw models.SearchRecipe) models.RecipeDetails {
	return models.RecipeDetails{
		RecipeID:  raw.ID,
		Title:     raw.Title,
		Image:     raw.Image,
		Servings:  raw.Servings,
		SourceURL: raw.SourceURL,
	}
}

// RecipeTimes extracts the timing fields. The upstream frequently omits
// cookingMinutes and preparationMinutes; absent fields stay nil.
func RecipeTimes(raw models.SearchRecipe) models.RecipeTimes {
	return models.RecipeTimes{
		CookingMins: raw.CookingMinutes,
		PrepMins:    raw.PreparationMinutes,
		ReadyMins:   raw.ReadyInMinutes,
	}
}

// RecipeIngredients extracts one entry per upstream ingredient. Amounts are
// rounded to 2 decimal digits, matching the stored precision.
func RecipeIngredients(raw models.SearchRecipe) []models.IngredientDetail {
	ingredients := make([]models.IngredientDetail, 0, len(raw.ExtendedIngredients))
	for _, ing := range raw.ExtendedIngredients {
		ingredients = append(ingredients, models.IngredientDetail{
			IngredientID: ing.ID,
			Amount:       RoundAmount(ing.Amount),
			Unit:         ing.Unit,
			Name:         ing.Name,
		})
	}
	return ingredients
}

// RecipeInstructions flattens the possibly multi-section upstream step list
// into a single ordered sequence of step texts. Upstream step numbers are
// not contiguous across sections, so numbering is left to the caller.
func RecipeInstructions(raw models.SearchRecipe) []string {
	var steps []string
	for _, section := range raw.AnalyzedInstructions {
		for _, step := range section.Steps {
			steps = append(steps, step.Step)
		}
	}
	return steps
}

// RecipeEquipment collects the distinct equipment names referenced across
// all steps, ordered by first appearance.
func RecipeEquipment(raw models.SearchRecipe) []string {
	var names []string
	seen := make(map[string]struct{})
	for _, section := range raw.AnalyzedInstructions {
		for _, step := range section.Steps {
			for _, eq := range step.Equipment {
				if _, ok := seen[eq.Name]; ok {
					continue
				}
				seen[eq.Name] = struct{}{}
				names = append(names, eq.Name)
			}
		}
	}
	return names
}

// Recipe assembles the full client-facing response from an upstream payload
func Recipe(raw models.SearchRecipe) models.RecipeResponse {
	return models.RecipeResponse{
		Details:      RecipeDetails(raw),
		Times:        RecipeTimes(raw),
		Ingredients:  RecipeIngredients(raw),
		Instructions: RecipeInstructions(raw),
		Equipment:    RecipeEquipment(raw),
	}
}

// AggregateDetails produces the display fields of a stored recipe. The
// result matches RecipeDetails applied to the original payload, so the
// client renders search hits and saved recipes identically.
func AggregateDetails(agg models.RecipeAggregate) models.RecipeDetails {
	return models.RecipeDetails{
		RecipeID:  agg.Recipe.RecipeID,
		Title:     agg.Recipe.Title,
		Image:     agg.Recipe.Image,
		Servings:  agg.Recipe.Servings,
		SourceURL: agg.Recipe.SourceURL,
	}
}

// AggregateTimes produces the timing fields of a stored recipe
func AggregateTimes(agg models.RecipeAggregate) models.RecipeTimes {
	return models.RecipeTimes{
		CookingMins: agg.Recipe.CookingMins,
		PrepMins:    agg.Recipe.PrepMins,
		ReadyMins:   agg.Recipe.ReadyMins,
	}
}

// AggregateIngredients produces the ingredient list of a stored recipe
func AggregateIngredients(agg models.RecipeAggregate) []models.IngredientDetail {
	ingredients := make([]models.IngredientDetail, 0, len(agg.Ingredients))
	for _, ing := range agg.Ingredients {
		ingredients = append(ingredients, models.IngredientDetail{
			IngredientID: ing.IngredientID,
			Amount:       RoundAmount(ing.Amount),
			Unit:         ing.Unit,
			Name:         ing.Name,
		})
	}
	return ingredients
}

// AggregateInstructions produces the ordered step texts of a stored recipe.
// Rows arrive ordered by step_num from the store.
func AggregateInstructions(agg models.RecipeAggregate) []string {
	var steps []string
	for _, ins := range agg.Instructions {
		steps = append(steps, ins.StepInstruction)
	}
	return steps
}

// AggregateEquipment produces the equipment names of a stored recipe
func AggregateEquipment(agg models.RecipeAggregate) []string {
	var names []string
	for _, eq := range agg.Equipment {
		names = append(names, eq.Equipment)
	}
	return names
}

// Aggregate assembles the full client-facing response from a stored recipe
func Aggregate(agg models.RecipeAggregate) models.RecipeResponse {
	return models.RecipeResponse{
		Details:      AggregateDetails(agg),
		Times:        AggregateTimes(agg),
		Ingredients:  AggregateIngredients(agg),
		Instructions: AggregateInstructions(agg),
		Equipment:    AggregateEquipment(agg),
	}
}

// RoundAmount rounds an ingredient amount to 2 decimal digits
func RoundAmount(amount float64) float64 {
	return math.Round(amount*100) / 100
}
