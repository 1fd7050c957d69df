package models

// RecipeDetails holds the identity and display fields of a recipe
// swagger:model RecipeDetails
type RecipeDetails struct {
	// Upstream recipe id
	// example: 632660
	RecipeID int64 `json:"recipe_id"`

	// Recipe title
	// example: Apple Pie
	Title string `json:"title"`

	// Image URL
	Image string `json:"image"`

	// Number of servings
	// example: 4
	Servings int `json:"servings"`

	// Source URL
	SourceURL string `json:"source_url"`
}

// RecipeTimes holds the timing fields of a recipe. Each field is nil when
// the upstream payload omits it.
// swagger:model RecipeTimes
type RecipeTimes struct {
	// Cooking time in minutes
	CookingMins *int `json:"cooking_mins"`

	// Preparation time in minutes
	PrepMins *int `json:"prep_mins"`

	// Ready-in time in minutes
	ReadyMins *int `json:"ready_mins"`
}

// IngredientDetail is one ingredient of a recipe response
// swagger:model IngredientDetail
type IngredientDetail struct {
	// Upstream ingredient id
	IngredientID int64 `json:"ingredient_id"`

	// Amount, rounded to 2 decimal digits
	// example: 1.5
	Amount float64 `json:"amount"`

	// Unit of measure, free text
	// example: cups
	Unit string `json:"unit"`

	// Ingredient name
	// example: flour
	Name string `json:"name"`
}

// RecipeResponse is the client-facing recipe shape. Recipes coming from a
// fresh search and from storage render through this same shape.
// swagger:model RecipeResponse
type RecipeResponse struct {
	Details      RecipeDetails      `json:"details"`
	Times        RecipeTimes        `json:"times"`
	Ingredients  []IngredientDetail `json:"ingredients"`
	Instructions []string           `json:"instructions"`
	Equipment    []string           `json:"equipment"`
}

// SavedRecipeResponse is one entry of a user's saved-recipes listing
// swagger:model SavedRecipeResponse
type SavedRecipeResponse struct {
	// Saved-recipe association id
	SavedID int64 `json:"saved_id"`

	// Recipe id
	RecipeID int64 `json:"recipe_id"`

	// Favorite flag
	Favorite bool `json:"favorite"`

	// Tried flag
	Tried bool `json:"tried"`

	// Rating, nil when the user has not rated
	Rating *int `json:"rating"`

	// Free-text comment
	Comment *string `json:"comment"`

	// Recipe display fields
	Recipe RecipeDetails `json:"recipe"`
}
