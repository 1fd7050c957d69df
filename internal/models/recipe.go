package models

// RecipeDB represents a recipe record in the database.
// The primary key is the upstream recipe id, not a local sequence.
type RecipeDB struct {
	RecipeID    int64  `json:"recipe_id" db:"recipe_id"`
	Title       string `json:"title" db:"title"`
	Image       string `json:"image" db:"image"`
	Servings    int    `json:"servings" db:"servings"`
	SourceURL   string `json:"source_url" db:"source_url"`
	CookingMins *int   `json:"cooking_mins" db:"cooking_mins"`
	PrepMins    *int   `json:"prep_mins" db:"prep_mins"`
	ReadyMins   *int   `json:"ready_mins" db:"ready_mins"`
}

// RecipeIngredientDB represents one ingredient row of a recipe
type RecipeIngredientDB struct {
	RecIngID     int64   `json:"rec_ing_id" db:"rec_ing_id"`
	RecipeID     int64   `json:"recipe_id" db:"recipe_id"`
	IngredientID int64   `json:"ingredient_id" db:"ingredient_id"`
	Amount       float64 `json:"amount" db:"amount"`
	Unit         string  `json:"unit" db:"unit"`
	Name         string  `json:"name" db:"name"`
}

// InstructionDB represents one instruction step of a recipe.
// Step numbers are 1-based and contiguous per recipe.
type InstructionDB struct {
	InstructionID   int64  `json:"instruction_id" db:"instruction_id"`
	RecipeID        int64  `json:"recipe_id" db:"recipe_id"`
	StepNum         int    `json:"step_num" db:"step_num"`
	StepInstruction string `json:"step_instruction" db:"step_instruction"`
}

// EquipmentDB represents one equipment row of a recipe
type EquipmentDB struct {
	EquipmentID int64  `json:"equipment_id" db:"equipment_id"`
	RecipeID    int64  `json:"recipe_id" db:"recipe_id"`
	Equipment   string `json:"equipment" db:"equipment"`
}

// RecipeAggregate is a recipe together with its child collections
type RecipeAggregate struct {
	Recipe       RecipeDB
	Ingredients  []RecipeIngredientDB
	Instructions []InstructionDB
	Equipment    []EquipmentDB
}
