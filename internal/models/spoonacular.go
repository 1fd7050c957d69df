package models

// SearchRecipe is the upstream recipe payload. The same shape covers both
// the findByIngredients summaries and the full information payload; the
// summary simply leaves the detail fields empty.
type SearchRecipe struct {
	ID                   int64                `json:"id"`
	Title                string               `json:"title"`
	Image                string               `json:"image"`
	Servings             int                  `json:"servings"`
	SourceURL            string               `json:"sourceUrl"`
	ReadyInMinutes       *int                 `json:"readyInMinutes"`
	PreparationMinutes   *int                 `json:"preparationMinutes"`
	CookingMinutes       *int                 `json:"cookingMinutes"`
	ExtendedIngredients  []SearchIngredient   `json:"extendedIngredients"`
	AnalyzedInstructions []InstructionSection `json:"analyzedInstructions"`
}

// SearchIngredient is one upstream ingredient entry
type SearchIngredient struct {
	ID     int64   `json:"id"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
	Name   string  `json:"name"`
}

// InstructionSection is one upstream instruction section. Recipes may carry
// several sections; step numbers are not contiguous across them.
type InstructionSection struct {
	Name  string       `json:"name"`
	Steps []SearchStep `json:"steps"`
}

// SearchStep is one upstream instruction step
type SearchStep struct {
	Number    int               `json:"number"`
	Step      string            `json:"step"`
	Equipment []SearchEquipment `json:"equipment"`
}

// SearchEquipment is one upstream equipment reference embedded in a step
type SearchEquipment struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
