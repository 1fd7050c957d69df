package models

// SavedRecipeDB represents a user's saved-recipe association record
type SavedRecipeDB struct {
	SavedID  int64   `json:"saved_id" db:"saved_id"`
	UserID   int64   `json:"user_id" db:"user_id"`
	RecipeID int64   `json:"recipe_id" db:"recipe_id"`
	Favorite bool    `json:"favorite" db:"favorite"`
	Tried    bool    `json:"tried" db:"tried"`
	Rating   *int    `json:"rating" db:"rating"`
	Comment  *string `json:"comment" db:"comment"`
}

// SavedRecipeWithRecipeDB is a saved-recipe row joined with its recipe
type SavedRecipeWithRecipeDB struct {
	SavedID   int64   `db:"saved_id"`
	UserID    int64   `db:"user_id"`
	RecipeID  int64   `db:"recipe_id"`
	Favorite  bool    `db:"favorite"`
	Tried     bool    `db:"tried"`
	Rating    *int    `db:"rating"`
	Comment   *string `db:"comment"`
	Title     string  `db:"title"`
	Image     string  `db:"image"`
	Servings  int     `db:"servings"`
	SourceURL string  `db:"source_url"`
}

// SavedRecipeEvent is published to Kafka when a user saves or favorites a recipe
type SavedRecipeEvent struct {
	EventID   string `json:"event_id"`
	Timestamp int64  `json:"timestamp"`
	UserID    int64  `json:"user_id"`
	RecipeID  int64  `json:"recipe_id"`
	Action    string `json:"action"`
}
