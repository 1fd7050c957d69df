package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/ekuzmina/fridge-recipes/internal/logger"
	"github.com/ekuzmina/fridge-recipes/internal/models"
)

// SavedRecipeReader defines saved-recipe read operations.
type SavedRecipeReader interface {
	GetByUser(ctx context.Context, userID int64) ([]models.SavedRecipeWithRecipeDB, error)
	GetFavoritesByUser(ctx context.Context, userID int64) ([]models.SavedRecipeWithRecipeDB, error)
}

// SavedRecipeWriter defines saved-recipe write operations.
type SavedRecipeWriter interface {
	Save(ctx context.Context, userID, recipeID int64, favorite bool) (*models.SavedRecipeDB, error)
	Favorite(ctx context.Context, userID, recipeID int64) error
}

// SavedRecipeChecker checks that the recipe being saved exists locally.
type SavedRecipeChecker interface {
	Get(ctx context.Context, recipeID int64) (*models.RecipeDB, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// SavedRecipeService manages the per-user saved-recipe collection and
// publishes save/favorite events.
type SavedRecipeService struct {
	readRepo    SavedRecipeReader
	writeRepo   SavedRecipeWriter
	recipes     SavedRecipeChecker
	kafkaWriter KafkaWriter
}

// NewSavedRecipeService creates a new SavedRecipeService.
func NewSavedRecipeService(
	readRepo SavedRecipeReader,
	writeRepo SavedRecipeWriter,
	recipes SavedRecipeChecker,
	kafkaWriter KafkaWriter,
) *SavedRecipeService {
	return &SavedRecipeService{
		readRepo:    readRepo,
		writeRepo:   writeRepo,
		recipes:     recipes,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a saved-recipe event to Kafka.
func (svc *SavedRecipeService) publishEvent(ctx context.Context, event models.SavedRecipeEvent) {
	if svc.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Event published to Kafka", "event_id", event.EventID, "action", event.Action)
	}
}

// Save adds a recipe to the user's collection. Saving an already saved
// recipe keeps the existing association; it never creates a duplicate and
// never clears an earlier favorite mark.
func (svc *SavedRecipeService) Save(ctx context.Context, userID, recipeID int64, favorite bool) (*models.SavedRecipeDB, error) {
	if recipeID <= 0 {
		return nil, ErrValidation
	}

	recipe, err := svc.recipes.Get(ctx, recipeID)
	if err != nil {
		logger.Log.Errorw("failed to check recipe exists", "recipe_id", recipeID, "error", err)
		return nil, err
	}
	if recipe == nil {
		return nil, ErrRecipeNotFound
	}

	saved, err := svc.writeRepo.Save(ctx, userID, recipeID, favorite)
	if err != nil {
		logger.Log.Errorw("failed to save recipe for user", "user_id", userID, "recipe_id", recipeID, "error", err)
		return nil, err
	}

	event := models.SavedRecipeEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		UserID:    userID,
		RecipeID:  recipeID,
		Action:    "recipe_saved",
	}
	svc.publishEvent(ctx, event)

	return saved, nil
}

// Favorite marks a saved recipe as favorite. It reports not-found when the
// user never saved the recipe and is a no-op when already favorited.
func (svc *SavedRecipeService) Favorite(ctx context.Context, userID, recipeID int64) error {
	if recipeID <= 0 {
		return ErrValidation
	}

	if err := svc.writeRepo.Favorite(ctx, userID, recipeID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrSavedRecipeNotFound
		}
		logger.Log.Errorw("failed to favorite saved recipe", "user_id", userID, "recipe_id", recipeID, "error", err)
		return err
	}

	event := models.SavedRecipeEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		UserID:    userID,
		RecipeID:  recipeID,
		Action:    "recipe_favorited",
	}
	svc.publishEvent(ctx, event)

	return nil
}

// List returns all recipes the user has saved. An unknown user yields an
// empty list, never an error.
func (svc *SavedRecipeService) List(ctx context.Context, userID int64) ([]models.SavedRecipeResponse, error) {
	rows, err := svc.readRepo.GetByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list saved recipes", "user_id", userID, "error", err)
		return nil, err
	}
	return toSavedRecipeResponses(rows), nil
}

// ListFavorites returns the user's favorited saved recipes.
func (svc *SavedRecipeService) ListFavorites(ctx context.Context, userID int64) ([]models.SavedRecipeResponse, error) {
	rows, err := svc.readRepo.GetFavoritesByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list favorited recipes", "user_id", userID, "error", err)
		return nil, err
	}
	return toSavedRecipeResponses(rows), nil
}

func toSavedRecipeResponses(rows []models.SavedRecipeWithRecipeDB) []models.SavedRecipeResponse {
	responses := make([]models.SavedRecipeResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, models.SavedRecipeResponse{
			SavedID:  row.SavedID,
			RecipeID: row.RecipeID,
			Favorite: row.Favorite,
			Tried:    row.Tried,
			Rating:   row.Rating,
			Comment:  row.Comment,
			Recipe: models.RecipeDetails{
				RecipeID:  row.RecipeID,
				Title:     row.Title,
				Image:     row.Image,
				Servings:  row.Servings,
				SourceURL: row.SourceURL,
			},
		})
	}
	return responses
}
