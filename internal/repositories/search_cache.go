package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ekuzmina/fridge-recipes/internal/logger"
	"github.com/ekuzmina/fridge-recipes/internal/models"
)

// SearchCacheRepository provides cached upstream search responses using Redis
type SearchCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached searches
}

// NewSearchCacheRepository creates a new repository instance with a TTL
func NewSearchCacheRepository(client *redis.Client, expiration time.Duration) *SearchCacheRepository {
	return &SearchCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetSearchResults fetches cached search results for a normalized
// ingredient list
func (r *SearchCacheRepository) GetSearchResults(ctx context.Context, ingredients string) ([]models.SearchRecipe, error) {
	key := fmt.Sprintf("search:%s", ingredients)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("search results not found in cache for %q", ingredients)
		}
		return nil, err
	}

	var recipes []models.SearchRecipe
	if err := json.Unmarshal([]byte(val), &recipes); err != nil {
		logger.Log.Infow(
			"key", key,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result", len(recipes),
		"error", nil,
	)

	return recipes, nil
}

// SetSearchResults caches search results in Redis with expiration
func (r *SearchCacheRepository) SetSearchResults(ctx context.Context, ingredients string, recipes []models.SearchRecipe) error {
	key := fmt.Sprintf("search:%s", ingredients)

	data, err := json.Marshal(recipes)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}
