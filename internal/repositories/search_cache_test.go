package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/ekuzmina/fridge-recipes/internal/models"
)

func TestSearchCacheRepository(t *testing.T) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	repo := NewSearchCacheRepository(rdb, 2*time.Second)

	recipes := []models.SearchRecipe{
		{ID: 632660, Title: "Apple Pie", Servings: 4},
		{ID: 632661, Title: "Apple Crumble", Servings: 6},
	}

	t.Run("Set and Get search results", func(t *testing.T) {
		err := repo.SetSearchResults(ctx, "apples,flour,sugar", recipes)
		assert.NoError(t, err)

		got, err := repo.GetSearchResults(ctx, "apples,flour,sugar")
		assert.NoError(t, err)
		assert.Equal(t, recipes, got)
	})

	t.Run("Get missing key returns error", func(t *testing.T) {
		_, err := repo.GetSearchResults(ctx, "nothing,at,all")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not found in cache")
	})

	t.Run("Cached value expires", func(t *testing.T) {
		err := repo.SetSearchResults(ctx, "bananas", recipes[:1])
		assert.NoError(t, err)

		// Wait for expiration (2s)
		time.Sleep(3 * time.Second)

		_, err = repo.GetSearchResults(ctx, "bananas")
		assert.Error(t, err)
	})
}
