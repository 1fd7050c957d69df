package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ekuzmina/fridge-recipes/internal/logger"
	"github.com/ekuzmina/fridge-recipes/internal/models"
)

// SpoonacularFacade implements the recipe search readers against the
// Spoonacular HTTP API.
type SpoonacularFacade struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewSpoonacularFacade creates a new facade. The timeout bounds every
// upstream call.
func NewSpoonacularFacade(baseURL, apiKey string, timeout time.Duration) *SpoonacularFacade {
	return &SpoonacularFacade{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

// FindByIngredients fetches recipe summaries matching a comma-separated
// ingredient list
func (f *SpoonacularFacade) FindByIngredients(ctx context.Context, ingredients string, number int) ([]models.SearchRecipe, error) {
	params := url.Values{}
	params.Set("apiKey", f.apiKey)
	params.Set("ingredients", ingredients)
	params.Set("number", strconv.Itoa(number))

	endpoint := fmt.Sprintf("%s/recipes/findByIngredients?%s", f.baseURL, params.Encode())

	var recipes []models.SearchRecipe
	if err := f.getJSON(ctx, endpoint, &recipes); err != nil {
		logger.Log.Errorw("failed to fetch recipes by ingredients",
			"ingredients", ingredients, "error", err)
		return nil, err
	}

	return recipes, nil
}

// GetInformation fetches the full recipe payload for one upstream recipe id
func (f *SpoonacularFacade) GetInformation(ctx context.Context, recipeID int64) (*models.SearchRecipe, error) {
	params := url.Values{}
	params.Set("apiKey", f.apiKey)

	endpoint := fmt.Sprintf("%s/recipes/%d/information?%s", f.baseURL, recipeID, params.Encode())

	var recipe models.SearchRecipe
	if err := f.getJSON(ctx, endpoint, &recipe); err != nil {
		logger.Log.Errorw("failed to fetch recipe information",
			"recipe_id", recipeID, "error", err)
		return nil, err
	}

	return &recipe, nil
}

func (f *SpoonacularFacade) getJSON(ctx context.Context, endpoint string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("upstream returned status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(dest)
}
