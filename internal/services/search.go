package services

import (
	"context"
	"strings"

	"github.com/ekuzmina/fridge-recipes/internal/logger"
	"github.com/ekuzmina/fridge-recipes/internal/models"
	"github.com/ekuzmina/fridge-recipes/internal/normalize"
)

// RecipeSearcher fetches recipe summaries from the upstream search API.
type RecipeSearcher interface {
	FindByIngredients(ctx context.Context, ingredients string, number int) ([]models.SearchRecipe, error)
}

// SearchCacheReader caches upstream search responses.
type SearchCacheReader interface {
	GetSearchResults(ctx context.Context, ingredients string) ([]models.SearchRecipe, error)
	SetSearchResults(ctx context.Context, ingredients string, recipes []models.SearchRecipe) error
}

// SearchService handles ingredient-based recipe search.
type SearchService struct {
	searcher RecipeSearcher
	cache    SearchCacheReader
	limit    int
}

// NewSearchService creates a new SearchService. The limit caps the number
// of results returned per search.
func NewSearchService(searcher RecipeSearcher, cache SearchCacheReader, limit int) *SearchService {
	return &SearchService{
		searcher: searcher,
		cache:    cache,
		limit:    limit,
	}
}

// normalizeIngredients trims and lowercases the comma-separated ingredient
// list so equivalent searches share one cache key.
func normalizeIngredients(ingredients string) string {
	parts := strings.Split(ingredients, ",")
	cleaned := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			cleaned = append(cleaned, p)
		}
	}
	return strings.Join(cleaned, ",")
}

// Search returns normalized recipe summaries for an ingredient list. The
// cache is consulted first; on a miss the upstream API is called and its
// raw response cached. Upstream failure is reported, never an empty result.
func (svc *SearchService) Search(ctx context.Context, ingredients string) ([]models.RecipeResponse, error) {
	ingredients = normalizeIngredients(ingredients)
	if ingredients == "" {
		return nil, ErrValidation
	}

	recipes, err := svc.cache.GetSearchResults(ctx, ingredients)
	if err != nil {
		recipes, err = svc.searcher.FindByIngredients(ctx, ingredients, svc.limit)
		if err != nil {
			logger.Log.Errorw("failed to search recipes", "ingredients", ingredients, "error", err)
			return nil, ErrUpstreamUnavailable
		}

		if err := svc.cache.SetSearchResults(ctx, ingredients, recipes); err != nil {
			logger.Log.Errorw("failed to cache search results", "ingredients", ingredients, "error", err)
		}
	}

	if len(recipes) > svc.limit {
		recipes = recipes[:svc.limit]
	}

	results := make([]models.RecipeResponse, 0, len(recipes))
	for _, raw := range recipes {
		results = append(results, normalize.Recipe(raw))
	}

	return results, nil
}
