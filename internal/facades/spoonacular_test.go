package facades

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ekuzmina/fridge-recipes/internal/models"
)

func TestSpoonacularFacade_FindByIngredients(t *testing.T) {
	recipes := []models.SearchRecipe{
		{ID: 632660, Title: "Apple Pie", Servings: 4},
		{ID: 632661, Title: "Apple Crumble", Servings: 6},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recipes/findByIngredients", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("apiKey"))
		assert.Equal(t, "apples,flour,sugar", r.URL.Query().Get("ingredients"))
		assert.Equal(t, "3", r.URL.Query().Get("number"))

		json.NewEncoder(w).Encode(recipes)
	}))
	defer server.Close()

	facade := NewSpoonacularFacade(server.URL, "test-key", 5*time.Second)

	got, err := facade.FindByIngredients(context.Background(), "apples,flour,sugar", 3)
	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "Apple Pie", got[0].Title)
}

func TestSpoonacularFacade_GetInformation(t *testing.T) {
	ready := 45
	recipe := models.SearchRecipe{
		ID:             632660,
		Title:          "Apple Pie",
		Servings:       4,
		SourceURL:      "https://example.com/apple-pie",
		ReadyInMinutes: &ready,
		ExtendedIngredients: []models.SearchIngredient{
			{ID: 9003, Amount: 1.33, Unit: "cups", Name: "apples"},
		},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recipes/632660/information", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("apiKey"))

		json.NewEncoder(w).Encode(recipe)
	}))
	defer server.Close()

	facade := NewSpoonacularFacade(server.URL, "test-key", 5*time.Second)

	got, err := facade.GetInformation(context.Background(), 632660)
	assert.NoError(t, err)
	assert.Equal(t, "Apple Pie", got.Title)
	assert.Equal(t, 45, *got.ReadyInMinutes)
	assert.Len(t, got.ExtendedIngredients, 1)
}

func TestSpoonacularFacade_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
	}))
	defer server.Close()

	facade := NewSpoonacularFacade(server.URL, "test-key", 5*time.Second)

	_, err := facade.FindByIngredients(context.Background(), "apples", 3)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 402")

	_, err = facade.GetInformation(context.Background(), 632660)
	assert.Error(t, err)
}

func TestSpoonacularFacade_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	facade := NewSpoonacularFacade(server.URL, "test-key", 50*time.Millisecond)

	_, err := facade.FindByIngredients(context.Background(), "apples", 3)
	assert.Error(t, err)
}
