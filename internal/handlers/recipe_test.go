package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/ekuzmina/fridge-recipes/internal/models"
	"github.com/ekuzmina/fridge-recipes/internal/services"
)

func storedRecipe() *models.RecipeResponse {
	ready := 45
	return &models.RecipeResponse{
		Details: models.RecipeDetails{
			RecipeID:  632660,
			Title:     "Apple Pie",
			Servings:  4,
			SourceURL: "https://example.com/apple-pie",
		},
		Times: models.RecipeTimes{ReadyMins: &ready},
		Ingredients: []models.IngredientDetail{
			{IngredientID: 9003, Amount: 1.33, Unit: "cups", Name: "apples"},
		},
		Instructions: []string{"Peel the apples.", "Bake."},
		Equipment:    []string{"knife", "oven"},
	}
}

func TestPersistRecipeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name          string
		recipeID      int64
		mockSetup     func(m *MockRecipePersister)
		expectedCode  int
		expectedError string
		rawBody       bool
	}{
		{
			name:     "success",
			recipeID: 632660,
			mockSetup: func(m *MockRecipePersister) {
				m.EXPECT().
					Persist(gomock.Any(), int64(632660)).
					Return(storedRecipe(), nil)
			},
			expectedCode: 201,
		},
		{
			name:     "invalid recipe id",
			recipeID: 0,
			mockSetup: func(m *MockRecipePersister) {
				m.EXPECT().
					Persist(gomock.Any(), int64(0)).
					Return(nil, services.ErrValidation)
			},
			expectedCode:  400,
			expectedError: "Invalid recipe id",
		},
		{
			name:     "upstream unavailable",
			recipeID: 632660,
			mockSetup: func(m *MockRecipePersister) {
				m.EXPECT().
					Persist(gomock.Any(), int64(632660)).
					Return(nil, services.ErrUpstreamUnavailable)
			},
			expectedCode:  502,
			expectedError: "Recipe provider unavailable",
		},
		{
			name:     "internal server error",
			recipeID: 632660,
			mockSetup: func(m *MockRecipePersister) {
				m.EXPECT().
					Persist(gomock.Any(), int64(632660)).
					Return(nil, errors.New("db error"))
			},
			expectedCode:  500,
			expectedError: "Internal server error",
		},
		{
			name:          "invalid json",
			rawBody:       true,
			expectedCode:  400,
			expectedError: "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRecipePersister(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewPersistRecipeHandler(mockSvc)

			var req *http.Request
			if tt.rawBody {
				req = httptest.NewRequest(http.MethodPost, "/recipes", bytes.NewBufferString("{invalid json}"))
			} else {
				bodyBytes, _ := json.Marshal(PersistRecipeRequest{RecipeID: tt.recipeID})
				req = httptest.NewRequest(http.MethodPost, "/recipes", bytes.NewBuffer(bodyBytes))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp map[string]string
				err := json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp["error"])
				return
			}

			var resp models.RecipeResponse
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, "Apple Pie", resp.Details.Title)
			assert.Equal(t, []string{"Peel the apples.", "Bake."}, resp.Instructions)
		})
	}
}

func TestGetRecipeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name          string
		path          string
		mockSetup     func(m *MockRecipeGetter)
		expectedCode  int
		expectedError string
	}{
		{
			name: "success",
			path: "/recipes/632660",
			mockSetup: func(m *MockRecipeGetter) {
				m.EXPECT().
					Get(gomock.Any(), int64(632660)).
					Return(storedRecipe(), nil)
			},
			expectedCode: 200,
		},
		{
			name: "not found",
			path: "/recipes/99",
			mockSetup: func(m *MockRecipeGetter) {
				m.EXPECT().
					Get(gomock.Any(), int64(99)).
					Return(nil, services.ErrRecipeNotFound)
			},
			expectedCode:  404,
			expectedError: "Recipe not found",
		},
		{
			name:          "malformed id",
			path:          "/recipes/pie",
			expectedCode:  400,
			expectedError: "Invalid recipe id",
		},
		{
			name: "internal server error",
			path: "/recipes/632660",
			mockSetup: func(m *MockRecipeGetter) {
				m.EXPECT().
					Get(gomock.Any(), int64(632660)).
					Return(nil, errors.New("db error"))
			},
			expectedCode:  500,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRecipeGetter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			router := chi.NewRouter()
			router.Get("/recipes/{recipeID}", NewGetRecipeHandler(mockSvc))

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp map[string]string
				err := json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp["error"])
				return
			}

			var resp models.RecipeResponse
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, int64(632660), resp.Details.RecipeID)
			assert.Equal(t, []string{"knife", "oven"}, resp.Equipment)
		})
	}
}
