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

func TestSaveRecipeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	token := "valid-token"

	tests := []struct {
		name          string
		path          string
		body          string
		mockSetup     func(tok *MockSaveTokener, svc *MockRecipeSaver)
		expectedCode  int
		expectedError string
	}{
		{
			name: "success without body",
			path: "/recipes/632660/save",
			mockSetup: func(tok *MockSaveTokener, svc *MockRecipeSaver) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(token, nil)
				tok.EXPECT().GetUserID(gomock.Any(), token).Return(int64(1), nil)
				svc.EXPECT().
					Save(gomock.Any(), int64(1), int64(632660), false).
					Return(&models.SavedRecipeDB{SavedID: 10, UserID: 1, RecipeID: 632660}, nil)
			},
			expectedCode: 201,
		},
		{
			name: "success with favorite",
			path: "/recipes/632660/save",
			body: `{"favorite":true}`,
			mockSetup: func(tok *MockSaveTokener, svc *MockRecipeSaver) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(token, nil)
				tok.EXPECT().GetUserID(gomock.Any(), token).Return(int64(1), nil)
				svc.EXPECT().
					Save(gomock.Any(), int64(1), int64(632660), true).
					Return(&models.SavedRecipeDB{SavedID: 10, UserID: 1, RecipeID: 632660, Favorite: true}, nil)
			},
			expectedCode: 201,
		},
		{
			name: "unauthorized missing token",
			path: "/recipes/632660/save",
			mockSetup: func(tok *MockSaveTokener, svc *MockRecipeSaver) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no token"))
			},
			expectedCode:  401,
			expectedError: "Unauthorized",
		},
		{
			name: "recipe not stored",
			path: "/recipes/99/save",
			mockSetup: func(tok *MockSaveTokener, svc *MockRecipeSaver) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(token, nil)
				tok.EXPECT().GetUserID(gomock.Any(), token).Return(int64(1), nil)
				svc.EXPECT().
					Save(gomock.Any(), int64(1), int64(99), false).
					Return(nil, services.ErrRecipeNotFound)
			},
			expectedCode:  404,
			expectedError: "Recipe not found",
		},
		{
			name: "internal server error",
			path: "/recipes/632660/save",
			mockSetup: func(tok *MockSaveTokener, svc *MockRecipeSaver) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(token, nil)
				tok.EXPECT().GetUserID(gomock.Any(), token).Return(int64(1), nil)
				svc.EXPECT().
					Save(gomock.Any(), int64(1), int64(632660), false).
					Return(nil, errors.New("db error"))
			},
			expectedCode:  500,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTokener := NewMockSaveTokener(ctrl)
			mockSvc := NewMockRecipeSaver(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockTokener, mockSvc)
			}

			router := chi.NewRouter()
			router.Post("/recipes/{recipeID}/save", NewSaveRecipeHandler(mockSvc, mockTokener))

			var body *bytes.Buffer
			if tt.body != "" {
				body = bytes.NewBufferString(tt.body)
			} else {
				body = bytes.NewBuffer(nil)
			}

			req := httptest.NewRequest(http.MethodPost, tt.path, body)
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

			var resp SaveRecipeResponse
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, "Recipe saved", resp.Message)
			assert.Equal(t, int64(632660), resp.Saved.RecipeID)
		})
	}
}
