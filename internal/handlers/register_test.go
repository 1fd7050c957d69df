package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/ekuzmina/fridge-recipes/internal/services"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	type requestBody struct {
		email    string
		password string
		phone    string
	}

	tests := []struct {
		name         string
		reqBody      requestBody
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		expectedBody map[string]string
		rawBody      bool // if true, pass raw body (to simulate invalid JSON)
	}{
		{
			name: "success",
			reqBody: requestBody{
				email:    "alice@example.com",
				password: "secret",
				phone:    "555-0100",
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice@example.com", "secret", "555-0100").
					Return(nil)
			},
			expectedCode: 201,
			expectedBody: map[string]string{"message": "User registered successfully"},
		},
		{
			name: "user already exists",
			reqBody: requestBody{
				email:    "bob@example.com",
				password: "pass",
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "bob@example.com", "pass", "").
					Return(services.ErrUserAlreadyExists)
			},
			expectedCode: 409,
			expectedBody: map[string]string{"error": "Email already registered"},
		},
		{
			name: "missing email",
			reqBody: requestBody{
				password: "pass",
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "", "pass", "").
					Return(services.ErrValidation)
			},
			expectedCode: 400,
			expectedBody: map[string]string{"error": "Email and password are required"},
		},
		{
			name: "internal server error",
			reqBody: requestBody{
				email:    "carol@example.com",
				password: "pass",
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "carol@example.com", "pass", "").
					Return(errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: map[string]string{"error": "Internal server error"},
		},
		{
			name:         "invalid json",
			rawBody:      true,
			expectedCode: 400,
			expectedBody: map[string]string{"error": "invalid request body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewRegisterHandler(mockSvc)

			var req *http.Request
			if tt.rawBody {
				req = httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString("{invalid json}"))
			} else {
				bodyBytes, _ := json.Marshal(RegisterRequest{
					Email:    tt.reqBody.email,
					Password: tt.reqBody.password,
					Phone:    tt.reqBody.phone,
				})
				req = httptest.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(bodyBytes))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]string
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}
