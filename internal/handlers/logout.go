package handlers

import (
	"encoding/json"
	"net/http"
)

// LogoutResponse represents a successful logout response
// swagger:model LogoutResponse
type LogoutResponse struct {
	// Success message
	// default: Logged out
	Message string `json:"message"`
}

// NewLogoutHandler returns an HTTP handler for user logout.
// Sessions are stateless JWTs, so logout is the client discarding its
// token; the endpoint only confirms.
// @Summary User logout
// @Description Confirms logout; the client discards its bearer token
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.LogoutResponse "Logged out"
// @Router /logout [get]
// @Security BearerAuth
func NewLogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LogoutResponse{
			Message: "Logged out",
		})
	}
}
