package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"skillswap_server/models"
	"skillswap_server/services"
)

// AuthController handles registration and login
type AuthController struct {
	Users *services.UserService
}

type authResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// Register handles POST /api/auth/register
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, token, err := c.Users.Register(r.Context(), body.Name, body.Email, body.Password)
	if err != nil {
		respondError(w, err, "Error registering user")
		return
	}

	respondJSON(w, http.StatusCreated, authResponse{User: user, Token: token})
}

// Login handles POST /api/auth/login
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, token, err := c.Users.Login(r.Context(), body.Email, body.Password)
	if err != nil {
		// Bad credentials surface as 401 rather than the generic 403
		if errors.Is(err, models.ErrForbidden) {
			respondMessage(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		respondError(w, err, "Error logging in")
		return
	}

	respondJSON(w, http.StatusOK, authResponse{User: user, Token: token})
}
