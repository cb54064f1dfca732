package controllers

import (
	"encoding/json"
	"net/http"

	"skillswap_server/middleware"
	"skillswap_server/services"
)

// UserController handles profile reads, updates and skill search
type UserController struct {
	Users *services.UserService
}

// GetMyProfile handles GET /api/users/me
func (c *UserController) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	caller, _ := middleware.UserFromContext(r.Context())

	user, err := c.Users.GetByID(r.Context(), caller.ID)
	if err != nil {
		respondError(w, err, "Error fetching profile")
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// UpdateMyProfile handles PUT /api/users/me/update
func (c *UserController) UpdateMyProfile(w http.ResponseWriter, r *http.Request) {
	caller, _ := middleware.UserFromContext(r.Context())

	var update services.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, err := c.Users.UpdateProfile(r.Context(), caller.ID, update)
	if err != nil {
		respondError(w, err, "Error updating profile")
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// SearchBySkill handles GET /api/users/search?skill=photoshop
func (c *UserController) SearchBySkill(w http.ResponseWriter, r *http.Request) {
	users, err := c.Users.SearchBySkill(r.Context(), r.URL.Query().Get("skill"))
	if err != nil {
		respondError(w, err, "Error searching users")
		return
	}
	respondJSON(w, http.StatusOK, users)
}
