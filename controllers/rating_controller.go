package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"skillswap_server/middleware"
	"skillswap_server/services"
)

// RatingController handles rating submission and lookup
type RatingController struct {
	Ratings *services.RatingService
}

// SubmitRating handles POST /api/ratings
func (c *RatingController) SubmitRating(w http.ResponseWriter, r *http.Request) {
	caller, _ := middleware.UserFromContext(r.Context())

	var input services.SubmitRatingInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	rating, err := c.Ratings.SubmitRating(r.Context(), caller.ID, input)
	if err != nil {
		respondError(w, err, "Error submitting rating")
		return
	}
	respondJSON(w, http.StatusCreated, rating)
}

// GetUserRatings handles GET /api/ratings/{userId}
func (c *RatingController) GetUserRatings(w http.ResponseWriter, r *http.Request) {
	ratings, err := c.Ratings.GetUserRatings(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		respondError(w, err, "Error fetching ratings")
		return
	}
	respondJSON(w, http.StatusOK, ratings)
}
