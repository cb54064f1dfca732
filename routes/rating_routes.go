package routes

import (
	"github.com/gorilla/mux"

	"skillswap_server/auth"
	"skillswap_server/controllers"
	"skillswap_server/middleware"
	"skillswap_server/services"
)

// RegisterRatingRoutes registers rating routes under /api/ratings.
// Submitting requires authentication; reading a user's ratings is public.
func RegisterRatingRoutes(r *mux.Router, ratingService *services.RatingService, jwtService *auth.JWTService) {
	controller := &controllers.RatingController{Ratings: ratingService}

	ratingRouter := r.PathPrefix("/api/ratings").Subrouter()
	ratingRouter.HandleFunc("/{userId}", controller.GetUserRatings).Methods("GET")

	protected := ratingRouter.NewRoute().Subrouter()
	protected.Use(middleware.Protect(jwtService))
	protected.HandleFunc("", controller.SubmitRating).Methods("POST")
}
