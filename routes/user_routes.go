package routes

import (
	"github.com/gorilla/mux"

	"skillswap_server/auth"
	"skillswap_server/controllers"
	"skillswap_server/middleware"
	"skillswap_server/services"
)

// RegisterUserRoutes registers profile routes under /api/users.
// Search stays public; profile reads and updates require authentication.
func RegisterUserRoutes(r *mux.Router, userService *services.UserService, jwtService *auth.JWTService) {
	controller := &controllers.UserController{Users: userService}

	userRouter := r.PathPrefix("/api/users").Subrouter()
	userRouter.HandleFunc("/search", controller.SearchBySkill).Methods("GET")

	protected := userRouter.NewRoute().Subrouter()
	protected.Use(middleware.Protect(jwtService))
	protected.HandleFunc("/me", controller.GetMyProfile).Methods("GET")
	protected.HandleFunc("/me/update", controller.UpdateMyProfile).Methods("PUT")
}
