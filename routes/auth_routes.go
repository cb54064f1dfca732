package routes

import (
	"github.com/gorilla/mux"

	"skillswap_server/controllers"
	"skillswap_server/services"
)

// RegisterAuthRoutes registers registration and login under /api/auth
func RegisterAuthRoutes(r *mux.Router, userService *services.UserService) {
	controller := &controllers.AuthController{Users: userService}

	authRouter := r.PathPrefix("/api/auth").Subrouter()
	authRouter.HandleFunc("/register", controller.Register).Methods("POST")
	authRouter.HandleFunc("/login", controller.Login).Methods("POST")
}
