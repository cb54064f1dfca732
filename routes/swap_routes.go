package routes

import (
	"github.com/gorilla/mux"

	"skillswap_server/auth"
	"skillswap_server/controllers"
	"skillswap_server/middleware"
	"skillswap_server/services"
)

// RegisterSwapRoutes registers the swap lifecycle under /api/swaps
func RegisterSwapRoutes(r *mux.Router, swapService *services.SwapService, jwtService *auth.JWTService) {
	controller := &controllers.SwapController{Swaps: swapService}

	swapRouter := r.PathPrefix("/api/swaps").Subrouter()
	swapRouter.Use(middleware.Protect(jwtService))
	swapRouter.HandleFunc("", controller.CreateSwapRequest).Methods("POST")
	swapRouter.HandleFunc("/me", controller.GetMySwaps).Methods("GET")
	swapRouter.HandleFunc("/{id}/status", controller.UpdateSwapStatus).Methods("PUT")
}
