package routes

import (
	"github.com/gorilla/mux"

	"skillswap_server/auth"
	"skillswap_server/controllers"
	"skillswap_server/middleware"
	"skillswap_server/services"
)

// RegisterAdminRoutes registers moderation routes under /api/admin.
// Everything here requires authentication plus the admin role.
func RegisterAdminRoutes(r *mux.Router, adminService *services.AdminService, jwtService *auth.JWTService) {
	controller := &controllers.AdminController{Admin: adminService}

	adminRouter := r.PathPrefix("/api/admin").Subrouter()
	adminRouter.Use(middleware.Protect(jwtService))
	adminRouter.Use(middleware.Admin)
	adminRouter.HandleFunc("/swaps/pending", controller.MonitorPendingSwaps).Methods("GET")
	adminRouter.HandleFunc("/reports", controller.GenerateReports).Methods("GET")
	adminRouter.HandleFunc("/ban/{userId}", controller.BanUser).Methods("PUT")
	adminRouter.HandleFunc("/message", controller.SendPlatformMessage).Methods("POST")
}
