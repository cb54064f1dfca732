package routes

import (
	"github.com/gorilla/mux"

	"skillswap_server/auth"
	"skillswap_server/controllers"
	"skillswap_server/middleware"
	"skillswap_server/services"
)

// RegisterPhotoRoutes registers presigned-URL routes under /api/photos
func RegisterPhotoRoutes(r *mux.Router, photoService *services.PhotoService, jwtService *auth.JWTService) {
	controller := &controllers.PhotoController{Photos: photoService}

	photoRouter := r.PathPrefix("/api/photos").Subrouter()
	photoRouter.Use(middleware.Protect(jwtService))
	photoRouter.HandleFunc("/upload-url", controller.GenerateUploadURL).Methods("POST")
	photoRouter.HandleFunc("/read-url", controller.GenerateReadURL).Methods("POST")
}
