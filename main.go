package main

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"skillswap_server/auth"
	"skillswap_server/config"
	"skillswap_server/logger"
	"skillswap_server/routes"
	"skillswap_server/services"
	"skillswap_server/socket"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogFile)
	defer logger.Sync()

	// Initialize DynamoDB client and service
	logger.Infof("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient(cfg.AWSRegion)
	dynamoService := &services.DynamoService{Client: dynamoClient}
	logger.Infof("DynamoDB client initialized.")

	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTExpiry)

	// Connection registry and Socket.IO server
	registry := socket.NewRegistry()
	socketServer := socket.NewSocketServer(registry)
	go func() {
		if err := socketServer.Serve(); err != nil {
			logger.Fatalf("Socket.IO server failed: %v", err)
		}
	}()
	defer socketServer.Close()

	// Initialize services
	userService := &services.UserService{Dynamo: dynamoService, JWT: jwtService}
	swapService := &services.SwapService{Dynamo: dynamoService, Users: userService, Notifier: registry}
	ratingService := &services.RatingService{Dynamo: dynamoService, Users: userService}
	adminService := &services.AdminService{Dynamo: dynamoService, Users: userService, Notifier: registry}
	photoService := services.NewPhotoService(cfg.AWSRegion, cfg.S3Bucket)

	// Initialize the router
	r := mux.NewRouter()

	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Skill Swap API running...")
	}).Methods("GET")

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
	}).Methods("GET")

	r.Handle("/socket.io/", socketServer)

	// Register routes
	routes.RegisterAuthRoutes(r, userService)
	routes.RegisterUserRoutes(r, userService, jwtService)
	routes.RegisterSwapRoutes(r, swapService, jwtService)
	routes.RegisterRatingRoutes(r, ratingService, jwtService)
	routes.RegisterAdminRoutes(r, adminService, jwtService)
	routes.RegisterPhotoRoutes(r, photoService, jwtService)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.ClientURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	logger.Infof("Starting server on port %s...", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, corsHandler); err != nil {
		logger.Fatalf("Server failed: %v", err)
	}
}
