package main

import (
	"log"
	"net/http"

	"github.com/andrewpaige1/mentorship-api/config"
	"github.com/andrewpaige1/mentorship-api/handlers"
	"github.com/andrewpaige1/mentorship-api/middleware"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func init() {
	// A missing .env is fine when the environment is provided by the platform
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, environment variables might not be loaded: %v", err)
	}
}

func main() {
	cfg, err := config.LoadEnvironment()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, err := config.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	DBHandler := &handlers.DBHandler{DB: db}
	mux := handlers.Routes(DBHandler)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "X-Requested-With", "Accept", "Origin", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           86400,
	}).Handler(mux)

	serverAddr := "0.0.0.0:" + cfg.Port
	log.Printf("Listening on %s", serverAddr)

	if err := http.ListenAndServe(serverAddr, middleware.RequestLogger(corsHandler)); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
