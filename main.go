package main

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"pricelens/config"
	"pricelens/handlers"
	"pricelens/middleware"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	h := handlers.NewHandlers(cfg)

	// Setup router
	r := mux.NewRouter()

	// Apply global middleware
	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.RateLimitMiddleware(cfg.RateLimitPerSecond))

	// Health endpoint (no auth required)
	r.HandleFunc("/health", healthCheck).Methods("GET")

	// API v1 routes
	apiV1 := r.PathPrefix("/api/v1").Subrouter()
	apiV1.HandleFunc("/prices/parse", h.ParsePrice).Methods("POST")
	apiV1.HandleFunc("/prices/resolve", h.ResolvePrices).Methods("POST")
	apiV1.HandleFunc("/prices/locate", h.LocatePrices).Methods("POST")
	apiV1.HandleFunc("/titles/extract", h.ExtractTitle).Methods("POST")

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	log.Printf("Server starting on %s:%s", cfg.Host, cfg.Port)
	log.Printf("   GET  /health - Health check")
	log.Printf("   POST /api/v1/prices/parse - Parse a single price string")
	log.Printf("   POST /api/v1/prices/resolve - Resolve a current/regular price pair")
	log.Printf("   POST /api/v1/prices/locate - Mine page text for price candidates")
	log.Printf("   POST /api/v1/titles/extract - Extract brand and size from a title")

	log.Fatal(http.ListenAndServe(cfg.Host+":"+cfg.Port, c.Handler(r)))
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"service":     "pricelens",
		"status":      "healthy",
		"timestamp":   time.Now(),
		"api_version": "v1",
		"endpoints": map[string]string{
			"health":  "/health",
			"parse":   "/api/v1/prices/parse",
			"resolve": "/api/v1/prices/resolve",
			"locate":  "/api/v1/prices/locate",
			"titles":  "/api/v1/titles/extract",
		},
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}
