// main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"back_artists/internal/config"
	"back_artists/internal/database"
	"back_artists/internal/handlers"
	"back_artists/internal/repository"
	"back_artists/internal/routes"
	"back_artists/internal/services"
)

func main() {

	// =========================
	// LOAD CONFIG (SAFE)
	// =========================
	if err := config.LoadConfig(); err != nil {
		log.Println("⚠️ Config load warning:", err)
		log.Println("⚠️ Using environment variables only")
	}

	// =========================
	// CONNECT DATABASE (SAFE)
	// =========================
	if err := database.ConnectDB(); err != nil {
		log.Println("⚠️ Database connection failed:", err)
		log.Println("⚠️ App will continue running without database")
	} else {
		database.RunMigrations()
	}

	// =========================
	// INIT REPOSITORIES
	// =========================
	userRepo := repository.NewUserRepository()
	artistRepo := repository.NewArtistRepository()
	ratingRepo := repository.NewRatingRepository()
	savedRepo := repository.NewSavedArtistRepository()

	// =========================
	// INIT SERVICES
	// =========================
	cfg := config.GlobalConfig
	rng := services.NewRandomSource()

	sessions := services.NewSessionStore(ratingRepo, savedRepo, cfg.RecencyCap, cfg.StarterRecencyCap)
	recommender := services.NewRecommenderService(artistRepo, ratingRepo, savedRepo, sessions, cfg, rng)
	log.Println("✅ Recommender service initialized")

	// =========================
	// INIT HANDLERS
	// =========================
	authHandler := handlers.NewAuthHandler(userRepo)
	artistHandler := handlers.NewArtistHandler(artistRepo, recommender)
	recommendationHandler := handlers.NewRecommendationHandler(recommender, artistRepo, cfg)

	// =========================
	// ROUTES
	// =========================
	router := routes.SetupRoutes(
		authHandler,
		artistHandler,
		recommendationHandler,
		userRepo,
	)

	// =========================
	// PORT
	// =========================
	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.ServerPort
	}
	if port == "" {
		port = "8080"
	}

	bindAddr := "0.0.0.0:" + port

	// =========================
	// SERVER CONFIG
	// =========================
	server := &http.Server{
		Addr:         bindAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// =========================
	// START SERVER
	// =========================
	go func() {
		log.Println("🎤 =======================================")
		log.Println("🎤   BACK ARTISTS API SERVER")
		log.Println("🎤 =======================================")
		log.Printf("🎤   Running on: %s", bindAddr)
		log.Println("🎤 =======================================")
		log.Println("🚀 Server started")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Println("❌ Server error:", err)
		}
	}()

	// =========================
	// GRACEFUL SHUTDOWN
	// =========================
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Println("❌ Forced shutdown:", err)
	}

	log.Println("✅ Server exited properly")
}
