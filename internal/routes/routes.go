package routes

import (
	"log"
	"os"
	"strings"
	"time"

	"back_artists/internal/handlers"
	"back_artists/internal/middleware"
	"back_artists/internal/repository"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	authHandler *handlers.AuthHandler,
	artistHandler *handlers.ArtistHandler,
	recommendationHandler *handlers.RecommendationHandler,
	userRepo repository.UserRepository,
) *gin.Engine {

	router := gin.New()

	// =========================
	// GLOBAL MIDDLEWARE
	// =========================
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// =========================
	// CORS CONFIG (DEV / PROD)
	// =========================
	env := os.Getenv("ENV") // development | production
	frontendURL := os.Getenv("CORS_ORIGIN")

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if env == "production" {
		if frontendURL == "" {
			log.Fatal("❌ CORS_ORIGIN environment variable is NOT set in production!")
		}
		corsConfig.AllowOrigins = []string{frontendURL}
		log.Printf("✅ CORS configured for production: %s", frontendURL)
	} else {
		allowedOrigins := []string{
			"http://localhost:3000",
			"http://localhost:5173",
			"http://127.0.0.1:3000",
			"http://127.0.0.1:5173",
		}

		if frontendURL != "" {
			allowedOrigins = append(allowedOrigins, frontendURL)
		}

		corsConfig.AllowOriginFunc = func(origin string) bool {
			for _, allowed := range allowedOrigins {
				if origin == allowed {
					return true
				}
			}
			// Allow local network IPs (192.168.x.x, 10.x.x.x)
			if strings.HasPrefix(origin, "http://192.168.") || strings.HasPrefix(origin, "http://10.") {
				return true
			}
			return false
		}
		log.Printf("✅ CORS configured for development with %d allowed origins", len(allowedOrigins))
	}

	router.Use(cors.New(corsConfig))

	// =========================
	// SECURITY HEADERS MIDDLEWARE
	// =========================
	router.Use(func(c *gin.Context) {
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-XSS-Protection", "1; mode=block")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Content-Security-Policy", "default-src 'self'")
		c.Next()
	})

	// =========================
	// API ROUTES
	// =========================
	api := router.Group("/api")
	{
		// ---------- AUTH ----------
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)

			authProtected := auth.Group("/")
			authProtected.Use(middleware.JWTMiddleware())
			{
				authProtected.GET("/me", authHandler.Me)
			}
		}

		// ---------- PUBLIC CATALOG ----------
		artists := api.Group("/artists")
		artists.Use(middleware.OptionalJWTMiddleware())
		{
			artists.GET("", artistHandler.GetAllArtists)
			artists.GET("/search", artistHandler.SearchArtists)
			artists.GET("/:id", artistHandler.GetArtistByID)
		}

		// ---------- PROTECTED ----------
		protected := api.Group("/")
		protected.Use(middleware.JWTMiddleware())
		{
			protected.POST("/artists/custom", artistHandler.AddCustomArtist)

			// RECOMMENDATIONS
			recommendations := protected.Group("/recommendations")
			{
				recommendations.GET("", recommendationHandler.GetRecommendations)
				recommendations.POST("/shuffle", recommendationHandler.Shuffle)
				recommendations.DELETE("/:artist_id", recommendationHandler.DismissArtist)
			}

			// RATINGS & SAVED LIST
			protected.POST("/ratings/:artist_id", recommendationHandler.RateArtist)
			protected.GET("/saved", recommendationHandler.GetSaved)
			protected.POST("/saved/:artist_id", recommendationHandler.SaveArtist)
			protected.DELETE("/saved/:artist_id", recommendationHandler.UnsaveArtist)

			protected.GET("/profile", recommendationHandler.GetProfile)
		}

		// ---------- ADMIN ----------
		admin := api.Group("/admin")
		admin.Use(middleware.AdminMiddleware(userRepo))
		{
			admin.POST("/artists/seed", artistHandler.SeedArtists)
		}
	}

	// =========================
	// HEALTH & ROOT
	// =========================
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "success",
			"message": "Server is running",
		})
	})

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "success",
			"message": "Back Artists API",
			"version": "1.0.0",
		})
	})

	return router
}
