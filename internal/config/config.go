package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
    DBHost     string
    DBPort     string
    DBUser     string
    DBPassword string
    DBName     string
    DBSSLMode  string

    ServerPort string
    JWTSecret  string

    // Recommendation tuning
    RecommendCount      int
    TopPickRatio        float64
    GenreWeight         float64
    ThemeWeight         float64
    StyleWeight         float64
    EraWeight           float64
    DiversityJitter     float64
    RecencyCap          int
    StarterRecencyCap   int
    ReplacementPoolSize int
}

var GlobalConfig *Config

func LoadConfig() error {
    if err := godotenv.Load(); err != nil {
        log.Println("No .env file found, using environment variables")
    }

    // Check environment
    env := getEnv("ENV", "development") // default to development

    // Default tuning:
    // - genre carries the most signal, era the least
    // - DIVERSITY_JITTER is the span of the uniform random term added to
    //   every score; it doubles as the tie-breaker
    recommendCount, _ := strconv.Atoi(getEnv("RECOMMEND_COUNT", "6"))
    topPickRatio, _ := strconv.ParseFloat(getEnv("TOP_PICK_RATIO", "0.7"), 64)
    genreWeight, _ := strconv.ParseFloat(getEnv("GENRE_WEIGHT", "3"), 64)
    themeWeight, _ := strconv.ParseFloat(getEnv("THEME_WEIGHT", "2"), 64)
    styleWeight, _ := strconv.ParseFloat(getEnv("STYLE_WEIGHT", "2"), 64)
    eraWeight, _ := strconv.ParseFloat(getEnv("ERA_WEIGHT", "1"), 64)
    diversityJitter, _ := strconv.ParseFloat(getEnv("DIVERSITY_JITTER", "10"), 64)
    recencyCap, _ := strconv.Atoi(getEnv("RECENCY_CAP", "24"))
    starterRecencyCap, _ := strconv.Atoi(getEnv("STARTER_RECENCY_CAP", "18"))
    replacementPoolSize, _ := strconv.Atoi(getEnv("REPLACEMENT_POOL_SIZE", "10"))

    // Set DB defaults based on environment
    var dbHost, dbPort, dbUser, dbPassword, dbName, dbSSLMode string
    if env == "production" {
        dbHost = getEnv("DB_HOST", "")
        dbPort = getEnv("DB_PORT", "5432")
        dbUser = getEnv("DB_USER", "")
        dbPassword = getEnv("DB_PASSWORD", "")
        dbName = getEnv("DB_NAME", "")
        dbSSLMode = getEnv("DB_SSLMODE", "require")
    } else {
        dbHost = getEnv("DB_HOST", "localhost")
        dbPort = getEnv("DB_PORT", "5432")
        dbUser = getEnv("DB_USER", "postgres")
        dbPassword = getEnv("DB_PASSWORD", "password")
        dbName = getEnv("DB_NAME", "artist_app")
        dbSSLMode = getEnv("DB_SSLMODE", "disable")
    }

    GlobalConfig = &Config{
        DBHost:     dbHost,
        DBPort:     dbPort,
        DBUser:     dbUser,
        DBPassword: dbPassword,
        DBName:     dbName,
        DBSSLMode:  dbSSLMode,

        ServerPort: getEnv("SERVER_PORT", "8080"),
        JWTSecret:  getEnv("JWT_SECRET", "default-jwt-secret-change-in-production"),

        RecommendCount:      recommendCount,
        TopPickRatio:        topPickRatio,
        GenreWeight:         genreWeight,
        ThemeWeight:         themeWeight,
        StyleWeight:         styleWeight,
        EraWeight:           eraWeight,
        DiversityJitter:     diversityJitter,
        RecencyCap:          recencyCap,
        StarterRecencyCap:   starterRecencyCap,
        ReplacementPoolSize: replacementPoolSize,
    }

    return nil
}

func getEnv(key, defaultValue string) string {
    if value := os.Getenv(key); value != "" {
        return value
    }
    return defaultValue
}
