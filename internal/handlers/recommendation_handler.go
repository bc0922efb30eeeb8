package handlers

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"back_artists/internal/config"
	"back_artists/internal/models"
	"back_artists/internal/repository"
	"back_artists/internal/services"
)

type RecommendationHandler struct {
    recommender services.RecommenderService
    artistRepo  repository.ArtistRepository
    config      *config.Config
}

func NewRecommendationHandler(recommender services.RecommenderService, artistRepo repository.ArtistRepository, cfg *config.Config) *RecommendationHandler {
    return &RecommendationHandler{
        recommender: recommender,
        artistRepo:  artistRepo,
        config:      cfg,
    }
}

func (h *RecommendationHandler) limitFromQuery(c *gin.Context) int {
    limitStr := c.DefaultQuery("limit", strconv.Itoa(h.config.RecommendCount))
    limit, err := strconv.Atoi(limitStr)
    if err != nil || limit <= 0 {
        limit = h.config.RecommendCount
    }
    if limit > 20 {
        limit = 20 // Safety limit
    }
    return limit
}

func roundScores(recs []models.RecommendationScore) {
    for i := range recs {
        recs[i].Score = math.Round(recs[i].Score*100) / 100
    }
}

func (h *RecommendationHandler) GetRecommendations(c *gin.Context) {
    userID := c.GetUint("user_id")
    limit := h.limitFromQuery(c)

    recommendations, err := h.recommender.GetRecommendations(userID, limit)
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{
            "status":  "error",
            "message": "Failed to generate recommendations",
            "error":   err.Error(),
        })
        return
    }

    roundScores(recommendations)

    c.JSON(http.StatusOK, gin.H{
        "status": "success",
        "count":  len(recommendations),
        "data":   recommendations,
    })
}

func (h *RecommendationHandler) Shuffle(c *gin.Context) {
    userID := c.GetUint("user_id")
    limit := h.limitFromQuery(c)

    recommendations, err := h.recommender.Shuffle(userID, limit)
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{
            "status":  "error",
            "message": "Failed to shuffle recommendations",
            "error":   err.Error(),
        })
        return
    }

    roundScores(recommendations)

    c.JSON(http.StatusOK, gin.H{
        "status": "success",
        "count":  len(recommendations),
        "data":   recommendations,
    })
}

func (h *RecommendationHandler) RateArtist(c *gin.Context) {
    userID := c.GetUint("user_id")
    artistID := c.Param("artist_id")

    if _, err := uuid.Parse(artistID); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{
            "status":  "error",
            "message": "Invalid artist ID",
        })
        return
    }

    var req models.RateRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{
            "status":  "error",
            "message": "Score must be an integer between 1 and 5",
        })
        return
    }

    if _, err := h.artistRepo.GetArtistByID(artistID); err != nil {
        if errors.Is(err, repository.ErrArtistNotFound) {
            c.JSON(http.StatusNotFound, gin.H{
                "status":  "error",
                "message": "Artist not found",
            })
            return
        }
        c.JSON(http.StatusInternalServerError, gin.H{
            "status":  "error",
            "message": "Database error",
        })
        return
    }

    replacement, err := h.recommender.RateArtist(userID, artistID, req.Score)
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{
            "status":  "error",
            "message": "Failed to save rating",
        })
        return
    }

    c.JSON(http.StatusOK, gin.H{
        "status":      "success",
        "message":     "Rating saved",
        "replacement": replacement,
    })
}

func (h *RecommendationHandler) DismissArtist(c *gin.Context) {
    userID := c.GetUint("user_id")
    artistID := c.Param("artist_id")

    if _, err := uuid.Parse(artistID); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{
            "status":  "error",
            "message": "Invalid artist ID",
        })
        return
    }

    replacement, err := h.recommender.DismissArtist(userID, artistID)
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{
            "status":  "error",
            "message": "Failed to dismiss recommendation",
        })
        return
    }

    c.JSON(http.StatusOK, gin.H{
        "status":      "success",
        "replacement": replacement,
    })
}

func (h *RecommendationHandler) SaveArtist(c *gin.Context) {
    userID := c.GetUint("user_id")
    artistID := c.Param("artist_id")

    if _, err := uuid.Parse(artistID); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{
            "status":  "error",
            "message": "Invalid artist ID",
        })
        return
    }

    replacement, err := h.recommender.SaveArtist(userID, artistID)
    if err != nil {
        if errors.Is(err, repository.ErrArtistNotFound) {
            c.JSON(http.StatusNotFound, gin.H{
                "status":  "error",
                "message": "Artist not found",
            })
            return
        }
        c.JSON(http.StatusInternalServerError, gin.H{
            "status":  "error",
            "message": "Failed to save artist",
        })
        return
    }

    c.JSON(http.StatusOK, gin.H{
        "status":      "success",
        "message":     "Artist saved for later",
        "replacement": replacement,
    })
}

func (h *RecommendationHandler) UnsaveArtist(c *gin.Context) {
    userID := c.GetUint("user_id")
    artistID := c.Param("artist_id")

    if _, err := uuid.Parse(artistID); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{
            "status":  "error",
            "message": "Invalid artist ID",
        })
        return
    }

    if err := h.recommender.UnsaveArtist(userID, artistID); err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{
            "status":  "error",
            "message": "Failed to remove saved artist",
        })
        return
    }

    c.JSON(http.StatusOK, gin.H{
        "status":  "success",
        "message": "Artist removed from saved list",
    })
}

func (h *RecommendationHandler) GetSaved(c *gin.Context) {
    userID := c.GetUint("user_id")

    saved, err := h.recommender.GetSaved(userID)
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{
            "status":  "error",
            "message": "Failed to fetch saved artists",
        })
        return
    }

    c.JSON(http.StatusOK, gin.H{
        "status": "success",
        "count":  len(saved),
        "data":   saved,
    })
}

func (h *RecommendationHandler) GetProfile(c *gin.Context) {
    userID := c.GetUint("user_id")

    profile, err := h.recommender.GetProfile(userID)
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{
            "status":  "error",
            "message": "Failed to build preference profile",
        })
        return
    }

    c.JSON(http.StatusOK, gin.H{
        "status": "success",
        "data":   profile,
    })
}
