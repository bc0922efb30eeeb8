package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"back_artists/internal/models"
	"back_artists/internal/repository"
	"back_artists/internal/services"
)

type ArtistHandler struct {
    artistRepo  repository.ArtistRepository
    recommender services.RecommenderService
}

func NewArtistHandler(artistRepo repository.ArtistRepository, recommender services.RecommenderService) *ArtistHandler {
    return &ArtistHandler{
        artistRepo:  artistRepo,
        recommender: recommender,
    }
}

func (h *ArtistHandler) GetAllArtists(c *gin.Context) {
    artists, err := h.artistRepo.GetAllArtists()
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{
            "status":  "error",
            "message": "Failed to fetch artists",
        })
        return
    }

    c.JSON(http.StatusOK, gin.H{
        "status": "success",
        "count":  len(artists),
        "data":   artists,
    })
}

func (h *ArtistHandler) GetArtistByID(c *gin.Context) {
    artistID := c.Param("id")

    if _, err := uuid.Parse(artistID); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{
            "status":  "error",
            "message": "Invalid artist ID",
        })
        return
    }

    artist, err := h.artistRepo.GetArtistByID(artistID)
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
            "message": "Database error",
        })
        return
    }

    c.JSON(http.StatusOK, gin.H{
        "status": "success",
        "data":   artist,
    })
}

func (h *ArtistHandler) SearchArtists(c *gin.Context) {
    query := c.Query("q")
    if query == "" {
        c.JSON(http.StatusBadRequest, gin.H{
            "status":  "error",
            "message": "Query parameter 'q' is required",
        })
        return
    }

    limitStr := c.DefaultQuery("limit", "20")
    limit, err := strconv.Atoi(limitStr)
    if err != nil || limit <= 0 {
        limit = 20
    }

    artists, err := h.artistRepo.SearchArtists(query, limit)
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{
            "status":  "error",
            "message": "Search failed",
        })
        return
    }

    c.JSON(http.StatusOK, gin.H{
        "status": "success",
        "count":  len(artists),
        "data":   artists,
    })
}

// AddCustomArtist appends a user-created artist to the catalog and records
// its rating in one step. Validation (non-empty name, score 1-5) happens
// here at the boundary; the engine assumes validated input.
func (h *ArtistHandler) AddCustomArtist(c *gin.Context) {
    userID := c.GetUint("user_id")

    var req models.CustomArtistRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{
            "status":  "error",
            "message": "Name is required and score must be between 1 and 5",
        })
        return
    }

    artist, err := h.recommender.AddCustomArtist(userID, &req)
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{
            "status":  "error",
            "message": "Failed to create artist",
        })
        return
    }

    c.JSON(http.StatusCreated, gin.H{
        "status":  "success",
        "message": "Artist created and rated",
        "data":    artist,
    })
}

// SeedArtists bulk-loads a catalog snapshot. Admin only.
func (h *ArtistHandler) SeedArtists(c *gin.Context) {
    var req []models.Artist
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{
            "status":  "error",
            "message": "Invalid request body",
        })
        return
    }

    for i := range req {
        if req[i].ID == "" {
            req[i].ID = uuid.NewString()
        }
    }

    if err := h.artistRepo.CreateArtists(req); err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{
            "status":  "error",
            "message": "Failed to seed artists",
            "error":   err.Error(),
        })
        return
    }

    c.JSON(http.StatusCreated, gin.H{
        "status": "success",
        "count":  len(req),
    })
}
