package repository

import (
	"errors"
	"time"

	"back_artists/internal/database"
	"back_artists/internal/models"
	"gorm.io/gorm"
)

type RatingRepository interface {
    UpsertRating(userID uint, artistID string, score int) (*models.Rating, error)
    GetRatingsByUser(userID uint) (map[string]models.Rating, error)
    CountRatingsByUser(userID uint) (int64, error)
}

type ratingRepo struct {
    db *gorm.DB
}

func NewRatingRepository() RatingRepository {
    return &ratingRepo{db: database.DB}
}

// UpsertRating overwrites an existing rating in place; the timestamp moves
// with the overwrite.
func (r *ratingRepo) UpsertRating(userID uint, artistID string, score int) (*models.Rating, error) {
    var rating models.Rating
    err := r.db.Where("user_id = ? AND artist_id = ?", userID, artistID).First(&rating).Error

    if err != nil {
        if !errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, err
        }
        rating = models.Rating{
            UserID:   userID,
            ArtistID: artistID,
            Score:    score,
        }
        if err := r.db.Create(&rating).Error; err != nil {
            return nil, err
        }
        return &rating, nil
    }

    rating.Score = score
    rating.CreatedAt = time.Now()
    if err := r.db.Save(&rating).Error; err != nil {
        return nil, err
    }
    return &rating, nil
}

func (r *ratingRepo) GetRatingsByUser(userID uint) (map[string]models.Rating, error) {
    var ratings []models.Rating
    err := r.db.Where("user_id = ?", userID).Find(&ratings).Error
    if err != nil {
        return nil, err
    }

    byArtist := make(map[string]models.Rating, len(ratings))
    for _, rating := range ratings {
        byArtist[rating.ArtistID] = rating
    }
    return byArtist, nil
}

func (r *ratingRepo) CountRatingsByUser(userID uint) (int64, error) {
    var count int64
    err := r.db.Model(&models.Rating{}).Where("user_id = ?", userID).Count(&count).Error
    return count, err
}
