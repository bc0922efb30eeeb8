package repository

import (
	"errors"

	"back_artists/internal/database"
	"back_artists/internal/models"
	"gorm.io/gorm"
)

type SavedArtistRepository interface {
    SaveArtist(userID uint, artist *models.Artist) (*models.SavedArtist, error)
    UnsaveArtist(userID uint, artistID string) error
    GetSavedByUser(userID uint) ([]models.SavedArtist, error)
}

type savedArtistRepo struct {
    db *gorm.DB
}

func NewSavedArtistRepository() SavedArtistRepository {
    return &savedArtistRepo{db: database.DB}
}

// SaveArtist stores a snapshot of the artist's name and tags. Saving an
// already-saved artist is a no-op and returns the existing row.
func (r *savedArtistRepo) SaveArtist(userID uint, artist *models.Artist) (*models.SavedArtist, error) {
    var existing models.SavedArtist
    err := r.db.Where("user_id = ? AND artist_id = ?", userID, artist.ID).First(&existing).Error
    if err == nil {
        return &existing, nil
    }
    if !errors.Is(err, gorm.ErrRecordNotFound) {
        return nil, err
    }

    saved := models.SavedArtist{
        UserID:   userID,
        ArtistID: artist.ID,
        Name:     artist.Name,
        Genres:   artist.Genres,
        Themes:   artist.Themes,
        Styles:   artist.Styles,
        Era:      artist.Era,
    }
    if err := r.db.Create(&saved).Error; err != nil {
        return nil, err
    }
    return &saved, nil
}

// UnsaveArtist removes the snapshot; removing a non-existent one is a no-op.
func (r *savedArtistRepo) UnsaveArtist(userID uint, artistID string) error {
    return r.db.Where("user_id = ? AND artist_id = ?", userID, artistID).
        Delete(&models.SavedArtist{}).Error
}

func (r *savedArtistRepo) GetSavedByUser(userID uint) ([]models.SavedArtist, error) {
    var saved []models.SavedArtist
    err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&saved).Error
    if err != nil {
        return nil, err
    }
    if saved == nil {
        saved = []models.SavedArtist{}
    }
    return saved, nil
}
