package repository

import (
	"errors"
	"log"

	"back_artists/internal/database"
	"back_artists/internal/models"
	"gorm.io/gorm"
)

var ErrArtistNotFound = errors.New("artist not found")

type ArtistRepository interface {
    CreateArtist(artist *models.Artist) error
    CreateArtists(artists []models.Artist) error
    GetArtistByID(id string) (*models.Artist, error)
    GetAllArtists() ([]models.Artist, error)
    GetArtistsByIDs(ids []string) ([]models.Artist, error)
    GetCuratedArtists() ([]models.Artist, error)
    SearchArtists(query string, limit int) ([]models.Artist, error)
    CountArtists() (int64, error)
}

type artistRepo struct {
    db *gorm.DB
}

func NewArtistRepository() ArtistRepository {
    return &artistRepo{db: database.DB}
}

func (r *artistRepo) GetAllArtists() ([]models.Artist, error) {
    var artists []models.Artist
    err := r.db.Order("created_at ASC").Find(&artists).Error
    if err != nil {
        return nil, err
    }
    if artists == nil {
        artists = []models.Artist{}
    }
    return artists, nil
}

func (r *artistRepo) CreateArtist(artist *models.Artist) error {
    return r.db.Create(artist).Error
}

func (r *artistRepo) CreateArtists(artists []models.Artist) error {
    if len(artists) == 0 {
        return nil
    }
    return r.db.Create(&artists).Error
}

func (r *artistRepo) GetArtistByID(id string) (*models.Artist, error) {
    var artist models.Artist
    err := r.db.First(&artist, "id = ?", id).Error
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, ErrArtistNotFound
        }
        return nil, err
    }
    return &artist, nil
}

func (r *artistRepo) GetArtistsByIDs(ids []string) ([]models.Artist, error) {
    var artists []models.Artist
    err := r.db.Where("id IN ?", ids).Find(&artists).Error
    return artists, err
}

// GetCuratedArtists returns the starter pool shown before the user has
// rated anything.
func (r *artistRepo) GetCuratedArtists() ([]models.Artist, error) {
    var artists []models.Artist
    err := r.db.Where("curated = ?", true).Find(&artists).Error
    if err != nil {
        return nil, err
    }
    if artists == nil {
        artists = []models.Artist{}
    }
    return artists, nil
}

func (r *artistRepo) SearchArtists(query string, limit int) ([]models.Artist, error) {
    var artists []models.Artist
    err := r.db.Where("name ILIKE ?", "%"+query+"%").
        Limit(limit).
        Find(&artists).Error
    return artists, err
}

func (r *artistRepo) CountArtists() (int64, error) {
    var count int64
    err := r.db.Model(&models.Artist{}).Count(&count).Error
    if err != nil {
        log.Printf("[CountArtists] error: %v", err)
    }
    return count, err
}
