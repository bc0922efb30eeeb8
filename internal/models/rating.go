package models

import (
	"time"
)

// One rating per (user, artist); re-rating overwrites the row in place and
// UpdatedAt moves with it.
type Rating struct {
    ID        uint      `gorm:"primaryKey" json:"id"`
    UserID    uint      `gorm:"not null;index;uniqueIndex:idx_user_artist_rating" json:"user_id"`
    ArtistID  string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_user_artist_rating" json:"artist_id"`
    Score     int       `gorm:"not null" json:"score"` // 1-5
    CreatedAt time.Time `json:"created_at"`
    UpdatedAt time.Time `json:"updated_at"`

    // Relationships
    User   User   `gorm:"foreignKey:UserID" json:"-"`
    Artist Artist `gorm:"foreignKey:ArtistID" json:"artist"`
}

// SavedArtist carries a snapshot of the artist's name and tags taken at save
// time, so the saved list survives later catalog mutation.
type SavedArtist struct {
    ID        uint      `gorm:"primaryKey" json:"id"`
    UserID    uint      `gorm:"not null;index;uniqueIndex:idx_user_artist_saved" json:"user_id"`
    ArtistID  string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_user_artist_saved" json:"artist_id"`
    Name      string    `gorm:"type:varchar(255);not null" json:"name"`
    Genres    []string  `gorm:"serializer:json" json:"genres"`
    Themes    []string  `gorm:"serializer:json" json:"themes"`
    Styles    []string  `gorm:"serializer:json" json:"styles"`
    Era       int       `gorm:"default:0" json:"era"`
    CreatedAt time.Time `json:"created_at"`

    // Relationships
    User User `gorm:"foreignKey:UserID" json:"-"`
}

type RateRequest struct {
    Score int `json:"score" binding:"required,min=1,max=5"`
}

type CustomArtistRequest struct {
    Name   string   `json:"name" binding:"required,min=1"`
    Score  int      `json:"score" binding:"required,min=1,max=5"`
    Genres []string `json:"genres"`
    Themes []string `json:"themes"`
    Styles []string `json:"styles"`
    Era    int      `json:"era"`
}
