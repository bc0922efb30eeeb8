package models

import (
	"time"
)

// package models/artist.go
type Artist struct {
    ID        string    `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
    Name      string    `gorm:"type:varchar(255);not null" json:"name"`
    Genres    []string  `gorm:"serializer:json" json:"genres"`
    Themes    []string  `gorm:"serializer:json" json:"themes"`
    Styles    []string  `gorm:"serializer:json" json:"styles"`
    Era       int       `gorm:"default:0" json:"era"`
    Curated   bool      `gorm:"default:false" json:"curated"` // member of the cold-start starter pool
    Custom    bool      `gorm:"default:false" json:"custom"`  // user-created, appended to the catalog
    ImageURL  string    `json:"image_url"`
    CreatedAt time.Time `json:"created_at"`
}

// PreferenceProfile is the aggregated taste summary derived from a user's
// rating history. It is rebuilt from scratch on every recommendation cycle
// and never persisted.
type PreferenceProfile struct {
    GenreWeights map[string]float64 `json:"genre_weights"`
    ThemeWeights map[string]float64 `json:"theme_weights"`
    StyleWeights map[string]float64 `json:"style_weights"`
    EraWeights   map[int]float64    `json:"era_weights"`
    MeanRating   float64            `json:"mean_rating"`
}

func NewPreferenceProfile() *PreferenceProfile {
    return &PreferenceProfile{
        GenreWeights: make(map[string]float64),
        ThemeWeights: make(map[string]float64),
        StyleWeights: make(map[string]float64),
        EraWeights:   make(map[int]float64),
    }
}

type RecommendationScore struct {
    Artist Artist  `json:"artist"`
    Score  float64 `json:"score"`
    Rank   int     `json:"rank,omitempty"`
}
