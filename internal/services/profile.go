package services

import (
	"back_artists/internal/models"
)

type ProfileService interface {
    BuildProfile(ratings map[string]models.Rating, catalog []models.Artist) *models.PreferenceProfile
}

type profileService struct{}

func NewProfileService() ProfileService {
    return &profileService{}
}

// BuildProfile folds the rating history into weighted tag counts. Every
// rated artist found in the catalog adds its rating value to each genre,
// theme and style tag it carries and to its era value. Ratings whose artist
// id is not in the catalog are skipped silently, but still count toward the
// mean denominator.
func (s *profileService) BuildProfile(ratings map[string]models.Rating, catalog []models.Artist) *models.PreferenceProfile {
    profile := models.NewPreferenceProfile()

    if len(ratings) == 0 {
        return profile
    }

    byID := make(map[string]*models.Artist, len(catalog))
    for i := range catalog {
        byID[catalog[i].ID] = &catalog[i]
    }

    var sum float64
    for artistID, rating := range ratings {
        sum += float64(rating.Score)

        artist, ok := byID[artistID]
        if !ok {
            continue
        }

        value := float64(rating.Score)
        for _, genre := range artist.Genres {
            profile.GenreWeights[genre] += value
        }
        for _, theme := range artist.Themes {
            profile.ThemeWeights[theme] += value
        }
        for _, style := range artist.Styles {
            profile.StyleWeights[style] += value
        }
        profile.EraWeights[artist.Era] += value
    }

    profile.MeanRating = sum / float64(len(ratings))

    return profile
}
