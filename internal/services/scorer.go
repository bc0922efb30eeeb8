package services

import (
	"back_artists/internal/config"
	"back_artists/internal/models"
)

type ScorerService interface {
    ScoreArtist(artist *models.Artist, profile *models.PreferenceProfile) float64
    ScoreCandidates(candidates []models.Artist, profile *models.PreferenceProfile) []models.RecommendationScore
}

type scorerService struct {
    config *config.Config
    rng    RandomSource
}

func NewScorerService(cfg *config.Config, rng RandomSource) ScorerService {
    return &scorerService{
        config: cfg,
        rng:    rng,
    }
}

// ScoreArtist combines four weighted similarity components with a fresh
// uniform random term. The random term is a deliberate tie-breaking and
// diversity mechanism; candidates with identical tag overlap still land in
// different orders across cycles. Missing profile entries contribute zero.
func (s *scorerService) ScoreArtist(artist *models.Artist, profile *models.PreferenceProfile) float64 {
    var genreScore, themeScore, styleScore float64

    for _, genre := range artist.Genres {
        genreScore += profile.GenreWeights[genre]
    }
    for _, theme := range artist.Themes {
        themeScore += profile.ThemeWeights[theme]
    }
    for _, style := range artist.Styles {
        styleScore += profile.StyleWeights[style]
    }
    eraScore := profile.EraWeights[artist.Era]

    score := genreScore*s.config.GenreWeight +
        themeScore*s.config.ThemeWeight +
        styleScore*s.config.StyleWeight +
        eraScore*s.config.EraWeight

    // Uniform jitter on [0, DiversityJitter)
    score += s.rng.Float64() * s.config.DiversityJitter

    return score
}

func (s *scorerService) ScoreCandidates(candidates []models.Artist, profile *models.PreferenceProfile) []models.RecommendationScore {
    scored := make([]models.RecommendationScore, 0, len(candidates))
    for _, artist := range candidates {
        scored = append(scored, models.RecommendationScore{
            Artist: artist,
            Score:  s.ScoreArtist(&artist, profile),
        })
    }
    return scored
}
