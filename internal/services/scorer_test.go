package services

import (
	"testing"

	"back_artists/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestScoreArtist_GenreComponent(t *testing.T) {
    // With the random term pinned to zero, scoring an artist carrying one
    // genre weighted 5 yields exactly 5*3 = 15.
    scorer := NewScorerService(testConfig(), &fixedRand{})

    profile := models.NewPreferenceProfile()
    profile.GenreWeights["rock"] = 5

    candidate := makeArtist("c", "C", []string{"rock"}, 2001)

    assert.Equal(t, 15.0, scorer.ScoreArtist(&candidate, profile))
}

func TestScoreArtist_AllComponents(t *testing.T) {
    scorer := NewScorerService(testConfig(), &fixedRand{})

    profile := models.NewPreferenceProfile()
    profile.GenreWeights["rock"] = 5
    profile.GenreWeights["blues"] = 2
    profile.ThemeWeights["love"] = 4
    profile.StyleWeights["acoustic"] = 3
    profile.EraWeights[1975] = 6

    candidate := models.Artist{
        ID:     "c",
        Genres: []string{"rock", "blues"},
        Themes: []string{"love"},
        Styles: []string{"acoustic"},
        Era:    1975,
    }

    // 3*(5+2) + 2*4 + 2*3 + 1*6 = 41
    assert.Equal(t, 41.0, scorer.ScoreArtist(&candidate, profile))
}

func TestScoreArtist_MissingProfileEntriesContributeZero(t *testing.T) {
    scorer := NewScorerService(testConfig(), &fixedRand{})

    profile := models.NewPreferenceProfile()
    candidate := models.Artist{
        ID:     "c",
        Genres: []string{"jazz"},
        Themes: []string{"night"},
        Styles: []string{"modal"},
        Era:    1959,
    }

    assert.Equal(t, 0.0, scorer.ScoreArtist(&candidate, profile))
}

func TestScoreArtist_JitterAdded(t *testing.T) {
    rng := &fixedRand{floats: []float64{0.5}}
    scorer := NewScorerService(testConfig(), rng)

    profile := models.NewPreferenceProfile()
    profile.GenreWeights["rock"] = 5

    candidate := makeArtist("c", "C", []string{"rock"}, 2001)

    // 15 + 0.5*10
    assert.Equal(t, 20.0, scorer.ScoreArtist(&candidate, profile))
}

func TestScoreArtist_NonNegative(t *testing.T) {
    scorer := NewScorerService(testConfig(), NewRandomSource())

    profile := models.NewPreferenceProfile()
    candidate := makeArtist("c", "C", nil, 0)

    for i := 0; i < 50; i++ {
        score := scorer.ScoreArtist(&candidate, profile)
        assert.GreaterOrEqual(t, score, 0.0)
        assert.Less(t, score, 10.0)
    }
}

func TestScoreCandidates_OnePerArtist(t *testing.T) {
    scorer := NewScorerService(testConfig(), &fixedRand{})

    profile := models.NewPreferenceProfile()
    profile.GenreWeights["rock"] = 1

    candidates := makeCatalog(4, false)
    scored := scorer.ScoreCandidates(candidates, profile)

    assert.Len(t, scored, 4)
    for _, rec := range scored {
        assert.Equal(t, 3.0, rec.Score)
    }
}
