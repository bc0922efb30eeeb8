package services

import (
	"testing"

	"back_artists/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ratingsFor(scores map[string]int) map[string]models.Rating {
    out := make(map[string]models.Rating, len(scores))
    for id, score := range scores {
        out[id] = models.Rating{ArtistID: id, Score: score}
    }
    return out
}

func TestBuildProfile_EmptyHistory(t *testing.T) {
    svc := NewProfileService()

    catalog := []models.Artist{
        makeArtist("a", "A", []string{"rock"}, 1990),
    }

    profile := svc.BuildProfile(map[string]models.Rating{}, catalog)

    require.NotNil(t, profile)
    assert.Empty(t, profile.GenreWeights)
    assert.Empty(t, profile.ThemeWeights)
    assert.Empty(t, profile.StyleWeights)
    assert.Empty(t, profile.EraWeights)
    assert.Zero(t, profile.MeanRating)
}

func TestBuildProfile_GenreWeights(t *testing.T) {
    svc := NewProfileService()

    catalog := []models.Artist{
        makeArtist("a", "A", []string{"rock"}, 1990),
        makeArtist("b", "B", []string{"pop"}, 1985),
        makeArtist("c", "C", []string{"rock"}, 1990),
    }
    ratings := ratingsFor(map[string]int{"a": 5, "b": 3})

    profile := svc.BuildProfile(ratings, catalog)

    assert.Equal(t, 5.0, profile.GenreWeights["rock"])
    assert.Equal(t, 3.0, profile.GenreWeights["pop"])
    assert.Equal(t, 4.0, profile.MeanRating)
}

func TestBuildProfile_AllTagDimensions(t *testing.T) {
    svc := NewProfileService()

    catalog := []models.Artist{
        {
            ID:     "a",
            Name:   "A",
            Genres: []string{"rock", "blues"},
            Themes: []string{"love"},
            Styles: []string{"acoustic"},
            Era:    1975,
        },
        {
            ID:     "b",
            Name:   "B",
            Genres: []string{"rock"},
            Themes: []string{"love", "loss"},
            Styles: []string{"electric"},
            Era:    1975,
        },
    }
    ratings := ratingsFor(map[string]int{"a": 4, "b": 2})

    profile := svc.BuildProfile(ratings, catalog)

    assert.Equal(t, 6.0, profile.GenreWeights["rock"])
    assert.Equal(t, 4.0, profile.GenreWeights["blues"])
    assert.Equal(t, 6.0, profile.ThemeWeights["love"])
    assert.Equal(t, 2.0, profile.ThemeWeights["loss"])
    assert.Equal(t, 4.0, profile.StyleWeights["acoustic"])
    assert.Equal(t, 2.0, profile.StyleWeights["electric"])
    assert.Equal(t, 6.0, profile.EraWeights[1975])
    assert.Equal(t, 3.0, profile.MeanRating)
}

func TestBuildProfile_UnknownArtistSkippedButCountedInMean(t *testing.T) {
    svc := NewProfileService()

    catalog := []models.Artist{
        makeArtist("a", "A", []string{"rock"}, 1990),
    }
    ratings := ratingsFor(map[string]int{"a": 5, "ghost": 3})

    profile := svc.BuildProfile(ratings, catalog)

    // Tag weights come only from catalog members.
    assert.Equal(t, 5.0, profile.GenreWeights["rock"])
    assert.Len(t, profile.GenreWeights, 1)

    // The mean runs over every rating entry regardless of catalog membership.
    assert.Equal(t, 4.0, profile.MeanRating)
}

func TestBuildProfile_EmptyCatalog(t *testing.T) {
    svc := NewProfileService()

    ratings := ratingsFor(map[string]int{"a": 5, "b": 1})

    profile := svc.BuildProfile(ratings, []models.Artist{})

    assert.Empty(t, profile.GenreWeights)
    assert.Equal(t, 3.0, profile.MeanRating)
}
