package services

import (
	"testing"

	"back_artists/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore_HydratesFromRepositories(t *testing.T) {
    ratingRepo := newFakeRatingRepo()
    savedRepo := newFakeSavedRepo()

    _, err := ratingRepo.UpsertRating(7, "artist-01", 4)
    require.NoError(t, err)
    _, err = savedRepo.SaveArtist(7, &models.Artist{ID: "artist-02", Name: "Artist 02"})
    require.NoError(t, err)

    store := NewSessionStore(ratingRepo, savedRepo, 24, 18)
    session := store.Get(7)

    assert.Equal(t, 4, session.Ratings["artist-01"].Score)
    assert.Equal(t, "Artist 02", session.Saved["artist-02"].Name)
}

func TestSessionStore_ReturnsSameSession(t *testing.T) {
    store := NewSessionStore(newFakeRatingRepo(), newFakeSavedRepo(), 24, 18)

    first := store.Get(1)
    first.Displayed = append(first.Displayed, "artist-01")

    second := store.Get(1)
    assert.True(t, second.IsDisplayed("artist-01"))
}

func TestSession_RemoveDisplayed(t *testing.T) {
    session := &Session{Displayed: []string{"a", "b", "c"}}

    assert.True(t, session.RemoveDisplayed("b"))
    assert.Equal(t, []string{"a", "c"}, session.Displayed)

    // Removing an id that is not displayed is a no-op.
    assert.False(t, session.RemoveDisplayed("b"))
    assert.Equal(t, []string{"a", "c"}, session.Displayed)
}
