package services

import (
	"errors"
	"fmt"
	"time"

	"back_artists/internal/config"
	"back_artists/internal/models"
)

func testConfig() *config.Config {
    return &config.Config{
        RecommendCount:      6,
        TopPickRatio:        0.7,
        GenreWeight:         3,
        ThemeWeight:         2,
        StyleWeight:         2,
        EraWeight:           1,
        DiversityJitter:     10,
        RecencyCap:          24,
        StarterRecencyCap:   18,
        ReplacementPoolSize: 10,
    }
}

// fixedRand replays configured sequences so selection and scoring become
// deterministic. Shuffle is the identity permutation.
type fixedRand struct {
    floats []float64
    fi     int
    ints   []int
    ii     int
}

func (r *fixedRand) Float64() float64 {
    if len(r.floats) == 0 {
        return 0
    }
    v := r.floats[r.fi%len(r.floats)]
    r.fi++
    return v
}

func (r *fixedRand) Intn(n int) int {
    if len(r.ints) == 0 {
        return 0
    }
    v := r.ints[r.ii%len(r.ints)] % n
    r.ii++
    return v
}

func (r *fixedRand) Shuffle(n int, swap func(i, j int)) {}

func makeArtist(id, name string, genres []string, era int) models.Artist {
    return models.Artist{
        ID:     id,
        Name:   name,
        Genres: genres,
        Era:    era,
    }
}

func makeCatalog(n int, curated bool) []models.Artist {
    catalog := make([]models.Artist, 0, n)
    for i := 0; i < n; i++ {
        catalog = append(catalog, models.Artist{
            ID:      fmt.Sprintf("artist-%02d", i),
            Name:    fmt.Sprintf("Artist %02d", i),
            Genres:  []string{"rock"},
            Era:     1990,
            Curated: curated,
        })
    }
    return catalog
}

// In-memory repository fakes.

type fakeArtistRepo struct {
    artists []models.Artist
    failErr error
}

func (f *fakeArtistRepo) CreateArtist(artist *models.Artist) error {
    f.artists = append(f.artists, *artist)
    return nil
}

func (f *fakeArtistRepo) CreateArtists(artists []models.Artist) error {
    f.artists = append(f.artists, artists...)
    return nil
}

func (f *fakeArtistRepo) GetArtistByID(id string) (*models.Artist, error) {
    for i := range f.artists {
        if f.artists[i].ID == id {
            artist := f.artists[i]
            return &artist, nil
        }
    }
    return nil, errors.New("artist not found")
}

func (f *fakeArtistRepo) GetAllArtists() ([]models.Artist, error) {
    if f.failErr != nil {
        return nil, f.failErr
    }
    out := make([]models.Artist, len(f.artists))
    copy(out, f.artists)
    return out, nil
}

func (f *fakeArtistRepo) GetArtistsByIDs(ids []string) ([]models.Artist, error) {
    var out []models.Artist
    for _, id := range ids {
        if artist, err := f.GetArtistByID(id); err == nil {
            out = append(out, *artist)
        }
    }
    return out, nil
}

func (f *fakeArtistRepo) GetCuratedArtists() ([]models.Artist, error) {
    var out []models.Artist
    for _, artist := range f.artists {
        if artist.Curated {
            out = append(out, artist)
        }
    }
    return out, nil
}

func (f *fakeArtistRepo) SearchArtists(query string, limit int) ([]models.Artist, error) {
    return nil, nil
}

func (f *fakeArtistRepo) CountArtists() (int64, error) {
    return int64(len(f.artists)), nil
}

type fakeRatingRepo struct {
    ratings map[uint]map[string]models.Rating
}

func newFakeRatingRepo() *fakeRatingRepo {
    return &fakeRatingRepo{ratings: make(map[uint]map[string]models.Rating)}
}

func (f *fakeRatingRepo) UpsertRating(userID uint, artistID string, score int) (*models.Rating, error) {
    if f.ratings[userID] == nil {
        f.ratings[userID] = make(map[string]models.Rating)
    }
    rating := models.Rating{
        UserID:    userID,
        ArtistID:  artistID,
        Score:     score,
        CreatedAt: time.Now(),
        UpdatedAt: time.Now(),
    }
    f.ratings[userID][artistID] = rating
    return &rating, nil
}

func (f *fakeRatingRepo) GetRatingsByUser(userID uint) (map[string]models.Rating, error) {
    out := make(map[string]models.Rating, len(f.ratings[userID]))
    for id, rating := range f.ratings[userID] {
        out[id] = rating
    }
    return out, nil
}

func (f *fakeRatingRepo) CountRatingsByUser(userID uint) (int64, error) {
    return int64(len(f.ratings[userID])), nil
}

type fakeSavedRepo struct {
    saved map[uint]map[string]models.SavedArtist
}

func newFakeSavedRepo() *fakeSavedRepo {
    return &fakeSavedRepo{saved: make(map[uint]map[string]models.SavedArtist)}
}

func (f *fakeSavedRepo) SaveArtist(userID uint, artist *models.Artist) (*models.SavedArtist, error) {
    if f.saved[userID] == nil {
        f.saved[userID] = make(map[string]models.SavedArtist)
    }
    if existing, ok := f.saved[userID][artist.ID]; ok {
        return &existing, nil
    }
    saved := models.SavedArtist{
        UserID:    userID,
        ArtistID:  artist.ID,
        Name:      artist.Name,
        Genres:    artist.Genres,
        Themes:    artist.Themes,
        Styles:    artist.Styles,
        Era:       artist.Era,
        CreatedAt: time.Now(),
    }
    f.saved[userID][artist.ID] = saved
    return &saved, nil
}

func (f *fakeSavedRepo) UnsaveArtist(userID uint, artistID string) error {
    delete(f.saved[userID], artistID)
    return nil
}

func (f *fakeSavedRepo) GetSavedByUser(userID uint) ([]models.SavedArtist, error) {
    out := make([]models.SavedArtist, 0, len(f.saved[userID]))
    for _, saved := range f.saved[userID] {
        out = append(out, saved)
    }
    return out, nil
}
