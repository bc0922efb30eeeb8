package services

import (
	"log"
	"sort"

	"back_artists/internal/config"
	"back_artists/internal/models"
	"back_artists/internal/repository"

	"github.com/google/uuid"
)

type RecommenderService interface {
    GetRecommendations(userID uint, limit int) ([]models.RecommendationScore, error)
    Shuffle(userID uint, limit int) ([]models.RecommendationScore, error)
    RateArtist(userID uint, artistID string, score int) (*models.RecommendationScore, error)
    DismissArtist(userID uint, artistID string) (*models.RecommendationScore, error)
    SaveArtist(userID uint, artistID string) (*models.RecommendationScore, error)
    UnsaveArtist(userID uint, artistID string) error
    AddCustomArtist(userID uint, req *models.CustomArtistRequest) (*models.Artist, error)
    GetProfile(userID uint) (*models.PreferenceProfile, error)
    GetSaved(userID uint) ([]models.SavedArtist, error)
}

type recommenderService struct {
    artistRepo repository.ArtistRepository
    ratingRepo repository.RatingRepository
    savedRepo  repository.SavedArtistRepository
    profiles   ProfileService
    scorer     ScorerService
    selector   SelectorService
    sessions   *SessionStore
    config     *config.Config
    rng        RandomSource
}

func NewRecommenderService(
    artistRepo repository.ArtistRepository,
    ratingRepo repository.RatingRepository,
    savedRepo repository.SavedArtistRepository,
    sessions *SessionStore,
    cfg *config.Config,
    rng RandomSource,
) RecommenderService {
    return &recommenderService{
        artistRepo: artistRepo,
        ratingRepo: ratingRepo,
        savedRepo:  savedRepo,
        profiles:   NewProfileService(),
        scorer:     NewScorerService(cfg, rng),
        selector:   NewSelectorService(cfg, rng),
        sessions:   sessions,
        config:     cfg,
        rng:        rng,
    }
}

// GetRecommendations runs one full recommendation cycle: aggregate the
// rating history into a profile, score every eligible artist, rank and
// diversify. A user with no ratings gets the cold-start draw over the
// curated pool instead. An unavailable or empty catalog degrades to an
// empty list; no error escapes the cycle.
func (s *recommenderService) GetRecommendations(userID uint, limit int) ([]models.RecommendationScore, error) {
    if limit <= 0 {
        return []models.RecommendationScore{}, nil
    }

    session := s.sessions.Get(userID)
    session.mu.Lock()
    defer session.mu.Unlock()

    catalog, err := s.artistRepo.GetAllArtists()
    if err != nil {
        log.Printf("[Recommender] catalog unavailable: %v", err)
        return []models.RecommendationScore{}, nil
    }

    var recs []models.RecommendationScore
    if len(session.Ratings) == 0 {
        recs = s.starterCycle(session, catalog, limit)
    } else {
        recs = s.scoredCycle(session, catalog, limit)
    }

    session.Displayed = session.Displayed[:0]
    for _, rec := range recs {
        session.Displayed = append(session.Displayed, rec.Artist.ID)
    }

    return recs, nil
}

// Shuffle is a full fresh cycle; the recency windows carried in the session
// keep the new draw from repeating what was just on screen.
func (s *recommenderService) Shuffle(userID uint, limit int) ([]models.RecommendationScore, error) {
    return s.GetRecommendations(userID, limit)
}

func (s *recommenderService) scoredCycle(session *Session, catalog []models.Artist, limit int) []models.RecommendationScore {
    profile := s.profiles.BuildProfile(session.Ratings, catalog)
    candidates := eligibleArtists(catalog, session.Ratings, session.Saved, nil)
    scored := s.scorer.ScoreCandidates(candidates, profile)
    return s.selector.SelectRecommendations(scored, limit, session.Recent)
}

func (s *recommenderService) starterCycle(session *Session, catalog []models.Artist, limit int) []models.RecommendationScore {
    pool := make([]models.Artist, 0, len(catalog))
    for _, artist := range catalog {
        if artist.Curated {
            pool = append(pool, artist)
        }
    }
    // A catalog without curated entries still gets a starter draw.
    if len(pool) == 0 {
        pool = catalog
    }

    excluded := make(map[string]bool, len(session.Ratings)+len(session.Saved))
    for id := range session.Ratings {
        excluded[id] = true
    }
    for id := range session.Saved {
        excluded[id] = true
    }

    artists := s.selector.SelectStarter(pool, limit, excluded, session.StarterRecent)

    recs := make([]models.RecommendationScore, 0, len(artists))
    for i, artist := range artists {
        recs = append(recs, models.RecommendationScore{
            Artist: artist,
            Rank:   i + 1,
        })
    }
    return recs
}

// RateArtist records or overwrites the rating. When the rated artist is
// currently displayed it is removed and a single replacement drawn; the
// replacement is nil when the eligible pool is empty.
func (s *recommenderService) RateArtist(userID uint, artistID string, score int) (*models.RecommendationScore, error) {
    session := s.sessions.Get(userID)
    session.mu.Lock()
    defer session.mu.Unlock()

    rating, err := s.ratingRepo.UpsertRating(userID, artistID, score)
    if err != nil {
        return nil, err
    }
    session.Ratings[artistID] = *rating

    if !session.RemoveDisplayed(artistID) {
        return nil, nil
    }
    return s.drawReplacement(session, artistID), nil
}

// DismissArtist drops a displayed recommendation and draws its replacement.
// Dismissing an id that is not displayed is a no-op.
func (s *recommenderService) DismissArtist(userID uint, artistID string) (*models.RecommendationScore, error) {
    session := s.sessions.Get(userID)
    session.mu.Lock()
    defer session.mu.Unlock()

    if !session.RemoveDisplayed(artistID) {
        return nil, nil
    }
    return s.drawReplacement(session, artistID), nil
}

// SaveArtist snapshots the artist into the saved-for-later set. Saving an
// already-saved artist is a no-op.
func (s *recommenderService) SaveArtist(userID uint, artistID string) (*models.RecommendationScore, error) {
    session := s.sessions.Get(userID)
    session.mu.Lock()
    defer session.mu.Unlock()

    if _, ok := session.Saved[artistID]; ok {
        return nil, nil
    }

    artist, err := s.artistRepo.GetArtistByID(artistID)
    if err != nil {
        return nil, err
    }

    saved, err := s.savedRepo.SaveArtist(userID, artist)
    if err != nil {
        return nil, err
    }
    session.Saved[artistID] = *saved

    if !session.RemoveDisplayed(artistID) {
        return nil, nil
    }
    return s.drawReplacement(session, artistID), nil
}

// UnsaveArtist removes the snapshot; unknown ids are a no-op.
func (s *recommenderService) UnsaveArtist(userID uint, artistID string) error {
    session := s.sessions.Get(userID)
    session.mu.Lock()
    defer session.mu.Unlock()

    if _, ok := session.Saved[artistID]; !ok {
        return nil
    }
    if err := s.savedRepo.UnsaveArtist(userID, artistID); err != nil {
        return err
    }
    delete(session.Saved, artistID)
    return nil
}

// AddCustomArtist appends a user-created artist to the catalog and rates it
// in one step. Name and score are validated at the HTTP boundary.
func (s *recommenderService) AddCustomArtist(userID uint, req *models.CustomArtistRequest) (*models.Artist, error) {
    artist := &models.Artist{
        ID:     uuid.NewString(),
        Name:   req.Name,
        Genres: req.Genres,
        Themes: req.Themes,
        Styles: req.Styles,
        Era:    req.Era,
        Custom: true,
    }
    if err := s.artistRepo.CreateArtist(artist); err != nil {
        return nil, err
    }

    session := s.sessions.Get(userID)
    session.mu.Lock()
    defer session.mu.Unlock()

    rating, err := s.ratingRepo.UpsertRating(userID, artist.ID, req.Score)
    if err != nil {
        return nil, err
    }
    session.Ratings[artist.ID] = *rating

    return artist, nil
}

func (s *recommenderService) GetProfile(userID uint) (*models.PreferenceProfile, error) {
    session := s.sessions.Get(userID)
    session.mu.Lock()
    defer session.mu.Unlock()

    catalog, err := s.artistRepo.GetAllArtists()
    if err != nil {
        log.Printf("[Recommender] catalog unavailable: %v", err)
        catalog = []models.Artist{}
    }
    return s.profiles.BuildProfile(session.Ratings, catalog), nil
}

func (s *recommenderService) GetSaved(userID uint) ([]models.SavedArtist, error) {
    return s.savedRepo.GetSavedByUser(userID)
}

// drawReplacement scores the pool left after excluding rated, saved,
// currently displayed artists and the one just removed, and picks uniformly
// among the top scored slice of it. Returns nil when nothing is eligible.
func (s *recommenderService) drawReplacement(session *Session, removedID string) *models.RecommendationScore {
    catalog, err := s.artistRepo.GetAllArtists()
    if err != nil {
        log.Printf("[Recommender] catalog unavailable: %v", err)
        return nil
    }

    displayed := make(map[string]bool, len(session.Displayed)+1)
    for _, id := range session.Displayed {
        displayed[id] = true
    }
    displayed[removedID] = true

    candidates := eligibleArtists(catalog, session.Ratings, session.Saved, displayed)
    if len(candidates) == 0 {
        return nil
    }

    profile := s.profiles.BuildProfile(session.Ratings, catalog)
    scored := s.scorer.ScoreCandidates(candidates, profile)

    sort.Slice(scored, func(i, j int) bool {
        return scored[i].Score > scored[j].Score
    })

    poolSize := s.config.ReplacementPoolSize
    if poolSize <= 0 || poolSize > len(scored) {
        poolSize = len(scored)
    }

    pick := scored[s.rng.Intn(poolSize)]
    session.Displayed = append(session.Displayed, pick.Artist.ID)
    return &pick
}

// eligibleArtists filters the catalog down to artists that are neither
// rated nor saved, and not in the extra exclusion set.
func eligibleArtists(catalog []models.Artist, ratings map[string]models.Rating, saved map[string]models.SavedArtist, extra map[string]bool) []models.Artist {
    eligible := make([]models.Artist, 0, len(catalog))
    for _, artist := range catalog {
        if _, ok := ratings[artist.ID]; ok {
            continue
        }
        if _, ok := saved[artist.ID]; ok {
            continue
        }
        if extra[artist.ID] {
            continue
        }
        eligible = append(eligible, artist)
    }
    return eligible
}
