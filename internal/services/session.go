package services

import (
	"log"
	"sync"

	"back_artists/internal/models"
	"back_artists/internal/repository"
)

// RecencyWindow is a bounded ordered list of recently surfaced artist ids.
// Oldest entries are evicted first once the cap is exceeded.
type RecencyWindow struct {
    cap int
    ids []string
}

func NewRecencyWindow(cap int) *RecencyWindow {
    return &RecencyWindow{cap: cap}
}

// Add appends the id, skipping duplicates, and truncates from the front
// past the cap.
func (w *RecencyWindow) Add(id string) {
    if w.Contains(id) {
        return
    }
    w.ids = append(w.ids, id)
    if w.cap > 0 && len(w.ids) > w.cap {
        w.ids = w.ids[len(w.ids)-w.cap:]
    }
}

func (w *RecencyWindow) Contains(id string) bool {
    for _, known := range w.ids {
        if known == id {
            return true
        }
    }
    return false
}

func (w *RecencyWindow) Clear() {
    w.ids = w.ids[:0]
}

func (w *RecencyWindow) Len() int {
    return len(w.ids)
}

// Session holds one user's rating history, exclusion sets and exposure
// state. All mutation goes through the recommender, which holds mu for the
// duration of each user action.
type Session struct {
    UserID    uint
    Ratings   map[string]models.Rating
    Saved     map[string]models.SavedArtist
    Displayed []string // artist ids currently surfaced, in order

    Recent        *RecencyWindow // general pool
    StarterRecent *RecencyWindow // cold-start pool

    mu sync.Mutex
}

func (s *Session) IsDisplayed(artistID string) bool {
    for _, id := range s.Displayed {
        if id == artistID {
            return true
        }
    }
    return false
}

// RemoveDisplayed drops the id from the displayed list. Returns false when
// the id was not displayed (a no-op, not an error).
func (s *Session) RemoveDisplayed(artistID string) bool {
    for i, id := range s.Displayed {
        if id == artistID {
            s.Displayed = append(s.Displayed[:i], s.Displayed[i+1:]...)
            return true
        }
    }
    return false
}

// SessionStore keeps per-user sessions in memory, hydrating rating and
// saved state from the repositories on first access.
type SessionStore struct {
    ratingRepo repository.RatingRepository
    savedRepo  repository.SavedArtistRepository

    recencyCap        int
    starterRecencyCap int

    mu       sync.Mutex
    sessions map[uint]*Session
}

func NewSessionStore(ratingRepo repository.RatingRepository, savedRepo repository.SavedArtistRepository, recencyCap, starterRecencyCap int) *SessionStore {
    return &SessionStore{
        ratingRepo:        ratingRepo,
        savedRepo:         savedRepo,
        recencyCap:        recencyCap,
        starterRecencyCap: starterRecencyCap,
        sessions:          make(map[uint]*Session),
    }
}

func (st *SessionStore) Get(userID uint) *Session {
    st.mu.Lock()
    defer st.mu.Unlock()

    if session, ok := st.sessions[userID]; ok {
        return session
    }

    session := &Session{
        UserID:        userID,
        Ratings:       make(map[string]models.Rating),
        Saved:         make(map[string]models.SavedArtist),
        Recent:        NewRecencyWindow(st.recencyCap),
        StarterRecent: NewRecencyWindow(st.starterRecencyCap),
    }

    if st.ratingRepo != nil {
        if ratings, err := st.ratingRepo.GetRatingsByUser(userID); err == nil {
            session.Ratings = ratings
        } else {
            log.Printf("[SessionStore] failed to load ratings for user %d: %v", userID, err)
        }
    }
    if st.savedRepo != nil {
        if saved, err := st.savedRepo.GetSavedByUser(userID); err == nil {
            for _, row := range saved {
                session.Saved[row.ArtistID] = row
            }
        } else {
            log.Printf("[SessionStore] failed to load saved artists for user %d: %v", userID, err)
        }
    }

    st.sessions[userID] = session
    return session
}
