package services

import (
	"math"
	"sort"

	"back_artists/internal/config"
	"back_artists/internal/models"
)

type SelectorService interface {
    SelectRecommendations(scored []models.RecommendationScore, n int, window *RecencyWindow) []models.RecommendationScore
    SelectStarter(pool []models.Artist, n int, excluded map[string]bool, window *RecencyWindow) []models.Artist
}

type selectorService struct {
    config *config.Config
    rng    RandomSource
}

func NewSelectorService(cfg *config.Config, rng RandomSource) SelectorService {
    return &selectorService{
        config: cfg,
        rng:    rng,
    }
}

// SelectRecommendations ranks scored candidates and returns up to n of
// them, updating the recency window as a side effect.
//
// The head of the list is filled with the ceil(TopPickRatio*n) best-scoring
// candidates; the remaining slots are drawn uniformly without replacement
// from the rest of the pool. Candidates absent from the recency window are
// preferred, but the full pool is used again once the non-recent pool is
// too small to fill n slots.
func (s *selectorService) SelectRecommendations(scored []models.RecommendationScore, n int, window *RecencyWindow) []models.RecommendationScore {
    if n <= 0 || len(scored) == 0 {
        return []models.RecommendationScore{}
    }

    ranked := make([]models.RecommendationScore, len(scored))
    copy(ranked, scored)

    sort.Slice(ranked, func(i, j int) bool {
        return ranked[i].Score > ranked[j].Score
    })

    pool := ranked
    if window != nil {
        nonRecent := make([]models.RecommendationScore, 0, len(ranked))
        for _, rec := range ranked {
            if !window.Contains(rec.Artist.ID) {
                nonRecent = append(nonRecent, rec)
            }
        }
        if len(nonRecent) >= n {
            pool = nonRecent
        }
    }

    topCount := int(math.Ceil(s.config.TopPickRatio * float64(n)))
    if topCount > n {
        topCount = n
    }
    if topCount > len(pool) {
        topCount = len(pool)
    }

    picked := make([]models.RecommendationScore, 0, n)
    picked = append(picked, pool[:topCount]...)

    rest := make([]models.RecommendationScore, len(pool)-topCount)
    copy(rest, pool[topCount:])

    for len(picked) < n && len(rest) > 0 {
        i := s.rng.Intn(len(rest))
        picked = append(picked, rest[i])
        rest = append(rest[:i], rest[i+1:]...)
    }

    for i := range picked {
        picked[i].Rank = i + 1
        if window != nil {
            window.Add(picked[i].Artist.ID)
        }
    }

    return picked
}

// SelectStarter handles the cold-start case: no ratings exist yet, so the
// curated pool is shuffled uniformly and the first n eligible artists are
// taken. When fewer than n eligible artists remain, the cold-start recency
// window is cleared and the draw retried; attempts are bounded at two since
// clearing restores full eligibility.
func (s *selectorService) SelectStarter(pool []models.Artist, n int, excluded map[string]bool, window *RecencyWindow) []models.Artist {
    if n <= 0 || len(pool) == 0 {
        return []models.Artist{}
    }

    for attempt := 0; attempt < 2; attempt++ {
        eligible := make([]models.Artist, 0, len(pool))
        for _, artist := range pool {
            if excluded[artist.ID] {
                continue
            }
            if window != nil && window.Contains(artist.ID) {
                continue
            }
            eligible = append(eligible, artist)
        }

        if len(eligible) < n && attempt == 0 && window != nil && window.Len() > 0 {
            window.Clear()
            continue
        }

        s.rng.Shuffle(len(eligible), func(i, j int) {
            eligible[i], eligible[j] = eligible[j], eligible[i]
        })

        if len(eligible) > n {
            eligible = eligible[:n]
        }
        if window != nil {
            for _, artist := range eligible {
                window.Add(artist.ID)
            }
        }
        return eligible
    }

    return []models.Artist{}
}
