package recommend

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/reelscope/pkg/catalog"
	"github.com/umputun/reelscope/pkg/domain"
)

// scoring weights, kept in one place so ranking changes stay reviewable
const (
	affinityWeight    = 10  // genre generator: affinity score multiplier
	userRatingWeight  = 10  // similarity generator: user rating multiplier
	trendingGenreBump = 2   // trending generator: per affinity point of matched genres
	trendingRangeBump = 5   // trending generator: flat bonus for in-range rating
	accountBaseScore  = 50  // catalog-native signals are trusted more than derived ones
	popularityDivisor = 100 // fallback: popularity contribution scale
)

// maxAffinityGenres limits how many top genres the genre generator queries
const maxAffinityGenres = 3

// maxSimilaritySeeds limits how many loved titles seed similarity lookups
const maxSimilaritySeeds = 3

// lovedRatingMin is the user rating from which a title counts as loved
const lovedRatingMin = 4.0

// genreCandidates proposes top-rated titles from the user's strongest genres.
// Without a profile there are no genres to query, so it yields nothing and
// leaves popularity-driven generators to carry the degraded mode.
func (e *Engine) genreCandidates(ctx context.Context, prof *domain.TasteProfile) []domain.Candidate {
	if prof == nil || len(prof.GenreAffinity) == 0 {
		return nil
	}

	type genreScore struct {
		id    int64
		score float64
	}
	genres := make([]genreScore, 0, len(prof.GenreAffinity))
	for id, score := range prof.GenreAffinity {
		genres = append(genres, genreScore{id: id, score: score})
	}
	sort.Slice(genres, func(i, j int) bool {
		if genres[i].score != genres[j].score {
			return genres[i].score > genres[j].score
		}
		return genres[i].id < genres[j].id // deterministic order for equal affinities
	})
	if len(genres) > maxAffinityGenres {
		genres = genres[:maxAffinityGenres]
	}

	var candidates []domain.Candidate
	for _, g := range genres {
		for _, contentType := range []domain.ContentType{domain.ContentMovie, domain.ContentSeries} {
			items, err := e.catalog.SearchByGenre(ctx, contentType, g.id, catalog.SortTopRated, 1)
			if err != nil {
				lgr.Printf("[WARN] genre lookup failed for genre %d (%s): %v", g.id, contentType, err)
				continue
			}
			genreName := e.catalog.GenreName(ctx, g.id)
			for _, item := range items {
				candidates = append(candidates, domain.Candidate{
					Content: item,
					Score:   g.score*affinityWeight + item.Rating,
					Reasons: []string{
						fmt.Sprintf("You like %s", genreName),
						fmt.Sprintf("Rated %.1f by the catalog", item.Rating),
					},
				})
			}
		}
	}
	return candidates
}

// similarityCandidates proposes titles similar to the user's highest-rated watches
func (e *Engine) similarityCandidates(ctx context.Context, records []domain.ConsumptionRecord) []domain.Candidate {
	loved := make([]domain.ConsumptionRecord, 0, len(records))
	for _, rec := range records {
		if rec.UserRating != nil && *rec.UserRating >= lovedRatingMin {
			loved = append(loved, rec)
		}
	}
	sort.SliceStable(loved, func(i, j int) bool { return *loved[i].UserRating > *loved[j].UserRating })
	if len(loved) > maxSimilaritySeeds {
		loved = loved[:maxSimilaritySeeds]
	}

	var candidates []domain.Candidate
	for _, seed := range loved {
		items, err := e.catalog.Similar(ctx, seed.ContentID, seed.ContentType)
		if err != nil {
			lgr.Printf("[WARN] similar lookup failed for %s %d: %v", seed.ContentType, seed.ContentID, err)
			continue
		}
		for _, item := range items {
			candidates = append(candidates, domain.Candidate{
				Content: item,
				Score:   *seed.UserRating*userRatingWeight + item.Rating,
				Reasons: []string{
					fmt.Sprintf("Similar to %s", seed.Title),
					fmt.Sprintf("You rated it %s/5", strconv.FormatFloat(*seed.UserRating, 'f', -1, 64)),
				},
			})
		}
	}
	return candidates
}

// trendingCandidates proposes the catalog's trending titles, boosted by taste
// when a profile is available and plain popularity-ranked when it isn't
func (e *Engine) trendingCandidates(ctx context.Context, prof *domain.TasteProfile) []domain.Candidate {
	items, err := e.catalog.Trending(ctx, e.trendingWindow)
	if err != nil {
		lgr.Printf("[WARN] trending lookup failed: %v", err)
		return nil
	}

	trendReason := "Trending today"
	if e.trendingWindow == catalog.WindowWeek {
		trendReason = "Trending this week"
	}

	candidates := make([]domain.Candidate, 0, len(items))
	for _, item := range items {
		cand := domain.Candidate{
			Content: item,
			Score:   item.Popularity,
			Reasons: []string{trendReason},
		}

		if prof != nil {
			affinitySum := 0.0
			for _, genreID := range item.GenreIDs {
				affinitySum += prof.GenreAffinity[genreID]
			}
			if affinitySum > 0 {
				cand.Score += affinitySum * trendingGenreBump
				cand.Reasons = append(cand.Reasons, "In your favorite genres")
			}
			if prof.RatingRange.Contains(item.Rating) {
				cand.Score += trendingRangeBump
				cand.Reasons = append(cand.Reasons, "In your preferred rating range")
			}
		}

		candidates = append(candidates, cand)
	}
	return candidates
}

// accountCandidates proposes the catalog's own account-linked recommendations.
// A user without a linked catalog account simply contributes nothing.
func (e *Engine) accountCandidates(ctx context.Context, userID string) []domain.Candidate {
	session, err := e.sessions.CatalogSession(ctx, userID)
	if err != nil {
		lgr.Printf("[WARN] catalog session lookup failed for user %s: %v", userID, err)
		return nil
	}
	if session == "" {
		return nil
	}

	var candidates []domain.Candidate
	for _, contentType := range []domain.ContentType{domain.ContentMovie, domain.ContentSeries} {
		items, err := e.catalog.AccountRecommendations(ctx, contentType, session)
		if err != nil {
			lgr.Printf("[WARN] account recommendations failed for %s: %v", contentType, err)
			continue
		}
		for _, item := range items {
			candidates = append(candidates, domain.Candidate{
				Content: item,
				Score:   accountBaseScore + item.Rating,
				Reasons: []string{
					"Picked for your linked catalog account",
					fmt.Sprintf("Rated %.1f by the catalog", item.Rating),
				},
			})
		}
	}
	return candidates
}

// fallbackCandidates builds the popularity-only ranking used when no profile
// or no personalized candidates exist
func (e *Engine) fallbackCandidates(ctx context.Context) []domain.Candidate {
	var items []domain.CatalogItem

	popularMovies, err := e.catalog.Popular(ctx, domain.ContentMovie, 1)
	if err != nil {
		lgr.Printf("[WARN] popular movies lookup failed: %v", err)
	}
	items = append(items, popularMovies...)

	popularSeries, err := e.catalog.Popular(ctx, domain.ContentSeries, 1)
	if err != nil {
		lgr.Printf("[WARN] popular series lookup failed: %v", err)
	}
	items = append(items, popularSeries...)

	trending, err := e.catalog.Trending(ctx, e.trendingWindow)
	if err != nil {
		lgr.Printf("[WARN] trending lookup failed: %v", err)
	}
	items = append(items, trending...)

	candidates := make([]domain.Candidate, 0, len(items))
	for _, item := range items {
		candidates = append(candidates, domain.Candidate{
			Content: item,
			Score:   item.Rating + item.Popularity/popularityDivisor,
			Reasons: []string{"Currently popular", "Well rated by the community"},
		})
	}
	return candidates
}
