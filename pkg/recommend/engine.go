// Package recommend turns a user's viewing signals into a ranked, explained
// list of suggested titles. Four generation strategies run concurrently
// against the catalog service, their candidates are merged, deduplicated and
// filtered against the user's history, and a popularity-only fallback covers
// users with no usable signals. Every failure mode degrades to a smaller or
// generic result, never to an error surfaced to the caller.
package recommend

import (
	"context"
	"sort"
	"sync"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/reelscope/pkg/catalog"
	"github.com/umputun/reelscope/pkg/domain"
	"github.com/umputun/reelscope/pkg/profile"
)

//go:generate moq -out mocks/signal_store.go -pkg mocks -skip-ensure -fmt goimports . SignalStore
//go:generate moq -out mocks/catalog.go -pkg mocks -skip-ensure -fmt goimports . Catalog
//go:generate moq -out mocks/session_source.go -pkg mocks -skip-ensure -fmt goimports . SessionSource

// SignalStore provides read access to the user's viewing signals
type SignalStore interface {
	ListConsumption(ctx context.Context, userID string) ([]domain.ConsumptionRecord, error)
	ListSaved(ctx context.Context, userID string) ([]domain.SavedItem, error)
}

// Catalog provides read access to the external catalog service
type Catalog interface {
	SearchByGenre(ctx context.Context, contentType domain.ContentType, genreID int64, sortBy string, page int) ([]domain.CatalogItem, error)
	Similar(ctx context.Context, contentID int64, contentType domain.ContentType) ([]domain.CatalogItem, error)
	Trending(ctx context.Context, window string) ([]domain.CatalogItem, error)
	Popular(ctx context.Context, contentType domain.ContentType, page int) ([]domain.CatalogItem, error)
	AccountRecommendations(ctx context.Context, contentType domain.ContentType, session string) ([]domain.CatalogItem, error)
	GenreName(ctx context.Context, genreID int64) string
}

// SessionSource provides the user's catalog account-link token
type SessionSource interface {
	CatalogSession(ctx context.Context, userID string) (string, error)
}

// Config holds engine settings
type Config struct {
	DefaultLimit   int
	TrendingWindow string
}

// Engine aggregates candidates from all generation strategies
type Engine struct {
	signals  SignalStore
	catalog  Catalog
	sessions SessionSource

	defaultLimit   int
	trendingWindow string

	profileMu sync.Mutex
	profiles  map[string]*domain.TasteProfile // cached per user, nil value means "no history"
}

// NewEngine creates a recommendation engine
func NewEngine(signals SignalStore, cat Catalog, sessions SessionSource, cfg Config) *Engine {
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = 20
	}
	if cfg.TrendingWindow == "" {
		cfg.TrendingWindow = catalog.WindowDay
	}
	return &Engine{
		signals:        signals,
		catalog:        cat,
		sessions:       sessions,
		defaultLimit:   cfg.DefaultLimit,
		trendingWindow: cfg.TrendingWindow,
		profiles:       make(map[string]*domain.TasteProfile),
	}
}

// Recommend returns up to limit ranked candidates for the user. It never
// fails: unavailable signals or catalog sources shrink the result or push it
// onto the fallback path, an empty list is the worst case.
func (e *Engine) Recommend(ctx context.Context, userID string, limit int) []domain.Candidate {
	if limit <= 0 {
		limit = e.defaultLimit
	}

	records, err := e.signals.ListConsumption(ctx, userID)
	recordsOK := err == nil
	if err != nil {
		lgr.Printf("[WARN] consumption read failed for user %s, degrading to empty: %v", userID, err)
		records = nil
	}
	saved, err := e.signals.ListSaved(ctx, userID)
	if err != nil {
		lgr.Printf("[WARN] saved-items read failed for user %s, degrading to empty: %v", userID, err)
		saved = nil
	}
	excluded := exclusionSet(records, saved)

	prof := e.profileFor(userID, records, recordsOK)

	// no history at all, straight to the popularity-only path
	if prof == nil && len(records) == 0 {
		return rank(filter(dedupe(e.fallbackCandidates(ctx)), excluded), limit)
	}

	// fan out the four strategies, one failing or slow generator only loses
	// its own contribution. Fixed slot order makes dedupe deterministic.
	var slots [4][]domain.Candidate
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { slots[0] = e.genreCandidates(gctx, prof); return nil })
	g.Go(func() error { slots[1] = e.similarityCandidates(gctx, records); return nil })
	g.Go(func() error { slots[2] = e.trendingCandidates(gctx, prof); return nil })
	g.Go(func() error { slots[3] = e.accountCandidates(gctx, userID); return nil })
	_ = g.Wait() // generators isolate their own failures

	var all []domain.Candidate
	for _, slot := range slots {
		all = append(all, slot...)
	}

	result := filter(dedupe(all), excluded)
	if len(result) == 0 {
		result = filter(dedupe(e.fallbackCandidates(ctx)), excluded)
	}

	return rank(result, limit)
}

// InvalidateProfile drops the cached profile so the next request rebuilds it.
// Called on every write to the user's signal streams.
func (e *Engine) InvalidateProfile(userID string) {
	e.profileMu.Lock()
	delete(e.profiles, userID)
	e.profileMu.Unlock()
}

// profileFor returns the cached taste profile, building it on miss. A profile
// derived from a failed consumption read is served but never cached, otherwise
// a transient store outage would pin an empty profile until the next write.
func (e *Engine) profileFor(userID string, records []domain.ConsumptionRecord, recordsOK bool) *domain.TasteProfile {
	e.profileMu.Lock()
	defer e.profileMu.Unlock()

	if prof, ok := e.profiles[userID]; ok {
		return prof
	}
	prof := profile.Build(records)
	if recordsOK {
		e.profiles[userID] = prof
	}
	return prof
}

// dedupe keeps the first occurrence of each identity key in input order, so
// earlier generators win the candidate (and its reasons) on overlap
func dedupe(candidates []domain.Candidate) []domain.Candidate {
	seen := make(map[domain.ContentKey]struct{}, len(candidates))
	result := make([]domain.Candidate, 0, len(candidates))
	for _, cand := range candidates {
		key := cand.Content.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, cand)
	}
	return result
}

// filter drops candidates the user has already watched or saved
func filter(candidates []domain.Candidate, excluded map[domain.ContentKey]struct{}) []domain.Candidate {
	result := make([]domain.Candidate, 0, len(candidates))
	for _, cand := range candidates {
		if _, ok := excluded[cand.Content.Key()]; ok {
			continue
		}
		result = append(result, cand)
	}
	return result
}

// exclusionSet collects identity keys of everything already consumed or saved
func exclusionSet(records []domain.ConsumptionRecord, saved []domain.SavedItem) map[domain.ContentKey]struct{} {
	excluded := make(map[domain.ContentKey]struct{}, len(records)+len(saved))
	for _, rec := range records {
		excluded[rec.Key()] = struct{}{}
	}
	for _, item := range saved {
		excluded[item.Key()] = struct{}{}
	}
	return excluded
}

// rank orders candidates by score descending (stable on ties) and truncates
func rank(candidates []domain.Candidate, limit int) []domain.Candidate {
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].Score > candidates[j].Score })
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}
