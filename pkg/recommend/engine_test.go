package recommend

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/reelscope/pkg/catalog"
	"github.com/umputun/reelscope/pkg/domain"
	"github.com/umputun/reelscope/pkg/recommend/mocks"
)

func floatPtr(v float64) *float64 { return &v }

// emptyCatalog returns a catalog mock where every lookup succeeds with nothing
func emptyCatalog() *mocks.CatalogMock {
	return &mocks.CatalogMock{
		SearchByGenreFunc: func(ctx context.Context, contentType domain.ContentType, genreID int64, sortBy string, page int) ([]domain.CatalogItem, error) {
			return nil, nil
		},
		SimilarFunc: func(ctx context.Context, contentID int64, contentType domain.ContentType) ([]domain.CatalogItem, error) {
			return nil, nil
		},
		TrendingFunc: func(ctx context.Context, window string) ([]domain.CatalogItem, error) {
			return nil, nil
		},
		PopularFunc: func(ctx context.Context, contentType domain.ContentType, page int) ([]domain.CatalogItem, error) {
			return nil, nil
		},
		AccountRecommendationsFunc: func(ctx context.Context, contentType domain.ContentType, session string) ([]domain.CatalogItem, error) {
			return nil, nil
		},
		GenreNameFunc: func(ctx context.Context, genreID int64) string { return "Action" },
	}
}

// signalsWith returns a signal store mock serving fixed lists
func signalsWith(records []domain.ConsumptionRecord, saved []domain.SavedItem) *mocks.SignalStoreMock {
	return &mocks.SignalStoreMock{
		ListConsumptionFunc: func(ctx context.Context, userID string) ([]domain.ConsumptionRecord, error) {
			return records, nil
		},
		ListSavedFunc: func(ctx context.Context, userID string) ([]domain.SavedItem, error) {
			return saved, nil
		},
	}
}

func noSession() *mocks.SessionSourceMock {
	return &mocks.SessionSourceMock{
		CatalogSessionFunc: func(ctx context.Context, userID string) (string, error) { return "", nil },
	}
}

func TestEngine_Recommend_FallbackOnEmptyHistory(t *testing.T) {
	cat := emptyCatalog()
	cat.PopularFunc = func(ctx context.Context, contentType domain.ContentType, page int) ([]domain.CatalogItem, error) {
		if contentType == domain.ContentMovie {
			return []domain.CatalogItem{
				{ID: 1, Type: domain.ContentMovie, Title: "Popular Movie", Rating: 7.0, Popularity: 200},
			}, nil
		}
		return []domain.CatalogItem{
			{ID: 2, Type: domain.ContentSeries, Title: "Popular Series", Rating: 8.0, Popularity: 100},
		}, nil
	}
	cat.TrendingFunc = func(ctx context.Context, window string) ([]domain.CatalogItem, error) {
		return []domain.CatalogItem{
			{ID: 3, Type: domain.ContentMovie, Title: "Trending Movie", Rating: 6.0, Popularity: 900},
		}, nil
	}

	e := NewEngine(signalsWith(nil, nil), cat, noSession(), Config{})
	result := e.Recommend(context.Background(), "alice", 10)

	require.Len(t, result, 3)

	// ranked by rating + popularity/100 descending
	assert.Equal(t, int64(3), result[0].Content.ID) // 6.0 + 9.0 = 15.0
	assert.Equal(t, int64(1), result[1].Content.ID) // 7.0 + 2.0 = 9.0
	assert.Equal(t, int64(2), result[2].Content.ID) // 8.0 + 1.0 = 9.0 (stable tie)

	for _, cand := range result {
		assert.Equal(t, []string{"Currently popular", "Well rated by the community"}, cand.Reasons)
	}

	// personalization strategies never ran
	assert.Empty(t, cat.SearchByGenreCalls())
	assert.Empty(t, cat.SimilarCalls())
	assert.Empty(t, cat.AccountRecommendationsCalls())
}

func TestEngine_Recommend_FallbackTruncatesToLimit(t *testing.T) {
	cat := emptyCatalog()
	cat.TrendingFunc = func(ctx context.Context, window string) ([]domain.CatalogItem, error) {
		items := make([]domain.CatalogItem, 0, 15)
		for i := int64(1); i <= 15; i++ {
			items = append(items, domain.CatalogItem{ID: i, Type: domain.ContentMovie, Rating: 5, Popularity: float64(i)})
		}
		return items, nil
	}

	e := NewEngine(signalsWith(nil, nil), cat, noSession(), Config{})
	result := e.Recommend(context.Background(), "alice", 10)
	assert.Len(t, result, 10)
}

func TestEngine_Recommend_NoDuplicateIdentities(t *testing.T) {
	records := []domain.ConsumptionRecord{
		{ContentID: 99, ContentType: domain.ContentMovie, Title: "Seed", GenreIDs: []int64{28},
			Rating: 8, UserRating: floatPtr(5), ConsumedAt: time.Now()},
	}

	shared := domain.CatalogItem{ID: 10, Type: domain.ContentMovie, Title: "Shared Pick", Rating: 7.5, Popularity: 50}

	cat := emptyCatalog()
	cat.SearchByGenreFunc = func(ctx context.Context, contentType domain.ContentType, genreID int64, sortBy string, page int) ([]domain.CatalogItem, error) {
		if contentType == domain.ContentMovie {
			return []domain.CatalogItem{shared}, nil
		}
		return nil, nil
	}
	cat.SimilarFunc = func(ctx context.Context, contentID int64, contentType domain.ContentType) ([]domain.CatalogItem, error) {
		return []domain.CatalogItem{shared}, nil
	}
	cat.TrendingFunc = func(ctx context.Context, window string) ([]domain.CatalogItem, error) {
		return []domain.CatalogItem{shared, {ID: 11, Type: domain.ContentMovie, Title: "Other", Rating: 6, Popularity: 10}}, nil
	}

	e := NewEngine(signalsWith(records, nil), cat, noSession(), Config{})
	result := e.Recommend(context.Background(), "alice", 10)

	seen := map[domain.ContentKey]int{}
	for _, cand := range result {
		seen[cand.Content.Key()]++
	}
	for key, count := range seen {
		assert.Equal(t, 1, count, "duplicate identity %v", key)
	}

	// first nominating generator (genre affinity) keeps the reasons
	require.NotEmpty(t, result)
	var sharedCand *domain.Candidate
	for i := range result {
		if result[i].Content.ID == 10 {
			sharedCand = &result[i]
		}
	}
	require.NotNil(t, sharedCand)
	assert.Contains(t, sharedCand.Reasons[0], "You like Action")
}

func TestEngine_Recommend_ExcludesConsumedAndSaved(t *testing.T) {
	records := []domain.ConsumptionRecord{
		{ContentID: 1, ContentType: domain.ContentMovie, Rating: 7, ConsumedAt: time.Now()},
	}
	saved := []domain.SavedItem{
		{ContentID: 2, ContentType: domain.ContentSeries},
	}

	cat := emptyCatalog()
	cat.TrendingFunc = func(ctx context.Context, window string) ([]domain.CatalogItem, error) {
		return []domain.CatalogItem{
			{ID: 1, Type: domain.ContentMovie, Title: "Watched", Rating: 9, Popularity: 500},
			{ID: 2, Type: domain.ContentSeries, Title: "Saved", Rating: 9, Popularity: 400},
			{ID: 3, Type: domain.ContentMovie, Title: "Fresh", Rating: 6, Popularity: 300},
		}, nil
	}

	e := NewEngine(signalsWith(records, saved), cat, noSession(), Config{})
	result := e.Recommend(context.Background(), "alice", 10)

	require.Len(t, result, 1)
	assert.Equal(t, int64(3), result[0].Content.ID)
}

func TestEngine_Recommend_GeneratorFailuresIsolated(t *testing.T) {
	records := []domain.ConsumptionRecord{
		{ContentID: 99, ContentType: domain.ContentMovie, Title: "Seed", GenreIDs: []int64{28},
			Rating: 8, UserRating: floatPtr(5), ConsumedAt: time.Now()},
	}

	cat := emptyCatalog()
	cat.SearchByGenreFunc = func(ctx context.Context, contentType domain.ContentType, genreID int64, sortBy string, page int) ([]domain.CatalogItem, error) {
		return nil, errors.New("genre endpoint down")
	}
	cat.SimilarFunc = func(ctx context.Context, contentID int64, contentType domain.ContentType) ([]domain.CatalogItem, error) {
		return nil, errors.New("similar endpoint down")
	}
	cat.TrendingFunc = func(ctx context.Context, window string) ([]domain.CatalogItem, error) {
		return []domain.CatalogItem{{ID: 5, Type: domain.ContentMovie, Title: "Still Here", Rating: 7, Popularity: 80}}, nil
	}

	e := NewEngine(signalsWith(records, nil), cat, noSession(), Config{})
	result := e.Recommend(context.Background(), "alice", 10)

	require.Len(t, result, 1)
	assert.Equal(t, int64(5), result[0].Content.ID)
}

func TestEngine_Recommend_AllGeneratorsEmptyUsesFallback(t *testing.T) {
	records := []domain.ConsumptionRecord{
		{ContentID: 99, ContentType: domain.ContentMovie, GenreIDs: []int64{28},
			Rating: 8, UserRating: floatPtr(5), ConsumedAt: time.Now()},
	}

	trendingDown := true
	cat := emptyCatalog()
	cat.SearchByGenreFunc = func(ctx context.Context, contentType domain.ContentType, genreID int64, sortBy string, page int) ([]domain.CatalogItem, error) {
		return nil, errors.New("down")
	}
	cat.SimilarFunc = func(ctx context.Context, contentID int64, contentType domain.ContentType) ([]domain.CatalogItem, error) {
		return nil, errors.New("down")
	}
	cat.TrendingFunc = func(ctx context.Context, window string) ([]domain.CatalogItem, error) {
		if trendingDown {
			return nil, errors.New("down")
		}
		return nil, nil
	}
	cat.PopularFunc = func(ctx context.Context, contentType domain.ContentType, page int) ([]domain.CatalogItem, error) {
		if contentType == domain.ContentMovie {
			return []domain.CatalogItem{{ID: 1, Type: domain.ContentMovie, Title: "Fallback Movie", Rating: 7.2, Popularity: 150}}, nil
		}
		return []domain.CatalogItem{{ID: 2, Type: domain.ContentSeries, Title: "Fallback Series", Rating: 8.1, Popularity: 90}}, nil
	}

	e := NewEngine(signalsWith(records, nil), cat, noSession(), Config{})
	result := e.Recommend(context.Background(), "alice", 10)

	require.Len(t, result, 2)
	// 7.2+1.5=8.7 < 8.1+0.9=9.0
	assert.Equal(t, int64(2), result[0].Content.ID)
	assert.Equal(t, int64(1), result[1].Content.ID)
	assert.Equal(t, []string{"Currently popular", "Well rated by the community"}, result[0].Reasons)
}

func TestEngine_Recommend_SignalReadFailureDegradesToFallback(t *testing.T) {
	signals := &mocks.SignalStoreMock{
		ListConsumptionFunc: func(ctx context.Context, userID string) ([]domain.ConsumptionRecord, error) {
			return nil, errors.New("store unavailable")
		},
		ListSavedFunc: func(ctx context.Context, userID string) ([]domain.SavedItem, error) {
			return nil, errors.New("store unavailable")
		},
	}

	cat := emptyCatalog()
	cat.PopularFunc = func(ctx context.Context, contentType domain.ContentType, page int) ([]domain.CatalogItem, error) {
		if contentType == domain.ContentMovie {
			return []domain.CatalogItem{{ID: 1, Type: domain.ContentMovie, Rating: 7, Popularity: 100}}, nil
		}
		return nil, nil
	}

	e := NewEngine(signals, cat, noSession(), Config{})
	result := e.Recommend(context.Background(), "alice", 10)

	require.Len(t, result, 1)
	assert.Equal(t, int64(1), result[0].Content.ID)
}

func TestEngine_ProfileCacheInvalidation(t *testing.T) {
	records := []domain.ConsumptionRecord{
		{ContentID: 1, ContentType: domain.ContentMovie, GenreIDs: []int64{28},
			Rating: 8, UserRating: floatPtr(5), ConsumedAt: time.Now()},
	}

	signals := &mocks.SignalStoreMock{
		ListConsumptionFunc: func(ctx context.Context, userID string) ([]domain.ConsumptionRecord, error) {
			return records, nil
		},
		ListSavedFunc: func(ctx context.Context, userID string) ([]domain.SavedItem, error) {
			return nil, nil
		},
	}

	cat := emptyCatalog()
	e := NewEngine(signals, cat, noSession(), Config{})

	e.Recommend(context.Background(), "alice", 5)
	firstCalls := len(cat.SearchByGenreCalls())
	assert.Positive(t, firstCalls)

	// new signal arrives for another genre, cache still serves the old profile
	records = []domain.ConsumptionRecord{
		{ContentID: 2, ContentType: domain.ContentMovie, GenreIDs: []int64{16},
			Rating: 8, UserRating: floatPtr(5), ConsumedAt: time.Now()},
	}
	e.Recommend(context.Background(), "alice", 5)
	for _, call := range cat.SearchByGenreCalls() {
		assert.Equal(t, int64(28), call.GenreID)
	}

	// after invalidation the profile is rebuilt from the new log
	e.InvalidateProfile("alice")
	e.Recommend(context.Background(), "alice", 5)
	calls := cat.SearchByGenreCalls()
	assert.Equal(t, int64(16), calls[len(calls)-1].GenreID)
}

func TestEngine_Recommend_OutageDoesNotPoisonProfileCache(t *testing.T) {
	records := []domain.ConsumptionRecord{
		{ContentID: 1, ContentType: domain.ContentMovie, GenreIDs: []int64{28},
			Rating: 8, UserRating: floatPtr(5), ConsumedAt: time.Now()},
	}

	storeDown := true
	signals := &mocks.SignalStoreMock{
		ListConsumptionFunc: func(ctx context.Context, userID string) ([]domain.ConsumptionRecord, error) {
			if storeDown {
				return nil, errors.New("store unavailable")
			}
			return records, nil
		},
		ListSavedFunc: func(ctx context.Context, userID string) ([]domain.SavedItem, error) {
			return nil, nil
		},
	}

	cat := emptyCatalog()
	e := NewEngine(signals, cat, noSession(), Config{})

	// request during the outage serves the fallback path
	e.Recommend(context.Background(), "alice", 5)
	assert.Empty(t, cat.SearchByGenreCalls())

	// store recovers, no write happens in between; the next request must see
	// the real history, not an empty profile pinned during the outage
	storeDown = false
	e.Recommend(context.Background(), "alice", 5)

	calls := cat.SearchByGenreCalls()
	require.NotEmpty(t, calls, "genre generator should run once the store is back")
	assert.Equal(t, int64(28), calls[0].GenreID)
}

func TestEngine_Recommend_DefaultLimit(t *testing.T) {
	cat := emptyCatalog()
	cat.TrendingFunc = func(ctx context.Context, window string) ([]domain.CatalogItem, error) {
		items := make([]domain.CatalogItem, 0, 30)
		for i := int64(1); i <= 30; i++ {
			items = append(items, domain.CatalogItem{ID: i, Type: domain.ContentMovie, Rating: 5, Popularity: float64(i)})
		}
		return items, nil
	}

	e := NewEngine(signalsWith(nil, nil), cat, noSession(), Config{DefaultLimit: 7})
	result := e.Recommend(context.Background(), "alice", 0)
	assert.Len(t, result, 7)
}

func TestEngine_Stats(t *testing.T) {
	records := []domain.ConsumptionRecord{
		{ContentID: 1, ContentType: domain.ContentMovie, GenreIDs: []int64{28}, Rating: 8,
			UserRating: floatPtr(5), CompletionPct: floatPtr(50), ConsumedAt: time.Now()},
		{ContentID: 2, ContentType: domain.ContentMovie, Rating: 7, ConsumedAt: time.Now()},
		{ContentID: 3, ContentType: domain.ContentSeries, Rating: 7, ConsumedAt: time.Now()},
	}
	saved := []domain.SavedItem{{ContentID: 9, ContentType: domain.ContentSeries}}

	e := NewEngine(signalsWith(records, saved), emptyCatalog(), noSession(), Config{})
	stats := e.Stats(context.Background(), "alice")

	assert.Equal(t, 3, stats.TotalConsumed)
	assert.Equal(t, 2, stats.MovieCount)
	assert.Equal(t, 1, stats.SeriesCount)
	assert.Equal(t, 1, stats.SavedCount)

	// 120*0.5 + 120 + 45
	assert.InDelta(t, 225.0, stats.EstimatedMinutes, 0.001)

	require.Contains(t, stats.GenreAffinity, int64(28))
	assert.InDelta(t, 5.0, stats.GenreAffinity[28], 0.001)
}

func TestEngine_Stats_StoreUnavailable(t *testing.T) {
	signals := &mocks.SignalStoreMock{
		ListConsumptionFunc: func(ctx context.Context, userID string) ([]domain.ConsumptionRecord, error) {
			return nil, errors.New("store unavailable")
		},
		ListSavedFunc: func(ctx context.Context, userID string) ([]domain.SavedItem, error) {
			return nil, errors.New("store unavailable")
		},
	}

	e := NewEngine(signals, emptyCatalog(), noSession(), Config{})
	stats := e.Stats(context.Background(), "alice")

	assert.Zero(t, stats.TotalConsumed)
	assert.Zero(t, stats.SavedCount)
	assert.Zero(t, stats.EstimatedMinutes)
	assert.Empty(t, stats.GenreAffinity)
	assert.False(t, stats.BingeTendency)
}

func TestEngine_Recommend_TrendingWindowPassedThrough(t *testing.T) {
	cat := emptyCatalog()
	e := NewEngine(signalsWith(nil, nil), cat, noSession(), Config{TrendingWindow: catalog.WindowWeek})

	e.Recommend(context.Background(), "alice", 5)

	calls := cat.TrendingCalls()
	require.NotEmpty(t, calls)
	assert.Equal(t, catalog.WindowWeek, calls[0].Window)
}
