package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/reelscope/pkg/domain"
	"github.com/umputun/reelscope/server/mocks"
)

func TestServer_recommendationsHandler(t *testing.T) {
	recommender := &mocks.RecommenderMock{
		RecommendFunc: func(ctx context.Context, userID string, limit int) []domain.Candidate {
			return []domain.Candidate{
				{
					Content: domain.CatalogItem{ID: 550, Type: domain.ContentMovie, Title: "Fight Club", Rating: 8.4},
					Score:   58.4,
					Reasons: []string{"You like Drama"},
				},
			}
		},
	}

	srv := New(testConfig(), &mocks.SignalStoreMock{}, recommender, &mocks.SessionStoreMock{}, "test", false)

	t.Run("default user and limit", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/recommendations", http.NoBody)
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Recommendations []domain.Candidate `json:"recommendations"`
			Count           int                `json:"count"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Count)
		assert.Equal(t, "Fight Club", resp.Recommendations[0].Content.Title)

		calls := recommender.RecommendCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, "default", calls[0].UserID)
		assert.Equal(t, 0, calls[0].Limit) // engine applies its default
	})

	t.Run("explicit user and limit", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/recommendations?limit=5", http.NoBody)
		req.Header.Set("X-User-ID", "alice")
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		calls := recommender.RecommendCalls()
		last := calls[len(calls)-1]
		assert.Equal(t, "alice", last.UserID)
		assert.Equal(t, 5, last.Limit)
	})

	t.Run("invalid limit rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/recommendations?limit=abc", http.NoBody)
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestServer_statsHandler(t *testing.T) {
	recommender := &mocks.RecommenderMock{
		StatsFunc: func(ctx context.Context, userID string) domain.Stats {
			return domain.Stats{TotalConsumed: 3, MovieCount: 2, SeriesCount: 1, EstimatedMinutes: 285}
		},
	}

	srv := New(testConfig(), &mocks.SignalStoreMock{}, recommender, &mocks.SessionStoreMock{}, "test", false)

	req := httptest.NewRequest("GET", "/api/v1/stats", http.NoBody)
	req.Header.Set("X-User-ID", "alice")
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var stats domain.Stats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 3, stats.TotalConsumed)
	assert.InDelta(t, 285.0, stats.EstimatedMinutes, 0.001)

	calls := recommender.StatsCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "alice", calls[0].UserID)
}

func TestServer_recordConsumptionHandler(t *testing.T) {
	signals := &mocks.SignalStoreMock{
		UpsertConsumptionFunc: func(ctx context.Context, userID string, rec *domain.ConsumptionRecord) error {
			return nil
		},
	}
	recommender := &mocks.RecommenderMock{
		InvalidateProfileFunc: func(userID string) {},
	}

	srv := New(testConfig(), signals, recommender, &mocks.SessionStoreMock{}, "test", false)

	t.Run("records and invalidates profile", func(t *testing.T) {
		body := `{"content_id": 550, "content_type": "movie", "title": "Fight Club", "rating": 8.4, "user_rating": 5}`
		req := httptest.NewRequest("POST", "/api/v1/history", strings.NewReader(body))
		req.Header.Set("X-User-ID", "alice")
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		calls := signals.UpsertConsumptionCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, "alice", calls[0].UserID)
		assert.Equal(t, int64(550), calls[0].Rec.ContentID)
		require.NotNil(t, calls[0].Rec.UserRating)
		assert.InDelta(t, 5.0, *calls[0].Rec.UserRating, 0.001)

		invalidations := recommender.InvalidateProfileCalls()
		require.Len(t, invalidations, 1)
		assert.Equal(t, "alice", invalidations[0].UserID)
	})

	t.Run("missing timestamp defaulted in echo", func(t *testing.T) {
		body := `{"content_id": 603, "content_type": "movie", "title": "The Matrix"}`
		req := httptest.NewRequest("POST", "/api/v1/history", strings.NewReader(body))
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		// the echoed record must carry the same timestamp the store persisted
		var echoed domain.ConsumptionRecord
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &echoed))
		assert.False(t, echoed.ConsumedAt.IsZero(), "consumed_at should be defaulted, not zero")
		assert.WithinDuration(t, time.Now(), echoed.ConsumedAt, time.Minute)

		calls := signals.UpsertConsumptionCalls()
		stored := calls[len(calls)-1].Rec
		assert.Equal(t, stored.ConsumedAt, echoed.ConsumedAt)
	})

	tbl := []struct {
		name string
		body string
	}{
		{"malformed json", `{not json`},
		{"invalid content type", `{"content_id": 1, "content_type": "podcast"}`},
		{"missing content id", `{"content_type": "movie"}`},
		{"user rating out of range", `{"content_id": 1, "content_type": "movie", "user_rating": 6}`},
		{"completion out of range", `{"content_id": 1, "content_type": "movie", "completion_pct": 150}`},
	}
	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/v1/history", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			srv.router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}

	t.Run("store failure reported", func(t *testing.T) {
		signals.UpsertConsumptionFunc = func(ctx context.Context, userID string, rec *domain.ConsumptionRecord) error {
			return errors.New("disk full")
		}
		body := `{"content_id": 550, "content_type": "movie"}`
		req := httptest.NewRequest("POST", "/api/v1/history", strings.NewReader(body))
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestServer_listHistoryHandler(t *testing.T) {
	signals := &mocks.SignalStoreMock{
		ListConsumptionFunc: func(ctx context.Context, userID string) ([]domain.ConsumptionRecord, error) {
			return []domain.ConsumptionRecord{
				{ContentID: 550, ContentType: domain.ContentMovie, Title: "Fight Club", ConsumedAt: time.Now()},
			}, nil
		},
	}

	srv := New(testConfig(), signals, &mocks.RecommenderMock{}, &mocks.SessionStoreMock{}, "test", false)

	req := httptest.NewRequest("GET", "/api/v1/history", http.NoBody)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		History []domain.ConsumptionRecord `json:"history"`
		Count   int                        `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, "Fight Club", resp.History[0].Title)

	t.Run("store failure reported", func(t *testing.T) {
		signals.ListConsumptionFunc = func(ctx context.Context, userID string) ([]domain.ConsumptionRecord, error) {
			return nil, errors.New("db gone")
		}
		req := httptest.NewRequest("GET", "/api/v1/history", http.NoBody)
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestServer_clearSignalsHandler(t *testing.T) {
	signals := &mocks.SignalStoreMock{
		ClearAllFunc: func(ctx context.Context, userID string) error { return nil },
	}
	recommender := &mocks.RecommenderMock{
		InvalidateProfileFunc: func(userID string) {},
	}

	srv := New(testConfig(), signals, recommender, &mocks.SessionStoreMock{}, "test", false)

	req := httptest.NewRequest("DELETE", "/api/v1/history", http.NoBody)
	req.Header.Set("X-User-ID", "alice")
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, signals.ClearAllCalls(), 1)
	assert.Equal(t, "alice", signals.ClearAllCalls()[0].UserID)
	require.Len(t, recommender.InvalidateProfileCalls(), 1)
}

func TestServer_saveItemHandler(t *testing.T) {
	signals := &mocks.SignalStoreMock{
		SaveItemFunc: func(ctx context.Context, userID string, item *domain.SavedItem) error { return nil },
	}
	recommender := &mocks.RecommenderMock{
		InvalidateProfileFunc: func(userID string) {},
	}

	srv := New(testConfig(), signals, recommender, &mocks.SessionStoreMock{}, "test", false)

	t.Run("saves and invalidates profile", func(t *testing.T) {
		body := `{"content_id": 1396, "content_type": "series", "title": "Breaking Bad", "priority": "high"}`
		req := httptest.NewRequest("POST", "/api/v1/watchlist", strings.NewReader(body))
		req.Header.Set("X-User-ID", "alice")
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		calls := signals.SaveItemCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, int64(1396), calls[0].Item.ContentID)
		assert.Equal(t, domain.PriorityHigh, calls[0].Item.Priority)
		require.Len(t, recommender.InvalidateProfileCalls(), 1)
	})

	t.Run("invalid priority rejected", func(t *testing.T) {
		body := `{"content_id": 1, "content_type": "movie", "priority": "urgent"}`
		req := httptest.NewRequest("POST", "/api/v1/watchlist", strings.NewReader(body))
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestServer_listWatchlistHandler(t *testing.T) {
	signals := &mocks.SignalStoreMock{
		ListSavedFunc: func(ctx context.Context, userID string) ([]domain.SavedItem, error) {
			return []domain.SavedItem{
				{ContentID: 1396, ContentType: domain.ContentSeries, Title: "Breaking Bad", AddedAt: time.Now()},
			}, nil
		},
	}

	srv := New(testConfig(), signals, &mocks.RecommenderMock{}, &mocks.SessionStoreMock{}, "test", false)

	req := httptest.NewRequest("GET", "/api/v1/watchlist", http.NoBody)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Watchlist []domain.SavedItem `json:"watchlist"`
		Count     int                `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, "Breaking Bad", resp.Watchlist[0].Title)
}

func TestServer_removeSavedHandler(t *testing.T) {
	signals := &mocks.SignalStoreMock{
		RemoveSavedFunc: func(ctx context.Context, userID string, contentID int64, contentType domain.ContentType) error {
			return nil
		},
	}
	recommender := &mocks.RecommenderMock{
		InvalidateProfileFunc: func(userID string) {},
	}

	srv := New(testConfig(), signals, recommender, &mocks.SessionStoreMock{}, "test", false)

	t.Run("removes by identity key", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", "/api/v1/watchlist/series/1396", http.NoBody)
		req.Header.Set("X-User-ID", "alice")
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		calls := signals.RemoveSavedCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, int64(1396), calls[0].ContentID)
		assert.Equal(t, domain.ContentSeries, calls[0].ContentType)
		require.Len(t, recommender.InvalidateProfileCalls(), 1)
	})

	t.Run("invalid content type rejected", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", "/api/v1/watchlist/podcast/1", http.NoBody)
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid id rejected", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", "/api/v1/watchlist/movie/abc", http.NoBody)
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestServer_sessionHandlers(t *testing.T) {
	sessions := &mocks.SessionStoreMock{
		SetCatalogSessionFunc:   func(ctx context.Context, userID, token string) error { return nil },
		ClearCatalogSessionFunc: func(ctx context.Context, userID string) error { return nil },
	}

	srv := New(testConfig(), &mocks.SignalStoreMock{}, &mocks.RecommenderMock{}, sessions, "test", false)

	t.Run("link session", func(t *testing.T) {
		body := `{"session": "sess-123"}`
		req := httptest.NewRequest("POST", "/api/v1/session", strings.NewReader(body))
		req.Header.Set("X-User-ID", "alice")
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		calls := sessions.SetCatalogSessionCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, "alice", calls[0].UserID)
		assert.Equal(t, "sess-123", calls[0].Token)
	})

	t.Run("empty session rejected", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/session", strings.NewReader(`{"session": ""}`))
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unlink session", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", "/api/v1/session", http.NoBody)
		req.Header.Set("X-User-ID", "alice")
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, sessions.ClearCatalogSessionCalls(), 1)
		assert.Equal(t, "alice", sessions.ClearCatalogSessionCalls()[0].UserID)
	})
}
