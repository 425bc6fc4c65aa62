package recommend

import (
	"context"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/reelscope/pkg/domain"
)

// estimated watch time weights in minutes
const (
	movieMinutes   = 120
	episodeMinutes = 45
)

// Stats summarizes the user's viewing signals. Pure aggregation over the
// signal store and the profile, unavailable storage degrades to zero values.
func (e *Engine) Stats(ctx context.Context, userID string) domain.Stats {
	records, err := e.signals.ListConsumption(ctx, userID)
	recordsOK := err == nil
	if err != nil {
		lgr.Printf("[WARN] consumption read failed for user %s stats: %v", userID, err)
		records = nil
	}
	saved, err := e.signals.ListSaved(ctx, userID)
	if err != nil {
		lgr.Printf("[WARN] saved-items read failed for user %s stats: %v", userID, err)
		saved = nil
	}

	stats := domain.Stats{
		TotalConsumed: len(records),
		SavedCount:    len(saved),
		GenreAffinity: map[int64]float64{},
	}

	for _, rec := range records {
		completion := 100.0
		if rec.CompletionPct != nil {
			completion = *rec.CompletionPct
		}

		if rec.ContentType == domain.ContentMovie {
			stats.MovieCount++
			stats.EstimatedMinutes += movieMinutes * completion / 100
		} else {
			stats.SeriesCount++
			stats.EstimatedMinutes += episodeMinutes * completion / 100
		}
	}

	if prof := e.profileFor(userID, records, recordsOK); prof != nil {
		stats.GenreAffinity = prof.GenreAffinity
		stats.BingeTendency = prof.BingeTendency
	}

	return stats
}
