// Package profile derives a taste profile from a user's consumption log.
// Build is a pure function: same log in, same profile out, nothing cached.
package profile

import (
	"sort"
	"time"

	"github.com/umputun/reelscope/pkg/domain"
)

// classification thresholds on the 0-5 normalized scale
const (
	affinityThreshold = 3.5
	dislikeThreshold  = 2.5
)

// binge detection: share of adjacent watches closer than the window
const (
	bingeWindow = 4 * time.Hour
	bingeShare  = 0.3
)

// Build derives a taste profile from the consumption log, nil when the log is
// empty. A record's value signal is the explicit user rating when present,
// otherwise the catalog rating halved onto the same 0-5 scale.
func Build(records []domain.ConsumptionRecord) *domain.TasteProfile {
	if len(records) == 0 {
		return nil
	}

	type acc struct {
		sum   float64
		count int
	}
	genreAcc := make(map[int64]*acc)

	minRating := records[0].Rating
	maxRating := records[0].Rating
	movies, series := 0, 0

	for _, rec := range records {
		score := rec.Rating / 2
		if rec.UserRating != nil {
			score = *rec.UserRating
		}

		for _, genreID := range rec.GenreIDs {
			a := genreAcc[genreID]
			if a == nil {
				a = &acc{}
				genreAcc[genreID] = a
			}
			a.sum += score
			a.count++
		}

		if rec.Rating < minRating {
			minRating = rec.Rating
		}
		if rec.Rating > maxRating {
			maxRating = rec.Rating
		}

		if rec.ContentType == domain.ContentMovie {
			movies++
		} else {
			series++
		}
	}

	affinity := make(map[int64]float64)
	var disliked []int64
	for genreID, a := range genreAcc {
		mean := a.sum / float64(a.count)
		switch {
		case mean >= affinityThreshold:
			affinity[genreID] = mean
		case mean < dislikeThreshold:
			disliked = append(disliked, genreID)
		}
		// means in [2.5, 3.5) are neutral, tracked nowhere
	}
	sort.Slice(disliked, func(i, j int) bool { return disliked[i] < disliked[j] })

	ratio := 0.5 // unreachable default, the empty log short-circuits above
	if movies+series > 0 {
		ratio = float64(movies) / float64(movies+series)
	}

	return &domain.TasteProfile{
		GenreAffinity:      affinity,
		DislikedGenres:     disliked,
		RatingRange:        ratingRange(minRating, maxRating),
		MovieToSeriesRatio: ratio,
		BingeTendency:      bingeTendency(records),
	}
}

// ratingRange pads the observed catalog-rating spread by -1/+0.5, clamped to [0, 10]
func ratingRange(minRating, maxRating float64) domain.RatingRange {
	low := minRating - 1
	if low < 0 {
		low = 0
	}
	high := maxRating + 0.5
	if high > 10 {
		high = 10
	}
	return domain.RatingRange{Min: low, Max: high}
}

// bingeTendency checks how often consecutive watches land within the binge window
func bingeTendency(records []domain.ConsumptionRecord) bool {
	if len(records) < 2 {
		return false
	}

	timestamps := make([]time.Time, len(records))
	for i, rec := range records {
		timestamps[i] = rec.ConsumedAt
	}
	sort.Slice(timestamps, func(i, j int) bool { return timestamps[i].Before(timestamps[j]) })

	closePairs := 0
	for i := 1; i < len(timestamps); i++ {
		if timestamps[i].Sub(timestamps[i-1]) < bingeWindow {
			closePairs++
		}
	}

	return float64(closePairs)/float64(len(records)) > bingeShare
}
