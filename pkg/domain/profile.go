package domain

// RatingRange is the band of catalog ratings the user accepts
type RatingRange struct {
	Min float64
	Max float64
}

// Contains reports whether a rating falls inside the range
func (r RatingRange) Contains(rating float64) bool {
	return rating >= r.Min && rating <= r.Max
}

// TasteProfile is a derived summary of the user's viewing signals.
// It is rebuilt from the consumption log, never persisted as source of truth.
type TasteProfile struct {
	GenreAffinity      map[int64]float64 // genres with mean normalized score >= 3.5, value is the mean
	DislikedGenres     []int64           // genres with mean normalized score < 2.5, sorted ascending
	RatingRange        RatingRange
	MovieToSeriesRatio float64 // 0-1, share of movies in the consumption log
	BingeTendency      bool
}

// Candidate is a title proposed by one generation strategy.
// Transient, exists only within one aggregation call.
type Candidate struct {
	Content CatalogItem `json:"content"`
	Score   float64     `json:"score"`
	Reasons []string    `json:"reasons"`
}

// Stats summarizes the user's viewing signals
type Stats struct {
	TotalConsumed    int               `json:"total_consumed"`
	MovieCount       int               `json:"movie_count"`
	SeriesCount      int               `json:"series_count"`
	SavedCount       int               `json:"saved_count"`
	EstimatedMinutes float64           `json:"estimated_minutes"`
	GenreAffinity    map[int64]float64 `json:"genre_affinity"`
	BingeTendency    bool              `json:"binge_tendency"`
}
