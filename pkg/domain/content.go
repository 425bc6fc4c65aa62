package domain

import "time"

// ContentType distinguishes movies from series
type ContentType string

const (
	ContentMovie  ContentType = "movie"
	ContentSeries ContentType = "series"
)

// Valid reports whether the content type is one of the known values
func (t ContentType) Valid() bool {
	return t == ContentMovie || t == ContentSeries
}

// ContentKey identifies a title across all catalog sources
type ContentKey struct {
	ID   int64
	Type ContentType
}

// CatalogItem represents a title as returned by the catalog service
type CatalogItem struct {
	ID          int64       `json:"id"`
	Type        ContentType `json:"type"`
	Title       string      `json:"title"`
	Overview    string      `json:"overview,omitempty"`
	GenreIDs    []int64     `json:"genre_ids,omitempty"`
	Rating      float64     `json:"rating"` // catalog rating, 0-10
	Popularity  float64     `json:"popularity"`
	PosterPath  string      `json:"poster_path,omitempty"`
	ReleaseDate string      `json:"release_date,omitempty"`
}

// Key returns the identity key of the item
func (c CatalogItem) Key() ContentKey {
	return ContentKey{ID: c.ID, Type: c.Type}
}

// ConsumptionRecord is a log entry for a watched title
type ConsumptionRecord struct {
	ContentID     int64       `json:"content_id"`
	ContentType   ContentType `json:"content_type"`
	Title         string      `json:"title"`
	GenreIDs      []int64     `json:"genre_ids,omitempty"`
	Rating        float64     `json:"rating"` // catalog rating at consumption time, 0-10
	ConsumedAt    time.Time   `json:"consumed_at"`
	UserRating    *float64    `json:"user_rating,omitempty"`    // explicit rating, 1-5
	CompletionPct *float64    `json:"completion_pct,omitempty"` // 0-100
}

// Key returns the identity key of the record
func (r ConsumptionRecord) Key() ContentKey {
	return ContentKey{ID: r.ContentID, Type: r.ContentType}
}

// Priority represents saved-item priority
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether the priority is empty or one of the known values
func (p Priority) Valid() bool {
	return p == "" || p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// SavedItem is a title queued for future viewing
type SavedItem struct {
	ContentID   int64       `json:"content_id"`
	ContentType ContentType `json:"content_type"`
	Title       string      `json:"title"`
	GenreIDs    []int64     `json:"genre_ids,omitempty"`
	AddedAt     time.Time   `json:"added_at"`
	Priority    Priority    `json:"priority,omitempty"`
}

// Key returns the identity key of the item
func (s SavedItem) Key() ContentKey {
	return ContentKey{ID: s.ContentID, Type: s.ContentType}
}
