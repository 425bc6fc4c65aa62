package catalog

import (
	"github.com/umputun/reelscope/pkg/domain"
)

// sort orders understood by the catalog's discover endpoint
const (
	SortTopRated   = "vote_average.desc"
	SortPopularity = "popularity.desc"
)

// trending windows
const (
	WindowDay  = "day"
	WindowWeek = "week"
)

// listResponse is the catalog's standard paged envelope
type listResponse struct {
	Page       int        `json:"page"`
	Results    []itemJSON `json:"results"`
	TotalPages int        `json:"total_pages"`
}

// itemJSON is a single title as the catalog returns it. Movies carry "title"
// and "release_date", series carry "name" and "first_air_date"; media_type is
// present only on mixed endpoints like trending.
type itemJSON struct {
	ID           int64   `json:"id"`
	MediaType    string  `json:"media_type"`
	Title        string  `json:"title"`
	Name         string  `json:"name"`
	Overview     string  `json:"overview"`
	GenreIDs     []int64 `json:"genre_ids"`
	VoteAverage  float64 `json:"vote_average"`
	Popularity   float64 `json:"popularity"`
	PosterPath   string  `json:"poster_path"`
	ReleaseDate  string  `json:"release_date"`
	FirstAirDate string  `json:"first_air_date"`
}

// genreListResponse is the envelope of the genre lookup endpoint
type genreListResponse struct {
	Genres []struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"genres"`
}

// mediaPath maps a domain content type to the catalog's URL segment
func mediaPath(t domain.ContentType) string {
	if t == domain.ContentSeries {
		return "tv"
	}
	return "movie"
}

// mediaType maps a catalog media_type value to a domain content type
func mediaType(s string) domain.ContentType {
	if s == "tv" {
		return domain.ContentSeries
	}
	return domain.ContentMovie
}
