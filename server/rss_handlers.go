package server

import (
	"log"
	"net/http"
	"strconv"

	"github.com/umputun/reelscope/pkg/rss"
)

// defaultRSSLimit caps feed size when no limit is requested
const defaultRSSLimit = 20

// rssRecommendationsHandler serves the user's picks as an RSS 2.0 feed.
// Feed readers can't set headers, so the user comes from the query string.
func (s *Server) rssRecommendationsHandler(w http.ResponseWriter, r *http.Request) {
	user := r.URL.Query().Get("user")
	if user == "" {
		user = defaultUserID
	}

	limit := defaultRSSLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	candidates := s.recommender.Recommend(r.Context(), user, limit)

	generator := rss.NewGenerator(s.config.GetBaseURL())
	feed, err := generator.GenerateRSS(candidates, user)
	if err != nil {
		log.Printf("[ERROR] failed to generate RSS feed: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if _, err := w.Write([]byte(feed)); err != nil {
		log.Printf("[ERROR] failed to write RSS response: %v", err)
	}
}
