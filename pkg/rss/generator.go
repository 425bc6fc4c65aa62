// Package rss renders recommendation lists as RSS 2.0 feeds, so any feed
// reader can subscribe to a user's personalized picks.
package rss

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/umputun/reelscope/pkg/domain"
)

// Generator creates RSS feeds from ranked candidates
type Generator struct {
	baseURL string
}

// NewGenerator creates a new feed generator
func NewGenerator(baseURL string) *Generator {
	return &Generator{
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// GenerateRSS creates an RSS 2.0 feed from ranked candidates for a user
func (g *Generator) GenerateRSS(candidates []domain.Candidate, userID string) (string, error) {
	selfLink := fmt.Sprintf("%s/rss/recommendations?user=%s", g.baseURL, userID)

	rssItems := make([]*RSSItem, 0, len(candidates))
	for _, cand := range candidates {
		rssItems = append(rssItems, g.convertToRSSItem(cand))
	}

	feed := &RSS{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: &RSSChannel{
			Title:         fmt.Sprintf("Reelscope - Picks for %s", userID),
			Link:          g.baseURL + "/",
			Description:   "Personalized movie and series recommendations",
			AtomLink:      &AtomLink{Href: selfLink, Rel: "self", Type: "application/rss+xml"},
			LastBuildDate: time.Now().Format(time.RFC1123Z),
			Items:         rssItems,
		},
	}

	output, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}

	return xml.Header + string(output), nil
}

// convertToRSSItem converts a ranked candidate to an RSS item
func (g *Generator) convertToRSSItem(cand domain.Candidate) *RSSItem {
	desc := fmt.Sprintf("Score: %.1f - %s", cand.Score, strings.Join(cand.Reasons, "; "))
	if cand.Content.Overview != "" {
		desc += "\n\n" + cand.Content.Overview
	}

	return &RSSItem{
		Title:       fmt.Sprintf("[%.1f] %s", cand.Score, cand.Content.Title),
		Link:        fmt.Sprintf("%s/content/%s/%d", g.baseURL, cand.Content.Type, cand.Content.ID),
		GUID:        fmt.Sprintf("reelscope-%s-%d", cand.Content.Type, cand.Content.ID),
		Description: desc,
		PubDate:     time.Now().Format(time.RFC1123Z),
		Categories:  []string{string(cand.Content.Type)},
	}
}
