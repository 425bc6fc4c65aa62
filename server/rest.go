package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/umputun/reelscope/pkg/domain"
)

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// recommendationsHandler returns ranked recommendations for the acting user
func (s *Server) recommendationsHandler(w http.ResponseWriter, r *http.Request) {
	limit := 0 // engine applies its configured default
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 0 {
			renderError(w, r, fmt.Errorf("invalid limit"), http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	candidates := s.recommender.Recommend(r.Context(), userID(r), limit)
	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"recommendations": candidates,
		"count":           len(candidates),
	})
}

// statsHandler returns the user's viewing statistics
func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, s.recommender.Stats(r.Context(), userID(r)))
}

// listHistoryHandler returns the user's consumption log, newest first
func (s *Server) listHistoryHandler(w http.ResponseWriter, r *http.Request) {
	records, err := s.signals.ListConsumption(r.Context(), userID(r))
	if err != nil {
		log.Printf("[ERROR] failed to list consumption: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]interface{}{"history": records, "count": len(records)})
}

// recordConsumptionHandler logs a watched title
func (s *Server) recordConsumptionHandler(w http.ResponseWriter, r *http.Request) {
	var rec domain.ConsumptionRecord
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if !rec.ContentType.Valid() {
		renderError(w, r, fmt.Errorf("invalid content type %q", rec.ContentType), http.StatusBadRequest)
		return
	}
	if rec.ContentID == 0 {
		renderError(w, r, fmt.Errorf("content_id is required"), http.StatusBadRequest)
		return
	}
	if rec.UserRating != nil && (*rec.UserRating < 1 || *rec.UserRating > 5) {
		renderError(w, r, fmt.Errorf("user_rating must be between 1 and 5"), http.StatusBadRequest)
		return
	}
	if rec.CompletionPct != nil && (*rec.CompletionPct < 0 || *rec.CompletionPct > 100) {
		renderError(w, r, fmt.Errorf("completion_pct must be between 0 and 100"), http.StatusBadRequest)
		return
	}

	if rec.ConsumedAt.IsZero() {
		rec.ConsumedAt = time.Now().UTC() // echo the same default the store applies
	}

	user := userID(r)
	if err := s.signals.UpsertConsumption(r.Context(), user, &rec); err != nil {
		log.Printf("[ERROR] failed to record consumption: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	s.recommender.InvalidateProfile(user)

	renderJSON(w, r, http.StatusCreated, rec)
}

// clearSignalsHandler wipes both signal streams for the user
func (s *Server) clearSignalsHandler(w http.ResponseWriter, r *http.Request) {
	user := userID(r)
	if err := s.signals.ClearAll(r.Context(), user); err != nil {
		log.Printf("[ERROR] failed to clear signals: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	s.recommender.InvalidateProfile(user)

	renderJSON(w, r, http.StatusOK, map[string]string{"status": "cleared"})
}

// listWatchlistHandler returns the user's watchlist, newest first
func (s *Server) listWatchlistHandler(w http.ResponseWriter, r *http.Request) {
	items, err := s.signals.ListSaved(r.Context(), userID(r))
	if err != nil {
		log.Printf("[ERROR] failed to list watchlist: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]interface{}{"watchlist": items, "count": len(items)})
}

// saveItemHandler adds a title to the watchlist
func (s *Server) saveItemHandler(w http.ResponseWriter, r *http.Request) {
	var item domain.SavedItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if !item.ContentType.Valid() {
		renderError(w, r, fmt.Errorf("invalid content type %q", item.ContentType), http.StatusBadRequest)
		return
	}
	if item.ContentID == 0 {
		renderError(w, r, fmt.Errorf("content_id is required"), http.StatusBadRequest)
		return
	}
	if !item.Priority.Valid() {
		renderError(w, r, fmt.Errorf("invalid priority %q", item.Priority), http.StatusBadRequest)
		return
	}

	user := userID(r)
	if err := s.signals.SaveItem(r.Context(), user, &item); err != nil {
		log.Printf("[ERROR] failed to save item: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	s.recommender.InvalidateProfile(user)

	renderJSON(w, r, http.StatusCreated, item)
}

// removeSavedHandler deletes a watchlist entry by identity key
func (s *Server) removeSavedHandler(w http.ResponseWriter, r *http.Request) {
	contentType := domain.ContentType(r.PathValue("type"))
	if !contentType.Valid() {
		renderError(w, r, fmt.Errorf("invalid content type %q", contentType), http.StatusBadRequest)
		return
	}
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid content ID"), http.StatusBadRequest)
		return
	}

	user := userID(r)
	if err := s.signals.RemoveSaved(r.Context(), user, id, contentType); err != nil {
		log.Printf("[ERROR] failed to remove saved item: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	s.recommender.InvalidateProfile(user)

	renderJSON(w, r, http.StatusOK, map[string]string{"status": "removed"})
}

// linkSessionHandler stores the user's catalog account-link token
func (s *Server) linkSessionHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Session string `json:"session"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if req.Session == "" {
		renderError(w, r, fmt.Errorf("session is required"), http.StatusBadRequest)
		return
	}

	if err := s.sessions.SetCatalogSession(r.Context(), userID(r), req.Session); err != nil {
		log.Printf("[ERROR] failed to link catalog session: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]string{"status": "linked"})
}

// unlinkSessionHandler removes the user's catalog account-link token
func (s *Server) unlinkSessionHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.ClearCatalogSession(r.Context(), userID(r)); err != nil {
		log.Printf("[ERROR] failed to unlink catalog session: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]string{"status": "unlinked"})
}
