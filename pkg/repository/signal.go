package repository

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/reelscope/pkg/domain"
)

// defaultHistoryCap bounds the consumption log per user so profile builds stay cheap
const defaultHistoryCap = 500

// SignalRepository handles viewing-signal database operations.
// All rows are scoped by user id, there is no cross-user visibility.
type SignalRepository struct {
	db         *sqlx.DB
	historyCap int
}

// NewSignalRepository creates a new signal repository
func NewSignalRepository(database *sqlx.DB, historyCap int) *SignalRepository {
	if historyCap <= 0 {
		historyCap = defaultHistoryCap
	}
	return &SignalRepository{db: database, historyCap: historyCap}
}

// consumptionSQL represents a consumption record for SQL operations
type consumptionSQL struct {
	UserID        string    `db:"user_id"`
	ContentID     int64     `db:"content_id"`
	ContentType   string    `db:"content_type"`
	Title         string    `db:"title"`
	GenreIDs      genresSQL `db:"genre_ids"`
	Rating        float64   `db:"rating"`
	ConsumedAt    time.Time `db:"consumed_at"`
	UserRating    *float64  `db:"user_rating"`
	CompletionPct *float64  `db:"completion_pct"`
}

// savedItemSQL represents a saved item for SQL operations
type savedItemSQL struct {
	UserID      string    `db:"user_id"`
	ContentID   int64     `db:"content_id"`
	ContentType string    `db:"content_type"`
	Title       string    `db:"title"`
	GenreIDs    genresSQL `db:"genre_ids"`
	AddedAt     time.Time `db:"added_at"`
	Priority    string    `db:"priority"`
}

// genresSQL is a JSON array of genre ids for SQL operations
type genresSQL []int64

// Value implements driver.Valuer for database storage
func (g genresSQL) Value() (driver.Value, error) {
	if g == nil {
		return "[]", nil
	}
	return json.Marshal(g)
}

// Scan implements sql.Scanner for database retrieval
func (g *genresSQL) Scan(value interface{}) error {
	if value == nil {
		*g = genresSQL{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return json.Unmarshal([]byte("[]"), g)
	}

	return json.Unmarshal(data, g)
}

// UpsertConsumption records a watched title. Repeated marks of the same
// (content_id, content_type) update the row in place: consumed_at always moves
// forward, while an omitted user rating or completion keeps the stored value.
// Oldest rows past the history cap are evicted after the write.
func (r *SignalRepository) UpsertConsumption(ctx context.Context, userID string, rec *domain.ConsumptionRecord) error {
	if !rec.ContentType.Valid() {
		return fmt.Errorf("invalid content type %q", rec.ContentType)
	}

	sqlRec := &consumptionSQL{
		UserID:        userID,
		ContentID:     rec.ContentID,
		ContentType:   string(rec.ContentType),
		Title:         rec.Title,
		GenreIDs:      genresSQL(rec.GenreIDs),
		Rating:        rec.Rating,
		ConsumedAt:    rec.ConsumedAt,
		UserRating:    rec.UserRating,
		CompletionPct: rec.CompletionPct,
	}
	if sqlRec.ConsumedAt.IsZero() {
		sqlRec.ConsumedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO consumption (
			user_id, content_id, content_type, title, genre_ids,
			rating, consumed_at, user_rating, completion_pct
		) VALUES (
			:user_id, :content_id, :content_type, :title, :genre_ids,
			:rating, :consumed_at, :user_rating, :completion_pct
		)
		ON CONFLICT(user_id, content_id, content_type) DO UPDATE SET
			title = excluded.title,
			genre_ids = excluded.genre_ids,
			rating = excluded.rating,
			consumed_at = excluded.consumed_at,
			user_rating = COALESCE(excluded.user_rating, consumption.user_rating),
			completion_pct = COALESCE(excluded.completion_pct, consumption.completion_pct)
	`

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err := retrier.Do(ctx, func() error {
		if _, err := r.db.NamedExecContext(ctx, query, sqlRec); err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("upsert consumption: %w", err)}
		}
		return nil
	})
	if err != nil {
		return err
	}

	return r.trimHistory(ctx, userID)
}

// trimHistory evicts the oldest consumption rows past the per-user cap
func (r *SignalRepository) trimHistory(ctx context.Context, userID string) error {
	query := `
		DELETE FROM consumption
		WHERE user_id = ? AND rowid NOT IN (
			SELECT rowid FROM consumption
			WHERE user_id = ?
			ORDER BY consumed_at DESC, rowid DESC
			LIMIT ?
		)
	`
	if _, err := r.db.ExecContext(ctx, query, userID, userID, r.historyCap); err != nil {
		return fmt.Errorf("trim history: %w", err)
	}
	return nil
}

// SaveItem adds a title to the watchlist, idempotent on repeat adds
func (r *SignalRepository) SaveItem(ctx context.Context, userID string, item *domain.SavedItem) error {
	if !item.ContentType.Valid() {
		return fmt.Errorf("invalid content type %q", item.ContentType)
	}
	if !item.Priority.Valid() {
		return fmt.Errorf("invalid priority %q", item.Priority)
	}

	sqlItem := &savedItemSQL{
		UserID:      userID,
		ContentID:   item.ContentID,
		ContentType: string(item.ContentType),
		Title:       item.Title,
		GenreIDs:    genresSQL(item.GenreIDs),
		AddedAt:     item.AddedAt,
		Priority:    string(item.Priority),
	}
	if sqlItem.AddedAt.IsZero() {
		sqlItem.AddedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO saved_items (
			user_id, content_id, content_type, title, genre_ids, added_at, priority
		) VALUES (
			:user_id, :content_id, :content_type, :title, :genre_ids, :added_at, :priority
		)
		ON CONFLICT(user_id, content_id, content_type) DO NOTHING
	`

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		if _, err := r.db.NamedExecContext(ctx, query, sqlItem); err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("save item: %w", err)}
		}
		return nil
	})
}

// RemoveSaved deletes a watchlist entry by identity key
func (r *SignalRepository) RemoveSaved(ctx context.Context, userID string, contentID int64, contentType domain.ContentType) error {
	query := "DELETE FROM saved_items WHERE user_id = ? AND content_id = ? AND content_type = ?"
	if _, err := r.db.ExecContext(ctx, query, userID, contentID, string(contentType)); err != nil {
		return fmt.Errorf("remove saved item: %w", err)
	}
	return nil
}

// ListConsumption returns the user's consumption log, newest first
func (r *SignalRepository) ListConsumption(ctx context.Context, userID string) ([]domain.ConsumptionRecord, error) {
	query := `
		SELECT user_id, content_id, content_type, title, genre_ids,
		       rating, consumed_at, user_rating, completion_pct
		FROM consumption
		WHERE user_id = ?
		ORDER BY consumed_at DESC, rowid DESC
	`
	var rows []consumptionSQL
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("list consumption: %w", err)
	}

	records := make([]domain.ConsumptionRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, domain.ConsumptionRecord{
			ContentID:     row.ContentID,
			ContentType:   domain.ContentType(row.ContentType),
			Title:         row.Title,
			GenreIDs:      row.GenreIDs,
			Rating:        row.Rating,
			ConsumedAt:    row.ConsumedAt,
			UserRating:    row.UserRating,
			CompletionPct: row.CompletionPct,
		})
	}
	return records, nil
}

// ListSaved returns the user's watchlist, newest first
func (r *SignalRepository) ListSaved(ctx context.Context, userID string) ([]domain.SavedItem, error) {
	query := `
		SELECT user_id, content_id, content_type, title, genre_ids, added_at, priority
		FROM saved_items
		WHERE user_id = ?
		ORDER BY added_at DESC, rowid DESC
	`
	var rows []savedItemSQL
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("list saved items: %w", err)
	}

	items := make([]domain.SavedItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, domain.SavedItem{
			ContentID:   row.ContentID,
			ContentType: domain.ContentType(row.ContentType),
			Title:       row.Title,
			GenreIDs:    row.GenreIDs,
			AddedAt:     row.AddedAt,
			Priority:    domain.Priority(row.Priority),
		})
	}
	return items, nil
}

// ClearAll removes both signal streams for the user in one transaction.
// Per-user settings (e.g. the catalog session) are left intact.
func (r *SignalRepository) ClearAll(ctx context.Context, userID string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin clear transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.ExecContext(ctx, "DELETE FROM consumption WHERE user_id = ?", userID); err != nil {
		return fmt.Errorf("clear consumption: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM saved_items WHERE user_id = ?", userID); err != nil {
		return fmt.Errorf("clear saved items: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit clear: %w", err)
	}
	return nil
}
