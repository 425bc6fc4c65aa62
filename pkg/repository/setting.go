package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// SettingCatalogSession is the per-user key holding the catalog account-link token
const SettingCatalogSession = "catalog_session"

// SettingRepository handles per-user setting operations
type SettingRepository struct {
	db *sqlx.DB
}

// NewSettingRepository creates a new setting repository
func NewSettingRepository(db *sqlx.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// GetSetting retrieves a setting value, empty string if not set
func (r *SettingRepository) GetSetting(ctx context.Context, userID, key string) (string, error) {
	var value string
	err := r.db.GetContext(ctx, &value,
		"SELECT value FROM settings WHERE user_id = ? AND key = ?", userID, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get setting: %w", err)
	}
	return value, nil
}

// SetSetting stores a setting value
func (r *SettingRepository) SetSetting(ctx context.Context, userID, key, value string) error {
	query := `
		INSERT INTO settings (user_id, key, value, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	if _, err := r.db.ExecContext(ctx, query, userID, key, value, time.Now().UTC()); err != nil {
		return fmt.Errorf("set setting: %w", err)
	}
	return nil
}

// CatalogSession returns the user's catalog account-link token, empty if not linked
func (r *SettingRepository) CatalogSession(ctx context.Context, userID string) (string, error) {
	return r.GetSetting(ctx, userID, SettingCatalogSession)
}

// SetCatalogSession stores the user's catalog account-link token
func (r *SettingRepository) SetCatalogSession(ctx context.Context, userID, token string) error {
	return r.SetSetting(ctx, userID, SettingCatalogSession, token)
}

// ClearCatalogSession removes the user's catalog account-link token
func (r *SettingRepository) ClearCatalogSession(ctx context.Context, userID string) error {
	return r.DeleteSetting(ctx, userID, SettingCatalogSession)
}

// DeleteSetting removes a setting
func (r *SettingRepository) DeleteSetting(ctx context.Context, userID, key string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM settings WHERE user_id = ? AND key = ?", userID, key); err != nil {
		return fmt.Errorf("delete setting: %w", err)
	}
	return nil
}
