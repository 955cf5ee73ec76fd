package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/passmint/passmint-go/internal/model"
)

var ErrPreferencesNotFound = errors.New("preferences not found")

// PreferencesRepository persists each account's saved generator
// configuration, one row per account.
type PreferencesRepository struct {
	db *sql.DB
}

// NewPreferencesRepository creates a new PreferencesRepository.
func NewPreferencesRepository(db *sql.DB) *PreferencesRepository {
	return &PreferencesRepository{db: db}
}

// Upsert inserts or replaces the account's saved configuration.
func (r *PreferencesRepository) Upsert(ctx context.Context, prefs *model.Preferences) error {
	query := `
		INSERT INTO preferences (user_id, length, uppercase, lowercase, digits, symbols)
		VALUES (?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			length    = VALUES(length),
			uppercase = VALUES(uppercase),
			lowercase = VALUES(lowercase),
			digits    = VALUES(digits),
			symbols   = VALUES(symbols)`

	_, err := r.db.ExecContext(ctx, query,
		prefs.UserID,
		prefs.Length,
		prefs.Uppercase,
		prefs.Lowercase,
		prefs.Digits,
		prefs.Symbols,
	)
	return err
}

// Get retrieves the account's saved configuration.
func (r *PreferencesRepository) Get(ctx context.Context, userID int64) (*model.Preferences, error) {
	query := `SELECT user_id, length, uppercase, lowercase, digits, symbols, updated_at
		FROM preferences WHERE user_id = ?`

	prefs := &model.Preferences{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&prefs.UserID, &prefs.Length, &prefs.Uppercase, &prefs.Lowercase,
		&prefs.Digits, &prefs.Symbols, &prefs.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPreferencesNotFound
		}
		return nil, err
	}

	return prefs, nil
}
