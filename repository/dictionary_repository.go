package repository

import (
	"context"
	"errors"

	"legalease-backend/dictionary"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// dictionariesSchema uses json rather than jsonb: jsonb reorders object keys
// and dictionary order is significant
const dictionariesSchema = `
CREATE TABLE IF NOT EXISTS dictionaries (
    category VARCHAR(64) PRIMARY KEY,
    payload JSON NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// DictionaryRepository handles database operations for dictionaries
type DictionaryRepository struct {
	db *pgxpool.Pool
}

// NewDictionaryRepository creates a new dictionary repository
func NewDictionaryRepository(db *pgxpool.Pool) *DictionaryRepository {
	return &DictionaryRepository{db: db}
}

// CreateSchema creates the dictionaries table if it does not exist
func (r *DictionaryRepository) CreateSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, dictionariesSchema)
	return err
}

// Get retrieves the payload stored for a category
func (r *DictionaryRepository) Get(ctx context.Context, category string) ([]byte, error) {
	query := `
		SELECT payload::text
		FROM dictionaries
		WHERE category = $1`

	var payload string
	err := r.db.QueryRow(ctx, query, category).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dictionary.ErrNotFound
		}
		return nil, err
	}

	return []byte(payload), nil
}

// Put inserts or replaces the payload for a category
func (r *DictionaryRepository) Put(ctx context.Context, category string, data []byte) error {
	query := `
		INSERT INTO dictionaries (category, payload)
		VALUES ($1, $2::json)
		ON CONFLICT (category) DO UPDATE SET
			payload = EXCLUDED.payload,
			updated_at = NOW()`

	_, err := r.db.Exec(ctx, query, category, string(data))
	return err
}
