package sqlite

import (
	"context"
	"database/sql"

	_ "modernc.org/sqlite"

	"medtime/internal/errors"
	"medtime/internal/repository/sqlite/migrations"
)

// Persisted state keys. Each value is the JSON encoding of one state slice.
const (
	KeyEntries      = "entries"
	KeyActiveTimer  = "active-timer"
	KeyWorkSchedule = "work-schedule"
)

// Repository defines the interface for the durable local key-value store
// backing the ledger.
type Repository interface {
	// Get returns the stored value for key, with found=false when the key
	// has never been written.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)

	// Put stores value under key, overwriting any previous value. Writes
	// are immediate; there is no batching.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key; deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// Single-writer local store; one connection also keeps in-memory
	// databases coherent across the pool.
	db.SetMaxOpenConns(1)

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// Get retrieves the value stored under key
func (r *SQLiteRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query := `SELECT value FROM state WHERE key = ?`

	var value string
	err := r.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.NewDatabaseError("get "+key, err)
	}
	return []byte(value), true, nil
}

// Put stores value under key, replacing any existing value
func (r *SQLiteRepository) Put(ctx context.Context, key string, value []byte) error {
	query := `
	INSERT INTO state (key, value) VALUES (?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`

	if _, err := r.db.ExecContext(ctx, query, key, string(value)); err != nil {
		return errors.NewDatabaseError("put "+key, err)
	}
	return nil
}

// Delete removes the value stored under key
func (r *SQLiteRepository) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM state WHERE key = ?`

	if _, err := r.db.ExecContext(ctx, query, key); err != nil {
		return errors.NewDatabaseError("delete "+key, err)
	}
	return nil
}
