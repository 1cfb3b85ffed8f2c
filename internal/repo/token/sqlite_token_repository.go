package token

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/mkrupp/hirepulse-client/internal/domain"
	"github.com/mkrupp/hirepulse-client/internal/infra/logging"
)

// SQLiteConfig holds configuration for the SQLite token repository.
type SQLiteConfig struct {
	// DatabasePath is the filesystem path to the SQLite database file
	DatabasePath string `env:"DATABASE_PATH" default:"var/storage/hirepulse.db"`
}

// SQLiteRepository implements Repository on a single-row key/value table.
type SQLiteRepository struct {
	db        *sql.DB
	log       logging.Logger
	writeLock *sync.Mutex // go-sqlite does not support concurrent writes
}

var _ Repository = (*SQLiteRepository)(nil)

// SQLiteRepositoryFactory creates a factory function that returns a new SQLiteRepository.
func SQLiteRepositoryFactory(cfg SQLiteConfig) RepositoryFactory {
	return func(ctx context.Context) (Repository, error) {
		return NewSQLiteRepository(ctx, cfg)
	}
}

// NewSQLiteRepository opens the database at cfg.DatabasePath, creating the
// file, its directory and the schema as needed.
func NewSQLiteRepository(ctx context.Context, cfg SQLiteConfig) (*SQLiteRepository, error) {
	log := logging.GetLogger("repo.token.sqlite_token_repository").With(
		logging.Group("db", "path", cfg.DatabasePath),
	)

	if dir := filepath.Dir(cfg.DatabasePath); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	// busy_timeout is applied per connection through the DSN
	db, err := sql.Open("sqlite", cfg.DatabasePath+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("ping db: %w", err)
	}

	if err := initializeDB(ctx, db); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("initialize db: %w", err)
	}

	db.SetConnMaxLifetime(5 * time.Minute)

	log.DebugContext(ctx, "token storage opened")

	return &SQLiteRepository{
		db:        db,
		log:       log,
		writeLock: new(sync.Mutex),
	}, nil
}

func initializeDB(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS client_storage (
			key        TEXT    PRIMARY KEY,
			value      TEXT    NOT NULL,
			updated_at INTEGER NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	return nil
}

// GetToken implements Repository.GetToken.
func (r *SQLiteRepository) GetToken(ctx context.Context) (string, bool, error) {
	var token string

	err := r.db.QueryRowContext(ctx,
		"SELECT value FROM client_storage WHERE key = ?",
		domain.AuthTokenKey,
	).Scan(&token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}

		return "", false, fmt.Errorf("query token: %w", withCode(err))
	}

	return token, token != "", nil
}

// StoreToken implements Repository.StoreToken.
func (r *SQLiteRepository) StoreToken(ctx context.Context, token string) error {
	r.writeLock.Lock()
	defer r.writeLock.Unlock()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO client_storage (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, domain.AuthTokenKey, token, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("upsert token: %w", withCode(err))
	}

	r.log.DebugContext(ctx, "token stored")

	return nil
}

// ClearToken implements Repository.ClearToken.
func (r *SQLiteRepository) ClearToken(ctx context.Context) error {
	r.writeLock.Lock()
	defer r.writeLock.Unlock()

	if _, err := r.db.ExecContext(ctx,
		"DELETE FROM client_storage WHERE key = ?",
		domain.AuthTokenKey,
	); err != nil {
		return fmt.Errorf("delete token: %w", withCode(err))
	}

	r.log.DebugContext(ctx, "token cleared")

	return nil
}

// Close implements Repository.Close by closing the database connection.
func (r *SQLiteRepository) Close() error {
	if err := r.db.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}

	return nil
}

// ErrStorageLocked is joined into errors caused by a busy or locked database.
var ErrStorageLocked = errors.New("token storage is locked")

func withCode(err error) error {
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() & 0xff {
		case sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED:
			return errors.Join(ErrStorageLocked, err)
		}
	}

	return err
}
