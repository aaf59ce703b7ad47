package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/dkrasnov/notecompass/internal/client/models"
	"github.com/dkrasnov/notecompass/internal/client/session/migrations"
	"github.com/dkrasnov/notecompass/internal/dbx"
)

const (
	keyToken = "token"
	keyUser  = "user"
)

// SQLiteStore keeps the session as key/value rows in a local sqlite file.
type SQLiteStore struct {
	db *sql.DB
}

// Open opens (creating if needed) the session database at dsn and brings
// its schema up to date.
func Open(ctx context.Context, dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}
	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate session db: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Save writes token and user in a single transaction so a crash can never
// leave one without the other.
func (s *SQLiteStore) Save(ctx context.Context, sess models.Session) error {
	userData, err := json.Marshal(sess.User)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := set(ctx, tx, keyToken, []byte(sess.Token)); err != nil {
			return err
		}
		return set(ctx, tx, keyUser, userData)
	})
}

// Load reads the persisted session. A missing token or user yields
// (nil, nil). A user value that fails to parse is treated the same way,
// and the stale rows are cleared.
func (s *SQLiteStore) Load(ctx context.Context) (*models.Session, error) {
	token, err := get(ctx, s.db, keyToken)
	if err != nil {
		return nil, err
	}
	userData, err := get(ctx, s.db, keyUser)
	if err != nil {
		return nil, err
	}
	if token == nil || userData == nil {
		return nil, nil
	}

	var user models.User
	if err := json.Unmarshal(userData, &user); err != nil {
		// Corrupt profile: drop it rather than resurrect a broken session.
		if clearErr := s.Clear(ctx); clearErr != nil {
			return nil, clearErr
		}
		return nil, nil
	}

	return &models.Session{Token: string(token), User: user}, nil
}

// Clear removes every persisted session value.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM session`)
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func get(ctx context.Context, db dbx.DBTX, key string) ([]byte, error) {
	var value []byte
	err := db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session[%s]: %w", key, err)
	}
	return value, nil
}

func set(ctx context.Context, db dbx.DBTX, key string, value []byte) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("set session[%s]: %w", key, err)
	}
	return nil
}
