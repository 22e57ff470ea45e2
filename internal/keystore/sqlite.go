package keystore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/quillsafe/notecrypt/internal/keystore/migrations"
	"github.com/quillsafe/notecrypt/internal/logger"
)

// sqliteKeyStore is the SQLite-backed [SecureKeyStore]. It is the durable
// adapter the notes application ships on platforms without a usable OS
// keychain binding; the database file inherits the app sandbox's access
// control.
type sqliteKeyStore struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewSQLiteKeyStore opens (creating if necessary) the SQLite database at
// dsn, applies pending migrations and returns a durable [SecureKeyStore].
func NewSQLiteKeyStore(ctx context.Context, dsn string, log *logger.Logger) (SecureKeyStore, error) {
	if err := createDBFileIfNotExists(dsn); err != nil {
		log.Err(err).Str("func", "NewSQLiteKeyStore").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file: %w", err)
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewSQLiteKeyStore").Msg("error opening database")
		return nil, fmt.Errorf("error opening connection to key store db: %w", err)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewSQLiteKeyStore").Msg("error connecting database (ping)")
		return nil, err
	}

	if err = migrations.Migrate(conn); err != nil {
		log.Err(err).Str("func", "NewSQLiteKeyStore").Msg("error applying migrations")
		return nil, err
	}
	log.Debug().Str("func", "NewSQLiteKeyStore").Msg("key store database ready")

	return &sqliteKeyStore{db: conn, logger: log}, nil
}

func createDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	return nil
}

// Get implements [SecureKeyStore]. A missing row maps to [ErrKeyNotFound];
// any other failure is wrapped as a low-level database error.
func (s *sqliteKeyStore) Get(ctx context.Context, name string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("value").
		From("secure_keys").
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*sqliteKeyStore.Get").Msg("error building query")
		return "", fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", ErrKeyNotFound
	case err != nil:
		log.Err(err).Str("func", "*sqliteKeyStore.Get").Msg("error scanning row")
		return "", fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	return value, nil
}

// Set implements [SecureKeyStore] as an upsert keyed by name.
func (s *sqliteKeyStore) Set(ctx context.Context, name, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Insert("secure_keys").
		Columns("name", "value", "updated_at").
		Values(name, value, time.Now().UTC()).
		Suffix("ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*sqliteKeyStore.Set").Msg("error building query")
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sqliteKeyStore.Set").Msg("error executing upsert")
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return nil
}

// Delete implements [SecureKeyStore]. Deleting a missing entry is a no-op.
func (s *sqliteKeyStore) Delete(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Delete("secure_keys").
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*sqliteKeyStore.Delete").Msg("error building query")
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sqliteKeyStore.Delete").Msg("error executing delete")
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return nil
}
