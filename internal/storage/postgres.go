package storage

import (
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	_ "github.com/lib/pq"
)

// PostgresStore keeps the posted ledger in PostgreSQL, for deployments
// where the filesystem does not survive restarts.
type PostgresStore struct {
	db *sql.DB
}

func OpenPostgresStore(connectionString string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	ps := &PostgresStore{db: db}
	if err := ps.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	slog.Info("postgres store connected")
	return ps, nil
}

func (ps *PostgresStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS posted_links (
		url TEXT PRIMARY KEY,
		posted_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS posted_content_hashes (
		hash VARCHAR(32) PRIMARY KEY,
		posted_at TIMESTAMP NOT NULL DEFAULT NOW()
	);
	`
	_, err := ps.db.Exec(schema)
	return err
}

func (ps *PostgresStore) HasURL(url string) (bool, error) {
	var exists bool
	err := ps.db.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM posted_links WHERE url = $1)",
		strings.TrimSpace(url),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("query posted links: %w", err)
	}
	return exists, nil
}

func (ps *PostgresStore) HasFingerprint(fingerprint string) (bool, error) {
	var exists bool
	err := ps.db.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM posted_content_hashes WHERE hash = $1)",
		fingerprint,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("query content hashes: %w", err)
	}
	return exists, nil
}

func (ps *PostgresStore) Record(url, title string) error {
	tx, err := ps.db.Begin()
	if err != nil {
		return fmt.Errorf("begin record tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		"INSERT INTO posted_links (url) VALUES ($1) ON CONFLICT DO NOTHING",
		strings.TrimSpace(url),
	); err != nil {
		return fmt.Errorf("record posted link: %w", err)
	}
	if _, err := tx.Exec(
		"INSERT INTO posted_content_hashes (hash) VALUES ($1) ON CONFLICT DO NOTHING",
		Fingerprint(title),
	); err != nil {
		return fmt.Errorf("record content hash: %w", err)
	}

	return tx.Commit()
}

func (ps *PostgresStore) Close() error {
	return ps.db.Close()
}
