// Package sqlstore implements the document store over database/sql for
// SQLite and MySQL.
package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"

	"github.com/Rrens/kopiloka/internal/store"
)

// dialect holds the statements that differ between engines
type dialect struct {
	driver string
	schema string
	upsert string
	get    string
	delete string
}

var sqliteDialect = dialect{
	driver: "sqlite",
	schema: `CREATE TABLE IF NOT EXISTS documents (
		doc_key    TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	upsert: `INSERT INTO documents (doc_key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(doc_key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
	get:    `SELECT value FROM documents WHERE doc_key = ?`,
	delete: `DELETE FROM documents WHERE doc_key = ?`,
}

var mysqlDialect = dialect{
	driver: "mysql",
	schema: `CREATE TABLE IF NOT EXISTS documents (
		doc_key    VARCHAR(191) NOT NULL PRIMARY KEY,
		value      LONGTEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	) DEFAULT CHARSET = utf8mb4`,
	upsert: `INSERT INTO documents (doc_key, value) VALUES (?, ?)
		ON DUPLICATE KEY UPDATE value = VALUES(value)`,
	get:    `SELECT value FROM documents WHERE doc_key = ?`,
	delete: `DELETE FROM documents WHERE doc_key = ?`,
}

// Store implements domain.DocumentStore on a documents table
type Store struct {
	db      *sql.DB
	dialect dialect
}

// OpenSQLite opens (creating if needed) the SQLite database at path.
// ":memory:" gives a private in-memory database.
func OpenSQLite(ctx context.Context, path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite database path is required")
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	if path == ":memory:" {
		dsn = ":memory:"
	}

	db, err := sql.Open(sqliteDialect.driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite only supports one writer
	db.SetMaxIdleConns(1)

	return open(ctx, db, sqliteDialect)
}

// OpenMySQL connects to MySQL with a go-sql-driver DSN
func OpenMySQL(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("mysql dsn is required")
	}

	db, err := sql.Open(mysqlDialect.driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	return open(ctx, db, mysqlDialect)
}

func open(ctx context.Context, db *sql.DB, d dialect) (*Store, error) {
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.ExecContext(ctx, d.schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create documents table: %w", err)
	}

	return &Store{db: db, dialect: d}, nil
}

func (s *Store) Get(ctx context.Context, key string, dst any) (bool, error) {
	if err := store.CheckKey(key); err != nil {
		return false, err
	}
	var data string
	err := s.db.QueryRowContext(ctx, s.dialect.get, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get document %q: %w", key, err)
	}

	if err := json.Unmarshal([]byte(data), dst); err != nil {
		return false, fmt.Errorf("failed to decode document %q: %w", key, err)
	}
	return true, nil
}

func (s *Store) Put(ctx context.Context, key string, value any) error {
	if err := store.CheckKey(key); err != nil {
		return err
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode document %q: %w", key, err)
	}

	if _, err := s.db.ExecContext(ctx, s.dialect.upsert, key, string(data)); err != nil {
		return fmt.Errorf("failed to put document %q: %w", key, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := store.CheckKey(key); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, s.dialect.delete, key); err != nil {
		return fmt.Errorf("failed to delete document %q: %w", key, err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Driver returns the database/sql driver name in use
func (s *Store) Driver() string {
	return s.dialect.driver
}
