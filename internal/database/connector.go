package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sqliteviz/internal/schema"
	"sqliteviz/pkg/config"
	"strings"
)

// Connector owns the single read-only connection used for one load.
type Connector struct {
	db *sql.DB
}

// NewConnector opens the SQLite file at path read-only. It fails before any
// catalog query when the file is missing or is not a SQLite database.
func NewConnector(ctx context.Context, path string) (*Connector, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	dsn, err := ReadOnlyDSN(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db, err := sql.Open(DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Opening is lazy; reading the header is what rejects non-database files.
	var version int64
	if err := db.QueryRowContext(ctx, "PRAGMA schema_version").Scan(&version); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &Connector{db: db}, nil
}

func (c *Connector) Close() error {
	return c.db.Close()
}

func (c *Connector) ExtractSchema(ctx context.Context, cfg config.SchemaConfig) (*schema.Schema, error) {
	return NewSQLiteExtractor(c.db).ExtractSchema(ctx, cfg)
}

// LoadSchema opens path, loads its schema and releases the connection
// before returning.
func LoadSchema(ctx context.Context, path string, cfg config.SchemaConfig) (*schema.Schema, error) {
	connector, err := NewConnector(ctx, path)
	if err != nil {
		return nil, err
	}
	defer connector.Close()

	return connector.ExtractSchema(ctx, cfg)
}

// ReadOnlyDSN builds a file: URI that opens path read-only. The path is made
// absolute and percent-escaped, so '#', '?' and '%' in file names can neither
// end the path early nor drop mode=ro.
func ReadOnlyDSN(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	abs = filepath.ToSlash(abs)
	if !strings.HasPrefix(abs, "/") {
		abs = "/" + abs
	}
	u := &url.URL{Scheme: "file", Path: abs, RawQuery: "mode=ro"}
	return u.String(), nil
}

// DatabasePath accepts either a plain file path or a sqlite:// URL.
func DatabasePath(arg string) string {
	for _, scheme := range []string{"sqlite3://", "sqlite://"} {
		if strings.HasPrefix(arg, scheme) {
			return strings.TrimPrefix(arg, scheme)
		}
	}
	return arg
}
