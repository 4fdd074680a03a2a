package database

import (
	"context"
	"database/sql"
	"sqliteviz/internal/schema"
	"sqliteviz/pkg/config"
)

// sqlite_sequence backs AUTOINCREMENT and is not part of the user schema.
const tablesQuery = `SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT IN ('sqlite_sequence')`

const columnsQuery = `SELECT name, type, "notnull", pk, dflt_value FROM pragma_table_info(?)`

const foreignKeysQuery = `SELECT "table", "to", "from" FROM pragma_foreign_key_list(?)`

// SQLiteExtractor reads a schema from the SQLite catalog, one table at a
// time: the table list first, then each table's columns and foreign keys.
type SQLiteExtractor struct {
	db *sql.DB
}

func NewSQLiteExtractor(db *sql.DB) *SQLiteExtractor {
	return &SQLiteExtractor{db: db}
}

// Load reads the whole catalog without filtering.
func Load(ctx context.Context, db *sql.DB) (*schema.Schema, error) {
	return NewSQLiteExtractor(db).ExtractSchema(ctx, config.SchemaConfig{})
}

func (s *SQLiteExtractor) ExtractSchema(ctx context.Context, cfg config.SchemaConfig) (*schema.Schema, error) {
	names, err := s.listTables(ctx)
	if err != nil {
		return nil, &QueryError{Op: "tables", Err: err}
	}

	sch := &schema.Schema{Tables: make([]schema.Table, 0, len(names))}
	for _, name := range names {
		if !cfg.Keep(name) {
			continue
		}

		columns, err := s.listColumns(ctx, name)
		if err != nil {
			return nil, &QueryError{Op: "columns", Table: name, Err: err}
		}

		keys, err := s.listForeignKeys(ctx, name)
		if err != nil {
			return nil, &QueryError{Op: "keys", Table: name, Err: err}
		}

		sch.Tables = append(sch.Tables, schema.Table{
			Name:        name,
			Columns:     columns,
			ForeignKeys: keys,
		})
	}

	return sch, nil
}

func (s *SQLiteExtractor) listTables(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, tablesQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var row tableRow
		if err := row.scan(rows); err != nil {
			return nil, err
		}
		names = append(names, row.name)
	}

	return names, rows.Err()
}

func (s *SQLiteExtractor) listColumns(ctx context.Context, table string) ([]schema.Column, error) {
	rows, err := s.db.QueryContext(ctx, columnsQuery, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns := []schema.Column{}
	for rows.Next() {
		var row columnRow
		if err := row.scan(rows); err != nil {
			return nil, err
		}
		columns = append(columns, row.column())
	}

	return columns, rows.Err()
}

func (s *SQLiteExtractor) listForeignKeys(ctx context.Context, table string) ([]schema.ForeignKey, error) {
	rows, err := s.db.QueryContext(ctx, foreignKeysQuery, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []schema.ForeignKey
	for rows.Next() {
		var row foreignKeyRow
		if err := row.scan(rows); err != nil {
			return nil, err
		}
		keys = append(keys, row.foreignKey(table))
	}

	return keys, rows.Err()
}
