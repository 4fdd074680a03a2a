package database

import (
	"database/sql"
	"sqliteviz/internal/schema"
)

// Row decoders mirror the catalog's result shape. The domain types are built
// from them by the pure conversions below.

type scanner interface {
	Scan(dest ...any) error
}

type tableRow struct {
	name string
}

func (r *tableRow) scan(s scanner) error {
	return s.Scan(&r.name)
}

type columnRow struct {
	name         string
	typ          sql.NullString
	notNull      bool
	pk           int64
	defaultValue sql.NullString
}

func (r *columnRow) scan(s scanner) error {
	return s.Scan(&r.name, &r.typ, &r.notNull, &r.pk, &r.defaultValue)
}

// pk is the 1-based position within the primary key, 0 for other columns.
func (r columnRow) column() schema.Column {
	col := schema.Column{
		Name:     r.name,
		Type:     r.typ.String,
		Nullable: !r.notNull,
		Primary:  r.pk != 0,
	}
	if r.defaultValue.Valid {
		v := r.defaultValue.String
		col.Default = &v
	}
	return col
}

type foreignKeyRow struct {
	table string
	to    sql.NullString
	from  string
}

func (r *foreignKeyRow) scan(s scanner) error {
	return s.Scan(&r.table, &r.to, &r.from)
}

func (r foreignKeyRow) foreignKey(source string) schema.ForeignKey {
	fk := schema.ForeignKey{
		SourceTable:  source,
		SourceColumn: r.from,
		TargetTable:  r.table,
	}
	if r.to.Valid {
		v := r.to.String
		fk.TargetColumn = &v
	}
	return fk
}
