package schema

// Schema is the ordered set of tables read from a database catalog. Table
// order is the catalog enumeration order and is never re-sorted.
type Schema struct {
	Tables []Table `json:"tables"`
}

type Table struct {
	Name        string       `json:"name"`
	Columns     []Column     `json:"columns"`
	ForeignKeys []ForeignKey `json:"foreign_keys"`
}

type Column struct {
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Nullable bool    `json:"nullable"`
	Primary  bool    `json:"primary"`
	Default  *string `json:"default,omitempty"`
}

// ForeignKey references TargetTable from SourceTable.SourceColumn.
// TargetColumn is nil when the reference implicitly targets the primary key.
type ForeignKey struct {
	SourceTable  string  `json:"source_table"`
	SourceColumn string  `json:"source_column"`
	TargetTable  string  `json:"target_table"`
	TargetColumn *string `json:"target_column,omitempty"`
}

// Marker classifies a column for highlighting.
type Marker int

const (
	MarkerNone Marker = iota
	MarkerPrimary
	MarkerNullable
)

// Marker returns MarkerPrimary for key columns even when they are nullable.
func (c Column) Marker() Marker {
	switch {
	case c.Primary:
		return MarkerPrimary
	case c.Nullable:
		return MarkerNullable
	default:
		return MarkerNone
	}
}

func (s *Schema) Table(name string) (*Table, bool) {
	for i := range s.Tables {
		if s.Tables[i].Name == name {
			return &s.Tables[i], true
		}
	}
	return nil, false
}

func (s *Schema) ForeignKeyCount() int {
	n := 0
	for _, t := range s.Tables {
		n += len(t.ForeignKeys)
	}
	return n
}

func (t *Table) Column(name string) (*Column, bool) {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i], true
		}
	}
	return nil, false
}

// PrimaryKeys returns the key column names in declaration order.
func (t *Table) PrimaryKeys() []string {
	var keys []string
	for _, c := range t.Columns {
		if c.Primary {
			keys = append(keys, c.Name)
		}
	}
	return keys
}
