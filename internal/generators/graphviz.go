package generators

import (
	"fmt"
	"html"
	"regexp"
	"sqliteviz/internal/schema"
	"strings"
)

type GraphvizOptions struct {
	RankDir       string
	PrimaryColor  string
	NullableColor string
}

func DefaultGraphvizOptions() GraphvizOptions {
	return GraphvizOptions{
		RankDir:       "LR",
		PrimaryColor:  "#2aa198",
		NullableColor: "#6c71c4",
	}
}

// GenerateGraphviz renders s as a DOT digraph with one HTML-like table node
// per table and one edge per foreign key. Each column's type cell is a port
// named after the column; edges leave that port and point at the target
// table node as a whole.
func GenerateGraphviz(s *schema.Schema, opts GraphvizOptions) string {
	opts = opts.withDefaults()

	var builder strings.Builder

	builder.WriteString("digraph {\n")
	builder.WriteString(fmt.Sprintf("rankdir=%s;\n", opts.RankDir))

	for _, table := range s.Tables {
		writeGraphvizTable(&builder, table, opts)
	}

	builder.WriteString("}\n")

	return builder.String()
}

func writeGraphvizTable(builder *strings.Builder, table schema.Table, opts GraphvizOptions) {
	builder.WriteString(fmt.Sprintf("%s [shape=plaintext label=< <table border='0' cellborder='1' cellspacing='0' cellpadding='5'>\n", nodeID(table.Name)))
	builder.WriteString(fmt.Sprintf("<tr><td border='0'></td><td colspan='2'><b>%s</b></td></tr>\n", html.EscapeString(table.Name)))

	for _, col := range table.Columns {
		name := html.EscapeString(col.Name)
		builder.WriteString(fmt.Sprintf("<tr><td%s width='16'></td><td>%s</td><td port='%s'>%s</td></tr>\n",
			markerAttr(col, opts),
			name,
			name,
			html.EscapeString(col.Type)))
	}

	builder.WriteString("</table> >];\n")

	for _, fk := range table.ForeignKeys {
		builder.WriteString(fmt.Sprintf("%s:%s -> %s;\n",
			nodeID(fk.SourceTable),
			nodeID(fk.SourceColumn),
			nodeID(fk.TargetTable)))
	}
}

func markerAttr(col schema.Column, opts GraphvizOptions) string {
	switch col.Marker() {
	case schema.MarkerPrimary:
		return fmt.Sprintf(" bgcolor='%s'", opts.PrimaryColor)
	case schema.MarkerNullable:
		return fmt.Sprintf(" bgcolor='%s'", opts.NullableColor)
	default:
		return ""
	}
}

func (o GraphvizOptions) withDefaults() GraphvizOptions {
	def := DefaultGraphvizOptions()
	if o.RankDir == "" {
		o.RankDir = def.RankDir
	}
	if o.PrimaryColor == "" {
		o.PrimaryColor = def.PrimaryColor
	}
	if o.NullableColor == "" {
		o.NullableColor = def.NullableColor
	}
	return o
}

var plainID = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// nodeID quotes names that are not plain DOT identifiers instead of
// rewriting them, so the rendered name stays exactly the catalog name.
func nodeID(name string) string {
	if plainID.MatchString(name) && !isKeyword(name) {
		return name
	}
	return `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(name) + `"`
}

func isKeyword(name string) bool {
	switch strings.ToLower(name) {
	case "node", "edge", "graph", "digraph", "subgraph", "strict":
		return true
	}
	return false
}
