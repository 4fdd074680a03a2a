package generators

import (
	"testing"

	"sqliteviz/internal/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDispatch(t *testing.T) {
	s := blogSchema()

	for _, format := range []string{"graphviz", "dot", "DOT"} {
		out, err := Generate(format, s, GraphvizOptions{})
		require.NoError(t, err)
		assert.Equal(t, GenerateGraphviz(s, GraphvizOptions{}), out)
	}

	out, err := Generate("mermaid", s, GraphvizOptions{})
	require.NoError(t, err)
	assert.Equal(t, GenerateMermaid(s), out)

	out, err = Generate("plantuml", s, GraphvizOptions{})
	require.NoError(t, err)
	assert.Equal(t, GeneratePlantUML(s), out)

	_, err = Generate("svg", s, GraphvizOptions{})
	assert.EqualError(t, err, "invalid format 'svg'. Valid formats: graphviz, mermaid, plantuml")
}

func TestGenerateMermaid(t *testing.T) {
	out := GenerateMermaid(blogSchema())

	assert.Contains(t, out, "```mermaid\nerDiagram\n")
	assert.Contains(t, out, "    users {\n        integer id PK\n        text name \"NOT NULL\"\n    }\n")
	assert.Contains(t, out, "        integer author_id\n")
	assert.Contains(t, out, "    users ||--o{ posts : \"author_id\"\n")
	assert.Contains(t, out, "Total Tables: 2\n")
	assert.Contains(t, out, "Total Foreign Keys: 1\n")
}

func TestFormatMermaidType(t *testing.T) {
	assert.Equal(t, "any", formatMermaidType(schema.Column{Type: ""}))
	assert.Equal(t, "varchar_20", formatMermaidType(schema.Column{Type: "VARCHAR(20)"}))
	assert.Equal(t, "unsigned_big_int", formatMermaidType(schema.Column{Type: "UNSIGNED BIG INT"}))
}

func TestGeneratePlantUML(t *testing.T) {
	out := GeneratePlantUML(blogSchema())

	assert.Contains(t, out, "@startuml\n")
	assert.Contains(t, out, "entity \"users\" as users {\n  * id : INTEGER <<PK>>\n  --\n  name : TEXT <<NOT NULL>>\n}\n")
	assert.Contains(t, out, "  author_id : INTEGER\n")
	assert.Contains(t, out, "users ||--o{ posts : author_id\n")
	assert.Contains(t, out, "@enduml\n")
}

func quotedSchema() *schema.Schema {
	return &schema.Schema{Tables: []schema.Table{
		{Name: `say "hi"`, Columns: []schema.Column{{Name: `a"b`, Type: "text", Nullable: true}}},
		{
			Name:    "notes",
			Columns: []schema.Column{{Name: `ref"id`, Type: "integer", Nullable: true}},
			ForeignKeys: []schema.ForeignKey{
				{SourceTable: "notes", SourceColumn: `ref"id`, TargetTable: `say "hi"`},
			},
		},
	}}
}

func TestGenerateMermaidEscapesQuotes(t *testing.T) {
	out := GenerateMermaid(quotedSchema())

	assert.Contains(t, out, "    say__hi_ {\n        text a_b\n    }\n")
	assert.Contains(t, out, "        integer ref_id\n")
	assert.Contains(t, out, "    say__hi_ ||--o{ notes : \"ref#quot;id\"\n")
}

func TestGeneratePlantUMLEscapesQuotes(t *testing.T) {
	out := GeneratePlantUML(quotedSchema())

	assert.Contains(t, out, "entity \"say <U+0022>hi<U+0022>\" as say__hi_ {\n")
	assert.Contains(t, out, "say__hi_ ||--o{ notes : ref\"id\n")
}
