package generators

import (
	"fmt"
	"sqliteviz/internal/schema"
	"strings"
)

func GenerateMermaid(s *schema.Schema) string {
	var builder strings.Builder

	builder.WriteString("# Database Schema Diagram\n\n")
	builder.WriteString("```mermaid\nerDiagram\n")

	for _, table := range s.Tables {
		builder.WriteString(fmt.Sprintf("    %s {\n", cleanTableName(table.Name)))

		for _, col := range table.Columns {
			keyStr := ""
			if col.Primary {
				keyStr = " PK"
			} else if !col.Nullable {
				keyStr = ` "NOT NULL"`
			}

			builder.WriteString(fmt.Sprintf("        %s %s%s\n", formatMermaidType(col), cleanTableName(col.Name), keyStr))
		}

		builder.WriteString("    }\n")
	}

	for _, table := range s.Tables {
		for _, fk := range table.ForeignKeys {
			builder.WriteString(fmt.Sprintf("    %s ||--o{ %s : \"%s\"\n",
				cleanTableName(fk.TargetTable),
				cleanTableName(fk.SourceTable),
				mermaidLabel(fk.SourceColumn)))
		}
	}

	builder.WriteString("```\n\n")
	builder.WriteString(fmt.Sprintf("Total Tables: %d\n", len(s.Tables)))
	builder.WriteString(fmt.Sprintf("Total Foreign Keys: %d\n", s.ForeignKeyCount()))

	return builder.String()
}

// Mermaid attribute types are single words, so declared types such as
// "VARCHAR(20)" or "UNSIGNED BIG INT" are folded into one token.
func formatMermaidType(col schema.Column) string {
	if col.Type == "" {
		return "any"
	}
	typ := strings.ToLower(col.Type)
	typ = strings.NewReplacer("(", "_", ")", "", ",", "_", " ", "_").Replace(typ)
	return typ
}

func cleanTableName(name string) string {
	name = strings.ReplaceAll(name, "-", "_")
	name = strings.ReplaceAll(name, ".", "_")
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ReplaceAll(name, `"`, "_")
	return name
}

// Mermaid quoted strings have no backslash escape; it uses entity codes.
func mermaidLabel(s string) string {
	return strings.ReplaceAll(s, `"`, "#quot;")
}
