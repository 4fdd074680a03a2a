package generators

import (
	"fmt"
	"sqliteviz/internal/schema"
	"strings"
)

func GeneratePlantUML(s *schema.Schema) string {
	var builder strings.Builder

	builder.WriteString("@startuml\n")
	builder.WriteString("!theme plain\n")
	builder.WriteString("skinparam linetype ortho\n\n")

	for _, table := range s.Tables {
		builder.WriteString(fmt.Sprintf("entity \"%s\" as %s {\n", plantUMLLabel(table.Name), cleanTableName(table.Name)))

		for _, col := range table.Columns {
			if col.Primary {
				builder.WriteString(fmt.Sprintf("  * %s : %s <<PK>>\n", col.Name, formatPlantUMLType(col)))
			}
		}

		builder.WriteString("  --\n")

		for _, col := range table.Columns {
			if !col.Primary {
				nullStr := ""
				if !col.Nullable {
					nullStr = " <<NOT NULL>>"
				}
				builder.WriteString(fmt.Sprintf("  %s : %s%s\n", col.Name, formatPlantUMLType(col), nullStr))
			}
		}

		builder.WriteString("}\n\n")
	}

	for _, table := range s.Tables {
		for _, fk := range table.ForeignKeys {
			builder.WriteString(fmt.Sprintf("%s ||--o{ %s : %s\n",
				cleanTableName(fk.TargetTable),
				cleanTableName(fk.SourceTable),
				fk.SourceColumn))
		}
	}

	builder.WriteString("\n@enduml\n")

	return builder.String()
}

func formatPlantUMLType(col schema.Column) string {
	if col.Type == "" {
		return "ANY"
	}
	return strings.ToUpper(col.Type)
}

// PlantUML strings cannot hold a bare double quote; <U+0022> renders as one.
func plantUMLLabel(s string) string {
	return strings.ReplaceAll(s, `"`, "<U+0022>")
}
