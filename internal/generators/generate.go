package generators

import (
	"fmt"
	"sqliteviz/internal/schema"
	"strings"
)

var Formats = []string{"graphviz", "mermaid", "plantuml"}

// Generate renders s in the named format. "dot" is accepted for graphviz.
func Generate(format string, s *schema.Schema, opts GraphvizOptions) (string, error) {
	if err := ValidateFormat(format); err != nil {
		return "", err
	}

	switch strings.ToLower(format) {
	case "graphviz", "dot", "":
		return GenerateGraphviz(s, opts), nil
	case "mermaid":
		return GenerateMermaid(s), nil
	default:
		return GeneratePlantUML(s), nil
	}
}

func ValidateFormat(format string) error {
	switch strings.ToLower(format) {
	case "graphviz", "dot", "", "mermaid", "plantuml":
		return nil
	}
	return fmt.Errorf("invalid format '%s'. Valid formats: %s", format, strings.Join(Formats, ", "))
}
