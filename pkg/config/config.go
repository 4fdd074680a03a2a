package config

import "strings"

type Config struct {
	Output   OutputConfig   `mapstructure:"output"`
	Schema   SchemaConfig   `mapstructure:"schema"`
	Graphviz GraphvizConfig `mapstructure:"graphviz"`
}

type OutputConfig struct {
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

type SchemaConfig struct {
	ExcludeTables []string `mapstructure:"exclude_tables"`
	IncludeTables []string `mapstructure:"include_tables"`
}

type GraphvizConfig struct {
	RankDir       string `mapstructure:"rankdir"`
	PrimaryColor  string `mapstructure:"primary_color"`
	NullableColor string `mapstructure:"nullable_color"`
}

// Keep reports whether a table survives the include/exclude filters.
// Names are compared case-insensitively, as SQLite does.
func (c SchemaConfig) Keep(table string) bool {
	if len(c.IncludeTables) > 0 && !contains(c.IncludeTables, table) {
		return false
	}
	return !contains(c.ExcludeTables, table)
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if strings.EqualFold(s, item) {
			return true
		}
	}
	return false
}
