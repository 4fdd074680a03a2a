package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sqliteviz/internal/database"
	"sqliteviz/internal/generators"
	"sqliteviz/pkg/config"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	cfg     config.Config
)

var errNoDatabase = errors.New("please pass an sqlite database file as the first argument")

var rootCmd = &cobra.Command{
	Use:   "sqliteviz <database>",
	Short: "Render a SQLite schema as a Graphviz graph",
	Long: `Reads the catalog of a SQLite database (tables, columns and foreign keys)
and writes a Graphviz DOT digraph describing it to standard output.

Examples:
  sqliteviz app.db | dot -Tsvg > schema.svg
  sqliteviz app.db -e audit_log -o schema.dot
  sqliteviz sqlite:///var/data/app.db -f mermaid`,
	Args:         databaseArg,
	RunE:         runSchemaViz,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.sqliteviz.yaml)")
	rootCmd.Flags().StringP("format", "f", "graphviz", "Output format: graphviz, mermaid, plantuml")
	rootCmd.Flags().StringP("output", "o", "", "Output file path (default: standard output)")
	rootCmd.Flags().StringSliceP("exclude-tables", "e", []string{}, "Tables to exclude from visualization")
	rootCmd.Flags().StringSliceP("include-tables", "i", []string{}, "Only include these tables (if specified)")

	bindConfig()
}

// bindConfig wires flags and defaults into the global viper instance.
func bindConfig() {
	viper.BindPFlag("output.format", rootCmd.Flags().Lookup("format"))
	viper.BindPFlag("output.file", rootCmd.Flags().Lookup("output"))
	viper.BindPFlag("schema.exclude_tables", rootCmd.Flags().Lookup("exclude-tables"))
	viper.BindPFlag("schema.include_tables", rootCmd.Flags().Lookup("include-tables"))

	defaults := generators.DefaultGraphvizOptions()
	viper.SetDefault("graphviz.rankdir", defaults.RankDir)
	viper.SetDefault("graphviz.primary_color", defaults.PrimaryColor)
	viper.SetDefault("graphviz.nullable_color", defaults.NullableColor)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".sqliteviz")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("SQLITEVIZ")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Using config file:", viper.ConfigFileUsed())
	}
}

func databaseArg(cmd *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		return errNoDatabase
	case 1:
		return nil
	default:
		return fmt.Errorf("accepts 1 database file, received %d arguments", len(args))
	}
}

func runSchemaViz(cmd *cobra.Command, args []string) error {
	cfg = config.Config{}
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := generators.ValidateFormat(cfg.Output.Format); err != nil {
		return err
	}

	// The connection is closed before rendering starts.
	schema, err := database.LoadSchema(cmd.Context(), database.DatabasePath(args[0]), cfg.Schema)
	if err != nil {
		return err
	}

	content, err := generators.Generate(cfg.Output.Format, schema, generators.GraphvizOptions{
		RankDir:       cfg.Graphviz.RankDir,
		PrimaryColor:  cfg.Graphviz.PrimaryColor,
		NullableColor: cfg.Graphviz.NullableColor,
	})
	if err != nil {
		return err
	}

	if cfg.Output.File == "" || cfg.Output.File == "-" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), content)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Output.File), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := os.WriteFile(cfg.Output.File, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Schema visualization generated: %s\n", cfg.Output.File)
	fmt.Fprintf(cmd.ErrOrStderr(), "Tables: %d\n", len(schema.Tables))
	fmt.Fprintf(cmd.ErrOrStderr(), "Relationships: %d\n", schema.ForeignKeyCount())

	return nil
}
