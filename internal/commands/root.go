// Package commands contains all CLI command definitions.
package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"kartgen/internal/config"
	"kartgen/internal/schema"
)

// NewRootCmd creates and returns the root command for the CLI. Run without
// a subcommand it behaves like generate.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kartgen [operation]",
		Short: "Generate kart characteristic code from the characteristics schema",
		Long: `kartgen keeps the kart characteristic sources in sync with one schema.

Each operation renders one projection of the schema: the enum, accessor
declarations, getters, type and name switches, or the XML loader. The
update command splices every projection into the marked regions of the
C++ sources.`,
		Example: `  # List operations
  kartgen

  # Print the XML loader code
  kartgen loadXml

  # Rewrite every generated region under ./src
  kartgen update`,
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: initConfig,
		RunE:              runGenerate,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default .kartgen.yaml)")
	flags.BoolP("verbose", "v", false, "verbose output")
	flags.String("source-dir", "", "root of the C++ sources (default src)")
	flags.String("schema", "", "characteristics schema file (default built-in list)")
	flags.Bool("align", false, "align accessor names in declarations")

	_ = viper.BindPFlag("verbose", flags.Lookup("verbose"))
	_ = viper.BindPFlag("source_dir", flags.Lookup("source-dir"))
	_ = viper.BindPFlag("schema_file", flags.Lookup("schema"))
	_ = viper.BindPFlag("generate.align", flags.Lookup("align"))

	registerGenerateCmd(rootCmd)
	registerListCmd(rootCmd)
	registerUpdateCmd(rootCmd)
	registerCheckCmd(rootCmd)
	registerSchemaCmd(rootCmd)
	registerWatchCmd(rootCmd)

	return rootCmd
}

// Execute runs the CLI and returns the process exit status.
func Execute(ctx context.Context) int {
	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}

	return 0
}

func initConfig(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".kartgen")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("KARTGEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// It's fine if no default config file is found; an explicit one must exist.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	return nil
}

// session carries what every command needs once configuration is loaded.
type session struct {
	cfg    config.Config
	logger *slog.Logger
	out    *printer
}

func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	return &session{cfg: cfg, logger: logger, out: newPrinter(cmd.OutOrStdout())}, nil
}

func (s *session) schema() (*schema.Schema, error) {
	sch, err := schema.Resolve(s.cfg.SchemaFile)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("schema loaded", "file", s.cfg.SchemaFile, "groups", len(sch.Groups), "characteristics", sch.Len())

	return sch, nil
}
