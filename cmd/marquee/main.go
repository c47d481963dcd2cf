// Marquee - Movie Catalog Queries and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Command marquee answers catalog queries and recommendations from the
// command line without starting the HTTP server.
//
//	marquee recommend "Toy Story"
//	marquee similar Heat -k 10 --json
//	marquee month octubre --catalog data/movies.parquet
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/marquee/internal/app"
	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/logging"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "marquee",
		Short: "Movie catalog queries and content recommendations",
		Long: `marquee loads a movie catalog, builds a TF-IDF similarity index over it,
and answers one query per invocation.

Configuration is read the same way as the server: built-in defaults, then
config.yaml (or --config), then environment variables. --catalog overrides
the dataset path.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("catalog", "", "Catalog file (CSV, TSV or Parquet); overrides CATALOG_PATH")
	rootCmd.PersistentFlags().String("config", "", "YAML config file")
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level written to stderr")

	rootCmd.AddCommand(
		newRecommendCmd(),
		newSimilarCmd(),
		newMonthCmd(),
		newDayCmd(),
		newScoreCmd(),
		newVotesCmd(),
		newActorCmd(),
		newDirectorCmd(),
	)

	return rootCmd
}

// loadConfig resolves the configuration from the persistent flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	catalogPath, _ := cmd.Flags().GetString("catalog")

	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if catalogPath != "" {
		cfg.Catalog.Path = catalogPath
		cfg.Catalog.Format = ""
	}
	return cfg, nil
}

// loadServices loads the catalog and builds the index for one command.
func loadServices(cmd *cobra.Command) (*app.Services, error) {
	level, _ := cmd.Flags().GetString("log-level")
	if !logging.ValidLevel(level) {
		return nil, fmt.Errorf("invalid --log-level %q", level)
	}
	logging.Init(logging.Config{
		Level:     level,
		Format:    "console",
		Timestamp: true,
		Output:    cmd.ErrOrStderr(),
	})

	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return app.Bootstrap(ctx, cfg)
}

// render writes v as JSON when --json is set, otherwise calls text.
func render(cmd *cobra.Command, v interface{}, text func(w io.Writer) error) error {
	out := cmd.OutOrStdout()
	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	return text(out)
}
