package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bpbull/soundcheck-analytics/internal/logging"
)

var (
	logLevel  string
	logFormat string

	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "soundcheck [command]",
	Short: "Generate and load the Soundcheck live-music analytics dataset",
	Long: `Produces a reproducible fake dataset for a live-music analytics platform:
cities, users, artists, venues, tours, events, ratings, reviews, ticket
sales, and follows, with deliberate data-quality defects for pipeline
testing. The same seed always yields the same dataset.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log = logging.New(logging.Config{
			Level:  logLevel,
			Format: logFormat,
			Output: os.Stderr,
		})
		logging.SetGlobal(log)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format (text or json)")
}
