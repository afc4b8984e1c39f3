package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bpbull/soundcheck-analytics/internal/gen"
	"github.com/bpbull/soundcheck-analytics/internal/store"
	"github.com/bpbull/soundcheck-analytics/internal/validate"
)

var loadFlags struct {
	dsn string
}

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Generate the dataset and load it into Postgres",
	Long: `Regenerates the dataset from the seed and loads it into Postgres in a
single transaction. Generating instead of parsing CSV keeps the loader
independent of an earlier generate run; the same seed produces the same
rows either way.`,
	RunE: runLoad,
}

func init() {
	rootCmd.AddCommand(loadCmd)

	loadCmd.Flags().StringVar(&loadFlags.dsn, "dsn", "", "Postgres connection string (or DATABASE_URL env)")

	loadCmd.Flags().Int64Var(&generateFlags.seed, "seed", -1, "random seed (or SOUNDCHECK_SEED env)")
	loadCmd.Flags().IntVar(&generateFlags.users, "users", 0, "number of users (or SOUNDCHECK_USERS env)")
	loadCmd.Flags().IntVar(&generateFlags.artists, "artists", 0, "number of artists (or SOUNDCHECK_ARTISTS env)")
	loadCmd.Flags().IntVar(&generateFlags.venues, "venues", 0, "number of venues (or SOUNDCHECK_VENUES env)")
	loadCmd.Flags().IntVar(&generateFlags.tours, "tours", 0, "number of tours (or SOUNDCHECK_TOURS env)")
	loadCmd.Flags().IntVar(&generateFlags.events, "events", 0, "number of events (or SOUNDCHECK_EVENTS env)")
	loadCmd.Flags().StringVar(&generateFlags.anchor, "anchor", "", "anchor date YYYY-MM-DD for past/future status (default today)")
}

func runLoad(cmd *cobra.Command, args []string) error {
	cfg, _, err := genConfigFromFlags(cmd)
	if err != nil {
		return err
	}

	dsn := loadFlags.dsn
	if dsn == "" {
		env, err := loadEnvConfig()
		if err != nil {
			return err
		}
		dsn = env.DSN
	}
	if dsn == "" {
		return errors.New("--dsn or DATABASE_URL is required")
	}

	g := gen.New(cfg, log)
	data, err := g.GenerateAll()
	if err != nil {
		return err
	}

	report := validate.Check(data)
	report.Log(log)
	if !report.OK() {
		return fmt.Errorf("dataset failed integrity check with %d issues", len(report.Issues))
	}

	ctx := cmd.Context()
	db, err := openDatabase(ctx, dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	st := store.New(db, log)
	if err := st.EnsureSchema(ctx); err != nil {
		return err
	}
	if err := st.Load(ctx, data); err != nil {
		return err
	}

	log.Info().Msg("dataset loaded")
	return nil
}
