package main

import (
	"github.com/spf13/cobra"

	"github.com/bpbull/soundcheck-analytics/internal/export"
)

var dictOutDir string

var dictCmd = &cobra.Command{
	Use:   "dict",
	Short: "Write the data dictionary without generating data",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := export.WriteDictionary(dictOutDir); err != nil {
			return err
		}
		log.Info().Str("dir", dictOutDir).Msg("data dictionary written")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dictCmd)
	dictCmd.Flags().StringVarP(&dictOutDir, "out", "o", "data", "output directory")
}
