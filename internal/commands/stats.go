package commands

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/campuscard/recap/internal/classify"
	"github.com/campuscard/recap/internal/stats"
)

func newStatsCommand() *cobra.Command {
	var configPath string
	var format string

	cmd := &cobra.Command{
		Use:   "stats <file>",
		Short: "Print the stats aggregate as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd.OutOrStdout(), args[0], configPath, format)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to recap.yaml")
	cmd.Flags().StringVar(&format, "format", "campus", "input CSV format")

	return cmd
}

func runStats(w io.Writer, file, configPath, format string) error {
	rows, cfg, err := loadRows(file, configPath, format)
	if err != nil {
		return err
	}

	det := classify.NewDetector(cfg.Dining.AllowList)
	s := stats.Compute(rows, det, cfg.TopN)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
