package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/campuscard/recap/internal/classify"
	"github.com/campuscard/recap/internal/config"
	"github.com/campuscard/recap/internal/facts"
	"github.com/campuscard/recap/internal/importer"
	"github.com/campuscard/recap/internal/model"
	"github.com/campuscard/recap/internal/stats"
)

// recapDoc is the full recap document: the stats aggregate plus every
// derived fact list.
type recapDoc struct {
	Stats        stats.Stats         `json:"stats"`
	Personality  facts.Personality   `json:"personality"`
	Achievements []facts.Achievement `json:"achievements"`
	Comparisons  []string            `json:"comparisons"`
	Predictions  []string            `json:"predictions"`
	Quotes       []string            `json:"quotes"`
	Memories     []string            `json:"memories"`
}

func newGenerateCommand() *cobra.Command {
	var configPath string
	var format string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "generate <file>",
		Short: "Generate the year-end recap from a card CSV export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.OutOrStdout(), args[0], configPath, format, asJSON)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to recap.yaml")
	cmd.Flags().StringVar(&format, "format", "campus", "input CSV format")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the recap as JSON")

	return cmd
}

func runGenerate(w io.Writer, file, configPath, format string, asJSON bool) error {
	rows, cfg, err := loadRows(file, configPath, format)
	if err != nil {
		return err
	}

	det := classify.NewDetector(cfg.Dining.AllowList)
	s := stats.Compute(rows, det, cfg.TopN)

	doc := recapDoc{
		Stats:        s,
		Personality:  facts.NewPersonality(s),
		Achievements: facts.Achievements(s),
		Comparisons:  facts.Comparisons(s),
		Predictions:  facts.Predictions(s),
		Quotes:       facts.Quotes(s),
		Memories:     facts.Memories(s),
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	}

	renderText(w, doc)
	return nil
}

// loadRows reads the export file with the selected parser and loads
// configuration (defaults when no --config is given).
func loadRows(file, configPath, format string) ([]model.Row, *config.Config, error) {
	parser := importer.DefaultRegistry().Get(format)
	if parser == nil {
		return nil, nil, fmt.Errorf("unknown format %q", format)
	}

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, nil, fmt.Errorf("opening export: %w", err)
	}
	defer f.Close()

	rows, err := parser.Parse(f)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing export: %w", err)
	}
	return rows, cfg, nil
}
