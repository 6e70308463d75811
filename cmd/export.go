package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/hidden-champions/county-atlas/internal/analysis"
	"github.com/hidden-champions/county-atlas/internal/atlas"
	"github.com/hidden-champions/county-atlas/internal/catalog"
	"github.com/hidden-champions/county-atlas/internal/dataset"
	"github.com/hidden-champions/county-atlas/internal/export"
)

var (
	exportMetric string
	exportLimit  int
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a ranking to an XLSX workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		metric := dataset.Key(exportMetric)
		if exportMetric == "" {
			metric = dataset.Key(cfg.Rank.Metric)
		}

		entry, ok := catalog.Lookup(metric)
		if !ok {
			return eris.Errorf("unknown metric %q", metric)
		}
		if !entry.Available {
			return eris.Errorf("%s is not available yet", entry.Label)
		}

		limit := exportLimit
		if limit == 0 {
			limit = cfg.Rank.Limit
		}

		snap, err := atlas.Shared(cmd.Context(), cfg.Data)
		if err != nil {
			return err
		}

		top := analysis.TopN(snap.Records, metric, limit)
		if err := export.WriteRankings(exportOut, top, metric); err != nil {
			return err
		}

		fmt.Printf("Wrote %d counties to %s\n", len(top), exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportMetric, "metric", "", "ranking metric key (default from config)")
	exportCmd.Flags().IntVar(&exportLimit, "limit", 0, "number of counties (default from config)")
	exportCmd.Flags().StringVar(&exportOut, "out", "rankings.xlsx", "output file")
	rootCmd.AddCommand(exportCmd)
}
