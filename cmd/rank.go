package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/hidden-champions/county-atlas/internal/analysis"
	"github.com/hidden-champions/county-atlas/internal/atlas"
	"github.com/hidden-champions/county-atlas/internal/catalog"
	"github.com/hidden-champions/county-atlas/internal/dataset"
)

var (
	rankMetric string
	rankLimit  int
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Print the top counties by a metric",
	RunE: func(cmd *cobra.Command, args []string) error {
		metric := dataset.Key(rankMetric)
		if rankMetric == "" {
			metric = dataset.Key(cfg.Rank.Metric)
		}
		limit := rankLimit
		if limit == 0 {
			limit = cfg.Rank.Limit
		}

		entry, ok := catalog.Lookup(metric)
		if !ok {
			return eris.Errorf("unknown metric %q", metric)
		}
		if !entry.Available {
			fmt.Printf("%s is not available yet.\n", entry.Label)
			return nil
		}

		snap, err := atlas.Shared(cmd.Context(), cfg.Data)
		if err != nil {
			return err
		}

		top := analysis.TopN(snap.Records, metric, limit)

		p := message.NewPrinter(language.English)
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "RANK\tCOUNTY\t%s\tGDP\tPOPULATION\tAIRPORTS\tSAF FIRMS\n", entry.Label)
		for i, rec := range top {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
				i+1,
				rec.Label,
				formatCell(p, rec.Metric(metric)),
				formatCell(p, rec.Metric(dataset.KeyGDP)),
				formatCell(p, rec.Metric(dataset.KeyPopulation)),
				formatCell(p, rec.Metric(dataset.KeyAirportCount)),
				formatCell(p, rec.Metric(dataset.KeySAFFirmCount)),
			)
		}
		return w.Flush()
	},
}

// formatCell renders a metric value with thousands separators, or a dash for
// missing cells.
func formatCell(p *message.Printer, v dataset.Value) string {
	if !v.Valid {
		return "-"
	}
	if v.Float == float64(int64(v.Float)) {
		return p.Sprintf("%d", int64(v.Float))
	}
	return p.Sprintf("%.4f", v.Float)
}

func init() {
	rankCmd.Flags().StringVar(&rankMetric, "metric", "", "ranking metric key (default from config)")
	rankCmd.Flags().IntVar(&rankLimit, "limit", 0, "number of counties to list (default from config)")
	rootCmd.AddCommand(rankCmd)
}
