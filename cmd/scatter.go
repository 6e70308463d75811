package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/hidden-champions/county-atlas/internal/analysis"
	"github.com/hidden-champions/county-atlas/internal/atlas"
	"github.com/hidden-champions/county-atlas/internal/catalog"
	"github.com/hidden-champions/county-atlas/internal/dataset"
)

var (
	scatterX string
	scatterY string
)

var scatterCmd = &cobra.Command{
	Use:   "scatter",
	Short: "Fit an OLS regression between two metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		x := dataset.Key(scatterX)
		y := dataset.Key(scatterY)

		for _, key := range []dataset.Key{x, y} {
			entry, ok := catalog.Lookup(key)
			if !ok {
				return eris.Errorf("unknown metric %q", key)
			}
			if !entry.Available {
				return eris.Errorf("%s is not available yet", entry.Label)
			}
		}

		snap, err := atlas.Shared(cmd.Context(), cfg.Data)
		if err != nil {
			return err
		}

		points := analysis.CompleteCases(snap.Records, x, y)
		fmt.Printf("%s vs %s: %d complete-case rows\n", y, x, len(points))

		fit, err := analysis.FitPoints(points)
		if err != nil {
			if eris.Is(err, analysis.ErrUnfittable) {
				fmt.Println("Regression slope: unavailable")
				return nil
			}
			return err
		}

		fmt.Printf("Regression slope: %s\n", analysis.FormatSlope(fit.Slope))
		return nil
	},
}

func init() {
	scatterCmd.Flags().StringVar(&scatterX, "x", string(dataset.KeyGDP), "x-axis metric key")
	scatterCmd.Flags().StringVar(&scatterY, "y", string(dataset.KeySAFCentrality), "y-axis metric key")
	rootCmd.AddCommand(scatterCmd)
}
