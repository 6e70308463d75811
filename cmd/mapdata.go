package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/hidden-champions/county-atlas/internal/atlas"
	"github.com/hidden-champions/county-atlas/internal/catalog"
	"github.com/hidden-champions/county-atlas/internal/dataset"
	"github.com/hidden-champions/county-atlas/internal/mapview"
)

var (
	mapMetric string
	mapOut    string
)

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Write choropleth GeoJSON for a metric",
	RunE: func(cmd *cobra.Command, args []string) error {
		metric := dataset.Key(mapMetric)

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

		rows, err := mapview.Join(snap.Counties, snap.Records, metric)
		if err != nil {
			return err
		}

		out := os.Stdout
		if mapOut != "" {
			f, err := os.Create(mapOut)
			if err != nil {
				return eris.Wrapf(err, "create %s", mapOut)
			}
			defer f.Close()
			out = f
		}

		enc := json.NewEncoder(out)
		if err := enc.Encode(mapview.FeatureCollection(rows)); err != nil {
			return eris.Wrap(err, "encode feature collection")
		}

		if mapOut != "" {
			fmt.Printf("Wrote %d features to %s\n", len(rows), mapOut)
		}
		return nil
	},
}

func init() {
	mapCmd.Flags().StringVar(&mapMetric, "metric", string(dataset.KeySAFCentrality), "map metric key")
	mapCmd.Flags().StringVar(&mapOut, "out", "", "output file (default stdout)")
	rootCmd.AddCommand(mapCmd)
}
