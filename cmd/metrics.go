package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hidden-champions/county-atlas/internal/catalog"
)

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "List the selectable metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "KEY\tLABEL\tSTATUS")
		for _, e := range catalog.All() {
			status := "available"
			if !e.Available {
				status = "coming soon"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", e.Key, e.Label, status)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(metricsCmd)
}
