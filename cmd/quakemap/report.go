package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"quakemap/internal/feed"
	"quakemap/internal/quake"
)

var reportTop int

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print quakes per country and the strongest quakes",
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(cmd.Context())
		if err != nil {
			return err
		}
		top := cfg.Report.Top
		if cmd.Flags().Changed("top") {
			top = reportTop
		}
		writeReport(cmd.OutOrStdout(), ds, top)
		return nil
	},
}

func init() {
	reportCmd.Flags().IntVar(&reportTop, "top", 10, "number of quakes to list by magnitude")
}

// writeReport prints the per-country tally, the ocean total, then the top quakes.
func writeReport(w io.Writer, ds *feed.Dataset, top int) {
	tally := quake.TallyByCountry(ds.Quakes, ds.Countries)
	for _, c := range tally.Countries {
		fmt.Fprintf(w, "%s: %d\n", c.Country, c.Quakes)
	}
	fmt.Fprintf(w, "OCEAN QUAKES: %d\n", tally.Ocean)

	idx := quake.ByMagnitude(ds.Quakes, top)
	if len(idx) == 0 {
		return
	}
	fmt.Fprintf(w, "\nTop %d by magnitude:\n", len(idx))
	for _, i := range idx {
		q := ds.Quakes[i]
		fmt.Fprintf(w, "%4.1f  %5.0f km  %s\n", q.Magnitude, q.Depth, q.Title)
	}
}
