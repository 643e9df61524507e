package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newFlightsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "flights",
		Short: "List timetable flights with their fare breakdown at the reference time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.graph()
			if err != nil {
				return err
			}
			at, err := a.referenceTime()
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tFROM\tTO\tDISTANCE\tSEATS\tDURATION\tBASE\tPEAK\tAVAIL\tPRICE")
			for _, f := range g.Flights() {
				b := f.Explain(at)
				fmt.Fprintf(tw, "%s\t%s\t%s\t%.1f\t%d\t%s\t%.2f\t%.1f\t%.1f\t%.2f\n",
					f.ID, f.From, f.To, f.Distance, f.Seats, f.Duration,
					b.Base, b.Peak, b.Availability, b.Total)
			}

			return tw.Flush()
		},
	}
}
