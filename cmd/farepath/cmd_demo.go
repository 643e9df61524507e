package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/farepath/search"
)

// Demo queries over the built-in timetable.
const (
	demoFrom = "City_A"
	demoTo   = "City_C"
)

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the sample queries: one-way City_A to City_C, then the round trip",
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

			w := cmd.OutOrStdout()
			if err := a.runRoute(w, g, demoFrom, demoTo, at,
				search.WithMaxHops(1), search.WithMaxDuration(3*time.Hour)); err != nil {
				return err
			}

			return a.runRoundTrip(w, g, demoFrom, demoTo, at,
				search.WithMaxHops(2), search.WithMaxDuration(5*time.Hour))
		},
	}
}
