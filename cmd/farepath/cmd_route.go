package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/farepath/network"
	"github.com/katalvlaran/farepath/roundtrip"
	"github.com/katalvlaran/farepath/search"
)

func newRouteCmd(a *app) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "route --from CITY --to CITY",
		Short: "Find the cheapest one-way route",
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

			return a.runRoute(cmd.OutOrStdout(), g, from, to, at)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "origin city")
	cmd.Flags().StringVar(&to, "to", "", "destination city")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func newRoundTripCmd(a *app) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "roundtrip --from CITY --to CITY",
		Short: "Find the cheapest round trip, returning one day later",
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

			return a.runRoundTrip(cmd.OutOrStdout(), g, from, to, at)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "home city")
	cmd.Flags().StringVar(&to, "to", "", "turnaround city")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func (a *app) runRoute(w io.Writer, g *network.Graph, from, to string, at time.Time, extra ...search.Option) error {
	log, opts := a.query("route", from, to, extra...)

	route, err := search.CheapestRoute(g, from, to, at, opts...)
	if err != nil {
		log.Error().Err(err).Msg("route query failed")
		return err
	}

	printPath(w, "Cheapest Route", route.Path)
	if route.Found() {
		fmt.Fprintf(w, "  cost %.2f, %d flight(s), %s in the air\n", route.Cost, route.Hops, route.Duration)
	}
	log.Info().Bool("found", route.Found()).Float64("cost", route.Cost).Msg("route query")

	return nil
}

func (a *app) runRoundTrip(w io.Writer, g *network.Graph, from, to string, at time.Time, extra ...search.Option) error {
	log, opts := a.query("roundtrip", from, to, extra...)

	trip, err := roundtrip.Plan(g, from, to, at, opts...)
	if err != nil {
		log.Error().Err(err).Msg("round trip query failed")
		return err
	}

	printPath(w, "Round Trip Route", trip.Path)
	if trip.Found() {
		fmt.Fprintf(w, "  outbound %.2f on %s, inbound %.2f on %s, total %.2f, %s in the air\n",
			trip.Outbound.Cost, at.Format("2006-01-02"),
			trip.Inbound.Cost, roundtrip.ReturnTime(at).Format("2006-01-02"),
			trip.Cost, trip.Duration)
	}
	log.Info().Bool("found", trip.Found()).Float64("cost", trip.Cost).Msg("round trip query")

	return nil
}
