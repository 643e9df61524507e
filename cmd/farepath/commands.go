package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/farepath/internal/config"
	"github.com/katalvlaran/farepath/internal/logger"
	"github.com/katalvlaran/farepath/internal/metrics"
	"github.com/katalvlaran/farepath/network"
	"github.com/katalvlaran/farepath/search"
	"github.com/katalvlaran/farepath/timetable"
)

// Accepted --at layouts, tried in order. Layouts without a zone are read in
// the configured location.
var atLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// rootFlags are the persistent flags shared by every subcommand.
type rootFlags struct {
	timetable   string
	logLevel    string
	logFile     string
	at          string
	tz          string
	maxHops     int
	maxDuration time.Duration
	metricsFile string
}

// app carries the state resolved once per invocation by the root command.
type app struct {
	flags   rootFlags
	cfg     *config.Config
	log     zerolog.Logger
	metrics *metrics.Collector
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "farepath",
		Short: "Cheapest flight routes under hop and duration limits",
		Long: `farepath prices flights by distance, departure hour and seat availability,
and finds the cheapest one-way or round-trip route through a timetable.

Settings may also come from a .env file or FAREPATH_* environment variables;
flags take precedence.`,
		SilenceUsage:       true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.flush,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.timetable, "timetable", "", "YAML timetable file (default: built-in demo)")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "trace|debug|info|warn|error|disabled")
	pf.StringVar(&a.flags.logFile, "log-file", "", "also write JSON logs to this rotating file")
	pf.StringVar(&a.flags.at, "at", "", "reference departure time, e.g. 2024-05-01T10:00 (default: now)")
	pf.StringVar(&a.flags.tz, "tz", "", "IANA time zone for --at and pricing (default: local)")
	pf.IntVar(&a.flags.maxHops, "max-hops", 0, "maximum flights per leg (default: unlimited)")
	pf.DurationVar(&a.flags.maxDuration, "max-duration", 0, "maximum flight time per leg (default: unlimited)")
	pf.StringVar(&a.flags.metricsFile, "metrics-file", "", "write Prometheus metrics to this file on exit")

	root.AddCommand(
		newRouteCmd(a),
		newRoundTripCmd(a),
		newFlightsCmd(a),
		newDemoCmd(a),
	)

	return root
}

// setup merges configuration sources (flags over environment over defaults)
// and builds the logger and the metrics collector.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("timetable") {
		cfg.Timetable = a.flags.timetable
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.flags.logLevel
	}
	if flags.Changed("log-file") {
		cfg.LogFile = a.flags.logFile
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = a.flags.metricsFile
	}
	if flags.Changed("tz") {
		loc, err := time.LoadLocation(a.flags.tz)
		if err != nil {
			return fmt.Errorf("invalid --tz: %w", err)
		}
		cfg.Location = loc
	}
	if flags.Changed("max-hops") {
		n := a.flags.maxHops
		cfg.MaxHops = &n
	}
	if flags.Changed("max-duration") {
		d := a.flags.maxDuration
		cfg.MaxDuration = &d
	}
	a.cfg = cfg

	lc := logger.DefaultConfig()
	lc.Level = logger.ParseLevel(cfg.LogLevel)
	lc.Out = cmd.ErrOrStderr()
	lc.FilePath = cfg.LogFile
	a.log = logger.New(lc)

	a.metrics = metrics.NewCollector()

	return nil
}

// flush writes the metrics textfile when one is configured.
func (a *app) flush(_ *cobra.Command, _ []string) error {
	if a.cfg == nil || a.cfg.MetricsFile == "" {
		return nil
	}
	if err := a.metrics.WriteTextfile(a.cfg.MetricsFile); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	a.log.Debug().Str("path", a.cfg.MetricsFile).Msg("metrics written")

	return nil
}

// graph loads the configured timetable, or the built-in demo.
func (a *app) graph() (*network.Graph, error) {
	var (
		tt  *timetable.Timetable
		err error
	)
	if a.cfg.Timetable == "" {
		tt = timetable.Demo()
	} else if tt, err = timetable.Load(a.cfg.Timetable); err != nil {
		return nil, err
	}

	g, err := tt.Build()
	if err != nil {
		return nil, err
	}
	a.log.Debug().
		Str("timetable", tt.Name).
		Int("cities", g.CityCount()).
		Int("flights", g.FlightCount()).
		Msg("timetable loaded")

	return g, nil
}

// referenceTime resolves --at in the configured location.
func (a *app) referenceTime() (time.Time, error) {
	if a.flags.at == "" {
		return time.Now().In(a.cfg.Location), nil
	}
	for _, layout := range atLayouts {
		if t, err := time.ParseInLocation(layout, a.flags.at, a.cfg.Location); err == nil {
			return t.In(a.cfg.Location), nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid --at %q: want one of %s", a.flags.at, strings.Join(atLayouts, ", "))
}

// query returns a logger tagged with a fresh query ID and the search options
// for one CLI query. Configured limits are applied unless overridden by extra.
func (a *app) query(kind, from, to string, extra ...search.Option) (zerolog.Logger, []search.Option) {
	log := a.log.With().
		Str("query_id", uuid.NewString()).
		Str("kind", kind).
		Str("from", from).
		Str("to", to).
		Logger()

	opts := []search.Option{
		search.WithLogger(log),
		search.WithRecorder(a.metrics),
	}
	if a.cfg.MaxHops != nil {
		opts = append(opts, search.WithMaxHops(*a.cfg.MaxHops))
	}
	if a.cfg.MaxDuration != nil {
		opts = append(opts, search.WithMaxDuration(*a.cfg.MaxDuration))
	}

	return log, append(opts, extra...)
}

// printPath writes "label: A -> B -> C", or "label: no route found".
func printPath(w io.Writer, label string, path []string) {
	if len(path) == 0 {
		fmt.Fprintf(w, "%s: no route found\n", label)
		return
	}
	fmt.Fprintf(w, "%s: %s\n", label, strings.Join(path, " -> "))
}
