package search

import (
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/farepath/network"
)

// Sentinel errors returned by the search engine.
var (
	// ErrNilGraph indicates that a nil graph was passed.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrEmptyEndpoint indicates an empty start or goal city.
	ErrEmptyEndpoint = errors.New("search: start or goal city is empty")

	// ErrBadMaxHops indicates a negative hop limit.
	ErrBadMaxHops = errors.New("search: MaxHops must be non-negative")

	// ErrBadMaxDuration indicates a negative duration limit.
	ErrBadMaxDuration = errors.New("search: MaxDuration must be non-negative")

	// ErrNilPricer indicates that WithPricer was given a nil function.
	ErrNilPricer = errors.New("search: pricer is nil")

	// ErrNegativePrice indicates that the pricer quoted a negative or NaN price.
	ErrNegativePrice = errors.New("search: negative flight price encountered")
)

// Adjacency is the read-only view of a route graph the engine needs.
// *network.Graph implements it.
type Adjacency interface {
	// Outgoing returns the flights leaving city; nil for unknown cities.
	Outgoing(city string) []network.Flight
}

// Pricer quotes a flight at a reference time. It must be pure and return a
// finite, non-negative price.
type Pricer func(f network.Flight, at time.Time) float64

// FarePricer quotes flights with the fare package model (distance, peak hour, seats).
func FarePricer(f network.Flight, at time.Time) float64 {
	return f.Price(at)
}

// Outcome classifies a finished search.
type Outcome string

const (
	// OutcomeFound means a route with at least one flight was found.
	OutcomeFound Outcome = "found"

	// OutcomeTrivial means start == goal; the route is [start].
	OutcomeTrivial Outcome = "trivial"

	// OutcomeNoRoute means the frontier was exhausted without reaching goal.
	OutcomeNoRoute Outcome = "no_route"
)

// Stats counts the work done by one search.
type Stats struct {
	Expanded     int // path-states popped from the frontier
	Enqueued     int // path-states pushed, including the start state
	OverLimit    int // candidates dropped by the hop or duration limit
	Dominated    int // candidates dropped by the best-known-cost table
	PeakFrontier int // largest frontier size observed
}

// Report is handed to a Recorder after every completed search.
type Report struct {
	Start   string
	Goal    string
	Outcome Outcome
	Cost    float64
	Stats   Stats
	Elapsed time.Duration
}

// Recorder receives one Report per completed search. Implementations must be
// safe for concurrent use if searches run concurrently.
type Recorder interface {
	RecordSearch(Report)
}

// Route is the result of a search.
//
// Path lists the cities from start to goal; Flights lists the IDs of the
// flights taken, so len(Flights) == Hops == len(Path)-1 for a found route.
// An empty Path means no feasible route exists.
type Route struct {
	Path     []string
	Flights  []string
	Cost     float64
	Hops     int
	Duration time.Duration
	Stats    Stats
}

// Found reports whether the route reaches the goal.
func (r Route) Found() bool { return len(r.Path) > 0 }

// Options configures a search.
//
// MaxHops and MaxDuration are nil when the corresponding limit is absent.
type Options struct {
	MaxHops     *int           // maximum number of flights; nil = unbounded
	MaxDuration *time.Duration // maximum summed flight time; nil = unconstrained
	Pricer      Pricer         // price of a flight at the reference time
	Logger      zerolog.Logger // trace/debug output; Nop by default
	Recorder    Recorder       // optional per-search report sink
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// WithMaxHops limits the number of flights in a route.
// Negative values make the search fail with ErrBadMaxHops.
func WithMaxHops(n int) Option {
	return func(o *Options) {
		o.MaxHops = &n
	}
}

// WithMaxDuration limits the summed duration of the flights in a route.
// Negative values make the search fail with ErrBadMaxDuration.
func WithMaxDuration(d time.Duration) Option {
	return func(o *Options) {
		o.MaxDuration = &d
	}
}

// WithPricer replaces the fare model used to quote flights.
func WithPricer(p Pricer) Option {
	return func(o *Options) {
		o.Pricer = p
	}
}

// WithLogger sets the logger used for expansion traces and outcome summaries.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithRecorder sets a sink that receives a Report after each search.
func WithRecorder(r Recorder) Option {
	return func(o *Options) {
		o.Recorder = r
	}
}

// DefaultOptions returns the options used when no Option is given:
// no hop limit, no duration limit, FarePricer, a disabled logger and no recorder.
func DefaultOptions() Options {
	return Options{
		Pricer: FarePricer,
		Logger: zerolog.Nop(),
	}
}
