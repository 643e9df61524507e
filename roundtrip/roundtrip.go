package roundtrip

import (
	"time"

	"github.com/katalvlaran/farepath/search"
)

// ReturnDelayDays is the number of calendar days between the outbound and
// inbound reference times.
const ReturnDelayDays = 1

// Trip is a composed round trip.
//
// Path runs from start to goal and back to start; the turnaround city appears
// once. Cost and Duration are the sums over both legs.
type Trip struct {
	Outbound search.Route
	Inbound  search.Route
	Path     []string
	Cost     float64
	Duration time.Duration
}

// Found reports whether both legs were found.
func (t Trip) Found() bool { return len(t.Path) > 0 }

// ReturnTime returns the reference time used for the inbound leg.
func ReturnTime(at time.Time) time.Time {
	return at.AddDate(0, 0, ReturnDelayDays)
}

// Plan searches the outbound and the inbound leg and merges them.
//
// opts are passed unchanged to both searches. Errors from either search are
// returned as-is; "no route" on either leg yields an empty Trip and a nil error.
// The inbound leg is not searched when the outbound leg fails.
func Plan(g search.Adjacency, start, goal string, at time.Time, opts ...search.Option) (Trip, error) {
	out, err := search.CheapestRoute(g, start, goal, at, opts...)
	if err != nil {
		return Trip{}, err
	}
	if !out.Found() {
		return Trip{}, nil
	}

	in, err := search.CheapestRoute(g, goal, start, ReturnTime(at), opts...)
	if err != nil {
		return Trip{}, err
	}
	if !in.Found() {
		return Trip{}, nil
	}

	path := make([]string, 0, len(out.Path)+len(in.Path)-1)
	path = append(path, out.Path...)
	path = append(path, in.Path[1:]...)

	return Trip{
		Outbound: out,
		Inbound:  in,
		Path:     path,
		Cost:     out.Cost + in.Cost,
		Duration: out.Duration + in.Duration,
	}, nil
}

// FindRoundTrip is Plan reduced to the merged city sequence.
// An empty slice means at least one leg has no feasible route.
func FindRoundTrip(g search.Adjacency, start, goal string, at time.Time, opts ...search.Option) ([]string, error) {
	trip, err := Plan(g, start, goal, at, opts...)
	if err != nil {
		return nil, err
	}

	return trip.Path, nil
}
