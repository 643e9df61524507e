// File: search.go
// Role: the constrained cheapest-route runner.
//
// The runner keeps every path-state it creates in an arena. Frontier entries
// refer to arena slots, and each slot remembers the slot it was expanded from,
// so the winning path is rebuilt once by following parent links back to the
// start state.
//
// Notes:
//
//   - Stale frontier entries (a city popped again at a higher cost) are still
//     expanded; their successors go through the same limits and pruning as any
//     other candidate.
//   - A candidate is dropped when its city already has a recorded cost ≤ the
//     candidate's cost. The table is keyed by city only (see doc.go).

package search

import (
	"container/heap"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"
)

// CheapestRoute searches g for the cheapest route from start to goal with
// every flight priced at the reference time at.
//
// Preconditions and validation (in order):
//  1. start and goal must be non-empty (ErrEmptyEndpoint).
//  2. g must be non-nil (ErrNilGraph).
//  3. MaxHops, if set, must be ≥ 0 (ErrBadMaxHops).
//  4. MaxDuration, if set, must be ≥ 0 (ErrBadMaxDuration).
//  5. Pricer must be non-nil (ErrNilPricer).
//
// A route that does not exist is reported with an empty Route and a nil error.
func CheapestRoute(g Adjacency, start, goal string, at time.Time, opts ...Option) (Route, error) {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	if start == "" || goal == "" {
		return Route{}, ErrEmptyEndpoint
	}
	if isNilGraph(g) {
		return Route{}, ErrNilGraph
	}
	if cfg.MaxHops != nil && *cfg.MaxHops < 0 {
		return Route{}, fmt.Errorf("%w: got %d", ErrBadMaxHops, *cfg.MaxHops)
	}
	if cfg.MaxDuration != nil && *cfg.MaxDuration < 0 {
		return Route{}, fmt.Errorf("%w: got %s", ErrBadMaxDuration, *cfg.MaxDuration)
	}
	if cfg.Pricer == nil {
		return Route{}, ErrNilPricer
	}

	started := time.Now()
	r := &runner{
		g:     g,
		goal:  goal,
		at:    at,
		opts:  cfg,
		log:   cfg.Logger.With().Str("start", start).Str("goal", goal).Logger(),
		best:  make(map[string]float64),
		arena: make([]state, 0, 16),
		pq:    make(frontier, 0, 16),
	}
	r.init(start)

	route, err := r.process()
	if err != nil {
		return Route{}, err
	}
	route.Stats = r.stats

	outcome := OutcomeNoRoute
	switch {
	case route.Found() && route.Hops == 0:
		outcome = OutcomeTrivial
	case route.Found():
		outcome = OutcomeFound
	}
	r.log.Debug().
		Str("outcome", string(outcome)).
		Strs("path", route.Path).
		Float64("cost", route.Cost).
		Int("expanded", r.stats.Expanded).
		Int("dominated", r.stats.Dominated).
		Msg("search finished")

	if cfg.Recorder != nil {
		cfg.Recorder.RecordSearch(Report{
			Start:   start,
			Goal:    goal,
			Outcome: outcome,
			Cost:    route.Cost,
			Stats:   r.stats,
			Elapsed: time.Since(started),
		})
	}

	return route, nil
}

// FindCheapestRoute is CheapestRoute reduced to the city sequence.
// An empty slice means no feasible route.
func FindCheapestRoute(g Adjacency, start, goal string, at time.Time, opts ...Option) ([]string, error) {
	route, err := CheapestRoute(g, start, goal, at, opts...)
	if err != nil {
		return nil, err
	}

	return route.Path, nil
}

// state is one path-state. parent is the arena index of the state it was
// expanded from (-1 for the start state); flight is the flight that led here.
type state struct {
	city     string
	cost     float64
	hops     int
	duration time.Duration
	parent   int
	flight   string
}

// runner holds the mutable state of a single search.
type runner struct {
	g     Adjacency
	goal  string
	at    time.Time
	opts  Options
	log   zerolog.Logger
	best  map[string]float64 // city → lowest cost recorded so far
	arena []state            // every path-state ever enqueued
	pq    frontier           // min-heap over arena indexes
	seq   uint64             // insertion counter for tie-breaking
	stats Stats
}

// init seeds the frontier and the cost table with the start city at cost 0.
func (r *runner) init(start string) {
	heap.Init(&r.pq)
	r.best[start] = 0
	r.push(state{city: start, parent: -1})
}

// process pops path-states in cost order until the goal is popped or the
// frontier is empty.
func (r *runner) process() (Route, error) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*entry)
		r.stats.Expanded++
		s := r.arena[item.idx]

		if s.city == r.goal {
			return r.reconstruct(item.idx), nil
		}

		r.log.Trace().
			Str("city", s.city).
			Float64("cost", s.cost).
			Int("hops", s.hops).
			Dur("duration", s.duration).
			Msg("expand")

		if err := r.relax(item.idx); err != nil {
			return Route{}, err
		}
	}

	return Route{}, nil
}

// relax prices every flight leaving the state at idx and enqueues the
// successors that pass the limits and the dominance check.
func (r *runner) relax(idx int) error {
	s := r.arena[idx] // copy: push may grow the arena

	for _, f := range r.g.Outgoing(s.city) {
		price := r.opts.Pricer(f, r.at)
		if price < 0 || math.IsNaN(price) {
			return fmt.Errorf("%w: flight %s %s→%s price=%v", ErrNegativePrice, f.ID, f.From, f.To, price)
		}

		cost := s.cost + price
		hops := s.hops + 1
		duration := s.duration + f.Duration

		if r.opts.MaxHops != nil && hops > *r.opts.MaxHops {
			r.stats.OverLimit++
			continue
		}
		if r.opts.MaxDuration != nil && duration > *r.opts.MaxDuration {
			r.stats.OverLimit++
			continue
		}
		if known, ok := r.best[f.To]; ok && known <= cost {
			r.stats.Dominated++
			continue
		}

		r.best[f.To] = cost
		r.push(state{
			city:     f.To,
			cost:     cost,
			hops:     hops,
			duration: duration,
			parent:   idx,
			flight:   f.ID,
		})
	}

	return nil
}

// push stores s in the arena and adds it to the frontier.
func (r *runner) push(s state) {
	r.arena = append(r.arena, s)
	r.seq++
	heap.Push(&r.pq, &entry{idx: len(r.arena) - 1, cost: s.cost, seq: r.seq})
	r.stats.Enqueued++
	if n := r.pq.Len(); n > r.stats.PeakFrontier {
		r.stats.PeakFrontier = n
	}
}

// reconstruct follows parent links from the goal state back to the start.
func (r *runner) reconstruct(idx int) Route {
	goal := r.arena[idx]
	n := goal.hops + 1
	path := make([]string, n)
	flights := make([]string, goal.hops)

	for i := idx; i >= 0; i = r.arena[i].parent {
		n--
		path[n] = r.arena[i].city
		if n > 0 {
			flights[n-1] = r.arena[i].flight
		}
	}

	return Route{
		Path:     path,
		Flights:  flights,
		Cost:     goal.cost,
		Hops:     goal.hops,
		Duration: goal.duration,
	}
}

// isNilGraph catches both untyped nil and typed nil pointers behind Adjacency.
func isNilGraph(g Adjacency) bool {
	if g == nil {
		return true
	}
	if n, ok := g.(interface{ IsNil() bool }); ok {
		return n.IsNil()
	}

	return false
}
