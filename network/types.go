// File: types.go
// Role: Flight and Graph types, sentinel errors, constructor.

package network

import (
	"errors"
	"sync"
	"time"

	"github.com/katalvlaran/farepath/fare"
)

// Sentinel errors for route graph construction.
var (
	// ErrEmptyCityID indicates an empty origin or destination ID.
	ErrEmptyCityID = errors.New("network: city ID is empty")

	// ErrNegativeDistance indicates a negative or non-finite flight distance.
	ErrNegativeDistance = errors.New("network: distance must be a finite non-negative number")

	// ErrNegativeSeats indicates a negative seat count.
	ErrNegativeSeats = errors.New("network: seats must be non-negative")

	// ErrNegativeDuration indicates a negative flight duration.
	ErrNegativeDuration = errors.New("network: duration must be non-negative")
)

// Flight is one scheduled, directed connection between two cities.
//
// Flight values handed out by Graph are copies; mutating them does not
// change the graph.
type Flight struct {
	// ID uniquely identifies the flight within its Graph ("f1", "f2", …).
	ID string

	// From is the origin city.
	From string

	// To is the destination city.
	To string

	// Distance drives the base price (see fare.BasePrice).
	Distance float64

	// Seats is the number of seats still available.
	Seats int

	// Duration is the nominal flight time.
	Duration time.Duration
}

// Price quotes the flight at the given reference time.
func (f Flight) Price(at time.Time) float64 {
	return fare.CurrentPrice(f.Distance, f.Seats, at)
}

// Explain returns the itemized fare of the flight at the given reference time.
func (f Flight) Explain(at time.Time) fare.Breakdown {
	return fare.Explain(f.Distance, f.Seats, at)
}

// Graph is the in-memory route graph.
//
// departures maps an origin city to its outgoing flights in insertion order.
// cities holds every city seen as an origin or a destination.
// order keeps every flight in insertion order for Flights().
type Graph struct {
	mu sync.RWMutex

	nextFlightID uint64 // atomic flight ID generator

	cities     map[string]struct{}
	departures map[string][]*Flight
	order      []*Flight
}

// NewGraph returns an empty route graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		cities:     make(map[string]struct{}),
		departures: make(map[string][]*Flight),
	}
}
