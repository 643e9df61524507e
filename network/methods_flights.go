// File: methods_flights.go
// Role: Flight lifecycle & queries: AddFlight/Outgoing/Flights/FlightCount, plus nextFlightID().
// Determinism:
//   - Outgoing() and Flights() preserve insertion order.
//   - nextFlightID() is monotonic and stable ("f" + decimal).
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package network

import (
	"fmt"
	"math"
	"strconv"
	"sync/atomic"
	"time"
)

// flightIDPrefix is the textual prefix of flight identifiers ("f1", "f2", …).
const flightIDPrefix = 'f'

// AddFlight appends a new flight from→to to the graph and returns its ID.
//
// Steps:
//  1. Validate city IDs, distance, seats and duration.
//  2. Generate the flight ID atomically.
//  3. Under the write lock, register both cities and append the flight to
//     from's departure list.
//
// No deduplication is performed: adding the same route twice yields two
// alternative flights. Self-loops are accepted.
//
// Errors are sentinels wrapped with the offending route; test them with errors.Is.
//
// Complexity: O(1) amortized.
func (g *Graph) AddFlight(from, to string, distance float64, seats int, duration time.Duration) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyCityID
	}
	if distance < 0 || math.IsNaN(distance) || math.IsInf(distance, 0) {
		return "", fmt.Errorf("%w: %s→%s distance=%v", ErrNegativeDistance, from, to, distance)
	}
	if seats < 0 {
		return "", fmt.Errorf("%w: %s→%s seats=%d", ErrNegativeSeats, from, to, seats)
	}
	if duration < 0 {
		return "", fmt.Errorf("%w: %s→%s duration=%s", ErrNegativeDuration, from, to, duration)
	}

	f := &Flight{
		ID:       nextFlightID(g),
		From:     from,
		To:       to,
		Distance: distance,
		Seats:    seats,
		Duration: duration,
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.cities[from] = struct{}{}
	g.cities[to] = struct{}{}
	g.departures[from] = append(g.departures[from], f)
	g.order = append(g.order, f)

	return f.ID, nil
}

// Outgoing returns copies of the flights leaving city, in insertion order.
// Unknown cities (and cities with no departures) yield nil, not an error.
//
// Complexity: O(deg(city)).
func (g *Graph) Outgoing(city string) []Flight {
	g.mu.RLock()
	defer g.mu.RUnlock()

	deps := g.departures[city]
	if len(deps) == 0 {
		return nil
	}
	out := make([]Flight, len(deps))
	for i, f := range deps {
		out[i] = *f
	}

	return out
}

// Flights returns copies of all flights in insertion order.
// Complexity: O(F).
func (g *Graph) Flights() []Flight {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Flight, len(g.order))
	for i, f := range g.order {
		out[i] = *f
	}

	return out
}

// FlightCount returns the total number of flights.
// Complexity: O(1).
func (g *Graph) FlightCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// nextFlightID returns a new unique textual flight ID.
// Uses a monotonic counter incremented atomically; avoids fmt on the hot path.
func nextFlightID(g *Graph) string {
	n := atomic.AddUint64(&g.nextFlightID, 1)
	buf := make([]byte, 0, 1+20) // "f" + up to 20 digits for uint64
	buf = append(buf, flightIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}
