// File: methods_clone.go
// Role: Deep copy of a route graph.
// Determinism:
//   - Clone carries nextFlightID so flights added to the clone continue the ID sequence.

package network

import "sync/atomic"

// Clone returns a deep copy of the graph: cities, flights and departure order.
//
// The clone is independent: adding flights to either graph does not affect the
// other. Flight IDs are preserved and the ID counter is carried over.
//
// Complexity: O(C + F).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph()
	atomic.StoreUint64(&clone.nextFlightID, atomic.LoadUint64(&g.nextFlightID))

	for c := range g.cities {
		clone.cities[c] = struct{}{}
	}
	clone.order = make([]*Flight, 0, len(g.order))
	for _, f := range g.order {
		nf := *f
		clone.order = append(clone.order, &nf)
		clone.departures[nf.From] = append(clone.departures[nf.From], &nf)
	}

	return clone
}
