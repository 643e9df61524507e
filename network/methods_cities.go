// File: methods_cities.go
// Role: City queries. Cities are created implicitly by AddFlight.
// Determinism:
//   - Cities() returns IDs sorted lexicographically ascending.

package network

import "sort"

// HasCity reports whether city appears as an origin or destination of any flight.
// Empty ID ⇒ false. Complexity: O(1).
func (g *Graph) HasCity(city string) bool {
	if city == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.cities[city]

	return ok
}

// Cities returns all known city IDs, sorted.
// Complexity: O(C·log C).
func (g *Graph) Cities() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, 0, len(g.cities))
	for c := range g.cities {
		out = append(out, c)
	}
	sort.Strings(out)

	return out
}

// CityCount returns the number of known cities.
// Complexity: O(1).
func (g *Graph) CityCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.cities)
}

// IsNil reports whether the receiver is a nil *Graph, so code holding the graph
// behind an interface can reject typed nils without reflection.
func (g *Graph) IsNil() bool { return g == nil }
