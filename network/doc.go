// Package network provides the route graph searched by farepath: an in-memory,
// directed multigraph of scheduled flights between cities.
//
// A Graph G = (C, F) stores, for every origin city, the ordered list of flights
// leaving it. Several flights may connect the same pair of cities; each one is
// an alternative scheduled connection with its own distance, seat count and
// duration.
//
// Key properties:
//
//   - Directed: a flight A→B says nothing about B→A.
//   - Multigraph: AddFlight never deduplicates.
//   - Insertion order: Outgoing(city) and Flights() return flights in the
//     order they were added, which keeps searches reproducible.
//   - Validation: AddFlight fails fast on empty city IDs and on negative
//     (or non-finite) distance, negative seats, or negative duration.
//   - Monotonic flight IDs: "f1", "f2", … assigned atomically.
//
// Core methods:
//
//	// Construction
//	AddFlight(from, to string, distance float64, seats int, d time.Duration) (id string, err error) // O(1) amortized
//
//	// Query
//	Outgoing(city string) []Flight   // O(deg(city)); nil for unknown cities
//	HasCity(city string) bool         // O(1)
//	Cities() []string                 // O(C·log C), sorted
//	Flights() []Flight                // O(F), insertion order
//	CityCount() int / FlightCount() int
//
//	// Cloning
//	Clone() *Graph                    // O(C + F)
//
// Concurrency:
//
//	A single sync.RWMutex guards the catalog, so AddFlight may be interleaved
//	with queries without data races. A search however reads the graph one
//	expansion at a time: do not add flights while a search over the same Graph
//	is running if you need the search to see a consistent schedule.
//
// Errors:
//
//	ErrEmptyCityID       – zero-length origin or destination
//	ErrNegativeDistance  – distance < 0, NaN or ±Inf
//	ErrNegativeSeats     – seats < 0
//	ErrNegativeDuration  – duration < 0
package network
