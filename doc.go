// Package farepath finds the cheapest flight routes through a timetable
// whose fares change with departure time and seat availability.
//
// What is farepath?
//
//	A small, thread-safe library plus a CLI:
//		• fare:      price of one flight at a reference time
//		• network:   directed multigraph of flights between cities
//		• search:    cheapest path under optional hop and flight-time limits
//		• roundtrip: outbound + inbound leg, the return quoted one day later
//		• timetable: YAML schedules with validation, and a built-in demo
//
// Pricing:
//
//	price = distance × 0.1
//	      × 1.2  if the reference hour is within 08:00–20:59
//	      × 1.5  if fewer than 20 seats remain
//
// Every flight of a search is priced at the query's reference time, not at
// its own departure time; the timetable carries no departure times.
//
// Quick example:
//
//	g := network.NewGraph()
//	g.AddFlight("City_A", "City_C", 800, 20, 2*time.Hour)
//	route, _ := search.CheapestRoute(g, "City_A", "City_C", at, search.WithMaxHops(1))
//	// route.Path == [City_A City_C], route.Cost == 96 at 10:00
//
// The farepath command (cmd/farepath) wraps the same packages:
//
//	farepath route --from City_A --to City_C --max-hops 1 --at 2024-05-01T10:00
//	farepath roundtrip --from City_A --to City_C --max-hops 2 --max-duration 5h
package farepath
