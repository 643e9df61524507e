package network_test

import (
	"fmt"
	"time"

	"github.com/katalvlaran/farepath/network"
)

// ExampleGraph_AddFlight builds a small schedule with two alternative A→B flights.
func ExampleGraph_AddFlight() {
	g := network.NewGraph()
	_, _ = g.AddFlight("A", "B", 500, 50, time.Hour)
	_, _ = g.AddFlight("A", "B", 450, 8, 75*time.Minute)
	_, _ = g.AddFlight("B", "C", 300, 30, time.Hour)

	for _, f := range g.Outgoing("A") {
		fmt.Printf("%s %s→%s %.0f seats=%d %s\n", f.ID, f.From, f.To, f.Distance, f.Seats, f.Duration)
	}
	fmt.Println(g.Cities())
	// Output:
	// f1 A→B 500 seats=50 1h0m0s
	// f2 A→B 450 seats=8 1h15m0s
	// [A B C]
}
