package search_test

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/farepath/network"
)

// peak and offPeak are reference times inside and outside the 08–20 window.
var (
	peak    = time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC)
	offPeak = time.Date(2025, time.March, 14, 23, 0, 0, 0, time.UTC)
)

// scenarioGraph builds the five-flight schedule A/B/C used across the tests.
//
//	f1 A→B 500 50 1h
//	f2 B→C 300 30 1h
//	f3 A→C 800 20 2h
//	f4 C→B 600 20 1h
//	f5 B→A 300 20 2h
func scenarioGraph(t testing.TB) *network.Graph {
	t.Helper()
	g := network.NewGraph()
	mustAdd(t, g, "A", "B", 500, 50, time.Hour)
	mustAdd(t, g, "B", "C", 300, 30, time.Hour)
	mustAdd(t, g, "A", "C", 800, 20, 2*time.Hour)
	mustAdd(t, g, "C", "B", 600, 20, time.Hour)
	mustAdd(t, g, "B", "A", 300, 20, 2*time.Hour)

	return g
}

func mustAdd(t testing.TB, g *network.Graph, from, to string, distance float64, seats int, d time.Duration) string {
	t.Helper()
	id, err := g.AddFlight(from, to, distance, seats, d)
	require.NoError(t, err)

	return id
}

// distancePricer makes a flight's price equal to its distance, which keeps
// hand-computed costs readable.
func distancePricer(f network.Flight, _ time.Time) float64 { return f.Distance }

// randomGraph builds a reproducible random schedule over n cities.
func randomGraph(t testing.TB, seed int64, n, flights int) *network.Graph {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	g := network.NewGraph()
	for i := 0; i < flights; i++ {
		from := cityName(rng.Intn(n))
		to := cityName(rng.Intn(n))
		mustAdd(t, g, from, to,
			float64(rng.Intn(1000)),
			rng.Intn(60),
			time.Duration(30+rng.Intn(240))*time.Minute,
		)
	}

	return g
}

func cityName(i int) string { return string(rune('A' + i)) }

// requireValidPath checks that consecutive cities are joined by the listed
// flights and returns the summed duration of those flights.
func requireValidPath(t testing.TB, g *network.Graph, path, flights []string) time.Duration {
	t.Helper()
	require.Len(t, flights, len(path)-1)
	var total time.Duration
	for i, id := range flights {
		found := false
		for _, f := range g.Outgoing(path[i]) {
			if f.ID == id {
				require.Equal(t, path[i+1], f.To, "flight %s does not land in %s", id, path[i+1])
				total += f.Duration
				found = true

				break
			}
		}
		require.True(t, found, "flight %s does not leave %s", id, path[i])
	}

	return total
}

// bellmanFord returns the unconstrained minimum cost from start to every city.
func bellmanFord(g *network.Graph, start string, at time.Time) map[string]float64 {
	dist := map[string]float64{start: 0}
	all := g.Flights()
	for i := 0; i < g.CityCount(); i++ {
		changed := false
		for _, f := range all {
			d, ok := dist[f.From]
			if !ok {
				continue
			}
			c := d + f.Price(at)
			if old, ok := dist[f.To]; !ok || c < old-1e-9 {
				dist[f.To] = c
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	return dist
}

// costOf sums the prices of the given flights.
func costOf(g *network.Graph, flights []string, at time.Time) float64 {
	byID := make(map[string]network.Flight)
	for _, f := range g.Flights() {
		byID[f.ID] = f
	}
	total := 0.0
	for _, id := range flights {
		total += byID[id].Price(at)
	}
	if math.IsNaN(total) {
		return math.Inf(1)
	}

	return total
}
