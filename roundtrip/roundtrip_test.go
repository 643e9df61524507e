package roundtrip_test

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/farepath/network"
	"github.com/katalvlaran/farepath/roundtrip"
	"github.com/katalvlaran/farepath/search"
)

type countingRecorder struct{ reports []search.Report }

func (c *countingRecorder) RecordSearch(r search.Report) { c.reports = append(c.reports, r) }

type RoundTripSuite struct {
	suite.Suite
	g  *network.Graph
	at time.Time
}

// SetupTest builds the five-flight reference schedule.
func (s *RoundTripSuite) SetupTest() {
	s.g = network.NewGraph()
	for _, f := range []struct {
		from, to string
		distance float64
		seats    int
		d        time.Duration
	}{
		{"A", "B", 500, 50, time.Hour},
		{"B", "C", 300, 30, time.Hour},
		{"A", "C", 800, 20, 2 * time.Hour},
		{"C", "B", 600, 20, time.Hour},
		{"B", "A", 300, 20, 2 * time.Hour},
	} {
		_, err := s.g.AddFlight(f.from, f.to, f.distance, f.seats, f.d)
		s.Require().NoError(err)
	}
	s.at = time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC)
}

func (s *RoundTripSuite) TestReferenceRoundTrip() {
	require := require.New(s.T())

	trip, err := roundtrip.Plan(s.g, "A", "C", s.at,
		search.WithMaxHops(2), search.WithMaxDuration(5*time.Hour))
	require.NoError(err)
	require.True(trip.Found())
	require.Equal([]string{"A", "C"}, trip.Outbound.Path)
	require.Equal([]string{"C", "B", "A"}, trip.Inbound.Path)
	require.Equal([]string{"A", "C", "B", "A"}, trip.Path)
	require.InDelta(96.0+72.0+36.0, trip.Cost, 1e-9)
	require.Equal(5*time.Hour, trip.Duration)
}

func (s *RoundTripSuite) TestFindRoundTripReturnsPath() {
	path, err := roundtrip.FindRoundTrip(s.g, "A", "B", s.at)
	s.Require().NoError(err)
	s.Require().Equal([]string{"A", "B", "A"}, path)
}

func (s *RoundTripSuite) TestOutboundFailureSkipsInbound() {
	require := require.New(s.T())
	rec := &countingRecorder{}

	trip, err := roundtrip.Plan(s.g, "A", "Z", s.at, search.WithRecorder(rec))
	require.NoError(err)
	require.False(trip.Found())
	require.Empty(trip.Path)
	require.Len(rec.reports, 1, "inbound leg must not be searched")
}

func (s *RoundTripSuite) TestInboundFailureYieldsEmptyTrip() {
	require := require.New(s.T())
	_, err := s.g.AddFlight("C", "D", 100, 50, time.Hour) // no way back from D
	require.NoError(err)
	rec := &countingRecorder{}

	trip, err := roundtrip.Plan(s.g, "A", "D", s.at, search.WithRecorder(rec))
	require.NoError(err)
	require.False(trip.Found())
	require.Empty(trip.Path, "no partial itinerary")
	require.Empty(trip.Outbound.Path)
	require.Len(rec.reports, 2)
	require.Equal(search.OutcomeFound, rec.reports[0].Outcome)
	require.Equal(search.OutcomeNoRoute, rec.reports[1].Outcome)
}

func (s *RoundTripSuite) TestLimitsApplyPerLeg() {
	// C→A needs two hops; with one hop the inbound leg fails.
	path, err := roundtrip.FindRoundTrip(s.g, "A", "C", s.at, search.WithMaxHops(1))
	s.Require().NoError(err)
	s.Require().Empty(path)

	// 3h per leg suffices (2h out, 3h back) although the trip takes 5h.
	path, err = roundtrip.FindRoundTrip(s.g, "A", "C", s.at, search.WithMaxDuration(3*time.Hour))
	s.Require().NoError(err)
	s.Require().Equal([]string{"A", "C", "B", "A"}, path)
}

func (s *RoundTripSuite) TestStartEqualsGoal() {
	path, err := roundtrip.FindRoundTrip(s.g, "B", "B", s.at)
	s.Require().NoError(err)
	s.Require().Equal([]string{"B"}, path)
}

func (s *RoundTripSuite) TestErrorsPropagate() {
	_, err := roundtrip.Plan(s.g, "A", "C", s.at, search.WithMaxHops(-1))
	s.Require().ErrorIs(err, search.ErrBadMaxHops)

	_, err = roundtrip.FindRoundTrip(nil, "A", "C", s.at)
	s.Require().ErrorIs(err, search.ErrNilGraph)
}

func (s *RoundTripSuite) TestInboundQuotedOneDayLater() {
	var quoted []time.Time
	pricer := func(f network.Flight, at time.Time) float64 {
		quoted = append(quoted, at)
		return f.Price(at)
	}

	_, err := roundtrip.Plan(s.g, "A", "C", s.at, search.WithPricer(pricer))
	s.Require().NoError(err)
	s.Require().NotEmpty(quoted)
	s.Require().Equal(s.at, quoted[0])
	s.Require().Equal(s.at.AddDate(0, 0, 1), quoted[len(quoted)-1])
}

func TestRoundTripSuite(t *testing.T) {
	suite.Run(t, new(RoundTripSuite))
}

func TestReturnTime_KeepsWallClockHourAcrossDST(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	// Clocks move forward on 2025-03-30 in Berlin.
	at := time.Date(2025, time.March, 29, 10, 0, 0, 0, berlin)
	back := roundtrip.ReturnTime(at)

	require.Equal(t, 10, back.Hour())
	require.Equal(t, 30, back.Day())
	require.Equal(t, 23*time.Hour, back.Sub(at))
}
