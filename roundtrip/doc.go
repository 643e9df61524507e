// Package roundtrip composes two cheapest-route searches into a round trip.
//
// Plan runs the outbound leg start→goal at the reference time, then the
// inbound leg goal→start one calendar day later, with the same hop and
// duration limits applied to each leg independently. The two paths are merged
// into one continuous itinerary sharing the turnaround city:
//
//	outbound: [A, B, C]      inbound: [C, B, A]
//	trip:     [A, B, C, B, A]
//
// If either leg has no feasible route the whole trip fails and an empty Trip
// is returned; a partial itinerary is never produced.
//
// The one-day delay is fixed policy. It is applied with time.AddDate, so the
// wall-clock hour of the reference time is kept even across daylight-saving
// changes and the peak-hour factor of the inbound leg matches the outbound one.
package roundtrip
