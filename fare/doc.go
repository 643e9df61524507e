// Package fare prices a single scheduled flight at a given moment.
//
// The price of a flight is a pure function of its static attributes and the
// reference time at which it is quoted:
//
//	price = distance × RatePerDistance × PeakFactor(at) × AvailabilityFactor(seats)
//
// where:
//
//   - PeakFactor(at) is PeakSurcharge when at.Hour() lies in
//     [PeakStartHour, PeakEndHour] (inclusive), otherwise 1.
//   - AvailabilityFactor(seats) is LowSeatsSurcharge when seats < LowSeatsThreshold,
//     otherwise 1.
//
// The hour is read in the location carried by the time.Time value, so callers
// decide which local clock the peak window refers to.
//
// Guarantees:
//
//   - Pure and total: no state, no errors, no allocations.
//   - Non-negative for non-negative distance; strictly positive when distance > 0.
//
// Validation of negative distances or seat counts is not done here; it
// belongs to graph construction (see network.Graph.AddFlight).
package fare
