package fare

import "time"

// Tariff constants. They are fixed policy, not configuration.
const (
	// RatePerDistance converts distance units into the base price.
	RatePerDistance = 0.1

	// PeakSurcharge multiplies the price inside the peak window.
	PeakSurcharge = 1.2

	// PeakStartHour and PeakEndHour bound the peak window, both inclusive.
	PeakStartHour = 8
	PeakEndHour   = 20

	// LowSeatsThreshold is the seat count below which LowSeatsSurcharge applies.
	LowSeatsThreshold = 20

	// LowSeatsSurcharge multiplies the price when few seats remain.
	LowSeatsSurcharge = 1.5
)

// BasePrice returns the undiscounted, unsurcharged price for a distance.
func BasePrice(distance float64) float64 {
	return distance * RatePerDistance
}

// PeakFactor returns PeakSurcharge if at falls inside the peak window, else 1.
func PeakFactor(at time.Time) float64 {
	h := at.Hour()
	if h >= PeakStartHour && h <= PeakEndHour {
		return PeakSurcharge
	}

	return 1
}

// AvailabilityFactor returns LowSeatsSurcharge when seats < LowSeatsThreshold, else 1.
func AvailabilityFactor(seats int) float64 {
	if seats < LowSeatsThreshold {
		return LowSeatsSurcharge
	}

	return 1
}

// CurrentPrice quotes a flight with the given distance and remaining seats at time at.
//
// Complexity: O(1).
func CurrentPrice(distance float64, seats int, at time.Time) float64 {
	return BasePrice(distance) * PeakFactor(at) * AvailabilityFactor(seats)
}

// Breakdown itemizes a quote so callers can render how a price was formed.
type Breakdown struct {
	Base         float64 // distance × RatePerDistance
	Peak         float64 // PeakFactor at the quote time
	Availability float64 // AvailabilityFactor for the seat count
	Total        float64 // Base × Peak × Availability
}

// Explain returns the factors behind CurrentPrice(distance, seats, at).
// Total is always equal to CurrentPrice for the same arguments.
func Explain(distance float64, seats int, at time.Time) Breakdown {
	b := Breakdown{
		Base:         BasePrice(distance),
		Peak:         PeakFactor(at),
		Availability: AvailabilityFactor(seats),
	}
	b.Total = b.Base * b.Peak * b.Availability

	return b
}
