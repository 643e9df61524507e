package fare_test

import (
	"fmt"
	"time"

	"github.com/katalvlaran/farepath/fare"
)

// ExampleCurrentPrice quotes the same 800-unit flight inside and outside the peak window.
func ExampleCurrentPrice() {
	morning := time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC)
	night := time.Date(2025, time.March, 14, 23, 0, 0, 0, time.UTC)

	fmt.Printf("peak: %.2f\n", fare.CurrentPrice(800, 20, morning))
	fmt.Printf("night: %.2f\n", fare.CurrentPrice(800, 20, night))
	fmt.Printf("night, 5 seats left: %.2f\n", fare.CurrentPrice(800, 5, night))
	// Output:
	// peak: 96.00
	// night: 80.00
	// night, 5 seats left: 120.00
}
