package valuation

import (
	"math"

	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/projection"
)

// InternalRateOfReturn solves for the discount rate that zeroes the NPV of
// the nominal flow series [-initialInvestment, rent_1 .. rent_N] using
// Newton-Raphson. Returns a percentage.
func InternalRateOfReturn(schedule []projection.YearCashFlow, initialInvestment float64) float64 {
	flows := make([]float64, 0, len(schedule)+1)
	flows = append(flows, -initialInvestment)
	for _, cf := range schedule {
		flows = append(flows, cf.Rent)
	}

	// 1. Initial guess: 10%
	guess := 0.10

	for i := 0; i < 1000; i++ {
		// 2. NPV and its derivative at the current guess
		var npv, derivative float64
		for t, flow := range flows {
			factor := math.Pow(1+guess, float64(t))
			npv += flow / factor
			if t > 0 {
				derivative -= float64(t) * flow / math.Pow(1+guess, float64(t+1))
			}
		}

		// 3. Flat derivative means no usable update
		if math.Abs(derivative) < 1e-10 {
			break
		}

		next := guess - npv/derivative

		// 4. Converged
		if math.Abs(next-guess) < 1e-8 {
			guess = next
			break
		}

		guess = next

		// Keep the discount factor base positive
		if guess < -0.99 {
			guess = -0.99
		}
	}

	return guess * 100
}
