package valuation

import (
	"math"

	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/projection"
)

const (
	// rentSearchCeiling is a fixed practical cap on candidate rents. It is
	// not derived from the inputs.
	rentSearchCeiling = 50_000_000.0

	// rentTolerance is the absolute currency-unit precision of the search.
	rentTolerance = 1000.0

	// maxSearchIterations is a safety bound only; the interval halves each
	// step and converges in ~16 iterations for the ceiling and tolerance above.
	maxSearchIterations = 50
)

// OptimizationResult captures the outcome of the breakeven rent search.
type OptimizationResult struct {
	OptimalRent float64 `json:"optimal_rent"`
	NPV         float64 `json:"npv"` // NPV at OptimalRent
	Iterations  int     `json:"iterations"`
	Converged   bool    `json:"converged"`
}

// FindOptimalRent bisects over [0, rentSearchCeiling] for the rent that makes
// the project break even: the lowest rent (within tolerance) whose NPV is
// non-negative. NPV is monotonically non-decreasing in the base rent, since
// every year's flow scales with it, so bisection is valid.
//
// Loop invariant: every feasible midpoint is recorded and the interval keeps
// the breakeven point bracketed. If no midpoint ever yields NPV >= 0 (e.g. the
// grace period swallows the whole horizon), OptimalRent stays 0, meaning the
// project cannot break even at any rent.
func FindOptimalRent(terms projection.LeaseTerms) OptimizationResult {
	low := 0.0
	high := rentSearchCeiling

	var res OptimizationResult

	for high-low > rentTolerance && res.Iterations < maxSearchIterations {
		mid := math.Floor((low + high) / 2)

		if p := projection.Project(mid, terms); p.NPV >= 0 {
			res.OptimalRent = mid
			res.NPV = p.NPV
			high = mid
		} else {
			low = mid
		}

		res.Iterations++
	}

	res.Converged = high-low <= rentTolerance
	return res
}
