package valuation

import (
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/projection"
)

// PaybackPeriod returns the first year at which the cumulative discounted
// cash flow turns non-negative. When the investment never pays back within
// the horizon it returns the full contract duration with reached=false;
// callers must not read that as a literal year count.
func PaybackPeriod(schedule []projection.YearCashFlow) (years int, reached bool) {
	for _, cf := range schedule {
		if cf.CumulativeCashFlow >= 0 {
			return cf.Year, true
		}
	}
	return len(schedule), false
}

// AnnualReturn expresses the rent as a percentage of the development cost.
// Defined as 0 for zero cost, a degenerate configuration otherwise rejected
// by LeaseTerms.Validate.
func AnnualReturn(annualRent, totalDevelopmentCost float64) float64 {
	if totalDevelopmentCost == 0 {
		return 0
	}
	return annualRent / totalDevelopmentCost * 100
}

// TotalReturns sums the nominal (undiscounted) rent over the schedule.
func TotalReturns(schedule []projection.YearCashFlow) float64 {
	var total float64
	for _, cf := range schedule {
		total += cf.Rent
	}
	return total
}

// AverageAnnualReturn is the nominal rent total spread over the contract.
func AverageAnnualReturn(schedule []projection.YearCashFlow, contractYears int) float64 {
	if contractYears <= 0 {
		return 0
	}
	return TotalReturns(schedule) / float64(contractYears)
}
