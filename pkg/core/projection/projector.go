package projection

import "math"

// Project produces the year-by-year cash-flow schedule for a candidate annual
// rent. Pure and deterministic: same inputs, same schedule, no shared state.
//
// Rent mechanics:
//   - Years inside the grace period charge nothing and do not advance the
//     escalation clock.
//   - The first year after the grace period charges the base rent unescalated.
//   - Every IncreaseIntervalYears after that, the running rent is multiplied
//     by (1 + IncreaseRatePct/100) and the escalated value is charged that
//     same year.
//
// Each year's flow is discounted at CapRatePct and accumulated into a running
// total seeded with -TotalDevelopmentCost. NPV is the final running total.
func Project(annualRent float64, terms LeaseTerms) Projection {
	cumulative := -terms.TotalDevelopmentCost
	schedule := make([]YearCashFlow, 0, terms.ContractYears)

	currentRent := annualRent

	for year := 1; year <= terms.ContractYears; year++ {
		rent := 0.0
		applied := 0.0

		if year > terms.GraceYears {
			rent = currentRent

			// The very first post-grace year is never escalated.
			sinceGrace := year - terms.GraceYears - 1
			if year > terms.GraceYears+1 && sinceGrace%terms.IncreaseIntervalYears == 0 {
				applied = terms.IncreaseRatePct
				currentRent *= 1 + terms.IncreaseRatePct/100
				rent = currentRent
			}
		}

		discounted := rent / math.Pow(1+terms.CapRatePct/100, float64(year))
		cumulative += discounted

		schedule = append(schedule, YearCashFlow{
			Year:               year,
			Rent:               rent,
			DiscountedCashFlow: discounted,
			CumulativeCashFlow: cumulative,
			AppliedIncreasePct: applied,
		})
	}

	return Projection{NPV: cumulative, Schedule: schedule}
}
