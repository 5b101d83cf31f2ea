package projection

import (
	"errors"
	"fmt"
)

// LeaseTerms encapsulates all contract inputs required to project lease cash flows
type LeaseTerms struct {
	ContractYears         int     `json:"contract_duration"`      // Total projection horizon
	GraceYears            int     `json:"grace_period"`           // Years with no rent charged
	IncreaseIntervalYears int     `json:"rent_increase_interval"` // Cadence of escalations after grace
	IncreaseRatePct       float64 `json:"rent_increase_rate"`     // e.g. 10.0 = +10% at each interval
	CapRatePct            float64 `json:"capitalization_rate"`    // Annual discount rate, percent
	TotalDevelopmentCost  float64 `json:"total_development_cost"` // Upfront outlay at year 0
}

// YearCashFlow is one row of the projected schedule, 1-indexed by year.
type YearCashFlow struct {
	Year               int     `json:"year"`
	Rent               float64 `json:"annual_rent"`
	DiscountedCashFlow float64 `json:"discounted_cash_flow"`
	CumulativeCashFlow float64 `json:"cumulative_cash_flow"`
	AppliedIncreasePct float64 `json:"rent_increase_rate"` // Non-zero only on escalation years
}

// Projection holds the schedule and its resulting net present value.
// NPV always equals the final year's CumulativeCashFlow.
type Projection struct {
	NPV      float64        `json:"npv"`
	Schedule []YearCashFlow `json:"schedule"`
}

var (
	// ErrInvalidCost rejects a non-positive development cost; NPV against
	// zero or negative cost is meaningless.
	ErrInvalidCost = errors.New("total development cost must be positive")
	// ErrInvalidDuration rejects an empty projection horizon.
	ErrInvalidDuration = errors.New("contract duration must be at least one year")
)

// Validate checks the preconditions the projection math assumes. Callers must
// run this before Project or the optimizer; the core itself does not re-validate.
func (t LeaseTerms) Validate() error {
	if t.ContractYears <= 0 {
		return fmt.Errorf("lease terms: %w", ErrInvalidDuration)
	}
	if t.TotalDevelopmentCost <= 0 {
		return fmt.Errorf("lease terms: %w", ErrInvalidCost)
	}
	return nil
}
