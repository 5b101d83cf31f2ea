package scenario

import (
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/costs"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/projection"
)

// Contract mirrors projection.LeaseTerms minus the development cost, which a
// scenario supplies either directly or via property inputs.
type Contract struct {
	DurationYears         int     `json:"contract_duration" yaml:"contract_duration"`
	GracePeriodYears      int     `json:"grace_period" yaml:"grace_period"`
	IncreaseIntervalYears int     `json:"rent_increase_interval" yaml:"rent_increase_interval"`
	IncreaseRatePct       float64 `json:"rent_increase_rate" yaml:"rent_increase_rate"`
	CapRatePct            float64 `json:"capitalization_rate" yaml:"capitalization_rate"`
}

// Scenario is one complete calculator input, as read from a scenario file or
// an API request body. TotalDevelopmentCost, when positive, overrides the
// property-based derivation.
type Scenario struct {
	Contract             Contract              `json:"contract" yaml:"contract"`
	Property             *costs.PropertyInputs `json:"property,omitempty" yaml:"property,omitempty"`
	CostRatios           *costs.Ratios         `json:"cost_ratios,omitempty" yaml:"cost_ratios,omitempty"`
	TotalDevelopmentCost float64               `json:"total_development_cost,omitempty" yaml:"total_development_cost,omitempty"`
}

// Default returns the stock 20-year scenario used when no file is given.
func Default() Scenario {
	return Scenario{
		Contract: Contract{
			DurationYears:         20,
			GracePeriodYears:      2,
			IncreaseIntervalYears: 5,
			IncreaseRatePct:       10.0,
			CapRatePct:            7.0,
		},
		Property: &costs.PropertyInputs{
			LandArea:                 10000.0,
			BuildingFactor:           2.5,
			BuildingRatioPct:         60.0,
			ConstructionCostPerSqm:   2000.0,
			LandscapingCostPerSqm:    500.0,
			InfrastructureCostPerSqm: 3000.0,
			DevelopmentYears:         2,
		},
		CostRatios: &costs.Ratios{
			DesignPct:      7.0,
			SupervisionPct: 5.0,
			ContingencyPct: 2.0,
		},
	}
}

// Resolve turns the scenario into lease terms for the core, clamping fields
// the projection math cannot tolerate (the core assumes a sane interval and
// grace period rather than re-validating). An explicit TotalDevelopmentCost
// wins; otherwise the cost is derived from the property inputs and the
// itemized breakdown is returned alongside for reporting.
func (s Scenario) Resolve() (projection.LeaseTerms, *costs.Breakdown) {
	terms := projection.LeaseTerms{
		ContractYears:         s.Contract.DurationYears,
		GraceYears:            s.Contract.GracePeriodYears,
		IncreaseIntervalYears: s.Contract.IncreaseIntervalYears,
		IncreaseRatePct:       s.Contract.IncreaseRatePct,
		CapRatePct:            s.Contract.CapRatePct,
	}
	if terms.IncreaseIntervalYears < 1 {
		terms.IncreaseIntervalYears = 1
	}
	if terms.GraceYears < 0 {
		terms.GraceYears = 0
	}

	if s.TotalDevelopmentCost > 0 {
		terms.TotalDevelopmentCost = s.TotalDevelopmentCost
		return terms, nil
	}

	if s.Property != nil {
		var ratios costs.Ratios
		if s.CostRatios != nil {
			ratios = *s.CostRatios
		}
		breakdown := costs.Calculate(*s.Property, ratios)
		terms.TotalDevelopmentCost = breakdown.TotalDevelopmentCost
		return terms, &breakdown
	}

	return terms, nil
}
