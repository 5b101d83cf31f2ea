package valuation

import (
	"fmt"

	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/projection"
)

// SensitivityPoint pairs one tested parameter value with its full analysis.
type SensitivityPoint struct {
	Parameter string          `json:"parameter"`
	Value     float64         `json:"value"`
	Result    *AnalysisResult `json:"result"`
}

// SensitivityAnalysis re-runs the full analysis once per variation of the
// named parameter. The input terms are never mutated; each run works on an
// adjusted copy. Parameter names match the LeaseTerms JSON field names.
func SensitivityAnalysis(terms projection.LeaseTerms, parameter string, variations []float64) ([]SensitivityPoint, error) {
	points := make([]SensitivityPoint, 0, len(variations))

	for _, v := range variations {
		adjusted, err := withParameter(terms, parameter, v)
		if err != nil {
			return nil, err
		}

		result, err := Analyze(adjusted)
		if err != nil {
			return nil, fmt.Errorf("sensitivity %s=%v: %w", parameter, v, err)
		}

		points = append(points, SensitivityPoint{
			Parameter: parameter,
			Value:     v,
			Result:    result,
		})
	}

	return points, nil
}

func withParameter(terms projection.LeaseTerms, parameter string, value float64) (projection.LeaseTerms, error) {
	switch parameter {
	case "contract_duration":
		terms.ContractYears = int(value)
	case "grace_period":
		terms.GraceYears = int(value)
	case "rent_increase_interval":
		terms.IncreaseIntervalYears = int(value)
		// Same clamp scenario.Resolve applies; a zero interval would divide
		// by zero in the escalation modulus.
		if terms.IncreaseIntervalYears < 1 {
			terms.IncreaseIntervalYears = 1
		}
	case "rent_increase_rate":
		terms.IncreaseRatePct = value
	case "capitalization_rate":
		terms.CapRatePct = value
	case "total_development_cost":
		terms.TotalDevelopmentCost = value
	default:
		return terms, fmt.Errorf("sensitivity: unknown parameter %q", parameter)
	}
	return terms, nil
}
