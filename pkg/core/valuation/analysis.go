package valuation

import (
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/projection"
)

// AnalysisResult is the full set of outputs the presentation layers consume:
// the breakeven rent, its projection, and every derived metric.
type AnalysisResult struct {
	OptimalRent         float64                   `json:"optimal_annual_rent"`
	NPV                 float64                   `json:"npv"`
	Schedule            []projection.YearCashFlow `json:"cash_flows"`
	PaybackYears        int                       `json:"payback_period"`
	PaybackReached      bool                      `json:"payback_reached"`
	AnnualReturnPct     float64                   `json:"annual_return_pct"`
	IRRPct              float64                   `json:"irr"`
	TotalReturns        float64                   `json:"total_returns"`
	AverageAnnualReturn float64                   `json:"average_annual_return"`
	Iterations          int                       `json:"iterations"`
	Converged           bool                      `json:"converged"`
}

// Analyze runs the complete computation: validate terms, search for the
// breakeven rent, then re-project once at that rent to produce the schedule
// the caller displays. Each invocation is independent; nothing is retained.
func Analyze(terms projection.LeaseTerms) (*AnalysisResult, error) {
	if err := terms.Validate(); err != nil {
		return nil, err
	}

	opt := FindOptimalRent(terms)
	proj := projection.Project(opt.OptimalRent, terms)

	payback, reached := PaybackPeriod(proj.Schedule)

	return &AnalysisResult{
		OptimalRent:         opt.OptimalRent,
		NPV:                 proj.NPV,
		Schedule:            proj.Schedule,
		PaybackYears:        payback,
		PaybackReached:      reached,
		AnnualReturnPct:     AnnualReturn(opt.OptimalRent, terms.TotalDevelopmentCost),
		IRRPct:              InternalRateOfReturn(proj.Schedule, terms.TotalDevelopmentCost),
		TotalReturns:        TotalReturns(proj.Schedule),
		AverageAnnualReturn: AverageAnnualReturn(proj.Schedule, terms.ContractYears),
		Iterations:          opt.Iterations,
		Converged:           opt.Converged,
	}, nil
}
