package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/costs"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/projection"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/scenario"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/valuation"
)

// Export is the machine-readable record of one calculator run: inputs, the
// derived cost breakdown when one was used, and every computed result.
type Export struct {
	RunID     string                    `json:"run_id"`
	Timestamp string                    `json:"timestamp"`
	Inputs    scenario.Scenario         `json:"inputs"`
	Costs     *costs.Breakdown          `json:"calculated_costs,omitempty"`
	Results   Results                   `json:"results"`
	CashFlows []projection.YearCashFlow `json:"cash_flows"`
}

// Results flattens the headline numbers for consumers that skip the schedule.
type Results struct {
	OptimalAnnualRent    float64 `json:"optimal_annual_rent"`
	NPV                  float64 `json:"npv"`
	PaybackPeriod        int     `json:"payback_period"`
	PaybackReached       bool    `json:"payback_reached"`
	IRR                  float64 `json:"irr"`
	TotalReturns         float64 `json:"total_returns"`
	AverageAnnualReturn  float64 `json:"average_annual_return"`
	AnnualReturnPct      float64 `json:"annual_return_pct"`
	TotalDevelopmentCost float64 `json:"total_development_cost"`
	Iterations           int     `json:"iterations"`
}

// Build assembles an export record from one analysis run. A fresh run id and
// timestamp are minted per call; nothing is shared between runs.
func Build(sc scenario.Scenario, breakdown *costs.Breakdown, terms projection.LeaseTerms, res *valuation.AnalysisResult) Export {
	return Export{
		RunID:     uuid.NewString(),
		Timestamp: time.Now().Format(time.RFC3339),
		Inputs:    sc,
		Costs:     breakdown,
		Results: Results{
			OptimalAnnualRent:    res.OptimalRent,
			NPV:                  res.NPV,
			PaybackPeriod:        res.PaybackYears,
			PaybackReached:       res.PaybackReached,
			IRR:                  res.IRRPct,
			TotalReturns:         res.TotalReturns,
			AverageAnnualReturn:  res.AverageAnnualReturn,
			AnnualReturnPct:      res.AnnualReturnPct,
			TotalDevelopmentCost: terms.TotalDevelopmentCost,
			Iterations:           res.Iterations,
		},
		CashFlows: res.Schedule,
	}
}

// JSON renders the export as indented JSON.
func (e Export) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("report: marshal export: %w", err)
	}
	return data, nil
}

// WriteJSON writes the export to a file.
func (e Export) WriteJSON(path string) error {
	data, err := e.JSON()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("report: write %s: %w", path, err)
	}
	return nil
}
