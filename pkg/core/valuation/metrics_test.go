package valuation

import (
	"math"
	"testing"

	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/projection"
)

func TestPaybackPeriod(t *testing.T) {
	schedule := []projection.YearCashFlow{
		{Year: 1, CumulativeCashFlow: -500},
		{Year: 2, CumulativeCashFlow: -100},
		{Year: 3, CumulativeCashFlow: 50},
		{Year: 4, CumulativeCashFlow: 200},
	}

	years, reached := PaybackPeriod(schedule)
	if years != 3 || !reached {
		t.Errorf("payback = (%d, %v), want (3, true)", years, reached)
	}
}

func TestPaybackPeriod_NeverReached(t *testing.T) {
	schedule := []projection.YearCashFlow{
		{Year: 1, CumulativeCashFlow: -500},
		{Year: 2, CumulativeCashFlow: -400},
		{Year: 3, CumulativeCashFlow: -350},
	}

	years, reached := PaybackPeriod(schedule)
	if years != 3 || reached {
		t.Errorf("payback = (%d, %v), want full duration with reached=false", years, reached)
	}
}

func TestAnnualReturn(t *testing.T) {
	if got := AnnualReturn(10_000, 100_000); got != 10 {
		t.Errorf("AnnualReturn = %f, want 10", got)
	}
	if got := AnnualReturn(10_000, 0); got != 0 {
		t.Errorf("AnnualReturn with zero cost = %f, want 0", got)
	}
}

func TestTotalAndAverageReturns(t *testing.T) {
	schedule := []projection.YearCashFlow{
		{Year: 1, Rent: 0},
		{Year: 2, Rent: 100},
		{Year: 3, Rent: 110},
	}

	if got := TotalReturns(schedule); got != 210 {
		t.Errorf("TotalReturns = %f, want 210", got)
	}
	if got := AverageAnnualReturn(schedule, 3); got != 70 {
		t.Errorf("AverageAnnualReturn = %f, want 70", got)
	}
	if got := AverageAnnualReturn(schedule, 0); got != 0 {
		t.Errorf("AverageAnnualReturn with zero years = %f, want 0", got)
	}
}

func TestInternalRateOfReturn_TwoYearFlows(t *testing.T) {
	// Invest 1000, receive 600 in years 1 and 2.
	// -1000 + 600x + 600x^2 = 0 with x = 1/(1+r)
	// x = (-600 + sqrt(600^2 + 4*600*1000)) / (2*600) = 0.8844373...
	// r = 1/x - 1 = 0.1306623... -> 13.066%
	terms := projection.LeaseTerms{
		ContractYears:         2,
		GraceYears:            0,
		IncreaseIntervalYears: 1,
		IncreaseRatePct:       0,
		CapRatePct:            5,
		TotalDevelopmentCost:  1000,
	}
	p := projection.Project(600, terms)

	got := InternalRateOfReturn(p.Schedule, 1000)
	if math.Abs(got-13.0662) > 0.01 {
		t.Errorf("IRR = %f%%, want ~13.066%%", got)
	}
}

func TestSensitivityAnalysis(t *testing.T) {
	terms := scenarioA()

	points, err := SensitivityAnalysis(terms, "capitalization_rate", []float64{5, 7, 9})
	if err != nil {
		t.Fatalf("SensitivityAnalysis: %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("points = %d, want 3", len(points))
	}

	// A higher discount rate needs a higher rent to break even.
	if !(points[0].Result.OptimalRent < points[1].Result.OptimalRent &&
		points[1].Result.OptimalRent < points[2].Result.OptimalRent) {
		t.Errorf("optimal rent should rise with the cap rate: %f, %f, %f",
			points[0].Result.OptimalRent, points[1].Result.OptimalRent, points[2].Result.OptimalRent)
	}

	// The input must not be mutated.
	if terms.CapRatePct != 7 {
		t.Errorf("input terms mutated: cap rate = %f", terms.CapRatePct)
	}
}

func TestSensitivityAnalysis_ClampsZeroInterval(t *testing.T) {
	// A zero interval variation must not reach the escalation modulus; it is
	// clamped to 1 the same way scenario.Resolve clamps scenario input.
	points, err := SensitivityAnalysis(scenarioA(), "rent_increase_interval", []float64{5, 0, -3})
	if err != nil {
		t.Fatalf("SensitivityAnalysis: %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("points = %d, want 3", len(points))
	}

	// Clamped runs behave as interval 1: escalation every post-grace year
	// after the first, so the breakeven rent is lower than at interval 5.
	for _, p := range points[1:] {
		if p.Result.OptimalRent <= 0 {
			t.Errorf("interval %v: optimal rent = %f, want positive", p.Value, p.Result.OptimalRent)
		}
		if p.Result.OptimalRent >= points[0].Result.OptimalRent {
			t.Errorf("interval %v: optimal rent = %f, want below interval-5 breakeven %f",
				p.Value, p.Result.OptimalRent, points[0].Result.OptimalRent)
		}
	}
}

func TestSensitivityAnalysis_UnknownParameter(t *testing.T) {
	if _, err := SensitivityAnalysis(scenarioA(), "moon_phase", []float64{1}); err == nil {
		t.Error("unknown parameter accepted")
	}
}
