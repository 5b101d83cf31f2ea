package scenario

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := writeTemp(t, "lease.yaml", `
contract:
  contract_duration: 15
  grace_period: 1
  rent_increase_interval: 3
  rent_increase_rate: 5
  capitalization_rate: 8
total_development_cost: 1000000
`)

	sc, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if sc.Contract.DurationYears != 15 || sc.Contract.CapRatePct != 8 {
		t.Errorf("contract = %+v", sc.Contract)
	}
	if sc.TotalDevelopmentCost != 1000000 {
		t.Errorf("total cost = %f, want 1000000", sc.TotalDevelopmentCost)
	}
}

func TestLoad_HJSON(t *testing.T) {
	// Comments and unquoted keys are the point of hjson scenario files.
	path := writeTemp(t, "lease.hjson", `
{
  # reference contract
  contract: {
    contract_duration: 20
    grace_period: 2
    rent_increase_interval: 5
    rent_increase_rate: 10
    capitalization_rate: 7
  }
  total_development_cost: 93480000
}
`)

	sc, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if sc.Contract.DurationYears != 20 || sc.TotalDevelopmentCost != 93480000 {
		t.Errorf("scenario = %+v", sc)
	}
}

func TestLoad_RepairsHandEditedJSON(t *testing.T) {
	// Trailing comma: invalid JSON, repairable.
	path := writeTemp(t, "lease.json", `{
  "contract": {
    "contract_duration": 10,
    "grace_period": 1,
    "rent_increase_interval": 2,
    "rent_increase_rate": 5,
    "capitalization_rate": 6,
  },
  "total_development_cost": 500000,
}`)

	sc, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if sc.Contract.DurationYears != 10 || sc.TotalDevelopmentCost != 500000 {
		t.Errorf("scenario = %+v", sc)
	}
}

func TestLoad_RejectsUnknownExtension(t *testing.T) {
	path := writeTemp(t, "lease.toml", "whatever")
	if _, err := Load(path); err == nil {
		t.Error("unknown extension accepted")
	}
}

func TestResolve_ExplicitCostWins(t *testing.T) {
	sc := Default()
	sc.TotalDevelopmentCost = 123456

	terms, breakdown := sc.Resolve()
	if terms.TotalDevelopmentCost != 123456 {
		t.Errorf("cost = %f, want the explicit override", terms.TotalDevelopmentCost)
	}
	if breakdown != nil {
		t.Error("explicit cost should skip the property derivation")
	}
}

func TestResolve_DerivesFromProperty(t *testing.T) {
	// Default() carries the reference site, which derives to 93,480,000.
	terms, breakdown := Default().Resolve()
	if breakdown == nil {
		t.Fatal("expected a cost breakdown from property inputs")
	}
	if terms.TotalDevelopmentCost != breakdown.TotalDevelopmentCost {
		t.Errorf("terms cost %f != breakdown total %f", terms.TotalDevelopmentCost, breakdown.TotalDevelopmentCost)
	}
	if diff := terms.TotalDevelopmentCost - 93480000; diff > 1 || diff < -1 {
		t.Errorf("derived cost = %f, want 93480000", terms.TotalDevelopmentCost)
	}
	if terms.ContractYears != 20 || terms.GraceYears != 2 {
		t.Errorf("terms = %+v", terms)
	}
}
