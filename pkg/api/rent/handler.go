package rent

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/projection"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/report"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/scenario"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/valuation"
)

// SensitivityRequest sweeps one parameter across the given values.
type SensitivityRequest struct {
	Scenario   scenario.Scenario `json:"scenario"`
	Parameter  string            `json:"parameter"`
	Variations []float64         `json:"variations"`
}

// HandleAnalyze computes the breakeven rent analysis for a posted scenario.
// Stateless: every request re-reads its inputs and recomputes from scratch.
func HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	if !corsPreamble(w, r) {
		return
	}

	var sc scenario.Scenario
	if err := json.NewDecoder(r.Body).Decode(&sc); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	terms, breakdown := sc.Resolve()
	fmt.Printf("[RENT] Analyze: %d years, grace %d, cost %.0f\n",
		terms.ContractYears, terms.GraceYears, terms.TotalDevelopmentCost)

	result, err := valuation.Analyze(terms)
	if err != nil {
		if errors.Is(err, projection.ErrInvalidCost) || errors.Is(err, projection.ErrInvalidDuration) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		} else {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	export := report.Build(sc, breakdown, terms, result)
	fmt.Printf("[RENT] Done: rent %.0f, npv %.0f, %d iterations\n",
		result.OptimalRent, result.NPV, result.Iterations)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(export)
}

// HandleSensitivity runs the analysis once per variation of one parameter.
func HandleSensitivity(w http.ResponseWriter, r *http.Request) {
	if !corsPreamble(w, r) {
		return
	}

	var req SensitivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	terms, _ := req.Scenario.Resolve()
	fmt.Printf("[RENT] Sensitivity: %s over %d values\n", req.Parameter, len(req.Variations))

	points, err := valuation.SensitivityAnalysis(terms, req.Parameter, req.Variations)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(points)
}

// corsPreamble applies the CORS headers and short-circuits preflight and
// non-POST requests. Returns false when the request is already handled.
func corsPreamble(w http.ResponseWriter, r *http.Request) bool {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return false
	}
	if r.Method != "POST" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}
