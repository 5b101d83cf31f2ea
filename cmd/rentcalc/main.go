package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/projection"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/report"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/scenario"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/valuation"
)

func main() {
	scenarioPath := flag.String("scenario", "", "Scenario file (.yaml, .hjson or .json); defaults when empty")
	exportPath := flag.String("export", "", "Write the full result as JSON to this path")
	reportPath := flag.String("report", "", "Write an HTML report to this path")
	sensitivityParam := flag.String("sensitivity", "", "Parameter to sweep (e.g. capitalization_rate)")
	sensitivityValues := flag.String("values", "", "Comma-separated values for the sweep")
	flag.Parse()

	godotenv.Load()

	sc := scenario.Default()
	if *scenarioPath != "" {
		loaded, err := scenario.Load(*scenarioPath)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		sc = *loaded
	}

	terms, breakdown := sc.Resolve()

	if *sensitivityParam != "" {
		runSensitivity(terms, *sensitivityParam, *sensitivityValues)
		return
	}

	fmt.Println("Real Estate Rent Calculator")
	fmt.Println(strings.Repeat("=", 50))

	if breakdown != nil {
		fmt.Printf("Total development cost: %14.0f\n", breakdown.TotalDevelopmentCost)
		fmt.Printf("Buildable area:         %14.0f m2\n", breakdown.BuildableArea)
		fmt.Println()
	}

	result, err := valuation.Analyze(terms)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Optimal annual rent:    %14.0f\n", result.OptimalRent)
	fmt.Printf("Net present value:      %14.0f\n", result.NPV)
	if result.PaybackReached {
		fmt.Printf("Payback period:         %14d years\n", result.PaybackYears)
	} else {
		fmt.Printf("Payback period:         %14s\n", "not reached")
	}
	fmt.Printf("Internal rate of return:%13.2f%%\n", result.IRRPct)
	fmt.Printf("Total returns:          %14.0f\n", result.TotalReturns)
	fmt.Printf("Search iterations:      %14d\n", result.Iterations)
	fmt.Println()

	// Schedule preview, first five years
	fmt.Println("Cash flows (first 5 years):")
	fmt.Println(strings.Repeat("-", 62))
	fmt.Printf("%-6s %16s %16s %16s\n", "Year", "Annual Rent", "Discounted", "Cumulative")
	fmt.Println(strings.Repeat("-", 62))
	for _, cf := range result.Schedule {
		if cf.Year > 5 {
			break
		}
		fmt.Printf("%-6d %16.0f %16.0f %16.0f\n",
			cf.Year, cf.Rent, cf.DiscountedCashFlow, cf.CumulativeCashFlow)
	}

	export := report.Build(sc, breakdown, terms, result)

	if *exportPath != "" {
		if err := export.WriteJSON(*exportPath); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nExported JSON to %s\n", *exportPath)
	}

	if *reportPath != "" {
		html, err := report.RenderHTML(report.Markdown(export))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*reportPath, html, 0o644); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote HTML report to %s\n", *reportPath)
	}
}

func runSensitivity(terms projection.LeaseTerms, param, values string) {
	if values == "" {
		fmt.Println("Error: -sensitivity requires -values (comma-separated)")
		os.Exit(1)
	}

	var variations []float64
	for _, raw := range strings.Split(values, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			fmt.Printf("Error: bad value %q: %v\n", raw, err)
			os.Exit(1)
		}
		variations = append(variations, v)
	}

	points, err := valuation.SensitivityAnalysis(terms, param, variations)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Sensitivity: %s\n", param)
	fmt.Println(strings.Repeat("-", 62))
	fmt.Printf("%16s %16s %16s %10s\n", "Value", "Optimal Rent", "NPV", "Payback")
	fmt.Println(strings.Repeat("-", 62))
	for _, p := range points {
		payback := "never"
		if p.Result.PaybackReached {
			payback = strconv.Itoa(p.Result.PaybackYears)
		}
		fmt.Printf("%16.2f %16.0f %16.0f %10s\n",
			p.Value, p.Result.OptimalRent, p.Result.NPV, payback)
	}
}
