package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Markdown renders the export as a human-readable report with the headline
// metrics and the full year-by-year schedule table.
func Markdown(e Export) string {
	var b strings.Builder

	b.WriteString("# Rent Analysis Report\n\n")
	fmt.Fprintf(&b, "Run `%s` at %s\n\n", e.RunID, e.Timestamp)

	b.WriteString("## Results\n\n")
	fmt.Fprintf(&b, "- Optimal annual rent: %.0f\n", e.Results.OptimalAnnualRent)
	fmt.Fprintf(&b, "- Net present value: %.0f\n", e.Results.NPV)
	if e.Results.PaybackReached {
		fmt.Fprintf(&b, "- Payback period: year %d\n", e.Results.PaybackPeriod)
	} else {
		b.WriteString("- Payback period: not reached within the contract\n")
	}
	fmt.Fprintf(&b, "- Internal rate of return: %.2f%%\n", e.Results.IRR)
	fmt.Fprintf(&b, "- Annual return on cost: %.2f%%\n", e.Results.AnnualReturnPct)
	fmt.Fprintf(&b, "- Total nominal returns: %.0f\n", e.Results.TotalReturns)
	fmt.Fprintf(&b, "- Total development cost: %.0f\n\n", e.Results.TotalDevelopmentCost)

	if e.Costs != nil {
		b.WriteString("## Development Costs\n\n")
		fmt.Fprintf(&b, "- Buildable area: %.0f m2\n", e.Costs.BuildableArea)
		fmt.Fprintf(&b, "- Construction: %.0f\n", e.Costs.ConstructionCost)
		fmt.Fprintf(&b, "- Landscaping: %.0f\n", e.Costs.LandscapingCost)
		fmt.Fprintf(&b, "- Infrastructure: %.0f\n", e.Costs.InfrastructureCost)
		fmt.Fprintf(&b, "- Soft costs: %.0f\n\n", e.Costs.TotalAdditionalCosts)
	}

	b.WriteString("## Cash Flows\n\n")
	b.WriteString("| Year | Annual Rent | Discounted | Cumulative |\n")
	b.WriteString("|-----:|------------:|-----------:|-----------:|\n")
	for _, cf := range e.CashFlows {
		fmt.Fprintf(&b, "| %d | %.0f | %.0f | %.0f |\n",
			cf.Year, cf.Rent, cf.DiscountedCashFlow, cf.CumulativeCashFlow)
	}

	return b.String()
}

// ValidateMarkdown checks that the string parses as Markdown. Goldmark is
// very permissive, so this is a basic sanity check.
func ValidateMarkdown(input string) bool {
	parser := goldmark.DefaultParser()
	reader := text.NewReader([]byte(input))
	doc := parser.Parse(reader)
	return doc != nil
}

// RenderHTML converts the markdown report to HTML, with table support.
func RenderHTML(markdown string) ([]byte, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))

	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		return nil, fmt.Errorf("report: render html: %w", err)
	}
	return buf.Bytes(), nil
}
