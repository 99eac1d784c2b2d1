package output

import (
	"bytes"
	"fmt"

	"github.com/ddcalc/investment-calculator/internal/domain"
	money "github.com/ddcalc/investment-calculator/pkg/decimal"
)

// ConsoleFormatter provides a concise human-readable projection summary.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(proj *domain.Projection) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "DEEMED DISPOSAL PROJECTION")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Principal:        %s\n", money.NewMoneyFromDecimal(proj.Principal).Format())
	fmt.Fprintf(&buf, "Growth:           %s a year, compounded %s\n", FormatPercentage(proj.GrowthRate), proj.Frequency)
	fmt.Fprintf(&buf, "Horizon:          %d years (%d periods: %d x %d + %d)\n",
		proj.Years, proj.Periods, proj.ChunkPlan.FullChunks, proj.ChunkPlan.ChunkSize, proj.ChunkPlan.Remainder)
	fmt.Fprintf(&buf, "Tax rate:         %s\n", FormatPercentage(proj.TaxRate))
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Final value:      %s\n", FormatCurrency(proj.FinalValue))
	fmt.Fprintf(&buf, "Without DD:       %s\n", FormatCurrency(proj.FinalUntaxedValue))
	fmt.Fprintf(&buf, "Total tax:        %s\n", FormatCurrency(proj.TotalTax))
	fmt.Fprintf(&buf, "Tax drag:         %s\n", FormatCurrency(proj.TaxDrag()))

	if len(proj.Events) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "DISPOSALS")
		fmt.Fprintf(&buf, "%8s %6s %14s %14s %14s\n", "Period", "Year", "Gain", "Tax", "Value")
		for _, ev := range proj.Events {
			fmt.Fprintf(&buf, "%8d %6d %14s %14s %14s\n",
				ev.Period, ev.TaxYear, FormatAmount(ev.Gain), FormatAmount(ev.Tax), FormatAmount(ev.TaxedValue))
		}
	}

	if n := len(proj.GrowthSummary); n > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "COHORTS (%d staggered investments)\n", n)
		fmt.Fprintf(&buf, "Aggregate value:  %s\n", FormatCurrency(proj.GrowthSummary[n-1]))
		fmt.Fprintf(&buf, "Aggregate tax:    %s\n", money.Sum(proj.TaxSummary).Format())
	}
	return buf.Bytes(), nil
}
