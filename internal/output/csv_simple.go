package output

import (
	"bytes"
	"encoding/csv"

	"github.com/ddcalc/investment-calculator/internal/domain"
)

// CSVSummarizer writes one row per period: the single-investment trajectories
// followed by the cohort aggregates.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(proj *domain.Projection) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Period", "Value", "UntaxedValue", "Tax", "AggregateValue", "AggregateTax"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for k := range proj.Growth {
		row := []string{
			intToString(k),
			FormatAmount(proj.Growth[k]),
			FormatAmount(at(proj.Untaxed, k)),
			FormatAmount(at(proj.Tax, k)),
			FormatAmount(at(proj.GrowthSummary, k)),
			FormatAmount(at(proj.TaxSummary, k)),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func at(values []float64, i int) float64 {
	if i < len(values) {
		return values[i]
	}
	return 0
}
