package output

import (
	"bytes"
	"encoding/csv"

	"github.com/ddcalc/investment-calculator/internal/domain"
)

// CSVEventsExporter writes one row per deemed-disposal event.
type CSVEventsExporter struct{}

func (c CSVEventsExporter) Name() string { return "events-csv" }

func (c CSVEventsExporter) Format(proj *domain.Projection) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Period", "TaxYear", "Final", "Basis", "RawValue", "Gain", "Tax", "TaxedValue", "CumulativeTax"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, ev := range proj.Events {
		row := []string{
			intToString(ev.Period),
			intToString(ev.TaxYear),
			boolToString(ev.Final),
			FormatAmount(ev.Basis),
			FormatAmount(ev.RawValue),
			FormatAmount(ev.Gain),
			FormatAmount(ev.Tax),
			FormatAmount(ev.TaxedValue),
			FormatAmount(ev.CumulativeTax),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// MatrixCSV writes a cohort matrix: one row per cohort offset, one column per period.
func MatrixCSV(m domain.Matrix) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := make([]string, 0, m.Cols()+1)
	header = append(header, "Offset")
	for j := 0; j < m.Cols(); j++ {
		header = append(header, "P"+intToString(j))
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for i := 0; i < m.Rows(); i++ {
		row := make([]string, 0, m.Cols()+1)
		row = append(row, intToString(i))
		for _, v := range m.Row(i) {
			row = append(row, FormatAmount(v))
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	sums := make([]string, 0, m.Cols()+1)
	sums = append(sums, "Total")
	for _, v := range m.ColumnSums() {
		sums = append(sums, FormatAmount(v))
	}
	if err := w.Write(sums); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
