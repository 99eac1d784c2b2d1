package output

import (
	"encoding/json"

	"github.com/ddcalc/investment-calculator/internal/domain"
)

// JSONFormatter serializes the projection as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(proj *domain.Projection) ([]byte, error) {
	return json.MarshalIndent(proj, "", "  ")
}
