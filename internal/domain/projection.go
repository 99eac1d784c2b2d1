package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChunkPlan splits a run of periods into full deemed-disposal chunks and a
// trailing remainder.
type ChunkPlan struct {
	FullChunks int `json:"full_chunks"`
	Remainder  int `json:"remainder"`
	ChunkSize  int `json:"chunk_size"`
}

// Periods returns the number of periods the plan covers.
func (cp ChunkPlan) Periods() int {
	return cp.FullChunks*cp.ChunkSize + cp.Remainder
}

// Trajectory is a per-period value series. Index 0 is the start of the run and
// index k the end of period k, so a run of N periods has N+1 entries.
type Trajectory []float64

// Final returns the last value, or zero for an empty trajectory.
func (t Trajectory) Final() float64 {
	if len(t) == 0 {
		return 0
	}
	return t[len(t)-1]
}

// Sum adds every entry.
func (t Trajectory) Sum() float64 {
	var s float64
	for _, v := range t {
		s += v
	}
	return s
}

// DisposalEvent records one deemed disposal: a chunk boundary or the final
// disposal at the end of the run.
type DisposalEvent struct {
	Period        int     `json:"period"`
	TaxYear       int     `json:"tax_year"`
	Final         bool    `json:"final"`
	Basis         float64 `json:"basis"`
	RawValue      float64 `json:"raw_value"`
	TaxedValue    float64 `json:"taxed_value"`
	Gain          float64 `json:"gain"`
	Tax           float64 `json:"tax"`
	CumulativeTax float64 `json:"cumulative_tax"`
}

// Projection is the full result of a run over the configured horizon.
type Projection struct {
	RunID       string          `json:"run_id"`
	GeneratedAt time.Time       `json:"generated_at"`
	Principal   decimal.Decimal `json:"principal"`
	Years       int             `json:"years"`
	GrowthRate  decimal.Decimal `json:"growth_rate"`
	Frequency   Frequency       `json:"frequency"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	Periods     int             `json:"periods"`
	ChunkPlan   ChunkPlan       `json:"chunk_plan"`

	Growth  Trajectory      `json:"growth"`
	Untaxed Trajectory      `json:"untaxed"`
	Tax     Trajectory      `json:"tax"`
	Events  []DisposalEvent `json:"events"`

	FinalValue        float64 `json:"final_value"`
	FinalUntaxedValue float64 `json:"final_untaxed_value"`
	TotalTax          float64 `json:"total_tax"`

	// Aggregates across all offset cohorts (matrix column sums).
	GrowthSummary []float64 `json:"growth_summary"`
	TaxSummary    []float64 `json:"tax_summary"`
}

// TaxDrag is the value lost to deemed disposal relative to the untaxed run.
func (p *Projection) TaxDrag() float64 {
	return p.FinalUntaxedValue - p.FinalValue
}
