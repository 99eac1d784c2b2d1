package calculation

import "github.com/ddcalc/investment-calculator/internal/domain"

// PeriodsFor converts a horizon in years to compounding periods.
func PeriodsFor(years int, freq domain.Frequency) int {
	return years * freq.PeriodsPerYear()
}

// PlanChunks splits periods into full deemed-disposal chunks and a remainder.
// Negative input plans zero periods.
func PlanChunks(periods int, freq domain.Frequency) domain.ChunkPlan {
	size := freq.ChunkSize()
	if periods <= 0 {
		return domain.ChunkPlan{ChunkSize: size}
	}
	return domain.ChunkPlan{
		FullChunks: periods / size,
		Remainder:  periods % size,
		ChunkSize:  size,
	}
}

// RoundUp converts a period count to whole tax years, rounding up: disposal
// tax is assessed at year granularity.
func RoundUp(periods int, freq domain.Frequency) int {
	if periods <= 0 {
		return 0
	}
	ppy := freq.PeriodsPerYear()
	return (periods + ppy - 1) / ppy
}
