package analytics

import (
	"math/rand"

	"app/models"
)

// Growth-rate bounds for the synthetic "vs last period" figure.
const (
	growthRateMin = -10.0
	growthRateMax = 15.0
)

// ComputeKPIs aggregates the filtered sales view into the KPI card figures.
// An empty view yields zero totals, a zero average order value and
// HasData=false instead of a division fault.
//
// The growth rate is drawn from rng on every call: it is a display
// placeholder in [growthRateMin, growthRateMax], not a trend computed from
// the data, and callers must not expect it to be stable across calls with
// identical filters. rng is injected so tests can pin it.
func ComputeKPIs(rows []models.SalesRow, rng *rand.Rand) models.KPISummary {
	summary := models.KPISummary{
		GrowthRate: growthRateMin + rng.Float64()*(growthRateMax-growthRateMin),
	}

	for _, r := range rows {
		summary.TotalSales += r.SalesAmount
		summary.TotalUnits += r.UnitsSold
	}
	summary.OrderCount = len(rows)

	if summary.OrderCount > 0 {
		summary.AvgOrderValue = summary.TotalSales / float64(summary.OrderCount)
		summary.AvgUnitsPerOrder = float64(summary.TotalUnits) / float64(summary.OrderCount)
		summary.HasData = true
	}
	return summary
}
