package analytics

import (
	"math/rand"

	"app/models"
)

// Stock perturbation bounds per simulation pass.
const (
	perturbMin = -2
	perturbMax = 2
)

// SimulateInventory applies one tick's pseudo-random stock movement to the
// inventory view and flags low-stock rows. The generator is seeded from
// tick.Seed(), so the same interval+refresh sum always produces the same
// perturbed levels. Input rows are never mutated; levels are clipped at zero.
func SimulateInventory(rows []models.InventoryRow, tick models.TickState) models.InventoryStatus {
	rng := rand.New(rand.NewSource(tick.Seed()))

	items := make([]models.InventoryRow, len(rows))
	alerts := make([]models.StockAlert, 0)
	for i, r := range rows {
		r.StockLevel += perturbMin + rng.Intn(perturbMax-perturbMin+1)
		if r.StockLevel < 0 {
			r.StockLevel = 0
		}
		items[i] = r

		if r.StockLevel < r.ReorderLevel {
			alerts = append(alerts, models.StockAlert{
				ProductID:    r.ProductID,
				ProductName:  r.ProductName,
				StockLevel:   r.StockLevel,
				ReorderLevel: r.ReorderLevel,
				Severity:     severity(r),
			})
		}
	}

	return models.InventoryStatus{
		Items:          items,
		Alerts:         alerts,
		StockHealthPct: stockHealth(len(items), len(alerts)),
	}
}

// severity applies the fixed business rule: CRITICAL at or below half the
// reorder level, LOW otherwise.
func severity(r models.InventoryRow) string {
	if float64(r.StockLevel) <= float64(r.ReorderLevel)/2 {
		return models.SeverityCritical
	}
	return models.SeverityLow
}

// stockHealth is the percentage of rows not in a low-stock state. An empty
// inventory counts as fully healthy.
func stockHealth(total, low int) float64 {
	if total == 0 {
		return 100
	}
	return 100 * float64(total-low) / float64(total)
}
