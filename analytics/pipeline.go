package analytics

import (
	"math/rand"

	"app/dataset"
	"app/models"
)

// ComputeAll runs one full synchronous recomputation: filter the sales view,
// aggregate the KPIs and the active chart mode, and simulate the inventory
// for the given tick. It is the single entry point any binding layer (HTTP
// handler, CLI, test harness) calls; it reads the store snapshot and has no
// side effects.
//
// The KPI growth rate shares the tick-derived seed so a whole snapshot is
// reproducible for a fixed tick, while still resampling on every tick or
// refresh as the dashboard expects.
func ComputeAll(store *dataset.Store, spec models.FilterSpec, tick models.TickState, mode models.ChartMode) (models.DashboardSnapshot, error) {
	filtered, err := FilterSales(store.Sales(), spec)
	if err != nil {
		return models.DashboardSnapshot{}, err
	}

	rng := rand.New(rand.NewSource(tick.Seed()))
	return models.DashboardSnapshot{
		KPIs:      ComputeKPIs(filtered, rng),
		Chart:     ChartData(filtered, mode),
		Inventory: SimulateInventory(store.Inventory(), tick),
		Tick:      tick,
	}, nil
}
