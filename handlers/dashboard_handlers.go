package handlers

import (
	"errors"
	"log"
	"math/rand"
	"time"

	"github.com/gofiber/fiber/v2"

	"app/analytics"
	"app/dataset"
	"app/models"
	"app/ticker"
	"app/utils"
)

var (
	store *dataset.Store
	ticks *ticker.Ticker
)

// Setup wires the handlers to the loaded dataset store and the tick source.
// Must be called once before routes are registered.
func Setup(s *dataset.Store, t *ticker.Ticker) {
	store = s
	ticks = t
}

// parseDate accepts the formats the frontend date picker has been seen to
// send.
func parseDate(dateStr string) (time.Time, error) {
	formats := []string{
		"2006-01-02",
		"2006-01-02T15:04:05",
		time.RFC3339,
	}
	var lastErr error
	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		} else {
			lastErr = err
		}
	}
	return time.Time{}, lastErr
}

// parseFilterSpec builds the per-request FilterSpec from query parameters.
// Absent dates leave that bound open; region and category default to "all".
func parseFilterSpec(c *fiber.Ctx) (models.FilterSpec, error) {
	spec := models.FilterSpec{
		Region:   c.Query("region", models.FilterAll),
		Category: c.Query("category", models.FilterAll),
	}

	if s := c.Query("startDate"); s != "" {
		t, err := parseDate(s)
		if err != nil {
			return spec, errors.New("invalid startDate format")
		}
		spec.StartDate = &t
	}
	if s := c.Query("endDate"); s != "" {
		t, err := parseDate(s)
		if err != nil {
			return spec, errors.New("invalid endDate format")
		}
		spec.EndDate = &t
	}
	return spec, nil
}

// HandleGetDashboardSnapshot runs one full recomputation for the current
// filters, active tab and tick state.
func HandleGetDashboardSnapshot(c *fiber.Ctx) error {
	spec, err := parseFilterSpec(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	mode := models.ChartMode(c.Query("tab", string(models.ModeByRegion)))
	if !mode.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "unknown chart tab"})
	}

	snapshot, err := analytics.ComputeAll(store, spec, ticks.State(), mode)
	if err != nil {
		if errors.Is(err, models.ErrInvalidFilter) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
		}
		log.Printf("Error computing dashboard snapshot: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to compute dashboard snapshot"})
	}

	return c.JSON(fiber.Map{"success": true, "data": snapshot})
}

// HandleGetKPIs computes the KPI card figures for the current filters.
func HandleGetKPIs(c *fiber.Ctx) error {
	spec, err := parseFilterSpec(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	filtered, err := analytics.FilterSales(store.Sales(), spec)
	if err != nil {
		if errors.Is(err, models.ErrInvalidFilter) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
		}
		log.Printf("Error filtering sales: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to filter sales"})
	}

	rng := rand.New(rand.NewSource(ticks.State().Seed()))
	return c.JSON(fiber.Map{"success": true, "data": analytics.ComputeKPIs(filtered, rng)})
}

// HandleGetChart computes the aggregate for one chart tab.
func HandleGetChart(c *fiber.Ctx) error {
	mode := models.ChartMode(c.Params("mode"))
	if !mode.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "unknown chart mode"})
	}

	spec, err := parseFilterSpec(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	filtered, err := analytics.FilterSales(store.Sales(), spec)
	if err != nil {
		if errors.Is(err, models.ErrInvalidFilter) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
		}
		log.Printf("Error filtering sales for chart %s: %v", mode, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to filter sales"})
	}

	return c.JSON(fiber.Map{"success": true, "data": analytics.ChartData(filtered, mode)})
}

// HandleGetInventoryStatus runs the stock simulation for the current tick and
// returns the perturbed levels, alerts and health gauge value.
func HandleGetInventoryStatus(c *fiber.Ctx) error {
	status := analytics.SimulateInventory(store.Inventory(), ticks.State())
	return c.JSON(fiber.Map{"success": true, "data": status})
}

// HandleListStockAlerts returns the current low-stock alerts, paginated for
// the alert table. No alerts is a normal state, not an error.
func HandleListStockAlerts(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("pageSize", 10)

	status := analytics.SimulateInventory(store.Inventory(), ticks.State())
	start, end := utils.PageBounds(len(status.Alerts), page, pageSize)

	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{
		"items":      status.Alerts[start:end],
		"pagination": utils.CreatePagination(len(status.Alerts), page, pageSize),
	}})
}

// HandleRefresh bumps the refresh counter, reseeding the next simulation.
func HandleRefresh(c *fiber.Ctx) error {
	state := ticks.Refresh()
	log.Printf("Manual refresh requested, tick state now %+v", state)
	return c.JSON(fiber.Map{"success": true, "data": state})
}

// HandleGetFilterOptions lists the distinct regions, categories and the date
// bounds the filter controls are populated with.
func HandleGetFilterOptions(c *fiber.Ctx) error {
	options := fiber.Map{
		"regions":    store.Regions(),
		"categories": store.Categories(),
	}
	if min, max, ok := store.DateBounds(); ok {
		options["minDate"] = min
		options["maxDate"] = max
	}
	return c.JSON(fiber.Map{"success": true, "data": options})
}
