package models

import (
	"errors"
	"time"
)

// --- Errors ---

// ErrInvalidFilter is returned when a FilterSpec has an end date before its
// start date.
var ErrInvalidFilter = errors.New("invalid filter: end date is before start date")

// ErrDataIntegrity is returned when a sales or inventory row references a
// product that does not exist in the product table.
var ErrDataIntegrity = errors.New("data integrity violation: unknown product id")

// --- Base Tables ---

// SalesRecord is one row of the raw sales table.
type SalesRecord struct {
	Date        time.Time `json:"date"`
	ProductID   string    `json:"product_id"`
	Region      string    `json:"region"`
	SalesAmount float64   `json:"sales_amount"`
	UnitsSold   int       `json:"units_sold"`
}

// ProductRecord is one row of the product master table.
type ProductRecord struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Category    string `json:"category"`
}

// InventoryRecord is one row of the raw inventory table.
type InventoryRecord struct {
	ProductID    string `json:"product_id"`
	StockLevel   int    `json:"stock_level"`
	ReorderLevel int    `json:"reorder_level"`
}

// --- Joined Views ---

// SalesRow is a sales record joined with its product metadata.
type SalesRow struct {
	Date        time.Time `json:"date"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	Category    string    `json:"category"`
	Region      string    `json:"region"`
	SalesAmount float64   `json:"sales_amount"`
	UnitsSold   int       `json:"units_sold"`
}

// InventoryRow is an inventory record joined with its product metadata.
type InventoryRow struct {
	ProductID    string `json:"product_id"`
	ProductName  string `json:"product_name"`
	Category     string `json:"category"`
	StockLevel   int    `json:"stock_level"`
	ReorderLevel int    `json:"reorder_level"`
}

// --- Inputs ---

// FilterAll selects every region or category instead of an exact match.
const FilterAll = "all"

// FilterSpec carries the user's current filter selections. It is built fresh
// for every computation and never shared across requests.
type FilterSpec struct {
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Region    string     `json:"region"`
	Category  string     `json:"category"`
}

// Validate checks the date bounds. Both bounds unset, or either side open, is
// fine; a set pair with end before start is not.
func (f FilterSpec) Validate() error {
	if f.StartDate != nil && f.EndDate != nil && f.EndDate.Before(*f.StartDate) {
		return ErrInvalidFilter
	}
	return nil
}

// TickState carries the refresh counters that drive recomputation and seed the
// inventory simulation.
type TickState struct {
	IntervalCount int64 `json:"interval_count"`
	RefreshCount  int64 `json:"refresh_count"`
}

// Seed combines the counters into the simulation seed. The same sum always
// yields the same perturbation sequence.
func (t TickState) Seed() int64 {
	return t.IntervalCount + t.RefreshCount
}

// ChartMode selects which aggregate the chart endpoint computes.
type ChartMode string

const (
	ModeByRegion       ChartMode = "by_region"
	ModeTimeSeries     ChartMode = "time_series"
	ModeProductScatter ChartMode = "product_scatter"
)

// Valid reports whether m is one of the three known modes.
func (m ChartMode) Valid() bool {
	switch m {
	case ModeByRegion, ModeTimeSeries, ModeProductScatter:
		return true
	}
	return false
}

// --- Outputs ---

// KPISummary holds the headline figures for the KPI cards.
type KPISummary struct {
	TotalSales    float64 `json:"total_sales"`
	TotalUnits    int     `json:"total_units"`
	OrderCount    int     `json:"order_count"`
	AvgOrderValue float64 `json:"avg_order_value"`
	// AvgUnitsPerOrder is only meaningful when HasData is true; renderers
	// should show a "no data" label otherwise.
	AvgUnitsPerOrder float64 `json:"avg_units_per_order"`
	HasData          bool    `json:"has_data"`
	// GrowthRate is a synthetic display placeholder in [-10, +15], resampled
	// on every computation. It is not derived from historical data and is not
	// stable across calls with identical filters.
	GrowthRate float64 `json:"growth_rate"`
}

// RegionSales is one bar of the by-region chart.
type RegionSales struct {
	Region     string  `json:"region"`
	TotalSales float64 `json:"total_sales"`
}

// DailySales is one point of the time-series chart.
type DailySales struct {
	Date       time.Time `json:"date"`
	TotalSales float64   `json:"total_sales"`
}

// ProductPerformance is one point of the product scatter chart.
type ProductPerformance struct {
	ProductName string  `json:"product_name"`
	Category    string  `json:"category"`
	TotalSales  float64 `json:"total_sales"`
	TotalUnits  int     `json:"total_units"`
}

// ChartData holds whichever aggregate the requested mode produced.
type ChartData struct {
	Mode           ChartMode            `json:"mode"`
	ByRegion       []RegionSales        `json:"by_region,omitempty"`
	TimeSeries     []DailySales         `json:"time_series,omitempty"`
	ProductScatter []ProductPerformance `json:"product_scatter,omitempty"`
}

// Alert severities for low-stock rows. The critical threshold (stock at or
// below half the reorder level) is a fixed business rule.
const (
	SeverityLow      = "LOW"
	SeverityCritical = "CRITICAL"
)

// StockAlert flags one low-stock inventory row after simulation.
type StockAlert struct {
	ProductID    string `json:"product_id"`
	ProductName  string `json:"product_name"`
	StockLevel   int    `json:"stock_level"`
	ReorderLevel int    `json:"reorder_level"`
	Severity     string `json:"severity"`
}

// InventoryStatus is the full result of one inventory simulation pass.
type InventoryStatus struct {
	Items          []InventoryRow `json:"items"`
	Alerts         []StockAlert   `json:"alerts"`
	StockHealthPct float64        `json:"stock_health_pct"`
}

// DashboardSnapshot is everything one recomputation produces.
type DashboardSnapshot struct {
	KPIs      KPISummary      `json:"kpis"`
	Chart     ChartData       `json:"chart"`
	Inventory InventoryStatus `json:"inventory"`
	Tick      TickState       `json:"tick"`
}
