package analytics

import (
	"sort"
	"time"

	"app/models"
)

// ChartData computes the aggregate for one analysis mode over the filtered
// sales view. Outputs are plain slices sorted for reproducibility; the
// rendering layer owns everything visual.
func ChartData(rows []models.SalesRow, mode models.ChartMode) models.ChartData {
	data := models.ChartData{Mode: mode}
	switch mode {
	case models.ModeByRegion:
		data.ByRegion = SalesByRegion(rows)
	case models.ModeTimeSeries:
		data.TimeSeries = DailySalesSeries(rows)
	case models.ModeProductScatter:
		data.ProductScatter = ProductPerformance(rows)
	}
	return data
}

// SalesByRegion groups by region and sums sales, sorted by region name.
func SalesByRegion(rows []models.SalesRow) []models.RegionSales {
	totals := make(map[string]float64)
	for _, r := range rows {
		totals[r.Region] += r.SalesAmount
	}

	out := make([]models.RegionSales, 0, len(totals))
	for region, total := range totals {
		out = append(out, models.RegionSales{Region: region, TotalSales: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Region < out[j].Region })
	return out
}

// DailySalesSeries groups by date and sums sales, sorted by date. Dates with
// no sales in the filtered view simply do not appear; there is no gap fill.
func DailySalesSeries(rows []models.SalesRow) []models.DailySales {
	totals := make(map[time.Time]float64)
	for _, r := range rows {
		totals[r.Date] += r.SalesAmount
	}

	out := make([]models.DailySales, 0, len(totals))
	for date, total := range totals {
		out = append(out, models.DailySales{Date: date, TotalSales: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// ProductPerformance groups by (product, category) and sums both sales and
// units, one row per distinct product, sorted by product name. Feeds the
// sales-vs-units scatter where category is the color dimension and sales the
// size encoding.
func ProductPerformance(rows []models.SalesRow) []models.ProductPerformance {
	type key struct {
		name     string
		category string
	}
	totals := make(map[key]models.ProductPerformance)
	for _, r := range rows {
		k := key{name: r.ProductName, category: r.Category}
		agg := totals[k]
		agg.ProductName = r.ProductName
		agg.Category = r.Category
		agg.TotalSales += r.SalesAmount
		agg.TotalUnits += r.UnitsSold
		totals[k] = agg
	}

	out := make([]models.ProductPerformance, 0, len(totals))
	for _, agg := range totals {
		out = append(out, agg)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ProductName != out[j].ProductName {
			return out[i].ProductName < out[j].ProductName
		}
		return out[i].Category < out[j].Category
	})
	return out
}
