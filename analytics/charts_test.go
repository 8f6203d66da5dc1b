package analytics

import (
	"sort"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"app/models"
)

func TestSalesByRegionOrderingAndTotals(t *testing.T) {
	got := SalesByRegion(sampleSales())

	require.Len(t, got, 3)
	assert.True(t, sort.SliceIsSorted(got, func(i, j int) bool { return got[i].Region < got[j].Region }))
	assert.Equal(t, models.RegionSales{Region: "East", TotalSales: 175}, got[0])
	assert.Equal(t, models.RegionSales{Region: "North", TotalSales: 200}, got[1])
	assert.Equal(t, models.RegionSales{Region: "West", TotalSales: 75}, got[2])
}

func TestDailySalesSeriesNoGapFill(t *testing.T) {
	rows := []models.SalesRow{
		{Date: day(4), Region: "East", SalesAmount: 10},
		{Date: day(0), Region: "East", SalesAmount: 20},
		{Date: day(4), Region: "West", SalesAmount: 5},
	}

	got := DailySalesSeries(rows)

	require.Len(t, got, 2, "dates without sales must not appear")
	assert.Equal(t, day(0), got[0].Date)
	assert.InDelta(t, 20, got[0].TotalSales, 1e-9)
	assert.Equal(t, day(4), got[1].Date)
	assert.InDelta(t, 15, got[1].TotalSales, 1e-9)
}

func TestProductPerformanceGroupsPerProduct(t *testing.T) {
	got := ProductPerformance(sampleSales())

	require.Len(t, got, 3)
	assert.Equal(t, models.ProductPerformance{ProductName: "Doodad", Category: "Toys", TotalSales: 100, TotalUnits: 4}, got[0])
	assert.Equal(t, models.ProductPerformance{ProductName: "Gadget", Category: "Hardware", TotalSales: 50, TotalUnits: 1}, got[1])
	assert.Equal(t, models.ProductPerformance{ProductName: "Widget", Category: "Hardware", TotalSales: 300, TotalUnits: 6}, got[2])
}

func TestChartDataSelectsMode(t *testing.T) {
	rows := sampleSales()

	byRegion := ChartData(rows, models.ModeByRegion)
	assert.NotEmpty(t, byRegion.ByRegion)
	assert.Empty(t, byRegion.TimeSeries)
	assert.Empty(t, byRegion.ProductScatter)

	series := ChartData(rows, models.ModeTimeSeries)
	assert.NotEmpty(t, series.TimeSeries)

	scatter := ChartData(rows, models.ModeProductScatter)
	assert.NotEmpty(t, scatter.ProductScatter)
}

func TestChartDataEmptyInput(t *testing.T) {
	got := ChartData(nil, models.ModeByRegion)
	assert.Empty(t, got.ByRegion)
}

// TestProperty_RegionTotalsConserveSum validates that grouping by region
// never loses or invents sales: the per-region totals always add back up to
// the input total.
func TestProperty_RegionTotalsConserveSum(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	regions := []string{"East", "West", "North", "South"}

	properties.Property("sum of per-region totals equals the input total", prop.ForAll(
		func(amounts []float64, regionSeed int64) bool {
			rows := make([]models.SalesRow, len(amounts))
			for i, amount := range amounts {
				rows[i] = models.SalesRow{
					Date:        day(i % 7),
					Region:      regions[(int(regionSeed)+i)%len(regions)],
					SalesAmount: amount,
				}
			}

			var want float64
			for _, r := range rows {
				want += r.SalesAmount
			}

			var got float64
			for _, g := range SalesByRegion(rows) {
				got += g.TotalSales
			}

			diff := want - got
			if diff < 0 {
				diff = -diff
			}
			return diff < 1e-6
		},
		gen.SliceOf(gen.Float64Range(0, 10000)),
		gen.Int64Range(0, 1000),
	))

	properties.TestingRun(t)
}
