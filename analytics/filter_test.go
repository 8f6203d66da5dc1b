package analytics

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"app/models"
)

func day(offset int) time.Time {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func sampleSales() []models.SalesRow {
	return []models.SalesRow{
		{Date: day(0), ProductID: "P1", ProductName: "Widget", Category: "Hardware", Region: "East", SalesAmount: 100, UnitsSold: 2},
		{Date: day(1), ProductID: "P2", ProductName: "Gadget", Category: "Hardware", Region: "West", SalesAmount: 50, UnitsSold: 1},
		{Date: day(2), ProductID: "P3", ProductName: "Doodad", Category: "Toys", Region: "East", SalesAmount: 75, UnitsSold: 3},
		{Date: day(3), ProductID: "P1", ProductName: "Widget", Category: "Hardware", Region: "North", SalesAmount: 200, UnitsSold: 4},
		{Date: day(4), ProductID: "P3", ProductName: "Doodad", Category: "Toys", Region: "West", SalesAmount: 25, UnitsSold: 1},
	}
}

func TestFilterSalesDateBounds(t *testing.T) {
	rows := sampleSales()
	start, end := day(1), day(3)

	got, err := FilterSales(rows, models.FilterSpec{StartDate: &start, EndDate: &end, Region: "all", Category: "all"})
	require.NoError(t, err)
	assert.Len(t, got, 3)
	for _, r := range got {
		assert.False(t, r.Date.Before(start))
		assert.False(t, r.Date.After(end))
	}
}

func TestFilterSalesOpenBounds(t *testing.T) {
	rows := sampleSales()
	start := day(3)

	got, err := FilterSales(rows, models.FilterSpec{StartDate: &start, Region: "all", Category: "all"})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = FilterSales(rows, models.FilterSpec{Region: "all", Category: "all"})
	require.NoError(t, err)
	assert.Len(t, got, len(rows))
}

func TestFilterSalesRegionAndCategory(t *testing.T) {
	rows := sampleSales()

	got, err := FilterSales(rows, models.FilterSpec{Region: "East", Category: "all"})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = FilterSales(rows, models.FilterSpec{Region: "East", Category: "Toys"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Doodad", got[0].ProductName)
}

func TestFilterSalesNonexistentRegionIsEmptyNotError(t *testing.T) {
	got, err := FilterSales(sampleSales(), models.FilterSpec{Region: "NonexistentRegion", Category: "all"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFilterSalesInvalidRange(t *testing.T) {
	start, end := day(3), day(1)
	_, err := FilterSales(sampleSales(), models.FilterSpec{StartDate: &start, EndDate: &end, Region: "all", Category: "all"})
	assert.ErrorIs(t, err, models.ErrInvalidFilter)
}

// TestProperty_FilterOrderIndependence validates that the three predicates
// compose as a pure AND: applying the date, region and category filters one
// at a time, in any order, always yields the same row set as applying them
// together.
func TestProperty_FilterOrderIndependence(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	rows := sampleSales()
	regions := []string{"all", "East", "West", "North", "South"}
	categories := []string{"all", "Hardware", "Toys", "Food"}

	properties.Property("sequential single-predicate application commutes", prop.ForAll(
		func(regionIdx, categoryIdx, startOff, endOff, order int) bool {
			start, end := day(startOff), day(endOff)
			if end.Before(start) {
				start, end = end, start
			}
			spec := models.FilterSpec{
				StartDate: &start,
				EndDate:   &end,
				Region:    regions[regionIdx],
				Category:  categories[categoryIdx],
			}

			combined, err := FilterSales(rows, spec)
			if err != nil {
				return false
			}

			dateOnly := models.FilterSpec{StartDate: spec.StartDate, EndDate: spec.EndDate, Region: "all", Category: "all"}
			regionOnly := models.FilterSpec{Region: spec.Region, Category: "all"}
			categoryOnly := models.FilterSpec{Region: "all", Category: spec.Category}

			orders := [][3]models.FilterSpec{
				{dateOnly, regionOnly, categoryOnly},
				{dateOnly, categoryOnly, regionOnly},
				{regionOnly, dateOnly, categoryOnly},
				{regionOnly, categoryOnly, dateOnly},
				{categoryOnly, dateOnly, regionOnly},
				{categoryOnly, regionOnly, dateOnly},
			}

			sequential := rows
			for _, step := range orders[order] {
				sequential, err = FilterSales(sequential, step)
				if err != nil {
					return false
				}
			}

			if len(sequential) != len(combined) {
				return false
			}
			for i := range sequential {
				if sequential[i] != combined[i] {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 4),
		gen.IntRange(0, 3),
		gen.IntRange(-2, 6),
		gen.IntRange(-2, 6),
		gen.IntRange(0, 5),
	))

	properties.TestingRun(t)
}
