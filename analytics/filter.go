package analytics

import (
	"app/models"
)

// FilterSales returns the sales rows matching spec. The three predicates
// (date range, region, category) compose as a logical AND, so the order they
// are checked in never changes the result. An empty result is valid and every
// downstream aggregate handles it.
func FilterSales(rows []models.SalesRow, spec models.FilterSpec) ([]models.SalesRow, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	out := make([]models.SalesRow, 0, len(rows))
	for _, r := range rows {
		if !matchesDate(r, spec) || !matchesRegion(r, spec) || !matchesCategory(r, spec) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// matchesDate keeps rows inside the inclusive [start, end] bounds; an unset
// bound leaves that side unconstrained.
func matchesDate(r models.SalesRow, spec models.FilterSpec) bool {
	if spec.StartDate != nil && r.Date.Before(*spec.StartDate) {
		return false
	}
	if spec.EndDate != nil && r.Date.After(*spec.EndDate) {
		return false
	}
	return true
}

func matchesRegion(r models.SalesRow, spec models.FilterSpec) bool {
	return spec.Region == "" || spec.Region == models.FilterAll || r.Region == spec.Region
}

func matchesCategory(r models.SalesRow, spec models.FilterSpec) bool {
	return spec.Category == "" || spec.Category == models.FilterAll || r.Category == spec.Category
}
