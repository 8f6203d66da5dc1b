package dataset

import (
	"fmt"
	"sort"
	"time"

	"app/models"
)

// Store holds the three dashboard tables, joined with product metadata at
// construction and immutable afterwards. Accessors hand out copies so no
// caller can mutate the loaded snapshot.
type Store struct {
	sales     []models.SalesRow
	inventory []models.InventoryRow
	products  []models.ProductRecord
}

// New joins the raw tables and validates referential integrity. A sales or
// inventory row whose ProductID is missing from the product table fails the
// load with models.ErrDataIntegrity; the dashboard never serves a partially
// joined dataset.
func New(sales []models.SalesRecord, products []models.ProductRecord, inventory []models.InventoryRecord) (*Store, error) {
	byID := make(map[string]models.ProductRecord, len(products))
	for _, p := range products {
		byID[p.ProductID] = p
	}

	joinedSales := make([]models.SalesRow, 0, len(sales))
	for i, s := range sales {
		p, ok := byID[s.ProductID]
		if !ok {
			return nil, fmt.Errorf("sales row %d references product %q: %w", i, s.ProductID, models.ErrDataIntegrity)
		}
		joinedSales = append(joinedSales, models.SalesRow{
			Date:        s.Date,
			ProductID:   s.ProductID,
			ProductName: p.ProductName,
			Category:    p.Category,
			Region:      s.Region,
			SalesAmount: s.SalesAmount,
			UnitsSold:   s.UnitsSold,
		})
	}

	joinedInventory := make([]models.InventoryRow, 0, len(inventory))
	for i, inv := range inventory {
		p, ok := byID[inv.ProductID]
		if !ok {
			return nil, fmt.Errorf("inventory row %d references product %q: %w", i, inv.ProductID, models.ErrDataIntegrity)
		}
		joinedInventory = append(joinedInventory, models.InventoryRow{
			ProductID:    inv.ProductID,
			ProductName:  p.ProductName,
			Category:     p.Category,
			StockLevel:   inv.StockLevel,
			ReorderLevel: inv.ReorderLevel,
		})
	}

	prods := make([]models.ProductRecord, len(products))
	copy(prods, products)

	return &Store{sales: joinedSales, inventory: joinedInventory, products: prods}, nil
}

// Sales returns a copy of the joined sales view.
func (s *Store) Sales() []models.SalesRow {
	out := make([]models.SalesRow, len(s.sales))
	copy(out, s.sales)
	return out
}

// Inventory returns a copy of the joined inventory view.
func (s *Store) Inventory() []models.InventoryRow {
	out := make([]models.InventoryRow, len(s.inventory))
	copy(out, s.inventory)
	return out
}

// Products returns a copy of the product master table.
func (s *Store) Products() []models.ProductRecord {
	out := make([]models.ProductRecord, len(s.products))
	copy(out, s.products)
	return out
}

// Regions returns the distinct sales regions, sorted. Used to populate the
// region filter dropdown.
func (s *Store) Regions() []string {
	return distinct(s.sales, func(r models.SalesRow) string { return r.Region })
}

// Categories returns the distinct product categories, sorted.
func (s *Store) Categories() []string {
	seen := make(map[string]struct{}, len(s.products))
	out := make([]string, 0, len(s.products))
	for _, p := range s.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	sort.Strings(out)
	return out
}

// DateBounds returns the earliest and latest sale dates, used as the default
// date-picker range. ok is false when there are no sales rows.
func (s *Store) DateBounds() (min, max time.Time, ok bool) {
	if len(s.sales) == 0 {
		return time.Time{}, time.Time{}, false
	}
	min, max = s.sales[0].Date, s.sales[0].Date
	for _, r := range s.sales[1:] {
		if r.Date.Before(min) {
			min = r.Date
		}
		if r.Date.After(max) {
			max = r.Date
		}
	}
	return min, max, true
}

func distinct(rows []models.SalesRow, key func(models.SalesRow) string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, r := range rows {
		k := key(r)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
