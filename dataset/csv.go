package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"app/models"
)

// CSV file names expected under the data directory, matching the upstream
// export naming.
const (
	salesFile     = "sales_data.csv"
	productsFile  = "product_data.csv"
	inventoryFile = "inventory_data.csv"
)

var dateFormats = []string{"2006-01-02", "2006-01-02 15:04:05", time.RFC3339}

// LoadDir reads the three CSV exports from dir and returns a validated Store.
func LoadDir(dir string) (*Store, error) {
	products, err := loadProductsCSV(filepath.Join(dir, productsFile))
	if err != nil {
		return nil, err
	}
	sales, err := loadSalesCSV(filepath.Join(dir, salesFile))
	if err != nil {
		return nil, err
	}
	inventory, err := loadInventoryCSV(filepath.Join(dir, inventoryFile))
	if err != nil {
		return nil, err
	}
	return New(sales, products, inventory)
}

func loadSalesCSV(path string) ([]models.SalesRecord, error) {
	rows, cols, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	out := make([]models.SalesRecord, 0, len(rows))
	for i, row := range rows {
		date, err := parseDate(cell(row, cols, "Date"))
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, i+2, err)
		}
		amount, err := strconv.ParseFloat(cell(row, cols, "Sales_Amount"), 64)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad Sales_Amount: %w", path, i+2, err)
		}
		units, err := strconv.Atoi(cell(row, cols, "Units_Sold"))
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad Units_Sold: %w", path, i+2, err)
		}
		out = append(out, models.SalesRecord{
			Date:        date,
			ProductID:   cell(row, cols, "Product_ID"),
			Region:      cell(row, cols, "Region"),
			SalesAmount: amount,
			UnitsSold:   units,
		})
	}
	return out, nil
}

func loadProductsCSV(path string) ([]models.ProductRecord, error) {
	rows, cols, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	out := make([]models.ProductRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.ProductRecord{
			ProductID:   cell(row, cols, "Product_ID"),
			ProductName: cell(row, cols, "Product_Name"),
			Category:    cell(row, cols, "Category"),
		})
	}
	return out, nil
}

func loadInventoryCSV(path string) ([]models.InventoryRecord, error) {
	rows, cols, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	out := make([]models.InventoryRecord, 0, len(rows))
	for i, row := range rows {
		stock, err := strconv.Atoi(cell(row, cols, "Stock_Level"))
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad Stock_Level: %w", path, i+2, err)
		}
		reorder, err := strconv.Atoi(cell(row, cols, "Reorder_Level"))
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad Reorder_Level: %w", path, i+2, err)
		}
		out = append(out, models.InventoryRecord{
			ProductID:    cell(row, cols, "Product_ID"),
			StockLevel:   stock,
			ReorderLevel: reorder,
		})
	}
	return out, nil
}

// readCSV returns the data rows and a header-name -> column-index map.
func readCSV(path string) ([][]string, map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("parse %s: missing header row", path)
	}

	cols := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		cols[strings.TrimSpace(name)] = i
	}
	return records[1:], cols, nil
}

func cell(row []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func parseDate(s string) (time.Time, error) {
	var lastErr error
	for _, format := range dateFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		} else {
			lastErr = err
		}
	}
	return time.Time{}, fmt.Errorf("bad Date %q: %w", s, lastErr)
}
