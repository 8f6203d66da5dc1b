package database

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"app/dataset"
	"app/models"
)

// DB is a global variable to hold the database connection pool.
var DB *pgxpool.Pool

// Connect sets up the database connection pool.
func Connect(databaseURL string) {
	var err error
	DB, err = pgxpool.New(context.Background(), databaseURL)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v\n", err)
	}

	// Optional: Check if the connection is actually working
	err = DB.Ping(context.Background())
	if err != nil {
		log.Fatalf("Database ping failed: %v\n", err)
	}

	log.Println("Successfully connected to the database")
}

// Close closes the database connection pool.
func Close() {
	if DB != nil {
		DB.Close()
		log.Println("Database connection pool closed")
	}
}

// LoadStore hydrates the in-memory dataset store from the sales, products and
// inventory tables. The dashboard reads the snapshot for the process lifetime;
// the pool is only used for this one load.
func LoadStore(ctx context.Context) (*dataset.Store, error) {
	products, err := loadProducts(ctx)
	if err != nil {
		return nil, err
	}
	sales, err := loadSales(ctx)
	if err != nil {
		return nil, err
	}
	inventory, err := loadInventory(ctx)
	if err != nil {
		return nil, err
	}
	return dataset.New(sales, products, inventory)
}

func loadSales(ctx context.Context) ([]models.SalesRecord, error) {
	query := `
		SELECT sale_date, product_id, region, sales_amount, units_sold
		FROM sales
		ORDER BY sale_date ASC
	`
	rows, err := DB.Query(ctx, query)
	if err != nil {
		log.Printf("Error querying sales table: %v", err)
		return nil, err
	}
	defer rows.Close()

	var sales []models.SalesRecord
	for rows.Next() {
		var s models.SalesRecord
		if err := rows.Scan(&s.Date, &s.ProductID, &s.Region, &s.SalesAmount, &s.UnitsSold); err != nil {
			log.Printf("Error scanning sales row: %v", err)
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

func loadProducts(ctx context.Context) ([]models.ProductRecord, error) {
	query := `
		SELECT product_id, product_name, category
		FROM products
		ORDER BY product_id ASC
	`
	rows, err := DB.Query(ctx, query)
	if err != nil {
		log.Printf("Error querying products table: %v", err)
		return nil, err
	}
	defer rows.Close()

	var products []models.ProductRecord
	for rows.Next() {
		var p models.ProductRecord
		if err := rows.Scan(&p.ProductID, &p.ProductName, &p.Category); err != nil {
			log.Printf("Error scanning product row: %v", err)
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func loadInventory(ctx context.Context) ([]models.InventoryRecord, error) {
	query := `
		SELECT product_id, stock_level, reorder_level
		FROM inventory
		ORDER BY product_id ASC
	`
	rows, err := DB.Query(ctx, query)
	if err != nil {
		log.Printf("Error querying inventory table: %v", err)
		return nil, err
	}
	defer rows.Close()

	var inventory []models.InventoryRecord
	for rows.Next() {
		var inv models.InventoryRecord
		if err := rows.Scan(&inv.ProductID, &inv.StockLevel, &inv.ReorderLevel); err != nil {
			log.Printf("Error scanning inventory row: %v", err)
			return nil, err
		}
		inventory = append(inventory, inv)
	}
	return inventory, rows.Err()
}
