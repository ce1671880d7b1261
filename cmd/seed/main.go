package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"querycraft/backend/internal/config"
	"querycraft/backend/internal/logging"
)

var (
	envFile      string
	numCustomers int
	numProducts  int
	numOrders    int
	clearFirst   bool
)

var productCategories = []string{
	"Electronics", "Clothing", "Books", "Food & Beverages",
	"Toys & Games", "Home & Garden", "Sports & Outdoors",
	"Health & Beauty", "Automotive", "Office Supplies",
	"Furniture", "Jewelry", "Musical Instruments", "Pet Supplies",
}

// completed orders dominate, mirroring a realistic shop
var orderStatuses = []string{"pending", "completed", "completed", "completed", "cancelled"}

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample customers, products and orders",
	RunE:  runSeed,
}

func init() {
	rootCmd.Flags().StringVar(&envFile, "env", "", "Path to .env file")
	rootCmd.Flags().IntVar(&numCustomers, "customers", 300, "Number of customers to create")
	rootCmd.Flags().IntVar(&numProducts, "products", 100, "Number of products to create")
	rootCmd.Flags().IntVar(&numOrders, "orders", 1000, "Number of orders to create")
	rootCmd.Flags().BoolVar(&clearFirst, "clear", false, "Clear existing data before seeding")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := logging.NewLogger()

	cfg, err := config.LoadConfig(envFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	connStr := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.DB.Host, cfg.DB.Port, cfg.DB.User, cfg.DB.Password, cfg.DB.Name, cfg.DB.SSLMode,
	)
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer pool.Close()

	if err := createTables(ctx, pool); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	if clearFirst {
		logger.Info("Clearing existing data")
		// orders first, they reference the other two
		for _, table := range []string{"querycraft_order", "querycraft_customer", "querycraft_product"} {
			if _, err := pool.Exec(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("failed to clear %s: %w", table, err)
			}
		}
	}

	logger.Info("Seeding %d customers, %d products, %d orders", numCustomers, numProducts, numOrders)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	customerIDs, err := seedCustomers(ctx, pool, rng)
	if err != nil {
		return fmt.Errorf("failed to seed customers: %w", err)
	}
	logger.Info("Seeded %d customers", len(customerIDs))

	productIDs, err := seedProducts(ctx, pool, rng)
	if err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}
	logger.Info("Seeded %d products", len(productIDs))

	orders, err := seedOrders(ctx, pool, rng, customerIDs, productIDs)
	if err != nil {
		return fmt.Errorf("failed to seed orders: %w", err)
	}
	logger.Info("Seeded %d orders", orders)

	logger.Info("Seeding complete!")
	return nil
}

func createTables(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS querycraft_customer (
			id SERIAL PRIMARY KEY,
			name VARCHAR(200) NOT NULL,
			email VARCHAR(254) NOT NULL,
			registration_date DATE NOT NULL
		);
		CREATE TABLE IF NOT EXISTS querycraft_product (
			id SERIAL PRIMARY KEY,
			name VARCHAR(200) NOT NULL,
			category VARCHAR(100) NOT NULL,
			price DECIMAL(10,2) NOT NULL
		);
		CREATE TABLE IF NOT EXISTS querycraft_order (
			id SERIAL PRIMARY KEY,
			customer_id INTEGER NOT NULL REFERENCES querycraft_customer(id),
			product_id INTEGER NOT NULL REFERENCES querycraft_product(id),
			order_date DATE NOT NULL,
			quantity INTEGER NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'pending'
		);`)
	return err
}

func seedCustomers(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand) ([]int, error) {
	ids := make([]int, 0, numCustomers)
	for i := 0; i < numCustomers; i++ {
		name := fmt.Sprintf("Customer %04d", i+1)
		email := fmt.Sprintf("customer%04d@example.com", i+1)
		registered := time.Now().AddDate(0, 0, -rng.Intn(730))

		var id int
		err := pool.QueryRow(ctx,
			"INSERT INTO querycraft_customer (name, email, registration_date) VALUES ($1, $2, $3) RETURNING id",
			name, email, registered,
		).Scan(&id)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func seedProducts(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand) ([]int, error) {
	ids := make([]int, 0, numProducts)
	for i := 0; i < numProducts; i++ {
		category := productCategories[rng.Intn(len(productCategories))]
		name := fmt.Sprintf("%s Item %03d", category, i+1)
		price := float64(rng.Intn(99000)+100) / 100.0

		var id int
		err := pool.QueryRow(ctx,
			"INSERT INTO querycraft_product (name, category, price) VALUES ($1, $2, $3) RETURNING id",
			name, category, price,
		).Scan(&id)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func seedOrders(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand, customerIDs, productIDs []int) (int, error) {
	if len(customerIDs) == 0 || len(productIDs) == 0 {
		return 0, nil
	}
	count := 0
	for i := 0; i < numOrders; i++ {
		customerID := customerIDs[rng.Intn(len(customerIDs))]
		productID := productIDs[rng.Intn(len(productIDs))]
		orderDate := time.Now().AddDate(0, 0, -rng.Intn(365))
		quantity := rng.Intn(10) + 1
		status := orderStatuses[rng.Intn(len(orderStatuses))]

		_, err := pool.Exec(ctx,
			"INSERT INTO querycraft_order (customer_id, product_id, order_date, quantity, status) VALUES ($1, $2, $3, $4, $5)",
			customerID, productID, orderDate, quantity, status,
		)
		if err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}
