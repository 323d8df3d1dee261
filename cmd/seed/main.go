package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/techsphere/backend/internal/config"
	"github.com/techsphere/backend/internal/db"
	"github.com/techsphere/backend/internal/product"
	"github.com/techsphere/backend/internal/user"
)

// main reseeds the catalog and demo users. Existing products are replaced;
// users that already exist are left alone.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer conn.Close()

	if err := db.RunMigrations(conn, cfg.MigrationsPath); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	products := make([]product.Product, 0, len(product.SeedProducts))
	for _, p := range product.SeedProducts {
		p.CreatedAt = now
		p.UpdatedAt = now
		products = append(products, p)
	}

	productService := product.NewService(product.NewPostgresRepository(conn))
	if err := productService.ResetProducts(products); err != nil {
		log.Fatalf("seed products: %v", err)
	}
	log.Printf("seeded %d products", len(products))

	userService := user.NewService(user.NewPostgresRepository(conn))
	demo := []user.User{
		{
			Name: "Admin User", Email: "admin@example.com", Password: "admin123", IsAdmin: true,
			Address: user.Address{Street: "123 Admin St", City: "Admin City", State: "AC", ZipCode: "12345", Country: "USA"},
			Phone:   "+1-555-0001",
		},
		{
			Name: "John Doe", Email: "john@example.com", Password: "password123",
			Address: user.Address{Street: "456 User Ave", City: "User City", State: "UC", ZipCode: "67890", Country: "USA"},
			Phone:   "+1-555-0002",
		},
		{
			Name: "Jane Smith", Email: "jane@example.com", Password: "password123",
			Address: user.Address{Street: "789 Customer Blvd", City: "Customer City", State: "CC", ZipCode: "54321", Country: "USA"},
			Phone:   "+1-555-0003",
		},
	}
	for _, u := range demo {
		u.CreatedAt = now
		u.UpdatedAt = now
		if _, err := userService.Register(u); err != nil {
			if err == user.ErrEmailExists {
				log.Printf("user %s already exists, skipping", u.Email)
				continue
			}
			log.Fatalf("seed user %s: %v", u.Email, err)
		}
		log.Printf("seeded user %s", u.Email)
	}
}
