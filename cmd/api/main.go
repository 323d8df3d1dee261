package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	jwtware "github.com/gofiber/jwt/v2"

	"github.com/techsphere/backend/internal/cart"
	"github.com/techsphere/backend/internal/config"
	"github.com/techsphere/backend/internal/order"
	"github.com/techsphere/backend/internal/product"
	"github.com/techsphere/backend/internal/user"
)

// main starts the API on in-memory repositories with the demo catalog.
// Useful for frontend work without a database.
func main() {
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		// dev-only fallback so the server comes up without any env setup
		os.Setenv("JWT_SECRET", "dev-secret")
		cfg.JWTSecret = "dev-secret"
	}

	productRepo := product.NewInMemoryRepository(product.SeedProducts)
	cartRepo := cart.NewInMemoryRepository()
	userRepo := user.NewInMemoryRepository(nil)

	userService := user.NewService(userRepo)
	productService := product.NewService(productRepo)
	cartService := cart.NewService(cartRepo, productService)
	orderService := order.NewService(order.NewInMemoryRepository(productRepo, cartRepo), cartService, productService)

	// demo accounts, matching the seed command
	for _, u := range []user.User{
		{Name: "Admin User", Email: "admin@example.com", Password: "admin123", IsAdmin: true},
		{Name: "John Doe", Email: "john@example.com", Password: "password123"},
	} {
		if _, err := userService.Register(u); err != nil {
			log.Fatalf("seed user %s: %v", u.Email, err)
		}
	}

	userHandler := user.NewHandler(userService)
	productHandler := product.NewHandler(productService, userService)
	cartHandler := cart.NewHandler(cartService)
	orderHandler := order.NewHandler(orderService, userService)

	app := fiber.New()
	app.Use(cors.New())
	app.Use(logger.New())

	userHandler.RegisterPublicRoutes(app)
	productHandler.RegisterPublicRoutes(app)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Not authorized, token failed"})
		},
	}))

	userHandler.RegisterProtectedRoutes(app)
	productHandler.RegisterProtectedRoutes(app)
	cartHandler.RegisterProtectedRoutes(app)
	orderHandler.RegisterProtectedRoutes(app)

	log.Printf("starting in-memory server on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
