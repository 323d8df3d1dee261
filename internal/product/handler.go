package product

import (
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/techsphere/backend/internal/user"
)

// Handler delegates catalog operations to the product service. Admin-only
// routes additionally consult the user service for the isAdmin flag.
type Handler struct {
	service ServiceInterface
	users   user.ServiceInterface
}

func NewHandler(s ServiceInterface, us user.ServiceInterface) *Handler {
	return &Handler{service: s, users: us}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/products", h.listProducts)
	app.Get("/api/products/:id", h.getProduct)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/products", h.createProduct)
	app.Put("/api/products/:id", h.updateProduct)
}

func (h *Handler) listProducts(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	products, total, err := h.service.List(page, limit)
	if err != nil {
		log.Printf("list products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error while fetching products"})
	}

	return c.JSON(fiber.Map{
		"products": products,
		"pagination": Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: PageCount(total, limit),
		},
	})
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
	}

	p, err := h.service.GetByID(id)
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
		default:
			log.Printf("get product %d: %v", id, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error while fetching product"})
		}
	}

	return c.JSON(p)
}

type productRequest struct {
	Name         string  `json:"name"`
	Image        string  `json:"image"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	CountInStock int     `json:"countInStock"`
	Category     string  `json:"category"`
}

type productUpdateRequest struct {
	Name         *string  `json:"name"`
	Image        *string  `json:"image"`
	Description  *string  `json:"description"`
	Price        *float64 `json:"price"`
	CountInStock *int     `json:"countInStock"`
	Category     *string  `json:"category"`
}

func (h *Handler) requireAdmin(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}
	u, err := h.users.GetByID(userID)
	if err != nil || !u.IsAdmin {
		return fiber.ErrForbidden
	}
	return nil
}

func (h *Handler) createProduct(c *fiber.Ctx) error {
	if err := h.requireAdmin(c); err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Not authorized as admin"})
	}

	payload := new(productRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Name == "" || payload.Price < 0 || payload.CountInStock < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Name is required and price/stock must be non-negative"})
	}

	now := time.Now().UTC().Format(time.RFC3339)
	created, err := h.service.Create(Product{
		Name:         payload.Name,
		Image:        payload.Image,
		Description:  payload.Description,
		Price:        payload.Price,
		CountInStock: payload.CountInStock,
		Category:     payload.Category,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if err == ErrInvalidCategory {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid category"})
		}
		log.Printf("create product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error while creating product"})
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) updateProduct(c *fiber.Ctx) error {
	if err := h.requireAdmin(c); err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Not authorized as admin"})
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
	}

	existing, err := h.service.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
	}

	// pointer fields distinguish "absent" from zero values like stock 0
	payload := new(productUpdateRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if payload.Name != nil {
		existing.Name = *payload.Name
	}
	if payload.Image != nil {
		existing.Image = *payload.Image
	}
	if payload.Description != nil {
		existing.Description = *payload.Description
	}
	if payload.Price != nil {
		if *payload.Price < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Price must be non-negative"})
		}
		existing.Price = *payload.Price
	}
	if payload.CountInStock != nil {
		if *payload.CountInStock < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Stock must be non-negative"})
		}
		existing.CountInStock = *payload.CountInStock
	}
	if payload.Category != nil {
		existing.Category = *payload.Category
	}
	existing.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	updated, err := h.service.Update(id, existing)
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
		case ErrInvalidCategory:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid category"})
		default:
			log.Printf("update product %d: %v", id, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error while updating product"})
		}
	}

	return c.JSON(updated)
}
