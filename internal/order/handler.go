package order

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/techsphere/backend/internal/product"
	"github.com/techsphere/backend/internal/user"
)

// Handler delegates order operations to the order service. It also needs the
// user service for ownership and admin checks.
type Handler struct {
	service *Service
	users   user.ServiceInterface
}

func NewHandler(s *Service, us user.ServiceInterface) *Handler {
	return &Handler{service: s, users: us}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/orders", h.createOrder)
	// register before the :id route to avoid the param swallowing "myorders"
	app.Get("/api/orders/myorders", h.getMyOrders)
	app.Get("/api/orders/:id", h.getOrder)
	app.Put("/api/orders/:id/status", h.updateStatus)
	app.Put("/api/orders/:id/cancel", h.cancelOrder)
}

type createOrderRequest struct {
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod"`
}

func (p *createOrderRequest) validate() []string {
	var errs []string
	if strings.TrimSpace(p.ShippingAddress.FullName) == "" {
		errs = append(errs, "Full name is required")
	}
	if strings.TrimSpace(p.ShippingAddress.Address) == "" {
		errs = append(errs, "Address is required")
	}
	if strings.TrimSpace(p.ShippingAddress.City) == "" {
		errs = append(errs, "City is required")
	}
	if strings.TrimSpace(p.ShippingAddress.State) == "" {
		errs = append(errs, "State is required")
	}
	if strings.TrimSpace(p.ShippingAddress.ZipCode) == "" {
		errs = append(errs, "Zip code is required")
	}
	if p.PaymentMethod != "" && !ValidPaymentMethod(p.PaymentMethod) {
		errs = append(errs, "Invalid payment method")
	}
	return errs
}

func (h *Handler) createOrder(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Not authorized, token failed"})
	}

	payload := new(createOrderRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if errs := payload.validate(); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Validation failed", "errors": errs})
	}

	ord, err := h.service.Place(userID, payload.ShippingAddress, payload.PaymentMethod)
	if err != nil {
		var stockErr *product.StockError
		switch {
		case errors.Is(err, ErrEmptyCart):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cart is empty"})
		case errors.As(err, &stockErr):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": stockErr.Error()})
		case errors.Is(err, product.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
		default:
			log.Printf("place order for user %d: %v", userID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error while creating order"})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Order created successfully",
		"order":   ord,
	})
}

func (h *Handler) getMyOrders(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Not authorized, token failed"})
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	orders, total, err := h.service.ListByUser(userID, page, limit)
	if err != nil {
		log.Printf("list orders for user %d: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error while fetching orders"})
	}

	return c.JSON(fiber.Map{
		"orders": orders,
		"pagination": product.Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: product.PageCount(total, limit),
		},
	})
}

func (h *Handler) getOrder(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Not authorized, token failed"})
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Order not found"})
	}

	ord, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Order not found"})
		}
		log.Printf("get order %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error while fetching order"})
	}

	if ord.UserID != userID {
		u, err := h.users.GetByID(userID)
		if err != nil || !u.IsAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Not authorized to view this order"})
		}
	}

	return c.JSON(ord)
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) updateStatus(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Not authorized, token failed"})
	}

	u, err := h.users.GetByID(userID)
	if err != nil || !u.IsAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Not authorized as admin"})
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Order not found"})
	}

	payload := new(statusRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	next, err := ParseStatus(payload.Status)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid status"})
	}

	ord, err := h.service.SetStatus(id, next)
	if err != nil {
		var trErr *TransitionError
		switch {
		case errors.Is(err, ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Order not found"})
		case errors.As(err, &trErr):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": trErr.Error()})
		default:
			log.Printf("update order %d status: %v", id, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error while updating order status"})
		}
	}

	return c.JSON(fiber.Map{
		"message": "Order status updated successfully",
		"order":   ord,
	})
}

func (h *Handler) cancelOrder(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Not authorized, token failed"})
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Order not found"})
	}

	existing, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Order not found"})
		}
		log.Printf("get order %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error while cancelling order"})
	}
	if existing.UserID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Not authorized to cancel this order"})
	}

	ord, err := h.service.Cancel(id)
	if err != nil {
		switch {
		case errors.Is(err, ErrAlreadyCancelled):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Order is already cancelled"})
		case errors.Is(err, ErrNotCancellable):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot cancel order that has been shipped or delivered"})
		default:
			log.Printf("cancel order %d: %v", id, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error while cancelling order"})
		}
	}

	return c.JSON(fiber.Map{
		"message": "Order cancelled successfully",
		"order":   ord,
	})
}
