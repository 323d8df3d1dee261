package order

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/techsphere/backend/internal/cart"
	"github.com/techsphere/backend/internal/product"
	"github.com/techsphere/backend/internal/user"
)

func makeAppWithOrderHandler(h *Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if v := c.Get("X-User-ID"); v != "" {
			id, err := strconv.Atoi(v)
			if err == nil {
				claims := jwt.MapClaims{"user_id": id}
				tok := &jwt.Token{Claims: claims}
				c.Locals("user", tok)
			}
		}
		return c.Next()
	})
	h.RegisterProtectedRoutes(app)
	return app
}

type orderFixture struct {
	app    *fiber.App
	orders *Service
	carts  *cart.Service
}

func newOrderFixture(t *testing.T) orderFixture {
	t.Helper()
	productRepo := product.NewInMemoryRepository([]product.Product{
		{ID: 1, Name: "Wireless Headphones", Price: 1999, CountInStock: 5},
		{ID: 2, Name: "Phone Case", Price: 25, CountInStock: 10},
	})
	productService := product.NewService(productRepo)
	cartRepo := cart.NewInMemoryRepository()
	cartService := cart.NewService(cartRepo, productService)
	orderService := NewService(NewInMemoryRepository(productRepo, cartRepo), cartService, productService)

	userRepo := user.NewInMemoryRepository([]user.User{
		{ID: 1, Name: "Admin", Email: "admin@example.com", IsAdmin: true},
		{ID: 42, Name: "John", Email: "john@example.com"},
		{ID: 43, Name: "Jane", Email: "jane@example.com"},
	})
	handler := NewHandler(orderService, user.NewService(userRepo))

	return orderFixture{app: makeAppWithOrderHandler(handler), orders: orderService, carts: cartService}
}

const validOrderBody = `{"shippingAddress":{"fullName":"John Doe","address":"456 User Ave","city":"User City","state":"UC","zipCode":"67890"}}`

func doOrderRequest(t *testing.T, app *fiber.App, method, path, userID, body string) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	data, _ := io.ReadAll(res.Body)
	return res.StatusCode, data
}

func (f orderFixture) placeVia(t *testing.T, userID int) Order {
	t.Helper()
	if _, err := f.carts.Add(userID, 1, 2); err != nil {
		t.Fatalf("seed cart: %v", err)
	}
	ord, err := f.orders.Place(userID, testAddress, "")
	if err != nil {
		t.Fatalf("seed order: %v", err)
	}
	return ord
}

func TestCreateOrderRoute(t *testing.T) {
	f := newOrderFixture(t)

	// unauthenticated
	code, _ := doOrderRequest(t, f.app, "POST", "/api/orders", "", validOrderBody)
	if code != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", code)
	}

	// empty cart
	code, body := doOrderRequest(t, f.app, "POST", "/api/orders", "42", validOrderBody)
	if code != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for empty cart, got %d: %s", code, body)
	}
	if !strings.Contains(string(body), "Cart is empty") {
		t.Errorf("unexpected body: %s", body)
	}

	// missing address fields
	if _, err := f.carts.Add(42, 1, 2); err != nil {
		t.Fatal(err)
	}
	code, body = doOrderRequest(t, f.app, "POST", "/api/orders", "42", `{"shippingAddress":{"fullName":"John Doe"}}`)
	if code != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for missing fields, got %d", code)
	}
	if !strings.Contains(string(body), "Validation failed") || !strings.Contains(string(body), "City is required") {
		t.Errorf("unexpected validation body: %s", body)
	}

	// happy path
	code, body = doOrderRequest(t, f.app, "POST", "/api/orders", "42", validOrderBody)
	if code != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", code, body)
	}
	var created struct {
		Message string `json:"message"`
		Order   Order  `json:"order"`
	}
	if err := json.Unmarshal(body, &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.Message != "Order created successfully" {
		t.Errorf("message = %q", created.Message)
	}
	if created.Order.Status != StatusPending || created.Order.TotalPrice != 4317.84 {
		t.Errorf("unexpected order: %+v", created.Order)
	}
}

func TestGetOrderRoute_Ownership(t *testing.T) {
	f := newOrderFixture(t)
	ord := f.placeVia(t, 42)
	path := fmt.Sprintf("/api/orders/%d", ord.ID)

	// owner can read
	code, _ := doOrderRequest(t, f.app, "GET", path, "42", "")
	if code != fiber.StatusOK {
		t.Fatalf("owner read: expected 200, got %d", code)
	}

	// other user is rejected
	code, body := doOrderRequest(t, f.app, "GET", path, "43", "")
	if code != fiber.StatusForbidden {
		t.Fatalf("stranger read: expected 403, got %d", code)
	}
	if !strings.Contains(string(body), "Not authorized to view this order") {
		t.Errorf("unexpected body: %s", body)
	}

	// admin can read anyone's order
	code, _ = doOrderRequest(t, f.app, "GET", path, "1", "")
	if code != fiber.StatusOK {
		t.Fatalf("admin read: expected 200, got %d", code)
	}

	// unknown order
	code, _ = doOrderRequest(t, f.app, "GET", "/api/orders/999", "42", "")
	if code != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown order, got %d", code)
	}
}

func TestMyOrdersRoute(t *testing.T) {
	f := newOrderFixture(t)
	f.placeVia(t, 42)
	f.placeVia(t, 43)

	code, body := doOrderRequest(t, f.app, "GET", "/api/orders/myorders", "42", "")
	if code != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	var resp struct {
		Orders     []Order            `json:"orders"`
		Pagination product.Pagination `json:"pagination"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Orders) != 1 || resp.Orders[0].UserID != 42 {
		t.Errorf("expected only user 42's order, got %+v", resp.Orders)
	}
	if resp.Pagination.Total != 1 {
		t.Errorf("pagination total = %d, want 1", resp.Pagination.Total)
	}
}

func TestUpdateStatusRoute(t *testing.T) {
	f := newOrderFixture(t)
	ord := f.placeVia(t, 42)
	path := fmt.Sprintf("/api/orders/%d/status", ord.ID)

	// non-admin is rejected
	code, body := doOrderRequest(t, f.app, "PUT", path, "42", `{"status":"shipped"}`)
	if code != fiber.StatusForbidden {
		t.Fatalf("expected 403 for non-admin, got %d", code)
	}
	if !strings.Contains(string(body), "Not authorized as admin") {
		t.Errorf("unexpected body: %s", body)
	}

	// unknown status value
	code, body = doOrderRequest(t, f.app, "PUT", path, "1", `{"status":"teleported"}`)
	if code != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for bad status, got %d", code)
	}
	if !strings.Contains(string(body), "Invalid status") {
		t.Errorf("unexpected body: %s", body)
	}

	// legal transition
	code, _ = doOrderRequest(t, f.app, "PUT", path, "1", `{"status":"shipped"}`)
	if code != fiber.StatusOK {
		t.Fatalf("expected 200 for pending->shipped, got %d", code)
	}

	// illegal transition
	code, body = doOrderRequest(t, f.app, "PUT", path, "1", `{"status":"pending"}`)
	if code != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for shipped->pending, got %d", code)
	}
	if !strings.Contains(string(body), "cannot transition order from shipped to pending") {
		t.Errorf("unexpected body: %s", body)
	}
}

func TestCancelOrderRoute(t *testing.T) {
	f := newOrderFixture(t)
	ord := f.placeVia(t, 42)
	path := fmt.Sprintf("/api/orders/%d/cancel", ord.ID)

	// only the owner may cancel, even an admin cannot
	code, body := doOrderRequest(t, f.app, "PUT", path, "1", "")
	if code != fiber.StatusForbidden {
		t.Fatalf("expected 403 for non-owner, got %d", code)
	}
	if !strings.Contains(string(body), "Not authorized to cancel this order") {
		t.Errorf("unexpected body: %s", body)
	}

	code, _ = doOrderRequest(t, f.app, "PUT", path, "42", "")
	if code != fiber.StatusOK {
		t.Fatalf("expected 200 for owner cancel, got %d", code)
	}

	// cancelling twice
	code, body = doOrderRequest(t, f.app, "PUT", path, "42", "")
	if code != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for double cancel, got %d", code)
	}
	if !strings.Contains(string(body), "Order is already cancelled") {
		t.Errorf("unexpected body: %s", body)
	}
}
