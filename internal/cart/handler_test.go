package cart

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/techsphere/backend/internal/product"
)

func makeAppWithCartHandler(h *Handler) *fiber.App {
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

func newCartApp() *fiber.App {
	productRepo := product.NewInMemoryRepository([]product.Product{
		{ID: 1, Name: "Wireless Headphones", Price: 1999, CountInStock: 5},
		{ID: 2, Name: "Phone Case", Price: 25, CountInStock: 2},
	})
	svc := NewService(NewInMemoryRepository(), product.NewService(productRepo))
	return makeAppWithCartHandler(NewHandler(svc))
}

type cartEnvelope struct {
	Message string `json:"message"`
	Cart    Cart   `json:"cart"`
}

func doCartRequest(t *testing.T, app *fiber.App, method, path, userID, body string) (int, []byte) {
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

func TestCartRoutes_Auth(t *testing.T) {
	app := newCartApp()

	code, _ := doCartRequest(t, app, "GET", "/api/cart", "", "")
	if code != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", code)
	}
	code, _ = doCartRequest(t, app, "POST", "/api/cart/add", "", `{"productId":1,"quantity":1}`)
	if code != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", code)
	}
}

func TestCartRoutes_AddAndGet(t *testing.T) {
	app := newCartApp()

	// fresh user gets the canonical empty cart
	code, body := doCartRequest(t, app, "GET", "/api/cart", "42", "")
	if code != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	var empty Cart
	if err := json.Unmarshal(body, &empty); err != nil {
		t.Fatalf("decode cart: %v", err)
	}
	if empty.Items == nil || len(empty.Items) != 0 || empty.TotalItems != 0 {
		t.Errorf("unexpected empty cart: %s", body)
	}

	code, body = doCartRequest(t, app, "POST", "/api/cart/add", "42", `{"productId":1,"quantity":2}`)
	if code != fiber.StatusOK {
		t.Fatalf("expected 200 for add, got %d: %s", code, body)
	}
	var env cartEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.Message != "Item added to cart successfully" {
		t.Errorf("message = %q", env.Message)
	}
	if env.Cart.TotalItems != 2 || env.Cart.TotalAmount != 3998 {
		t.Errorf("unexpected cart: %+v", env.Cart)
	}
}

func TestCartRoutes_AddValidation(t *testing.T) {
	app := newCartApp()

	code, body := doCartRequest(t, app, "POST", "/api/cart/add", "42", `{"productId":0,"quantity":1}`)
	if code != fiber.StatusBadRequest || !strings.Contains(string(body), "Invalid product ID") {
		t.Fatalf("expected 400 Invalid product ID, got %d: %s", code, body)
	}

	code, body = doCartRequest(t, app, "POST", "/api/cart/add", "42", `{"productId":1,"quantity":0}`)
	if code != fiber.StatusBadRequest || !strings.Contains(string(body), "Quantity must be at least 1") {
		t.Fatalf("expected 400 quantity message, got %d: %s", code, body)
	}

	code, body = doCartRequest(t, app, "POST", "/api/cart/add", "42", `{"productId":99,"quantity":1}`)
	if code != fiber.StatusNotFound || !strings.Contains(string(body), "Product not found") {
		t.Fatalf("expected 404 Product not found, got %d: %s", code, body)
	}

	// more than the 2 in stock
	code, body = doCartRequest(t, app, "POST", "/api/cart/add", "42", `{"productId":2,"quantity":3}`)
	if code != fiber.StatusBadRequest || !strings.Contains(string(body), "Insufficient stock for Phone Case. Only 2 available") {
		t.Fatalf("expected 400 stock message, got %d: %s", code, body)
	}
}

func TestCartRoutes_UpdateRemoveClear(t *testing.T) {
	app := newCartApp()

	if code, body := doCartRequest(t, app, "POST", "/api/cart/add", "42", `{"productId":1,"quantity":2}`); code != fiber.StatusOK {
		t.Fatalf("seed add: %d %s", code, body)
	}
	if code, body := doCartRequest(t, app, "POST", "/api/cart/add", "42", `{"productId":2,"quantity":1}`); code != fiber.StatusOK {
		t.Fatalf("seed add: %d %s", code, body)
	}

	code, body := doCartRequest(t, app, "PUT", "/api/cart/update", "42", `{"productId":1,"quantity":4}`)
	if code != fiber.StatusOK {
		t.Fatalf("update: %d %s", code, body)
	}
	var env cartEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatal(err)
	}
	if env.Cart.TotalItems != 5 {
		t.Errorf("totalItems after update = %d, want 5", env.Cart.TotalItems)
	}

	// updating an item not in the cart
	code, body = doCartRequest(t, app, "PUT", "/api/cart/update", "43", `{"productId":1,"quantity":1}`)
	if code != fiber.StatusNotFound || !strings.Contains(string(body), "Cart not found") {
		t.Fatalf("expected 404 Cart not found, got %d: %s", code, body)
	}

	code, body = doCartRequest(t, app, "DELETE", "/api/cart/remove/1", "42", "")
	if code != fiber.StatusOK {
		t.Fatalf("remove: %d %s", code, body)
	}
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatal(err)
	}
	if len(env.Cart.Items) != 1 || env.Cart.Items[0].Product.ID != 2 {
		t.Errorf("unexpected cart after remove: %+v", env.Cart)
	}

	code, body = doCartRequest(t, app, "DELETE", "/api/cart/clear", "42", "")
	if code != fiber.StatusOK {
		t.Fatalf("clear: %d %s", code, body)
	}
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatal(err)
	}
	if env.Message != "Cart cleared successfully" || len(env.Cart.Items) != 0 {
		t.Errorf("unexpected clear response: %s", body)
	}
}
