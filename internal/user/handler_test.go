package user

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

func makeAppWithUserHandler(h *Handler) *fiber.App {
	app := fiber.New()
	h.RegisterPublicRoutes(app)
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

func doUserRequest(t *testing.T, app *fiber.App, method, path, userID, body string) (int, []byte) {
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

type authResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

func TestRegisterRoute(t *testing.T) {
	app := makeAppWithUserHandler(NewHandler(NewService(NewInMemoryRepository(nil))))

	// validation errors are collected
	code, body := doUserRequest(t, app, "POST", "/api/auth/register", "", `{"name":"","email":"bad","password":"123"}`)
	if code != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for invalid payload, got %d", code)
	}
	for _, want := range []string{"Validation failed", "Name is required", "Please provide a valid email", "Password must be at least 6 characters"} {
		if !strings.Contains(string(body), want) {
			t.Errorf("response missing %q: %s", want, body)
		}
	}

	code, body = doUserRequest(t, app, "POST", "/api/auth/register", "", `{"name":"John","email":"John@Example.com","password":"password123"}`)
	if code != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", code, body)
	}
	var resp authResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a token in the response")
	}
	if resp.User.Email != "john@example.com" {
		t.Errorf("email not lowercased: %q", resp.User.Email)
	}
	if resp.User.Password != "" {
		t.Error("password leaked in the response")
	}

	// duplicate email
	code, body = doUserRequest(t, app, "POST", "/api/auth/register", "", `{"name":"Impostor","email":"john@example.com","password":"hunter22"}`)
	if code != fiber.StatusBadRequest || !strings.Contains(string(body), "Email already exists") {
		t.Fatalf("expected 400 Email already exists, got %d: %s", code, body)
	}
}

func TestLoginRoute(t *testing.T) {
	app := makeAppWithUserHandler(NewHandler(NewService(NewInMemoryRepository(nil))))

	if code, body := doUserRequest(t, app, "POST", "/api/auth/register", "", `{"name":"John","email":"john@example.com","password":"password123"}`); code != fiber.StatusCreated {
		t.Fatalf("seed register: %d %s", code, body)
	}

	code, body := doUserRequest(t, app, "POST", "/api/auth/login", "", `{"email":"john@example.com","password":"password123"}`)
	if code != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %s", code, body)
	}
	var resp authResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token == "" || resp.User.Name != "John" {
		t.Errorf("unexpected login response: %s", body)
	}

	code, body = doUserRequest(t, app, "POST", "/api/auth/login", "", `{"email":"john@example.com","password":"wrong"}`)
	if code != fiber.StatusUnauthorized || !strings.Contains(string(body), "Invalid email or password") {
		t.Fatalf("expected 401 Invalid email or password, got %d: %s", code, body)
	}
}

func TestProfileRoutes(t *testing.T) {
	repo := NewInMemoryRepository([]User{{
		ID: 42, Name: "John", Email: "john@example.com", Password: "hash", Phone: "555-0110",
		Address: Address{Street: "456 User Ave", City: "User City", State: "UC", ZipCode: "67890", Country: "USA"},
	}})
	app := makeAppWithUserHandler(NewHandler(NewService(repo)))

	code, _ := doUserRequest(t, app, "GET", "/api/auth/profile", "", "")
	if code != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", code)
	}

	code, body := doUserRequest(t, app, "GET", "/api/auth/profile", "42", "")
	if code != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	var u User
	if err := json.Unmarshal(body, &u); err != nil {
		t.Fatalf("decode user: %v", err)
	}
	if u.Name != "John" || u.Password != "" {
		t.Errorf("unexpected profile: %s", body)
	}

	// partial update: phone only, address stays
	code, body = doUserRequest(t, app, "PUT", "/api/auth/profile", "42", `{"phone":"555-0199"}`)
	if code != fiber.StatusOK {
		t.Fatalf("expected 200 for update, got %d: %s", code, body)
	}
	if err := json.Unmarshal(body, &u); err != nil {
		t.Fatal(err)
	}
	if u.Phone != "555-0199" {
		t.Errorf("phone = %q, want 555-0199", u.Phone)
	}
	if u.Address.City != "User City" {
		t.Errorf("address clobbered by partial update: %+v", u.Address)
	}
}

func TestGetUserIDFromCtx_ClaimTypes(t *testing.T) {
	app := fiber.New()
	app.Get("/whoami", func(c *fiber.Ctx) error {
		id, err := GetUserIDFromCtx(c)
		if err != nil {
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		return c.JSON(fiber.Map{"id": id})
	})

	// JSON numbers decode as float64 in MapClaims
	app2 := fiber.New()
	app2.Use(func(c *fiber.Ctx) error {
		c.Locals("user", &jwt.Token{Claims: jwt.MapClaims{"user_id": float64(42)}})
		return c.Next()
	})
	app2.Get("/whoami", func(c *fiber.Ctx) error {
		id, err := GetUserIDFromCtx(c)
		if err != nil {
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		return c.JSON(fiber.Map{"id": id})
	})

	req := httptest.NewRequest("GET", "/whoami", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("expected 401 without claims, got %d", res.StatusCode)
	}

	res, err = app2.Test(httptest.NewRequest("GET", "/whoami", nil))
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 with float64 claim, got %d", res.StatusCode)
	}
	var out struct {
		ID int `json:"id"`
	}
	data, _ := io.ReadAll(res.Body)
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if out.ID != 42 {
		t.Errorf("id = %d, want 42", out.ID)
	}
}
