// Package client is a thin Go wrapper around the storefront HTTP API. It is
// the programmatic counterpart of the browser clients: one method per
// endpoint, bearer-token auth, and typed responses.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// APIError is a non-2xx response decoded into the server's error envelope.
type APIError struct {
	StatusCode int
	Message    string
	Errors     []string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

// New returns a client for the API at baseURL (e.g. "http://localhost:5001").
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// SetToken installs a bearer token for subsequent requests. Login and
// Register do this automatically.
func (c *Client) SetToken(token string) { c.token = token }

// Token returns the current bearer token, empty when unauthenticated.
func (c *Client) Token() string { return c.token }

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(raw)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		apiErr := &APIError{StatusCode: res.StatusCode}
		var envelope struct {
			Message string   `json:"message"`
			Errors  []string `json:"errors"`
		}
		if err := json.NewDecoder(res.Body).Decode(&envelope); err == nil {
			apiErr.Message = envelope.Message
			apiErr.Errors = envelope.Errors
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}

func pageQuery(page, limit int) string {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// Auth

// Register creates an account and installs the returned token.
func (c *Client) Register(ctx context.Context, name, email, password string) (AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/register", map[string]string{
		"name": name, "email": email, "password": password,
	}, &out)
	if err == nil {
		c.token = out.Token
	}
	return out, err
}

// Login authenticates and installs the returned token.
func (c *Client) Login(ctx context.Context, email, password string) (AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", map[string]string{
		"email": email, "password": password,
	}, &out)
	if err == nil {
		c.token = out.Token
	}
	return out, err
}

func (c *Client) Profile(ctx context.Context) (User, error) {
	var out User
	err := c.do(ctx, http.MethodGet, "/api/auth/profile", nil, &out)
	return out, err
}

func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (User, error) {
	var out User
	err := c.do(ctx, http.MethodPut, "/api/auth/profile", update, &out)
	return out, err
}

// Catalog

func (c *Client) Products(ctx context.Context, page, limit int) (ProductList, error) {
	var out ProductList
	err := c.do(ctx, http.MethodGet, "/api/products"+pageQuery(page, limit), nil, &out)
	return out, err
}

func (c *Client) Product(ctx context.Context, id int) (Product, error) {
	var out Product
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/products/%d", id), nil, &out)
	return out, err
}

// Cart

func (c *Client) Cart(ctx context.Context) (Cart, error) {
	var out Cart
	err := c.do(ctx, http.MethodGet, "/api/cart", nil, &out)
	return out, err
}

func (c *Client) AddToCart(ctx context.Context, productID, quantity int) (Cart, error) {
	var out cartResponse
	err := c.do(ctx, http.MethodPost, "/api/cart/add", map[string]int{
		"productId": productID, "quantity": quantity,
	}, &out)
	return out.Cart, err
}

func (c *Client) UpdateCartItem(ctx context.Context, productID, quantity int) (Cart, error) {
	var out cartResponse
	err := c.do(ctx, http.MethodPut, "/api/cart/update", map[string]int{
		"productId": productID, "quantity": quantity,
	}, &out)
	return out.Cart, err
}

func (c *Client) RemoveFromCart(ctx context.Context, productID int) (Cart, error) {
	var out cartResponse
	err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/cart/remove/%d", productID), nil, &out)
	return out.Cart, err
}

func (c *Client) ClearCart(ctx context.Context) (Cart, error) {
	var out cartResponse
	err := c.do(ctx, http.MethodDelete, "/api/cart/clear", nil, &out)
	return out.Cart, err
}

// Orders

func (c *Client) CreateOrder(ctx context.Context, req OrderRequest) (Order, error) {
	var out orderResponse
	err := c.do(ctx, http.MethodPost, "/api/orders", req, &out)
	return out.Order, err
}

func (c *Client) MyOrders(ctx context.Context, page, limit int) (OrderList, error) {
	var out OrderList
	err := c.do(ctx, http.MethodGet, "/api/orders/myorders"+pageQuery(page, limit), nil, &out)
	return out, err
}

func (c *Client) Order(ctx context.Context, id int) (Order, error) {
	var out Order
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/orders/%d", id), nil, &out)
	return out, err
}

func (c *Client) CancelOrder(ctx context.Context, id int) (Order, error) {
	var out orderResponse
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/orders/%d/cancel", id), nil, &out)
	return out.Order, err
}

// UpdateOrderStatus sets an order's fulfillment status (admin token required).
func (c *Client) UpdateOrderStatus(ctx context.Context, id int, status string) (Order, error) {
	var out orderResponse
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/orders/%d/status", id), map[string]string{
		"status": status,
	}, &out)
	return out.Order, err
}
