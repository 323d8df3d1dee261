package client

import (
	"context"
	"sync"
)

// State is the explicit client-side session state: the signed-in user and
// the last cart the server returned. It is a display cache only — stock or
// checkout decisions always go back to the server, and Refresh rehydrates it
// from there.
type State struct {
	mu     sync.RWMutex
	client *Client
	user   *User
	cart   Cart
}

func NewState(c *Client) *State {
	return &State{client: c, cart: Cart{Items: []CartItem{}}}
}

// SignIn logs in and populates the state from the response.
func (s *State) SignIn(ctx context.Context, email, password string) error {
	res, err := s.client.Login(ctx, email, password)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.user = &res.User
	s.mu.Unlock()
	return s.refreshCart(ctx)
}

// SignOut drops the token and all cached state.
func (s *State) SignOut() {
	s.client.SetToken("")
	s.mu.Lock()
	s.user = nil
	s.cart = Cart{Items: []CartItem{}}
	s.mu.Unlock()
}

// Refresh rehydrates user and cart from the server. Call it on load when a
// token survived from a previous session.
func (s *State) Refresh(ctx context.Context) error {
	u, err := s.client.Profile(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.user = &u
	s.mu.Unlock()
	return s.refreshCart(ctx)
}

func (s *State) refreshCart(ctx context.Context) error {
	crt, err := s.client.Cart(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.cart = crt
	s.mu.Unlock()
	return nil
}

// SetCart replaces the cached cart, typically with the cart a mutating call
// just returned.
func (s *State) SetCart(crt Cart) {
	s.mu.Lock()
	s.cart = crt
	s.mu.Unlock()
}

// User returns the cached user, nil when signed out.
func (s *State) User() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Cart returns the cached cart.
func (s *State) Cart() Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cart
}

// Authenticated reports whether a user is cached.
func (s *State) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}
