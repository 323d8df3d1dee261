package user

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestRegister_HashesPassword(t *testing.T) {
	svc := NewService(NewInMemoryRepository(nil))

	created, err := svc.Register(User{Name: "John", Email: "john@example.com", Password: "password123"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if created.ID == 0 {
		t.Error("expected an assigned id")
	}
	if created.Password == "password123" {
		t.Fatal("password stored in plain text")
	}
	if !strings.HasPrefix(created.Password, "$2") {
		t.Errorf("password does not look like a bcrypt hash: %q", created.Password)
	}
	if bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("password123")) != nil {
		t.Error("stored hash does not verify against the original password")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := NewService(NewInMemoryRepository(nil))

	if _, err := svc.Register(User{Name: "John", Email: "john@example.com", Password: "password123"}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Register(User{Name: "Impostor", Email: "john@example.com", Password: "hunter22"}); !errors.Is(err, ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	svc := NewService(NewInMemoryRepository(nil))
	if _, err := svc.Register(User{Name: "John", Email: "john@example.com", Password: "password123"}); err != nil {
		t.Fatal(err)
	}

	u, err := svc.Authenticate("john@example.com", "password123")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if u.Email != "john@example.com" {
		t.Errorf("unexpected user: %+v", u)
	}

	if _, err := svc.Authenticate("john@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for bad password, got %v", err)
	}
	if _, err := svc.Authenticate("nobody@example.com", "password123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}
