package service

import (
	"context"
	"errors"
	"testing"

	"github.com/reviewflow/review-service/internal/domain"
)

func TestUserCreate(t *testing.T) {
	f := newFakeStore()
	f.teams["backend"] = true

	svc := NewUserService(f)
	u, err := svc.Create(context.Background(), "u1", "Alice", "backend", true)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.ID != "u1" || u.TeamName != "backend" || !u.IsActive {
		t.Fatalf("unexpected user: %+v", u)
	}
}

func TestUserCreate_Duplicate(t *testing.T) {
	f := newFakeStore()
	svc := NewUserService(f)
	if _, err := svc.Create(context.Background(), "u1", "Alice", "", true); err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err := svc.Create(context.Background(), "u1", "Alice", "", true)
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("want ErrAlreadyExists, got %v", err)
	}
}

func TestUserCreate_UnknownTeam(t *testing.T) {
	svc := NewUserService(newFakeStore())
	_, err := svc.Create(context.Background(), "u1", "Alice", "ghost", true)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestUserCreate_Validation(t *testing.T) {
	svc := NewUserService(newFakeStore())
	if _, err := svc.Create(context.Background(), "", "Alice", "", true); !errors.Is(err, domain.ErrBadRequest) {
		t.Fatalf("blank id: want ErrBadRequest, got %v", err)
	}
	if _, err := svc.Create(context.Background(), "u1", " ", "", true); !errors.Is(err, domain.ErrBadRequest) {
		t.Fatalf("blank username: want ErrBadRequest, got %v", err)
	}
}

func TestUserSetActive(t *testing.T) {
	f := newFakeStore()
	f.addUser("u1", "backend", true)

	svc := NewUserService(f)
	u, err := svc.SetActive(context.Background(), "u1", false)
	if err != nil {
		t.Fatalf("set active: %v", err)
	}
	if u.IsActive {
		t.Fatalf("want inactive user")
	}

	_, err = svc.SetActive(context.Background(), "ghost", true)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
