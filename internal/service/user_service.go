package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/reviewflow/review-service/internal/domain"
)

type UserStore interface {
	CreateUser(ctx context.Context, u *domain.User) error
	GetUser(ctx context.Context, id string) (*domain.User, error)
	SetUserActive(ctx context.Context, id string, active bool) (*domain.User, error)
}

type UserService struct {
	store UserStore
}

func NewUserService(store UserStore) *UserService {
	return &UserService{store: store}
}

func (s *UserService) Create(ctx context.Context, id, username, teamName string, isActive bool) (*domain.User, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: user_id is required", domain.ErrBadRequest)
	}
	if strings.TrimSpace(username) == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrBadRequest)
	}

	u := domain.NewUser(id, username, teamName, isActive)
	if err := s.store.CreateUser(ctx, u); err != nil {
		return nil, err
	}

	slog.Info("user created", "user_id", id, "team_name", teamName)

	return s.store.GetUser(ctx, id)
}

func (s *UserService) SetActive(ctx context.Context, id string, active bool) (*domain.User, error) {
	u, err := s.store.SetUserActive(ctx, id, active)
	if err != nil {
		return nil, err
	}

	slog.Info("user activation changed", "user_id", id, "is_active", active)

	return u, nil
}
