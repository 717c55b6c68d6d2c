package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/reviewflow/review-service/internal/domain"
)

type TeamStore interface {
	CreateTeam(ctx context.Context, name string, memberIDs []string) error
	GetTeam(ctx context.Context, name string) (*domain.Team, []domain.User, error)
}

type TeamService struct {
	store TeamStore
}

func NewTeamService(store TeamStore) *TeamService {
	return &TeamService{store: store}
}

// Create registers the team and re-points the listed existing users to it.
func (s *TeamService) Create(ctx context.Context, name string, memberIDs []string) (*domain.Team, []domain.User, error) {
	if err := validateTeam(name, memberIDs); err != nil {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrBadRequest, err)
	}

	if err := s.store.CreateTeam(ctx, name, memberIDs); err != nil {
		return nil, nil, err
	}

	slog.Info("team created", "team_name", name, "members_count", len(memberIDs))

	return s.store.GetTeam(ctx, name)
}

func (s *TeamService) Get(ctx context.Context, name string) (*domain.Team, []domain.User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, nil, fmt.Errorf("%w: team_name is required", domain.ErrBadRequest)
	}
	return s.store.GetTeam(ctx, name)
}

func validateTeam(name string, memberIDs []string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("team_name is required")
	}
	seen := make(map[string]bool, len(memberIDs))
	for _, id := range memberIDs {
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("member user_id is required")
		}
		if seen[id] {
			return fmt.Errorf("duplicate member user_id: %s", id)
		}
		seen[id] = true
	}
	return nil
}
