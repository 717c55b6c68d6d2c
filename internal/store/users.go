package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/reviewflow/review-service/internal/domain"
)

func (s *Store) CreateUser(ctx context.Context, u *domain.User) error {
	var exists string
	err := s.db.GetContext(ctx, &exists, `SELECT user_id FROM users WHERE user_id = $1`, u.ID)
	if err == nil {
		return domain.ErrAlreadyExists
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	if u.TeamName != "" {
		var team string
		err = s.db.GetContext(ctx, &team, `SELECT team_name FROM teams WHERE team_name = $1`, u.TeamName)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		if err != nil {
			return err
		}
	}

	_, err = s.db.ExecContext(ctx, `
       INSERT INTO users (user_id, username, is_active, team_name, created_at, updated_at)
       VALUES ($1, $2, $3, NULLIF($4, ''), now(), now())
`, u.ID, u.Username, u.IsActive, u.TeamName)
	return err
}

func (s *Store) GetUser(ctx context.Context, id string) (*domain.User, error) {
	var u domain.User
	err := s.db.GetContext(ctx, &u, `
       SELECT user_id, username, is_active, COALESCE(team_name, '') AS team_name, created_at, updated_at
       FROM users WHERE user_id = $1
`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (s *Store) SetUserActive(ctx context.Context, id string, active bool) (*domain.User, error) {
	res, err := s.db.ExecContext(ctx, `UPDATE users SET is_active = $1, updated_at = now() WHERE user_id = $2`, active, id)
	if err != nil {
		return nil, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, domain.ErrNotFound
	}
	return s.GetUser(ctx, id)
}

// ListActiveTeammates returns the ids of active users in teamName, excluding
// excludeID, in stable user_id order.
func (s *Store) ListActiveTeammates(ctx context.Context, teamName, excludeID string) ([]string, error) {
	var ids []string
	err := s.db.SelectContext(ctx, &ids, `
       SELECT user_id FROM users
       WHERE team_name = $1 AND is_active = true AND user_id <> $2
       ORDER BY user_id
`, teamName, excludeID)
	if err != nil {
		return nil, err
	}
	return ids, nil
}
