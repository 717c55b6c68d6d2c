package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/reviewflow/review-service/internal/domain"
)

// CreateTeam inserts the team and re-points every listed member to it in one
// transaction. A missing member rolls the whole creation back.
func (s *Store) CreateTeam(ctx context.Context, name string, memberIDs []string) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer rollback(tx, "CreateTeam")

	var exists string
	err = tx.GetContext(ctx, &exists, `SELECT team_name FROM teams WHERE team_name = $1`, name)
	if err == nil {
		return domain.ErrAlreadyExists
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	if _, err := tx.ExecContext(ctx, `INSERT INTO teams (team_name, created_at) VALUES ($1, now())`, name); err != nil {
		return err
	}

	for _, id := range memberIDs {
		res, err := tx.ExecContext(ctx, `UPDATE users SET team_name = $1, updated_at = now() WHERE user_id = $2`, name, id)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return domain.ErrNotFound
		}
	}

	return tx.Commit()
}

func (s *Store) GetTeam(ctx context.Context, name string) (*domain.Team, []domain.User, error) {
	var team domain.Team
	err := s.db.GetContext(ctx, &team, `SELECT team_name, created_at FROM teams WHERE team_name = $1`, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, domain.ErrNotFound
		}
		return nil, nil, err
	}

	var members []domain.User
	err = s.db.SelectContext(ctx, &members, `
       SELECT user_id, username, is_active, COALESCE(team_name, '') AS team_name, created_at, updated_at
       FROM users WHERE team_name = $1
       ORDER BY user_id
`, name)
	if err != nil {
		return nil, nil, err
	}
	return &team, members, nil
}
