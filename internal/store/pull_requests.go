package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/reviewflow/review-service/internal/domain"
)

// CreatePR persists the pull request together with its reviewer assignments
// atomically. Reviewer order is kept through the position column.
func (s *Store) CreatePR(ctx context.Context, pr *domain.PullRequest, reviewers []string) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer rollback(tx, "CreatePR")

	var exists string
	err = tx.GetContext(ctx, &exists, `SELECT pull_request_id FROM pull_requests WHERE pull_request_id = $1`, pr.ID)
	if err == nil {
		return domain.ErrAlreadyExists
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	_, err = tx.ExecContext(ctx, `
       INSERT INTO pull_requests (pull_request_id, pull_request_name, author_id, status, created_at)
       VALUES ($1, $2, $3, $4, now())
`, pr.ID, pr.Name, pr.AuthorID, pr.Status)
	if err != nil {
		return err
	}

	for i, uid := range reviewers {
		_, err = tx.ExecContext(ctx, `
           INSERT INTO pr_reviewers (pull_request_id, reviewer_id, position, assigned_at)
           VALUES ($1, $2, $3, now())
`, pr.ID, uid, i+1)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *Store) GetPR(ctx context.Context, id string) (*domain.PullRequest, error) {
	var pr domain.PullRequest
	err := s.db.GetContext(ctx, &pr, `
       SELECT pull_request_id, pull_request_name, author_id, status, created_at, merged_at
       FROM pull_requests WHERE pull_request_id = $1
`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	pr.AssignedReviewers = make([]string, 0, domain.ReviewersPerPR)
	err = s.db.SelectContext(ctx, &pr.AssignedReviewers, `
       SELECT reviewer_id FROM pr_reviewers WHERE pull_request_id = $1 ORDER BY position
`, id)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	return &pr, nil
}

// ReplaceReviewer swaps oldID for newID in place, keeping the position slot
// of the replaced entry.
func (s *Store) ReplaceReviewer(ctx context.Context, prID, oldID, newID string) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer rollback(tx, "ReplaceReviewer")

	var position int
	err = tx.GetContext(ctx, &position, `
       SELECT position FROM pr_reviewers WHERE pull_request_id = $1 AND reviewer_id = $2
`, prID, oldID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrReviewerNotAssigned
		}
		return err
	}

	_, err = tx.ExecContext(ctx, `
       UPDATE pr_reviewers SET reviewer_id = $1, assigned_at = now()
       WHERE pull_request_id = $2 AND position = $3
`, newID, prID, position)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// MarkMerged transitions the pull request to MERGED. Re-merging keeps the
// original merged_at timestamp.
func (s *Store) MarkMerged(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `
       UPDATE pull_requests
       SET status = $1, merged_at = COALESCE(merged_at, now())
       WHERE pull_request_id = $2
`, domain.StatusMerged, id)
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
	return nil
}

// ListByReviewer returns summaries of every pull request the user is
// assigned to, regardless of status, in stable pull_request_id order.
func (s *Store) ListByReviewer(ctx context.Context, userID string) ([]domain.PullRequestSummary, error) {
	prs := make([]domain.PullRequestSummary, 0)
	err := s.db.SelectContext(ctx, &prs, `
       SELECT p.pull_request_id, p.pull_request_name, p.author_id, p.status
       FROM pull_requests p
       JOIN pr_reviewers r ON p.pull_request_id = r.pull_request_id
       WHERE r.reviewer_id = $1
       ORDER BY p.pull_request_id
`, userID)
	if err != nil {
		return nil, err
	}
	return prs, nil
}

// ReviewerAssignmentCounts aggregates current assignments per reviewer.
func (s *Store) ReviewerAssignmentCounts(ctx context.Context) ([]domain.ReviewerLoad, error) {
	items := make([]domain.ReviewerLoad, 0)
	err := s.db.SelectContext(ctx, &items, `
       SELECT reviewer_id AS user_id, COUNT(*) AS count
       FROM pr_reviewers
       GROUP BY reviewer_id
       ORDER BY count DESC, user_id
`)
	if err != nil {
		return nil, err
	}
	return items, nil
}
