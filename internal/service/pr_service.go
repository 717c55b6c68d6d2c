package service

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"

	"github.com/reviewflow/review-service/internal/domain"
)

// PRStore is the persistence surface the pull-request service needs.
type PRStore interface {
	CreatePR(ctx context.Context, pr *domain.PullRequest, reviewers []string) error
	GetPR(ctx context.Context, id string) (*domain.PullRequest, error)
	MarkMerged(ctx context.Context, id string) error
	ReplaceReviewer(ctx context.Context, prID, oldID, newID string) error
	ListByReviewer(ctx context.Context, userID string) ([]domain.PullRequestSummary, error)
	ReviewerAssignmentCounts(ctx context.Context) ([]domain.ReviewerLoad, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	ListActiveTeammates(ctx context.Context, teamName, excludeID string) ([]string, error)
}

// PRService implements reviewer assignment and the pull-request lifecycle.
// The random source is injected so tests can pin the replacement pick.
type PRService struct {
	store PRStore

	mu  sync.Mutex
	rng *rand.Rand
}

func NewPRService(store PRStore, rng *rand.Rand) *PRService {
	return &PRService{store: store, rng: rng}
}

func (s *PRService) pick(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

// Create opens a pull request and assigns exactly two reviewers from the
// author's team. Candidates are active teammates other than the author,
// taken in user_id order so the choice is deterministic.
func (s *PRService) Create(ctx context.Context, id, name, authorID string) (*domain.PullRequest, error) {
	author, err := s.store.GetUser(ctx, authorID)
	if err != nil {
		return nil, err
	}

	if author.TeamName == "" {
		return nil, domain.ErrInsufficientReviewers
	}
	candidates, err := s.store.ListActiveTeammates(ctx, author.TeamName, author.ID)
	if err != nil {
		return nil, err
	}
	if len(candidates) < domain.ReviewersPerPR {
		return nil, domain.ErrInsufficientReviewers
	}
	reviewers := candidates[:domain.ReviewersPerPR]

	pr := domain.NewPullRequest(id, name, authorID)
	if err := s.store.CreatePR(ctx, pr, reviewers); err != nil {
		return nil, err
	}

	slog.Info("pull request created",
		"pr_id", id,
		"author_id", authorID,
		"reviewers", reviewers)

	return s.store.GetPR(ctx, id)
}

// Merge transitions the pull request to MERGED. Merging an already merged
// pull request is a no-op, not an error.
func (s *PRService) Merge(ctx context.Context, id string) (*domain.PullRequest, error) {
	pr, err := s.store.GetPR(ctx, id)
	if err != nil {
		return nil, err
	}
	if pr.IsMerged() {
		return pr, nil
	}

	if err := s.store.MarkMerged(ctx, id); err != nil {
		return nil, err
	}

	slog.Info("pull request merged", "pr_id", id)

	return s.store.GetPR(ctx, id)
}

// Reassign replaces oldReviewerID on the pull request with a random active
// member of the old reviewer's team. The replacement keeps the slot of the
// replaced entry; the other reviewer is untouched.
func (s *PRService) Reassign(ctx context.Context, prID, oldReviewerID string) (*domain.PullRequest, string, error) {
	pr, err := s.store.GetPR(ctx, prID)
	if err != nil {
		return nil, "", err
	}
	if pr.IsMerged() {
		return nil, "", domain.ErrPRMerged
	}
	if !pr.HasReviewer(oldReviewerID) {
		return nil, "", domain.ErrReviewerNotAssigned
	}

	oldReviewer, err := s.store.GetUser(ctx, oldReviewerID)
	if err != nil {
		return nil, "", err
	}
	if oldReviewer.TeamName == "" {
		return nil, "", domain.ErrReviewerWithoutTeam
	}

	candidates, err := s.store.ListActiveTeammates(ctx, oldReviewer.TeamName, oldReviewerID)
	if err != nil {
		return nil, "", err
	}
	pool := s.replacementPool(pr, candidates)
	if len(pool) == 0 {
		return nil, "", domain.ErrNoCandidates
	}

	newReviewer := pool[s.pick(len(pool))]
	if err := s.store.ReplaceReviewer(ctx, prID, oldReviewerID, newReviewer); err != nil {
		return nil, "", err
	}

	slog.Info("reviewer reassigned",
		"pr_id", prID,
		"old_reviewer", oldReviewerID,
		"new_reviewer", newReviewer)

	updated, err := s.store.GetPR(ctx, prID)
	if err != nil {
		return nil, "", err
	}
	return updated, newReviewer, nil
}

// replacementPool drops the author and the currently assigned reviewers from
// the candidate list, so a reassignment can never duplicate a reviewer or
// hand the review to the author.
func (s *PRService) replacementPool(pr *domain.PullRequest, candidates []string) []string {
	pool := make([]string, 0, len(candidates))
	for _, id := range candidates {
		if id == pr.AuthorID || pr.HasReviewer(id) {
			continue
		}
		pool = append(pool, id)
	}
	return pool
}

// ListByReviewer answers which pull requests involve userID as a reviewer,
// independent of status.
func (s *PRService) ListByReviewer(ctx context.Context, userID string) ([]domain.PullRequestSummary, error) {
	return s.store.ListByReviewer(ctx, userID)
}

// AssignmentCounts reports the current review load per user.
func (s *PRService) AssignmentCounts(ctx context.Context) ([]domain.ReviewerLoad, error) {
	return s.store.ReviewerAssignmentCounts(ctx)
}
