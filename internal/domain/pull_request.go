package domain

import "time"

const (
	StatusOpen   = "OPEN"
	StatusMerged = "MERGED"
)

// ReviewersPerPR is the number of reviewers assigned when a pull request is
// created.
const ReviewersPerPR = 2

type PullRequest struct {
	ID                string     `db:"pull_request_id" json:"pull_request_id"`
	Name              string     `db:"pull_request_name" json:"pull_request_name"`
	AuthorID          string     `db:"author_id" json:"author_id"`
	Status            string     `db:"status" json:"status"`
	AssignedReviewers []string   `json:"assigned_reviewers"`
	CreatedAt         time.Time  `db:"created_at" json:"createdAt"`
	MergedAt          *time.Time `db:"merged_at" json:"mergedAt,omitempty"`
}

func NewPullRequest(id, name, authorID string) *PullRequest {
	return &PullRequest{
		ID:                id,
		Name:              name,
		AuthorID:          authorID,
		Status:            StatusOpen,
		AssignedReviewers: make([]string, 0, ReviewersPerPR),
	}
}

// IsMerged reports whether the pull request has reached its terminal state.
func (pr *PullRequest) IsMerged() bool {
	return pr.Status == StatusMerged
}

// HasReviewer reports whether userID is currently assigned to the pull
// request.
func (pr *PullRequest) HasReviewer(userID string) bool {
	for _, r := range pr.AssignedReviewers {
		if r == userID {
			return true
		}
	}
	return false
}

// PullRequestSummary is the projection returned by reviewer-scoped listings.
// The reviewer list itself is not part of the summary shape.
type PullRequestSummary struct {
	ID       string `db:"pull_request_id" json:"pull_request_id"`
	Name     string `db:"pull_request_name" json:"pull_request_name"`
	AuthorID string `db:"author_id" json:"author_id"`
	Status   string `db:"status" json:"status"`
}

// ReviewerLoad counts the pull requests a user is currently assigned to.
type ReviewerLoad struct {
	UserID string `db:"user_id" json:"user_id"`
	Count  int64  `db:"count" json:"count"`
}
