package domain

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrBadRequest    = errors.New("bad request")

	ErrPRMerged              = errors.New("pull request is merged")
	ErrReviewerNotAssigned   = errors.New("reviewer is not assigned to this pull request")
	ErrReviewerWithoutTeam   = errors.New("reviewer does not belong to a team")
	ErrInsufficientReviewers = errors.New("not enough active reviewers in the author's team")
	ErrNoCandidates          = errors.New("no eligible replacement candidates in team")
)
