package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reviewflow/review-service/internal/domain"
	"github.com/reviewflow/review-service/internal/service"
)

type Handler struct {
	users *service.UserService
	teams *service.TeamService
	prs   *service.PRService
}

func writeError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// writeDomainError maps the shared part of the error taxonomy; handlers map
// their operation-specific errors before falling through to it.
func writeDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrBadRequest):
		writeError(c, http.StatusBadRequest, "BAD_REQUEST", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(c, http.StatusNotFound, "NOT_FOUND", "resource not found")
	default:
		slog.Error("request failed", "path", c.FullPath(), "error", err)
		writeError(c, http.StatusInternalServerError, "INTERNAL", "internal server error")
	}
}

func (h *Handler) HandleUserAdd(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	u, err := h.users.Create(c.Request.Context(), req.UserID, req.Username, req.TeamName, req.IsActive)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyExists):
			writeError(c, http.StatusBadRequest, "USER_EXISTS", "user_id already exists")
		case errors.Is(err, domain.ErrNotFound):
			writeError(c, http.StatusNotFound, "NOT_FOUND", "team not found")
		default:
			writeDomainError(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": u})
}

func (h *Handler) HandleSetIsActive(c *gin.Context) {
	var req SetIsActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	u, err := h.users.SetActive(c.Request.Context(), req.UserID, req.IsActive)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(c, http.StatusNotFound, "NOT_FOUND", "user not found")
			return
		}
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": u})
}

func (h *Handler) HandleTeamAdd(c *gin.Context) {
	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	team, members, err := h.teams.Create(c.Request.Context(), req.TeamName, req.Members)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyExists):
			writeError(c, http.StatusBadRequest, "TEAM_EXISTS", "team_name already exists")
		case errors.Is(err, domain.ErrNotFound):
			writeError(c, http.StatusNotFound, "NOT_FOUND", "member user not found")
		default:
			writeDomainError(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"team": TeamResponse{
		TeamName: team.Name,
		Members:  members,
	}})
}

func (h *Handler) HandleTeamGet(c *gin.Context) {
	name := c.Query("team_name")
	if name == "" {
		writeError(c, http.StatusBadRequest, "BAD_REQUEST", "team_name required")
		return
	}

	team, members, err := h.teams.Get(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(c, http.StatusNotFound, "NOT_FOUND", "team not found")
			return
		}
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, TeamResponse{
		TeamName: team.Name,
		Members:  members,
	})
}

func (h *Handler) HandleCreatePR(c *gin.Context) {
	var req CreatePRRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	pr, err := h.prs.Create(c.Request.Context(), req.PullRequestID, req.PullRequestName, req.AuthorID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeError(c, http.StatusNotFound, "NOT_FOUND", "author not found")
		case errors.Is(err, domain.ErrAlreadyExists):
			writeError(c, http.StatusConflict, "PR_EXISTS", "PR id already exists")
		case errors.Is(err, domain.ErrInsufficientReviewers):
			writeError(c, http.StatusConflict, "INSUFFICIENT_REVIEWERS", "not enough active reviewers in the author's team")
		default:
			writeDomainError(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"pr": pr})
}

func (h *Handler) HandleMergePR(c *gin.Context) {
	var req MergePRRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	pr, err := h.prs.Merge(c.Request.Context(), req.PullRequestID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(c, http.StatusNotFound, "NOT_FOUND", "pr not found")
			return
		}
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"pr": pr})
}

func (h *Handler) HandleReassign(c *gin.Context) {
	var req ReassignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	pr, newReviewer, err := h.prs.Reassign(c.Request.Context(), req.PullRequestID, req.OldReviewerID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPRMerged):
			writeError(c, http.StatusConflict, "PR_MERGED", "cannot reassign on merged PR")
		case errors.Is(err, domain.ErrReviewerNotAssigned):
			writeError(c, http.StatusConflict, "NOT_ASSIGNED", "reviewer is not assigned to this PR")
		case errors.Is(err, domain.ErrReviewerWithoutTeam):
			writeError(c, http.StatusConflict, "NO_TEAM", "reviewer does not belong to a team")
		case errors.Is(err, domain.ErrNoCandidates):
			writeError(c, http.StatusConflict, "NO_CANDIDATE", "no active replacement candidate in team")
		case errors.Is(err, domain.ErrNotFound):
			writeError(c, http.StatusNotFound, "NOT_FOUND", "pr or user not found")
		default:
			writeDomainError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"pr":          pr,
		"replaced_by": newReviewer,
	})
}

func (h *Handler) HandleGetReview(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		writeError(c, http.StatusBadRequest, "BAD_REQUEST", "user_id required")
		return
	}

	prs, err := h.prs.ListByReviewer(c.Request.Context(), userID)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":       userID,
		"pull_requests": prs,
	})
}

func (h *Handler) HandleAssignmentStats(c *gin.Context) {
	items, err := h.prs.AssignmentCounts(c.Request.Context())
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}
