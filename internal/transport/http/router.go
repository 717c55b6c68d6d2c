package http

import (
	"github.com/gin-gonic/gin"
	"github.com/reviewflow/review-service/internal/service"
)

func NewRouter(users *service.UserService, teams *service.TeamService, prs *service.PRService) *gin.Engine {
	h := &Handler{users: users, teams: teams, prs: prs}
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	// Users
	r.POST("/users/add", h.HandleUserAdd)
	r.POST("/users/setIsActive", h.HandleSetIsActive)
	r.GET("/users/getReview", h.HandleGetReview)

	// Teams
	r.POST("/team/add", h.HandleTeamAdd)
	r.GET("/team/get", h.HandleTeamGet)

	// PRs
	r.POST("/pullRequest/create", h.HandleCreatePR)
	r.POST("/pullRequest/merge", h.HandleMergePR)
	r.POST("/pullRequest/reassign", h.HandleReassign)

	// Stats
	r.GET("/stats/assignments", h.HandleAssignmentStats)

	return r
}
