package domain

import "time"

// User is a participant of the review workflow. Only active users are
// eligible reviewer candidates. TeamName is empty while the user is
// unassigned.
type User struct {
	ID        string    `db:"user_id" json:"user_id"`
	Username  string    `db:"username" json:"username"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	TeamName  string    `db:"team_name" json:"team_name"`
	CreatedAt time.Time `db:"created_at" json:"-"`
	UpdatedAt time.Time `db:"updated_at" json:"-"`
}

func NewUser(id, username, teamName string, isActive bool) *User {
	now := time.Now()
	return &User{
		ID:        id,
		Username:  username,
		TeamName:  teamName,
		IsActive:  isActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
