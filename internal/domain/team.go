package domain

import "time"

// Team owns no user lifetimes: users reference it through their team_name
// and persist independently.
type Team struct {
	Name      string    `db:"team_name" json:"team_name"`
	CreatedAt time.Time `db:"created_at" json:"-"`
}
