package domain

import "time"

// Role names are the labels the session gate checks against.
const (
	RoleAdmin = "admin"
	RoleDonor = "donor"
)

type Role struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
