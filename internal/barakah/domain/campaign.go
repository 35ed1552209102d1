package domain

import "time"

type Campaign struct {
	ID          string
	Title       string
	Description string
	CategoryID  string
	GoalAmount  int64 // MYR cents
	Collected   int64 // MYR cents, maintained by completed donations
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
