package domain

import "time"

type Milestone struct {
	ID          string
	ProjectID   string
	Title       string
	Description string
	DueDate     *time.Time
	Completed   bool
	CreatedByID string
}
