package domain

import (
	"fmt"
	"time"
)

type ProjectStatus string

const (
	StatusPlanning  ProjectStatus = "PLANNING"
	StatusActive    ProjectStatus = "ACTIVE"
	StatusOnHold    ProjectStatus = "ON_HOLD"
	StatusCompleted ProjectStatus = "COMPLETED"
	StatusCancelled ProjectStatus = "CANCELLED"
)

func ParseProjectStatus(value string) (ProjectStatus, error) {
	switch ProjectStatus(value) {
	case StatusPlanning, StatusActive, StatusOnHold, StatusCompleted, StatusCancelled:
		return ProjectStatus(value), nil
	}
	return "", fmt.Errorf("unknown project status %q: %w", value, ErrInvalidArgument)
}

type Project struct {
	ID        string
	Title     string
	Summary   string
	Status    ProjectStatus
	PIID      string
	Tags      string
	StartDate *time.Time
	EndDate   *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
