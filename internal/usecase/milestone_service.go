package usecase

import (
	"context"
	"strings"
	"time"

	"researchtracker/internal/domain"

	"github.com/google/uuid"
)

type MilestoneService struct {
	Milestones MilestoneRepository
	Projects   ProjectRepository
}

func NewMilestoneService(milestones MilestoneRepository, projects ProjectRepository) *MilestoneService {
	return &MilestoneService{Milestones: milestones, Projects: projects}
}

type MilestoneInput struct {
	Title       string
	Description string
	DueDate     *time.Time
	Completed   bool
}

func (s *MilestoneService) ListByProject(ctx context.Context, projectID string) ([]domain.Milestone, error) {
	if _, err := s.Projects.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	return s.Milestones.ListByProject(ctx, projectID)
}

func (s *MilestoneService) Add(ctx context.Context, projectID string, input MilestoneInput, actor domain.Principal) (*domain.Milestone, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domain.ErrInvalidArgument
	}
	if _, err := s.Projects.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	milestone := domain.Milestone{
		ID:          uuid.NewString(),
		ProjectID:   projectID,
		Title:       title,
		Description: input.Description,
		DueDate:     input.DueDate,
		Completed:   input.Completed,
		CreatedByID: actor.Subject,
	}
	if err := s.Milestones.Create(ctx, milestone); err != nil {
		return nil, err
	}
	return &milestone, nil
}

func (s *MilestoneService) Update(ctx context.Context, id string, input MilestoneInput) (*domain.Milestone, error) {
	milestone, err := s.Milestones.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domain.ErrInvalidArgument
	}
	milestone.Title = title
	milestone.Description = input.Description
	milestone.DueDate = input.DueDate
	milestone.Completed = input.Completed
	if err := s.Milestones.Update(ctx, *milestone); err != nil {
		return nil, err
	}
	return milestone, nil
}

func (s *MilestoneService) Delete(ctx context.Context, id string) error {
	return s.Milestones.Delete(ctx, id)
}
