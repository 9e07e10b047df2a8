package usecase

import (
	"context"
	"strings"
	"time"

	"researchtracker/internal/domain"

	"github.com/google/uuid"
)

type ProjectService struct {
	Projects ProjectRepository
	Clock    func() time.Time
}

func NewProjectService(projects ProjectRepository) *ProjectService {
	return &ProjectService{Projects: projects, Clock: time.Now}
}

type ProjectInput struct {
	Title     string
	Summary   string
	Status    string
	Tags      string
	StartDate *time.Time
	EndDate   *time.Time
}

func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.Projects.List(ctx)
}

func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	return s.Projects.GetByID(ctx, id)
}

// Create records the acting principal as the project's PI and defaults the
// status to PLANNING when none is given.
func (s *ProjectService) Create(ctx context.Context, input ProjectInput, actor domain.Principal) (*domain.Project, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domain.ErrInvalidArgument
	}
	status := domain.StatusPlanning
	if input.Status != "" {
		parsed, err := domain.ParseProjectStatus(input.Status)
		if err != nil {
			return nil, err
		}
		status = parsed
	}
	now := s.now()
	project := domain.Project{
		ID:        uuid.NewString(),
		Title:     title,
		Summary:   input.Summary,
		Status:    status,
		PIID:      actor.Subject,
		Tags:      input.Tags,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Projects.Create(ctx, project); err != nil {
		return nil, err
	}
	return &project, nil
}

// Update replaces the mutable fields; status and PI keep their current values
// when the input omits them.
func (s *ProjectService) Update(ctx context.Context, id string, input ProjectInput) (*domain.Project, error) {
	project, err := s.Projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domain.ErrInvalidArgument
	}
	project.Title = title
	project.Summary = input.Summary
	project.Tags = input.Tags
	project.StartDate = input.StartDate
	project.EndDate = input.EndDate
	if input.Status != "" {
		status, err := domain.ParseProjectStatus(input.Status)
		if err != nil {
			return nil, err
		}
		project.Status = status
	}
	project.UpdatedAt = s.now()
	if err := s.Projects.Update(ctx, *project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) UpdateStatus(ctx context.Context, id string, status string) (*domain.Project, error) {
	parsed, err := domain.ParseProjectStatus(status)
	if err != nil {
		return nil, err
	}
	project, err := s.Projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	project.Status = parsed
	project.UpdatedAt = s.now()
	if err := s.Projects.Update(ctx, *project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) Delete(ctx context.Context, id string) error {
	return s.Projects.Delete(ctx, id)
}

func (s *ProjectService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}
