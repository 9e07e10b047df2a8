package usecase

import (
	"context"
	"strings"
	"time"

	"researchtracker/internal/domain"

	"github.com/google/uuid"
)

type DocumentService struct {
	Documents DocumentRepository
	Projects  ProjectRepository
	Clock     func() time.Time
}

func NewDocumentService(documents DocumentRepository, projects ProjectRepository) *DocumentService {
	return &DocumentService{Documents: documents, Projects: projects, Clock: time.Now}
}

type DocumentInput struct {
	Title       string
	Description string
	URLOrPath   string
}

func (s *DocumentService) ListByProject(ctx context.Context, projectID string) ([]domain.Document, error) {
	if _, err := s.Projects.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	return s.Documents.ListByProject(ctx, projectID)
}

func (s *DocumentService) Add(ctx context.Context, projectID string, input DocumentInput, actor domain.Principal) (*domain.Document, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domain.ErrInvalidArgument
	}
	if _, err := s.Projects.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	now := time.Now()
	if s.Clock != nil {
		now = s.Clock()
	}
	document := domain.Document{
		ID:           uuid.NewString(),
		ProjectID:    projectID,
		Title:        title,
		Description:  input.Description,
		URLOrPath:    input.URLOrPath,
		UploadedByID: actor.Subject,
		UploadedAt:   now,
	}
	if err := s.Documents.Create(ctx, document); err != nil {
		return nil, err
	}
	return &document, nil
}

func (s *DocumentService) Delete(ctx context.Context, id string) error {
	return s.Documents.Delete(ctx, id)
}
