package db

import (
	"context"
	"errors"

	"researchtracker/internal/domain"

	"gorm.io/gorm"
)

type DocumentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

func (r *DocumentRepository) Create(ctx context.Context, document domain.Document) error {
	if r.db == nil {
		return errDBUnavailable
	}
	model := documentToModel(document)
	return r.db.WithContext(ctx).Create(&model).Error
}

func (r *DocumentRepository) GetByID(ctx context.Context, id string) (*domain.Document, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var model DocumentModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	document := documentFromModel(model)
	return &document, nil
}

func (r *DocumentRepository) ListByProject(ctx context.Context, projectID string) ([]domain.Document, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var models []DocumentModel
	if err := r.db.WithContext(ctx).Where("project_id = ?", projectID).Order("uploaded_at").Find(&models).Error; err != nil {
		return nil, err
	}
	documents := make([]domain.Document, 0, len(models))
	for _, model := range models {
		documents = append(documents, documentFromModel(model))
	}
	return documents, nil
}

func (r *DocumentRepository) Delete(ctx context.Context, id string) error {
	if r.db == nil {
		return errDBUnavailable
	}
	result := r.db.WithContext(ctx).Delete(&DocumentModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func documentToModel(document domain.Document) DocumentModel {
	return DocumentModel{
		ID:           document.ID,
		ProjectID:    document.ProjectID,
		Title:        document.Title,
		Description:  document.Description,
		URLOrPath:    document.URLOrPath,
		UploadedByID: document.UploadedByID,
		UploadedAt:   document.UploadedAt,
	}
}

func documentFromModel(model DocumentModel) domain.Document {
	return domain.Document{
		ID:           model.ID,
		ProjectID:    model.ProjectID,
		Title:        model.Title,
		Description:  model.Description,
		URLOrPath:    model.URLOrPath,
		UploadedByID: model.UploadedByID,
		UploadedAt:   model.UploadedAt,
	}
}
