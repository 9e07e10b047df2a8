package db

import (
	"context"
	"errors"

	"researchtracker/internal/domain"

	"gorm.io/gorm"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, project domain.Project) error {
	if r.db == nil {
		return errDBUnavailable
	}
	model := projectToModel(project)
	return r.db.WithContext(ctx).Create(&model).Error
}

func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var model ProjectModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	project := projectFromModel(model)
	return &project, nil
}

func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var models []ProjectModel
	if err := r.db.WithContext(ctx).Order("created_at").Find(&models).Error; err != nil {
		return nil, err
	}
	projects := make([]domain.Project, 0, len(models))
	for _, model := range models {
		projects = append(projects, projectFromModel(model))
	}
	return projects, nil
}

func (r *ProjectRepository) Update(ctx context.Context, project domain.Project) error {
	if r.db == nil {
		return errDBUnavailable
	}
	model := projectToModel(project)
	result := r.db.WithContext(ctx).Model(&ProjectModel{}).Where("id = ?", project.ID).Updates(map[string]any{
		"title":      model.Title,
		"summary":    model.Summary,
		"status":     model.Status,
		"pi_id":      model.PIID,
		"tags":       model.Tags,
		"start_date": model.StartDate,
		"end_date":   model.EndDate,
		"updated_at": model.UpdatedAt,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	if r.db == nil {
		return errDBUnavailable
	}
	result := r.db.WithContext(ctx).Delete(&ProjectModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProjectRepository) Count(ctx context.Context) (int64, error) {
	if r.db == nil {
		return 0, errDBUnavailable
	}
	var count int64
	if err := r.db.WithContext(ctx).Model(&ProjectModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func projectToModel(project domain.Project) ProjectModel {
	return ProjectModel{
		ID:        project.ID,
		Title:     project.Title,
		Summary:   project.Summary,
		Status:    string(project.Status),
		PIID:      project.PIID,
		Tags:      project.Tags,
		StartDate: project.StartDate,
		EndDate:   project.EndDate,
		CreatedAt: project.CreatedAt,
		UpdatedAt: project.UpdatedAt,
	}
}

func projectFromModel(model ProjectModel) domain.Project {
	return domain.Project{
		ID:        model.ID,
		Title:     model.Title,
		Summary:   model.Summary,
		Status:    domain.ProjectStatus(model.Status),
		PIID:      model.PIID,
		Tags:      model.Tags,
		StartDate: model.StartDate,
		EndDate:   model.EndDate,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
