package db

import (
	"context"
	"errors"

	"researchtracker/internal/domain"

	"gorm.io/gorm"
)

type MilestoneRepository struct {
	db *gorm.DB
}

func NewMilestoneRepository(db *gorm.DB) *MilestoneRepository {
	return &MilestoneRepository{db: db}
}

func (r *MilestoneRepository) Create(ctx context.Context, milestone domain.Milestone) error {
	if r.db == nil {
		return errDBUnavailable
	}
	model := milestoneToModel(milestone)
	return r.db.WithContext(ctx).Create(&model).Error
}

func (r *MilestoneRepository) GetByID(ctx context.Context, id string) (*domain.Milestone, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var model MilestoneModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	milestone := milestoneFromModel(model)
	return &milestone, nil
}

func (r *MilestoneRepository) ListByProject(ctx context.Context, projectID string) ([]domain.Milestone, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var models []MilestoneModel
	if err := r.db.WithContext(ctx).Where("project_id = ?", projectID).Order("due_date").Find(&models).Error; err != nil {
		return nil, err
	}
	milestones := make([]domain.Milestone, 0, len(models))
	for _, model := range models {
		milestones = append(milestones, milestoneFromModel(model))
	}
	return milestones, nil
}

func (r *MilestoneRepository) Update(ctx context.Context, milestone domain.Milestone) error {
	if r.db == nil {
		return errDBUnavailable
	}
	model := milestoneToModel(milestone)
	result := r.db.WithContext(ctx).Model(&MilestoneModel{}).Where("id = ?", milestone.ID).Updates(map[string]any{
		"title":       model.Title,
		"description": model.Description,
		"due_date":    model.DueDate,
		"completed":   model.Completed,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *MilestoneRepository) Delete(ctx context.Context, id string) error {
	if r.db == nil {
		return errDBUnavailable
	}
	result := r.db.WithContext(ctx).Delete(&MilestoneModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *MilestoneRepository) Count(ctx context.Context) (int64, error) {
	if r.db == nil {
		return 0, errDBUnavailable
	}
	var count int64
	if err := r.db.WithContext(ctx).Model(&MilestoneModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func milestoneToModel(milestone domain.Milestone) MilestoneModel {
	return MilestoneModel{
		ID:          milestone.ID,
		ProjectID:   milestone.ProjectID,
		Title:       milestone.Title,
		Description: milestone.Description,
		DueDate:     milestone.DueDate,
		Completed:   milestone.Completed,
		CreatedByID: milestone.CreatedByID,
	}
}

func milestoneFromModel(model MilestoneModel) domain.Milestone {
	return domain.Milestone{
		ID:          model.ID,
		ProjectID:   model.ProjectID,
		Title:       model.Title,
		Description: model.Description,
		DueDate:     model.DueDate,
		Completed:   model.Completed,
		CreatedByID: model.CreatedByID,
	}
}
