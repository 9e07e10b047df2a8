package db

import "time"

type UserModel struct {
	ID           string    `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"uniqueIndex;not null"`
	FullName     string    `gorm:"not null"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (UserModel) TableName() string { return "users" }

type ProjectModel struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	Title     string `gorm:"not null"`
	Summary   string
	Status    string `gorm:"not null"`
	PIID      string `gorm:"column:pi_id;type:uuid;index;not null"`
	Tags      string
	StartDate *time.Time
	EndDate   *time.Time
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (ProjectModel) TableName() string { return "projects" }

type MilestoneModel struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	ProjectID   string `gorm:"type:uuid;index;not null"`
	Title       string `gorm:"not null"`
	Description string
	DueDate     *time.Time
	Completed   bool   `gorm:"not null"`
	CreatedByID string `gorm:"type:uuid"`
}

func (MilestoneModel) TableName() string { return "milestones" }

type DocumentModel struct {
	ID           string `gorm:"type:uuid;primaryKey"`
	ProjectID    string `gorm:"type:uuid;index;not null"`
	Title        string `gorm:"not null"`
	Description  string
	URLOrPath    string
	UploadedByID string    `gorm:"type:uuid"`
	UploadedAt   time.Time `gorm:"not null"`
}

func (DocumentModel) TableName() string { return "documents" }
