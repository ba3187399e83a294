package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project is a portfolio entry, usually synced from an external repo
// host. (user, title) is the upsert key so re-syncing the same repo
// updates instead of duplicating.
type Project struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index:idx_user_project_title,unique" json:"user_id"`
	User            *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	Title           string    `gorm:"not null;index:idx_user_project_title,unique;column:title" json:"title"`
	Description     string    `gorm:"column:description" json:"description"`
	Source          string    `gorm:"not null;default:'github';column:source" json:"source"`
	ComplexityScore float64   `gorm:"not null;column:complexity_score" json:"complexity_score"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null" json:"updated_at"`
}

func (Project) TableName() string { return "projects" }

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
