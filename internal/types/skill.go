package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Skill is the natural-key node of the dependency graph. Name is
// immutable after creation and used for upserts elsewhere.
type Skill struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name              string    `gorm:"uniqueIndex;not null;column:name" json:"name"`
	HasNoDependencies bool      `gorm:"not null;column:has_no_dependencies" json:"has_no_dependencies"`
	CreatedAt         time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt         time.Time `gorm:"not null" json:"updated_at"`
}

func (Skill) TableName() string { return "skills" }

func (s *Skill) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
