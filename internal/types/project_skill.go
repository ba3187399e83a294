package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectSkill struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index:idx_project_skill,unique" json:"project_id"`
	Project   *Project  `gorm:"constraint:OnDelete:CASCADE;foreignKey:ProjectID;references:ID" json:"project,omitempty"`
	SkillID   uuid.UUID `gorm:"type:uuid;not null;index:idx_project_skill,unique" json:"skill_id"`
	Skill     *Skill    `gorm:"constraint:OnDelete:CASCADE;foreignKey:SkillID;references:ID" json:"skill,omitempty"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (ProjectSkill) TableName() string { return "project_skills" }

func (ps *ProjectSkill) BeforeCreate(tx *gorm.DB) error {
	if ps.ID == uuid.Nil {
		ps.ID = uuid.New()
	}
	return nil
}
