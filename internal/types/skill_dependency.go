package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SkillDependency is a directed "depends-on" edge. Self-loops and
// cycles are rejected at insertion time by the skill service.
type SkillDependency struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SkillID          uuid.UUID `gorm:"type:uuid;not null;index:idx_skill_dependency_edge,unique" json:"skill_id"`
	Skill            *Skill    `gorm:"constraint:OnDelete:CASCADE;foreignKey:SkillID;references:ID" json:"skill,omitempty"`
	DependsOnSkillID uuid.UUID `gorm:"type:uuid;not null;index:idx_skill_dependency_edge,unique" json:"depends_on_skill_id"`
	DependsOnSkill   *Skill    `gorm:"constraint:OnDelete:CASCADE;foreignKey:DependsOnSkillID;references:ID" json:"depends_on_skill,omitempty"`
	CreatedAt        time.Time `gorm:"not null" json:"created_at"`
}

func (SkillDependency) TableName() string { return "skill_dependencies" }

func (sd *SkillDependency) BeforeCreate(tx *gorm.DB) error {
	if sd.ID == uuid.Nil {
		sd.ID = uuid.New()
	}
	return nil
}
