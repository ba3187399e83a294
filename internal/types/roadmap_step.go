package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const StepStatusPending = "pending"

// RoadmapStep is one remediation step. OrderIndex is a dense 1..N
// sequence consistent with the topological order of the gapped skills.
type RoadmapStep struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RoadmapID  uuid.UUID `gorm:"type:uuid;not null;index" json:"roadmap_id"`
	Roadmap    *Roadmap  `gorm:"constraint:OnDelete:CASCADE;foreignKey:RoadmapID;references:ID" json:"roadmap,omitempty"`
	SkillID    uuid.UUID `gorm:"type:uuid;not null;index" json:"skill_id"`
	Skill      *Skill    `gorm:"constraint:OnDelete:CASCADE;foreignKey:SkillID;references:ID" json:"skill,omitempty"`
	OrderIndex int       `gorm:"not null;column:order_index" json:"order_index"`
	Status     string    `gorm:"not null;default:'pending';column:status" json:"status"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}

func (RoadmapStep) TableName() string { return "roadmap_steps" }

func (rs *RoadmapStep) BeforeCreate(tx *gorm.DB) error {
	if rs.ID == uuid.Nil {
		rs.ID = uuid.New()
	}
	return nil
}
