package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoleSkill weights a skill's importance to a role. Weight is positive;
// re-declaring the same (role, skill) pair upserts the weight.
type RoleSkill struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RoleID    uuid.UUID `gorm:"type:uuid;not null;index:idx_role_skill,unique" json:"role_id"`
	Role      *Role     `gorm:"constraint:OnDelete:CASCADE;foreignKey:RoleID;references:ID" json:"role,omitempty"`
	SkillID   uuid.UUID `gorm:"type:uuid;not null;index:idx_role_skill,unique" json:"skill_id"`
	Skill     *Skill    `gorm:"constraint:OnDelete:CASCADE;foreignKey:SkillID;references:ID" json:"skill,omitempty"`
	Weight    float64   `gorm:"not null;column:weight" json:"weight"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (RoleSkill) TableName() string { return "role_skills" }

func (rs *RoleSkill) BeforeCreate(tx *gorm.DB) error {
	if rs.ID == uuid.Nil {
		rs.ID = uuid.New()
	}
	return nil
}
