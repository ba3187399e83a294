package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserSkill holds a user's strength for one skill in [0,100]. Last
// write wins per (user, skill).
type UserSkill struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index:idx_user_skill,unique" json:"user_id"`
	User          *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	SkillID       uuid.UUID `gorm:"type:uuid;not null;index:idx_user_skill,unique" json:"skill_id"`
	Skill         *Skill    `gorm:"constraint:OnDelete:CASCADE;foreignKey:SkillID;references:ID" json:"skill,omitempty"`
	StrengthScore float64   `gorm:"not null;column:strength_score" json:"strength_score"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null" json:"updated_at"`
}

func (UserSkill) TableName() string { return "user_skills" }

func (us *UserSkill) BeforeCreate(tx *gorm.DB) error {
	if us.ID == uuid.Nil {
		us.ID = uuid.New()
	}
	return nil
}
