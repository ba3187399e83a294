package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Gap classification of a required skill relative to a user's strength.
const (
	GapMissing = "missing"
	GapWeak    = "weak"
	GapStrong  = "strong"
)

// SkillGapResult is written once per report generation, never mutated.
type SkillGapResult struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	ReportID      uuid.UUID        `gorm:"type:uuid;not null;index" json:"report_id"`
	Report        *ReadinessReport `gorm:"constraint:OnDelete:CASCADE;foreignKey:ReportID;references:ID" json:"report,omitempty"`
	SkillID       uuid.UUID        `gorm:"type:uuid;not null;index" json:"skill_id"`
	Skill         *Skill           `gorm:"constraint:OnDelete:CASCADE;foreignKey:SkillID;references:ID" json:"skill,omitempty"`
	GapType       string           `gorm:"not null;column:gap_type" json:"gap_type"`
	StrengthScore float64          `gorm:"not null;column:strength_score" json:"strength_score"`
	CreatedAt     time.Time        `gorm:"not null" json:"created_at"`
}

func (SkillGapResult) TableName() string { return "skill_gap_results" }

func (sg *SkillGapResult) BeforeCreate(tx *gorm.DB) error {
	if sg.ID == uuid.Nil {
		sg.ID = uuid.New()
	}
	return nil
}
