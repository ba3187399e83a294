package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roadmap is the ordered remediation plan derived from one report's
// gaps. Exactly one live roadmap exists per (user, role); generating a
// new one retires the previous one.
type Roadmap struct {
	ID                uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	UserID            uuid.UUID        `gorm:"type:uuid;not null;index:idx_roadmap_user_role" json:"user_id"`
	User              *User            `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	RoleID            uuid.UUID        `gorm:"type:uuid;not null;index:idx_roadmap_user_role" json:"role_id"`
	Role              *Role            `gorm:"constraint:OnDelete:CASCADE;foreignKey:RoleID;references:ID" json:"role,omitempty"`
	ReadinessReportID uuid.UUID        `gorm:"type:uuid;not null;index" json:"readiness_report_id"`
	ReadinessReport   *ReadinessReport `gorm:"constraint:OnDelete:CASCADE;foreignKey:ReadinessReportID;references:ID" json:"readiness_report,omitempty"`
	TotalSteps        int              `gorm:"not null;column:total_steps" json:"total_steps"`
	CreatedAt         time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt         time.Time        `gorm:"not null" json:"updated_at"`
}

func (Roadmap) TableName() string { return "roadmaps" }

func (r *Roadmap) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
