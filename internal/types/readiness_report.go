package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReadinessReport is an immutable score snapshot for a (user, role)
// pair. Gap results and the roadmap of the same generation hang off it
// and are cascade-deleted with it.
type ReadinessReport struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User            *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	RoleID          uuid.UUID `gorm:"type:uuid;not null;index" json:"role_id"`
	Role            *Role     `gorm:"constraint:OnDelete:CASCADE;foreignKey:RoleID;references:ID" json:"role,omitempty"`
	SkillMatchScore float64   `gorm:"not null;column:skill_match_score" json:"skill_match_score"`
	ProjectScore    float64   `gorm:"not null;column:project_score" json:"project_score"`
	GithubScore     float64   `gorm:"not null;column:github_score" json:"github_score"`
	TotalScore      float64   `gorm:"not null;column:total_score" json:"total_score"`
	CreatedAt       time.Time `gorm:"not null;index" json:"created_at"`
}

func (ReadinessReport) TableName() string { return "readiness_reports" }

func (rr *ReadinessReport) BeforeCreate(tx *gorm.DB) error {
	if rr.ID == uuid.Nil {
		rr.ID = uuid.New()
	}
	return nil
}
