package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GithubStats is the single external-activity snapshot per user,
// fully replaced on every sync.
type GithubStats struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	User          *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	Username      string    `gorm:"not null;column:username" json:"username"`
	ReposCount    int       `gorm:"not null;column:repos_count" json:"repos_count"`
	TotalStars    int       `gorm:"not null;column:total_stars" json:"total_stars"`
	ActivityScore float64   `gorm:"not null;column:activity_score" json:"activity_score"`
	LastSynced    time.Time `gorm:"not null;column:last_synced" json:"last_synced"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null" json:"updated_at"`
}

func (GithubStats) TableName() string { return "github_stats" }

func (gs *GithubStats) BeforeCreate(tx *gorm.DB) error {
	if gs.ID == uuid.Nil {
		gs.ID = uuid.New()
	}
	return nil
}
