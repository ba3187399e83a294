package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "gorm.io/gorm/clause"
  "github.com/yungbote/skillpath-backend/internal/logger"
  "github.com/yungbote/skillpath-backend/internal/types"
)

type UserSkillRepo interface {
  UpsertStrength(ctx context.Context, tx *gorm.DB, userID, skillID uuid.UUID, strength float64) error
  GetByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.UserSkill, error)
}

type userSkillRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewUserSkillRepo(db *gorm.DB, baseLog *logger.Logger) UserSkillRepo {
  repoLog := baseLog.With("repo", "UserSkillRepo")
  return &userSkillRepo{db: db, log: repoLog}
}

// UpsertStrength is last-write-wins per (user, skill).
func (ur *userSkillRepo) UpsertStrength(ctx context.Context, tx *gorm.DB, userID, skillID uuid.UUID, strength float64) error {
  transaction := tx
  if transaction == nil {
    transaction = ur.db
  }

  us := &types.UserSkill{UserID: userID, SkillID: skillID, StrengthScore: strength}
  return transaction.WithContext(ctx).
    Clauses(clause.OnConflict{
      Columns:   []clause.Column{{Name: "user_id"}, {Name: "skill_id"}},
      DoUpdates: clause.AssignmentColumns([]string{"strength_score", "updated_at"}),
    }).
    Create(us).Error
}

func (ur *userSkillRepo) GetByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.UserSkill, error) {
  transaction := tx
  if transaction == nil {
    transaction = ur.db
  }

  var results []*types.UserSkill
  if err := transaction.WithContext(ctx).
    Where("user_id = ?", userID).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}
