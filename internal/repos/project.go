package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "gorm.io/gorm/clause"
  "github.com/yungbote/skillpath-backend/internal/logger"
  "github.com/yungbote/skillpath-backend/internal/types"
)

type ProjectRepo interface {
  UpsertByUserTitle(ctx context.Context, tx *gorm.DB, project *types.Project) (*types.Project, error)
  GetByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Project, error)
  UpsertProjectSkill(ctx context.Context, tx *gorm.DB, projectID, skillID uuid.UUID) error
  GetProjectSkillsByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.ProjectSkill, error)
}

type projectRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewProjectRepo(db *gorm.DB, baseLog *logger.Logger) ProjectRepo {
  repoLog := baseLog.With("repo", "ProjectRepo")
  return &projectRepo{db: db, log: repoLog}
}

// UpsertByUserTitle keys on (user_id, title) so re-syncing the same
// external repo updates the row instead of duplicating it.
func (pr *projectRepo) UpsertByUserTitle(ctx context.Context, tx *gorm.DB, project *types.Project) (*types.Project, error) {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }

  if err := transaction.WithContext(ctx).
    Clauses(clause.OnConflict{
      Columns:   []clause.Column{{Name: "user_id"}, {Name: "title"}},
      DoUpdates: clause.AssignmentColumns([]string{"description", "source", "complexity_score", "updated_at"}),
    }).
    Create(project).Error; err != nil {
    return nil, err
  }

  var persisted types.Project
  if err := transaction.WithContext(ctx).
    Where("user_id = ? AND title = ?", project.UserID, project.Title).
    First(&persisted).Error; err != nil {
    return nil, err
  }
  return &persisted, nil
}

func (pr *projectRepo) GetByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Project, error) {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }

  var results []*types.Project
  if err := transaction.WithContext(ctx).
    Where("user_id = ?", userID).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (pr *projectRepo) UpsertProjectSkill(ctx context.Context, tx *gorm.DB, projectID, skillID uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }

  ps := &types.ProjectSkill{ProjectID: projectID, SkillID: skillID}
  return transaction.WithContext(ctx).
    Clauses(clause.OnConflict{
      Columns:   []clause.Column{{Name: "project_id"}, {Name: "skill_id"}},
      DoNothing: true,
    }).
    Create(ps).Error
}

// GetProjectSkillsByUser returns the skill edges of every project the
// user owns, used for frequency counting and project coverage.
func (pr *projectRepo) GetProjectSkillsByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.ProjectSkill, error) {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }

  var results []*types.ProjectSkill
  if err := transaction.WithContext(ctx).
    Joins("JOIN projects ON projects.id = project_skills.project_id").
    Where("projects.user_id = ?", userID).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}
