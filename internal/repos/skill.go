package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "gorm.io/gorm/clause"
  "github.com/yungbote/skillpath-backend/internal/logger"
  "github.com/yungbote/skillpath-backend/internal/types"
)

type SkillRepo interface {
  Create(ctx context.Context, tx *gorm.DB, skills []*types.Skill) ([]*types.Skill, error)
  GetByIDs(ctx context.Context, tx *gorm.DB, skillIDs []uuid.UUID) ([]*types.Skill, error)
  GetByNames(ctx context.Context, tx *gorm.DB, names []string) ([]*types.Skill, error)
  SetHasNoDependencies(ctx context.Context, tx *gorm.DB, skillID uuid.UUID, hasNoDependencies bool) error
  CreateDependencies(ctx context.Context, tx *gorm.DB, deps []*types.SkillDependency) ([]*types.SkillDependency, error)
  GetDependenciesOf(ctx context.Context, tx *gorm.DB, skillIDs []uuid.UUID) ([]*types.SkillDependency, error)
}

type skillRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewSkillRepo(db *gorm.DB, baseLog *logger.Logger) SkillRepo {
  repoLog := baseLog.With("repo", "SkillRepo")
  return &skillRepo{db: db, log: repoLog}
}

func (sr *skillRepo) Create(ctx context.Context, tx *gorm.DB, skills []*types.Skill) ([]*types.Skill, error) {
  transaction := tx
  if transaction == nil {
    transaction = sr.db
  }

  if len(skills) == 0 {
    return []*types.Skill{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&skills).Error; err != nil {
    return nil, err
  }

  return skills, nil
}

func (sr *skillRepo) GetByIDs(ctx context.Context, tx *gorm.DB, skillIDs []uuid.UUID) ([]*types.Skill, error) {
  transaction := tx
  if transaction == nil {
    transaction = sr.db
  }

  var results []*types.Skill

  if len(skillIDs) == 0 {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Where("id IN ?", skillIDs).
    Find(&results).Error; err != nil {
      return nil, err
  }
  return results, nil
}

func (sr *skillRepo) GetByNames(ctx context.Context, tx *gorm.DB, names []string) ([]*types.Skill, error) {
  transaction := tx
  if transaction == nil {
    transaction = sr.db
  }

  var results []*types.Skill

  if len(names) == 0 {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Where("name IN ?", names).
    Find(&results).Error; err != nil {
      return nil, err
  }
  return results, nil
}

func (sr *skillRepo) SetHasNoDependencies(ctx context.Context, tx *gorm.DB, skillID uuid.UUID, hasNoDependencies bool) error {
  transaction := tx
  if transaction == nil {
    transaction = sr.db
  }

  return transaction.WithContext(ctx).
    Model(&types.Skill{}).
    Where("id = ?", skillID).
    Update("has_no_dependencies", hasNoDependencies).Error
}

// CreateDependencies is idempotent per edge: re-declaring an existing
// (skill, depends-on) pair is a no-op rather than a constraint error.
func (sr *skillRepo) CreateDependencies(ctx context.Context, tx *gorm.DB, deps []*types.SkillDependency) ([]*types.SkillDependency, error) {
  transaction := tx
  if transaction == nil {
    transaction = sr.db
  }

  if len(deps) == 0 {
    return []*types.SkillDependency{}, nil
  }

  if err := transaction.WithContext(ctx).
    Clauses(clause.OnConflict{
      Columns:   []clause.Column{{Name: "skill_id"}, {Name: "depends_on_skill_id"}},
      DoNothing: true,
    }).
    Create(&deps).Error; err != nil {
    return nil, err
  }

  return deps, nil
}

// GetDependenciesOf returns the outgoing depends-on edges of the given
// skills. Callers doing graph traversal re-query per frontier.
func (sr *skillRepo) GetDependenciesOf(ctx context.Context, tx *gorm.DB, skillIDs []uuid.UUID) ([]*types.SkillDependency, error) {
  transaction := tx
  if transaction == nil {
    transaction = sr.db
  }

  var results []*types.SkillDependency

  if len(skillIDs) == 0 {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Where("skill_id IN ?", skillIDs).
    Find(&results).Error; err != nil {
      return nil, err
  }
  return results, nil
}
