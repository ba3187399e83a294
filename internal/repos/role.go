package repos

import (
  "context"
  "errors"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "gorm.io/gorm/clause"
  "github.com/yungbote/skillpath-backend/internal/logger"
  "github.com/yungbote/skillpath-backend/internal/types"
)

type RoleRepo interface {
  UpsertByName(ctx context.Context, tx *gorm.DB, name string) (*types.Role, error)
  GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.Role, error)
  GetByIDs(ctx context.Context, tx *gorm.DB, roleIDs []uuid.UUID) ([]*types.Role, error)
  UpsertRoleSkill(ctx context.Context, tx *gorm.DB, roleID, skillID uuid.UUID, weight float64) (*types.RoleSkill, error)
  GetRoleSkills(ctx context.Context, tx *gorm.DB, roleID uuid.UUID) ([]*types.RoleSkill, error)
}

type roleRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewRoleRepo(db *gorm.DB, baseLog *logger.Logger) RoleRepo {
  repoLog := baseLog.With("repo", "RoleRepo")
  return &roleRepo{db: db, log: repoLog}
}

func (rr *roleRepo) UpsertByName(ctx context.Context, tx *gorm.DB, name string) (*types.Role, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }

  role := &types.Role{Name: name}
  if err := transaction.WithContext(ctx).
    Clauses(clause.OnConflict{
      Columns:   []clause.Column{{Name: "name"}},
      DoUpdates: clause.AssignmentColumns([]string{"updated_at"}),
    }).
    Create(role).Error; err != nil {
    return nil, err
  }

  // Re-read so the conflict path also yields the persisted row.
  return rr.GetByName(ctx, tx, name)
}

func (rr *roleRepo) GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.Role, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }

  var role types.Role
  if err := transaction.WithContext(ctx).
    Where("name = ?", name).
    First(&role).Error; err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, nil
    }
    return nil, err
  }
  return &role, nil
}

func (rr *roleRepo) GetByIDs(ctx context.Context, tx *gorm.DB, roleIDs []uuid.UUID) ([]*types.Role, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }

  var results []*types.Role

  if len(roleIDs) == 0 {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Where("id IN ?", roleIDs).
    Find(&results).Error; err != nil {
      return nil, err
  }
  return results, nil
}

func (rr *roleRepo) UpsertRoleSkill(ctx context.Context, tx *gorm.DB, roleID, skillID uuid.UUID, weight float64) (*types.RoleSkill, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }

  rs := &types.RoleSkill{RoleID: roleID, SkillID: skillID, Weight: weight}
  if err := transaction.WithContext(ctx).
    Clauses(clause.OnConflict{
      Columns:   []clause.Column{{Name: "role_id"}, {Name: "skill_id"}},
      DoUpdates: clause.AssignmentColumns([]string{"weight", "updated_at"}),
    }).
    Create(rs).Error; err != nil {
    return nil, err
  }

  var persisted types.RoleSkill
  if err := transaction.WithContext(ctx).
    Where("role_id = ? AND skill_id = ?", roleID, skillID).
    First(&persisted).Error; err != nil {
    return nil, err
  }
  return &persisted, nil
}

func (rr *roleRepo) GetRoleSkills(ctx context.Context, tx *gorm.DB, roleID uuid.UUID) ([]*types.RoleSkill, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }

  var results []*types.RoleSkill
  if err := transaction.WithContext(ctx).
    Where("role_id = ?", roleID).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}
