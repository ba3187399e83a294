package services

import (
  "context"
  "strings"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/yungbote/skillpath-backend/internal/apierr"
  "github.com/yungbote/skillpath-backend/internal/logger"
  "github.com/yungbote/skillpath-backend/internal/repos"
  "github.com/yungbote/skillpath-backend/internal/types"
)

type RoleService interface {
  CreateRole(ctx context.Context, name string) (*types.Role, error)
  AssignSkill(ctx context.Context, roleID, skillID uuid.UUID, weight float64) (*types.RoleSkill, error)
}

type roleService struct {
  db        *gorm.DB
  log       *logger.Logger
  roleRepo  repos.RoleRepo
  skillRepo repos.SkillRepo
}

func NewRoleService(db *gorm.DB, log *logger.Logger, roleRepo repos.RoleRepo, skillRepo repos.SkillRepo) RoleService {
  serviceLog := log.With("service", "RoleService")
  return &roleService{db: db, log: serviceLog, roleRepo: roleRepo, skillRepo: skillRepo}
}

func (rs *roleService) CreateRole(ctx context.Context, name string) (*types.Role, error) {
  name = strings.TrimSpace(name)
  if name == "" {
    return nil, apierr.Validation("role name must not be empty")
  }
  return rs.roleRepo.UpsertByName(ctx, nil, name)
}

// AssignSkill upserts the (role, skill) requirement weight.
func (rs *roleService) AssignSkill(ctx context.Context, roleID, skillID uuid.UUID, weight float64) (*types.RoleSkill, error) {
  if weight <= 0 {
    return nil, apierr.Validation("weight must be positive")
  }

  roles, err := rs.roleRepo.GetByIDs(ctx, nil, []uuid.UUID{roleID})
  if err != nil {
    return nil, err
  }
  if len(roles) == 0 {
    return nil, apierr.NotFound("role %s not found", roleID)
  }

  skills, err := rs.skillRepo.GetByIDs(ctx, nil, []uuid.UUID{skillID})
  if err != nil {
    return nil, err
  }
  if len(skills) == 0 {
    return nil, apierr.NotFound("skill %s not found", skillID)
  }

  return rs.roleRepo.UpsertRoleSkill(ctx, nil, roleID, skillID, weight)
}
