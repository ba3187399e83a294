package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/yungbote/skillpath-backend/internal/logger"
  "github.com/yungbote/skillpath-backend/internal/types"
)

type RoadmapRepo interface {
  Create(ctx context.Context, tx *gorm.DB, roadmap *types.Roadmap) (*types.Roadmap, error)
  CreateSteps(ctx context.Context, tx *gorm.DB, steps []*types.RoadmapStep) ([]*types.RoadmapStep, error)
  GetByUserRole(ctx context.Context, tx *gorm.DB, userID, roleID uuid.UUID) ([]*types.Roadmap, error)
  GetStepsByRoadmap(ctx context.Context, tx *gorm.DB, roadmapID uuid.UUID) ([]*types.RoadmapStep, error)
  RetireByUserRoleExcept(ctx context.Context, tx *gorm.DB, userID, roleID, keepID uuid.UUID) error
}

type roadmapRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewRoadmapRepo(db *gorm.DB, baseLog *logger.Logger) RoadmapRepo {
  repoLog := baseLog.With("repo", "RoadmapRepo")
  return &roadmapRepo{db: db, log: repoLog}
}

func (rr *roadmapRepo) Create(ctx context.Context, tx *gorm.DB, roadmap *types.Roadmap) (*types.Roadmap, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }

  if err := transaction.WithContext(ctx).Create(roadmap).Error; err != nil {
    return nil, err
  }
  return roadmap, nil
}

func (rr *roadmapRepo) CreateSteps(ctx context.Context, tx *gorm.DB, steps []*types.RoadmapStep) ([]*types.RoadmapStep, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }

  if len(steps) == 0 {
    return []*types.RoadmapStep{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&steps).Error; err != nil {
    return nil, err
  }
  return steps, nil
}

func (rr *roadmapRepo) GetByUserRole(ctx context.Context, tx *gorm.DB, userID, roleID uuid.UUID) ([]*types.Roadmap, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }

  var results []*types.Roadmap
  if err := transaction.WithContext(ctx).
    Where("user_id = ? AND role_id = ?", userID, roleID).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (rr *roadmapRepo) GetStepsByRoadmap(ctx context.Context, tx *gorm.DB, roadmapID uuid.UUID) ([]*types.RoadmapStep, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }

  var results []*types.RoadmapStep
  if err := transaction.WithContext(ctx).
    Where("roadmap_id = ?", roadmapID).
    Order("order_index ASC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

// RetireByUserRoleExcept deletes every roadmap for (user, role) other
// than keepID, steps first so the delete does not rely on database
// cascade support.
func (rr *roadmapRepo) RetireByUserRoleExcept(ctx context.Context, tx *gorm.DB, userID, roleID, keepID uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }

  var oldIDs []uuid.UUID
  if err := transaction.WithContext(ctx).
    Model(&types.Roadmap{}).
    Where("user_id = ? AND role_id = ? AND id <> ?", userID, roleID, keepID).
    Pluck("id", &oldIDs).Error; err != nil {
    return err
  }
  if len(oldIDs) == 0 {
    return nil
  }

  if err := transaction.WithContext(ctx).
    Where("roadmap_id IN ?", oldIDs).
    Delete(&types.RoadmapStep{}).Error; err != nil {
    return err
  }
  return transaction.WithContext(ctx).
    Where("id IN ?", oldIDs).
    Delete(&types.Roadmap{}).Error
}
