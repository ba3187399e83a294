package repos

import (
  "context"
  "errors"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/yungbote/skillpath-backend/internal/logger"
  "github.com/yungbote/skillpath-backend/internal/types"
)

type ReportRepo interface {
  Create(ctx context.Context, tx *gorm.DB, report *types.ReadinessReport) (*types.ReadinessReport, error)
  CreateGaps(ctx context.Context, tx *gorm.DB, gaps []*types.SkillGapResult) ([]*types.SkillGapResult, error)
  GetLatestByUserRole(ctx context.Context, tx *gorm.DB, userID, roleID uuid.UUID) (*types.ReadinessReport, error)
  GetGapsByReport(ctx context.Context, tx *gorm.DB, reportID uuid.UUID) ([]*types.SkillGapResult, error)
}

type reportRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewReportRepo(db *gorm.DB, baseLog *logger.Logger) ReportRepo {
  repoLog := baseLog.With("repo", "ReportRepo")
  return &reportRepo{db: db, log: repoLog}
}

func (rr *reportRepo) Create(ctx context.Context, tx *gorm.DB, report *types.ReadinessReport) (*types.ReadinessReport, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }

  if err := transaction.WithContext(ctx).Create(report).Error; err != nil {
    return nil, err
  }
  return report, nil
}

func (rr *reportRepo) CreateGaps(ctx context.Context, tx *gorm.DB, gaps []*types.SkillGapResult) ([]*types.SkillGapResult, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }

  if len(gaps) == 0 {
    return []*types.SkillGapResult{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&gaps).Error; err != nil {
    return nil, err
  }
  return gaps, nil
}

func (rr *reportRepo) GetLatestByUserRole(ctx context.Context, tx *gorm.DB, userID, roleID uuid.UUID) (*types.ReadinessReport, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }

  var report types.ReadinessReport
  if err := transaction.WithContext(ctx).
    Where("user_id = ? AND role_id = ?", userID, roleID).
    Order("created_at DESC").
    First(&report).Error; err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, nil
    }
    return nil, err
  }
  return &report, nil
}

func (rr *reportRepo) GetGapsByReport(ctx context.Context, tx *gorm.DB, reportID uuid.UUID) ([]*types.SkillGapResult, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }

  var results []*types.SkillGapResult
  if err := transaction.WithContext(ctx).
    Where("report_id = ?", reportID).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}
