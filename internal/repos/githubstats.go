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

type GithubStatsRepo interface {
  UpsertByUser(ctx context.Context, tx *gorm.DB, stats *types.GithubStats) error
  GetByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.GithubStats, error)
}

type githubStatsRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewGithubStatsRepo(db *gorm.DB, baseLog *logger.Logger) GithubStatsRepo {
  repoLog := baseLog.With("repo", "GithubStatsRepo")
  return &githubStatsRepo{db: db, log: repoLog}
}

// UpsertByUser fully replaces the single snapshot row per user.
func (gr *githubStatsRepo) UpsertByUser(ctx context.Context, tx *gorm.DB, stats *types.GithubStats) error {
  transaction := tx
  if transaction == nil {
    transaction = gr.db
  }

  return transaction.WithContext(ctx).
    Clauses(clause.OnConflict{
      Columns:   []clause.Column{{Name: "user_id"}},
      DoUpdates: clause.AssignmentColumns([]string{"username", "repos_count", "total_stars", "activity_score", "last_synced", "updated_at"}),
    }).
    Create(stats).Error
}

func (gr *githubStatsRepo) GetByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.GithubStats, error) {
  transaction := tx
  if transaction == nil {
    transaction = gr.db
  }

  var stats types.GithubStats
  if err := transaction.WithContext(ctx).
    Where("user_id = ?", userID).
    First(&stats).Error; err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, nil
    }
    return nil, err
  }
  return &stats, nil
}
