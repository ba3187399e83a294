package services

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/yungbote/skillpath-backend/internal/apierr"
  "github.com/yungbote/skillpath-backend/internal/logger"
  "github.com/yungbote/skillpath-backend/internal/repos"
  "github.com/yungbote/skillpath-backend/internal/types"
)

const (
  PriorityHigh   = "high"
  PriorityMedium = "medium"
)

type RoadmapStepItem struct {
  Order     int     `json:"order"`
  SkillName string  `json:"skill_name"`
  Priority  string  `json:"priority"`
  Score     float64 `json:"score"`
}

type RoadmapResult struct {
  Message    string            `json:"message,omitempty"`
  RoadmapID  uuid.UUID         `json:"roadmap_id,omitempty"`
  TotalSteps int               `json:"total_steps"`
  Steps      []RoadmapStepItem `json:"steps,omitempty"`
}

type RoadmapService interface {
  GenerateRoadmap(ctx context.Context, userID uuid.UUID, roleName string) (*RoadmapResult, error)
}

type roadmapService struct {
  db          *gorm.DB
  log         *logger.Logger
  roleRepo    repos.RoleRepo
  skillRepo   repos.SkillRepo
  reportRepo  repos.ReportRepo
  roadmapRepo repos.RoadmapRepo
}

func NewRoadmapService(db *gorm.DB, log *logger.Logger, roleRepo repos.RoleRepo, skillRepo repos.SkillRepo, reportRepo repos.ReportRepo, roadmapRepo repos.RoadmapRepo) RoadmapService {
  serviceLog := log.With("service", "RoadmapService")
  return &roadmapService{
    db:          db,
    log:         serviceLog,
    roleRepo:    roleRepo,
    skillRepo:   skillRepo,
    reportRepo:  reportRepo,
    roadmapRepo: roadmapRepo,
  }
}

type roadmapEntry struct {
  skillID       uuid.UUID
  skillName     string
  gapType       string
  priorityScore float64
}

// GenerateRoadmap turns the latest report's sub-strong gaps into a
// dependency-valid, priority-ordered step sequence and persists it,
// retiring any previous roadmap for the same (user, role) only after
// the new one is fully written — all inside one transaction.
func (rms *roadmapService) GenerateRoadmap(ctx context.Context, userID uuid.UUID, roleName string) (*RoadmapResult, error) {
  role, err := rms.roleRepo.GetByName(ctx, nil, roleName)
  if err != nil {
    return nil, err
  }
  if role == nil {
    return nil, apierr.NotFound("role %q not found", roleName)
  }

  report, err := rms.reportRepo.GetLatestByUserRole(ctx, nil, userID, role.ID)
  if err != nil {
    return nil, err
  }
  if report == nil {
    return nil, apierr.NotFound("no readiness report found for user %s and role %q", userID, roleName)
  }

  gaps, err := rms.reportRepo.GetGapsByReport(ctx, nil, report.ID)
  if err != nil {
    return nil, err
  }

  roleSkills, err := rms.roleRepo.GetRoleSkills(ctx, nil, role.ID)
  if err != nil {
    return nil, err
  }
  weightBySkill := make(map[uuid.UUID]float64, len(roleSkills))
  for _, req := range roleSkills {
    weightBySkill[req.SkillID] = req.Weight
  }

  entries := make(map[uuid.UUID]*roadmapEntry)
  gapIDs := make([]uuid.UUID, 0, len(gaps))
  for _, gap := range gaps {
    if gap.GapType == types.GapStrong {
      continue
    }
    gapIDs = append(gapIDs, gap.SkillID)
    entries[gap.SkillID] = &roadmapEntry{
      skillID:       gap.SkillID,
      gapType:       gap.GapType,
      priorityScore: weightBySkill[gap.SkillID]*0.7 + (100-gap.StrengthScore)*0.3/100,
    }
  }

  if len(gapIDs) == 0 {
    return &RoadmapResult{Message: "no gaps"}, nil
  }

  skills, err := rms.skillRepo.GetByIDs(ctx, nil, gapIDs)
  if err != nil {
    return nil, err
  }
  for _, skill := range skills {
    if entry, ok := entries[skill.ID]; ok {
      entry.skillName = skill.Name
    }
  }

  edges, err := rms.skillRepo.GetDependenciesOf(ctx, nil, gapIDs)
  if err != nil {
    return nil, err
  }

  // Tie-break among ready nodes: missing before weak, then higher
  // priorityScore, then skill id so equal inputs order identically
  // across runs.
  less := func(a, b uuid.UUID) bool {
    ea, eb := entries[a], entries[b]
    if ea.gapType != eb.gapType {
      return ea.gapType == types.GapMissing
    }
    if ea.priorityScore != eb.priorityScore {
      return ea.priorityScore > eb.priorityScore
    }
    return a.String() < b.String()
  }

  ordered, err := TopologicalOrder(gapIDs, edges, less)
  if err != nil {
    return nil, err
  }

  roadmap := &types.Roadmap{
    UserID:            userID,
    RoleID:            role.ID,
    ReadinessReportID: report.ID,
    TotalSteps:        len(ordered),
  }
  steps := make([]*types.RoadmapStep, 0, len(ordered))
  items := make([]RoadmapStepItem, 0, len(ordered))
  for i, skillID := range ordered {
    entry := entries[skillID]
    priority := PriorityMedium
    if entry.gapType == types.GapMissing {
      priority = PriorityHigh
    }
    steps = append(steps, &types.RoadmapStep{
      SkillID:    skillID,
      OrderIndex: i + 1,
      Status:     types.StepStatusPending,
    })
    items = append(items, RoadmapStepItem{
      Order:     i + 1,
      SkillName: entry.skillName,
      Priority:  priority,
      Score:     entry.priorityScore,
    })
  }

  if err := rms.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    if _, err := rms.roadmapRepo.Create(ctx, tx, roadmap); err != nil {
      return err
    }
    for _, step := range steps {
      step.RoadmapID = roadmap.ID
    }
    if _, err := rms.roadmapRepo.CreateSteps(ctx, tx, steps); err != nil {
      return err
    }
    // Old roadmaps go only after the new one is fully written, so a
    // reader never sees zero roadmaps for a pair that has had one.
    return rms.roadmapRepo.RetireByUserRoleExcept(ctx, tx, userID, role.ID, roadmap.ID)
  }); err != nil {
    rms.log.Error("Roadmap write failed", "role", roleName, "error", err)
    return nil, err
  }

  return &RoadmapResult{
    RoadmapID:  roadmap.ID,
    TotalSteps: len(ordered),
    Steps:      items,
  }, nil
}
