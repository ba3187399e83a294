package services

import (
  "context"
  "fmt"
  "math"
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/yungbote/skillpath-backend/internal/apierr"
  redisclient "github.com/yungbote/skillpath-backend/internal/clients/redis"
  "github.com/yungbote/skillpath-backend/internal/logger"
  "github.com/yungbote/skillpath-backend/internal/repos"
  "github.com/yungbote/skillpath-backend/internal/types"
)

const latestReadinessTTL = 10 * time.Minute

type GapItem struct {
  SkillID       uuid.UUID `json:"skill_id"`
  SkillName     string    `json:"skill_name"`
  GapType       string    `json:"gap_type"`
  StrengthScore float64   `json:"strength_score"`
}

type ReadinessResult struct {
  ReportID        uuid.UUID `json:"report_id"`
  SkillMatchScore float64   `json:"skill_match_score"`
  ProjectStrength float64   `json:"project_strength"`
  GithubScore     float64   `json:"github_score"`
  TotalScore      float64   `json:"total_score"`
  Gaps            []GapItem `json:"gaps"`
}

type ReadinessService interface {
  GenerateReadiness(ctx context.Context, userID uuid.UUID, roleName string) (*ReadinessResult, error)
  GetLatestReadiness(ctx context.Context, userID uuid.UUID, roleName string) (*ReadinessResult, error)
}

type readinessService struct {
  db              *gorm.DB
  log             *logger.Logger
  roleRepo        repos.RoleRepo
  skillRepo       repos.SkillRepo
  userSkillRepo   repos.UserSkillRepo
  projectRepo     repos.ProjectRepo
  githubStatsRepo repos.GithubStatsRepo
  reportRepo      repos.ReportRepo
  cache           *redisclient.Cache
}

func NewReadinessService(db *gorm.DB, log *logger.Logger, roleRepo repos.RoleRepo, skillRepo repos.SkillRepo, userSkillRepo repos.UserSkillRepo, projectRepo repos.ProjectRepo, githubStatsRepo repos.GithubStatsRepo, reportRepo repos.ReportRepo, cache *redisclient.Cache) ReadinessService {
  serviceLog := log.With("service", "ReadinessService")
  return &readinessService{
    db:              db,
    log:             serviceLog,
    roleRepo:        roleRepo,
    skillRepo:       skillRepo,
    userSkillRepo:   userSkillRepo,
    projectRepo:     projectRepo,
    githubStatsRepo: githubStatsRepo,
    reportRepo:      reportRepo,
    cache:           cache,
  }
}

func latestReadinessKey(userID, roleID uuid.UUID) string {
  return fmt.Sprintf("readiness:latest:%s:%s", userID, roleID)
}

func classifyGap(strength float64) string {
  switch {
  case strength >= 60:
    return types.GapStrong
  case strength > 0:
    return types.GapWeak
  default:
    return types.GapMissing
  }
}

func clamp(v, lo, hi float64) float64 {
  return math.Max(lo, math.Min(hi, v))
}

// GenerateReadiness scores the user against the role's weighted skill
// requirements, their project portfolio, and their external activity
// snapshot, then persists an immutable report plus per-skill gap rows
// in one transaction.
//
// The skill match is deliberately double-penalized: the weighted
// average is multiplied by the coverage ratio, so a user with a few
// strong skills but low coverage still scores low.
func (rs *readinessService) GenerateReadiness(ctx context.Context, userID uuid.UUID, roleName string) (*ReadinessResult, error) {
  role, err := rs.roleRepo.GetByName(ctx, nil, roleName)
  if err != nil {
    return nil, err
  }
  if role == nil {
    return nil, apierr.NotFound("role %q not found", roleName)
  }

  roleSkills, err := rs.roleRepo.GetRoleSkills(ctx, nil, role.ID)
  if err != nil {
    return nil, err
  }
  userSkills, err := rs.userSkillRepo.GetByUser(ctx, nil, userID)
  if err != nil {
    return nil, err
  }

  strengthBySkill := make(map[uuid.UUID]float64, len(userSkills))
  for _, us := range userSkills {
    strengthBySkill[us.SkillID] = us.StrengthScore
  }

  var weightedSum, totalWeight float64
  covered := 0
  for _, req := range roleSkills {
    strength := strengthBySkill[req.SkillID]
    weightedSum += strength * req.Weight
    totalWeight += req.Weight
    if strength > 0 {
      covered++
    }
  }

  var skillMatchScore float64
  if totalWeight > 0 && len(roleSkills) > 0 {
    raw := weightedSum / totalWeight
    coverageRatio := float64(covered) / float64(len(roleSkills))
    skillMatchScore = raw * coverageRatio
  }

  projectStrength, err := rs.projectStrength(ctx, userID, roleSkills)
  if err != nil {
    return nil, err
  }

  var githubScore float64
  stats, err := rs.githubStatsRepo.GetByUser(ctx, nil, userID)
  if err != nil {
    return nil, err
  }
  if stats != nil {
    githubScore = stats.ActivityScore
  }

  totalScore := skillMatchScore*0.5 + projectStrength*0.3 + githubScore*0.2

  gaps, gapRows, err := rs.buildGaps(ctx, roleSkills, strengthBySkill)
  if err != nil {
    return nil, err
  }

  report := &types.ReadinessReport{
    UserID:          userID,
    RoleID:          role.ID,
    SkillMatchScore: skillMatchScore,
    ProjectScore:    projectStrength,
    GithubScore:     githubScore,
    TotalScore:      totalScore,
  }

  if err := rs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    if _, err := rs.reportRepo.Create(ctx, tx, report); err != nil {
      return err
    }
    for _, row := range gapRows {
      row.ReportID = report.ID
    }
    if _, err := rs.reportRepo.CreateGaps(ctx, tx, gapRows); err != nil {
      return err
    }
    return nil
  }); err != nil {
    rs.log.Error("Readiness report write failed", "role", roleName, "error", err)
    return nil, err
  }

  result := &ReadinessResult{
    ReportID:        report.ID,
    SkillMatchScore: skillMatchScore,
    ProjectStrength: projectStrength,
    GithubScore:     githubScore,
    TotalScore:      totalScore,
    Gaps:            gaps,
  }

  if err := rs.cache.SetJSON(ctx, latestReadinessKey(userID, role.ID), result, latestReadinessTTL); err != nil {
    rs.log.Warn("Readiness cache write failed", "error", err)
  }

  return result, nil
}

// GetLatestReadiness serves the most recent report for (user, role),
// cache-aside so repeated dashboard reads skip the store.
func (rs *readinessService) GetLatestReadiness(ctx context.Context, userID uuid.UUID, roleName string) (*ReadinessResult, error) {
  role, err := rs.roleRepo.GetByName(ctx, nil, roleName)
  if err != nil {
    return nil, err
  }
  if role == nil {
    return nil, apierr.NotFound("role %q not found", roleName)
  }

  var cached ReadinessResult
  hit, err := rs.cache.GetJSON(ctx, latestReadinessKey(userID, role.ID), &cached)
  if err != nil {
    rs.log.Warn("Readiness cache read failed", "error", err)
  } else if hit {
    return &cached, nil
  }

  report, err := rs.reportRepo.GetLatestByUserRole(ctx, nil, userID, role.ID)
  if err != nil {
    return nil, err
  }
  if report == nil {
    return nil, apierr.NotFound("no readiness report found for user %s and role %q", userID, roleName)
  }

  gapRows, err := rs.reportRepo.GetGapsByReport(ctx, nil, report.ID)
  if err != nil {
    return nil, err
  }
  skillIDs := make([]uuid.UUID, 0, len(gapRows))
  for _, row := range gapRows {
    skillIDs = append(skillIDs, row.SkillID)
  }
  skills, err := rs.skillRepo.GetByIDs(ctx, nil, skillIDs)
  if err != nil {
    return nil, err
  }
  nameByID := make(map[uuid.UUID]string, len(skills))
  for _, skill := range skills {
    nameByID[skill.ID] = skill.Name
  }

  gaps := make([]GapItem, 0, len(gapRows))
  for _, row := range gapRows {
    gaps = append(gaps, GapItem{
      SkillID:       row.SkillID,
      SkillName:     nameByID[row.SkillID],
      GapType:       row.GapType,
      StrengthScore: row.StrengthScore,
    })
  }

  result := &ReadinessResult{
    ReportID:        report.ID,
    SkillMatchScore: report.SkillMatchScore,
    ProjectStrength: report.ProjectScore,
    GithubScore:     report.GithubScore,
    TotalScore:      report.TotalScore,
    Gaps:            gaps,
  }

  if err := rs.cache.SetJSON(ctx, latestReadinessKey(userID, role.ID), result, latestReadinessTTL); err != nil {
    rs.log.Warn("Readiness cache write failed", "error", err)
  }

  return result, nil
}

// projectStrength averages complexity weighted by how much of the
// role's required skill set each project touches, clamped to [0,100].
func (rs *readinessService) projectStrength(ctx context.Context, userID uuid.UUID, roleSkills []*types.RoleSkill) (float64, error) {
  projects, err := rs.projectRepo.GetByUser(ctx, nil, userID)
  if err != nil {
    return 0, err
  }
  if len(projects) == 0 {
    return 0, nil
  }

  projectSkills, err := rs.projectRepo.GetProjectSkillsByUser(ctx, nil, userID)
  if err != nil {
    return 0, err
  }

  required := make(map[uuid.UUID]struct{}, len(roleSkills))
  for _, req := range roleSkills {
    required[req.SkillID] = struct{}{}
  }

  matchedByProject := make(map[uuid.UUID]int, len(projects))
  for _, ps := range projectSkills {
    if _, ok := required[ps.SkillID]; ok {
      matchedByProject[ps.ProjectID]++
    }
  }

  var total float64
  for _, project := range projects {
    var coverage float64
    if len(required) > 0 {
      coverage = float64(matchedByProject[project.ID]) / float64(len(required))
    }
    total += project.ComplexityScore * coverage
  }

  return clamp(total/float64(len(projects)), 0, 100), nil
}

func (rs *readinessService) buildGaps(ctx context.Context, roleSkills []*types.RoleSkill, strengthBySkill map[uuid.UUID]float64) ([]GapItem, []*types.SkillGapResult, error) {
  if len(roleSkills) == 0 {
    return []GapItem{}, nil, nil
  }

  skillIDs := make([]uuid.UUID, 0, len(roleSkills))
  for _, req := range roleSkills {
    skillIDs = append(skillIDs, req.SkillID)
  }
  skills, err := rs.skillRepo.GetByIDs(ctx, nil, skillIDs)
  if err != nil {
    return nil, nil, err
  }
  nameByID := make(map[uuid.UUID]string, len(skills))
  for _, skill := range skills {
    nameByID[skill.ID] = skill.Name
  }

  gaps := make([]GapItem, 0, len(roleSkills))
  rows := make([]*types.SkillGapResult, 0, len(roleSkills))
  for _, req := range roleSkills {
    strength := strengthBySkill[req.SkillID]
    gapType := classifyGap(strength)
    gaps = append(gaps, GapItem{
      SkillID:       req.SkillID,
      SkillName:     nameByID[req.SkillID],
      GapType:       gapType,
      StrengthScore: strength,
    })
    rows = append(rows, &types.SkillGapResult{
      SkillID:       req.SkillID,
      GapType:       gapType,
      StrengthScore: strength,
    })
  }
  return gaps, rows, nil
}
