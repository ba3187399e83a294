package services

import (
  "context"
  "fmt"
  "strings"
  "testing"
  "github.com/google/uuid"
  "gorm.io/driver/sqlite"
  "gorm.io/gorm"
  gormlogger "gorm.io/gorm/logger"
  "github.com/yungbote/skillpath-backend/internal/logger"
  "github.com/yungbote/skillpath-backend/internal/repos"
  "github.com/yungbote/skillpath-backend/internal/types"
)

func newTestDB(t *testing.T) *gorm.DB {
  t.Helper()
  dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
  db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
    Logger: gormlogger.Default.LogMode(gormlogger.Silent),
  })
  if err != nil {
    t.Fatalf("open sqlite: %v", err)
  }
  if err := db.AutoMigrate(
    &types.User{},
    &types.Skill{},
    &types.SkillDependency{},
    &types.Role{},
    &types.RoleSkill{},
    &types.UserSkill{},
    &types.Project{},
    &types.ProjectSkill{},
    &types.GithubStats{},
    &types.ReadinessReport{},
    &types.SkillGapResult{},
    &types.Roadmap{},
    &types.RoadmapStep{},
  ); err != nil {
    t.Fatalf("migrate: %v", err)
  }
  return db
}

func newTestLogger(t *testing.T) *logger.Logger {
  t.Helper()
  log, err := logger.New("test")
  if err != nil {
    t.Fatalf("logger.New: %v", err)
  }
  return log
}

type fixture struct {
  db              *gorm.DB
  log             *logger.Logger
  userRepo        repos.UserRepo
  skillRepo       repos.SkillRepo
  roleRepo        repos.RoleRepo
  userSkillRepo   repos.UserSkillRepo
  projectRepo     repos.ProjectRepo
  githubStatsRepo repos.GithubStatsRepo
  reportRepo      repos.ReportRepo
  roadmapRepo     repos.RoadmapRepo
}

func newFixture(t *testing.T) *fixture {
  t.Helper()
  db := newTestDB(t)
  log := newTestLogger(t)
  return &fixture{
    db:              db,
    log:             log,
    userRepo:        repos.NewUserRepo(db, log),
    skillRepo:       repos.NewSkillRepo(db, log),
    roleRepo:        repos.NewRoleRepo(db, log),
    userSkillRepo:   repos.NewUserSkillRepo(db, log),
    projectRepo:     repos.NewProjectRepo(db, log),
    githubStatsRepo: repos.NewGithubStatsRepo(db, log),
    reportRepo:      repos.NewReportRepo(db, log),
    roadmapRepo:     repos.NewRoadmapRepo(db, log),
  }
}

func (f *fixture) skillService() SkillService {
  return NewSkillService(f.db, f.log, f.skillRepo)
}

func (f *fixture) roleService() RoleService {
  return NewRoleService(f.db, f.log, f.roleRepo, f.skillRepo)
}

func (f *fixture) activityService() ActivityService {
  return NewActivityService(f.db, f.log, f.userRepo, f.skillRepo, f.projectRepo, f.userSkillRepo, f.githubStatsRepo)
}

func (f *fixture) readinessService() ReadinessService {
  return NewReadinessService(f.db, f.log, f.roleRepo, f.skillRepo, f.userSkillRepo, f.projectRepo, f.githubStatsRepo, f.reportRepo, nil)
}

func (f *fixture) roadmapService() RoadmapService {
  return NewRoadmapService(f.db, f.log, f.roleRepo, f.skillRepo, f.reportRepo, f.roadmapRepo)
}

func (f *fixture) createUser(t *testing.T) *types.User {
  t.Helper()
  user := &types.User{Email: fmt.Sprintf("%s@example.com", strings.ToLower(strings.ReplaceAll(t.Name(), "/", "-"))), Name: "Test User"}
  created, err := f.userRepo.Create(context.Background(), nil, []*types.User{user})
  if err != nil {
    t.Fatalf("create user: %v", err)
  }
  return created[0]
}

func (f *fixture) createSkill(t *testing.T, name string) *types.Skill {
  t.Helper()
  skill, err := f.skillService().CreateSkill(context.Background(), name, true, nil)
  if err != nil {
    t.Fatalf("create skill %q: %v", name, err)
  }
  return skill
}

func (f *fixture) createSkillWithDeps(t *testing.T, name string, deps ...uuid.UUID) *types.Skill {
  t.Helper()
  skill, err := f.skillService().CreateSkill(context.Background(), name, false, deps)
  if err != nil {
    t.Fatalf("create skill %q: %v", name, err)
  }
  return skill
}

func (f *fixture) createRole(t *testing.T, name string, weights map[uuid.UUID]float64) *types.Role {
  t.Helper()
  role, err := f.roleService().CreateRole(context.Background(), name)
  if err != nil {
    t.Fatalf("create role %q: %v", name, err)
  }
  for skillID, weight := range weights {
    if _, err := f.roleService().AssignSkill(context.Background(), role.ID, skillID, weight); err != nil {
      t.Fatalf("assign skill to role %q: %v", name, err)
    }
  }
  return role
}
