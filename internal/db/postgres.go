package db

import (
  "fmt"
  "gorm.io/driver/postgres"
  "gorm.io/gorm"
  "github.com/yungbote/skillpath-backend/internal/types"
  "github.com/yungbote/skillpath-backend/internal/utils"
  "github.com/yungbote/skillpath-backend/internal/logger"
)

type PostgresService struct {
  db *gorm.DB
  log *logger.Logger
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
  serviceLog := log.With("service", "PostgresService")

  log.Info("Loading environment variables...")
  postgresHost := utils.GetEnv("POSTGRES_HOST", "localhost", log)
  postgresPort := utils.GetEnv("POSTGRES_PORT", "5432", log)
  postgresUser := utils.GetEnv("POSTGRES_USER", "postgres", log)
  postgresPassword := utils.GetEnv("POSTGRES_PASSWORD", "", log)
  postgresName := utils.GetEnv("POSTGRES_NAME", "skillpath", log)
  log.Debug("Environment variables loaded")

  dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)

  log.Info("Connecting to Postgres...")
  db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
    DisableForeignKeyConstraintWhenMigrating: true,
  })
  if err != nil {
    log.Error("Failed to connect to Postgres", "error", err)
    return nil, fmt.Errorf("Failed to connect to Postgres: %w", err)
  }

  return &PostgresService{db: db, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
  s.log.Info("Auto migrating postgres tables...")
  err := s.db.AutoMigrate(
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
  )
  if err != nil {
    s.log.Error("Auto migration failed for postgres tables", "error", err)
    return err
  }
  s.log.Info("Configuring foreign key relationships for postgres tables...")
  cascades := []struct {
    name    string
    table   string
    column  string
    refs    string
  }{
    {"fk_skill_dependencies_skill_id", "skill_dependencies", "skill_id", "skills"},
    {"fk_skill_dependencies_depends_on_skill_id", "skill_dependencies", "depends_on_skill_id", "skills"},
    {"fk_role_skills_role_id", "role_skills", "role_id", "roles"},
    {"fk_role_skills_skill_id", "role_skills", "skill_id", "skills"},
    {"fk_user_skills_user_id", "user_skills", "user_id", "users"},
    {"fk_user_skills_skill_id", "user_skills", "skill_id", "skills"},
    {"fk_projects_user_id", "projects", "user_id", "users"},
    {"fk_project_skills_project_id", "project_skills", "project_id", "projects"},
    {"fk_project_skills_skill_id", "project_skills", "skill_id", "skills"},
    {"fk_github_stats_user_id", "github_stats", "user_id", "users"},
    {"fk_readiness_reports_user_id", "readiness_reports", "user_id", "users"},
    {"fk_readiness_reports_role_id", "readiness_reports", "role_id", "roles"},
    {"fk_skill_gap_results_report_id", "skill_gap_results", "report_id", "readiness_reports"},
    {"fk_skill_gap_results_skill_id", "skill_gap_results", "skill_id", "skills"},
    {"fk_roadmaps_readiness_report_id", "roadmaps", "readiness_report_id", "readiness_reports"},
    {"fk_roadmap_steps_roadmap_id", "roadmap_steps", "roadmap_id", "roadmaps"},
    {"fk_roadmap_steps_skill_id", "roadmap_steps", "skill_id", "skills"},
  }
  for _, fk := range cascades {
    stmt := fmt.Sprintf(`
      ALTER TABLE %q
      DROP CONSTRAINT IF EXISTS %q;
      ALTER TABLE %q
      ADD CONSTRAINT %q
      FOREIGN KEY (%q)
      REFERENCES %q("id")
      ON DELETE CASCADE
    `, fk.table, fk.name, fk.table, fk.name, fk.column, fk.refs)
    if err := s.db.Exec(stmt).Error; err != nil {
      return fmt.Errorf("Failed to add %s: %w", fk.name, err)
    }
  }
  return nil
}

func (s *PostgresService) DB() *gorm.DB {
  return s.db
}
