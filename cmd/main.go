package main

import (
  "fmt"
  "os"
  "github.com/yungbote/skillpath-backend/internal/logger"
  "github.com/yungbote/skillpath-backend/internal/utils"
  "github.com/yungbote/skillpath-backend/internal/db"
  "github.com/yungbote/skillpath-backend/internal/repos"
  "github.com/yungbote/skillpath-backend/internal/services"
  "github.com/yungbote/skillpath-backend/internal/handlers"
  "github.com/yungbote/skillpath-backend/internal/middleware"
  "github.com/yungbote/skillpath-backend/internal/server"
  githubclient "github.com/yungbote/skillpath-backend/internal/clients/github"
  redisclient "github.com/yungbote/skillpath-backend/internal/clients/redis"
)

func main() {
  // Logger
  logMode := os.Getenv("LOG_MODE")
  if logMode == "" {
    logMode = "development"
  }
  log, err := logger.New(logMode)
  if err != nil {
    fmt.Printf("Failed to init logger: %v\n", err)
    os.Exit(1)
  }
  defer log.Sync()

  // Env
  log.Info("Loading environment variables from main...")
  jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "", log)
  serverPort := utils.GetEnv("SERVER_PORT", "8080", log)

  // Postgres
  postgresService, err := db.NewPostgresService(log)
  if err != nil {
    log.Error("Postgres init failed", "error", err)
    os.Exit(1)
  }
  if err = postgresService.AutoMigrateAll(); err != nil {
    log.Error("Postgres auto migration failed", "error", err)
    os.Exit(1)
  }
  thePG := postgresService.DB()

  // Repos
  log.Info("Setting up Repos from main...")
  userRepo := repos.NewUserRepo(thePG, log)
  skillRepo := repos.NewSkillRepo(thePG, log)
  roleRepo := repos.NewRoleRepo(thePG, log)
  userSkillRepo := repos.NewUserSkillRepo(thePG, log)
  projectRepo := repos.NewProjectRepo(thePG, log)
  githubStatsRepo := repos.NewGithubStatsRepo(thePG, log)
  reportRepo := repos.NewReportRepo(thePG, log)
  roadmapRepo := repos.NewRoadmapRepo(thePG, log)

  // Clients
  log.Info("Setting up clients from main...")
  githubClient := githubclient.NewClient(log)
  reportCache, err := redisclient.NewCache(log)
  if err != nil {
    log.Warn("Redis cache disabled", "error", err)
    reportCache = nil
  }

  // Services
  log.Info("Setting up Services from main...")
  userService := services.NewUserService(thePG, log, userRepo)
  skillService := services.NewSkillService(thePG, log, skillRepo)
  roleService := services.NewRoleService(thePG, log, roleRepo, skillRepo)
  activityService := services.NewActivityService(thePG, log, userRepo, skillRepo, projectRepo, userSkillRepo, githubStatsRepo)
  readinessService := services.NewReadinessService(thePG, log, roleRepo, skillRepo, userSkillRepo, projectRepo, githubStatsRepo, reportRepo, reportCache)
  roadmapService := services.NewRoadmapService(thePG, log, roleRepo, skillRepo, reportRepo, roadmapRepo)

  // Handlers
  log.Info("Setting up handlers from main...")
  userHandler := handlers.NewUserHandler(userService)
  skillHandler := handlers.NewSkillHandler(skillService)
  roleHandler := handlers.NewRoleHandler(roleService)
  githubHandler := handlers.NewGithubHandler(log, githubClient, activityService)
  readinessHandler := handlers.NewReadinessHandler(readinessService)
  roadmapHandler := handlers.NewRoadmapHandler(roadmapService)

  // Middleware
  log.Info("Setting up middleware from main...")
  authMiddleware := middleware.NewAuthMiddleware(log, jwtSecretKey)

  // Router
  log.Info("Setting up router from main...")
  router := server.NewRouter(server.RouterConfig{
    AuthMiddleware:   authMiddleware,
    UserHandler:      userHandler,
    SkillHandler:     skillHandler,
    RoleHandler:      roleHandler,
    GithubHandler:    githubHandler,
    ReadinessHandler: readinessHandler,
    RoadmapHandler:   roadmapHandler,
  })

  log.Info("Starting server", "port", serverPort)
  if err := router.Run(":" + serverPort); err != nil {
    log.Fatal("Server exited", "error", err)
  }
}
