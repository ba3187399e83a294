package server

import (
  "github.com/gin-gonic/gin"
  "github.com/gin-contrib/cors"
  "github.com/yungbote/skillpath-backend/internal/handlers"
  "github.com/yungbote/skillpath-backend/internal/middleware"
)

type RouterConfig struct {
  AuthMiddleware    *middleware.AuthMiddleware
  UserHandler       *handlers.UserHandler
  SkillHandler      *handlers.SkillHandler
  RoleHandler       *handlers.RoleHandler
  GithubHandler     *handlers.GithubHandler
  ReadinessHandler  *handlers.ReadinessHandler
  RoadmapHandler    *handlers.RoadmapHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.Default()

  // Cors
  router.Use(cors.New(cors.Config{
    AllowOrigins: []string{
      "http://localhost:80",
      "http://localhost:3000",
      "http://localhost:5174",
    },
    AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
    AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
    AllowCredentials: true,
  }))

// ===============
// || Public    ||
// ===============
  router.GET("/healthcheck", handlers.HealthCheck)

// ===============
// || Protected ||
// ===============
  api := router.Group("/api")
  api.Use(cfg.AuthMiddleware.RequireAuth())
  // Users
  api.POST("/users", cfg.UserHandler.Create)
  // Skills
  api.POST("/skills", cfg.SkillHandler.Create)
  // Roles
  api.POST("/roles", cfg.RoleHandler.Create)
  api.POST("/roles/skills", cfg.RoleHandler.AssignSkill)
  // Github sync
  api.POST("/github/sync", cfg.GithubHandler.Sync)
  // Readiness
  api.POST("/readiness/generate", cfg.ReadinessHandler.Generate)
  api.GET("/readiness/latest", cfg.ReadinessHandler.Latest)
  // Roadmap
  api.POST("/roadmap/generate", cfg.RoadmapHandler.Generate)

  return router
}
