package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/yungbote/skillpath-backend/internal/services"
)

type SkillHandler struct {
  skillService     services.SkillService
}

func NewSkillHandler(skillService services.SkillService) *SkillHandler {
  return &SkillHandler{skillService: skillService}
}

type createSkillRequest struct {
  Name              string      `json:"name" binding:"required"`
  HasNoDependencies bool        `json:"has_no_dependencies"`
  DependencyIDs     []uuid.UUID `json:"dependency_ids"`
}

func (sh *SkillHandler) Create(c *gin.Context) {
  var req createSkillRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_request", err)
    return
  }
  skill, err := sh.skillService.CreateSkill(c.Request.Context(), req.Name, req.HasNoDependencies, req.DependencyIDs)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondCreated(c, gin.H{"skill": skill})
}
