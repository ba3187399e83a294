package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/yungbote/skillpath-backend/internal/services"
)

type RoleHandler struct {
  roleService     services.RoleService
}

func NewRoleHandler(roleService services.RoleService) *RoleHandler {
  return &RoleHandler{roleService: roleService}
}

type createRoleRequest struct {
  Name string `json:"name" binding:"required"`
}

func (rh *RoleHandler) Create(c *gin.Context) {
  var req createRoleRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_request", err)
    return
  }
  role, err := rh.roleService.CreateRole(c.Request.Context(), req.Name)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondCreated(c, gin.H{"role": role})
}

type assignSkillRequest struct {
  RoleID  uuid.UUID `json:"role_id" binding:"required"`
  SkillID uuid.UUID `json:"skill_id" binding:"required"`
  Weight  float64   `json:"weight" binding:"required"`
}

func (rh *RoleHandler) AssignSkill(c *gin.Context) {
  var req assignSkillRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_request", err)
    return
  }
  roleSkill, err := rh.roleService.AssignSkill(c.Request.Context(), req.RoleID, req.SkillID, req.Weight)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"role_skill": roleSkill})
}
