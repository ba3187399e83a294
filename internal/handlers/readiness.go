package handlers

import (
  "errors"
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/yungbote/skillpath-backend/internal/services"
)

var errMissingRoleName = errors.New("role_name query parameter is required")

type ReadinessHandler struct {
  readinessService     services.ReadinessService
}

func NewReadinessHandler(readinessService services.ReadinessService) *ReadinessHandler {
  return &ReadinessHandler{readinessService: readinessService}
}

type generateReadinessRequest struct {
  UserID   uuid.UUID `json:"user_id" binding:"required"`
  RoleName string    `json:"role_name" binding:"required"`
}

func (rh *ReadinessHandler) Generate(c *gin.Context) {
  var req generateReadinessRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_request", err)
    return
  }
  result, err := rh.readinessService.GenerateReadiness(c.Request.Context(), req.UserID, req.RoleName)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, result)
}

func (rh *ReadinessHandler) Latest(c *gin.Context) {
  userID, err := uuid.Parse(c.Query("user_id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_request", err)
    return
  }
  roleName := c.Query("role_name")
  if roleName == "" {
    RespondError(c, http.StatusBadRequest, "invalid_request", errMissingRoleName)
    return
  }
  result, err := rh.readinessService.GetLatestReadiness(c.Request.Context(), userID, roleName)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, result)
}
