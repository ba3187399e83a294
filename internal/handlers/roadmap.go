package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/yungbote/skillpath-backend/internal/services"
)

type RoadmapHandler struct {
  roadmapService     services.RoadmapService
}

func NewRoadmapHandler(roadmapService services.RoadmapService) *RoadmapHandler {
  return &RoadmapHandler{roadmapService: roadmapService}
}

type generateRoadmapRequest struct {
  UserID   uuid.UUID `json:"user_id" binding:"required"`
  RoleName string    `json:"role_name" binding:"required"`
}

func (rh *RoadmapHandler) Generate(c *gin.Context) {
  var req generateRoadmapRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_request", err)
    return
  }
  result, err := rh.roadmapService.GenerateRoadmap(c.Request.Context(), req.UserID, req.RoleName)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, result)
}
