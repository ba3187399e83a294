package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/yungbote/skillpath-backend/internal/services"
)

type UserHandler struct {
  userService     services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
  return &UserHandler{userService: userService}
}

type createUserRequest struct {
  Email string `json:"email" binding:"required"`
  Name  string `json:"name"`
}

func (uh *UserHandler) Create(c *gin.Context) {
  var req createUserRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_request", err)
    return
  }
  user, err := uh.userService.CreateUser(c.Request.Context(), req.Email, req.Name)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondCreated(c, gin.H{"user": user})
}
