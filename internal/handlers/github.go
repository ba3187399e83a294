package handlers

import (
  "errors"
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  githubclient "github.com/yungbote/skillpath-backend/internal/clients/github"
  "github.com/yungbote/skillpath-backend/internal/logger"
  "github.com/yungbote/skillpath-backend/internal/services"
  "github.com/yungbote/skillpath-backend/internal/types"
)

type GithubHandler struct {
  log             *logger.Logger
  githubClient    *githubclient.Client
  activityService services.ActivityService
}

func NewGithubHandler(log *logger.Logger, githubClient *githubclient.Client, activityService services.ActivityService) *GithubHandler {
  return &GithubHandler{
    log:             log.With("handler", "GithubHandler"),
    githubClient:    githubClient,
    activityService: activityService,
  }
}

var errMissingSource = errors.New("either repos or username must be provided")

type syncRequest struct {
  UserID   uuid.UUID           `json:"user_id" binding:"required"`
  Username string              `json:"username"`
  Repos    []types.RepoSummary `json:"repos"`
}

// Sync ingests a user's external repositories and feeds them to the
// activity aggregator. Callers either supply pre-normalized repos or a
// github username to fetch them for.
func (gh *GithubHandler) Sync(c *gin.Context) {
  var req syncRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_request", err)
    return
  }

  repoList := req.Repos
  if repoList == nil {
    if req.Username == "" {
      RespondError(c, http.StatusBadRequest, "invalid_request", errMissingSource)
      return
    }
    fetched, err := gh.githubClient.FetchUserRepos(c.Request.Context(), req.Username)
    if err != nil {
      RespondServiceError(c, err)
      return
    }
    repoList = fetched
  }

  result, err := gh.activityService.SyncActivity(c.Request.Context(), req.UserID, req.Username, repoList)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, result)
}
