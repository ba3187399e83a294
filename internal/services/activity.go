package services

import (
  "context"
  "math"
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/yungbote/skillpath-backend/internal/apierr"
  "github.com/yungbote/skillpath-backend/internal/logger"
  "github.com/yungbote/skillpath-backend/internal/repos"
  "github.com/yungbote/skillpath-backend/internal/types"
)

type SyncResult struct {
  RepoCount     int     `json:"repo_count"`
  ActivityScore float64 `json:"activity_score"`
}

type ActivityService interface {
  SyncActivity(ctx context.Context, userID uuid.UUID, username string, repoList []types.RepoSummary) (*SyncResult, error)
}

type activityService struct {
  db              *gorm.DB
  log             *logger.Logger
  userRepo        repos.UserRepo
  skillRepo       repos.SkillRepo
  projectRepo     repos.ProjectRepo
  userSkillRepo   repos.UserSkillRepo
  githubStatsRepo repos.GithubStatsRepo
}

func NewActivityService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo, skillRepo repos.SkillRepo, projectRepo repos.ProjectRepo, userSkillRepo repos.UserSkillRepo, githubStatsRepo repos.GithubStatsRepo) ActivityService {
  serviceLog := log.With("service", "ActivityService")
  return &activityService{
    db:              db,
    log:             serviceLog,
    userRepo:        userRepo,
    skillRepo:       skillRepo,
    projectRepo:     projectRepo,
    userSkillRepo:   userSkillRepo,
    githubStatsRepo: githubStatsRepo,
  }
}

// languageAliases maps repo-host language labels onto skill names.
// Unmapped labels pass through unchanged; labels that then match no
// known skill are dropped without creating one.
var languageAliases = map[string]string{
  "JS":         "JavaScript",
  "Javascript": "JavaScript",
  "TS":         "TypeScript",
  "Py":         "Python",
  "C++":        "Cpp",
  "C#":         "CSharp",
  "Shell":      "Bash",
}

func NormalizeLanguage(lang string) string {
  if mapped, ok := languageAliases[lang]; ok {
    return mapped
  }
  return lang
}

func ComplexityScore(repo types.RepoSummary) float64 {
  return math.Min(100, float64(repo.Stars)*5+float64(repo.Forks)*3+float64(repo.Size)/10)
}

// ActivityScore is the bounded external-activity signal: repo volume,
// recency of updates, stars/forks, and language diversity.
func ActivityScore(repoList []types.RepoSummary, now time.Time) float64 {
  if len(repoList) == 0 {
    return 0
  }

  score := float64(len(repoList)) * 4

  uniqueLanguages := make(map[string]struct{})
  for _, repo := range repoList {
    age := now.Sub(repo.UpdatedAt)
    if age < 30*24*time.Hour {
      score += 10
    } else if age < 90*24*time.Hour {
      score += 5
    }

    score += float64(repo.Stars) * 2
    score += float64(repo.Forks) * 2

    if repo.PrimaryLanguage != "" {
      uniqueLanguages[repo.PrimaryLanguage] = struct{}{}
    }
  }
  score += float64(len(uniqueLanguages)) * 6

  return math.Min(100, score)
}

// strengthFromFrequency rewards repeated use of a skill across projects
// on a diminishing-returns curve.
func strengthFromFrequency(frequency int) float64 {
  return math.Min(100, 50+math.Log(float64(frequency)+1)*20)
}

// SyncActivity upserts one Project per repo (keyed by user+title), tags
// projects with known skills via the language map, replaces the user's
// GithubStats snapshot, and rewrites frequency-derived skill strengths.
// A failure on one repo skips that repo; failing to write the stats row
// is fatal.
func (as *activityService) SyncActivity(ctx context.Context, userID uuid.UUID, username string, repoList []types.RepoSummary) (*SyncResult, error) {
  exists, err := as.userRepo.Exists(ctx, nil, userID)
  if err != nil {
    return nil, err
  }
  if !exists {
    return nil, apierr.NotFound("user %s not found", userID)
  }

  totalStars := 0
  for _, repo := range repoList {
    totalStars += repo.Stars

    project := &types.Project{
      UserID:          userID,
      Title:           repo.Name,
      Description:     repo.Description,
      Source:          "github",
      ComplexityScore: ComplexityScore(repo),
    }
    persisted, err := as.projectRepo.UpsertByUserTitle(ctx, nil, project)
    if err != nil {
      as.log.Warn("Project upsert failed, skipping repo", "repo", repo.Name, "error", err)
      continue
    }

    languages := repo.Languages
    if len(languages) == 0 && repo.PrimaryLanguage != "" {
      languages = []string{repo.PrimaryLanguage}
    }

    normalized := make([]string, 0, len(languages))
    for _, lang := range languages {
      if lang == "" {
        continue
      }
      normalized = append(normalized, NormalizeLanguage(lang))
    }
    if len(normalized) == 0 {
      continue
    }

    matched, err := as.skillRepo.GetByNames(ctx, nil, normalized)
    if err != nil {
      as.log.Warn("Skill lookup failed, skipping repo languages", "repo", repo.Name, "error", err)
      continue
    }
    for _, skill := range matched {
      if err := as.projectRepo.UpsertProjectSkill(ctx, nil, persisted.ID, skill.ID); err != nil {
        as.log.Warn("Project skill upsert failed", "repo", repo.Name, "skill", skill.Name, "error", err)
      }
    }
  }

  activityScore := ActivityScore(repoList, time.Now())
  stats := &types.GithubStats{
    UserID:        userID,
    Username:      username,
    ReposCount:    len(repoList),
    TotalStars:    totalStars,
    ActivityScore: activityScore,
    LastSynced:    time.Now(),
  }
  if err := as.githubStatsRepo.UpsertByUser(ctx, nil, stats); err != nil {
    as.log.Error("Github stats upsert failed", "error", err)
    return nil, err
  }

  if err := as.refreshSkillStrengths(ctx, userID); err != nil {
    as.log.Warn("Skill strength refresh failed", "error", err)
  }

  return &SyncResult{RepoCount: len(repoList), ActivityScore: activityScore}, nil
}

// refreshSkillStrengths recounts skill frequency over the user's
// projects and overwrites the derived strengths. Iteration order over
// the frequency map is irrelevant: each skill's write depends only on
// its own count.
func (as *activityService) refreshSkillStrengths(ctx context.Context, userID uuid.UUID) error {
  projectSkills, err := as.projectRepo.GetProjectSkillsByUser(ctx, nil, userID)
  if err != nil {
    return err
  }

  frequency := make(map[uuid.UUID]int, len(projectSkills))
  for _, ps := range projectSkills {
    frequency[ps.SkillID]++
  }

  for skillID, count := range frequency {
    strength := strengthFromFrequency(count)
    if err := as.userSkillRepo.UpsertStrength(ctx, nil, userID, skillID, strength); err != nil {
      as.log.Warn("User skill upsert failed", "skill_id", skillID, "error", err)
    }
  }
  return nil
}
