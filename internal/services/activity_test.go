package services

import (
  "context"
  "math"
  "testing"
  "time"
  "github.com/google/uuid"
  "github.com/yungbote/skillpath-backend/internal/apierr"
  "github.com/yungbote/skillpath-backend/internal/types"
)

func almostEqual(a, b float64) bool {
  return math.Abs(a-b) < 1e-9
}

func TestComplexityScore(t *testing.T) {
  repo := types.RepoSummary{Stars: 4, Forks: 2, Size: 500}
  if got := ComplexityScore(repo); !almostEqual(got, 76) {
    t.Fatalf("complexity: want=76 got=%v", got)
  }

  huge := types.RepoSummary{Stars: 1000, Forks: 0, Size: 0}
  if got := ComplexityScore(huge); got != 100 {
    t.Fatalf("complexity clamp: want=100 got=%v", got)
  }
}

func TestActivityScoreEmpty(t *testing.T) {
  if got := ActivityScore(nil, time.Now()); got != 0 {
    t.Fatalf("empty activity: want=0 got=%v", got)
  }
}

func TestActivityScoreRecencyAndDiversity(t *testing.T) {
  now := time.Now()
  repoList := []types.RepoSummary{
    {Name: "fresh", PrimaryLanguage: "Go", UpdatedAt: now.Add(-10 * 24 * time.Hour)},
    {Name: "aging", PrimaryLanguage: "Python", UpdatedAt: now.Add(-60 * 24 * time.Hour)},
    {Name: "stale", PrimaryLanguage: "Go", UpdatedAt: now.Add(-400 * 24 * time.Hour), Stars: 1, Forks: 1},
  }

  // 3 repos * 4 + recency 10 + 5 + stars/forks 2+2 + 2 languages * 6
  if got := ActivityScore(repoList, now); !almostEqual(got, 43) {
    t.Fatalf("activity: want=43 got=%v", got)
  }
}

func TestActivityScoreClamped(t *testing.T) {
  now := time.Now()
  repoList := []types.RepoSummary{
    {Name: "popular", PrimaryLanguage: "Go", Stars: 100, UpdatedAt: now},
  }
  if got := ActivityScore(repoList, now); got != 100 {
    t.Fatalf("activity clamp: want=100 got=%v", got)
  }
}

func TestNormalizeLanguage(t *testing.T) {
  cases := map[string]string{
    "JS":     "JavaScript",
    "TS":     "TypeScript",
    "C++":    "Cpp",
    "Shell":  "Bash",
    "Go":     "Go",
    "Erlang": "Erlang",
  }
  for in, want := range cases {
    if got := NormalizeLanguage(in); got != want {
      t.Fatalf("normalize %q: want=%q got=%q", in, want, got)
    }
  }
}

func TestStrengthFromFrequency(t *testing.T) {
  if got := strengthFromFrequency(1); !almostEqual(got, 50+math.Log(2)*20) {
    t.Fatalf("frequency 1: got=%v", got)
  }
  if got := strengthFromFrequency(100); got != 100 {
    t.Fatalf("frequency clamp: want=100 got=%v", got)
  }
}

func TestSyncActivityUnknownUser(t *testing.T) {
  f := newFixture(t)
  _, err := f.activityService().SyncActivity(context.Background(), uuid.New(), "ghost", nil)
  if !apierr.IsNotFound(err) {
    t.Fatalf("want not found, got %v", err)
  }
}

func TestSyncActivityPersistsProjectsStatsAndStrengths(t *testing.T) {
  f := newFixture(t)
  ctx := context.Background()
  user := f.createUser(t)
  goSkill := f.createSkill(t, "Go")
  sqlSkill := f.createSkill(t, "SQL")

  now := time.Now()
  repoList := []types.RepoSummary{
    {Name: "api", PrimaryLanguage: "Go", Languages: []string{"Go", "SQL"}, Stars: 3, UpdatedAt: now},
    {Name: "cli", PrimaryLanguage: "Go", Stars: 1, UpdatedAt: now},
    {Name: "scripts", PrimaryLanguage: "Brainfuck", UpdatedAt: now},
  }

  result, err := f.activityService().SyncActivity(ctx, user.ID, "octocat", repoList)
  if err != nil {
    t.Fatalf("sync: %v", err)
  }
  if result.RepoCount != 3 {
    t.Fatalf("repo count: want=3 got=%d", result.RepoCount)
  }

  projects, err := f.projectRepo.GetByUser(ctx, nil, user.ID)
  if err != nil {
    t.Fatalf("projects: %v", err)
  }
  if len(projects) != 3 {
    t.Fatalf("projects: want=3 got=%d", len(projects))
  }

  stats, err := f.githubStatsRepo.GetByUser(ctx, nil, user.ID)
  if err != nil {
    t.Fatalf("stats: %v", err)
  }
  if stats.Username != "octocat" || stats.ReposCount != 3 || stats.TotalStars != 4 {
    t.Fatalf("stats wrong: %+v", stats)
  }
  if stats.ActivityScore <= 0 || stats.ActivityScore > 100 {
    t.Fatalf("activity score out of range: %v", stats.ActivityScore)
  }

  strengths, err := f.userSkillRepo.GetByUser(ctx, nil, user.ID)
  if err != nil {
    t.Fatalf("strengths: %v", err)
  }
  byID := make(map[uuid.UUID]float64, len(strengths))
  for _, us := range strengths {
    byID[us.SkillID] = us.StrengthScore
  }
  // Go appears in two projects, SQL in one; Brainfuck matches no skill.
  if len(byID) != 2 {
    t.Fatalf("strength rows: want=2 got=%d", len(byID))
  }
  if got := byID[goSkill.ID]; !almostEqual(got, 50+math.Log(3)*20) {
    t.Fatalf("go strength: got=%v", got)
  }
  if got := byID[sqlSkill.ID]; !almostEqual(got, 50+math.Log(2)*20) {
    t.Fatalf("sql strength: got=%v", got)
  }
}

func TestSyncActivityIsIdempotent(t *testing.T) {
  f := newFixture(t)
  ctx := context.Background()
  user := f.createUser(t)
  f.createSkill(t, "Go")

  repoList := []types.RepoSummary{
    {Name: "api", PrimaryLanguage: "Go", UpdatedAt: time.Now()},
  }

  for i := 0; i < 2; i++ {
    if _, err := f.activityService().SyncActivity(ctx, user.ID, "octocat", repoList); err != nil {
      t.Fatalf("sync %d: %v", i, err)
    }
  }

  projects, err := f.projectRepo.GetByUser(ctx, nil, user.ID)
  if err != nil {
    t.Fatalf("projects: %v", err)
  }
  if len(projects) != 1 {
    t.Fatalf("projects after resync: want=1 got=%d", len(projects))
  }

  projectSkills, err := f.projectRepo.GetProjectSkillsByUser(ctx, nil, user.ID)
  if err != nil {
    t.Fatalf("project skills: %v", err)
  }
  if len(projectSkills) != 1 {
    t.Fatalf("project skills after resync: want=1 got=%d", len(projectSkills))
  }

  var statsCount int64
  if err := f.db.Model(&types.GithubStats{}).Where("user_id = ?", user.ID).Count(&statsCount).Error; err != nil {
    t.Fatalf("count stats: %v", err)
  }
  if statsCount != 1 {
    t.Fatalf("stats rows: want=1 got=%d", statsCount)
  }
}

func TestSyncActivityOverwritesStrengths(t *testing.T) {
  f := newFixture(t)
  ctx := context.Background()
  user := f.createUser(t)
  goSkill := f.createSkill(t, "Go")

  if err := f.userSkillRepo.UpsertStrength(ctx, nil, user.ID, goSkill.ID, 95); err != nil {
    t.Fatalf("seed strength: %v", err)
  }

  repoList := []types.RepoSummary{
    {Name: "api", PrimaryLanguage: "Go", UpdatedAt: time.Now()},
  }
  if _, err := f.activityService().SyncActivity(ctx, user.ID, "octocat", repoList); err != nil {
    t.Fatalf("sync: %v", err)
  }

  strengths, err := f.userSkillRepo.GetByUser(ctx, nil, user.ID)
  if err != nil {
    t.Fatalf("strengths: %v", err)
  }
  if len(strengths) != 1 {
    t.Fatalf("strength rows: want=1 got=%d", len(strengths))
  }
  if got := strengths[0].StrengthScore; !almostEqual(got, 50+math.Log(2)*20) {
    t.Fatalf("strength not overwritten: got=%v", got)
  }
}
