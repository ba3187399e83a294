package services

import (
  "context"
  "strings"
  "testing"
  "github.com/google/uuid"
  "github.com/yungbote/skillpath-backend/internal/apierr"
  "github.com/yungbote/skillpath-backend/internal/types"
)

func TestCreateSkillRejectsFlagDependencyMismatch(t *testing.T) {
  f := newFixture(t)
  svc := f.skillService()
  ctx := context.Background()

  base := f.createSkill(t, "SQL")

  if _, err := svc.CreateSkill(ctx, "Go", true, []uuid.UUID{base.ID}); !apierr.IsValidation(err) {
    t.Fatalf("flagged skill with dependencies: want validation error, got %v", err)
  }
  if _, err := svc.CreateSkill(ctx, "Go", false, nil); !apierr.IsValidation(err) {
    t.Fatalf("unflagged skill without dependencies: want validation error, got %v", err)
  }
  if _, err := svc.CreateSkill(ctx, "  ", true, nil); !apierr.IsValidation(err) {
    t.Fatalf("blank name: want validation error, got %v", err)
  }
}

func TestCreateSkillReportsAllMissingDependencies(t *testing.T) {
  f := newFixture(t)
  svc := f.skillService()
  ctx := context.Background()

  real := f.createSkill(t, "SQL")
  fake1 := uuid.New()
  fake2 := uuid.New()

  _, err := svc.CreateSkill(ctx, "Go", false, []uuid.UUID{real.ID, fake1, fake2})
  if !apierr.IsValidation(err) {
    t.Fatalf("want validation error, got %v", err)
  }
  msg := err.Error()
  if !strings.Contains(msg, fake1.String()) || !strings.Contains(msg, fake2.String()) {
    t.Fatalf("error should name every missing dependency, got %q", msg)
  }

  var count int64
  if err := f.db.Model(&types.Skill{}).Where("name = ?", "Go").Count(&count).Error; err != nil {
    t.Fatalf("count: %v", err)
  }
  if count != 0 {
    t.Fatalf("failed create must not persist the skill, found %d rows", count)
  }
}

func TestCreateSkillPersistsSkillAndEdgesAtomically(t *testing.T) {
  f := newFixture(t)
  ctx := context.Background()

  sql := f.createSkill(t, "SQL")
  bash := f.createSkill(t, "Bash")
  go_ := f.createSkillWithDeps(t, "Go", sql.ID, bash.ID)

  edges, err := f.skillRepo.GetDependenciesOf(ctx, nil, []uuid.UUID{go_.ID})
  if err != nil {
    t.Fatalf("get edges: %v", err)
  }
  if len(edges) != 2 {
    t.Fatalf("edge count: want=2 got=%d", len(edges))
  }
  if go_.HasNoDependencies {
    t.Fatalf("skill with edges must not be flagged has_no_dependencies")
  }
}

func TestCreateSkillRejectsCycleAndRollsBack(t *testing.T) {
  f := newFixture(t)
  svc := f.skillService()
  ctx := context.Background()

  a := f.createSkill(t, "A")
  b := f.createSkillWithDeps(t, "B", a.ID)

  // Re-declaring A with a dependency on B would close the loop A->B->A.
  _, err := svc.CreateSkill(ctx, "A", false, []uuid.UUID{b.ID})
  if !apierr.IsCycleDetected(err) {
    t.Fatalf("want cycle error, got %v", err)
  }

  var edgeCount int64
  if err := f.db.Model(&types.SkillDependency{}).Count(&edgeCount).Error; err != nil {
    t.Fatalf("count edges: %v", err)
  }
  if edgeCount != 1 {
    t.Fatalf("cycle rejection must leave the graph untouched: want=1 edge got=%d", edgeCount)
  }

  persisted, err := f.skillRepo.GetByIDs(ctx, nil, []uuid.UUID{a.ID})
  if err != nil {
    t.Fatalf("reload A: %v", err)
  }
  if !persisted[0].HasNoDependencies {
    t.Fatalf("rolled-back upsert must not flip the has_no_dependencies flag")
  }
}

func TestCreateSkillRejectsSelfLoop(t *testing.T) {
  f := newFixture(t)
  svc := f.skillService()
  ctx := context.Background()

  a := f.createSkill(t, "A")
  _, err := svc.CreateSkill(ctx, "A", false, []uuid.UUID{a.ID})
  if !apierr.IsValidation(err) {
    t.Fatalf("self-loop: want validation error, got %v", err)
  }
}

func TestCreateSkillRejectsDeepCycle(t *testing.T) {
  f := newFixture(t)
  svc := f.skillService()
  ctx := context.Background()

  a := f.createSkill(t, "A")
  b := f.createSkillWithDeps(t, "B", a.ID)
  c := f.createSkillWithDeps(t, "C", b.ID)

  // A -> C would close A->C->B->A through two hops.
  _, err := svc.CreateSkill(ctx, "A", false, []uuid.UUID{c.ID})
  if !apierr.IsCycleDetected(err) {
    t.Fatalf("want cycle error, got %v", err)
  }
}

func TestCreateSkillDuplicateNameUpsertsEdges(t *testing.T) {
  f := newFixture(t)
  svc := f.skillService()
  ctx := context.Background()

  sql := f.createSkill(t, "SQL")
  bash := f.createSkill(t, "Bash")
  go1 := f.createSkillWithDeps(t, "Go", sql.ID)

  go2, err := svc.CreateSkill(ctx, "Go", false, []uuid.UUID{sql.ID, bash.ID})
  if err != nil {
    t.Fatalf("re-declare: %v", err)
  }
  if go2.ID != go1.ID {
    t.Fatalf("duplicate name must resolve to the same skill")
  }

  edges, err := f.skillRepo.GetDependenciesOf(ctx, nil, []uuid.UUID{go1.ID})
  if err != nil {
    t.Fatalf("get edges: %v", err)
  }
  if len(edges) != 2 {
    t.Fatalf("edge count after upsert: want=2 got=%d", len(edges))
  }
}
