package services

import (
  "testing"
  "github.com/google/uuid"
  "github.com/yungbote/skillpath-backend/internal/apierr"
  "github.com/yungbote/skillpath-backend/internal/types"
)

func edge(skill, dependsOn uuid.UUID) *types.SkillDependency {
  return &types.SkillDependency{SkillID: skill, DependsOnSkillID: dependsOn}
}

func indexOf(t *testing.T, order []uuid.UUID, id uuid.UUID) int {
  t.Helper()
  for i, v := range order {
    if v == id {
      return i
    }
  }
  t.Fatalf("id %s not in order", id)
  return -1
}

func TestTopologicalOrderRespectsDependencies(t *testing.T) {
  a, b, c, d := uuid.New(), uuid.New(), uuid.New(), uuid.New()
  edges := []*types.SkillDependency{
    edge(b, a),
    edge(c, b),
    edge(d, a),
  }

  order, err := TopologicalOrder([]uuid.UUID{d, c, b, a}, edges, nil)
  if err != nil {
    t.Fatalf("order: %v", err)
  }
  if len(order) != 4 {
    t.Fatalf("length: want=4 got=%d", len(order))
  }
  if indexOf(t, order, a) > indexOf(t, order, b) {
    t.Fatalf("a must precede b")
  }
  if indexOf(t, order, b) > indexOf(t, order, c) {
    t.Fatalf("b must precede c")
  }
  if indexOf(t, order, a) > indexOf(t, order, d) {
    t.Fatalf("a must precede d")
  }
}

func TestTopologicalOrderIgnoresEdgesOutsideInducedSet(t *testing.T) {
  a, b, outside := uuid.New(), uuid.New(), uuid.New()
  edges := []*types.SkillDependency{
    edge(b, a),
    edge(a, outside),
    edge(outside, b),
  }

  order, err := TopologicalOrder([]uuid.UUID{a, b}, edges, nil)
  if err != nil {
    t.Fatalf("order: %v", err)
  }
  if len(order) != 2 || order[0] != a || order[1] != b {
    t.Fatalf("induced order wrong: %v", order)
  }
}

func TestTopologicalOrderDetectsCycle(t *testing.T) {
  a, b := uuid.New(), uuid.New()
  edges := []*types.SkillDependency{
    edge(a, b),
    edge(b, a),
  }

  _, err := TopologicalOrder([]uuid.UUID{a, b}, edges, nil)
  if !apierr.IsCycleDetected(err) {
    t.Fatalf("want cycle error, got %v", err)
  }
}

func TestTopologicalOrderDeduplicatesIDs(t *testing.T) {
  a, b := uuid.New(), uuid.New()
  order, err := TopologicalOrder([]uuid.UUID{a, a, b, b}, []*types.SkillDependency{edge(b, a)}, nil)
  if err != nil {
    t.Fatalf("order: %v", err)
  }
  if len(order) != 2 {
    t.Fatalf("length: want=2 got=%d", len(order))
  }
}

func TestTopologicalOrderReappliesTieBreakOnReadySetChange(t *testing.T) {
  // b and c unlock together once a is emitted; the tie-break must be
  // applied to the full ready set at that point, not insertion order.
  a, b, c := uuid.New(), uuid.New(), uuid.New()
  edges := []*types.SkillDependency{
    edge(b, a),
    edge(c, a),
  }

  rank := map[uuid.UUID]int{a: 0, c: 1, b: 2}
  less := func(x, y uuid.UUID) bool { return rank[x] < rank[y] }

  order, err := TopologicalOrder([]uuid.UUID{b, c, a}, edges, less)
  if err != nil {
    t.Fatalf("order: %v", err)
  }
  want := []uuid.UUID{a, c, b}
  for i := range want {
    if order[i] != want[i] {
      t.Fatalf("order[%d]: want=%s got=%s", i, want[i], order[i])
    }
  }
}
