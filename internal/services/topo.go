package services

import (
  "sort"
  "github.com/google/uuid"
  "github.com/yungbote/skillpath-backend/internal/apierr"
  "github.com/yungbote/skillpath-backend/internal/types"
)

// TopologicalOrder runs Kahn's algorithm over the subgraph induced by
// ids: edges with either endpoint outside the set are ignored. A
// depends-on edge forces the dependency to be emitted before the
// dependent. Whenever several nodes are ready at once, the whole ready
// set is re-sorted with less, so the tie-break tracks every change to
// the ready set rather than queue-entry order. Returns CycleDetected
// when the emitted sequence cannot cover all ids.
func TopologicalOrder(ids []uuid.UUID, edges []*types.SkillDependency, less func(a, b uuid.UUID) bool) ([]uuid.UUID, error) {
  inSet := make(map[uuid.UUID]struct{}, len(ids))
  nodes := make([]uuid.UUID, 0, len(ids))
  for _, id := range ids {
    if _, dup := inSet[id]; dup {
      continue
    }
    inSet[id] = struct{}{}
    nodes = append(nodes, id)
  }

  if less == nil {
    less = func(a, b uuid.UUID) bool { return a.String() < b.String() }
  }

  dependents := make(map[uuid.UUID][]uuid.UUID, len(nodes))
  inDegree := make(map[uuid.UUID]int, len(nodes))
  for _, id := range nodes {
    inDegree[id] = 0
  }
  for _, edge := range edges {
    if _, ok := inSet[edge.SkillID]; !ok {
      continue
    }
    if _, ok := inSet[edge.DependsOnSkillID]; !ok {
      continue
    }
    dependents[edge.DependsOnSkillID] = append(dependents[edge.DependsOnSkillID], edge.SkillID)
    inDegree[edge.SkillID]++
  }

  ready := make([]uuid.UUID, 0, len(nodes))
  for _, id := range nodes {
    if inDegree[id] == 0 {
      ready = append(ready, id)
    }
  }

  ordered := make([]uuid.UUID, 0, len(nodes))
  for len(ready) > 0 {
    sort.SliceStable(ready, func(i, j int) bool { return less(ready[i], ready[j]) })
    current := ready[0]
    ready = ready[1:]
    ordered = append(ordered, current)

    for _, next := range dependents[current] {
      inDegree[next]--
      if inDegree[next] == 0 {
        ready = append(ready, next)
      }
    }
  }

  if len(ordered) != len(nodes) {
    return nil, apierr.CycleDetected("dependency cycle prevents ordering %d of %d skills", len(nodes)-len(ordered), len(nodes))
  }
  return ordered, nil
}
