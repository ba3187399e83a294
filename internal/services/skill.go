package services

import (
  "context"
  "fmt"
  "strings"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/yungbote/skillpath-backend/internal/apierr"
  "github.com/yungbote/skillpath-backend/internal/logger"
  "github.com/yungbote/skillpath-backend/internal/repos"
  "github.com/yungbote/skillpath-backend/internal/types"
)

type SkillService interface {
  CreateSkill(ctx context.Context, name string, hasNoDependencies bool, dependencyIDs []uuid.UUID) (*types.Skill, error)
}

type skillService struct {
  db        *gorm.DB
  log       *logger.Logger
  skillRepo repos.SkillRepo
}

func NewSkillService(db *gorm.DB, log *logger.Logger, skillRepo repos.SkillRepo) SkillService {
  serviceLog := log.With("service", "SkillService")
  return &skillService{db: db, log: serviceLog, skillRepo: skillRepo}
}

// CreateSkill inserts a skill and its depends-on edges as one atomic
// unit. A skill flagged hasNoDependencies must carry zero edges and a
// skill with edges must not carry the flag; both directions are
// rejected up front. Re-declaring an existing name is absorbed as an
// upsert: the declared edges attach to the existing skill. Every edge
// is cycle-checked against the persisted graph before anything is
// committed.
func (ss *skillService) CreateSkill(ctx context.Context, name string, hasNoDependencies bool, dependencyIDs []uuid.UUID) (*types.Skill, error) {
  name = strings.TrimSpace(name)
  if name == "" {
    return nil, apierr.Validation("skill name must not be empty")
  }

  uniqueDeps := make([]uuid.UUID, 0, len(dependencyIDs))
  seen := make(map[uuid.UUID]struct{}, len(dependencyIDs))
  for _, id := range dependencyIDs {
    if _, dup := seen[id]; dup {
      continue
    }
    seen[id] = struct{}{}
    uniqueDeps = append(uniqueDeps, id)
  }

  if hasNoDependencies && len(uniqueDeps) > 0 {
    return nil, apierr.Validation("skill marked hasNoDependencies cannot declare dependencies")
  }
  if !hasNoDependencies && len(uniqueDeps) == 0 {
    return nil, apierr.Validation("skill must declare dependencies or be marked hasNoDependencies")
  }

  var created *types.Skill
  err := ss.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    var skill *types.Skill
    existing, err := ss.skillRepo.GetByNames(ctx, tx, []string{name})
    if err != nil {
      return err
    }
    if len(existing) > 0 {
      skill = existing[0]
      if hasNoDependencies {
        outgoing, err := ss.skillRepo.GetDependenciesOf(ctx, tx, []uuid.UUID{skill.ID})
        if err != nil {
          return err
        }
        if len(outgoing) > 0 {
          return apierr.Validation("skill %q has dependencies and cannot be marked hasNoDependencies", name)
        }
      }
      if skill.HasNoDependencies != hasNoDependencies {
        if err := ss.skillRepo.SetHasNoDependencies(ctx, tx, skill.ID, hasNoDependencies); err != nil {
          return err
        }
        skill.HasNoDependencies = hasNoDependencies
      }
    } else {
      skill = &types.Skill{Name: name, HasNoDependencies: hasNoDependencies}
      if _, err := ss.skillRepo.Create(ctx, tx, []*types.Skill{skill}); err != nil {
        return err
      }
    }

    if len(uniqueDeps) == 0 {
      created = skill
      return nil
    }

    found, err := ss.skillRepo.GetByIDs(ctx, tx, uniqueDeps)
    if err != nil {
      return err
    }
    foundIDs := make(map[uuid.UUID]struct{}, len(found))
    for _, dep := range found {
      foundIDs[dep.ID] = struct{}{}
    }
    var missing []string
    for _, id := range uniqueDeps {
      if id == skill.ID {
        return apierr.Validation("skill cannot depend on itself")
      }
      if _, ok := foundIDs[id]; !ok {
        missing = append(missing, id.String())
      }
    }
    if len(missing) > 0 {
      return apierr.Validation("dependency skills not found: %s", strings.Join(missing, ", "))
    }

    for _, depID := range uniqueDeps {
      cycle, err := ss.reaches(ctx, tx, depID, skill.ID)
      if err != nil {
        return err
      }
      if cycle {
        return apierr.CycleDetected("adding %q would create a circular dependency through %s", name, depID)
      }
    }

    edges := make([]*types.SkillDependency, 0, len(uniqueDeps))
    for _, depID := range uniqueDeps {
      edges = append(edges, &types.SkillDependency{SkillID: skill.ID, DependsOnSkillID: depID})
    }
    if _, err := ss.skillRepo.CreateDependencies(ctx, tx, edges); err != nil {
      return err
    }

    created = skill
    return nil
  })
  if err != nil {
    return nil, err
  }
  return created, nil
}

// reaches walks the persisted depends-on edges from start with an
// explicit stack; true when target is reachable. The graph is
// operator-curated but unbounded in principle, so no recursion.
func (ss *skillService) reaches(ctx context.Context, tx *gorm.DB, start, target uuid.UUID) (bool, error) {
  if start == target {
    return true, nil
  }
  visited := map[uuid.UUID]struct{}{start: {}}
  stack := []uuid.UUID{start}
  for len(stack) > 0 {
    current := stack[len(stack)-1]
    stack = stack[:len(stack)-1]

    edges, err := ss.skillRepo.GetDependenciesOf(ctx, tx, []uuid.UUID{current})
    if err != nil {
      return false, fmt.Errorf("walking dependencies of %s: %w", current, err)
    }
    for _, edge := range edges {
      next := edge.DependsOnSkillID
      if next == target {
        return true, nil
      }
      if _, ok := visited[next]; ok {
        continue
      }
      visited[next] = struct{}{}
      stack = append(stack, next)
    }
  }
  return false, nil
}
