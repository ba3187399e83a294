package services

import (
  "context"
  "testing"
  "github.com/google/uuid"
  "github.com/yungbote/skillpath-backend/internal/apierr"
)

func TestCreateRoleValidatesName(t *testing.T) {
  f := newFixture(t)
  _, err := f.roleService().CreateRole(context.Background(), "   ")
  if !apierr.IsValidation(err) {
    t.Fatalf("want validation error, got %v", err)
  }
}

func TestCreateRoleIsIdempotentByName(t *testing.T) {
  f := newFixture(t)
  ctx := context.Background()

  first, err := f.roleService().CreateRole(ctx, "Backend Engineer")
  if err != nil {
    t.Fatalf("first create: %v", err)
  }
  second, err := f.roleService().CreateRole(ctx, "Backend Engineer")
  if err != nil {
    t.Fatalf("second create: %v", err)
  }
  if first.ID != second.ID {
    t.Fatalf("role ids differ: %s vs %s", first.ID, second.ID)
  }
}

func TestAssignSkillValidatesWeight(t *testing.T) {
  f := newFixture(t)
  ctx := context.Background()
  role := f.createRole(t, "Analyst", nil)
  skill := f.createSkill(t, "SQL")

  _, err := f.roleService().AssignSkill(ctx, role.ID, skill.ID, 0)
  if !apierr.IsValidation(err) {
    t.Fatalf("want validation error, got %v", err)
  }
}

func TestAssignSkillUnknownRoleOrSkill(t *testing.T) {
  f := newFixture(t)
  ctx := context.Background()
  role := f.createRole(t, "Analyst", nil)
  skill := f.createSkill(t, "SQL")

  if _, err := f.roleService().AssignSkill(ctx, uuid.New(), skill.ID, 5); !apierr.IsNotFound(err) {
    t.Fatalf("unknown role: want not found, got %v", err)
  }
  if _, err := f.roleService().AssignSkill(ctx, role.ID, uuid.New(), 5); !apierr.IsNotFound(err) {
    t.Fatalf("unknown skill: want not found, got %v", err)
  }
}

func TestAssignSkillOverwritesWeight(t *testing.T) {
  f := newFixture(t)
  ctx := context.Background()
  role := f.createRole(t, "Analyst", nil)
  skill := f.createSkill(t, "SQL")

  if _, err := f.roleService().AssignSkill(ctx, role.ID, skill.ID, 5); err != nil {
    t.Fatalf("first assign: %v", err)
  }
  if _, err := f.roleService().AssignSkill(ctx, role.ID, skill.ID, 9); err != nil {
    t.Fatalf("second assign: %v", err)
  }

  requirements, err := f.roleRepo.GetRoleSkills(ctx, nil, role.ID)
  if err != nil {
    t.Fatalf("role skills: %v", err)
  }
  if len(requirements) != 1 {
    t.Fatalf("requirements: want=1 got=%d", len(requirements))
  }
  if requirements[0].Weight != 9 {
    t.Fatalf("weight: want=9 got=%v", requirements[0].Weight)
  }
}
