package services

import (
  "context"
  "strings"
  "gorm.io/gorm"
  "github.com/yungbote/skillpath-backend/internal/apierr"
  "github.com/yungbote/skillpath-backend/internal/logger"
  "github.com/yungbote/skillpath-backend/internal/repos"
  "github.com/yungbote/skillpath-backend/internal/types"
)

type UserService interface {
  CreateUser(ctx context.Context, email, name string) (*types.User, error)
}

type userService struct {
  db       *gorm.DB
  log      *logger.Logger
  userRepo repos.UserRepo
}

func NewUserService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo) UserService {
  serviceLog := log.With("service", "UserService")
  return &userService{db: db, log: serviceLog, userRepo: userRepo}
}

func (us *userService) CreateUser(ctx context.Context, email, name string) (*types.User, error) {
  email = strings.TrimSpace(strings.ToLower(email))
  if email == "" {
    return nil, apierr.Validation("email must not be empty")
  }

  user := &types.User{Email: email, Name: strings.TrimSpace(name)}
  created, err := us.userRepo.Create(ctx, nil, []*types.User{user})
  if err != nil {
    if strings.Contains(strings.ToLower(err.Error()), "unique") || strings.Contains(strings.ToLower(err.Error()), "duplicate") {
      return nil, apierr.Conflict("user with email %q already exists", email)
    }
    return nil, err
  }
  return created[0], nil
}
