package services

import (
  "context"
  "fmt"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/NovusX-Dev/RepairBeam/internal/logger"
  "github.com/NovusX-Dev/RepairBeam/internal/normalization"
  "github.com/NovusX-Dev/RepairBeam/internal/repos"
  "github.com/NovusX-Dev/RepairBeam/internal/requestdata"
  "github.com/NovusX-Dev/RepairBeam/internal/types"
)

type UserService interface {
  GetMe(ctx context.Context) (*types.User, error)
  UpdateShopName(ctx context.Context, shopName string) (*types.User, error)
}

type userService struct {
  db       *gorm.DB
  log      *logger.Logger
  userRepo repos.UserRepo
}

func NewUserService(db *gorm.DB, baseLog *logger.Logger, userRepo repos.UserRepo) UserService {
  return &userService{
    db:       db,
    log:      baseLog.With("service", "UserService"),
    userRepo: userRepo,
  }
}

func currentUserID(ctx context.Context) (uuid.UUID, error) {
  rd := requestdata.GetRequestData(ctx)
  if rd == nil || rd.UserID == uuid.Nil {
    return uuid.Nil, fmt.Errorf("no authenticated user in context")
  }
  return rd.UserID, nil
}

func (us *userService) GetMe(ctx context.Context) (*types.User, error) {
  userID, err := currentUserID(ctx)
  if err != nil {
    return nil, err
  }
  users, uErr := us.userRepo.GetByIDs(ctx, nil, []uuid.UUID{userID})
  if uErr != nil {
    return nil, fmt.Errorf("failed to load user: %w", uErr)
  }
  if len(users) == 0 {
    return nil, fmt.Errorf("user not found")
  }
  return users[0], nil
}

func (us *userService) UpdateShopName(ctx context.Context, shopName string) (*types.User, error) {
  userID, err := currentUserID(ctx)
  if err != nil {
    return nil, err
  }
  shopName = normalization.TrimInputString(shopName)
  if shopName == "" {
    return nil, fmt.Errorf("shop name is required")
  }
  if uErr := us.db.WithContext(ctx).
    Model(&types.User{}).
    Where("id = ?", userID).
    Update("shop_name", shopName).Error; uErr != nil {
    return nil, fmt.Errorf("failed to update shop name: %w", uErr)
  }
  return us.GetMe(ctx)
}
