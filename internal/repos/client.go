package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/NovusX-Dev/RepairBeam/internal/logger"
  "github.com/NovusX-Dev/RepairBeam/internal/types"
)

type ClientRepo interface {
  Create(ctx context.Context, tx *gorm.DB, clients []*types.Client) ([]*types.Client, error)
  GetByIDs(ctx context.Context, tx *gorm.DB, clientIDs []uuid.UUID) ([]*types.Client, error)
  ListByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Client, error)
  Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, fields map[string]any) error
  SoftDeleteByIDs(ctx context.Context, tx *gorm.DB, clientIDs []uuid.UUID) error
}

type clientRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewClientRepo(db *gorm.DB, baseLog *logger.Logger) ClientRepo {
  repoLog := baseLog.With("repo", "ClientRepo")
  return &clientRepo{db: db, log: repoLog}
}

func (cr *clientRepo) Create(ctx context.Context, tx *gorm.DB, clients []*types.Client) ([]*types.Client, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  if len(clients) == 0 {
    return []*types.Client{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&clients).Error; err != nil {
    return nil, err
  }

  return clients, nil
}

func (cr *clientRepo) GetByIDs(ctx context.Context, tx *gorm.DB, clientIDs []uuid.UUID) ([]*types.Client, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  var results []*types.Client

  if len(clientIDs) == 0 {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Where("id IN ?", clientIDs).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (cr *clientRepo) ListByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Client, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  var results []*types.Client

  if err := transaction.WithContext(ctx).
    Where("user_id = ?", userID).
    Order("created_at desc").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (cr *clientRepo) Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, fields map[string]any) error {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  if len(fields) == 0 {
    return nil
  }

  return transaction.WithContext(ctx).
    Model(&types.Client{}).
    Where("id = ?", id).
    Updates(fields).Error
}

func (cr *clientRepo) SoftDeleteByIDs(ctx context.Context, tx *gorm.DB, clientIDs []uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  if len(clientIDs) == 0 {
    return nil
  }

  return transaction.WithContext(ctx).
    Where("id IN ?", clientIDs).
    Delete(&types.Client{}).Error
}
