package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/NovusX-Dev/RepairBeam/internal/logger"
  "github.com/NovusX-Dev/RepairBeam/internal/types"
)

type InventoryItemRepo interface {
  Create(ctx context.Context, tx *gorm.DB, items []*types.InventoryItem) ([]*types.InventoryItem, error)
  GetByIDs(ctx context.Context, tx *gorm.DB, itemIDs []uuid.UUID) ([]*types.InventoryItem, error)
  ListByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.InventoryItem, error)
  Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, fields map[string]any) error
  SoftDeleteByIDs(ctx context.Context, tx *gorm.DB, itemIDs []uuid.UUID) error
}

type inventoryItemRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewInventoryItemRepo(db *gorm.DB, baseLog *logger.Logger) InventoryItemRepo {
  repoLog := baseLog.With("repo", "InventoryItemRepo")
  return &inventoryItemRepo{db: db, log: repoLog}
}

func (ir *inventoryItemRepo) Create(ctx context.Context, tx *gorm.DB, items []*types.InventoryItem) ([]*types.InventoryItem, error) {
  transaction := tx
  if transaction == nil {
    transaction = ir.db
  }

  if len(items) == 0 {
    return []*types.InventoryItem{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&items).Error; err != nil {
    return nil, err
  }

  return items, nil
}

func (ir *inventoryItemRepo) GetByIDs(ctx context.Context, tx *gorm.DB, itemIDs []uuid.UUID) ([]*types.InventoryItem, error) {
  transaction := tx
  if transaction == nil {
    transaction = ir.db
  }

  var results []*types.InventoryItem

  if len(itemIDs) == 0 {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Where("id IN ?", itemIDs).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (ir *inventoryItemRepo) ListByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.InventoryItem, error) {
  transaction := tx
  if transaction == nil {
    transaction = ir.db
  }

  var results []*types.InventoryItem

  if err := transaction.WithContext(ctx).
    Where("user_id = ?", userID).
    Order("name asc").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (ir *inventoryItemRepo) Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, fields map[string]any) error {
  transaction := tx
  if transaction == nil {
    transaction = ir.db
  }

  if len(fields) == 0 {
    return nil
  }

  return transaction.WithContext(ctx).
    Model(&types.InventoryItem{}).
    Where("id = ?", id).
    Updates(fields).Error
}

func (ir *inventoryItemRepo) SoftDeleteByIDs(ctx context.Context, tx *gorm.DB, itemIDs []uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = ir.db
  }

  if len(itemIDs) == 0 {
    return nil
  }

  return transaction.WithContext(ctx).
    Where("id IN ?", itemIDs).
    Delete(&types.InventoryItem{}).Error
}
