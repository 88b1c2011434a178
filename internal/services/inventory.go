package services

import (
  "context"
  "fmt"
  "strings"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/NovusX-Dev/RepairBeam/internal/logger"
  "github.com/NovusX-Dev/RepairBeam/internal/normalization"
  "github.com/NovusX-Dev/RepairBeam/internal/repos"
  "github.com/NovusX-Dev/RepairBeam/internal/types"
)

type InventoryService interface {
  CreateItem(ctx context.Context, item *types.InventoryItem) (*types.InventoryItem, error)
  GetItem(ctx context.Context, itemID uuid.UUID) (*types.InventoryItem, error)
  ListItems(ctx context.Context) ([]*types.InventoryItem, error)
  UpdateItem(ctx context.Context, itemID uuid.UUID, fields map[string]any) (*types.InventoryItem, error)
  AdjustQuantity(ctx context.Context, itemID uuid.UUID, delta int) (*types.InventoryItem, error)
  DeleteItem(ctx context.Context, itemID uuid.UUID) error
}

type inventoryService struct {
  db       *gorm.DB
  log      *logger.Logger
  itemRepo repos.InventoryItemRepo
}

func NewInventoryService(db *gorm.DB, baseLog *logger.Logger, itemRepo repos.InventoryItemRepo) InventoryService {
  return &inventoryService{
    db:       db,
    log:      baseLog.With("service", "InventoryService"),
    itemRepo: itemRepo,
  }
}

func (is *inventoryService) CreateItem(ctx context.Context, item *types.InventoryItem) (*types.InventoryItem, error) {
  userID, err := currentUserID(ctx)
  if err != nil {
    return nil, err
  }
  item.SKU = normalization.TrimInputString(item.SKU)
  item.Name = normalization.TrimInputString(item.Name)
  if item.SKU == "" {
    return nil, fmt.Errorf("sku is required")
  }
  if item.Name == "" {
    return nil, fmt.Errorf("item name is required")
  }
  if item.Quantity < 0 {
    return nil, fmt.Errorf("quantity cannot be negative")
  }
  item.ID = uuid.New()
  item.UserID = userID
  if _, cErr := is.itemRepo.Create(ctx, nil, []*types.InventoryItem{item}); cErr != nil {
    return nil, fmt.Errorf("failed to create inventory item: %w", cErr)
  }
  return item, nil
}

func (is *inventoryService) GetItem(ctx context.Context, itemID uuid.UUID) (*types.InventoryItem, error) {
  userID, err := currentUserID(ctx)
  if err != nil {
    return nil, err
  }
  items, gErr := is.itemRepo.GetByIDs(ctx, nil, []uuid.UUID{itemID})
  if gErr != nil {
    return nil, fmt.Errorf("failed to load inventory item: %w", gErr)
  }
  if len(items) == 0 || items[0].UserID != userID {
    return nil, fmt.Errorf("inventory item not found")
  }
  return items[0], nil
}

func (is *inventoryService) ListItems(ctx context.Context) ([]*types.InventoryItem, error) {
  userID, err := currentUserID(ctx)
  if err != nil {
    return nil, err
  }
  items, lErr := is.itemRepo.ListByUserID(ctx, nil, userID)
  if lErr != nil {
    return nil, fmt.Errorf("failed to list inventory items: %w", lErr)
  }
  return items, nil
}

var inventoryUpdatableFields = map[string]bool{
  "sku":              true,
  "name":             true,
  "quantity":         true,
  "unit_price_cents": true,
}

func (is *inventoryService) UpdateItem(ctx context.Context, itemID uuid.UUID, fields map[string]any) (*types.InventoryItem, error) {
  if _, err := is.GetItem(ctx, itemID); err != nil {
    return nil, err
  }
  filtered := make(map[string]any, len(fields))
  for key, value := range fields {
    column := strings.ToLower(key)
    if !inventoryUpdatableFields[column] {
      continue
    }
    if s, ok := value.(string); ok {
      value = normalization.TrimInputString(s)
    }
    filtered[column] = value
  }
  if len(filtered) == 0 {
    return is.GetItem(ctx, itemID)
  }
  if uErr := is.itemRepo.Update(ctx, nil, itemID, filtered); uErr != nil {
    return nil, fmt.Errorf("failed to update inventory item: %w", uErr)
  }
  return is.GetItem(ctx, itemID)
}

func (is *inventoryService) AdjustQuantity(ctx context.Context, itemID uuid.UUID, delta int) (*types.InventoryItem, error) {
  item, err := is.GetItem(ctx, itemID)
  if err != nil {
    return nil, err
  }
  next := item.Quantity + delta
  if next < 0 {
    return nil, fmt.Errorf("quantity cannot go below zero")
  }
  if uErr := is.itemRepo.Update(ctx, nil, itemID, map[string]any{"quantity": next}); uErr != nil {
    return nil, fmt.Errorf("failed to adjust quantity: %w", uErr)
  }
  item.Quantity = next
  return item, nil
}

func (is *inventoryService) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
  if _, err := is.GetItem(ctx, itemID); err != nil {
    return err
  }
  if dErr := is.itemRepo.SoftDeleteByIDs(ctx, nil, []uuid.UUID{itemID}); dErr != nil {
    return fmt.Errorf("failed to delete inventory item: %w", dErr)
  }
  return nil
}
