package repos

import (
  "context"
  "errors"
  "time"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/NovusX-Dev/RepairBeam/internal/logger"
  "github.com/NovusX-Dev/RepairBeam/internal/types"
)

// AutoGeneratedListRepo is the persistence contract of the list generation
// service. Get methods return (nil, nil) when no row matches so callers can
// distinguish "absent" from a store failure.
type AutoGeneratedListRepo interface {
  GetBrandListByCategory(ctx context.Context, tx *gorm.DB, category string) (*types.AutoGeneratedList, error)
  GetByListType(ctx context.Context, tx *gorm.DB, listType string) (*types.AutoGeneratedList, error)
  Create(ctx context.Context, tx *gorm.DB, lists []*types.AutoGeneratedList) ([]*types.AutoGeneratedList, error)
  Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, fields map[string]any) error
  GetDueForRefresh(ctx context.Context, tx *gorm.DB, now time.Time, listTypePrefix string) ([]*types.AutoGeneratedList, error)
}

type autoGeneratedListRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewAutoGeneratedListRepo(db *gorm.DB, baseLog *logger.Logger) AutoGeneratedListRepo {
  repoLog := baseLog.With("repo", "AutoGeneratedListRepo")
  return &autoGeneratedListRepo{db: db, log: repoLog}
}

func (r *autoGeneratedListRepo) GetBrandListByCategory(ctx context.Context, tx *gorm.DB, category string) (*types.AutoGeneratedList, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var result types.AutoGeneratedList
  err := transaction.WithContext(ctx).
    Where("list_type = ?", types.BrandListType(category)).
    First(&result).Error
  if errors.Is(err, gorm.ErrRecordNotFound) {
    return nil, nil
  }
  if err != nil {
    return nil, err
  }
  return &result, nil
}

func (r *autoGeneratedListRepo) GetByListType(ctx context.Context, tx *gorm.DB, listType string) (*types.AutoGeneratedList, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var result types.AutoGeneratedList
  err := transaction.WithContext(ctx).
    Where("list_type = ?", listType).
    First(&result).Error
  if errors.Is(err, gorm.ErrRecordNotFound) {
    return nil, nil
  }
  if err != nil {
    return nil, err
  }
  return &result, nil
}

func (r *autoGeneratedListRepo) Create(ctx context.Context, tx *gorm.DB, lists []*types.AutoGeneratedList) ([]*types.AutoGeneratedList, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if len(lists) == 0 {
    return []*types.AutoGeneratedList{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&lists).Error; err != nil {
    return nil, err
  }

  return lists, nil
}

func (r *autoGeneratedListRepo) Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, fields map[string]any) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if len(fields) == 0 {
    return nil
  }
  fields["updated_at"] = time.Now()

  return transaction.WithContext(ctx).
    Model(&types.AutoGeneratedList{}).
    Where("id = ?", id).
    Updates(fields).Error
}

func (r *autoGeneratedListRepo) GetDueForRefresh(ctx context.Context, tx *gorm.DB, now time.Time, listTypePrefix string) ([]*types.AutoGeneratedList, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.AutoGeneratedList
  query := transaction.WithContext(ctx).
    Where("is_active = ?", true).
    Where("next_refresh_at <= ?", now)
  if listTypePrefix != "" {
    query = query.Where("list_type LIKE ?", listTypePrefix+"%")
  }
  if err := query.Order("next_refresh_at asc").Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}
