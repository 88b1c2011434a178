package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/NovusX-Dev/RepairBeam/internal/logger"
  "github.com/NovusX-Dev/RepairBeam/internal/types"
)

type RepairTicketRepo interface {
  Create(ctx context.Context, tx *gorm.DB, tickets []*types.RepairTicket) ([]*types.RepairTicket, error)
  GetByIDs(ctx context.Context, tx *gorm.DB, ticketIDs []uuid.UUID) ([]*types.RepairTicket, error)
  ListByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.RepairTicket, error)
  ListByUserIDAndStatus(ctx context.Context, tx *gorm.DB, userID uuid.UUID, status string) ([]*types.RepairTicket, error)
  Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, fields map[string]any) error
  SoftDeleteByIDs(ctx context.Context, tx *gorm.DB, ticketIDs []uuid.UUID) error
}

type repairTicketRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewRepairTicketRepo(db *gorm.DB, baseLog *logger.Logger) RepairTicketRepo {
  repoLog := baseLog.With("repo", "RepairTicketRepo")
  return &repairTicketRepo{db: db, log: repoLog}
}

func (rr *repairTicketRepo) Create(ctx context.Context, tx *gorm.DB, tickets []*types.RepairTicket) ([]*types.RepairTicket, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }

  if len(tickets) == 0 {
    return []*types.RepairTicket{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&tickets).Error; err != nil {
    return nil, err
  }

  return tickets, nil
}

func (rr *repairTicketRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ticketIDs []uuid.UUID) ([]*types.RepairTicket, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }

  var results []*types.RepairTicket

  if len(ticketIDs) == 0 {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Where("id IN ?", ticketIDs).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (rr *repairTicketRepo) ListByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.RepairTicket, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }

  var results []*types.RepairTicket

  if err := transaction.WithContext(ctx).
    Where("user_id = ?", userID).
    Order("status asc, position asc").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (rr *repairTicketRepo) ListByUserIDAndStatus(ctx context.Context, tx *gorm.DB, userID uuid.UUID, status string) ([]*types.RepairTicket, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }

  var results []*types.RepairTicket

  if err := transaction.WithContext(ctx).
    Where("user_id = ? AND status = ?", userID, status).
    Order("position asc").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (rr *repairTicketRepo) Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, fields map[string]any) error {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }

  if len(fields) == 0 {
    return nil
  }

  return transaction.WithContext(ctx).
    Model(&types.RepairTicket{}).
    Where("id = ?", id).
    Updates(fields).Error
}

func (rr *repairTicketRepo) SoftDeleteByIDs(ctx context.Context, tx *gorm.DB, ticketIDs []uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }

  if len(ticketIDs) == 0 {
    return nil
  }

  return transaction.WithContext(ctx).
    Where("id IN ?", ticketIDs).
    Delete(&types.RepairTicket{}).Error
}
