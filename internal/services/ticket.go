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

type TicketService interface {
  CreateTicket(ctx context.Context, ticket *types.RepairTicket) (*types.RepairTicket, error)
  GetTicket(ctx context.Context, ticketID uuid.UUID) (*types.RepairTicket, error)
  ListTickets(ctx context.Context, status string) ([]*types.RepairTicket, error)
  UpdateTicket(ctx context.Context, ticketID uuid.UUID, fields map[string]any) (*types.RepairTicket, error)
  MoveTicket(ctx context.Context, ticketID uuid.UUID, status string, position int) (*types.RepairTicket, error)
  DeleteTicket(ctx context.Context, ticketID uuid.UUID) error
}

type ticketService struct {
  db         *gorm.DB
  log        *logger.Logger
  ticketRepo repos.RepairTicketRepo
  clientRepo repos.ClientRepo
}

func NewTicketService(db *gorm.DB, baseLog *logger.Logger, ticketRepo repos.RepairTicketRepo, clientRepo repos.ClientRepo) TicketService {
  return &ticketService{
    db:         db,
    log:        baseLog.With("service", "TicketService"),
    ticketRepo: ticketRepo,
    clientRepo: clientRepo,
  }
}

func (ts *ticketService) CreateTicket(ctx context.Context, ticket *types.RepairTicket) (*types.RepairTicket, error) {
  userID, err := currentUserID(ctx)
  if err != nil {
    return nil, err
  }
  ticket.DeviceCategory = normalization.TrimInputString(ticket.DeviceCategory)
  ticket.DeviceBrand = normalization.TrimInputString(ticket.DeviceBrand)
  ticket.DeviceModel = normalization.TrimInputString(ticket.DeviceModel)
  ticket.Issue = normalization.TrimInputString(ticket.Issue)
  if ticket.DeviceCategory == "" {
    return nil, fmt.Errorf("device category is required")
  }
  if ticket.Issue == "" {
    return nil, fmt.Errorf("issue description is required")
  }
  if ticket.ClientID == uuid.Nil {
    return nil, fmt.Errorf("client id is required")
  }
  clients, cErr := ts.clientRepo.GetByIDs(ctx, nil, []uuid.UUID{ticket.ClientID})
  if cErr != nil {
    return nil, fmt.Errorf("failed to verify client: %w", cErr)
  }
  if len(clients) == 0 || clients[0].UserID != userID {
    return nil, fmt.Errorf("client not found")
  }
  if ticket.Status == "" {
    ticket.Status = types.TicketStatusBacklog
  }
  if !types.IsValidTicketStatus(ticket.Status) {
    return nil, fmt.Errorf("invalid ticket status %q", ticket.Status)
  }
  ticket.ID = uuid.New()
  ticket.UserID = userID
  if _, cErr := ts.ticketRepo.Create(ctx, nil, []*types.RepairTicket{ticket}); cErr != nil {
    return nil, fmt.Errorf("failed to create ticket: %w", cErr)
  }
  return ticket, nil
}

func (ts *ticketService) GetTicket(ctx context.Context, ticketID uuid.UUID) (*types.RepairTicket, error) {
  userID, err := currentUserID(ctx)
  if err != nil {
    return nil, err
  }
  tickets, gErr := ts.ticketRepo.GetByIDs(ctx, nil, []uuid.UUID{ticketID})
  if gErr != nil {
    return nil, fmt.Errorf("failed to load ticket: %w", gErr)
  }
  if len(tickets) == 0 || tickets[0].UserID != userID {
    return nil, fmt.Errorf("ticket not found")
  }
  return tickets[0], nil
}

func (ts *ticketService) ListTickets(ctx context.Context, status string) ([]*types.RepairTicket, error) {
  userID, err := currentUserID(ctx)
  if err != nil {
    return nil, err
  }
  if status == "" {
    tickets, lErr := ts.ticketRepo.ListByUserID(ctx, nil, userID)
    if lErr != nil {
      return nil, fmt.Errorf("failed to list tickets: %w", lErr)
    }
    return tickets, nil
  }
  if !types.IsValidTicketStatus(status) {
    return nil, fmt.Errorf("invalid ticket status %q", status)
  }
  tickets, lErr := ts.ticketRepo.ListByUserIDAndStatus(ctx, nil, userID, status)
  if lErr != nil {
    return nil, fmt.Errorf("failed to list tickets: %w", lErr)
  }
  return tickets, nil
}

var ticketUpdatableFields = map[string]bool{
  "device_category": true,
  "device_brand":    true,
  "device_model":    true,
  "issue":           true,
  "quote_cents":     true,
}

func (ts *ticketService) UpdateTicket(ctx context.Context, ticketID uuid.UUID, fields map[string]any) (*types.RepairTicket, error) {
  if _, err := ts.GetTicket(ctx, ticketID); err != nil {
    return nil, err
  }
  filtered := make(map[string]any, len(fields))
  for key, value := range fields {
    column := strings.ToLower(key)
    if !ticketUpdatableFields[column] {
      continue
    }
    if s, ok := value.(string); ok {
      value = normalization.TrimInputString(s)
    }
    filtered[column] = value
  }
  if len(filtered) == 0 {
    return ts.GetTicket(ctx, ticketID)
  }
  if uErr := ts.ticketRepo.Update(ctx, nil, ticketID, filtered); uErr != nil {
    return nil, fmt.Errorf("failed to update ticket: %w", uErr)
  }
  return ts.GetTicket(ctx, ticketID)
}

func (ts *ticketService) MoveTicket(ctx context.Context, ticketID uuid.UUID, status string, position int) (*types.RepairTicket, error) {
  if _, err := ts.GetTicket(ctx, ticketID); err != nil {
    return nil, err
  }
  if !types.IsValidTicketStatus(status) {
    return nil, fmt.Errorf("invalid ticket status %q", status)
  }
  if position < 0 {
    position = 0
  }
  if uErr := ts.ticketRepo.Update(ctx, nil, ticketID, map[string]any{
    "status":   status,
    "position": position,
  }); uErr != nil {
    return nil, fmt.Errorf("failed to move ticket: %w", uErr)
  }
  return ts.GetTicket(ctx, ticketID)
}

func (ts *ticketService) DeleteTicket(ctx context.Context, ticketID uuid.UUID) error {
  if _, err := ts.GetTicket(ctx, ticketID); err != nil {
    return err
  }
  if dErr := ts.ticketRepo.SoftDeleteByIDs(ctx, nil, []uuid.UUID{ticketID}); dErr != nil {
    return fmt.Errorf("failed to delete ticket: %w", dErr)
  }
  return nil
}
