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

type ClientService interface {
  CreateClient(ctx context.Context, client *types.Client) (*types.Client, error)
  GetClient(ctx context.Context, clientID uuid.UUID) (*types.Client, error)
  ListClients(ctx context.Context) ([]*types.Client, error)
  UpdateClient(ctx context.Context, clientID uuid.UUID, fields map[string]any) (*types.Client, error)
  DeleteClient(ctx context.Context, clientID uuid.UUID) error
}

type clientService struct {
  db         *gorm.DB
  log        *logger.Logger
  clientRepo repos.ClientRepo
}

func NewClientService(db *gorm.DB, baseLog *logger.Logger, clientRepo repos.ClientRepo) ClientService {
  return &clientService{
    db:         db,
    log:        baseLog.With("service", "ClientService"),
    clientRepo: clientRepo,
  }
}

func (cs *clientService) CreateClient(ctx context.Context, client *types.Client) (*types.Client, error) {
  userID, err := currentUserID(ctx)
  if err != nil {
    return nil, err
  }
  client.FirstName = normalization.TrimInputString(client.FirstName)
  client.LastName = normalization.TrimInputString(client.LastName)
  client.Email = normalization.ParseInputString(client.Email)
  client.Phone = normalization.TrimInputString(client.Phone)
  if client.FirstName == "" {
    return nil, fmt.Errorf("client first name is required")
  }
  client.ID = uuid.New()
  client.UserID = userID
  if _, cErr := cs.clientRepo.Create(ctx, nil, []*types.Client{client}); cErr != nil {
    return nil, fmt.Errorf("failed to create client: %w", cErr)
  }
  return client, nil
}

func (cs *clientService) GetClient(ctx context.Context, clientID uuid.UUID) (*types.Client, error) {
  userID, err := currentUserID(ctx)
  if err != nil {
    return nil, err
  }
  clients, gErr := cs.clientRepo.GetByIDs(ctx, nil, []uuid.UUID{clientID})
  if gErr != nil {
    return nil, fmt.Errorf("failed to load client: %w", gErr)
  }
  if len(clients) == 0 || clients[0].UserID != userID {
    return nil, fmt.Errorf("client not found")
  }
  return clients[0], nil
}

func (cs *clientService) ListClients(ctx context.Context) ([]*types.Client, error) {
  userID, err := currentUserID(ctx)
  if err != nil {
    return nil, err
  }
  clients, lErr := cs.clientRepo.ListByUserID(ctx, nil, userID)
  if lErr != nil {
    return nil, fmt.Errorf("failed to list clients: %w", lErr)
  }
  return clients, nil
}

var clientUpdatableFields = map[string]bool{
  "first_name": true,
  "last_name":  true,
  "email":      true,
  "phone":      true,
  "notes":      true,
}

func (cs *clientService) UpdateClient(ctx context.Context, clientID uuid.UUID, fields map[string]any) (*types.Client, error) {
  if _, err := cs.GetClient(ctx, clientID); err != nil {
    return nil, err
  }
  filtered := make(map[string]any, len(fields))
  for key, value := range fields {
    column := strings.ToLower(key)
    if !clientUpdatableFields[column] {
      continue
    }
    if s, ok := value.(string); ok {
      value = normalization.TrimInputString(s)
    }
    filtered[column] = value
  }
  if len(filtered) == 0 {
    return cs.GetClient(ctx, clientID)
  }
  if uErr := cs.clientRepo.Update(ctx, nil, clientID, filtered); uErr != nil {
    return nil, fmt.Errorf("failed to update client: %w", uErr)
  }
  return cs.GetClient(ctx, clientID)
}

func (cs *clientService) DeleteClient(ctx context.Context, clientID uuid.UUID) error {
  if _, err := cs.GetClient(ctx, clientID); err != nil {
    return err
  }
  if dErr := cs.clientRepo.SoftDeleteByIDs(ctx, nil, []uuid.UUID{clientID}); dErr != nil {
    return fmt.Errorf("failed to delete client: %w", dErr)
  }
  return nil
}
