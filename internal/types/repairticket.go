package types

import (
  "time"

  "github.com/google/uuid"
  "gorm.io/gorm"
)

// Kanban columns for the repair workflow.
const (
  TicketStatusBacklog    = "backlog"
  TicketStatusDiagnosing = "diagnosing"
  TicketStatusRepairing  = "repairing"
  TicketStatusTesting    = "testing"
  TicketStatusDone       = "done"
)

type RepairTicket struct {
  ID            uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  UserID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
  User          *User           `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
  ClientID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"client_id"`
  Client        *Client         `gorm:"constraint:OnDelete:CASCADE;foreignKey:ClientID;references:ID" json:"client,omitempty"`
  DeviceCategory string         `gorm:"column:device_category;not null" json:"device_category"`
  DeviceBrand   string          `gorm:"column:device_brand" json:"device_brand"`
  DeviceModel   string          `gorm:"column:device_model" json:"device_model"`
  Issue         string          `gorm:"column:issue;not null" json:"issue"`
  Status        string          `gorm:"column:status;not null;default:backlog;index" json:"status"`
  Position      int             `gorm:"column:position;not null;default:0" json:"position"`
  QuoteCents    int64           `gorm:"column:quote_cents;not null;default:0" json:"quote_cents"`
  CreatedAt     time.Time       `gorm:"not null;default:now()" json:"created_at"`
  UpdatedAt     time.Time       `gorm:"not null;default:now()" json:"updated_at"`
  DeletedAt     gorm.DeletedAt  `gorm:"index" json:"deleted_at,omitempty"`
}

func (RepairTicket) TableName() string { return "repair_ticket" }

func IsValidTicketStatus(status string) bool {
  switch status {
  case TicketStatusBacklog, TicketStatusDiagnosing, TicketStatusRepairing, TicketStatusTesting, TicketStatusDone:
    return true
  }
  return false
}
