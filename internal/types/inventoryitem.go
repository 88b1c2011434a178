package types

import (
  "time"

  "github.com/google/uuid"
  "gorm.io/gorm"
)

type InventoryItem struct {
  ID              uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  UserID          uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
  User            *User           `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
  SKU             string          `gorm:"column:sku;not null;index" json:"sku"`
  Name            string          `gorm:"column:name;not null" json:"name"`
  Quantity        int             `gorm:"column:quantity;not null;default:0" json:"quantity"`
  UnitPriceCents  int64           `gorm:"column:unit_price_cents;not null;default:0" json:"unit_price_cents"`
  CreatedAt       time.Time       `gorm:"not null;default:now()" json:"created_at"`
  UpdatedAt       time.Time       `gorm:"not null;default:now()" json:"updated_at"`
  DeletedAt       gorm.DeletedAt  `gorm:"index" json:"deleted_at,omitempty"`
}

func (InventoryItem) TableName() string { return "inventory_item" }
