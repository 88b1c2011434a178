package types

import (
  "time"

  "github.com/google/uuid"
  "gorm.io/gorm"
)

type Client struct {
  ID          uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
  User        *User           `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
  FirstName   string          `gorm:"column:first_name;not null" json:"first_name"`
  LastName    string          `gorm:"column:last_name" json:"last_name"`
  Email       string          `gorm:"column:email;index" json:"email"`
  Phone       string          `gorm:"column:phone" json:"phone"`
  Notes       string          `gorm:"column:notes" json:"notes"`
  CreatedAt   time.Time       `gorm:"not null;default:now()" json:"created_at"`
  UpdatedAt   time.Time       `gorm:"not null;default:now()" json:"updated_at"`
  DeletedAt   gorm.DeletedAt  `gorm:"index" json:"deleted_at,omitempty"`
}

func (Client) TableName() string { return "client" }
