package types

import (
  "encoding/json"
  "fmt"
  "time"

  "github.com/google/uuid"
  "gorm.io/datatypes"
)

// Refresh cadences for cached AI-generated lists.
const (
  RefreshIntervalWeekly    = "weekly"
  RefreshIntervalBiweekly  = "biweekly"
  RefreshIntervalMonthly   = "monthly"
  RefreshIntervalQuarterly = "quarterly"
)

// AutoGeneratedList is one cached AI-produced catalog: either the brand
// list of a device category, or the model list of one (category, brand)
// pair. Exclusion of a brand is modeled by membership in ExcludedItems,
// never by row deletion.
type AutoGeneratedList struct {
  ID              uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  ListType        string          `gorm:"column:list_type;uniqueIndex;not null" json:"list_type"`
  Category        string          `gorm:"column:category;not null;index" json:"category"`
  Brand           *string         `gorm:"column:brand" json:"brand,omitempty"`
  Items           datatypes.JSON  `gorm:"type:jsonb;column:items" json:"items"`
  ExcludedItems   datatypes.JSON  `gorm:"type:jsonb;column:excluded_items" json:"excluded_items"`
  RefreshInterval string          `gorm:"column:refresh_interval;not null;default:quarterly" json:"refresh_interval"`
  LastGeneratedAt time.Time       `gorm:"column:last_generated_at" json:"last_generated_at"`
  NextRefreshAt   time.Time       `gorm:"column:next_refresh_at;index" json:"next_refresh_at"`
  IsActive        bool            `gorm:"column:is_active;not null;default:true" json:"is_active"`
  CreatedAt       time.Time       `gorm:"not null;default:now()" json:"created_at"`
  UpdatedAt       time.Time       `gorm:"not null;default:now()" json:"updated_at"`
}

func (AutoGeneratedList) TableName() string { return "auto_generated_list" }

// BrandListType returns the ListType key of a category's brand list.
func BrandListType(category string) string {
  return fmt.Sprintf("brands:%s", category)
}

// ModelListType returns the ListType key of a (category, brand) model list.
func ModelListType(category, brand string) string {
  return fmt.Sprintf("models:%s:%s", category, brand)
}

func (l *AutoGeneratedList) GetItems() []string {
  return decodeStringList(l.Items)
}

func (l *AutoGeneratedList) SetItems(items []string) {
  l.Items = encodeStringList(items)
}

func (l *AutoGeneratedList) GetExcludedItems() []string {
  return decodeStringList(l.ExcludedItems)
}

func (l *AutoGeneratedList) SetExcludedItems(items []string) {
  l.ExcludedItems = encodeStringList(items)
}

// NextRefreshAfter computes when a list generated at the given time falls
// due. Unknown intervals get the quarterly cadence.
func NextRefreshAfter(generatedAt time.Time, interval string) time.Time {
  switch interval {
  case RefreshIntervalWeekly:
    return generatedAt.AddDate(0, 0, 7)
  case RefreshIntervalBiweekly:
    return generatedAt.AddDate(0, 0, 14)
  case RefreshIntervalMonthly:
    return generatedAt.AddDate(0, 1, 0)
  default:
    return generatedAt.AddDate(0, 3, 0)
  }
}

func IsValidRefreshInterval(interval string) bool {
  switch interval {
  case RefreshIntervalWeekly, RefreshIntervalBiweekly, RefreshIntervalMonthly, RefreshIntervalQuarterly:
    return true
  }
  return false
}

// JSONStringList encodes items for use in partial-update field maps.
func JSONStringList(items []string) datatypes.JSON {
  return encodeStringList(items)
}

func encodeStringList(items []string) datatypes.JSON {
  if items == nil {
    items = []string{}
  }
  raw, err := json.Marshal(items)
  if err != nil {
    return datatypes.JSON([]byte("[]"))
  }
  return datatypes.JSON(raw)
}

func decodeStringList(raw datatypes.JSON) []string {
  if len(raw) == 0 {
    return []string{}
  }
  var items []string
  if err := json.Unmarshal(raw, &items); err != nil {
    return []string{}
  }
  if items == nil {
    return []string{}
  }
  return items
}
