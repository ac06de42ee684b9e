package models

import (
  "gorm.io/datatypes"
  "time"
)

type Snapshot struct {
  ID        string            `gorm:"size:20;primaryKey"`
  Kind      string            `gorm:"size:20;not null;index:idx_hltv_snapshots,priority:1"`
  Params    datatypes.JSONMap `gorm:"not null"`
  Data      datatypes.JSON    `gorm:"not null"`
  Hash      string            `gorm:"size:40;not null"`
  Timestamp int64             `gorm:"not null;index:idx_hltv_snapshots,priority:2"`
  CreatedAt time.Time         `gorm:"not null"`
  UpdatedAt time.Time         `gorm:"not null"`
}

func (m *Snapshot) TableName() string {
  return "hltv_snapshots"
}
