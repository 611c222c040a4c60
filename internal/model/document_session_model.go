package model

import (
	"time"

	"gorm.io/datatypes"
)

// DocumentSession persists one serialized document tree per session id.
// The tree column holds the full JSON snapshot; every write overwrites it
// (durable write-through, no buffering).
type DocumentSession struct {
	SessionID string         `gorm:"type:text;primaryKey"`
	Tree      datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

func (DocumentSession) TableName() string {
	return "document_sessions"
}
