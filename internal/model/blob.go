package model

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// ── JSONB custom type ──

// JSONText holds a raw JSON document mapped to a PostgreSQL JSONB column.
type JSONText []byte

// Scan reads the JSONB column value.
func (j *JSONText) Scan(src interface{}) error {
	if src == nil {
		*j = nil
		return nil
	}
	switch v := src.(type) {
	case []byte:
		cp := make([]byte, len(v))
		copy(cp, v)
		*j = cp
	case string:
		*j = []byte(v)
	default:
		return fmt.Errorf("JSONText.Scan: unsupported type %T", src)
	}
	return nil
}

// Value serializes the document for the driver.
func (j JSONText) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, errors.New("JSONText.Value: empty document")
	}
	return []byte(j), nil
}

// ── planner blob storage ──

// Fixed blob keys for the persisted planner state. All three are sources of
// truth; the derived course-groups document is cached in Redis under its own
// key instead.
const (
	BlobKeyCourses    = "courses"
	BlobKeyVisibility = "group_visibility"
	BlobKeySavedViews = "saved_views"
)

// PlannerBlob is one keyed JSON document of planner state — planner_blobs.
type PlannerBlob struct {
	BlobKey   string    `gorm:"type:varchar(50);primaryKey"       json:"blob_key"`
	Data      JSONText  `gorm:"type:jsonb;not null"               json:"data"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the table name.
func (PlannerBlob) TableName() string { return "planner_blobs" }
