package db_models

import "github.com/google/uuid"

// Schedule stores the day-plan payload as an opaque JSON blob. Only the
// schedule service understands its internal shape; the itinerary format
// changes faster than the storage schema.
type Schedule struct {
	BaseModel
	WorkspaceID uuid.UUID `gorm:"type:uuid;index"`
	Schedule    string    `gorm:"type:text"`
}
