package models

import "time"

type ActivityAction string

const (
	ActivityActionCreate ActivityAction = "create"
)

// ActivityLog records what happened to an entity, with a JSON snapshot of the
// row as written. UserID is nil for anonymous operations (signup).
type ActivityLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserID *uint `json:"user_id"`

	// e.g. "user", "employee_profile", "business", "review"
	EntityType string `gorm:"size:50;index" json:"entity_type"`
	EntityID   uint   `gorm:"index" json:"entity_id"`

	Action      ActivityAction `gorm:"size:20" json:"action"`
	Description string         `gorm:"size:255" json:"description"`

	// Snapshot of the entity after the operation (JSON).
	Data string `json:"data"`
}
