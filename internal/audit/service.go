// Package audit records what was written and by whom. Every create endpoint
// reports here; a recording failure never fails the request that caused it.
package audit

import (
	"encoding/json"
	"fmt"

	"tempwork-backend/internal/models"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type Recorder struct {
	db *gorm.DB
}

func NewRecorder(db *gorm.DB) *Recorder {
	return &Recorder{db: db}
}

type Entry struct {
	UserID      *uint
	EntityType  string
	EntityID    uint
	Action      models.ActivityAction
	Description string
	Data        any
}

// Write stores one activity row. Data is serialized to JSON; a nil Data is
// stored as the JSON null literal.
func (r *Recorder) Write(e Entry) error {
	dataStr := "null"
	if e.Data != nil {
		if b, err := json.Marshal(e.Data); err == nil {
			dataStr = string(b)
		}
	}

	row := models.ActivityLog{
		UserID:      e.UserID,
		EntityType:  e.EntityType,
		EntityID:    e.EntityID,
		Action:      e.Action,
		Description: e.Description,
		Data:        dataStr,
	}

	if err := r.db.Create(&row).Error; err != nil {
		return fmt.Errorf("writing activity log: %w", err)
	}
	return nil
}

// Record is Write with the non-fatal failure policy applied: log and move on.
func (r *Recorder) Record(e Entry) {
	if err := r.Write(e); err != nil {
		log.Warn().Err(err).Str("entity_type", e.EntityType).Msg("activity log not written")
	}
}
