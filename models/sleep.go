package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SleepEntry is a logged night of sleep. Unlike diet and workout entries
// it is its own actual; a Tracker may still reference it to record hours.
type SleepEntry struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;index;not null" json:"user_id"`
	GoalID    *uuid.UUID `gorm:"type:uuid;index" json:"goal_id,omitempty"`
	Date      time.Time  `gorm:"index;not null" json:"date"`
	Duration  float64    `json:"duration"` // minutes
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (s *SleepEntry) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
