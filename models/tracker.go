package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TrackerType string

const (
	TrackerTypeSleep   TrackerType = "sleep"
	TrackerTypeDiet    TrackerType = "diet"
	TrackerTypeWorkout TrackerType = "workout"
)

// Tracker records actual completion/consumption against a scheduled
// entry (ReferenceID points at a DietEntry, WorkoutEntry or SleepEntry
// depending on Type). The type-specific fields are nullable; only the
// ones matching Type are set. At most one tracker exists per scheduled
// entry; re-tracking updates the existing row.
type Tracker struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID   `gorm:"type:uuid;index;not null" json:"user_id"`
	Type        TrackerType `gorm:"size:16;not null;uniqueIndex:idx_trackers_type_ref" json:"type"`
	ReferenceID uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex:idx_trackers_type_ref" json:"reference_id"`
	Date        time.Time   `gorm:"index;not null" json:"date"`

	CompletedReps  *int     `json:"completed_reps,omitempty"`
	CompletedTime  *float64 `json:"completed_time,omitempty"`  // minutes
	WeightConsumed *float64 `json:"weight_consumed,omitempty"` // g
	SleepHours     *float64 `json:"sleep_hours,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *Tracker) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
