package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// WorkoutEntry is a scheduled workout session.
type WorkoutEntry struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID             uuid.UUID      `gorm:"type:uuid;index;not null" json:"user_id"`
	GoalID             *uuid.UUID     `gorm:"type:uuid;index" json:"goal_id,omitempty"`
	WorkoutDateAndTime time.Time      `gorm:"index;not null" json:"workout_date_and_time"`
	Type               string         `gorm:"size:32" json:"type"` // "gym" | "home" | "cardio" | ...
	ExerciseName       string         `gorm:"size:128;not null" json:"exercise_name"`
	Duration           float64        `json:"duration"` // minutes
	TargetMuscleGroup  pq.StringArray `gorm:"type:text[]" json:"target_muscle_group"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

func (w *WorkoutEntry) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}
