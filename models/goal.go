package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GoalCategory string

const (
	GoalCategoryWeight  GoalCategory = "weight"
	GoalCategoryDiet    GoalCategory = "diet"
	GoalCategorySleep   GoalCategory = "sleep"
	GoalCategoryWorkout GoalCategory = "workout"
)

type GoalStatus string

const (
	GoalStatusPending   GoalStatus = "pending"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusOverdue   GoalStatus = "overdue"
)

type WeightGoalType string

const (
	WeightGoalGain        WeightGoalType = "gain"
	WeightGoalLoss        WeightGoalType = "loss"
	WeightGoalMaintenance WeightGoalType = "maintenance"
)

// WeightRecord is one point of a weight history.
type WeightRecord struct {
	Weight float64   `json:"weight"` // kg
	Date   time.Time `json:"date"`
}

type WeightGoalData struct {
	GoalType        WeightGoalType `json:"goal_type"`
	TargetWeight    float64        `json:"target_weight"`
	CurrentWeight   float64        `json:"current_weight"`
	PreviousWeights []WeightRecord `json:"previous_weights"` // ordered, oldest first
}

// DietGoalData holds daily nutrient-intake targets.
type DietGoalData struct {
	TargetCalories float64 `json:"target_calories"` // kcal
	TargetProteins float64 `json:"target_proteins"` // g
	TargetFats     float64 `json:"target_fats"`     // g
	TargetCarbs    float64 `json:"target_carbs"`    // g
}

type SleepGoalData struct {
	TargetHours float64 `json:"target_hours"` // per night
}

// WorkoutGoalData requires at least one of TargetMinutes / TargetReps.
type WorkoutGoalData struct {
	ExerciseName  string   `json:"exercise_name"`
	TargetMinutes *float64 `json:"target_minutes,omitempty"` // daily
	TargetReps    *int     `json:"target_reps,omitempty"`    // daily
}

// Goal is a category-tagged union: exactly one of the *Data fields is
// non-nil and it must match Category.
type Goal struct {
	ID         uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID    `gorm:"type:uuid;index;not null" json:"user_id"`
	Category   GoalCategory `gorm:"size:16;not null" json:"category"`
	StartDate  time.Time    `gorm:"not null" json:"start_date"`
	TargetDate time.Time    `gorm:"not null" json:"target_date"`
	Status     GoalStatus   `gorm:"size:16;not null;default:'pending'" json:"status"`

	WeightData  *WeightGoalData  `gorm:"serializer:json" json:"weight_data,omitempty"`
	DietData    *DietGoalData    `gorm:"serializer:json" json:"diet_data,omitempty"`
	SleepData   *SleepGoalData   `gorm:"serializer:json" json:"sleep_data,omitempty"`
	WorkoutData *WorkoutGoalData `gorm:"serializer:json" json:"workout_data,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}
