package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DietEntry is a scheduled meal. Actual consumption is recorded
// separately through a Tracker referencing this entry.
type DietEntry struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID  `gorm:"type:uuid;index;not null" json:"user_id"`
	GoalID          *uuid.UUID `gorm:"type:uuid;index" json:"goal_id,omitempty"`
	MealDateAndTime time.Time  `gorm:"index;not null" json:"meal_date_and_time"`
	Meal            string     `gorm:"size:128;not null" json:"meal"`
	Calories        float64    `json:"calories"` // kcal
	Carbs           float64    `json:"carbs"`    // g
	Protein         float64    `json:"protein"`  // g
	Fat             float64    `json:"fat"`      // g
	MealWeight      float64    `json:"meal_weight"` // g, basis for consumption ratio
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (d *DietEntry) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
