package services

import (
	"errors"
	"time"

	"github.com/12Danish/NextRepBackend-sub000/config"
	"github.com/12Danish/NextRepBackend-sub000/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DietEntryInput struct {
	GoalID          *uuid.UUID `json:"goal_id,omitempty"`
	MealDateAndTime time.Time  `json:"meal_date_and_time" binding:"required"`
	Meal            string     `json:"meal" binding:"required"`
	Calories        float64    `json:"calories"`
	Carbs           float64    `json:"carbs"`
	Protein         float64    `json:"protein"`
	Fat             float64    `json:"fat"`
	MealWeight      float64    `json:"meal_weight"`
}

func CreateDietEntry(userID uuid.UUID, in DietEntryInput) (*models.DietEntry, error) {
	if in.GoalID != nil {
		if _, err := GetGoal(userID, *in.GoalID); err != nil {
			return nil, err
		}
	}

	entry := models.DietEntry{
		UserID:          userID,
		GoalID:          in.GoalID,
		MealDateAndTime: in.MealDateAndTime,
		Meal:            in.Meal,
		Calories:        in.Calories,
		Carbs:           in.Carbs,
		Protein:         in.Protein,
		Fat:             in.Fat,
		MealWeight:      in.MealWeight,
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func GetDietEntry(userID, entryID uuid.UUID) (*models.DietEntry, error) {
	var entry models.DietEntry
	err := config.DB.Where("id = ? AND user_id = ?", entryID, userID).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func ListDietEntries(userID uuid.UUID, from, to *time.Time) ([]models.DietEntry, error) {
	q := config.DB.Where("user_id = ?", userID).Order("meal_date_and_time DESC")
	if from != nil && to != nil {
		q = q.Where("meal_date_and_time >= ? AND meal_date_and_time < ?", *from, *to)
	}

	var entries []models.DietEntry
	err := q.Find(&entries).Error
	return entries, err
}

func UpdateDietEntry(userID, entryID uuid.UUID, in DietEntryInput) (*models.DietEntry, error) {
	entry, err := GetDietEntry(userID, entryID)
	if err != nil {
		return nil, err
	}
	if in.GoalID != nil {
		if _, err := GetGoal(userID, *in.GoalID); err != nil {
			return nil, err
		}
	}

	entry.GoalID = in.GoalID
	entry.MealDateAndTime = in.MealDateAndTime
	entry.Meal = in.Meal
	entry.Calories = in.Calories
	entry.Carbs = in.Carbs
	entry.Protein = in.Protein
	entry.Fat = in.Fat
	entry.MealWeight = in.MealWeight

	if err := config.DB.Save(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// DeleteDietEntry also removes trackers pointing at the entry so no
// dangling actuals survive.
func DeleteDietEntry(userID, entryID uuid.UUID) error {
	entry, err := GetDietEntry(userID, entryID)
	if err != nil {
		return err
	}

	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("reference_id = ? AND type = ?", entry.ID, models.TrackerTypeDiet).
			Delete(&models.Tracker{}).Error; err != nil {
			return err
		}
		return tx.Delete(entry).Error
	})
}
