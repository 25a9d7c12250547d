package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/12Danish/NextRepBackend-sub000/config"
	"github.com/12Danish/NextRepBackend-sub000/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GoalInput struct {
	Category   models.GoalCategory     `json:"category" binding:"required"`
	StartDate  time.Time               `json:"start_date" binding:"required"`
	TargetDate time.Time               `json:"target_date" binding:"required"`
	Weight     *models.WeightGoalData  `json:"weight_data,omitempty"`
	Diet       *models.DietGoalData    `json:"diet_data,omitempty"`
	Sleep      *models.SleepGoalData   `json:"sleep_data,omitempty"`
	Workout    *models.WorkoutGoalData `json:"workout_data,omitempty"`
}

// validateGoalPayload enforces the category/data invariant: exactly the
// payload matching the category must be present and well-formed.
func validateGoalPayload(in GoalInput) error {
	present := 0
	for _, p := range []bool{in.Weight != nil, in.Diet != nil, in.Sleep != nil, in.Workout != nil} {
		if p {
			present++
		}
	}
	if present != 1 {
		return fmt.Errorf("exactly one goal data payload is required, got %d", present)
	}

	switch in.Category {
	case models.GoalCategoryWeight:
		if in.Weight == nil {
			return fmt.Errorf("weight goal requires weight_data")
		}
		switch in.Weight.GoalType {
		case models.WeightGoalGain, models.WeightGoalLoss, models.WeightGoalMaintenance:
		default:
			return fmt.Errorf("invalid weight goal type %q", in.Weight.GoalType)
		}
	case models.GoalCategoryDiet:
		if in.Diet == nil {
			return fmt.Errorf("diet goal requires diet_data")
		}
	case models.GoalCategorySleep:
		if in.Sleep == nil {
			return fmt.Errorf("sleep goal requires sleep_data")
		}
		if in.Sleep.TargetHours <= 0 {
			return fmt.Errorf("sleep goal requires a positive target_hours")
		}
	case models.GoalCategoryWorkout:
		if in.Workout == nil {
			return fmt.Errorf("workout goal requires workout_data")
		}
		if in.Workout.TargetMinutes == nil && in.Workout.TargetReps == nil {
			return fmt.Errorf("workout goal requires target_minutes or target_reps")
		}
		if !in.TargetDate.After(in.StartDate) {
			return ErrInvalidGoalDuration
		}
	default:
		return fmt.Errorf("invalid goal category %q", in.Category)
	}
	return nil
}

func CreateGoal(userID uuid.UUID, in GoalInput) (*models.Goal, error) {
	if err := validateGoalPayload(in); err != nil {
		return nil, err
	}

	goal := models.Goal{
		UserID:      userID,
		Category:    in.Category,
		StartDate:   in.StartDate,
		TargetDate:  in.TargetDate,
		Status:      models.GoalStatusPending,
		WeightData:  in.Weight,
		DietData:    in.Diet,
		SleepData:   in.Sleep,
		WorkoutData: in.Workout,
	}
	if err := config.DB.Create(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

func GetGoal(userID, goalID uuid.UUID) (*models.Goal, error) {
	var goal models.Goal
	err := config.DB.Where("id = ? AND user_id = ?", goalID, userID).First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	refreshGoalStatus(&goal)
	return &goal, nil
}

func ListGoals(userID uuid.UUID, category string) ([]models.Goal, error) {
	q := config.DB.Where("user_id = ?", userID).Order("created_at DESC")
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var goals []models.Goal
	if err := q.Find(&goals).Error; err != nil {
		return nil, err
	}
	for i := range goals {
		refreshGoalStatus(&goals[i])
	}
	return goals, nil
}

// refreshGoalStatus flips pending goals to overdue once the target date
// has passed. Completed goals are never reverted.
func refreshGoalStatus(goal *models.Goal) {
	if goal.Status == models.GoalStatusPending && time.Now().After(goal.TargetDate) {
		goal.Status = models.GoalStatusOverdue
		config.DB.Model(goal).Update("status", goal.Status)
	}
}

func UpdateGoalStatus(userID, goalID uuid.UUID, status models.GoalStatus) (*models.Goal, error) {
	switch status {
	case models.GoalStatusPending, models.GoalStatusCompleted, models.GoalStatusOverdue:
	default:
		return nil, fmt.Errorf("invalid goal status %q", status)
	}

	goal, err := GetGoal(userID, goalID)
	if err != nil {
		return nil, err
	}
	goal.Status = status
	if err := config.DB.Save(goal).Error; err != nil {
		return nil, err
	}
	return goal, nil
}

// UpdateWeight appends the goal's current weight to its history and sets
// the new reading.
func UpdateWeight(userID, goalID uuid.UUID, newWeight float64, at time.Time) (*models.Goal, error) {
	goal, err := GetGoal(userID, goalID)
	if err != nil {
		return nil, err
	}
	if goal.Category != models.GoalCategoryWeight || goal.WeightData == nil {
		return nil, ErrInvalidCategory
	}

	data := goal.WeightData
	data.PreviousWeights = append(data.PreviousWeights, models.WeightRecord{
		Weight: data.CurrentWeight,
		Date:   at,
	})
	data.CurrentWeight = newWeight
	goal.WeightData = data

	if err := config.DB.Save(goal).Error; err != nil {
		return nil, err
	}
	return goal, nil
}

// DeleteGoal removes the goal and detaches (not deletes) its scheduled
// entries: their goal_id is cleared so the logged history survives.
// Trackers reference entries, not goals, so they are untouched.
func DeleteGoal(userID, goalID uuid.UUID) error {
	goal, err := GetGoal(userID, goalID)
	if err != nil {
		return err
	}

	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.DietEntry{}).
			Where("goal_id = ?", goal.ID).
			Update("goal_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.WorkoutEntry{}).
			Where("goal_id = ?", goal.ID).
			Update("goal_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.SleepEntry{}).
			Where("goal_id = ?", goal.ID).
			Update("goal_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(goal).Error
	})
}
