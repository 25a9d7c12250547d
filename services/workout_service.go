package services

import (
	"errors"
	"time"

	"github.com/12Danish/NextRepBackend-sub000/config"
	"github.com/12Danish/NextRepBackend-sub000/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorkoutEntryInput struct {
	GoalID             *uuid.UUID `json:"goal_id,omitempty"`
	WorkoutDateAndTime time.Time  `json:"workout_date_and_time" binding:"required"`
	Type               string     `json:"type"`
	ExerciseName       string     `json:"exercise_name" binding:"required"`
	Duration           float64    `json:"duration"`
	TargetMuscleGroup  []string   `json:"target_muscle_group"`
}

func CreateWorkoutEntry(userID uuid.UUID, in WorkoutEntryInput) (*models.WorkoutEntry, error) {
	if in.GoalID != nil {
		if _, err := GetGoal(userID, *in.GoalID); err != nil {
			return nil, err
		}
	}

	entry := models.WorkoutEntry{
		UserID:             userID,
		GoalID:             in.GoalID,
		WorkoutDateAndTime: in.WorkoutDateAndTime,
		Type:               in.Type,
		ExerciseName:       in.ExerciseName,
		Duration:           in.Duration,
		TargetMuscleGroup:  in.TargetMuscleGroup,
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func GetWorkoutEntry(userID, entryID uuid.UUID) (*models.WorkoutEntry, error) {
	var entry models.WorkoutEntry
	err := config.DB.Where("id = ? AND user_id = ?", entryID, userID).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func ListWorkoutEntries(userID uuid.UUID, from, to *time.Time) ([]models.WorkoutEntry, error) {
	q := config.DB.Where("user_id = ?", userID).Order("workout_date_and_time DESC")
	if from != nil && to != nil {
		q = q.Where("workout_date_and_time >= ? AND workout_date_and_time < ?", *from, *to)
	}

	var entries []models.WorkoutEntry
	err := q.Find(&entries).Error
	return entries, err
}

func UpdateWorkoutEntry(userID, entryID uuid.UUID, in WorkoutEntryInput) (*models.WorkoutEntry, error) {
	entry, err := GetWorkoutEntry(userID, entryID)
	if err != nil {
		return nil, err
	}
	if in.GoalID != nil {
		if _, err := GetGoal(userID, *in.GoalID); err != nil {
			return nil, err
		}
	}

	entry.GoalID = in.GoalID
	entry.WorkoutDateAndTime = in.WorkoutDateAndTime
	entry.Type = in.Type
	entry.ExerciseName = in.ExerciseName
	entry.Duration = in.Duration
	entry.TargetMuscleGroup = in.TargetMuscleGroup

	if err := config.DB.Save(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func DeleteWorkoutEntry(userID, entryID uuid.UUID) error {
	entry, err := GetWorkoutEntry(userID, entryID)
	if err != nil {
		return err
	}

	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("reference_id = ? AND type = ?", entry.ID, models.TrackerTypeWorkout).
			Delete(&models.Tracker{}).Error; err != nil {
			return err
		}
		return tx.Delete(entry).Error
	})
}
