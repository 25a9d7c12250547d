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

type TrackerInput struct {
	Type        models.TrackerType `json:"type" binding:"required"`
	ReferenceID uuid.UUID          `json:"reference_id" binding:"required"`
	Date        time.Time          `json:"date" binding:"required"`

	CompletedReps  *int     `json:"completed_reps,omitempty"`
	CompletedTime  *float64 `json:"completed_time,omitempty"`
	WeightConsumed *float64 `json:"weight_consumed,omitempty"`
	SleepHours     *float64 `json:"sleep_hours,omitempty"`
}

// CreateTracker records actual completion against a scheduled entry.
// The referenced entry must exist, belong to the user, and match Type.
func CreateTracker(userID uuid.UUID, in TrackerInput) (*models.Tracker, error) {
	switch in.Type {
	case models.TrackerTypeDiet:
		if in.WeightConsumed == nil {
			return nil, fmt.Errorf("diet tracker requires weight_consumed")
		}
		if _, err := GetDietEntry(userID, in.ReferenceID); err != nil {
			return nil, err
		}
	case models.TrackerTypeWorkout:
		if in.CompletedTime == nil && in.CompletedReps == nil {
			return nil, fmt.Errorf("workout tracker requires completed_time or completed_reps")
		}
		if _, err := GetWorkoutEntry(userID, in.ReferenceID); err != nil {
			return nil, err
		}
	case models.TrackerTypeSleep:
		if in.SleepHours == nil {
			return nil, fmt.Errorf("sleep tracker requires sleep_hours")
		}
		if _, err := GetSleepEntry(userID, in.ReferenceID); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("invalid tracker type %q", in.Type)
	}

	// one tracker per scheduled entry; re-tracking replaces the old values
	var tracker models.Tracker
	err := config.DB.
		Where("user_id = ? AND type = ? AND reference_id = ?", userID, in.Type, in.ReferenceID).
		First(&tracker).Error
	switch {
	case err == nil:
		tracker.Date = in.Date
		tracker.CompletedReps = in.CompletedReps
		tracker.CompletedTime = in.CompletedTime
		tracker.WeightConsumed = in.WeightConsumed
		tracker.SleepHours = in.SleepHours
		if err := config.DB.Save(&tracker).Error; err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		tracker = models.Tracker{
			UserID:         userID,
			Type:           in.Type,
			ReferenceID:    in.ReferenceID,
			Date:           in.Date,
			CompletedReps:  in.CompletedReps,
			CompletedTime:  in.CompletedTime,
			WeightConsumed: in.WeightConsumed,
			SleepHours:     in.SleepHours,
		}
		if err := config.DB.Create(&tracker).Error; err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	EmitTrackerUpdate(userID, &tracker)
	return &tracker, nil
}

func GetTracker(userID, trackerID uuid.UUID) (*models.Tracker, error) {
	var tracker models.Tracker
	err := config.DB.Where("id = ? AND user_id = ?", trackerID, userID).First(&tracker).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &tracker, nil
}

func ListTrackers(userID uuid.UUID, typ string, from, to *time.Time) ([]models.Tracker, error) {
	q := config.DB.Where("user_id = ?", userID).Order("date DESC")
	if typ != "" {
		q = q.Where("type = ?", typ)
	}
	if from != nil && to != nil {
		q = q.Where("date >= ? AND date < ?", *from, *to)
	}

	var trackers []models.Tracker
	err := q.Find(&trackers).Error
	return trackers, err
}

func DeleteTracker(userID, trackerID uuid.UUID) error {
	tracker, err := GetTracker(userID, trackerID)
	if err != nil {
		return err
	}
	return config.DB.Delete(tracker).Error
}
