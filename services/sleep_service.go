package services

import (
	"errors"
	"time"

	"github.com/12Danish/NextRepBackend-sub000/config"
	"github.com/12Danish/NextRepBackend-sub000/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SleepEntryInput struct {
	GoalID   *uuid.UUID `json:"goal_id,omitempty"`
	Date     time.Time  `json:"date" binding:"required"`
	Duration float64    `json:"duration" binding:"required"` // minutes
}

func CreateSleepEntry(userID uuid.UUID, in SleepEntryInput) (*models.SleepEntry, error) {
	if in.GoalID != nil {
		if _, err := GetGoal(userID, *in.GoalID); err != nil {
			return nil, err
		}
	}

	entry := models.SleepEntry{
		UserID:   userID,
		GoalID:   in.GoalID,
		Date:     in.Date,
		Duration: in.Duration,
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func GetSleepEntry(userID, entryID uuid.UUID) (*models.SleepEntry, error) {
	var entry models.SleepEntry
	err := config.DB.Where("id = ? AND user_id = ?", entryID, userID).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func ListSleepEntries(userID uuid.UUID, from, to *time.Time) ([]models.SleepEntry, error) {
	q := config.DB.Where("user_id = ?", userID).Order("date DESC")
	if from != nil && to != nil {
		q = q.Where("date >= ? AND date < ?", *from, *to)
	}

	var entries []models.SleepEntry
	err := q.Find(&entries).Error
	return entries, err
}

func UpdateSleepEntry(userID, entryID uuid.UUID, in SleepEntryInput) (*models.SleepEntry, error) {
	entry, err := GetSleepEntry(userID, entryID)
	if err != nil {
		return nil, err
	}
	if in.GoalID != nil {
		if _, err := GetGoal(userID, *in.GoalID); err != nil {
			return nil, err
		}
	}

	entry.GoalID = in.GoalID
	entry.Date = in.Date
	entry.Duration = in.Duration

	if err := config.DB.Save(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func DeleteSleepEntry(userID, entryID uuid.UUID) error {
	entry, err := GetSleepEntry(userID, entryID)
	if err != nil {
		return err
	}

	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("reference_id = ? AND type = ?", entry.ID, models.TrackerTypeSleep).
			Delete(&models.Tracker{}).Error; err != nil {
			return err
		}
		return tx.Delete(entry).Error
	})
}
