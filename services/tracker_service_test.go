package services_test

import (
	"testing"
	"time"

	"github.com/12Danish/NextRepBackend-sub000/config"
	"github.com/12Danish/NextRepBackend-sub000/models"
	"github.com/12Danish/NextRepBackend-sub000/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTracker_RetrackingUpdatesInPlace(t *testing.T) {
	config.DB = newTestDB(t)

	userID := uuid.New()
	entry := models.DietEntry{
		UserID:          userID,
		MealDateAndTime: time.Date(2024, 3, 11, 8, 0, 0, 0, time.UTC),
		Meal:            "breakfast",
		Calories:        350,
		MealWeight:      200,
	}
	require.NoError(t, config.DB.Create(&entry).Error)

	first, err := services.CreateTracker(userID, services.TrackerInput{
		Type:           models.TrackerTypeDiet,
		ReferenceID:    entry.ID,
		Date:           entry.MealDateAndTime,
		WeightConsumed: floatPtr(100),
	})
	require.NoError(t, err)

	second, err := services.CreateTracker(userID, services.TrackerInput{
		Type:           models.TrackerTypeDiet,
		ReferenceID:    entry.ID,
		Date:           entry.MealDateAndTime,
		WeightConsumed: floatPtr(150),
	})
	require.NoError(t, err)

	// same row, updated values, never a duplicate
	assert.Equal(t, first.ID, second.ID)
	require.NotNil(t, second.WeightConsumed)
	assert.Equal(t, 150.0, *second.WeightConsumed)

	var count int64
	require.NoError(t, config.DB.Model(&models.Tracker{}).
		Where("reference_id = ?", entry.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateTracker_UnknownEntryRejected(t *testing.T) {
	config.DB = newTestDB(t)

	_, err := services.CreateTracker(uuid.New(), services.TrackerInput{
		Type:           models.TrackerTypeDiet,
		ReferenceID:    uuid.New(),
		Date:           time.Now(),
		WeightConsumed: floatPtr(100),
	})
	assert.ErrorIs(t, err, services.ErrNotFound)
}
