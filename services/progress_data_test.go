package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/12Danish/NextRepBackend-sub000/models"
	"github.com/12Danish/NextRepBackend-sub000/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a throwaway in-memory database. WorkoutEntry is left
// out: its text[] column is postgres-only.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Goal{},
		&models.DietEntry{},
		&models.SleepEntry{},
		&models.Tracker{},
	))
	return db
}

func TestDietProgress_NoTrackersIsNoData(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewProgressService(db)
	ctx := context.Background()

	userID := uuid.New()
	goal := models.Goal{
		UserID:     userID,
		Category:   models.GoalCategoryDiet,
		StartDate:  time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		TargetDate: time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC),
		Status:     models.GoalStatusPending,
		DietData:   &models.DietGoalData{TargetCalories: 2000},
	}
	require.NoError(t, db.Create(&goal).Error)

	entry := models.DietEntry{
		UserID:          userID,
		GoalID:          &goal.ID,
		MealDateAndTime: time.Date(2024, 3, 11, 8, 0, 0, 0, time.UTC),
		Meal:            "breakfast",
		Calories:        350,
		MealWeight:      200,
	}
	require.NoError(t, db.Create(&entry).Error)

	// scheduled but untracked: no data yet, not a zeroed score
	res, err := svc.DietProgress(ctx, userID, goal.ID)
	require.NoError(t, err)
	assert.Nil(t, res)

	require.NoError(t, db.Create(&models.Tracker{
		UserID:         userID,
		Type:           models.TrackerTypeDiet,
		ReferenceID:    entry.ID,
		Date:           entry.MealDateAndTime,
		WeightConsumed: floatPtr(150),
	}).Error)

	res, err = svc.DietProgress(ctx, userID, goal.ID)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, 262.5, res.Calories.Actual)
}

func TestDietProgress_NoEntriesIsNoData(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewProgressService(db)

	userID := uuid.New()
	goal := models.Goal{
		UserID:     userID,
		Category:   models.GoalCategoryDiet,
		StartDate:  time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		TargetDate: time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC),
		Status:     models.GoalStatusPending,
		DietData:   &models.DietGoalData{TargetCalories: 2000},
	}
	require.NoError(t, db.Create(&goal).Error)

	res, err := svc.DietProgress(context.Background(), userID, goal.ID)
	require.NoError(t, err)
	assert.Nil(t, res)
}
