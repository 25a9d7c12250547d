package services_test

import (
	"testing"
	"time"

	"github.com/12Danish/NextRepBackend-sub000/models"
	"github.com/12Danish/NextRepBackend-sub000/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dayAt(day int, hour int) time.Time {
	return time.Date(2024, 3, day, hour, 0, 0, 0, time.UTC)
}

func findDietDay(t *testing.T, days []services.DietDay, date string) services.DietDay {
	t.Helper()
	for _, d := range days {
		if d.Date == date {
			return d
		}
	}
	t.Fatalf("no bucket for %s", date)
	return services.DietDay{}
}

func TestBuildDietDays_TrackedAndUntrackedDays(t *testing.T) {
	start := dayAt(10, 0)
	end := dayAt(13, 0)

	tracked := models.DietEntry{
		ID:              uuid.New(),
		MealDateAndTime: dayAt(10, 8),
		Calories:        350, Protein: 20, Carbs: 40, Fat: 10,
		MealWeight: 200,
	}
	trackedB := models.DietEntry{
		ID:              uuid.New(),
		MealDateAndTime: dayAt(10, 13),
		Calories:        450, Protein: 30, Carbs: 50, Fat: 15,
		MealWeight: 300,
	}
	untracked := models.DietEntry{
		ID:              uuid.New(),
		MealDateAndTime: dayAt(11, 9),
		Calories:        500, Protein: 25, Carbs: 60, Fat: 20,
		MealWeight: 250,
	}

	trackers := map[uuid.UUID]*models.Tracker{
		tracked.ID:  {Type: models.TrackerTypeDiet, ReferenceID: tracked.ID, WeightConsumed: floatPtr(150)},
		trackedB.ID: {Type: models.TrackerTypeDiet, ReferenceID: trackedB.ID, WeightConsumed: floatPtr(350)},
	}

	days := services.BuildDietDays(
		[]models.DietEntry{tracked, trackedB, untracked}, trackers, start, end)

	require.Len(t, days, 3)

	d10 := findDietDay(t, days, "2024-03-10")
	assert.Equal(t, 2, d10.Meals)
	assert.Equal(t, 800.0, d10.Scheduled.Calories)
	require.NotNil(t, d10.Actual)
	// 350*150/200 + 450*350/300
	assert.Equal(t, 787.5, d10.Actual.Calories)
	require.NotNil(t, d10.Adherence)
	require.NotNil(t, d10.Adherence.Calories)
	assert.Equal(t, 98.44, *d10.Adherence.Calories)

	// scheduled but never tracked: actual and adherence stay nil
	d11 := findDietDay(t, days, "2024-03-11")
	assert.Equal(t, 1, d11.Meals)
	assert.Equal(t, 500.0, d11.Scheduled.Calories)
	assert.Nil(t, d11.Actual)
	assert.Nil(t, d11.Adherence)

	// gap day: empty placeholder bucket
	d12 := findDietDay(t, days, "2024-03-12")
	assert.Zero(t, d12.Meals)
	assert.Nil(t, d12.Actual)
}

func TestBuildDietDays_AdherenceNilWhenScheduledZero(t *testing.T) {
	entry := models.DietEntry{
		ID:              uuid.New(),
		MealDateAndTime: dayAt(10, 8),
		Calories:        400,
		MealWeight:      100,
		// no protein/fat/carbs scheduled
	}
	trackers := map[uuid.UUID]*models.Tracker{
		entry.ID: {ReferenceID: entry.ID, WeightConsumed: floatPtr(100)},
	}

	days := services.BuildDietDays([]models.DietEntry{entry}, trackers, dayAt(10, 0), dayAt(11, 0))
	require.Len(t, days, 1)
	require.NotNil(t, days[0].Adherence)
	assert.NotNil(t, days[0].Adherence.Calories)
	assert.Nil(t, days[0].Adherence.Protein)
	assert.Nil(t, days[0].Adherence.Carbs)
	assert.Nil(t, days[0].Adherence.Fat)
}

func TestBuildWorkoutDays(t *testing.T) {
	start := dayAt(10, 0)
	end := dayAt(12, 0)

	tracked := models.WorkoutEntry{
		ID:                 uuid.New(),
		WorkoutDateAndTime: dayAt(10, 18),
		ExerciseName:       "bench press",
		Duration:           60,
	}
	sameDayUntracked := models.WorkoutEntry{
		ID:                 uuid.New(),
		WorkoutDateAndTime: dayAt(10, 19),
		ExerciseName:       "squat",
		Duration:           40,
	}
	otherDay := models.WorkoutEntry{
		ID:                 uuid.New(),
		WorkoutDateAndTime: dayAt(11, 18),
		ExerciseName:       "deadlift",
		Duration:           30,
	}

	trackers := map[uuid.UUID]*models.Tracker{
		tracked.ID: {Type: models.TrackerTypeWorkout, ReferenceID: tracked.ID, CompletedTime: floatPtr(45)},
	}

	days := services.BuildWorkoutDays(
		[]models.WorkoutEntry{tracked, sameDayUntracked, otherDay}, trackers, start, end)
	require.Len(t, days, 2)

	var d10, d11 services.WorkoutDay
	for _, d := range days {
		switch d.Date {
		case "2024-03-10":
			d10 = d
		case "2024-03-11":
			d11 = d
		}
	}

	assert.Equal(t, 100.0, d10.Scheduled.Duration)
	assert.Equal(t, 2, d10.Scheduled.Workouts)
	require.NotNil(t, d10.Actual)
	assert.Equal(t, 45.0, d10.Actual.Duration)
	require.NotNil(t, d10.Adherence)
	require.NotNil(t, d10.Adherence.Duration)
	assert.Equal(t, 45.0, *d10.Adherence.Duration)

	assert.Equal(t, 30.0, d11.Scheduled.Duration)
	assert.Nil(t, d11.Actual)
	assert.Nil(t, d11.Adherence)
}

func TestBuildSleepDays(t *testing.T) {
	start := dayAt(10, 0)
	end := dayAt(13, 0)

	entries := []models.SleepEntry{
		{ID: uuid.New(), Date: dayAt(10, 23), Duration: 420},
		{ID: uuid.New(), Date: dayAt(10, 14), Duration: 60}, // nap, same day
		{ID: uuid.New(), Date: dayAt(12, 23), Duration: 480},
	}

	days := services.BuildSleepDays(entries, start, end)
	require.Len(t, days, 3)

	var d10, d11, d12 services.SleepDay
	for _, d := range days {
		switch d.Date {
		case "2024-03-10":
			d10 = d
		case "2024-03-11":
			d11 = d
		case "2024-03-12":
			d12 = d
		}
	}

	assert.Equal(t, 480.0, d10.Duration)
	assert.Equal(t, 2, d10.SleepCount)
	assert.Equal(t, 240.0, d10.AverageDuration)

	assert.Zero(t, d11.Duration)
	assert.Zero(t, d11.SleepCount)

	assert.Equal(t, 480.0, d12.Duration)
	assert.Equal(t, 480.0, d12.AverageDuration)
}

func TestBuildDietDays_EmptyRangeStillFilled(t *testing.T) {
	days := services.BuildDietDays(nil, nil, dayAt(10, 0), dayAt(17, 0))
	require.Len(t, days, 7)
	for i, d := range days {
		assert.Equal(t, dayAt(10+i, 0).Format("2006-01-02"), d.Date)
		assert.Nil(t, d.Actual)
	}
}
