package services_test

import (
	"errors"
	"testing"
	"time"

	"github.com/12Danish/NextRepBackend-sub000/models"
	"github.com/12Danish/NextRepBackend-sub000/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

// ---------- weight ----------

func TestScoreWeightGoal_LossBoundary(t *testing.T) {
	res := services.ScoreWeightGoal(&models.WeightGoalData{
		GoalType:      models.WeightGoalLoss,
		TargetWeight:  80,
		CurrentWeight: 80,
		PreviousWeights: []models.WeightRecord{
			{Weight: 95, Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		},
	})
	assert.Equal(t, 100.0, res.ProgressPct)
	assert.True(t, res.Achieved)
}

func TestScoreWeightGoal_LossPartial(t *testing.T) {
	res := services.ScoreWeightGoal(&models.WeightGoalData{
		GoalType:      models.WeightGoalLoss,
		TargetWeight:  80,
		CurrentWeight: 85,
		PreviousWeights: []models.WeightRecord{
			{Weight: 90, Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		},
	})
	// moved 5 of the 10 kg to lose
	assert.Equal(t, 50.0, res.ProgressPct)
	assert.Equal(t, 90.0, res.StartWeight)
}

func TestScoreWeightGoal_GainBoundary(t *testing.T) {
	res := services.ScoreWeightGoal(&models.WeightGoalData{
		GoalType:        models.WeightGoalGain,
		TargetWeight:    70,
		CurrentWeight:   72,
		PreviousWeights: []models.WeightRecord{{Weight: 60}},
	})
	assert.Equal(t, 100.0, res.ProgressPct)
}

func TestScoreWeightGoal_Maintenance(t *testing.T) {
	base := models.WeightGoalData{
		GoalType:     models.WeightGoalMaintenance,
		TargetWeight: 75,
	}

	exact := base
	exact.CurrentWeight = 75
	assert.Equal(t, 100.0, services.ScoreWeightGoal(&exact).ProgressPct)

	twoOff := base
	twoOff.CurrentWeight = 77
	assert.Equal(t, 0.0, services.ScoreWeightGoal(&twoOff).ProgressPct)

	oneOff := base
	oneOff.CurrentWeight = 74
	assert.Equal(t, 50.0, services.ScoreWeightGoal(&oneOff).ProgressPct)
}

func TestScoreWeightGoal_EmptyHistoryFallsBackToCurrent(t *testing.T) {
	res := services.ScoreWeightGoal(&models.WeightGoalData{
		GoalType:      models.WeightGoalLoss,
		TargetWeight:  80,
		CurrentWeight: 90,
	})
	// start == current, so no measurable change yet
	assert.Equal(t, 90.0, res.StartWeight)
	assert.Equal(t, 0.0, res.ProgressPct)
}

// ---------- diet ----------

func dietEntry(goalID uuid.UUID, calories, protein, fat, carbs, mealWeight float64) models.DietEntry {
	return models.DietEntry{
		ID:         uuid.New(),
		GoalID:     &goalID,
		Calories:   calories,
		Protein:    protein,
		Fat:        fat,
		Carbs:      carbs,
		MealWeight: mealWeight,
	}
}

func dietTracker(entry models.DietEntry, weightConsumed float64) *models.Tracker {
	return &models.Tracker{
		ID:             uuid.New(),
		Type:           models.TrackerTypeDiet,
		ReferenceID:    entry.ID,
		WeightConsumed: floatPtr(weightConsumed),
	}
}

func TestScoreDietGoal_ProportionalConsumption(t *testing.T) {
	goalID := uuid.New()
	entry := dietEntry(goalID, 350, 0, 0, 0, 200)
	trackers := map[uuid.UUID]*models.Tracker{entry.ID: dietTracker(entry, 150)}

	res := services.ScoreDietGoal(
		&models.DietGoalData{TargetCalories: 2000},
		[]models.DietEntry{entry}, trackers,
	)
	assert.Equal(t, 262.5, res.Calories.Actual)
	assert.Equal(t, "on_track", res.Calories.Status)
}

func TestScoreDietGoal_TwoMealsSameDay(t *testing.T) {
	goalID := uuid.New()
	a := dietEntry(goalID, 350, 0, 0, 0, 200)
	b := dietEntry(goalID, 450, 0, 0, 0, 300)
	trackers := map[uuid.UUID]*models.Tracker{
		a.ID: dietTracker(a, 150),
		b.ID: dietTracker(b, 350),
	}

	res := services.ScoreDietGoal(
		&models.DietGoalData{TargetCalories: 2000, TargetProteins: 100, TargetFats: 70, TargetCarbs: 250},
		[]models.DietEntry{a, b}, trackers,
	)

	// 350*150/200 + 450*350/300 = 262.5 + 525
	assert.Equal(t, 787.5, res.Calories.Actual)
	assert.Equal(t, 39.38, res.Calories.Progress)
	assert.Equal(t, "on_track", res.Calories.Status)
	assert.Equal(t, 2000.0, res.Calories.Target)
	assert.InDelta(t, 9.85, res.Overall.Progress, 0.01)
}

func TestScoreDietGoal_ExceededStatus(t *testing.T) {
	goalID := uuid.New()
	entry := dietEntry(goalID, 3000, 0, 0, 0, 100)
	trackers := map[uuid.UUID]*models.Tracker{entry.ID: dietTracker(entry, 100)}

	res := services.ScoreDietGoal(
		&models.DietGoalData{TargetCalories: 2000},
		[]models.DietEntry{entry}, trackers,
	)
	assert.Equal(t, "exceeded", res.Calories.Status)
}

func TestScoreDietGoal_ZeroMealWeightContributesNothing(t *testing.T) {
	goalID := uuid.New()
	entry := dietEntry(goalID, 350, 0, 0, 0, 0)
	trackers := map[uuid.UUID]*models.Tracker{entry.ID: dietTracker(entry, 150)}

	res := services.ScoreDietGoal(
		&models.DietGoalData{TargetCalories: 2000},
		[]models.DietEntry{entry}, trackers,
	)
	assert.Equal(t, 0.0, res.Calories.Actual)
}

func TestScoreDietGoal_UntrackedMealContributesNothing(t *testing.T) {
	goalID := uuid.New()
	entry := dietEntry(goalID, 350, 0, 0, 0, 200)

	res := services.ScoreDietGoal(
		&models.DietGoalData{TargetCalories: 2000},
		[]models.DietEntry{entry}, map[uuid.UUID]*models.Tracker{},
	)
	assert.Equal(t, 0.0, res.Calories.Actual)
	assert.Equal(t, "on_track", res.Calories.Status)
}

// ---------- sleep ----------

func TestScoreSleepGoal_SplitCredit(t *testing.T) {
	start := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	today := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC) // 4 days in

	res := services.ScoreSleepGoal(
		&models.SleepGoalData{TargetHours: 8},
		start, today,
		map[string]float64{
			"2024-03-10": 8,
			"2024-03-11": 7.5,
			"2024-03-12": 9,
		},
	)

	assert.Equal(t, 4, res.DaysSinceStart)
	assert.Equal(t, 3, res.DaysWithData)
	assert.Equal(t, 2, res.DaysMeetingTarget)
	assert.Equal(t, 37.5, res.TrackingProgress)
	assert.Equal(t, 25.0, res.TargetProgress)
	assert.Equal(t, 62.5, res.Overall.Progress)
}

func TestScoreSleepGoal_CappedAt100(t *testing.T) {
	start := time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC)
	today := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)

	res := services.ScoreSleepGoal(
		&models.SleepGoalData{TargetHours: 7},
		start, today,
		map[string]float64{"2024-03-13": 8},
	)
	assert.Equal(t, 100.0, res.Overall.Progress)
}

func TestScoreSleepGoal_StartTodayCountsAsOneDay(t *testing.T) {
	today := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)

	res := services.ScoreSleepGoal(
		&models.SleepGoalData{TargetHours: 8},
		today, today,
		map[string]float64{},
	)
	assert.Equal(t, 1, res.DaysSinceStart)
	assert.Equal(t, 0.0, res.Overall.Progress)
}

// ---------- workout ----------

func workoutGoal(start, target time.Time, targetMinutes *float64) (*models.Goal, *models.WorkoutGoalData) {
	data := &models.WorkoutGoalData{ExerciseName: "bench press", TargetMinutes: targetMinutes}
	goal := &models.Goal{
		ID:          uuid.New(),
		Category:    models.GoalCategoryWorkout,
		StartDate:   start,
		TargetDate:  target,
		WorkoutData: data,
	}
	return goal, data
}

func TestScoreWorkoutGoal_InProgress(t *testing.T) {
	goal, data := workoutGoal(
		time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC),
		floatPtr(300),
	)

	trackers := []models.Tracker{
		{Date: time.Date(2024, 3, 10, 18, 0, 0, 0, time.UTC), CompletedTime: floatPtr(30)},
		{Date: time.Date(2024, 3, 11, 18, 0, 0, 0, time.UTC), CompletedTime: floatPtr(75)},
	}

	res, err := services.ScoreWorkoutGoal(goal, data, trackers)
	require.NoError(t, err)

	assert.Equal(t, 2, res.GoalDurationDays)
	assert.Equal(t, 600.0, res.Duration.Target)
	assert.Equal(t, 105.0, res.Duration.Actual)
	assert.Equal(t, 17.5, res.Duration.Progress)
	assert.Equal(t, "in_progress", res.Duration.Status)
	assert.Equal(t, "working_towards_goal", res.Overall.Status)
	assert.Equal(t, 100.0, res.DayCompletionRate)
}

func TestScoreWorkoutGoal_Completed(t *testing.T) {
	goal, data := workoutGoal(
		time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC),
		floatPtr(50),
	)

	trackers := []models.Tracker{
		{Date: time.Date(2024, 3, 10, 18, 0, 0, 0, time.UTC), CompletedTime: floatPtr(120)},
	}

	res, err := services.ScoreWorkoutGoal(goal, data, trackers)
	require.NoError(t, err)

	assert.Equal(t, "completed", res.Duration.Status)
	assert.Equal(t, "goal_achieved", res.Overall.Status)
	assert.Equal(t, 50.0, res.DayCompletionRate) // one of two days tracked
}

func TestScoreWorkoutGoal_InvalidDuration(t *testing.T) {
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	goal, data := workoutGoal(day, day, floatPtr(300))

	_, err := services.ScoreWorkoutGoal(goal, data, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrInvalidGoalDuration))
}

func TestScoreWorkoutGoal_NoTargetMinutes(t *testing.T) {
	goal, data := workoutGoal(
		time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC),
		nil,
	)

	res, err := services.ScoreWorkoutGoal(goal, data, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Duration.Target)
	assert.Equal(t, 0.0, res.Duration.Progress)
}
