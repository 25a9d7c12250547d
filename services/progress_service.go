package services

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/12Danish/NextRepBackend-sub000/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProgressService struct{ db *gorm.DB }

func NewProgressService(db *gorm.DB) *ProgressService { return &ProgressService{db: db} }

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func clampPct(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// ceilDays is the number of started days between from and to.
func ceilDays(from, to time.Time) int {
	return int(math.Ceil(to.Sub(from).Hours() / 24))
}

func (s *ProgressService) goalForUser(ctx context.Context, userID, goalID uuid.UUID, category models.GoalCategory) (*models.Goal, error) {
	var goal models.Goal
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", goalID, userID).
		First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if goal.Category != category {
		return nil, ErrInvalidCategory
	}
	return &goal, nil
}

// ---------- Weight ----------

type WeightProgress struct {
	GoalType      models.WeightGoalType `json:"goal_type"`
	StartWeight   float64               `json:"start_weight"`
	CurrentWeight float64               `json:"current_weight"`
	TargetWeight  float64               `json:"target_weight"`
	ProgressPct   float64               `json:"progress_pct"`
	Achieved      bool                  `json:"achieved"`
}

// ScoreWeightGoal computes attainment from the goal's own weight
// history; no scheduled entries or trackers are involved.
func ScoreWeightGoal(data *models.WeightGoalData) WeightProgress {
	start := data.CurrentWeight
	if len(data.PreviousWeights) > 0 {
		start = data.PreviousWeights[0].Weight
	}
	target := data.TargetWeight
	current := data.CurrentWeight

	totalChange := math.Abs(target - start)
	currentChange := math.Abs(current - start)

	var pct float64
	switch data.GoalType {
	case models.WeightGoalLoss:
		if current <= target {
			pct = 100
		} else if totalChange > 0 {
			pct = currentChange / totalChange * 100
		}
	case models.WeightGoalGain:
		if current >= target {
			pct = 100
		} else if totalChange > 0 {
			pct = currentChange / totalChange * 100
		}
	case models.WeightGoalMaintenance:
		// Every 2 kg of deviation costs the full 100 points. Kept as-is
		// from the product's original scoring curve.
		deviation := math.Abs(current - target)
		pct = math.Max(0, 100-deviation/2*100)
	}

	pct = round2(clampPct(pct))
	return WeightProgress{
		GoalType:      data.GoalType,
		StartWeight:   start,
		CurrentWeight: current,
		TargetWeight:  target,
		ProgressPct:   pct,
		Achieved:      pct >= 100,
	}
}

func (s *ProgressService) WeightProgress(ctx context.Context, userID, goalID uuid.UUID) (*WeightProgress, error) {
	goal, err := s.goalForUser(ctx, userID, goalID, models.GoalCategoryWeight)
	if err != nil {
		return nil, err
	}
	if goal.WeightData == nil {
		return nil, nil // no data yet
	}
	res := ScoreWeightGoal(goal.WeightData)
	return &res, nil
}

// ---------- Diet ----------

type NutrientProgress struct {
	Target   float64 `json:"target"`
	Actual   float64 `json:"actual"`
	Progress float64 `json:"progress"`
	Status   string  `json:"status"` // "on_track" | "exceeded"
}

type DietProgress struct {
	Calories NutrientProgress `json:"calories"`
	Protein  NutrientProgress `json:"protein"`
	Fat      NutrientProgress `json:"fat"`
	Carbs    NutrientProgress `json:"carbs"`
	Overall  struct {
		Progress float64 `json:"progress"`
	} `json:"overall"`
}

// consumptionRatio is the fraction of a scheduled meal actually eaten.
// Zero-weight meals and untracked meals contribute nothing.
func consumptionRatio(entry models.DietEntry, tracker *models.Tracker) float64 {
	if tracker == nil || tracker.WeightConsumed == nil || entry.MealWeight <= 0 {
		return 0
	}
	return *tracker.WeightConsumed / entry.MealWeight
}

// ScoreDietGoal sums tracked nutrient intake proportionally to how much
// of each scheduled meal was consumed, then scores each nutrient against
// the goal's daily-cumulative targets.
func ScoreDietGoal(data *models.DietGoalData, entries []models.DietEntry, trackersByRef map[uuid.UUID]*models.Tracker) DietProgress {
	var cals, prot, fat, carbs float64
	for _, e := range entries {
		ratio := consumptionRatio(e, trackersByRef[e.ID])
		cals += e.Calories * ratio
		prot += e.Protein * ratio
		fat += e.Fat * ratio
		carbs += e.Carbs * ratio
	}

	score := func(actual, target float64) NutrientProgress {
		np := NutrientProgress{Target: target, Actual: round2(actual), Status: "on_track"}
		if target > 0 {
			np.Progress = round2(actual / target * 100)
		}
		if actual > target {
			np.Status = "exceeded"
		}
		return np
	}

	out := DietProgress{
		Calories: score(cals, data.TargetCalories),
		Protein:  score(prot, data.TargetProteins),
		Fat:      score(fat, data.TargetFats),
		Carbs:    score(carbs, data.TargetCarbs),
	}
	out.Overall.Progress = round2((out.Calories.Progress + out.Protein.Progress + out.Fat.Progress + out.Carbs.Progress) / 4)
	return out
}

func (s *ProgressService) DietProgress(ctx context.Context, userID, goalID uuid.UUID) (*DietProgress, error) {
	goal, err := s.goalForUser(ctx, userID, goalID, models.GoalCategoryDiet)
	if err != nil {
		return nil, err
	}
	if goal.DietData == nil {
		return nil, nil
	}

	var entries []models.DietEntry
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND goal_id = ?", userID, goalID).
		Order("meal_date_and_time ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}

	trackers, err := s.trackersForEntries(ctx, userID, models.TrackerTypeDiet, dietEntryIDs(entries))
	if err != nil {
		return nil, err
	}
	if len(trackers) == 0 {
		return nil, nil // scheduled meals, nothing tracked yet
	}

	res := ScoreDietGoal(goal.DietData, entries, trackers)
	return &res, nil
}

// ---------- Sleep ----------

type SleepProgress struct {
	TargetHours       float64 `json:"target_hours"`
	DaysSinceStart    int     `json:"days_since_start"`
	DaysWithData      int     `json:"days_with_data"`
	DaysMeetingTarget int     `json:"days_meeting_target"`
	TrackingProgress  float64 `json:"tracking_progress"`
	TargetProgress    float64 `json:"target_progress"`
	Overall           struct {
		Progress float64 `json:"progress"`
	} `json:"overall"`
}

// ScoreSleepGoal splits credit evenly between logging consistency and
// hitting the nightly target. hoursByDate maps YYYY-MM-DD to the slept
// hours recorded for that day.
func ScoreSleepGoal(data *models.SleepGoalData, startDate, today time.Time, hoursByDate map[string]float64) SleepProgress {
	daysSinceStart := ceilDays(dayStartUTC(startDate), today.UTC())
	if daysSinceStart < 1 {
		daysSinceStart = 1
	}

	daysWithData := len(hoursByDate)
	daysMeetingTarget := 0
	for _, h := range hoursByDate {
		if h >= data.TargetHours {
			daysMeetingTarget++
		}
	}

	tracking := float64(daysWithData) / float64(daysSinceStart) * 50
	target := float64(daysMeetingTarget) / float64(daysSinceStart) * 50

	out := SleepProgress{
		TargetHours:       data.TargetHours,
		DaysSinceStart:    daysSinceStart,
		DaysWithData:      daysWithData,
		DaysMeetingTarget: daysMeetingTarget,
		TrackingProgress:  round2(tracking),
		TargetProgress:    round2(target),
	}
	out.Overall.Progress = round2(math.Min(tracking+target, 100))
	return out
}

func (s *ProgressService) SleepProgress(ctx context.Context, userID, goalID uuid.UUID) (*SleepProgress, error) {
	goal, err := s.goalForUser(ctx, userID, goalID, models.GoalCategorySleep)
	if err != nil {
		return nil, err
	}
	if goal.SleepData == nil {
		return nil, nil
	}

	now := time.Now().UTC()
	var entries []models.SleepEntry
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND goal_id = ? AND date >= ? AND date < ?",
			userID, goalID, dayStartUTC(goal.StartDate), dayStartUTC(now).AddDate(0, 0, 1)).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}

	trackers, err := s.trackersForEntries(ctx, userID, models.TrackerTypeSleep, sleepEntryIDs(entries))
	if err != nil {
		return nil, err
	}

	// Logged entries provide the baseline hours; a tracker on the same
	// entry overrides with the actually recorded night.
	hoursByDate := make(map[string]float64, len(entries))
	for _, e := range entries {
		key := e.Date.UTC().Format(DateLayout)
		hours := e.Duration / 60
		if t := trackers[e.ID]; t != nil && t.SleepHours != nil {
			hours = *t.SleepHours
		}
		hoursByDate[key] = hours
	}

	res := ScoreSleepGoal(goal.SleepData, goal.StartDate, now, hoursByDate)
	return &res, nil
}

// ---------- Workout ----------

type WorkoutProgress struct {
	ExerciseName       string  `json:"exercise_name"`
	GoalDurationDays   int     `json:"goal_duration_days"`
	DailyTargetMinutes float64 `json:"daily_target_minutes"`
	Duration           struct {
		Actual   float64 `json:"actual"`
		Target   float64 `json:"target"`
		Progress float64 `json:"progress"`
		Status   string  `json:"status"` // "completed" | "in_progress"
	} `json:"duration"`
	DayCompletionRate float64 `json:"day_completion_rate"`
	Overall           struct {
		Status string `json:"status"` // "goal_achieved" | "working_towards_goal"
	} `json:"overall"`
}

// ScoreWorkoutGoal compares tracked minutes against the daily target
// multiplied over the whole goal duration.
func ScoreWorkoutGoal(goal *models.Goal, data *models.WorkoutGoalData, trackers []models.Tracker) (*WorkoutProgress, error) {
	goalDurationDays := ceilDays(goal.StartDate, goal.TargetDate)
	if goalDurationDays <= 0 {
		return nil, ErrInvalidGoalDuration
	}

	dailyTarget := 0.0
	if data.TargetMinutes != nil {
		dailyTarget = *data.TargetMinutes
	}
	totalTarget := dailyTarget * float64(goalDurationDays)

	var actualMinutes float64
	trackedDays := make(map[string]struct{})
	for _, t := range trackers {
		if t.CompletedTime != nil {
			actualMinutes += *t.CompletedTime
		}
		trackedDays[t.Date.UTC().Format(DateLayout)] = struct{}{}
	}

	out := &WorkoutProgress{
		ExerciseName:       data.ExerciseName,
		GoalDurationDays:   goalDurationDays,
		DailyTargetMinutes: dailyTarget,
	}
	out.Duration.Actual = round2(actualMinutes)
	out.Duration.Target = totalTarget
	if totalTarget > 0 {
		out.Duration.Progress = round2(actualMinutes / totalTarget * 100)
	}
	if actualMinutes >= totalTarget {
		out.Duration.Status = "completed"
		out.Overall.Status = "goal_achieved"
	} else {
		out.Duration.Status = "in_progress"
		out.Overall.Status = "working_towards_goal"
	}
	out.DayCompletionRate = round2(float64(len(trackedDays)) / float64(goalDurationDays) * 100)
	return out, nil
}

func (s *ProgressService) WorkoutProgress(ctx context.Context, userID, goalID uuid.UUID) (*WorkoutProgress, error) {
	goal, err := s.goalForUser(ctx, userID, goalID, models.GoalCategoryWorkout)
	if err != nil {
		return nil, err
	}
	if goal.WorkoutData == nil {
		return nil, nil
	}

	var entries []models.WorkoutEntry
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND goal_id = ?", userID, goalID).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}

	trackerMap, err := s.trackersForEntries(ctx, userID, models.TrackerTypeWorkout, workoutEntryIDs(entries))
	if err != nil {
		return nil, err
	}
	if len(trackerMap) == 0 {
		return nil, nil // scheduled workouts, nothing tracked yet
	}
	trackers := make([]models.Tracker, 0, len(trackerMap))
	for _, t := range trackerMap {
		trackers = append(trackers, *t)
	}

	return ScoreWorkoutGoal(goal, goal.WorkoutData, trackers)
}

// ---------- shared fetch helpers ----------

func (s *ProgressService) trackersForEntries(ctx context.Context, userID uuid.UUID, typ models.TrackerType, refIDs []uuid.UUID) (map[uuid.UUID]*models.Tracker, error) {
	out := make(map[uuid.UUID]*models.Tracker)
	if len(refIDs) == 0 {
		return out, nil
	}
	var trackers []models.Tracker
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND type = ? AND reference_id IN ?", userID, typ, refIDs).
		Find(&trackers).Error; err != nil {
		return nil, err
	}
	for i := range trackers {
		out[trackers[i].ReferenceID] = &trackers[i]
	}
	return out, nil
}

func dietEntryIDs(entries []models.DietEntry) []uuid.UUID {
	ids := make([]uuid.UUID, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	return ids
}

func workoutEntryIDs(entries []models.WorkoutEntry) []uuid.UUID {
	ids := make([]uuid.UUID, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	return ids
}

func sleepEntryIDs(entries []models.SleepEntry) []uuid.UUID {
	ids := make([]uuid.UUID, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	return ids
}
