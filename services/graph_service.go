package services

import (
	"context"
	"time"

	"github.com/12Danish/NextRepBackend-sub000/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GraphService struct{ db *gorm.DB }

func NewGraphService(db *gorm.DB) *GraphService { return &GraphService{db: db} }

type DateRange struct {
	Start    string   `json:"start"`
	End      string   `json:"end"`
	ViewType ViewType `json:"viewType"`
}

func newDateRange(view ViewType, start, end time.Time) DateRange {
	return DateRange{
		Start:    start.Format(DateLayout),
		End:      end.Format(DateLayout),
		ViewType: view,
	}
}

// ---------- Diet ----------

type DietMetrics struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

type DietAdherence struct {
	Calories *float64 `json:"calories"`
	Protein  *float64 `json:"protein"`
	Carbs    *float64 `json:"carbs"`
	Fat      *float64 `json:"fat"`
}

// DietDay is one day bucket. Actual and Adherence are nil for days
// where no scheduled entry has a tracker; individual adherence metrics
// are nil where the scheduled amount is zero.
type DietDay struct {
	Date      string         `json:"date"`
	Meals     int            `json:"meals"`
	Scheduled DietMetrics    `json:"scheduled"`
	Actual    *DietMetrics   `json:"actual"`
	Adherence *DietAdherence `json:"adherence"`
}

func adherencePct(actual, scheduled float64) *float64 {
	if scheduled <= 0 {
		return nil
	}
	v := round2(actual / scheduled * 100)
	return &v
}

// BuildDietDays groups scheduled meals by UTC calendar date and derives
// scheduled/actual/adherence series, gap-filled over [start, end).
func BuildDietDays(entries []models.DietEntry, trackersByRef map[uuid.UUID]*models.Tracker, start, end time.Time) []DietDay {
	byDate := make(map[string]*DietDay)
	for _, e := range entries {
		key := e.MealDateAndTime.UTC().Format(DateLayout)
		day := byDate[key]
		if day == nil {
			day = &DietDay{Date: key}
			byDate[key] = day
		}
		day.Meals++
		day.Scheduled.Calories += e.Calories
		day.Scheduled.Protein += e.Protein
		day.Scheduled.Carbs += e.Carbs
		day.Scheduled.Fat += e.Fat

		tracker := trackersByRef[e.ID]
		if tracker == nil {
			continue // untracked meals count as scheduled only
		}
		if day.Actual == nil {
			day.Actual = &DietMetrics{}
		}
		ratio := consumptionRatio(e, tracker)
		day.Actual.Calories += e.Calories * ratio
		day.Actual.Protein += e.Protein * ratio
		day.Actual.Carbs += e.Carbs * ratio
		day.Actual.Fat += e.Fat * ratio
	}

	days := make([]DietDay, 0, len(byDate))
	for _, d := range byDate {
		if d.Actual != nil {
			d.Actual.Calories = round2(d.Actual.Calories)
			d.Actual.Protein = round2(d.Actual.Protein)
			d.Actual.Carbs = round2(d.Actual.Carbs)
			d.Actual.Fat = round2(d.Actual.Fat)
			d.Adherence = &DietAdherence{
				Calories: adherencePct(d.Actual.Calories, d.Scheduled.Calories),
				Protein:  adherencePct(d.Actual.Protein, d.Scheduled.Protein),
				Carbs:    adherencePct(d.Actual.Carbs, d.Scheduled.Carbs),
				Fat:      adherencePct(d.Actual.Fat, d.Scheduled.Fat),
			}
		}
		days = append(days, *d)
	}

	return FillGaps(days, start, end,
		func(d DietDay) string { return d.Date },
		func(date string) DietDay { return DietDay{Date: date} },
	)
}

func (s *GraphService) DietGraph(ctx context.Context, userID uuid.UUID, view ViewType, offset int, anchor time.Time) ([]DietDay, DateRange, error) {
	start, end := GraphRange(view, offset, anchor)

	var entries []models.DietEntry
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND meal_date_and_time >= ? AND meal_date_and_time < ?", userID, start, end).
		Find(&entries).Error; err != nil {
		return nil, DateRange{}, err
	}

	trackers, err := s.trackersForRefs(ctx, userID, models.TrackerTypeDiet, dietEntryIDs(entries))
	if err != nil {
		return nil, DateRange{}, err
	}

	return BuildDietDays(entries, trackers, start, end), newDateRange(view, start, end), nil
}

// ---------- Workout ----------

type WorkoutDay struct {
	Date      string `json:"date"`
	Scheduled struct {
		Duration float64 `json:"duration"`
		Workouts int     `json:"workouts"`
	} `json:"scheduled"`
	Actual *struct {
		Duration float64 `json:"duration"`
	} `json:"actual"`
	Adherence *struct {
		Duration *float64 `json:"duration"`
	} `json:"adherence"`
}

// BuildWorkoutDays mirrors BuildDietDays for workout sessions. A day is
// "tracked" when at least one of its entries has a tracker; entries
// without their own tracker then contribute zero actual minutes.
func BuildWorkoutDays(entries []models.WorkoutEntry, trackersByRef map[uuid.UUID]*models.Tracker, start, end time.Time) []WorkoutDay {
	byDate := make(map[string]*WorkoutDay)
	for _, e := range entries {
		key := e.WorkoutDateAndTime.UTC().Format(DateLayout)
		day := byDate[key]
		if day == nil {
			day = &WorkoutDay{Date: key}
			byDate[key] = day
		}
		day.Scheduled.Duration += e.Duration
		day.Scheduled.Workouts++

		tracker := trackersByRef[e.ID]
		if tracker == nil {
			continue
		}
		if day.Actual == nil {
			day.Actual = &struct {
				Duration float64 `json:"duration"`
			}{}
		}
		if tracker.CompletedTime != nil {
			day.Actual.Duration += *tracker.CompletedTime
		}
	}

	days := make([]WorkoutDay, 0, len(byDate))
	for _, d := range byDate {
		if d.Actual != nil {
			d.Actual.Duration = round2(d.Actual.Duration)
			d.Adherence = &struct {
				Duration *float64 `json:"duration"`
			}{Duration: adherencePct(d.Actual.Duration, d.Scheduled.Duration)}
		}
		days = append(days, *d)
	}

	return FillGaps(days, start, end,
		func(d WorkoutDay) string { return d.Date },
		func(date string) WorkoutDay { return WorkoutDay{Date: date} },
	)
}

func (s *GraphService) WorkoutGraph(ctx context.Context, userID uuid.UUID, view ViewType, offset int, anchor time.Time) ([]WorkoutDay, DateRange, error) {
	start, end := GraphRange(view, offset, anchor)

	var entries []models.WorkoutEntry
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND workout_date_and_time >= ? AND workout_date_and_time < ?", userID, start, end).
		Find(&entries).Error; err != nil {
		return nil, DateRange{}, err
	}

	trackers, err := s.trackersForRefs(ctx, userID, models.TrackerTypeWorkout, workoutEntryIDs(entries))
	if err != nil {
		return nil, DateRange{}, err
	}

	return BuildWorkoutDays(entries, trackers, start, end), newDateRange(view, start, end), nil
}

// ---------- Sleep ----------

// SleepDay has no scheduled/actual split; logged sleep is its own actual.
type SleepDay struct {
	Date            string  `json:"date"`
	Duration        float64 `json:"duration"` // minutes
	SleepCount      int     `json:"sleepCount"`
	AverageDuration float64 `json:"averageDuration"`
}

func BuildSleepDays(entries []models.SleepEntry, start, end time.Time) []SleepDay {
	byDate := make(map[string]*SleepDay)
	for _, e := range entries {
		key := e.Date.UTC().Format(DateLayout)
		day := byDate[key]
		if day == nil {
			day = &SleepDay{Date: key}
			byDate[key] = day
		}
		day.Duration += e.Duration
		day.SleepCount++
	}

	days := make([]SleepDay, 0, len(byDate))
	for _, d := range byDate {
		d.AverageDuration = round2(d.Duration / float64(d.SleepCount))
		days = append(days, *d)
	}

	return FillGaps(days, start, end,
		func(d SleepDay) string { return d.Date },
		func(date string) SleepDay { return SleepDay{Date: date} },
	)
}

func (s *GraphService) SleepGraph(ctx context.Context, userID uuid.UUID, view ViewType, offset int, anchor time.Time) ([]SleepDay, DateRange, error) {
	start, end := GraphRange(view, offset, anchor)

	var entries []models.SleepEntry
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Find(&entries).Error; err != nil {
		return nil, DateRange{}, err
	}

	return BuildSleepDays(entries, start, end), newDateRange(view, start, end), nil
}

// ---------- internals ----------

func (s *GraphService) trackersForRefs(ctx context.Context, userID uuid.UUID, typ models.TrackerType, refIDs []uuid.UUID) (map[uuid.UUID]*models.Tracker, error) {
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
