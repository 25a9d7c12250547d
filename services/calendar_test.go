package services_test

import (
	"testing"
	"time"

	"github.com/12Danish/NextRepBackend-sub000/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateRange_Day(t *testing.T) {
	anchor := time.Date(2024, 3, 15, 13, 45, 12, 0, time.UTC)

	start, end := services.CalculateRange(services.ViewTypeDay, 0, anchor)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, 24*time.Hour, end.Sub(start))

	start, end = services.CalculateRange(services.ViewTypeDay, -3, anchor)
	assert.Equal(t, time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, 24*time.Hour, end.Sub(start))
}

func TestCalculateRange_Day_MidnightIsPreserved(t *testing.T) {
	anchor := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	start, _ := services.CalculateRange(services.ViewTypeDay, 0, anchor)
	assert.Equal(t, anchor, start)
}

func TestCalculateRange_Week(t *testing.T) {
	// 2024-03-13 is a Wednesday; the enclosing week starts Sunday 03-10.
	anchor := time.Date(2024, 3, 13, 9, 0, 0, 0, time.UTC)

	start, end := services.CalculateRange(services.ViewTypeWeek, 0, anchor)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Sunday, start.Weekday())
	assert.Equal(t, 7*24*time.Hour, end.Sub(start))

	start, _ = services.CalculateRange(services.ViewTypeWeek, 1, anchor)
	assert.Equal(t, time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC), start)

	start, _ = services.CalculateRange(services.ViewTypeWeek, -2, anchor)
	assert.Equal(t, time.Date(2024, 2, 25, 0, 0, 0, 0, time.UTC), start)
}

func TestCalculateRange_Week_AnchorOnSunday(t *testing.T) {
	anchor := time.Date(2024, 3, 10, 23, 0, 0, 0, time.UTC) // Sunday
	start, _ := services.CalculateRange(services.ViewTypeWeek, 0, anchor)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), start)
}

func TestCalculateRange_Month(t *testing.T) {
	anchor := time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)

	start, end := services.CalculateRange(services.ViewTypeMonth, 0, anchor)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), end)

	start, end = services.CalculateRange(services.ViewTypeMonth, -2, anchor)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), end)

	// offsets roll over year boundaries
	start, end = services.CalculateRange(services.ViewTypeMonth, 10, anchor)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestTrailingRange_Week(t *testing.T) {
	anchor := time.Date(2024, 3, 13, 14, 0, 0, 0, time.UTC)

	// current window: 7 days ending today inclusive
	start, end := services.TrailingRange(services.ViewTypeWeek, 0, anchor)
	assert.Equal(t, time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC), end)
	assert.Equal(t, time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC), start)

	// one full period further back
	start, end = services.TrailingRange(services.ViewTypeWeek, -1, anchor)
	assert.Equal(t, time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC), end)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), start)
}

func TestTrailingRange_Month(t *testing.T) {
	anchor := time.Date(2024, 3, 13, 14, 0, 0, 0, time.UTC)

	start, end := services.TrailingRange(services.ViewTypeMonth, 0, anchor)
	assert.Equal(t, 30*24*time.Hour, end.Sub(start))
	assert.Equal(t, time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC), end)
}

func TestParseViewType(t *testing.T) {
	for _, valid := range []string{"day", "week", "month"} {
		v, err := services.ParseViewType(valid)
		require.NoError(t, err)
		assert.Equal(t, services.ViewType(valid), v)
	}

	_, err := services.ParseViewType("year")
	assert.Error(t, err)
}

type testBucket struct {
	Date  string
	Value float64
}

func fillTestBuckets(records []testBucket, start, end time.Time) []testBucket {
	return services.FillGaps(records, start, end,
		func(b testBucket) string { return b.Date },
		func(date string) testBucket { return testBucket{Date: date} },
	)
}

func TestFillGaps_Completeness(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)

	out := fillTestBuckets([]testBucket{
		{Date: "2024-03-05", Value: 5},
		{Date: "2024-03-03", Value: 3},
	}, start, end)

	require.Len(t, out, 7)
	seen := map[string]bool{}
	for i, b := range out {
		assert.False(t, seen[b.Date], "duplicate date %s", b.Date)
		seen[b.Date] = true
		if i > 0 {
			assert.Less(t, out[i-1].Date, b.Date, "dates must ascend")
		}
	}
	assert.Equal(t, 3.0, out[2].Value)
	assert.Equal(t, 5.0, out[4].Value)
	assert.Equal(t, 0.0, out[0].Value)
}

func TestFillGaps_IdentityOnDenseInput(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	dense := []testBucket{
		{Date: "2024-03-01", Value: 1},
		{Date: "2024-03-02", Value: 2},
		{Date: "2024-03-03", Value: 3},
	}
	out := fillTestBuckets(dense, start, end)
	assert.Equal(t, dense, out)
}

func TestFillGaps_EmptyInput(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	out := fillTestBuckets(nil, start, end)
	require.Len(t, out, 30)
	for _, b := range out {
		assert.Zero(t, b.Value)
	}
}

func TestFillGaps_EmptyRange(t *testing.T) {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	out := fillTestBuckets(nil, day, day)
	assert.Empty(t, out)
}
