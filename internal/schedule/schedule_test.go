package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chat-task-manager/internal/extract"
	"chat-task-manager/internal/model"
	"chat-task-manager/internal/schedule"
	"chat-task-manager/pkg/datemath"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func ids(tasks []model.Task) []string {
	out := []string{}
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func newFilter(t *testing.T, tz string) *schedule.Filter {
	t.Helper()
	p, err := datemath.NewParser(tz, datemath.OrderDMY)
	require.NoError(t, err)
	return schedule.New(p)
}

// Friday 6 February 2026, 10:00 in New York.
var now = time.Date(2026, 2, 6, 15, 0, 0, 0, time.UTC)

var tasks = []model.Task{
	{ID: "today", DueDate: date(2026, 2, 6), Status: model.TaskStatusTodo},
	{ID: "monday", DueDate: date(2026, 2, 2), Status: model.TaskStatusDone},
	{ID: "sunday", DueDate: date(2026, 2, 8), Status: model.TaskStatusInProgress},
	{ID: "next-monday", DueDate: date(2026, 2, 9), Status: model.TaskStatusTodo},
	{ID: "last-month", DueDate: date(2026, 1, 31), Status: model.TaskStatusTodo},
	{ID: "last-year", DueDate: date(2025, 2, 6), Status: model.TaskStatusTodo},
	{ID: "undated", Status: model.TaskStatusTodo},
}

func TestApply(t *testing.T) {
	f := newFilter(t, "America/New_York")

	tests := []struct {
		name      string
		period    schedule.Period
		wantIDs   []string
		wantLabel string
	}{
		{"today", schedule.Period{Kind: extract.PeriodToday}, []string{"today"}, "today"},
		{"week is monday to sunday", schedule.Period{Kind: extract.PeriodWeek}, []string{"today", "monday", "sunday"}, "this week"},
		{"month", schedule.Period{Kind: extract.PeriodMonth}, []string{"today", "monday", "sunday", "next-monday"}, "this month"},
		{"all dated", schedule.Period{Kind: extract.PeriodAll}, []string{"today", "monday", "sunday", "next-monday", "last-month", "last-year"}, "your schedule"},
		{"empty kind behaves as all", schedule.Period{}, []string{"today", "monday", "sunday", "next-monday", "last-month", "last-year"}, "your schedule"},
		{
			"explicit date wins over kind",
			schedule.Period{Kind: extract.PeriodToday, Date: time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)},
			[]string{"last-month"},
			"January 31, 2026",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := f.Apply(tasks, tt.period, now)
			assert.Equal(t, tt.wantIDs, ids(res.Tasks))
			assert.Equal(t, tt.wantLabel, res.Label)
			assert.False(t, res.Widened)
		})
	}
}

func TestApply_TimezoneDecidesToday(t *testing.T) {
	// 02:00 UTC on the 7th is still the 6th in New York, already the 7th in Ho Chi Minh City.
	late := time.Date(2026, 2, 7, 2, 0, 0, 0, time.UTC)

	ny := newFilter(t, "America/New_York").Apply(tasks, schedule.Period{Kind: extract.PeriodToday}, late)
	assert.Equal(t, []string{"today"}, ids(ny.Tasks))

	hcm := newFilter(t, "Asia/Ho_Chi_Minh").Apply(tasks, schedule.Period{Kind: extract.PeriodToday}, late)
	assert.Empty(t, hcm.Tasks)
}

func TestApply_WidensWhenNothingIsDated(t *testing.T) {
	f := newFilter(t, "UTC")
	undated := []model.Task{{ID: "a"}, {ID: "b"}}

	res := f.Apply(undated, schedule.Period{Kind: extract.PeriodAll}, now)
	assert.True(t, res.Widened)
	assert.Equal(t, "all tasks", res.Label)
	assert.Equal(t, []string{"a", "b"}, ids(res.Tasks))

	res = f.Apply(undated, schedule.Period{Kind: extract.PeriodWeek}, now)
	assert.False(t, res.Widened)
	assert.Empty(t, res.Tasks)

	res = f.Apply(undated, schedule.Period{Date: now}, now)
	assert.False(t, res.Widened)
	assert.Empty(t, res.Tasks)
}

func TestApply_TodayIsIdempotent(t *testing.T) {
	f := newFilter(t, "America/New_York")
	period := schedule.Period{Kind: extract.PeriodToday}

	once := f.Apply(tasks, period, now)
	twice := f.Apply(once.Tasks, period, now)

	assert.Equal(t, once.Tasks, twice.Tasks)
}

func TestPartition(t *testing.T) {
	pending, completed := schedule.Partition(tasks[:3])

	assert.Equal(t, []string{"today", "sunday"}, ids(pending))
	assert.Equal(t, []string{"monday"}, ids(completed))

	pending, completed = schedule.Partition(nil)
	assert.NotNil(t, pending)
	assert.NotNil(t, completed)
}
