// Package schedule selects the tasks due within a period or on a given date.
package schedule

import (
	"time"

	"chat-task-manager/internal/extract"
	"chat-task-manager/internal/model"
	"chat-task-manager/pkg/datemath"
)

// Labels used in plan summaries.
const (
	LabelToday    = "today"
	LabelWeek     = "this week"
	LabelMonth    = "this month"
	LabelSchedule = "your schedule"
	LabelAllTasks = "all tasks"
)

// Period is either a named window or an explicit date. A non-zero Date wins over Kind.
type Period struct {
	Kind extract.Period
	Date time.Time
}

// Result is the filtered subset, in input order.
type Result struct {
	Tasks []model.Task
	Label string
	// Widened is set when nothing had a due date and every task was returned instead.
	Widened bool
}

// Filter compares calendar dates in the parser's timezone.
type Filter struct {
	dates *datemath.Parser
}

// New creates a Filter.
func New(dates *datemath.Parser) *Filter {
	return &Filter{dates: dates}
}

// Apply returns the tasks due in period relative to now.
func (f *Filter) Apply(tasks []model.Task, period Period, now time.Time) Result {
	today := f.dates.StartOfDay(now)

	if !period.Date.IsZero() {
		day := f.dates.CalendarDate(period.Date)
		return Result{
			Tasks: f.selectDue(tasks, func(due time.Time) bool { return due.Equal(day) }),
			Label: f.dates.Label(day),
		}
	}

	switch period.Kind {
	case extract.PeriodToday:
		return Result{
			Tasks: f.selectDue(tasks, func(due time.Time) bool { return due.Equal(today) }),
			Label: LabelToday,
		}

	case extract.PeriodWeek:
		monday, sunday := f.dates.WeekBounds(today)
		return Result{
			Tasks: f.selectDue(tasks, func(due time.Time) bool { return f.dates.InRange(due, monday, sunday) }),
			Label: LabelWeek,
		}

	case extract.PeriodMonth:
		return Result{
			Tasks: f.selectDue(tasks, func(due time.Time) bool { return f.dates.SameMonth(due, today) }),
			Label: LabelMonth,
		}

	default:
		dated := f.selectDue(tasks, func(time.Time) bool { return true })
		if len(dated) == 0 {
			return Result{Tasks: append([]model.Task{}, tasks...), Label: LabelAllTasks, Widened: true}
		}
		return Result{Tasks: dated, Label: LabelSchedule}
	}
}

func (f *Filter) selectDue(tasks []model.Task, keep func(due time.Time) bool) []model.Task {
	out := []model.Task{}
	for _, t := range tasks {
		if t.DueDate == nil {
			continue
		}
		if keep(f.dates.CalendarDate(*t.DueDate)) {
			out = append(out, t)
		}
	}
	return out
}

// Partition splits tasks into pending (anything not done) and completed, keeping order.
func Partition(tasks []model.Task) (pending, completed []model.Task) {
	pending, completed = []model.Task{}, []model.Task{}
	for _, t := range tasks {
		if t.IsDone() {
			completed = append(completed, t)
		} else {
			pending = append(pending, t)
		}
	}
	return pending, completed
}
