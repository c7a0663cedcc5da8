package extract_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chat-task-manager/internal/extract"
	"chat-task-manager/pkg/datemath"
)

func TestTitle(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{"add task to", "Add a task to buy groceries", "buy groceries", true},
		{"create todo for", "create todo for the quarterly report.", "the quarterly report", true},
		{"make task without connector", "make task water plants", "water plants", true},
		{"new task about", "New task about Dentist appointment", "dentist appointment", true},
		{"no phrase keeps message", "Call the plumber", "Call the plumber", true},
		{"bare command is vague", "add a task", "", false},
		{"single character", "add task x", "", false},
		{"blank", "   ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extract.Title(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestImplicitTitle(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"I need to call mom!", "call mom"},
		{"have to renew passport.", "renew passport"},
		{"Remember to water the plants,", "water the plants"},
		{"groceries", "groceries"},
		{"Add task buy potato chips", "Add task buy potato chips"},
		{"go to the gym", "the gym"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, extract.ImplicitTitle(tt.text))
		})
	}
}

func TestOrdinal(t *testing.T) {
	tests := []struct {
		text   string
		want   int
		wantOK bool
	}{
		{"complete task 2", 2, true},
		{"delete #14", 14, true},
		{"TASK 3 is done", 3, true},
		{"complete the report", 0, false},
		{"task 99999999999999999999999", math.MaxInt, true},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := extract.Ordinal(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOrdinalText(t *testing.T) {
	got, ok := extract.OrdinalText("complete task 99999999999999999999999")
	require.True(t, ok)
	assert.Equal(t, "99999999999999999999999", got)

	got, ok = extract.OrdinalText("delete #007")
	require.True(t, ok)
	assert.Equal(t, "7", got)

	got, ok = extract.OrdinalText("delete task 0")
	require.True(t, ok)
	assert.Equal(t, "0", got)

	_, ok = extract.OrdinalText("delete the report")
	assert.False(t, ok)
}

func TestUUID(t *testing.T) {
	got, ok := extract.UUID("complete 3F2504E0-4F89-11D3-9A0C-0305E82C3301 now")
	require.True(t, ok)
	assert.Equal(t, "3f2504e0-4f89-11d3-9a0c-0305e82c3301", got)

	_, ok = extract.UUID("complete task 1")
	assert.False(t, ok)

	_, ok = extract.UUID("3f2504e0-4f89-11d3-9a0c")
	assert.False(t, ok)
}

func TestPeriodOf(t *testing.T) {
	tests := []struct {
		text string
		want extract.Period
	}{
		{"what is due today", extract.PeriodToday},
		{"plan for this week and today", extract.PeriodToday},
		{"show my week", extract.PeriodWeek},
		{"Monthly agenda", extract.PeriodMonth},
		{"show my schedule", extract.PeriodAll},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, extract.PeriodOf(tt.text))
		})
	}
}

func TestExplicitDate(t *testing.T) {
	p, err := datemath.NewParser("UTC", datemath.OrderMDY)
	require.NoError(t, err)

	got, ok := extract.ExplicitDate("what's on 6/2/2026?", p)
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, time.June, 2, 0, 0, 0, 0, time.UTC), got)

	_, ok = extract.ExplicitDate("what's on 6/2/2026?", nil)
	assert.False(t, ok)
}

func TestSearchTerm(t *testing.T) {
	tests := []struct {
		text   string
		want   string
		wantOK bool
	}{
		{"find tasks about meeting", "meeting", true},
		{"Search todos containing Report.", "Report", true},
		{"show me tasks for groceries", "groceries", true},
		{"search dentist", "dentist", true},
		{"what's pending?", "pending", true},
		{"where is my passport form", "my passport form", true},
		{"find tasks", "", false},
		{"search x", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := extract.SearchTerm(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTitlePhrase(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		verb   extract.Verb
		want   string
		wantOK bool
	}{
		{"complete with suffix", "the task pay rent is done", extract.VerbComplete, "pay rent", true},
		{"complete plain", "complete task Pay Rent.", extract.VerbComplete, "Pay Rent", true},
		{"complete via to", "I managed to finish report finished", extract.VerbComplete, "finish report", true},
		{"delete with suffix", "task groceries remove", extract.VerbDelete, "groceries", true},
		{"delete plain", "delete task buy milk", extract.VerbDelete, "buy milk", true},
		{"edit strips task word", "edit task buy groceries", extract.VerbEdit, "buy groceries", true},
		{"edit stops at period", "update dentist. tomorrow", extract.VerbEdit, "dentist", true},
		{"no pattern", "complete everything", extract.VerbComplete, "", false},
		{"unknown verb", "task foo", extract.Verb("archive"), "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extract.TitlePhrase(tt.text, tt.verb)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
