package router

import "chat-task-manager/internal/extract"

// Intent is the classified purpose of a chat message.
type Intent string

const (
	IntentAdd      Intent = "ADD"
	IntentComplete Intent = "COMPLETE"
	IntentDelete   Intent = "DELETE"
	IntentEdit     Intent = "EDIT"
	IntentSearch   Intent = "SEARCH"
	IntentViewPlan Intent = "VIEW_PLAN"
	IntentView     Intent = "VIEW"
	IntentUnknown  Intent = "UNKNOWN"
)

// Valid reports whether i belongs to the closed intent set.
func (i Intent) Valid() bool {
	switch i {
	case IntentAdd, IntentComplete, IntentDelete, IntentEdit,
		IntentSearch, IntentViewPlan, IntentView, IntentUnknown:
		return true
	}
	return false
}

// Source records which classifier produced a ParsedCommand.
type Source string

const (
	SourceLLM   Source = "llm"
	SourceRules Source = "rules"
)

// ParsedCommand is the structured form of one message. Optional fields are empty when absent.
type ParsedCommand struct {
	Intent       Intent
	Title        string
	Description  string
	ReferencedID string
	SearchQuery  string
	TimePeriod   extract.Period
	Source       Source
}

// llmOutput is the JSON shape requested from the model.
type llmOutput struct {
	Intent      string `json:"intent"`
	TaskDetails struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		ID          any    `json:"id"`
	} `json:"task_details"`
	SearchQuery *string `json:"search_query"`
	TimePeriod  *string `json:"time_period"`
}
