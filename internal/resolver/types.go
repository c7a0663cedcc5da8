package resolver

import "chat-task-manager/internal/model"

// Reason explains why no task was resolved.
type Reason string

const (
	ReasonNone              Reason = ""
	ReasonNoMatch           Reason = "no_match"
	ReasonOrdinalOutOfRange Reason = "ordinal_out_of_range"
)

// Strategy names the rule that found the task.
type Strategy string

const (
	StrategyUUID    Strategy = "uuid"
	StrategyOrdinal Strategy = "ordinal"
	StrategyTitle   Strategy = "title"
)

// Reference is the outcome of resolving a message against a task list.
// When Found is false, Reason says why; Ordinal, OrdinalText and Size are set for
// ReasonOrdinalOutOfRange. OrdinalText keeps numbers too large for Ordinal.
type Reference struct {
	Task        model.Task
	Found       bool
	Strategy    Strategy
	Reason      Reason
	Ordinal     int
	OrdinalText string
	Size        int
}
