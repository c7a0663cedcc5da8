package router

import (
	"strings"

	"chat-task-manager/internal/extract"
)

// Fallback classifies with ordered keyword rules. The first matching rule wins,
// so "add something this week" is a VIEW_PLAN. Same text, same result.
func Fallback(message string) ParsedCommand {
	lower := strings.ToLower(message)
	cmd := ParsedCommand{Source: SourceRules}

	switch {
	case containsAny(lower, searchKeywords):
		cmd.Intent = IntentSearch
		cmd.SearchQuery, _ = extract.SearchTerm(message)

	case containsAny(lower, viewPlanKeywords):
		cmd.Intent = IntentViewPlan
		cmd.TimePeriod = extract.PeriodOf(message)

	case containsAny(lower, addVerbs) && containsAny(lower, addNouns):
		cmd.Intent = IntentAdd
		cmd.Title = addTitle(message)

	case containsAny(lower, completeKeywords):
		cmd.Intent = IntentComplete
		cmd.Title = extract.ImplicitTitle(message)
		cmd.ReferencedID, _ = extract.UUID(message)

	case containsAny(lower, deleteKeywords):
		cmd.Intent = IntentDelete
		cmd.Title = extract.ImplicitTitle(message)
		cmd.ReferencedID, _ = extract.UUID(message)

	case containsAny(lower, editKeywords):
		cmd.Intent = IntentEdit
		cmd.Title = extract.ImplicitTitle(message)
		cmd.ReferencedID, _ = extract.UUID(message)

	case containsAny(lower, implicitKeywords):
		cmd.Intent = IntentAdd
		cmd.Title = addTitle(message)

	default:
		cmd.Intent = IntentUnknown
		cmd.Title = message
	}

	return cmd
}

// addTitle prefers "... to X" phrasing and otherwise strips the add command,
// leaving the title empty when nothing usable is left.
func addTitle(message string) string {
	if implicit := extract.ImplicitTitle(message); implicit != strings.TrimRight(strings.TrimSpace(message), ".!?,") {
		return implicit
	}
	title, _ := extract.Title(message)
	return title
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
