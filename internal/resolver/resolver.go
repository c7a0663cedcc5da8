// Package resolver finds the single task a chat message refers to.
package resolver

import (
	"strings"

	"chat-task-manager/internal/extract"
	"chat-task-manager/internal/model"
)

// Resolve tries, in order: an exact UUID match, a 1-based position in tasks,
// then the first task whose title contains the verb's title phrase.
// tasks must be in the store's newest-first order for positions to mean what the user saw.
func Resolve(message string, verb extract.Verb, tasks []model.Task) Reference {
	if id, ok := extract.UUID(message); ok {
		for _, t := range tasks {
			if strings.EqualFold(t.ID, id) {
				return found(t, StrategyUUID)
			}
		}
	}

	if n, ok := extract.Ordinal(message); ok {
		if n < 1 || n > len(tasks) {
			digits, _ := extract.OrdinalText(message)
			return Reference{Reason: ReasonOrdinalOutOfRange, Ordinal: n, OrdinalText: digits, Size: len(tasks)}
		}
		return found(tasks[n-1], StrategyOrdinal)
	}

	if phrase, ok := extract.TitlePhrase(message, verb); ok {
		phrase = strings.ToLower(phrase)
		for _, t := range tasks {
			if strings.Contains(strings.ToLower(t.Title), phrase) {
				return found(t, StrategyTitle)
			}
		}
	}

	return Reference{Reason: ReasonNoMatch}
}

func found(t model.Task, s Strategy) Reference {
	return Reference{Task: t, Found: true, Strategy: s}
}
