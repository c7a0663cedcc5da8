package extract

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"chat-task-manager/pkg/datemath"
)

// Title returns the title of a task the message asks to create.
// ok is false when what remains is too vague to be a title.
func Title(text string) (string, bool) {
	lower := strings.ToLower(text)

	var title string
	for _, p := range titlePatterns {
		if m := p.FindStringSubmatch(lower); m != nil {
			title = strings.TrimSpace(m[1])
			break
		}
	}
	if title == "" {
		title = strings.TrimSpace(titleCommandPrefix.ReplaceAllString(strings.TrimSpace(text), ""))
	}

	if len([]rune(strings.Join(strings.Fields(title), ""))) < MinTermLength {
		return "", false
	}
	return title, true
}

// ImplicitTitle pulls the task out of statements like "I need to call mom".
// Falls back to the whole message.
func ImplicitTitle(text string) string {
	title := strings.TrimSpace(text)
	for _, p := range implicitTitlePatterns {
		if m := p.FindStringSubmatch(text); m != nil && m[1] != "" {
			title = m[1]
			break
		}
	}
	return strings.TrimRight(strings.TrimSpace(title), ".!?,")
}

// Ordinal returns N from "task N" or "#N". N is 1-based.
// A number too large for int is reported as math.MaxInt, which no list reaches.
func Ordinal(text string) (int, bool) {
	digits, ok := OrdinalText(text)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return math.MaxInt, true
	}
	return n, true
}

// OrdinalText returns the digits of "task N" or "#N" without leading zeros, however large.
func OrdinalText(text string) (string, bool) {
	m := ordinalPattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	digits := strings.TrimLeft(m[1], "0")
	if digits == "" {
		digits = "0"
	}
	return digits, true
}

// UUID returns the first canonical UUID in text, lower-cased.
func UUID(text string) (string, bool) {
	raw := uuidPattern.FindString(text)
	if raw == "" {
		return "", false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", false
	}
	return id.String(), true
}

// PeriodOf returns the time window named in text, PeriodAll when none is.
func PeriodOf(text string) Period {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "today"):
		return PeriodToday
	case strings.Contains(lower, "week"):
		return PeriodWeek
	case strings.Contains(lower, "month"):
		return PeriodMonth
	default:
		return PeriodAll
	}
}

// ExplicitDate finds a numeric calendar date in text, read in p's date order.
func ExplicitDate(text string, p *datemath.Parser) (time.Time, bool) {
	if p == nil {
		return time.Time{}, false
	}
	return p.FindDate(text)
}

// SearchTerm returns what a search message is looking for.
func SearchTerm(text string) (string, bool) {
	var term string
	if m := searchPhrasePattern.FindStringSubmatch(text); m != nil {
		term = m[1]
	} else {
		term = searchPrefixPattern.ReplaceAllString(strings.TrimSpace(text), "")
	}

	term = strings.TrimSpace(trailingPunct.ReplaceAllString(strings.TrimSpace(term), ""))
	if len([]rune(term)) < MinTermLength {
		return "", false
	}
	return term, true
}

// TitlePhrase returns the part of the message naming an existing task for verb.
func TitlePhrase(text string, verb Verb) (string, bool) {
	p, ok := titlePhrasePatterns[verb]
	if !ok {
		return "", false
	}
	m := p.FindStringSubmatch(trailingPunct.ReplaceAllString(strings.TrimSpace(text), ""))
	if m == nil {
		return "", false
	}

	phrase := strings.TrimSpace(m[1])
	if verb == VerbEdit {
		phrase = leadingTaskWord.ReplaceAllString(phrase, "")
	}
	phrase = strings.TrimSpace(phrase)
	if phrase == "" {
		return "", false
	}
	return phrase, true
}
