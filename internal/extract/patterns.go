package extract

import "regexp"

var (
	titlePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:add|create|make|new)\s+(?:a\s+)?(?:task|todo)\s+(?:to|for|about|that|which|will)?\s*(.+?)(?:\.|$)`),
		regexp.MustCompile(`(?:add|create|make|new)\s+(?:a\s+)?(?:task|todo)\s+(.+?)(?:\.|$)`),
	}
	titleCommandPrefix = regexp.MustCompile(`(?i)^(?:add|create|make|new)\s+(?:a\s+)?(?:task|todo)(?:\s+|$)`)

	implicitTitlePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bto\s+(.+)`),
		regexp.MustCompile(`(?i)\bneed to\s+(.+)`),
		regexp.MustCompile(`(?i)\bhave to\s+(.+)`),
	}

	ordinalPattern = regexp.MustCompile(`(?i)(?:task\s+|#)(\d+)`)
	uuidPattern    = regexp.MustCompile(`(?i)[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`)

	searchPhrasePattern = regexp.MustCompile(`(?i)(?:search|find|look for|show me)\s+(?:tasks|todos?)\s+(?:about|for|containing|with)?\s*(.+?)(?:\.|$)`)
	searchPrefixPattern = regexp.MustCompile(`(?i)^(?:search|find|look for|show me|what |what's |where is |looking for )\s*(?:(?:tasks|todos?)\b\s*)?`)

	titlePhrasePatterns = map[Verb]*regexp.Regexp{
		VerbEdit:     regexp.MustCompile(`(?i)(?:edit|update|change|modify)\s+(.+?)(?:\.|$)`),
		VerbComplete: regexp.MustCompile(`(?i)\b(?:task|to)\s+(.+?)(?:\s+(?:is|are|has|have)?\s*(?:done|completed|finished))?$`),
		VerbDelete:   regexp.MustCompile(`(?i)\b(?:task|to)\s+(.+?)(?:\s+(?:delete|remove|get rid of))?$`),
	}
	leadingTaskWord = regexp.MustCompile(`(?i)^(?:the\s+)?task\s+`)

	trailingPunct = regexp.MustCompile(`[.!?,]+$`)
)
