package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
	LogPrefixFallback = "internal.router.Fallback"
)

// Router prompts
const (
	PromptClassify = `You are a task management assistant. Analyze the following user input and respond in JSON format.

User input: "%s"

Return a JSON object with the following structure:
{
  "intent": "ADD|COMPLETE|DELETE|EDIT|SEARCH|VIEW_PLAN|UNKNOWN",
  "task_details": {
    "title": "extracted task title if applicable",
    "description": "extracted description if applicable",
    "id": "task ID if referenced in the input"
  },
  "search_query": "search query if intent is SEARCH, otherwise null",
  "time_period": "today|week|month|all if intent is VIEW_PLAN, otherwise null"
}

If the intent is ADD, extract the task title. If it is COMPLETE, DELETE or EDIT, identify the task ID or title.
If it is SEARCH, extract the search query. If it is VIEW_PLAN, identify the time period.`
)

// Router configuration
const (
	RouterTemperature = 0.1
	RouterMaxTokens   = 512
)

// Error messages
const (
	ErrMsgLLMCallFailed   = "LLM call failed, using keyword rules"
	ErrMsgEmptyResponse   = "Empty LLM response, using keyword rules"
	ErrMsgNoJSONObject    = "No JSON object in LLM response, using keyword rules"
	ErrMsgUnknownIntent   = "LLM returned an unknown intent"
	ErrMsgNoProviderRules = "No LLM configured, using keyword rules"
)

// Keyword triggers of the fallback classifier, checked in rule order.
var (
	searchKeywords   = []string{"search", "find", "show me", "what", "looking for", "where is"}
	viewPlanKeywords = []string{"week", "month", "today", "tomorrow", "yesterday", "plan", "schedule", "agenda"}
	addVerbs         = []string{"add", "create", "make", "new"}
	addNouns         = []string{"task", "todo", "do", "need to", "have to"}
	completeKeywords = []string{"complete", "finish", "done", "completed", "finished"}
	deleteKeywords   = []string{"delete", "remove", "cancel", "clear", "done with"}
	editKeywords     = []string{"edit", "update", "change", "modify", "alter"}
	implicitKeywords = []string{"to ", "need to ", "have to "}
)
