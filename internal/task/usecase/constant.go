package usecase

// Reply templates.
const (
	MsgEmptyMessage      = "Please provide a message"
	MsgError             = "Sorry, I encountered an error processing your request: %v"
	MsgUnderstood        = "I understood your message: '%s'. You can ask me to add, complete, delete, search, or view tasks."
	MsgAddTaskRequest    = "Could you please specify what task you'd like to add?"
	MsgTaskAdded         = "I've added the task: '%s'"
	MsgOrdinalNotFound   = "Task number %s doesn't exist. You have %d tasks."
	MsgReferenceNotFound = "I couldn't find the task you want to %[1]s. Please specify by task number (e.g., '%[1]s task 1') or title (e.g., '%[1]s task buy groceries')."
	MsgTaskCompleted     = "I've marked the task '%s' as completed!"
	MsgCompleteFailed    = "Sorry, I couldn't complete that task. It might not exist anymore."
	MsgTaskDeleted       = "I've deleted the task '%s'!"
	MsgDeleteFailed      = "Sorry, I couldn't delete that task. It might not exist anymore."
	MsgTaskEditFound     = "I found the task '%s'. What would you like to update about it?"
	MsgSearchRequest     = "What would you like me to search for in your tasks?"
	MsgSearchFound       = "I found %d task(s) containing '%s':"
	MsgSearchNoResults   = "I couldn't find any tasks containing '%s'."
	MsgViewPlan          = "For %s, you have %d pending tasks and %d completed tasks:"
	MsgViewAll           = "You have %d %s task(s):"
	MsgViewEmpty         = "You don't have any %s tasks right now."
)

// DescriptionCreatedVia is the default description of tasks added from chat.
const (
	DescriptionCreatedVia = "Created via chatbot on %s"
	DescriptionTimeLayout = "2006-01-02 15:04:05"
)

// View kinds, as named in VIEW replies.
const (
	ViewKindCompleted    = "completed"
	ViewKindPending      = "pending"
	ViewKindHighPriority = "high priority"
	ViewKindAll          = "all"
)
