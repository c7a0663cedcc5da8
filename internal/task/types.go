package task

import "chat-task-manager/internal/model"

// ActionTag names the outcome of an interpreted message. Exactly one per response.
type ActionTag string

const (
	ActionTaskAddSuccess      ActionTag = "TASK_ADD_SUCCESS"
	ActionAddTaskRequest      ActionTag = "ADD_TASK_REQUEST"
	ActionTaskCompleteSuccess ActionTag = "TASK_COMPLETE_SUCCESS"
	ActionTaskUpdateFailed    ActionTag = "TASK_UPDATE_FAILED"
	ActionTaskDeleteSuccess   ActionTag = "TASK_DELETE_SUCCESS"
	ActionTaskDeleteFailed    ActionTag = "TASK_DELETE_FAILED"
	ActionTaskEditFound       ActionTag = "TASK_EDIT_FOUND"
	ActionTaskNotFound        ActionTag = "TASK_NOT_FOUND"
	ActionTaskSearch          ActionTag = "TASK_SEARCH"
	ActionTaskSearchNoResults ActionTag = "TASK_SEARCH_NO_RESULTS"
	ActionSearchRequest       ActionTag = "SEARCH_REQUEST"
	ActionTaskViewPlan        ActionTag = "TASK_VIEW_PLAN"
	ActionTaskViewAll         ActionTag = "TASK_VIEW_ALL"
	ActionTaskViewEmpty       ActionTag = "TASK_VIEW_EMPTY"
	ActionUnderstood          ActionTag = "UNDERSTOOD"
	ActionError               ActionTag = "ERROR"
)

// Valid reports whether a belongs to the closed tag set.
func (a ActionTag) Valid() bool {
	switch a {
	case ActionTaskAddSuccess, ActionAddTaskRequest, ActionTaskCompleteSuccess, ActionTaskUpdateFailed,
		ActionTaskDeleteSuccess, ActionTaskDeleteFailed, ActionTaskEditFound, ActionTaskNotFound,
		ActionTaskSearch, ActionTaskSearchNoResults, ActionSearchRequest, ActionTaskViewPlan,
		ActionTaskViewAll, ActionTaskViewEmpty, ActionUnderstood, ActionError:
		return true
	}
	return false
}

// Summary counts the tasks in a listing response.
type Summary struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
}

// CommandResponse is the single reply to one chat message.
type CommandResponse struct {
	Message        string       `json:"message"`
	Action         ActionTag    `json:"action"`
	Task           *model.Task  `json:"task,omitempty"`
	Tasks          []model.Task `json:"tasks,omitempty"`
	PendingTasks   []model.Task `json:"pending_tasks,omitempty"`
	CompletedTasks []model.Task `json:"completed_tasks,omitempty"`
	Summary        *Summary     `json:"summary,omitempty"`
}
