package usecase

import (
	"time"

	"chat-task-manager/internal/router"
	"chat-task-manager/internal/schedule"
	"chat-task-manager/internal/task"
	"chat-task-manager/internal/task/repository"
	"chat-task-manager/pkg/datemath"
	pkgLog "chat-task-manager/pkg/log"
)

// DefaultListLimit is how many tasks a handler reads when none is configured.
const DefaultListLimit = 20

type implUseCase struct {
	l         pkgLog.Logger
	router    router.Router
	repo      repository.Repository
	dateMath  *datemath.Parser
	filter    *schedule.Filter
	listLimit int
	now       func() time.Time
}

var _ task.UseCase = (*implUseCase)(nil)

// New creates a new task UseCase instance.
func New(
	l pkgLog.Logger,
	rt router.Router,
	repo repository.Repository,
	dateMath *datemath.Parser,
	listLimit int,
) *implUseCase {
	if listLimit <= 0 {
		listLimit = DefaultListLimit
	}
	return &implUseCase{
		l:         l,
		router:    rt,
		repo:      repo,
		dateMath:  dateMath,
		filter:    schedule.New(dateMath),
		listLimit: listLimit,
		now:       time.Now,
	}
}
