package usecase

import (
	"crypto/rand"
	"io"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"chat-task-manager/internal/conversation"
	"chat-task-manager/internal/conversation/repository"
	"chat-task-manager/pkg/log"
)

// DefaultHistoryLimit applies when neither the caller nor the config sets one.
const DefaultHistoryLimit = 50

type implUseCase struct {
	repo         repository.Repository
	l            log.Logger
	historyLimit int
	now          func() time.Time

	mu      sync.Mutex
	entropy io.Reader
}

var _ conversation.UseCase = (*implUseCase)(nil)

// New creates a conversation UseCase. historyLimit caps History when the caller passes none.
func New(repo repository.Repository, l log.Logger, historyLimit int) *implUseCase {
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}
	return &implUseCase{
		repo:         repo,
		l:            l,
		historyLimit: historyLimit,
		now:          time.Now,
		entropy:      ulid.Monotonic(rand.Reader, 0),
	}
}

// newID returns a ULID that sorts after every id this use case issued before.
func (uc *implUseCase) newID(t time.Time) (string, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	id, err := ulid.New(ulid.Timestamp(t), uc.entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
