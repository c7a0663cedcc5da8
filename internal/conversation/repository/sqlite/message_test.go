package sqlite_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"chat-task-manager/internal/conversation/repository"
	"chat-task-manager/internal/conversation/repository/sqlite"
	"chat-task-manager/internal/model"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func newTestRepo(t *testing.T) (repository.Repository, *sql.DB) {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, sqlite.Migrate(context.Background(), db))
	return sqlite.New(db, mockLogger{}), db
}

func TestCreateAndListMessages(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()
	at := time.Date(2026, 2, 6, 9, 0, 0, 0, time.UTC)

	for i := 1; i <= 4; i++ {
		_, err := r.CreateMessage(ctx, repository.CreateMessageOptions{
			ID:        fmt.Sprintf("01J0000000000000000000000%d", i),
			UserID:    "alice",
			Sender:    model.ChatSenderUser,
			Message:   fmt.Sprintf("m%d", i),
			Action:    "USER_INPUT",
			CreatedAt: at.Add(time.Duration(i) * time.Second),
		})
		require.NoError(t, err)
	}
	_, err := r.CreateMessage(ctx, repository.CreateMessageOptions{
		ID: "01J00000000000000000000009", UserID: "bob", Sender: model.ChatSenderBot, Message: "other", CreatedAt: at,
	})
	require.NoError(t, err)

	all, err := r.ListMessages(ctx, repository.ListMessagesOptions{UserID: "alice"})
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "m1", all[0].Message)
	assert.Equal(t, "m4", all[3].Message)
	assert.True(t, at.Add(4*time.Second).Equal(all[3].CreatedAt))

	last, err := r.ListMessages(ctx, repository.ListMessagesOptions{UserID: "alice", Limit: 2})
	require.NoError(t, err)
	require.Len(t, last, 2)
	assert.Equal(t, "m3", last[0].Message)
	assert.Equal(t, "m4", last[1].Message)

	none, err := r.ListMessages(ctx, repository.ListMessagesOptions{UserID: "carol"})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestStoreFaults(t *testing.T) {
	r, db := newTestRepo(t)
	require.NoError(t, db.Close())

	_, err := r.CreateMessage(context.Background(), repository.CreateMessageOptions{ID: "x", UserID: "u"})
	assert.ErrorIs(t, err, repository.ErrFailedToInsert)

	_, err = r.ListMessages(context.Background(), repository.ListMessagesOptions{UserID: "u"})
	assert.ErrorIs(t, err, repository.ErrFailedToList)
}
