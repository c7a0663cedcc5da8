package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chat-task-manager/config"
	"chat-task-manager/internal/conversation"
	chatmemory "chat-task-manager/internal/conversation/repository/memory"
	chatUC "chat-task-manager/internal/conversation/usecase"
	"chat-task-manager/internal/middleware"
	"chat-task-manager/internal/model"
	"chat-task-manager/internal/router"
	"chat-task-manager/internal/task"
	taskmemory "chat-task-manager/internal/task/repository/memory"
	taskUC "chat-task-manager/internal/task/usecase"
	"chat-task-manager/pkg/datemath"
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

// brokenChat fails every write, as a full disk would.
type brokenChat struct{}

func (brokenChat) Record(ctx context.Context, sc model.Scope, input conversation.RecordInput) (model.ChatMessage, error) {
	return model.ChatMessage{}, errors.New("disk full")
}

func (brokenChat) History(ctx context.Context, sc model.Scope, input conversation.HistoryInput) ([]model.ChatMessage, error) {
	return nil, errors.New("disk full")
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func newTestEngine(t *testing.T, chat conversation.UseCase, rl config.RateLimitConfig) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dates, err := datemath.NewParser("UTC", datemath.OrderDMY)
	require.NoError(t, err)

	l := mockLogger{}
	uc := taskUC.New(l, router.New(nil, 0, l), taskmemory.New(l), dates, 0)
	if chat == nil {
		chat = chatUC.New(chatmemory.New(), l, 0)
	}

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(l, uc, chat), middleware.New(l, rl))
	return r
}

func do(t *testing.T, r http.Handler, method, path, userID, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set(middleware.UserIDHeader, userID)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

func TestChat_AddThenHistory(t *testing.T) {
	r := newTestEngine(t, nil, config.RateLimitConfig{})

	w, env := do(t, r, http.MethodPost, "/api/v1/chat", "alice", `{"message":"Add a task to buy groceries"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, env.ErrorCode)

	var reply task.CommandResponse
	require.NoError(t, json.Unmarshal(env.Data, &reply))
	assert.Equal(t, task.ActionTaskAddSuccess, reply.Action)
	assert.Equal(t, "I've added the task: 'buy groceries'", reply.Message)
	require.NotNil(t, reply.Task)
	assert.Equal(t, "alice", reply.Task.UserID)

	w, env = do(t, r, http.MethodGet, "/api/v1/chat/history", "alice", "")
	require.Equal(t, http.StatusOK, w.Code)

	var hist historyResp
	require.NoError(t, json.Unmarshal(env.Data, &hist))
	require.Equal(t, 2, hist.Count)
	assert.Equal(t, model.ChatSenderUser, hist.Messages[0].Sender)
	assert.Equal(t, conversation.ActionUserInput, hist.Messages[0].Action)
	assert.Equal(t, "Add a task to buy groceries", hist.Messages[0].Message)
	assert.Equal(t, model.ChatSenderBot, hist.Messages[1].Sender)
	assert.Equal(t, string(task.ActionTaskAddSuccess), hist.Messages[1].Action)

	w, env = do(t, r, http.MethodGet, "/api/v1/chat/history?limit=1", "alice", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &hist))
	require.Equal(t, 1, hist.Count)
	assert.Equal(t, model.ChatSenderBot, hist.Messages[0].Sender)

	w, env = do(t, r, http.MethodGet, "/api/v1/chat/history", "bob", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &hist))
	assert.Equal(t, 0, hist.Count)
	assert.NotNil(t, hist.Messages)
}

func TestChat_BadRequests(t *testing.T) {
	tests := []struct {
		name     string
		userID   string
		body     string
		wantCode int
	}{
		{"empty message", "alice", `{"message":"   "}`, http.StatusBadRequest},
		{"missing field", "alice", `{}`, http.StatusBadRequest},
		{"not json", "alice", `hello`, http.StatusBadRequest},
		{"no user", "", `{"message":"add a task to buy milk"}`, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestEngine(t, nil, config.RateLimitConfig{})
			w, env := do(t, r, http.MethodPost, "/api/v1/chat", tt.userID, tt.body)
			require.Equal(t, tt.wantCode, w.Code)

			if tt.wantCode == http.StatusBadRequest {
				assert.Equal(t, "Please provide a message", env.Message)
				var reply task.CommandResponse
				require.NoError(t, json.Unmarshal(env.Data, &reply))
				assert.Equal(t, task.ActionError, reply.Action)
			}
		})
	}
}

func TestChat_EmptyMessageIsNotRecorded(t *testing.T) {
	chat := chatUC.New(chatmemory.New(), mockLogger{}, 0)
	r := newTestEngine(t, chat, config.RateLimitConfig{})

	w, _ := do(t, r, http.MethodPost, "/api/v1/chat", "alice", `{"message":""}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	msgs, err := chat.History(context.Background(), model.Scope{UserID: "alice"}, conversation.HistoryInput{})
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestChat_ChatLogFailure(t *testing.T) {
	r := newTestEngine(t, brokenChat{}, config.RateLimitConfig{})

	w, env := do(t, r, http.MethodPost, "/api/v1/chat", "alice", `{"message":"add a task to buy milk"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Something went wrong", env.Message)

	w, _ = do(t, r, http.MethodGet, "/api/v1/chat/history", "alice", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestChat_RateLimited(t *testing.T) {
	r := newTestEngine(t, nil, config.RateLimitConfig{Enabled: true, RequestsPerMin: 10})

	w, _ := do(t, r, http.MethodPost, "/api/v1/chat", "alice", `{"message":"hello"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w, env := do(t, r, http.MethodPost, "/api/v1/chat", "alice", `{"message":"hello again"}`)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, http.StatusTooManyRequests, env.ErrorCode)
}
