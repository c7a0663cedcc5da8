package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chat-task-manager/config"
	"chat-task-manager/internal/conversation"
	"chat-task-manager/internal/model"
	"chat-task-manager/internal/task"
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

func testConfig() *config.Config {
	return &config.Config{
		Store: config.StoreConfig{
			Driver:   config.StoreDriverMemory,
			SeedFile: "../task/repository/testdata/seed.yaml",
		},
		Interpreter: config.InterpreterConfig{Timezone: "UTC", DateOrder: "DMY"},
	}
}

func TestNew_RulesOnly(t *testing.T) {
	ctx := context.Background()
	a, err := New(ctx, testConfig(), "demo", mockLogger{})
	require.NoError(t, err)
	defer a.Close()

	sc := model.Scope{UserID: "demo"}
	resp := a.Tasks.Interpret(ctx, sc, "complete task 2")
	assert.Equal(t, task.ActionTaskCompleteSuccess, resp.Action)

	_, err = a.Chat.Record(ctx, sc, conversation.RecordInput{Sender: model.ChatSenderUser, Message: "hi", Action: conversation.ActionUserInput})
	require.NoError(t, err)
	msgs, err := a.Chat.History(ctx, sc, conversation.HistoryInput{})
	require.NoError(t, err)
	assert.Len(t, msgs, 1)
}

func TestNew_BrokenProvidersFallBackToRules(t *testing.T) {
	cfg := testConfig()
	cfg.LLM = config.LLMConfig{
		Providers: []config.ProviderConfig{{Name: "gemini", Enabled: true, Priority: 1, Model: "gemini-2.5-flash"}},
	}

	a, err := New(context.Background(), cfg, "demo", mockLogger{})
	require.NoError(t, err)
	defer a.Close()

	resp := a.Tasks.Interpret(context.Background(), model.Scope{UserID: "demo"}, "add a task to call mom")
	assert.Equal(t, task.ActionTaskAddSuccess, resp.Action)
}

func TestNew_Errors(t *testing.T) {
	cfg := testConfig()
	cfg.Interpreter.Timezone = "Mars/Olympus"
	_, err := New(context.Background(), cfg, "demo", mockLogger{})
	assert.Error(t, err)

	cfg = testConfig()
	cfg.Store.SeedFile = "missing.yaml"
	_, err = New(context.Background(), cfg, "demo", mockLogger{})
	assert.Error(t, err)
}
