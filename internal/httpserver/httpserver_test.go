package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chatmemory "chat-task-manager/internal/conversation/repository/memory"
	chatUC "chat-task-manager/internal/conversation/usecase"
	"chat-task-manager/internal/router"
	taskmemory "chat-task-manager/internal/task/repository/memory"
	taskUC "chat-task-manager/internal/task/usecase"
	"chat-task-manager/pkg/datemath"
	"chat-task-manager/pkg/response"
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

func testConfig(t *testing.T) Config {
	t.Helper()

	dates, err := datemath.NewParser("UTC", datemath.OrderDMY)
	require.NoError(t, err)

	l := mockLogger{}
	return Config{
		Logger:      l,
		Port:        8080,
		Mode:        gin.TestMode,
		Environment: "test",
		TaskUseCase: taskUC.New(l, router.New(nil, 0, l), taskmemory.New(l), dates, 0),
		ChatUseCase: chatUC.New(chatmemory.New(), l, 0),
	}
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		logger bool
	}{
		{"no logger", func(c *Config) {}, false},
		{"no mode", func(c *Config) { c.Mode = "" }, true},
		{"no port", func(c *Config) { c.Port = 0 }, true},
		{"no task usecase", func(c *Config) { c.TaskUseCase = nil }, true},
		{"no chat usecase", func(c *Config) { c.ChatUseCase = nil }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			tt.mutate(&cfg)

			var err error
			if tt.logger {
				_, err = New(cfg.Logger, cfg)
			} else {
				_, err = New(nil, cfg)
			}
			assert.Error(t, err)
		})
	}
}

func TestSystemRoutes(t *testing.T) {
	srv, err := New(mockLogger{}, testConfig(t))
	require.NoError(t, err)

	for path, status := range map[string]string{"/health": "healthy", "/ready": "ready", "/live": "alive"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			require.Equal(t, http.StatusOK, w.Code)

			var body struct {
				Data healthResp `json:"data"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, status, body.Data.Status)
			assert.Equal(t, ServiceName, body.Data.Service)
		})
	}
}

func TestReadyCheck_StoreDown(t *testing.T) {
	cfg := testConfig(t)
	cfg.Ready = func(ctx context.Context) error { return errors.New("database is closed") }
	srv, err := New(cfg.Logger, cfg)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"unavailable"`)
}

func TestRecovery_PanicReturnsEnvelope(t *testing.T) {
	srv, err := New(mockLogger{}, testConfig(t))
	require.NoError(t, err)
	srv.gin.GET("/boom", func(c *gin.Context) { panic("db crash") })

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body response.Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, response.InternalServerErrorCode, body.ErrorCode)
	assert.Equal(t, response.DefaultErrorMessage, body.Message)
	assert.NotContains(t, w.Body.String(), "db crash")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestChatRoutesMounted(t *testing.T) {
	srv, err := New(mockLogger{}, testConfig(t))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(`{"message":"hi"}`)))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(`{"message":"add a task to call mom"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "alice")
	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "TASK_ADD_SUCCESS")
}

func TestRun_StopsOnCancel(t *testing.T) {
	cfg := testConfig(t)
	cfg.Port = 18931
	srv, err := New(cfg.Logger, cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
