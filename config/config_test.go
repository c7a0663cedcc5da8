package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTPServer.Port)
	assert.Equal(t, StoreDriverSQLite, cfg.Store.Driver)
	assert.Equal(t, "data/tasks.db", cfg.Store.SQLitePath)
	assert.Equal(t, "UTC", cfg.Interpreter.Timezone)
	assert.Equal(t, "DMY", cfg.Interpreter.DateOrder)
	assert.Equal(t, 8*time.Second, cfg.Interpreter.ClassifyTimeout)
	assert.Equal(t, 20, cfg.Interpreter.ListLimit)
	assert.Equal(t, 50, cfg.Interpreter.HistoryLimit)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 60, cfg.RateLimit.RequestsPerMin)
	assert.Equal(t, "mcp", cfg.MCP.UserID)
	assert.Equal(t, 1, cfg.LLM.RetryAttempts)
	assert.Empty(t, cfg.LLM.Providers)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "Memory")
	t.Setenv("INTERPRETER_DATE_ORDER", "mdy")
	t.Setenv("INTERPRETER_LIST_LIMIT", "5")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StoreDriverMemory, cfg.Store.Driver)
	assert.Equal(t, "MDY", cfg.Interpreter.DateOrder)
	assert.Equal(t, 5, cfg.Interpreter.ListLimit)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"unknown driver", "STORE_DRIVER", "postgres"},
		{"bad date order", "INTERPRETER_DATE_ORDER", "YMD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestValidateStoreConfig(t *testing.T) {
	assert.NoError(t, validateStoreConfig(&StoreConfig{Driver: StoreDriverMemory}))
	assert.NoError(t, validateStoreConfig(&StoreConfig{Driver: StoreDriverSQLite, SQLitePath: "x.db"}))
	assert.Error(t, validateStoreConfig(&StoreConfig{Driver: StoreDriverSQLite}))
}

func TestValidateLLMConfig(t *testing.T) {
	gemini := ProviderConfig{Name: "gemini", Enabled: true, Priority: 1, Model: "gemini-2.5-flash"}

	tests := []struct {
		name      string
		providers []ProviderConfig
		wantErr   bool
	}{
		{"one enabled", []ProviderConfig{gemini}, false},
		{"disabled extra is not checked", []ProviderConfig{gemini, {Name: "qwen", Model: "qwen-plus"}}, false},
		{"missing name", []ProviderConfig{{Enabled: true, Priority: 1, Model: "m"}}, true},
		{"missing model", []ProviderConfig{{Name: "gemini", Enabled: true, Priority: 1}}, true},
		{"zero priority", []ProviderConfig{{Name: "gemini", Enabled: true, Model: "m"}}, true},
		{"duplicate priority", []ProviderConfig{gemini, {Name: "openai", Enabled: true, Priority: 1, Model: "gpt"}}, true},
		{"none enabled", []ProviderConfig{{Name: "gemini", Model: "m"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateLLMConfig(&LLMConfig{Providers: tt.providers})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestExpandEnvVar(t *testing.T) {
	t.Setenv("CTM_TEST_KEY", "secret")

	assert.Equal(t, "secret", expandEnvVar("${CTM_TEST_KEY}"))
	assert.Equal(t, "plain", expandEnvVar("plain"))
	assert.Equal(t, "${CTM_UNSET_KEY}", expandEnvVar("${CTM_UNSET_KEY}"))
	assert.Equal(t, "", expandEnvVar(""))
}
