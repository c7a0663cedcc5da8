package llmprovider

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"chat-task-manager/config"
	"chat-task-manager/pkg/gemini"
)

// Default endpoints of the OpenAI-compatible providers.
const (
	DeepSeekBaseURL   = "https://api.deepseek.com/v1"
	QwenBaseURL       = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"
	OpenRouterBaseURL = "https://openrouter.ai/api/v1"
)

// InitializeProviders creates Provider instances from config.LLMConfig
// Returns providers sorted by priority (ascending) with disabled providers filtered out.
// Providers that fail to initialize are skipped and reported in the returned warnings.
func InitializeProviders(cfg *config.LLMConfig) ([]Provider, []string, error) {
	if cfg == nil {
		return nil, nil, fmt.Errorf("LLM config is nil")
	}

	var enabledProviders []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabledProviders = append(enabledProviders, p)
		}
	}

	if len(enabledProviders) == 0 {
		return nil, nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabledProviders, func(i, j int) bool {
		return enabledProviders[i].Priority < enabledProviders[j].Priority
	})

	var providers []Provider
	var warnings []string

	for _, p := range enabledProviders {
		provider, err := createProvider(p)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("failed to initialize provider %s (priority %d): %v", p.Name, p.Priority, err))
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, warnings, fmt.Errorf("no providers successfully initialized: %s", strings.Join(warnings, "; "))
	}

	return providers, warnings, nil
}

func createProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	timeout, err := parseTimeout(cfg.Timeout)
	if err != nil {
		return nil, err
	}

	name := strings.ToLower(cfg.Name)
	switch name {
	case "gemini":
		client, err := gemini.New(gemini.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			APIURL:  cfg.BaseURL,
			Timeout: timeout,
		})
		if err != nil {
			return nil, err
		}
		return NewGeminiAdapter(client, timeout), nil

	case "openai", "deepseek", "qwen", "alibaba", "openrouter":
		return NewOpenAIAdapter(OpenAIConfig{
			Name:    name,
			APIKey:  cfg.APIKey,
			BaseURL: baseURLFor(name, cfg.BaseURL),
			Model:   cfg.Model,
			Timeout: timeout,
		}), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, cfg.Name)
	}
}

func baseURLFor(name, configured string) string {
	if configured != "" {
		return configured
	}
	switch name {
	case "deepseek":
		return DeepSeekBaseURL
	case "qwen", "alibaba":
		return QwenBaseURL
	case "openrouter":
		return OpenRouterBaseURL
	}
	return ""
}

func parseTimeout(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", s, err)
	}
	return d, nil
}
