package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of completion task being performed.
type TaskType string

const (
	// TaskSlotExtract asks the model for structured slot values only.
	TaskSlotExtract TaskType = "slot_extract"
	// TaskNarrative asks the model for free prose; the engine never parses
	// the result.
	TaskNarrative TaskType = "narrative"
)

// TaskConfig holds per-task completion parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides the global timeout if > 0
}

// Config holds all configuration for the completion-service subsystem.
type Config struct {
	Enabled    bool
	LogCalls   bool
	BaseURL    string
	APIKey     string
	Model      string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns a Config with sensible defaults. The completion
// service is disabled by default; the deterministic tier carries alone then.
func DefaultConfig() Config {
	return Config{
		Enabled:    false,
		LogCalls:   false,
		BaseURL:    "",
		Model:      "gpt-4o-mini",
		TimeoutMs:  10000,
		MaxRetries: 1,
		Tasks: map[TaskType]TaskConfig{
			TaskSlotExtract: {Temperature: 0.0, MaxTokens: 512, TimeoutMs: 10000},
			TaskNarrative:   {Temperature: 0.6, MaxTokens: 1024, TimeoutMs: 20000},
		},
	}
}

// LoadConfig reads completion-service configuration from environment
// variables, falling back to defaults for any unset value.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("PACKLIST_LLM_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("PACKLIST_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("PACKLIST_LLM_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("PACKLIST_LLM_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("PACKLIST_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("PACKLIST_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("PACKLIST_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	return cfg
}

// TaskTimeout returns the effective timeout for a task in milliseconds.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}
