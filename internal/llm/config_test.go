package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_Disabled(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, 10000, cfg.TimeoutMs)
	assert.Equal(t, 1, cfg.MaxRetries)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PACKLIST_LLM_ENABLED", "true")
	t.Setenv("PACKLIST_LLM_BASE_URL", "http://localhost:8080/v1")
	t.Setenv("PACKLIST_LLM_MODEL", "test-model")
	t.Setenv("PACKLIST_LLM_TIMEOUT_MS", "2500")
	t.Setenv("PACKLIST_LLM_MAX_RETRIES", "0")

	cfg := LoadConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, "http://localhost:8080/v1", cfg.BaseURL)
	assert.Equal(t, "test-model", cfg.Model)
	assert.Equal(t, 2500, cfg.TimeoutMs)
	assert.Equal(t, 0, cfg.MaxRetries)
}

func TestLoadConfig_IgnoresBadValues(t *testing.T) {
	t.Setenv("PACKLIST_LLM_TIMEOUT_MS", "not-a-number")
	t.Setenv("PACKLIST_LLM_MAX_RETRIES", "-2")

	cfg := LoadConfig()
	assert.Equal(t, 10000, cfg.TimeoutMs)
	assert.Equal(t, 1, cfg.MaxRetries)
}

func TestTaskTimeout(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 10000, cfg.TaskTimeout(TaskSlotExtract))
	assert.Equal(t, 20000, cfg.TaskTimeout(TaskNarrative))
	assert.Equal(t, cfg.TimeoutMs, cfg.TaskTimeout(TaskType("unknown")))
}

func TestClient_Available(t *testing.T) {
	cfg := DefaultConfig()
	c := NewClient(cfg, nil)
	assert.False(t, c.Available(), "disabled config is never available")

	cfg.Enabled = true
	cfg.BaseURL = "http://localhost:1"
	c = NewClient(cfg, nil)
	assert.True(t, c.Available())
}
