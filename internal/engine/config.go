package engine

import (
	"os"
	"time"

	"github.com/jiddewiegertjes-stack/packlist-bot-sub000/internal/llm"
	"github.com/jiddewiegertjes-stack/packlist-bot-sub000/internal/reftable"
)

// Config holds everything the engine needs to build its pipeline.
type Config struct {
	// SeasonURL and ProductsURL point at the published reference tables.
	SeasonURL   string
	ProductsURL string

	// CacheTTL is the validity window for both tables.
	CacheTTL time.Duration

	LLM llm.Config
}

// DefaultConfig returns an engine configuration with empty table URLs and
// the completion service disabled. Callers must set the URLs before the
// season and recommendation stages can return data.
func DefaultConfig() Config {
	return Config{
		CacheTTL: reftable.DefaultTTL,
		LLM:      llm.DefaultConfig(),
	}
}

// LoadConfig reads engine configuration from PACKLIST_* environment
// variables, falling back to defaults for any unset value.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("PACKLIST_SEASON_URL"); v != "" {
		cfg.SeasonURL = v
	}
	if v := os.Getenv("PACKLIST_PRODUCTS_URL"); v != "" {
		cfg.ProductsURL = v
	}
	if v := os.Getenv("PACKLIST_CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.CacheTTL = d
		}
	}
	cfg.LLM = llm.LoadConfig()

	return cfg
}
