package extract

import (
	"context"

	"github.com/jiddewiegertjes-stack/packlist-bot-sub000/internal/llm"
	"github.com/jiddewiegertjes-stack/packlist-bot-sub000/internal/trip"
)

// Extractor runs the two-tier slot extraction strategy: deterministic
// patterns first, then optional completion-assisted enrichment merged on
// top. The deterministic result is the floor; the assisted tier can only
// add, and its failures are swallowed.
type Extractor struct {
	client llm.Client
	cfg    Config
}

// NewExtractor creates an Extractor. client may be nil, which disables the
// assisted tier entirely.
func NewExtractor(client llm.Client, cfg Config) *Extractor {
	return &Extractor{client: client, cfg: cfg}
}

// Extract produces a partial context from an utterance. current carries the
// context accumulated so far; it is passed to the assisted tier so the model
// only reports fields new in this utterance, and is never mutated here.
func (e *Extractor) Extract(ctx context.Context, utterance string, current *trip.Context) *trip.Context {
	base := Deterministic(utterance, e.cfg)

	if e.client == nil || !e.client.Available() {
		return base
	}

	enriched, err := assisted(ctx, e.client, utterance, current)
	if err != nil {
		// Unavailable service or malformed output: the deterministic
		// baseline stands unchanged.
		return base
	}

	trip.Merge(base, enriched)
	return base
}
