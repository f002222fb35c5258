// Package engine wires the extraction, season and packing stages behind one
// facade. Every entry point degrades to a defined empty result; no failure
// in an underlying stage escapes as an error or panic.
package engine

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jiddewiegertjes-stack/packlist-bot-sub000/internal/extract"
	"github.com/jiddewiegertjes-stack/packlist-bot-sub000/internal/llm"
	"github.com/jiddewiegertjes-stack/packlist-bot-sub000/internal/packing"
	"github.com/jiddewiegertjes-stack/packlist-bot-sub000/internal/reftable"
	"github.com/jiddewiegertjes-stack/packlist-bot-sub000/internal/season"
	"github.com/jiddewiegertjes-stack/packlist-bot-sub000/internal/summary"
	"github.com/jiddewiegertjes-stack/packlist-bot-sub000/internal/trip"
)

// Engine is the pipeline facade.
type Engine struct {
	extractor *extract.Extractor
	seasons   *season.Resolver
	products  *packing.Recommender
	observer  Observer
}

// New builds an Engine from cfg. observer may be nil; llmObserver receives
// completion-call events and may also be nil.
func New(cfg Config, observer Observer, llmObserver llm.Observer) *Engine {
	if observer == nil {
		observer = NoopObserver{}
	}

	fetcher := reftable.NewFetcher()
	seasonCache := reftable.NewCache(cfg.CacheTTL, fetcher.TableFetch(cfg.SeasonURL))
	productCache := reftable.NewCache(cfg.CacheTTL, fetcher.TableFetch(cfg.ProductsURL))

	var client llm.Client
	if cfg.LLM.Enabled {
		client = llm.NewClient(cfg.LLM, llmObserver)
	}

	return &Engine{
		extractor: extract.NewExtractor(client, extract.DefaultConfig()),
		seasons:   season.NewResolver(seasonCache),
		products:  packing.NewRecommender(productCache),
		observer:  observer,
	}
}

// NewWithStages builds an Engine from pre-constructed stages. Tests use it
// to inject primed caches and fake clients.
func NewWithStages(extractor *extract.Extractor, seasons *season.Resolver, products *packing.Recommender, observer Observer) *Engine {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &Engine{extractor: extractor, seasons: seasons, products: products, observer: observer}
}

type requestIDKey struct{}

// WithRequestID attaches a request correlation ID to ctx so all stages of
// one request share it in emitted events.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// NewRequestID returns a fresh correlation ID.
func NewRequestID() string {
	return uuid.NewString()
}

func requestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		return id
	}
	return uuid.NewString()
}

func (e *Engine) emit(ctx context.Context, stage Stage, start time.Time, status string) {
	e.observer.OnStageComplete(PipelineEvent{
		RequestID: requestID(ctx),
		Stage:     stage,
		LatencyMs: time.Since(start).Milliseconds(),
		Status:    status,
	})
}

// ResolveContext normalizes a loosely-typed payload into a canonical trip
// context. It never fails; an unusable payload yields an empty context.
func (e *Engine) ResolveContext(ctx context.Context, raw map[string]any) *trip.Context {
	start := time.Now()
	tc := trip.Normalize(raw)
	e.emit(ctx, StageResolveContext, start, "ok")
	return tc
}

// ExtractSlots runs slot extraction over an utterance and merges the result
// into a copy of current, which is never mutated.
func (e *Engine) ExtractSlots(ctx context.Context, utterance string, current *trip.Context) *trip.Context {
	start := time.Now()
	if current == nil {
		current = trip.NewContext()
	}

	extracted := e.extractor.Extract(ctx, utterance, current)
	merged := current.Clone()
	trip.Merge(merged, extracted)

	e.emit(ctx, StageExtractSlots, start, "ok")
	return merged
}

// MissingSlots reports which required slots the context still lacks.
func (e *Engine) MissingSlots(tc *trip.Context) []trip.Slot {
	return trip.MissingSlots(tc)
}

// ResolveSeason joins the context against the season table.
func (e *Engine) ResolveSeason(ctx context.Context, tc *trip.Context) (season.Info, season.Status) {
	start := time.Now()
	info, status := e.seasons.Resolve(ctx, tc)
	e.emit(ctx, StageResolveSeason, start, statusLabel(status))
	return info, status
}

// RecommendProducts produces the ranked packing list for the context.
func (e *Engine) RecommendProducts(ctx context.Context, tc *trip.Context) []packing.Recommendation {
	start := time.Now()
	list := e.products.Recommend(ctx, tc)
	e.emit(ctx, StageRecommend, start, "ok")
	return list
}

// ComposeRationale builds the deterministic trip rationale line.
func (e *Engine) ComposeRationale(ctx context.Context, tc *trip.Context, info season.Info) string {
	start := time.Now()
	text := summary.Compose(tc, info)
	e.emit(ctx, StageCompose, start, "ok")
	return text
}

func statusLabel(s season.Status) string {
	switch s {
	case season.StatusFound:
		return "found"
	case season.StatusEmpty:
		return "empty"
	default:
		return "unavailable"
	}
}
