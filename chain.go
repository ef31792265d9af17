package array

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/zoobzio/clockz"
	"github.com/zoobzio/hookz"
	"github.com/zoobzio/metricz"
	"github.com/zoobzio/tracez"
)

// Metric keys for Chain observability.
const (
	ChainProcessedTotal  = metricz.Key("chain.processed.total")
	ChainStagesTotal     = metricz.Key("chain.stages.total")
	ChainStagesCompleted = metricz.Key("chain.stages.completed")
	ChainDurationMs      = metricz.Key("chain.duration.ms")
	ChainElementsIn      = metricz.Key("chain.elements.in")
	ChainElementsOut     = metricz.Key("chain.elements.out")
)

// Span names for Chain.
const (
	ChainProcessSpan = tracez.Key("chain.process")
	ChainStageSpan   = tracez.Key("chain.stage")
)

// Span tags for Chain.
const (
	ChainTagChain       = tracez.Tag("chain.name")
	ChainTagStageCount  = tracez.Tag("chain.stage_count")
	ChainTagStageNumber = tracez.Tag("chain.stage_number")
	ChainTagStageName   = tracez.Tag("chain.stage_name")
	ChainTagElementsIn  = tracez.Tag("chain.elements_in")
	ChainTagElementsOut = tracez.Tag("chain.elements_out")
)

// Hook event keys for Chain.
const (
	ChainEventStageComplete = hookz.Key("chain.stage_complete")
	ChainEventAllComplete   = hookz.Key("chain.all_complete")
)

// Stage is a named pure transformation over a sequence of T. Stages cannot
// fail and must not mutate their input; every operation in this package
// satisfies both requirements, so stages are typically built from them via
// the adapters below.
type Stage[T any] struct {
	name string
	fn   func([]T) []T
}

// StageOf wraps a pure sequence transformation as a named Stage.
//
// Example:
//
//	dedupe := array.StageOf("dedupe", func(xs []int) []int {
//	    return array.Filter(seen.FirstTime, xs)
//	})
func StageOf[T any](name string, fn func([]T) []T) Stage[T] {
	return Stage[T]{name: name, fn: fn}
}

// MapStage builds a Stage that applies fn to every element.
func MapStage[T any](name string, fn func(T) T) Stage[T] {
	return StageOf(name, func(xs []T) []T {
		return Map(fn, xs)
	})
}

// FilterStage builds a Stage that keeps the elements for which pred is true.
func FilterStage[T any](name string, pred func(T) bool) Stage[T] {
	return StageOf(name, func(xs []T) []T {
		return Filter(pred, xs)
	})
}

// SortStage builds a Stage that stably orders elements by compare.
func SortStage[T any](name string, compare func(T, T) int) Stage[T] {
	return StageOf(name, func(xs []T) []T {
		return Sort(compare, xs)
	})
}

// SliceStage builds a Stage that narrows the sequence to the window
// [start, end), with Slice's index conventions.
func SliceStage[T any](name string, start, end int) Stage[T] {
	return StageOf(name, func(xs []T) []T {
		return Slice(xs, start, end)
	})
}

// ConcatStage builds a Stage that appends tail to the sequence. tail is
// copied at construction so later mutation by the caller does not leak in.
func ConcatStage[T any](name string, tail []T) Stage[T] {
	frozen := make([]T, len(tail))
	copy(frozen, tail)
	return StageOf(name, func(xs []T) []T {
		return Concat(xs, frozen)
	})
}

// Name returns the stage's name.
func (s Stage[T]) Name() string {
	return s.name
}

// Apply runs the stage's transformation.
func (s Stage[T]) Apply(xs []T) []T {
	return s.fn(xs)
}

// ChainEvent represents a stage or chain completion.
// This is emitted via hookz when individual stages complete or when the
// entire chain finishes, allowing external systems to observe sequence
// transformations without touching the pure operations themselves.
type ChainEvent struct {
	Name        string        // Chain name
	StageName   string        // Name of the completed stage (empty for all_complete)
	StageNumber int           // 1-based position of the stage
	TotalStages int           // Stage count at process time
	InLen       int           // Element count entering the stage (or chain)
	OutLen      int           // Element count leaving the stage (or chain)
	Duration    time.Duration // Stage (or whole chain) processing time
	Timestamp   time.Time     // When the event occurred
}

// Chain composes named stages into an observable sequence transformation.
// Stages run left to right; each stage's output becomes the next stage's
// input. Because every stage is pure and total, Process cannot fail and
// returns no error - the context is used only for span propagation and
// event emission.
//
// Chain is the "higher-level wrapper" layer: the core operations stay free
// of metrics, tracing, and hooks, and Chain carries all three for callers
// that want visibility into composed transformations.
//
// # Observability
//
// Metrics:
//   - chain.processed.total: Counter of Process calls
//   - chain.stages.total: Gauge of stages at process time
//   - chain.stages.completed: Gauge of stages completed in the last call
//   - chain.duration.ms: Gauge of total processing duration
//   - chain.elements.in: Gauge of input length for the last call
//   - chain.elements.out: Gauge of output length for the last call
//
// Traces:
//   - chain.process: Span covering the whole call
//   - chain.stage: Span per stage, tagged with stage name and element counts
//
// Events (via hooks):
//   - chain.stage_complete: Fired after each stage
//   - chain.all_complete: Fired after the final stage
//
// Example:
//
//	top := array.NewChain("top-scores",
//	    array.FilterStage("passing", func(s Score) bool { return s.Points >= 50 }),
//	    array.SortStage("by-points", byPointsDesc),
//	    array.SliceStage[Score]("top-ten", 0, 10),
//	)
//	defer top.Close()
//
//	result := top.Process(ctx, scores)
type Chain[T any] struct {
	name   string
	stages []Stage[T]
	mu     sync.RWMutex
	clock  clockz.Clock

	// Observability
	metrics *metricz.Registry
	tracer  *tracez.Tracer
	hooks   *hookz.Hooks[ChainEvent]
}

// NewChain creates a Chain with the given name and initial stages.
func NewChain[T any](name string, stages ...Stage[T]) *Chain[T] {
	registry := metricz.New()
	registry.Counter(ChainProcessedTotal)
	registry.Gauge(ChainStagesTotal)
	registry.Gauge(ChainStagesCompleted)
	registry.Gauge(ChainDurationMs)
	registry.Gauge(ChainElementsIn)
	registry.Gauge(ChainElementsOut)

	return &Chain[T]{
		name:    name,
		stages:  append([]Stage[T]{}, stages...),
		metrics: registry,
		tracer:  tracez.New(),
		hooks:   hookz.New[ChainEvent](),
	}
}

// Process runs every stage in order and returns the final sequence. A chain
// with no stages returns a fresh copy of the input, keeping Chain aligned
// with the package-wide rule that outputs never alias inputs.
func (c *Chain[T]) Process(ctx context.Context, input []T) []T {
	c.mu.RLock()
	stages := make([]Stage[T], len(c.stages))
	copy(stages, c.stages)
	c.mu.RUnlock()

	if ctx == nil {
		ctx = context.Background()
	}

	clock := c.getClock()
	start := clock.Now()

	c.metrics.Counter(ChainProcessedTotal).Inc()
	c.metrics.Gauge(ChainStagesTotal).Set(float64(len(stages)))
	c.metrics.Gauge(ChainElementsIn).Set(float64(len(input)))

	ctx, span := c.tracer.StartSpan(ctx, ChainProcessSpan)
	span.SetTag(ChainTagChain, c.name)
	span.SetTag(ChainTagStageCount, fmt.Sprintf("%d", len(stages)))
	span.SetTag(ChainTagElementsIn, fmt.Sprintf("%d", len(input)))

	result := input
	for i, stage := range stages {
		_, stageSpan := c.tracer.StartSpan(ctx, ChainStageSpan)
		stageSpan.SetTag(ChainTagStageNumber, fmt.Sprintf("%d", i+1))
		stageSpan.SetTag(ChainTagStageName, stage.Name())
		stageSpan.SetTag(ChainTagElementsIn, fmt.Sprintf("%d", len(result)))

		stageStart := clock.Now()
		out := stage.Apply(result)
		stageDuration := clock.Now().Sub(stageStart)

		stageSpan.SetTag(ChainTagElementsOut, fmt.Sprintf("%d", len(out)))
		stageSpan.Finish()

		c.metrics.Gauge(ChainStagesCompleted).Set(float64(i + 1))

		_ = c.hooks.Emit(ctx, ChainEventStageComplete, ChainEvent{ //nolint:errcheck
			Name:        c.name,
			StageName:   stage.Name(),
			StageNumber: i + 1,
			TotalStages: len(stages),
			InLen:       len(result),
			OutLen:      len(out),
			Duration:    stageDuration,
			Timestamp:   clock.Now(),
		})

		result = out
	}

	if len(stages) == 0 {
		copied := make([]T, len(input))
		copy(copied, input)
		result = copied
	}

	elapsed := clock.Now().Sub(start)
	c.metrics.Gauge(ChainDurationMs).Set(float64(elapsed.Milliseconds()))
	c.metrics.Gauge(ChainElementsOut).Set(float64(len(result)))
	span.SetTag(ChainTagElementsOut, fmt.Sprintf("%d", len(result)))
	span.Finish()

	_ = c.hooks.Emit(ctx, ChainEventAllComplete, ChainEvent{ //nolint:errcheck
		Name:        c.name,
		TotalStages: len(stages),
		InLen:       len(input),
		OutLen:      len(result),
		Duration:    elapsed,
		Timestamp:   clock.Now(),
	})

	return result
}

// Register appends stages to the end of the chain.
func (c *Chain[T]) Register(stages ...Stage[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stages = append(c.stages, stages...)
}

// Len returns the number of registered stages.
func (c *Chain[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.stages)
}

// Names returns the stage names in execution order.
func (c *Chain[T]) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, len(c.stages))
	for i, s := range c.stages {
		names[i] = s.name
	}
	return names
}

// Clear removes all registered stages.
func (c *Chain[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stages = nil
}

// Name returns the chain's name.
func (c *Chain[T]) Name() string {
	return c.name
}

// Metrics returns the metrics registry for this chain.
func (c *Chain[T]) Metrics() *metricz.Registry {
	return c.metrics
}

// Tracer returns the tracer for this chain.
func (c *Chain[T]) Tracer() *tracez.Tracer {
	return c.tracer
}

// WithClock sets a custom clock for testing.
func (c *Chain[T]) WithClock(clock clockz.Clock) *Chain[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clock = clock
	return c
}

// getClock returns the configured clock or the real clock.
func (c *Chain[T]) getClock() clockz.Clock {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.clock == nil {
		return clockz.RealClock
	}
	return c.clock
}

// OnStageComplete registers a handler fired after each stage completes.
// Handlers run asynchronously after the stage finishes.
func (c *Chain[T]) OnStageComplete(handler func(context.Context, ChainEvent) error) error {
	_, err := c.hooks.Hook(ChainEventStageComplete, handler)
	return err
}

// OnAllComplete registers a handler fired after the final stage completes.
func (c *Chain[T]) OnAllComplete(handler func(context.Context, ChainEvent) error) error {
	_, err := c.hooks.Hook(ChainEventAllComplete, handler)
	return err
}

// Close gracefully shuts down observability components.
func (c *Chain[T]) Close() error {
	if c.tracer != nil {
		c.tracer.Close()
	}
	c.hooks.Close()
	return nil
}
