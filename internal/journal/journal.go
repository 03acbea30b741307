// Package journal holds the five health collections in memory and mirrors
// every change to a durable key/value store.
package journal

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/bhatiakavisha/AI-Health-Companion/internal/events"
	"github.com/bhatiakavisha/AI-Health-Companion/internal/metrics"
	"github.com/bhatiakavisha/AI-Health-Companion/internal/model"
	"github.com/bhatiakavisha/AI-Health-Companion/internal/store"
)

// Durable keys, one per collection. The value is the JSON array of the whole collection.
const (
	KeyEntries     = "health_entries"
	KeyVitals      = "health_vitals"
	KeyMedications = "health_medications"
	KeyGoals       = "health_goals"
	KeyInsights    = "health_insights"
)

// Keys lists every durable key in load order.
var Keys = []string{KeyEntries, KeyVitals, KeyMedications, KeyGoals, KeyInsights}

// Journal is the single source of truth for one user's health data.
// Mutations and reads are serialized; reads return copies.
type Journal struct {
	mu     sync.Mutex
	mirror store.Store
	now    func() time.Time
	log    zerolog.Logger
	bus    *events.Bus

	entries     []model.HealthEntry
	vitals      []model.VitalSign
	medications []model.Medication
	goals       []model.HealthGoal
	insights    []model.HealthInsight
}

// Option configures a Journal.
type Option func(*Journal)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(j *Journal) { j.now = now }
}

// WithBus publishes change events on bus instead of a private one.
func WithBus(bus *events.Bus) Option {
	return func(j *Journal) { j.bus = bus }
}

// New returns an empty journal backed by mirror. Call Load to restore state.
func New(mirror store.Store, log zerolog.Logger, opts ...Option) *Journal {
	j := &Journal{
		mirror:      mirror,
		now:         time.Now,
		log:         log,
		entries:     []model.HealthEntry{},
		vitals:      []model.VitalSign{},
		medications: []model.Medication{},
		goals:       []model.HealthGoal{},
		insights:    []model.HealthInsight{},
	}
	for _, opt := range opts {
		opt(j)
	}
	if j.bus == nil {
		j.bus = events.NewBus(16)
	}
	return j
}

// Bus returns the bus mutations are published on.
func (j *Journal) Bus() *events.Bus { return j.bus }

// Load restores all five collections from the mirror. A missing, unreadable or
// corrupt key leaves that collection empty; Load never fails.
func (j *Journal) Load(ctx context.Context) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.entries = load[model.HealthEntry](ctx, j, KeyEntries)
	j.vitals = load[model.VitalSign](ctx, j, KeyVitals)
	j.medications = load[model.Medication](ctx, j, KeyMedications)
	j.goals = load[model.HealthGoal](ctx, j, KeyGoals)
	j.insights = load[model.HealthInsight](ctx, j, KeyInsights)

	j.log.Info().
		Int("entries", len(j.entries)).
		Int("vitals", len(j.vitals)).
		Int("medications", len(j.medications)).
		Int("goals", len(j.goals)).
		Int("insights", len(j.insights)).
		Msg("journal loaded")
}

func load[T any](ctx context.Context, j *Journal, key string) []T {
	raw, err := j.mirror.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			metrics.MirrorLoadFailure(key)
			j.log.Warn().Err(err).Str("key", key).Msg("mirror read failed, starting empty")
		}
		return []T{}
	}
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		metrics.MirrorLoadFailure(key)
		j.log.Warn().Err(err).Str("key", key).Msg("mirror value unparsable, starting empty")
		return []T{}
	}
	if items == nil {
		items = []T{}
	}
	return items
}

// persist writes the whole collection under key. Failures are logged and
// counted; in-memory state stays authoritative. Caller holds j.mu.
func persist[T any](ctx context.Context, j *Journal, key string, items []T) {
	b, err := json.Marshal(items)
	if err == nil {
		err = j.mirror.Put(context.WithoutCancel(ctx), key, string(b))
	}
	metrics.MirrorWrite(key, err)
	if err != nil {
		j.log.Error().Stack().Err(err).Str("key", key).Msg("mirror write failed")
	}
}

func (j *Journal) publish(kind events.EventKind, id string) {
	j.bus.Publish(events.Event{Kind: kind, ID: id})
}

// cloneAll copies items so callers never share memory with journal state.
func cloneAll[T any](items []T, clone func(T) T) []T {
	if items == nil {
		return nil
	}
	out := make([]T, len(items))
	for i, it := range items {
		out[i] = clone(it)
	}
	return out
}

func prepend[T any](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, item)
	return append(out, items...)
}
