// Package health tracks whether the journal's dependencies are reachable.
package health

import (
	"context"
	"sort"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/bhatiakavisha/AI-Health-Companion/internal/metrics"
)

// Checker caches the liveness of one dependency.
type Checker interface {
	Name() string
	IsHealthy() bool
	Start(ctx context.Context, interval time.Duration)
}

// Pinger is implemented by components with a cheaper liveness check than a
// regular read. HealthPing returns nil while the component is reachable.
type Pinger interface {
	HealthPing(ctx context.Context) error
}

// ProbeFunc returns nil while the dependency is reachable.
type ProbeFunc func(ctx context.Context) error

const defaultProbeTimeout = 2 * time.Second

// Prober runs a ProbeFunc on an interval and caches the outcome.
// It reports down until the first probe succeeds.
type Prober struct {
	name    string
	probe   ProbeFunc
	timeout time.Duration
	log     zerolog.Logger
	up      atomic.Bool
}

func NewProber(name string, probe ProbeFunc, timeout time.Duration, log zerolog.Logger) *Prober {
	if timeout <= 0 {
		timeout = defaultProbeTimeout
	}
	return &Prober{name: name, probe: probe, timeout: timeout, log: log}
}

func (p *Prober) Name() string    { return p.name }
func (p *Prober) IsHealthy() bool { return p.up.Load() }

// Start probes immediately and then every interval until ctx ends.
func (p *Prober) Start(ctx context.Context, interval time.Duration) {
	every(ctx, interval, func() {
		probeCtx, cancel := context.WithTimeout(ctx, p.timeout)
		err := p.probe(probeCtx)
		cancel()

		p.up.Store(err == nil)
		metrics.DependencyUp(p.name, err == nil)
		if err != nil {
			p.log.Error().Stack().Str("checker", p.name).Err(err).Msg("health probe failed")
		}
	})
}

// Monitor folds several checkers into one service-level flag.
type Monitor struct {
	deps    []Checker
	log     zerolog.Logger
	healthy atomic.Bool
}

func NewMonitor(log zerolog.Logger, deps ...Checker) *Monitor {
	return &Monitor{deps: deps, log: log}
}

// IsHealthy returns the last evaluated service health.
func (m *Monitor) IsHealthy() bool { return m.healthy.Load() }

// Unhealthy names the dependencies currently reporting down, sorted.
func (m *Monitor) Unhealthy() []string {
	var down []string
	for _, d := range m.deps {
		if !d.IsHealthy() {
			down = append(down, d.Name())
		}
	}
	sort.Strings(down)
	return down
}

// Start re-evaluates every interval until ctx ends.
func (m *Monitor) Start(ctx context.Context, interval time.Duration) {
	every(ctx, interval, func() { m.Evaluate() })
}

// Evaluate folds the checkers' current state into the service flag, logs an
// UP/DOWN transition and returns the new flag. Safe to call concurrently.
func (m *Monitor) Evaluate() bool {
	down := m.Unhealthy()
	up := len(down) == 0
	if m.healthy.Swap(up) == up {
		return up
	}
	if up {
		m.log.Info().Msg("service health: UP")
	} else {
		m.log.Error().Strs("down", down).Msg("service health: DOWN")
	}
	return up
}

func every(ctx context.Context, interval time.Duration, fn func()) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	fn()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fn()
		}
	}
}
