package store

import (
	"context"
	"errors"

	"github.com/bhatiakavisha/AI-Health-Companion/internal/health"
	"github.com/bhatiakavisha/AI-Health-Companion/internal/model"
)

// probeKey is never written; reading it exercises the full read path.
const probeKey = "__health_check__"

// Probe returns a liveness check for s. Drivers implementing health.Pinger
// are pinged; anything else gets a read of a key that never exists.
func Probe(s Store) health.ProbeFunc {
	if p, ok := s.(health.Pinger); ok {
		return p.HealthPing
	}
	return func(ctx context.Context) error {
		_, err := s.Get(ctx, probeKey)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			return err
		}
		return nil
	}
}
