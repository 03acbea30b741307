package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bhatiakavisha/AI-Health-Companion/internal/store"
	"github.com/bhatiakavisha/AI-Health-Companion/internal/store/memstore"
)

type pingStore struct {
	store.Store
	err error
}

func (p *pingStore) HealthPing(context.Context) error { return p.err }

type brokenReads struct{ store.Store }

func (brokenReads) Get(context.Context, string) (string, error) {
	return "", errors.New("disk I/O error")
}

func TestProbe_PrefersPinger(t *testing.T) {
	down := errors.New("down")
	ps := &pingStore{Store: memstore.New(), err: down}
	assert.ErrorIs(t, store.Probe(ps)(context.Background()), down)
}

func TestProbe_MissingKeyIsHealthy(t *testing.T) {
	assert.NoError(t, store.Probe(memstore.New())(context.Background()))
}

func TestProbe_ReadFailureIsUnhealthy(t *testing.T) {
	assert.Error(t, store.Probe(brokenReads{memstore.New()})(context.Background()))
}
