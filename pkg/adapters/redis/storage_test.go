package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reframe-systems/tesseract-planning/pkg/adapters/redis"
	"github.com/reframe-systems/tesseract-planning/pkg/domain"
)

func newTestStorage(t *testing.T) *redis.Storage {
	t.Helper()
	srv := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return redis.NewStorage(client, "contactgate:")
}

func TestStorageRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	traj := domain.Trajectory{
		Description: "pick approach",
		Manipulator: domain.ManipulatorInfo{GroupName: "arm"},
		Waypoints: []domain.JointWaypoint{
			{Names: []string{"j1"}, Positions: []float64{0}},
			{Names: []string{"j1"}, Positions: []float64{1.5}},
		},
	}
	require.NoError(t, s.Set(ctx, "input_program", domain.TrajectoryValue(traj)))

	v, err := s.Get(ctx, "input_program")
	require.NoError(t, err)
	got, err := v.AsTrajectory()
	require.NoError(t, err)
	assert.Equal(t, traj, got)
}

func TestStorageMissingKey(t *testing.T) {
	s := newTestStorage(t)
	_, err := s.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestStorageHasRemove(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	require.NoError(t, s.Set(ctx, "flag", domain.BoolValue(true)))
	ok, err := s.Has(ctx, "flag")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, s.Remove(ctx, "flag"))
	ok, err = s.Has(ctx, "flag")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStorageKeysStripPrefix(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	require.NoError(t, s.Set(ctx, "a", domain.FloatValue(1)))
	require.NoError(t, s.Set(ctx, "b", domain.StringValue("x")))

	keys, err := s.Keys(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, keys)
}
