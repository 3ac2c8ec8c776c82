package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reframe-systems/tesseract-planning/pkg/adapters/memory"
	"github.com/reframe-systems/tesseract-planning/pkg/domain"
)

func TestStorageRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStorage()

	require.NoError(t, s.Set(ctx, "score", domain.FloatValue(0.75)))

	ok, err := s.Has(ctx, "score")
	require.NoError(t, err)
	assert.True(t, ok)

	v, err := s.Get(ctx, "score")
	require.NoError(t, err)
	f, err := v.AsFloat()
	require.NoError(t, err)
	assert.Equal(t, 0.75, f)

	require.NoError(t, s.Remove(ctx, "score"))
	ok, err = s.Has(ctx, "score")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStorageMissingKey(t *testing.T) {
	s := memory.NewStorage()
	_, err := s.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestStorageKeys(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStorage()
	require.NoError(t, s.Set(ctx, "a", domain.BoolValue(true)))
	require.NoError(t, s.Set(ctx, "b", domain.StringValue("x")))

	keys, err := s.Keys(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, keys)
}

func TestStorageIsolatesStoredTrajectories(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStorage()

	traj := domain.Trajectory{
		Waypoints: []domain.JointWaypoint{{Names: []string{"j1"}, Positions: []float64{1}}},
	}
	require.NoError(t, s.Set(ctx, "traj", domain.TrajectoryValue(traj)))

	// Mutations through the caller's copy must not leak into storage.
	traj.Waypoints[0].Positions[0] = -1

	v, err := s.Get(ctx, "traj")
	require.NoError(t, err)
	got, err := v.AsTrajectory()
	require.NoError(t, err)
	assert.Equal(t, float64(1), got.Waypoints[0].Positions[0])

	// And mutations through a read copy must not either.
	got.Waypoints[0].Positions[0] = 7
	v2, err := s.Get(ctx, "traj")
	require.NoError(t, err)
	again, err := v2.AsTrajectory()
	require.NoError(t, err)
	assert.Equal(t, float64(1), again.Waypoints[0].Positions[0])
}
