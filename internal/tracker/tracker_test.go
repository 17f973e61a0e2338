package tracker_test

import (
	"testing"
	"time"

	"github.com/sparkred/curatord/internal/database/types"
	"github.com/sparkred/curatord/internal/database/types/enum"
	"github.com/sparkred/curatord/internal/tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestTrackerOpen(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	tr := tracker.NewTracker(store, zap.NewNop())
	mentionTime := time.Now()

	tracking, err := tr.Open(t.Context(), 1, 10, 100, mentionTime)
	require.NoError(t, err)

	assert.True(t, tracking.IsOpen())
	assert.Equal(t, uint64(100), tracking.MentionMessageID)
	assert.Equal(t, enum.ResponseKindNone, tracking.ResponseKind)
	assert.Nil(t, tracking.CuratorID)
}

func TestTrackerOpenDuplicate(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	tr := tracker.NewTracker(store, zap.NewNop())

	_, err := tr.Open(t.Context(), 1, 10, 100, time.Now())
	require.NoError(t, err)

	_, err = tr.Open(t.Context(), 1, 10, 100, time.Now())
	assert.ErrorIs(t, err, types.ErrTrackingExists)
}

func TestTrackerOpenAgainAfterClose(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	tr := tracker.NewTracker(store, zap.NewNop())
	ctx := t.Context()

	tracking, err := tr.Open(ctx, 1, 10, 100, time.Now())
	require.NoError(t, err)

	_, err = tr.Close(ctx, tracking, 7, nil, time.Now(), enum.ResponseKindReaction)
	require.NoError(t, err)

	// A closed record no longer blocks a fresh mention with the same id.
	_, err = tr.Open(ctx, 1, 10, 100, time.Now())
	assert.NoError(t, err)
}

func TestTrackerClose(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	tr := tracker.NewTracker(store, zap.NewNop())
	ctx := t.Context()

	mentionTime := time.Now()
	tracking, err := tr.Open(ctx, 1, 10, 100, mentionTime)
	require.NoError(t, err)

	responseID := uint64(101)
	responseTime := mentionTime.Add(95 * time.Second)

	closed, err := tr.Close(ctx, tracking, 7, &responseID, responseTime, enum.ResponseKindReply)
	require.NoError(t, err)

	assert.False(t, closed.IsOpen())
	require.NotNil(t, closed.CuratorID)
	assert.Equal(t, uint64(7), *closed.CuratorID)
	assert.Equal(t, enum.ResponseKindReply, closed.ResponseKind)
	require.NotNil(t, closed.ResponseTimeSeconds)
	assert.Equal(t, int64(95), *closed.ResponseTimeSeconds)
}

func TestTrackerCloseTwice(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	tr := tracker.NewTracker(store, zap.NewNop())
	ctx := t.Context()

	tracking, err := tr.Open(ctx, 1, 10, 100, time.Now())
	require.NoError(t, err)

	_, err = tr.Close(ctx, tracking, 7, nil, time.Now(), enum.ResponseKindReaction)
	require.NoError(t, err)

	_, err = tr.Close(ctx, tracking, 8, nil, time.Now(), enum.ResponseKindReply)
	assert.ErrorIs(t, err, types.ErrTrackingClosed)
}

func TestTrackerFindMissing(t *testing.T) {
	t.Parallel()

	tr := tracker.NewTracker(newFakeStore(), zap.NewNop())

	_, err := tr.Find(t.Context(), 999)
	assert.ErrorIs(t, err, types.ErrTrackingNotFound)
}

func TestResponseTimeFloorsAtOneSecond(t *testing.T) {
	t.Parallel()

	mentionTime := time.Now()
	tracking := &types.MentionTracking{MentionTimestamp: mentionTime}

	// Sub-second and clock-skewed responses still count as one second.
	assert.Equal(t, int64(1), tracking.ResponseTimeSince(mentionTime.Add(200*time.Millisecond)))
	assert.Equal(t, int64(1), tracking.ResponseTimeSince(mentionTime.Add(-3*time.Second)))
	assert.Equal(t, int64(60), tracking.ResponseTimeSince(mentionTime.Add(time.Minute)))
	assert.Equal(t, int64(2), tracking.ResponseTimeSince(mentionTime.Add(1700*time.Millisecond)))
}
