package tracker_test

import (
	"sync"
	"testing"
	"time"

	"github.com/sparkred/curatord/internal/database/types"
	"github.com/sparkred/curatord/internal/database/types/enum"
	"github.com/sparkred/curatord/internal/tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupCorrelator(t *testing.T) (*tracker.Tracker, *tracker.Scheduler, *tracker.Correlator, *sendRecorder) {
	t.Helper()

	recorder := &sendRecorder{}
	scheduler := tracker.NewScheduler(recorder.send, zap.NewNop())
	t.Cleanup(scheduler.Stop)

	tr := tracker.NewTracker(newFakeStore(), zap.NewNop())
	correlator := tracker.NewCorrelator(tr, scheduler, zap.NewNop())

	return tr, scheduler, correlator, recorder
}

func TestCorrelateClosesAndCancels(t *testing.T) {
	t.Parallel()

	tr, scheduler, correlator, recorder := setupCorrelator(t)
	ctx := t.Context()

	mentionTime := time.Now()
	_, err := tr.Open(ctx, 1, 10, 100, mentionTime)
	require.NoError(t, err)

	key := tracker.Key{CommunityID: 1, MentionMessageID: 100}
	scheduler.Schedule(key, 50*time.Millisecond, tracker.Payload{})

	curator := &types.Curator{ID: 7, Name: "alex"}
	responseID := uint64(101)

	closed, err := correlator.Correlate(
		ctx, curator, 1, 100, &responseID, mentionTime.Add(30*time.Second), enum.ResponseKindReply,
	)
	require.NoError(t, err)
	require.NotNil(t, closed)

	assert.False(t, closed.IsOpen())
	assert.Equal(t, 0, scheduler.PendingCount())

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, 0, recorder.count())
}

func TestCorrelateAfterNotificationFired(t *testing.T) {
	t.Parallel()

	tr, scheduler, correlator, recorder := setupCorrelator(t)
	ctx := t.Context()

	mentionTime := time.Now()
	_, err := tr.Open(ctx, 1, 10, 100, mentionTime)
	require.NoError(t, err)

	scheduler.Schedule(tracker.Key{CommunityID: 1, MentionMessageID: 100}, 10*time.Millisecond, tracker.Payload{})

	require.Eventually(t, func() bool {
		return recorder.count() == 1
	}, time.Second, 5*time.Millisecond)

	// A late response still closes the record; cancelling the fired timer
	// is a harmless no-op and no second notification follows.
	closed, err := correlator.Correlate(
		ctx, &types.Curator{ID: 7}, 1, 100, nil, mentionTime.Add(30*time.Second), enum.ResponseKindReply,
	)
	require.NoError(t, err)
	require.NotNil(t, closed)
	require.NotNil(t, closed.ResponseTimeSeconds)
	assert.Equal(t, int64(30), *closed.ResponseTimeSeconds)

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, 1, recorder.count())
}

func TestCorrelateUntrackedMessage(t *testing.T) {
	t.Parallel()

	_, _, correlator, _ := setupCorrelator(t)

	closed, err := correlator.Correlate(
		t.Context(), &types.Curator{ID: 7}, 1, 999, nil, time.Now(), enum.ResponseKindReaction,
	)
	require.NoError(t, err)
	assert.Nil(t, closed)
}

func TestCorrelateRace(t *testing.T) {
	t.Parallel()

	tr, scheduler, correlator, _ := setupCorrelator(t)
	ctx := t.Context()

	_, err := tr.Open(ctx, 1, 10, 100, time.Now())
	require.NoError(t, err)

	scheduler.Schedule(tracker.Key{CommunityID: 1, MentionMessageID: 100}, time.Minute, tracker.Payload{})

	// Two responders race on the same mention: exactly one closes it, the
	// loser degrades to a no-op.
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		winners int
	)

	for curatorID := uint64(1); curatorID <= 2; curatorID++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			closed, err := correlator.Correlate(
				ctx, &types.Curator{ID: curatorID}, 1, 100, nil, time.Now(), enum.ResponseKindReaction,
			)
			assert.NoError(t, err)

			if closed != nil {
				mu.Lock()
				winners++
				mu.Unlock()
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, 1, winners)
	assert.Equal(t, 0, scheduler.PendingCount())
}
