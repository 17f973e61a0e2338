package tracker_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/sparkred/curatord/internal/tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// sendRecorder captures notification sends for assertions.
type sendRecorder struct {
	mu    sync.Mutex
	sends []tracker.Payload
}

func (r *sendRecorder) send(_ context.Context, payload tracker.Payload) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sends = append(r.sends, payload)

	return nil
}

func (r *sendRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.sends)
}

func (r *sendRecorder) last() tracker.Payload {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.sends[len(r.sends)-1]
}

func TestSchedulerFiresAfterDelay(t *testing.T) {
	t.Parallel()

	recorder := &sendRecorder{}
	scheduler := tracker.NewScheduler(recorder.send, zap.NewNop())

	defer scheduler.Stop()

	key := tracker.Key{CommunityID: 1, MentionMessageID: 100}
	scheduler.Schedule(key, 20*time.Millisecond, tracker.Payload{MentionMessageID: 100})

	require.Eventually(t, func() bool {
		return recorder.count() == 1
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, 0, scheduler.PendingCount())

	// The fired key must not send again.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, recorder.count())
}

func TestSchedulerCancelPreventsSend(t *testing.T) {
	t.Parallel()

	recorder := &sendRecorder{}
	scheduler := tracker.NewScheduler(recorder.send, zap.NewNop())

	defer scheduler.Stop()

	key := tracker.Key{CommunityID: 1, MentionMessageID: 100}
	scheduler.Schedule(key, 30*time.Millisecond, tracker.Payload{})
	scheduler.Cancel(key)

	assert.Equal(t, 0, scheduler.PendingCount())

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 0, recorder.count())
}

func TestSchedulerCancelAfterFireIsNoop(t *testing.T) {
	t.Parallel()

	recorder := &sendRecorder{}
	scheduler := tracker.NewScheduler(recorder.send, zap.NewNop())

	defer scheduler.Stop()

	key := tracker.Key{CommunityID: 1, MentionMessageID: 100}
	scheduler.Schedule(key, 10*time.Millisecond, tracker.Payload{})

	require.Eventually(t, func() bool {
		return recorder.count() == 1
	}, time.Second, 5*time.Millisecond)

	scheduler.Cancel(key)
	assert.Equal(t, 1, recorder.count())
}

func TestSchedulerRescheduleOverwrites(t *testing.T) {
	t.Parallel()

	recorder := &sendRecorder{}
	scheduler := tracker.NewScheduler(recorder.send, zap.NewNop())

	defer scheduler.Stop()

	key := tracker.Key{CommunityID: 1, MentionMessageID: 100}
	scheduler.Schedule(key, 20*time.Millisecond, tracker.Payload{ChannelID: 1})
	scheduler.Schedule(key, 40*time.Millisecond, tracker.Payload{ChannelID: 2})

	assert.Equal(t, 1, scheduler.PendingCount())

	require.Eventually(t, func() bool {
		return recorder.count() == 1
	}, time.Second, 5*time.Millisecond)

	// Only the superseding payload is delivered.
	assert.Equal(t, uint64(2), recorder.last().ChannelID)

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, recorder.count())
}

func TestSchedulerDistinctKeysFireIndependently(t *testing.T) {
	t.Parallel()

	recorder := &sendRecorder{}
	scheduler := tracker.NewScheduler(recorder.send, zap.NewNop())

	defer scheduler.Stop()

	scheduler.Schedule(tracker.Key{CommunityID: 1, MentionMessageID: 100}, 10*time.Millisecond, tracker.Payload{})
	scheduler.Schedule(tracker.Key{CommunityID: 2, MentionMessageID: 100}, 10*time.Millisecond, tracker.Payload{})

	require.Eventually(t, func() bool {
		return recorder.count() == 2
	}, time.Second, 5*time.Millisecond)
}

func TestSchedulerStopCancelsEverything(t *testing.T) {
	t.Parallel()

	recorder := &sendRecorder{}
	scheduler := tracker.NewScheduler(recorder.send, zap.NewNop())

	scheduler.Schedule(tracker.Key{CommunityID: 1, MentionMessageID: 100}, 30*time.Millisecond, tracker.Payload{})
	scheduler.Schedule(tracker.Key{CommunityID: 1, MentionMessageID: 200}, 30*time.Millisecond, tracker.Payload{})
	scheduler.Stop()

	assert.Equal(t, 0, scheduler.PendingCount())

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 0, recorder.count())
}
