package tracker_test

import (
	"context"
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

type fakeCurators struct {
	byDiscordID map[uint64]*types.Curator
}

func (f *fakeCurators) GetByDiscordID(_ context.Context, discordID uint64) (*types.Curator, error) {
	if curator, ok := f.byDiscordID[discordID]; ok {
		return curator, nil
	}

	return nil, types.ErrCuratorNotFound
}

type fakeCommunities struct {
	byServerID map[uint64]*types.Community
	byID       map[uint64]*types.Community
}

func (f *fakeCommunities) GetByServerID(_ context.Context, serverID uint64) (*types.Community, error) {
	if community, ok := f.byServerID[serverID]; ok {
		return community, nil
	}

	return nil, types.ErrCommunityNotFound
}

func (f *fakeCommunities) GetByID(_ context.Context, id uint64) (*types.Community, error) {
	if community, ok := f.byID[id]; ok {
		return community, nil
	}

	return nil, types.ErrCommunityNotFound
}

type fakeActivities struct {
	mu   sync.Mutex
	logs []*types.ActivityLog
}

func (f *fakeActivities) Append(_ context.Context, log *types.ActivityLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.logs = append(f.logs, log)

	return nil
}

type classifierFixture struct {
	classifier *tracker.Classifier
	tracker    *tracker.Tracker
	scheduler  *tracker.Scheduler
	activities *fakeActivities
	recorder   *sendRecorder
	store      *fakeStore
}

func setupClassifier(t *testing.T) *classifierFixture {
	t.Helper()

	recorder := &sendRecorder{}
	scheduler := tracker.NewScheduler(recorder.send, zap.NewNop())
	t.Cleanup(scheduler.Stop)

	store := newFakeStore()
	tr := tracker.NewTracker(store, zap.NewNop())
	correlator := tracker.NewCorrelator(tr, scheduler, zap.NewNop())
	activities := &fakeActivities{}

	curators := &fakeCurators{byDiscordID: map[uint64]*types.Curator{
		500: {ID: 7, DiscordID: 500, Name: "alex", Kind: enum.CuratorKindGovernment, IsActive: true},
	}}
	communities := &fakeCommunities{byServerID: map[uint64]*types.Community{
		900: {ID: 1, ServerID: 900, Name: "Government", RoleTagID: 333},
	}}

	classifier := tracker.NewClassifier(
		curators, communities, activities, tr, scheduler, correlator,
		[]string{"Куратор", "help"}, time.Minute, zap.NewNop(),
	)

	return &classifierFixture{
		classifier: classifier,
		tracker:    tr,
		scheduler:  scheduler,
		activities: activities,
		recorder:   recorder,
		store:      store,
	}
}

func memberMessage(content string) tracker.MessageEvent {
	return tracker.MessageEvent{
		ServerID:  900,
		ChannelID: 10,
		MessageID: 100,
		AuthorID:  42,
		Content:   content,
		Timestamp: time.Now(),
	}
}

func TestNeedsResponse(t *testing.T) {
	t.Parallel()

	fixture := setupClassifier(t)
	community := &types.Community{RoleTagID: 333}

	assert.True(t, fixture.classifier.NeedsResponse(community, "привет <@&333> нужна помощь"))
	assert.True(t, fixture.classifier.NeedsResponse(community, "КУРАТОР зайди пожалуйста"))
	assert.True(t, fixture.classifier.NeedsResponse(community, "can someone HELP me"))
	assert.False(t, fixture.classifier.NeedsResponse(community, "обычное сообщение"))
	assert.False(t, fixture.classifier.NeedsResponse(community, "<@&999> другая роль"))

	// Without an attention role only keywords match.
	plain := &types.Community{}
	assert.False(t, fixture.classifier.NeedsResponse(plain, "<@&333> ау"))
}

func TestMemberMentionOpensTracking(t *testing.T) {
	t.Parallel()

	fixture := setupClassifier(t)
	ctx := t.Context()

	require.NoError(t, fixture.classifier.HandleMessage(ctx, memberMessage("куратор, помогите")))

	tracking, err := fixture.tracker.Find(ctx, 100)
	require.NoError(t, err)
	assert.True(t, tracking.IsOpen())
	assert.Equal(t, 1, fixture.scheduler.PendingCount())

	// Member activity is never logged.
	assert.Empty(t, fixture.activities.logs)
}

func TestMemberMentionDuplicateDelivery(t *testing.T) {
	t.Parallel()

	fixture := setupClassifier(t)
	ctx := t.Context()

	event := memberMessage("куратор, помогите")
	require.NoError(t, fixture.classifier.HandleMessage(ctx, event))
	require.NoError(t, fixture.classifier.HandleMessage(ctx, event))

	assert.Equal(t, 1, fixture.scheduler.PendingCount())
}

func TestMemberPlainMessageIgnored(t *testing.T) {
	t.Parallel()

	fixture := setupClassifier(t)

	require.NoError(t, fixture.classifier.HandleMessage(t.Context(), memberMessage("добрый день")))

	assert.Equal(t, 0, fixture.scheduler.PendingCount())
	assert.Empty(t, fixture.activities.logs)
}

func TestBotMessageIgnored(t *testing.T) {
	t.Parallel()

	fixture := setupClassifier(t)

	event := memberMessage("куратор!")
	event.AuthorIsBot = true

	require.NoError(t, fixture.classifier.HandleMessage(t.Context(), event))
	assert.Equal(t, 0, fixture.scheduler.PendingCount())
}

func TestUnknownServerIgnored(t *testing.T) {
	t.Parallel()

	fixture := setupClassifier(t)

	event := memberMessage("куратор!")
	event.ServerID = 12345

	require.NoError(t, fixture.classifier.HandleMessage(t.Context(), event))
	assert.Equal(t, 0, fixture.scheduler.PendingCount())
}

func TestCuratorReplyClosesTracking(t *testing.T) {
	t.Parallel()

	fixture := setupClassifier(t)
	ctx := t.Context()

	require.NoError(t, fixture.classifier.HandleMessage(ctx, memberMessage("куратор, помогите")))

	reply := tracker.MessageEvent{
		ServerID:            900,
		ChannelID:           10,
		MessageID:           101,
		AuthorID:            500,
		Content:             "уже занимаюсь",
		ReferencedMessageID: 100,
		Timestamp:           time.Now().Add(30 * time.Second),
	}
	require.NoError(t, fixture.classifier.HandleMessage(ctx, reply))

	_, err := fixture.tracker.Find(ctx, 100)
	assert.ErrorIs(t, err, types.ErrTrackingNotFound)
	assert.Equal(t, 0, fixture.scheduler.PendingCount())

	// The reply is also logged as curator activity.
	require.Len(t, fixture.activities.logs, 1)
	log := fixture.activities.logs[0]
	assert.Equal(t, enum.ActivityKindReply, log.Kind)
	assert.Equal(t, uint64(7), log.CuratorID)
	require.NotNil(t, log.TargetMessageID)
	assert.Equal(t, uint64(100), *log.TargetMessageID)
	assert.Equal(t, "уже занимаюсь", log.Content)
}

func TestCuratorPlainMessageLogsActivity(t *testing.T) {
	t.Parallel()

	fixture := setupClassifier(t)

	event := memberMessage("добрый вечер всем")
	event.AuthorID = 500

	require.NoError(t, fixture.classifier.HandleMessage(t.Context(), event))

	require.Len(t, fixture.activities.logs, 1)
	assert.Equal(t, enum.ActivityKindMessage, fixture.activities.logs[0].Kind)
	assert.Nil(t, fixture.activities.logs[0].TargetMessageID)
}

func TestCuratorMentionTextDoesNotOpenTracking(t *testing.T) {
	t.Parallel()

	fixture := setupClassifier(t)

	// Curators writing the keywords themselves never open records.
	event := memberMessage("куратор всегда на связи")
	event.AuthorID = 500

	require.NoError(t, fixture.classifier.HandleMessage(t.Context(), event))
	assert.Equal(t, 0, fixture.scheduler.PendingCount())
}

func TestCuratorReactionClosesTracking(t *testing.T) {
	t.Parallel()

	fixture := setupClassifier(t)
	ctx := t.Context()

	require.NoError(t, fixture.classifier.HandleMessage(ctx, memberMessage("куратор, помогите")))

	reaction := tracker.ReactionEvent{
		ServerID:        900,
		ChannelID:       10,
		TargetMessageID: 100,
		AuthorID:        500,
		Timestamp:       time.Now().Add(10 * time.Second),
	}
	require.NoError(t, fixture.classifier.HandleReaction(ctx, reaction))

	_, err := fixture.tracker.Find(ctx, 100)
	assert.ErrorIs(t, err, types.ErrTrackingNotFound)
	assert.Equal(t, 0, fixture.scheduler.PendingCount())

	require.Len(t, fixture.activities.logs, 1)
	assert.Equal(t, enum.ActivityKindReaction, fixture.activities.logs[0].Kind)
}

func TestMemberReactionIgnored(t *testing.T) {
	t.Parallel()

	fixture := setupClassifier(t)
	ctx := t.Context()

	require.NoError(t, fixture.classifier.HandleMessage(ctx, memberMessage("куратор, помогите")))

	reaction := tracker.ReactionEvent{
		ServerID:        900,
		ChannelID:       10,
		TargetMessageID: 100,
		AuthorID:        42,
		Timestamp:       time.Now(),
	}
	require.NoError(t, fixture.classifier.HandleReaction(ctx, reaction))

	// Still open, still scheduled.
	_, err := fixture.tracker.Find(ctx, 100)
	assert.NoError(t, err)
	assert.Equal(t, 1, fixture.scheduler.PendingCount())
	assert.Empty(t, fixture.activities.logs)
}
