package tracker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sparkred/curatord/internal/database/types"
	"github.com/sparkred/curatord/internal/database/types/enum"
	"go.uber.org/zap"
)

// MessageEvent is one inbound message-created event, validated at the
// gateway boundary.
type MessageEvent struct {
	ServerID            uint64
	ChannelID           uint64
	MessageID           uint64
	AuthorID            uint64
	AuthorIsBot         bool
	Content             string
	ReferencedMessageID uint64 // 0 when the message is not a reply
	Timestamp           time.Time
}

// ReactionEvent is one inbound reaction-added event.
type ReactionEvent struct {
	ServerID        uint64
	ChannelID       uint64
	TargetMessageID uint64
	AuthorID        uint64
	AuthorIsBot     bool
	Timestamp       time.Time
}

// CuratorSource resolves an account id to an active curator.
// Returns types.ErrCuratorNotFound for everyone else.
type CuratorSource interface {
	GetByDiscordID(ctx context.Context, discordID uint64) (*types.Curator, error)
}

// CommunitySource resolves a chat server id to a monitored community.
type CommunitySource interface {
	GetByServerID(ctx context.Context, serverID uint64) (*types.Community, error)
}

// ActivitySink appends curator actions to the activity log.
type ActivitySink interface {
	Append(ctx context.Context, log *types.ActivityLog) error
}

// Classifier inspects each inbound chat event and routes it: messages
// needing a curator response open a tracking record and schedule an
// escalation; curator activity is logged and, when it references another
// message, run through the correlator.
type Classifier struct {
	curators    CuratorSource
	communities CommunitySource
	activities  ActivitySink
	tracker     *Tracker
	scheduler   *Scheduler
	correlator  *Correlator
	keywords    []string
	delay       time.Duration
	logger      *zap.Logger
}

// NewClassifier creates a classifier. Keywords are matched
// case-insensitively and are lowercased once here.
func NewClassifier(
	curators CuratorSource, communities CommunitySource, activities ActivitySink,
	tracker *Tracker, scheduler *Scheduler, correlator *Correlator,
	keywords []string, delay time.Duration, logger *zap.Logger,
) *Classifier {
	lowered := make([]string, len(keywords))
	for i, keyword := range keywords {
		lowered[i] = strings.ToLower(keyword)
	}

	return &Classifier{
		curators:    curators,
		communities: communities,
		activities:  activities,
		tracker:     tracker,
		scheduler:   scheduler,
		correlator:  correlator,
		keywords:    lowered,
		delay:       delay,
		logger:      logger.Named("classifier"),
	}
}

// HandleMessage processes one message-created event.
// Store failures are returned to the caller, which logs and drops the
// single event so the loop stays available for subsequent ones.
func (c *Classifier) HandleMessage(ctx context.Context, event MessageEvent) error {
	if event.AuthorIsBot {
		return nil
	}

	community, err := c.communities.GetByServerID(ctx, event.ServerID)
	if err != nil {
		if errors.Is(err, types.ErrCommunityNotFound) {
			return nil
		}

		return fmt.Errorf("failed to resolve community: %w", err)
	}

	curator, err := c.curators.GetByDiscordID(ctx, event.AuthorID)
	if err != nil && !errors.Is(err, types.ErrCuratorNotFound) {
		return fmt.Errorf("failed to resolve curator: %w", err)
	}

	if curator == nil {
		if c.NeedsResponse(community, event.Content) {
			return c.openMention(ctx, community, event)
		}

		return nil
	}

	if event.ReferencedMessageID != 0 {
		messageID := event.MessageID
		if _, err := c.correlator.Correlate(
			ctx, curator, community.ID, event.ReferencedMessageID,
			&messageID, event.Timestamp, enum.ResponseKindReply,
		); err != nil {
			return err
		}
	}

	return c.appendMessageActivity(ctx, curator, community, event)
}

// HandleReaction processes one reaction-added event. Only curator
// reactions matter: they may answer a tracked mention and they count as
// activity.
func (c *Classifier) HandleReaction(ctx context.Context, event ReactionEvent) error {
	if event.AuthorIsBot {
		return nil
	}

	curator, err := c.curators.GetByDiscordID(ctx, event.AuthorID)
	if err != nil {
		if errors.Is(err, types.ErrCuratorNotFound) {
			return nil
		}

		return fmt.Errorf("failed to resolve curator: %w", err)
	}

	community, err := c.communities.GetByServerID(ctx, event.ServerID)
	if err != nil {
		if errors.Is(err, types.ErrCommunityNotFound) {
			return nil
		}

		return fmt.Errorf("failed to resolve community: %w", err)
	}

	if _, err := c.correlator.Correlate(
		ctx, curator, community.ID, event.TargetMessageID,
		nil, event.Timestamp, enum.ResponseKindReaction,
	); err != nil {
		return err
	}

	targetID := event.TargetMessageID

	return c.activities.Append(ctx, &types.ActivityLog{
		CuratorID:       curator.ID,
		CommunityID:     community.ID,
		Kind:            enum.ActivityKindReaction,
		ChannelID:       event.ChannelID,
		TargetMessageID: &targetID,
		Timestamp:       event.Timestamp,
	})
}

// NeedsResponse reports whether message content requires curator
// attention: it mentions the community's attention role or contains a
// configured keyword.
func (c *Classifier) NeedsResponse(community *types.Community, content string) bool {
	if community.RoleTagID != 0 &&
		strings.Contains(content, fmt.Sprintf("<@&%d>", community.RoleTagID)) {
		return true
	}

	lowered := strings.ToLower(content)
	for _, keyword := range c.keywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}

	return false
}

// openMention opens a tracking record for a message needing a response
// and schedules its escalation notification.
func (c *Classifier) openMention(ctx context.Context, community *types.Community, event MessageEvent) error {
	_, err := c.tracker.Open(ctx, community.ID, event.ChannelID, event.MessageID, event.Timestamp)
	if err != nil {
		if errors.Is(err, types.ErrTrackingExists) {
			// Duplicate delivery of the same platform event.
			return nil
		}

		return fmt.Errorf("failed to open tracking record: %w", err)
	}

	c.scheduler.Schedule(
		Key{CommunityID: community.ID, MentionMessageID: event.MessageID},
		c.delay,
		NewPayload(community, event.ChannelID, event.MessageID, event.Timestamp),
	)

	return nil
}

// appendMessageActivity records a curator message or reply.
func (c *Classifier) appendMessageActivity(
	ctx context.Context, curator *types.Curator, community *types.Community, event MessageEvent,
) error {
	kind := enum.ActivityKindMessage

	log := &types.ActivityLog{
		CuratorID:   curator.ID,
		CommunityID: community.ID,
		ChannelID:   event.ChannelID,
		Content:     types.TruncateContent(event.Content),
		Timestamp:   event.Timestamp,
	}

	messageID := event.MessageID
	log.MessageID = &messageID

	if event.ReferencedMessageID != 0 {
		kind = enum.ActivityKindReply
		targetID := event.ReferencedMessageID
		log.TargetMessageID = &targetID
	}

	log.Kind = kind

	return c.activities.Append(ctx, log)
}

// NewPayload assembles the notification payload for a mention seen in the
// given channel. The community's notification channel override wins when
// set.
func NewPayload(community *types.Community, channelID, mentionMessageID uint64, mentionTimestamp time.Time) Payload {
	notifyChannelID := community.NotifyChannelID
	if notifyChannelID == 0 {
		notifyChannelID = channelID
	}

	return Payload{
		CommunityID:      community.ID,
		CommunityName:    community.Name,
		ServerID:         community.ServerID,
		ChannelID:        channelID,
		NotifyChannelID:  notifyChannelID,
		MentionMessageID: mentionMessageID,
		MentionTimestamp: mentionTimestamp,
	}
}
