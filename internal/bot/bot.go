// Package bot connects the tracking core to the Discord gateway.
package bot

import (
	"context"
	"time"

	"github.com/disgoorg/disgo"
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/disgo/gateway"
	"github.com/sparkred/curatord/internal/tracker"
	"go.uber.org/zap"
)

// Bot owns the gateway connection and translates raw Discord events into
// the typed events the classifier consumes.
type Bot struct {
	client     bot.Client
	classifier *tracker.Classifier
	logger     *zap.Logger
}

// New configures the Discord client with the gateway intents and event
// listeners the tracking loop needs. Message content intent is required
// for keyword matching.
func New(token string, classifier *tracker.Classifier, logger *zap.Logger) (*Bot, error) {
	b := &Bot{
		classifier: classifier,
		logger:     logger.Named("bot"),
	}

	client, err := disgo.New(token,
		bot.WithGatewayConfigOpts(
			gateway.WithIntents(
				gateway.IntentGuilds,
				gateway.IntentGuildMessages,
				gateway.IntentGuildMessageReactions,
				gateway.IntentMessageContent,
			),
		),
		bot.WithEventListeners(&events.ListenerAdapter{
			OnGuildMessageCreate:      b.handleMessageCreate,
			OnGuildMessageReactionAdd: b.handleReactionAdd,
		}),
	)
	if err != nil {
		return nil, err
	}

	b.client = client

	return b, nil
}

// Start opens the gateway connection.
func (b *Bot) Start(ctx context.Context) error {
	b.logger.Info("Starting bot")

	return b.client.OpenGateway(ctx)
}

// Close gracefully shuts down the gateway connection.
func (b *Bot) Close() {
	b.logger.Info("Closing bot")
	b.client.Close(context.Background())
}

// handleMessageCreate converts a gateway message event and hands it to
// the classifier in a goroutine so slow database work never blocks the
// event loop.
func (b *Bot) handleMessageCreate(event *events.GuildMessageCreate) {
	message := event.Message

	var referencedID uint64
	if message.MessageReference != nil && message.MessageReference.MessageID != nil {
		referencedID = uint64(*message.MessageReference.MessageID)
	}

	typed := tracker.MessageEvent{
		ServerID:            uint64(event.GuildID),
		ChannelID:           uint64(event.ChannelID),
		MessageID:           uint64(message.ID),
		AuthorID:            uint64(message.Author.ID),
		AuthorIsBot:         message.Author.Bot,
		Content:             message.Content,
		ReferencedMessageID: referencedID,
		Timestamp:           message.CreatedAt,
	}

	go func() {
		if err := b.classifier.HandleMessage(context.Background(), typed); err != nil {
			b.logger.Error("Failed to handle message event",
				zap.Uint64("messageID", typed.MessageID),
				zap.Error(err))
		}
	}()
}

// handleReactionAdd converts a gateway reaction event. Reactions carry no
// timestamp of their own, so arrival time stands in for it.
func (b *Bot) handleReactionAdd(event *events.GuildMessageReactionAdd) {
	typed := tracker.ReactionEvent{
		ServerID:        uint64(event.GuildID),
		ChannelID:       uint64(event.ChannelID),
		TargetMessageID: uint64(event.MessageID),
		AuthorID:        uint64(event.UserID),
		AuthorIsBot:     event.Member.User.Bot,
		Timestamp:       time.Now(),
	}

	go func() {
		if err := b.classifier.HandleReaction(context.Background(), typed); err != nil {
			b.logger.Error("Failed to handle reaction event",
				zap.Uint64("targetMessageID", typed.TargetMessageID),
				zap.Error(err))
		}
	}()
}
