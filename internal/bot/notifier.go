package bot

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/snowflake/v2"
	"github.com/sparkred/curatord/internal/tracker"
	"go.uber.org/zap"
)

// Notifier send retry settings.
const (
	notifyMaxRetries      = 2
	notifyInitialInterval = 2 * time.Second
	notifyMaxInterval     = 10 * time.Second
)

// Notifier delivers escalation messages for mentions that went
// unanswered past the notification delay. It only needs the REST half of
// the Discord client, so it can be built before the gateway is up.
type Notifier struct {
	rest rest.Rest
	// roleMap maps community names to the role mention string to ping
	// there, e.g. "<@&123>". Communities without an entry get @here.
	roleMap map[string]string
	now     func() time.Time
	logger  *zap.Logger
}

// NewNotifier creates a notifier.
func NewNotifier(restClient rest.Rest, roleMap map[string]string, logger *zap.Logger) *Notifier {
	return &Notifier{
		rest:    restClient,
		roleMap: roleMap,
		now:     time.Now,
		logger:  logger.Named("notifier"),
	}
}

// Notify posts the escalation message for one overdue mention. Transient
// send failures are retried with exponential backoff; the error returned
// is the final attempt's.
func (n *Notifier) Notify(ctx context.Context, payload tracker.Payload) error {
	content := n.escalationText(payload)

	b := backoff.WithMaxRetries(backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(notifyInitialInterval),
		backoff.WithMaxInterval(notifyMaxInterval),
	), notifyMaxRetries)

	err := backoff.Retry(func() error {
		_, err := n.rest.CreateMessage(snowflake.ID(payload.NotifyChannelID), discord.MessageCreate{
			Content: content,
		})

		return err
	}, backoff.WithContext(b, ctx))
	if err != nil {
		return fmt.Errorf("failed to send escalation message: %w", err)
	}

	n.logger.Info("Sent escalation notification",
		zap.String("community", payload.CommunityName),
		zap.Uint64("mentionMessageID", payload.MentionMessageID),
		zap.Uint64("notifyChannelID", payload.NotifyChannelID))

	return nil
}

// escalationText builds the notification body: the role to ping, a
// permalink to the unanswered message, and how long it has been waiting.
func (n *Notifier) escalationText(payload tracker.Payload) string {
	mention := "@here"
	if role, ok := n.roleMap[payload.CommunityName]; ok && role != "" {
		mention = role
	}

	permalink := fmt.Sprintf("https://discord.com/channels/%d/%d/%d",
		payload.ServerID, payload.ChannelID, payload.MentionMessageID)

	elapsed := n.now().Sub(payload.MentionTimestamp)

	return fmt.Sprintf("%s %s без ответа уже %s.", mention, permalink, formatElapsed(elapsed))
}

// formatElapsed renders a waiting duration in seconds under a minute and
// whole minutes after that.
func formatElapsed(elapsed time.Duration) string {
	if elapsed < 0 {
		elapsed = 0
	}

	if elapsed < time.Minute {
		return fmt.Sprintf("%d сек", int64(elapsed.Seconds()))
	}

	return fmt.Sprintf("%d мин", int64(elapsed.Minutes()))
}
