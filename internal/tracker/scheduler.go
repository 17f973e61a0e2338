package tracker

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Key identifies a pending notification in the scheduler registry.
type Key struct {
	CommunityID      uint64
	MentionMessageID uint64
}

// Payload carries everything the notification sink needs at fire time.
type Payload struct {
	CommunityID      uint64
	CommunityName    string
	ServerID         uint64
	ChannelID        uint64
	NotifyChannelID  uint64
	MentionMessageID uint64
	MentionTimestamp time.Time
}

// SendFunc delivers one escalation notification.
type SendFunc func(ctx context.Context, payload Payload) error

// pendingNotification is one live timer in the registry.
type pendingNotification struct {
	timer  *time.Timer
	fireAt time.Time
}

// Scheduler owns cancellable delayed escalation notifications, keyed by
// community and mention message id. Scheduling overwrites any prior timer
// for the same key; firing is at-most-once per key, enforced by checking
// that the registry still owns the entry before sending.
type Scheduler struct {
	mu      sync.Mutex
	pending map[Key]*pendingNotification
	send    SendFunc
	logger  *zap.Logger
}

// NewScheduler creates a scheduler delivering through the given send function.
func NewScheduler(send SendFunc, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		pending: make(map[Key]*pendingNotification),
		send:    send,
		logger:  logger.Named("scheduler"),
	}
}

// Schedule registers a delayed notification for the key, cancelling any
// prior timer for the same key so duplicate notifications cannot stack.
func (s *Scheduler) Schedule(key Key, delay time.Duration, payload Payload) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prior, exists := s.pending[key]; exists {
		prior.timer.Stop()
	}

	entry := &pendingNotification{fireAt: time.Now().Add(delay)}
	entry.timer = time.AfterFunc(delay, func() {
		s.fire(key, entry, payload)
	})
	s.pending[key] = entry

	s.logger.Debug("Scheduled notification",
		zap.Uint64("communityID", key.CommunityID),
		zap.Uint64("mentionMessageID", key.MentionMessageID),
		zap.Duration("delay", delay))
}

// Cancel removes the pending notification for the key, if any.
// Cancelling after the timer has fired is a no-op.
func (s *Scheduler) Cancel(key Key) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, exists := s.pending[key]
	if !exists {
		return
	}

	entry.timer.Stop()
	delete(s.pending, key)

	s.logger.Debug("Cancelled notification",
		zap.Uint64("communityID", key.CommunityID),
		zap.Uint64("mentionMessageID", key.MentionMessageID))
}

// PendingCount returns the number of live timers in the registry.
func (s *Scheduler) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.pending)
}

// Stop cancels all pending timers. Used on shutdown; notifications for
// still-open mentions are rebuilt by the recovery loader on next start.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, entry := range s.pending {
		entry.timer.Stop()
		delete(s.pending, key)
	}
}

// fire delivers the notification if the registry still owns this entry.
// A timer that lost a race with Cancel or was superseded by a later
// Schedule finds a different entry (or none) under its key and backs off,
// so a stale timer can never resurrect a cancelled notification.
func (s *Scheduler) fire(key Key, entry *pendingNotification, payload Payload) {
	s.mu.Lock()

	current, exists := s.pending[key]
	if !exists || current != entry {
		s.mu.Unlock()
		return
	}

	delete(s.pending, key)
	s.mu.Unlock()

	if err := s.send(context.Background(), payload); err != nil {
		s.logger.Error("Failed to send escalation notification",
			zap.Uint64("communityID", key.CommunityID),
			zap.Uint64("mentionMessageID", key.MentionMessageID),
			zap.Error(err))
		return
	}

	s.logger.Info("Sent escalation notification",
		zap.Uint64("communityID", key.CommunityID),
		zap.Uint64("mentionMessageID", key.MentionMessageID))
}
