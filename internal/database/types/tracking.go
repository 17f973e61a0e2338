package types

import (
	"errors"
	"time"

	"github.com/sparkred/curatord/internal/database/types/enum"
)

var (
	// ErrTrackingExists is returned when opening a tracking record for a
	// mention that already has an open record. Callers treat it as a no-op.
	ErrTrackingExists = errors.New("open tracking record already exists for mention")
	// ErrTrackingClosed is returned when closing a record that was already
	// closed by another responder. Callers treat it as a no-op.
	ErrTrackingClosed = errors.New("tracking record already closed")
	// ErrTrackingNotFound is returned when no open record exists for a mention.
	ErrTrackingNotFound = errors.New("tracking record not found")
)

// MentionTracking correlates a mention with its eventual curator response.
// A record is open while ResponseTimestamp is null and becomes terminal once
// closed; at most one open record may exist per mention message id.
type MentionTracking struct {
	ID                  uint64            `bun:",pk,autoincrement" json:"id"`
	CommunityID         uint64            `bun:",notnull"          json:"communityId"`
	CuratorID           *uint64           `bun:",nullzero"         json:"curatorId"`
	ChannelID           uint64            `bun:",notnull"          json:"channelId"`
	MentionMessageID    uint64            `bun:",notnull"          json:"mentionMessageId"`
	MentionTimestamp    time.Time         `bun:",notnull"          json:"mentionTimestamp"`
	ResponseMessageID   *uint64           `bun:",nullzero"         json:"responseMessageId"`
	ResponseTimestamp   *time.Time        `bun:",nullzero"         json:"responseTimestamp"`
	ResponseKind        enum.ResponseKind `bun:",notnull,default:0" json:"responseKind"`
	ResponseTimeSeconds *int64            `bun:",nullzero"         json:"responseTimeSeconds"`
}

// IsOpen reports whether the record is still awaiting a response.
func (t *MentionTracking) IsOpen() bool {
	return t.ResponseTimestamp == nil
}

// ResponseTimeSince returns the measured response time for a response
// observed at the given timestamp, floored at one second to avoid
// zero or negative durations from clock skew.
func (t *MentionTracking) ResponseTimeSince(responseTimestamp time.Time) int64 {
	seconds := int64(responseTimestamp.Sub(t.MentionTimestamp).Round(time.Second) / time.Second)
	if seconds < 1 {
		return 1
	}

	return seconds
}
