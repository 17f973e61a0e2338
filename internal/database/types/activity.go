package types

import (
	"time"

	"github.com/sparkred/curatord/internal/database/types/enum"
)

// MaxActivityContentLength bounds stored message content.
const MaxActivityContentLength = 1000

// ActivityLog is an append-only record of one curator action.
// These rows are the raw input to the scoring engine.
type ActivityLog struct {
	ID              uint64            `bun:",pk,autoincrement" json:"id"`
	CuratorID       uint64            `bun:",notnull"          json:"curatorId"`
	CommunityID     uint64            `bun:",notnull"          json:"communityId"`
	Kind            enum.ActivityKind `bun:",notnull"          json:"kind"`
	ChannelID       uint64            `bun:",notnull"          json:"channelId"`
	MessageID       *uint64           `bun:",nullzero"         json:"messageId"`
	TargetMessageID *uint64           `bun:",nullzero"         json:"targetMessageId"`
	Content         string            `bun:",nullzero"         json:"content"`
	Timestamp       time.Time         `bun:",notnull"          json:"timestamp"`
}

// ActivityFilter defines criteria for querying activity logs.
type ActivityFilter struct {
	CuratorID   uint64
	CommunityID uint64
	Kind        enum.ActivityKind
	StartDate   time.Time
	EndDate     time.Time
}

// ActivityCounts holds per-kind activity totals for one curator.
type ActivityCounts struct {
	Messages          int64
	Replies           int64
	Reactions         int64
	TaskVerifications int64
}

// TruncateContent trims message content to the stored maximum,
// counting runes so multi-byte text is never split mid-character.
func TruncateContent(content string) string {
	runes := []rune(content)
	if len(runes) > MaxActivityContentLength {
		return string(runes[:MaxActivityContentLength])
	}

	return content
}
