package enum

// ActivityKind represents the kind of curator action recorded in the activity log.
//
//go:generate go tool enumer -type=ActivityKind -trimprefix=ActivityKind
type ActivityKind int

const (
	// ActivityKindAll matches any activity kind in database queries.
	ActivityKindAll ActivityKind = iota

	// ActivityKindMessage tracks a plain message sent by a curator.
	ActivityKindMessage
	// ActivityKindReply tracks a curator reply referencing another message.
	ActivityKindReply
	// ActivityKindReaction tracks a curator reaction on another message.
	ActivityKindReaction
	// ActivityKindTaskVerification tracks a curator verifying a completed task report.
	ActivityKindTaskVerification
)
