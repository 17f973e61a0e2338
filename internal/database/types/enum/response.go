package enum

// ResponseKind represents how a curator answered a tracked mention.
//
//go:generate go tool enumer -type=ResponseKind -trimprefix=ResponseKind
type ResponseKind int

const (
	// ResponseKindNone marks a tracking record that has not been answered yet.
	ResponseKindNone ResponseKind = iota

	// ResponseKindReply marks a mention answered with a reply message.
	ResponseKindReply
	// ResponseKindReaction marks a mention answered with a reaction.
	ResponseKindReaction
)
