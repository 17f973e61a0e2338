package enum

// CuratorKind represents the category a curator belongs to.
//
//go:generate go tool enumer -type=CuratorKind -trimprefix=CuratorKind
type CuratorKind int

const (
	// CuratorKindGovernment covers curators of government factions.
	CuratorKindGovernment CuratorKind = iota
	// CuratorKindGovernmentCrimea covers curators of Crimea government factions.
	CuratorKindGovernmentCrimea
	// CuratorKindCrime covers curators of crime factions.
	CuratorKindCrime
)
