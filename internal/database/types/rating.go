package types

// ScoringConfig holds the global activity weights and the response-time
// thresholds used for display tiering. Exactly one row exists.
type ScoringConfig struct {
	ID                      uint64 `bun:",pk,autoincrement" json:"id"`
	PointsMessage           int64  `bun:",notnull,default:3"   json:"pointsMessage"`
	PointsReaction          int64  `bun:",notnull,default:1"   json:"pointsReaction"`
	PointsReply             int64  `bun:",notnull,default:2"   json:"pointsReply"`
	PointsTaskVerification  int64  `bun:",notnull,default:5"   json:"pointsTaskVerification"`
	ResponseTimeGoodSeconds int64  `bun:",notnull,default:60"  json:"responseTimeGoodSeconds"`
	ResponseTimePoorSeconds int64  `bun:",notnull,default:300" json:"responseTimePoorSeconds"`
}

// RatingTier is one named performance bracket. A curator's tier is the
// tier with the largest MinScore not exceeding their score.
type RatingTier struct {
	ID       uint64 `bun:",pk,autoincrement" json:"id"`
	Name     string `bun:",notnull,unique"   json:"name"`
	Label    string `bun:",notnull"          json:"label"`
	MinScore int64  `bun:",notnull"          json:"minScore"`
	Color    string `bun:",notnull"          json:"color"`
}

// DefaultRatingTiers returns the seed tiers used when none are configured.
func DefaultRatingTiers() []RatingTier {
	return []RatingTier{
		{Name: "excellent", Label: "Великолепно", MinScore: 50, Color: "bg-green-500"},
		{Name: "good", Label: "Хорошо", MinScore: 35, Color: "bg-blue-500"},
		{Name: "normal", Label: "Нормально", MinScore: 20, Color: "bg-yellow-500"},
		{Name: "poor", Label: "Плохо", MinScore: 10, Color: "bg-orange-500"},
		{Name: "terrible", Label: "Ужасно", MinScore: 0, Color: "bg-red-500"},
	}
}
