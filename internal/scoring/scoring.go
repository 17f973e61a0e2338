// Package scoring turns raw curator activity into scores, rating tiers,
// and response-time ratings.
package scoring

import (
	"sort"

	"github.com/sparkred/curatord/internal/database/types"
)

// Response-time display ratings.
const (
	ResponseRatingGood   = "good"
	ResponseRatingNormal = "normal"
	ResponseRatingPoor   = "poor"
)

// Input is the raw material for one curator's evaluation.
type Input struct {
	Counts              types.ActivityCounts
	ResponseTimeSamples []int64
}

// Result is one curator's computed standing.
type Result struct {
	Score int64
	// AvgResponseTimeSeconds is nil when the curator has never closed a
	// tracked mention.
	AvgResponseTimeSeconds *float64
	Tier                   *types.RatingTier
}

// Evaluate computes a curator's score, average response time, and rating
// tier from their activity counts and closed-mention samples.
func Evaluate(input Input, config *types.ScoringConfig, tiers []types.RatingTier) Result {
	score := input.Counts.Messages*config.PointsMessage +
		input.Counts.Replies*config.PointsReply +
		input.Counts.Reactions*config.PointsReaction +
		input.Counts.TaskVerifications*config.PointsTaskVerification

	result := Result{Score: score, Tier: TierFor(score, tiers)}

	if len(input.ResponseTimeSamples) > 0 {
		var total int64
		for _, sample := range input.ResponseTimeSamples {
			total += sample
		}

		avg := float64(total) / float64(len(input.ResponseTimeSamples))
		result.AvgResponseTimeSeconds = &avg
	}

	return result
}

// TierFor returns the tier with the largest minimum score not exceeding
// the given score, or nil when no tier qualifies.
func TierFor(score int64, tiers []types.RatingTier) *types.RatingTier {
	sorted := make([]types.RatingTier, len(tiers))
	copy(sorted, tiers)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].MinScore > sorted[j].MinScore
	})

	for i := range sorted {
		if score >= sorted[i].MinScore {
			return &sorted[i]
		}
	}

	return nil
}

// ResponseRating classifies an average response time against the
// configured thresholds.
func ResponseRating(avgSeconds float64, config *types.ScoringConfig) string {
	switch {
	case avgSeconds <= float64(config.ResponseTimeGoodSeconds):
		return ResponseRatingGood
	case avgSeconds <= float64(config.ResponseTimePoorSeconds):
		return ResponseRatingNormal
	default:
		return ResponseRatingPoor
	}
}
