package scoring_test

import (
	"testing"

	"github.com/sparkred/curatord/internal/database/types"
	"github.com/sparkred/curatord/internal/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig() *types.ScoringConfig {
	return &types.ScoringConfig{
		PointsMessage:           3,
		PointsReaction:          1,
		PointsReply:             2,
		PointsTaskVerification:  5,
		ResponseTimeGoodSeconds: 60,
		ResponseTimePoorSeconds: 300,
	}
}

func TestEvaluate(t *testing.T) {
	t.Parallel()

	input := scoring.Input{
		Counts: types.ActivityCounts{
			Messages:  8,
			Replies:   7,
			Reactions: 6,
		},
		ResponseTimeSamples: []int64{30, 90},
	}

	result := scoring.Evaluate(input, defaultConfig(), types.DefaultRatingTiers())

	// 8*3 + 7*2 + 6*1 = 44, which lands in the "good" bracket.
	assert.Equal(t, int64(44), result.Score)
	require.NotNil(t, result.Tier)
	assert.Equal(t, "good", result.Tier.Name)

	require.NotNil(t, result.AvgResponseTimeSeconds)
	assert.InDelta(t, 60.0, *result.AvgResponseTimeSeconds, 0.001)
}

func TestEvaluateTaskVerifications(t *testing.T) {
	t.Parallel()

	input := scoring.Input{
		Counts: types.ActivityCounts{TaskVerifications: 10},
	}

	result := scoring.Evaluate(input, defaultConfig(), types.DefaultRatingTiers())

	assert.Equal(t, int64(50), result.Score)
	require.NotNil(t, result.Tier)
	assert.Equal(t, "excellent", result.Tier.Name)
}

func TestEvaluateNoResponseSamples(t *testing.T) {
	t.Parallel()

	result := scoring.Evaluate(scoring.Input{}, defaultConfig(), types.DefaultRatingTiers())

	// No closed mentions means the average is undefined, not zero.
	assert.Nil(t, result.AvgResponseTimeSeconds)
	assert.Equal(t, int64(0), result.Score)
	require.NotNil(t, result.Tier)
	assert.Equal(t, "terrible", result.Tier.Name)
}

func TestTierBoundaries(t *testing.T) {
	t.Parallel()

	tiers := types.DefaultRatingTiers()

	cases := []struct {
		score int64
		want  string
	}{
		{score: 0, want: "terrible"},
		{score: 9, want: "terrible"},
		{score: 10, want: "poor"},
		{score: 19, want: "poor"},
		{score: 20, want: "normal"},
		{score: 34, want: "normal"},
		{score: 35, want: "good"},
		{score: 49, want: "good"},
		{score: 50, want: "excellent"},
		{score: 1000, want: "excellent"},
	}

	for _, tc := range cases {
		tier := scoring.TierFor(tc.score, tiers)
		require.NotNil(t, tier, "score %d", tc.score)
		assert.Equal(t, tc.want, tier.Name, "score %d", tc.score)
	}
}

func TestTierForNoTiers(t *testing.T) {
	t.Parallel()

	assert.Nil(t, scoring.TierFor(44, nil))
}

func TestResponseRating(t *testing.T) {
	t.Parallel()

	config := defaultConfig()

	assert.Equal(t, scoring.ResponseRatingGood, scoring.ResponseRating(1, config))
	assert.Equal(t, scoring.ResponseRatingGood, scoring.ResponseRating(60, config))
	assert.Equal(t, scoring.ResponseRatingNormal, scoring.ResponseRating(60.5, config))
	assert.Equal(t, scoring.ResponseRatingNormal, scoring.ResponseRating(300, config))
	assert.Equal(t, scoring.ResponseRatingPoor, scoring.ResponseRating(301, config))
}
