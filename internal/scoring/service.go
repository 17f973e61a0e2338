package scoring

import (
	"context"
	"fmt"
	"sort"

	"github.com/sparkred/curatord/internal/database"
	"github.com/sparkred/curatord/internal/database/types"
	"go.uber.org/zap"
)

// CuratorReport is one curator's full evaluated standing.
type CuratorReport struct {
	Curator *types.Curator
	Counts  types.ActivityCounts
	Result
	ResponseRating string // empty when no response samples exist
}

// Service evaluates curators against the stored scoring configuration.
type Service struct {
	db     database.Client
	logger *zap.Logger
}

// NewService creates a scoring service.
func NewService(db database.Client, logger *zap.Logger) *Service {
	return &Service{
		db:     db,
		logger: logger.Named("scoring"),
	}
}

// EvaluateCurator computes one curator's report.
func (s *Service) EvaluateCurator(ctx context.Context, curator *types.Curator) (*CuratorReport, error) {
	config, err := s.db.Model().Rating().GetScoringConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load scoring config: %w", err)
	}

	tiers, err := s.db.Model().Rating().GetRatingTiers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load rating tiers: %w", err)
	}

	return s.evaluate(ctx, curator, config, tiers)
}

// EvaluateAll computes reports for every active curator, ordered by score
// descending. Curators whose evaluation fails are logged and skipped.
func (s *Service) EvaluateAll(ctx context.Context) ([]*CuratorReport, error) {
	curators, err := s.db.Model().Curator().ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list curators: %w", err)
	}

	config, err := s.db.Model().Rating().GetScoringConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load scoring config: %w", err)
	}

	tiers, err := s.db.Model().Rating().GetRatingTiers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load rating tiers: %w", err)
	}

	reports := make([]*CuratorReport, 0, len(curators))

	for _, curator := range curators {
		report, err := s.evaluate(ctx, curator, config, tiers)
		if err != nil {
			s.logger.Error("Failed to evaluate curator",
				zap.Uint64("curatorID", curator.ID),
				zap.Error(err))

			continue
		}

		reports = append(reports, report)
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].Score > reports[j].Score
	})

	return reports, nil
}

func (s *Service) evaluate(
	ctx context.Context, curator *types.Curator, config *types.ScoringConfig, tiers []types.RatingTier,
) (*CuratorReport, error) {
	counts, err := s.db.Model().Activity().CountsByCurator(ctx, curator.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count activity: %w", err)
	}

	samples, err := s.db.Model().Tracking().ResponseTimeSamples(ctx, curator.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load response samples: %w", err)
	}

	report := &CuratorReport{
		Curator: curator,
		Counts:  *counts,
		Result:  Evaluate(Input{Counts: *counts, ResponseTimeSamples: samples}, config, tiers),
	}

	if report.AvgResponseTimeSeconds != nil {
		report.ResponseRating = ResponseRating(*report.AvgResponseTimeSeconds, config)
	}

	return report, nil
}
