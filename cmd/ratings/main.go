package main

import (
	"context"
	"fmt"
	"log"

	"github.com/sparkred/curatord/internal/scoring"
	"github.com/sparkred/curatord/internal/setup"
)

const (
	// RatingsLogDir specifies where ratings log files are stored.
	RatingsLogDir = "logs/ratings_logs"
)

// main evaluates every active curator and prints the leaderboard.
func main() {
	ctx := context.Background()

	app, err := setup.InitializeApp(ctx, RatingsLogDir)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.Cleanup()

	service := scoring.NewService(app.DB, app.Logger)

	reports, err := service.EvaluateAll(ctx)
	if err != nil {
		log.Fatalf("Failed to evaluate curators: %v", err)
	}

	fmt.Printf("%-4s %-24s %-6s %-12s %-10s %s\n",
		"#", "Curator", "Score", "Tier", "AvgResp", "M/Rp/Rx/TV")

	for i, report := range reports {
		tier := "-"
		if report.Tier != nil {
			tier = report.Tier.Name
		}

		avg := "-"
		if report.AvgResponseTimeSeconds != nil {
			avg = fmt.Sprintf("%.0fs (%s)", *report.AvgResponseTimeSeconds, report.ResponseRating)
		}

		fmt.Printf("%-4d %-24s %-6d %-12s %-10s %d/%d/%d/%d\n",
			i+1, report.Curator.Name, report.Score, tier, avg,
			report.Counts.Messages, report.Counts.Replies,
			report.Counts.Reactions, report.Counts.TaskVerifications)
	}
}
