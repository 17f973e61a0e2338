package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/disgoorg/disgo/rest"
	"github.com/sparkred/curatord/internal/bot"
	"github.com/sparkred/curatord/internal/cache"
	"github.com/sparkred/curatord/internal/setup"
	"github.com/sparkred/curatord/internal/tracker"
)

const (
	// BotLogDir specifies where bot log files are stored.
	BotLogDir = "logs/bot_logs"
)

func main() {
	ctx := context.Background()

	// Initialize application with required dependencies
	app, err := setup.InitializeApp(ctx, BotLogDir)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.Cleanup()

	cfg := app.Config.Bot
	delay := cfg.Tracking.NotificationDelayDuration()

	// The notifier only needs REST, so it comes up before the gateway.
	// That lets recovery send overdue notifications while still offline.
	restClient := rest.New(rest.NewClient(cfg.Discord.Token))
	notifier := bot.NewNotifier(restClient, cfg.Tracking.CuratorRoleMap, app.Logger)

	scheduler := tracker.NewScheduler(notifier.Notify, app.Logger)
	defer scheduler.Stop()

	repo := app.DB.Model()
	mentionTracker := tracker.NewTracker(repo.Tracking(), app.Logger)
	correlator := tracker.NewCorrelator(mentionTracker, scheduler, app.Logger)
	curatorCache := cache.NewCurators(app.CacheClient, repo.Curator(), app.Logger)

	classifier := tracker.NewClassifier(
		curatorCache,
		repo.Community(),
		repo.Activity(),
		mentionTracker,
		scheduler,
		correlator,
		cfg.Tracking.AttentionKeywords,
		delay,
		app.Logger,
	)

	// Rebuild the notification schedule from open tracking records before
	// the gateway starts delivering new events.
	loader := tracker.NewLoader(repo.Tracking(), repo.Community(), scheduler, notifier.Notify, delay, app.Logger)
	if err := loader.Run(ctx); err != nil {
		log.Printf("Failed to recover pending notifications: %v", err)
		return
	}

	// Create bot instance
	discordBot, err := bot.New(cfg.Discord.Token, classifier, app.Logger)
	if err != nil {
		log.Printf("Failed to create bot: %v", err)
		return
	}

	// Start the bot and connect to Discord
	if err := discordBot.Start(ctx); err != nil {
		log.Printf("Failed to start bot: %v", err)
		return
	}

	log.Println("Bot has been started. Waiting for interrupt signal to gracefully shutdown...")

	// Wait for interrupt signal to gracefully shutdown the bot
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Cleanly close down the Discord session
	discordBot.Close()
}
