package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/kennyonsig/FeedingMyBaby/bot"
	"github.com/kennyonsig/FeedingMyBaby/config"
	"github.com/kennyonsig/FeedingMyBaby/routes"
	"github.com/kennyonsig/FeedingMyBaby/services"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "feedingmybaby",
	Short: "Telegram bot that tracks a baby's feeding, sleep and growth",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("feedingmybaby version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := config.OpenDB(cfg)
	if err != nil {
		return err
	}

	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return fmt.Errorf("connecting to telegram: %w", err)
	}
	log.Printf("authorized as @%s", api.Self.UserName)

	children := services.NewChildService(db, cfg.Location)
	feedings := services.NewFeedingService(db, cfg.Location)
	sleeps := services.NewSleepService(db, cfg.Location)
	diapers := services.NewDiaperService(db, cfg.Location)
	notes := services.NewNoteService(db)
	measurements := services.NewMeasurementService(db, cfg.Location)
	stats := services.NewStatsService(feedings, sleeps, diapers, measurements)

	b := bot.New(bot.Deps{
		API:          api,
		Children:     children,
		Feedings:     feedings,
		Sleeps:       sleeps,
		Diapers:      diapers,
		Notes:        notes,
		Measurements: measurements,
		Stats:        stats,
		Location:     cfg.Location,
	})

	reminders := services.NewReminderService(db, cfg.Location, b, cfg.ReminderPollInterval, cfg.ReminderRetryInterval)

	router := routes.SetupRouter(db, b, cfg.WebhookSecret)
	srv := &http.Server{
		Addr:    cfg.HTTPAddress,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	if cfg.WebhookURL == "" {
		g.Go(func() error {
			return b.Run(ctx)
		})
	} else {
		if err := b.RegisterWebhook(cfg.WebhookEndpoint()); err != nil {
			return err
		}
		log.Printf("webhook registered, updates arrive over HTTP")
	}

	g.Go(func() error {
		reminders.Run(ctx)
		return nil
	})

	g.Go(func() error {
		log.Printf("http server listening on %s", cfg.HTTPAddress)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Println("shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
