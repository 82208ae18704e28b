package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/diegoclair/athlete-weekly-bot/internal/config"
	"github.com/diegoclair/athlete-weekly-bot/internal/database"
	"github.com/diegoclair/athlete-weekly-bot/internal/discord"
	"github.com/diegoclair/athlete-weekly-bot/internal/domain"
	"github.com/diegoclair/athlete-weekly-bot/internal/domain/service"
	"github.com/diegoclair/athlete-weekly-bot/internal/handlers"
	"github.com/diegoclair/athlete-weekly-bot/internal/logger"
	"github.com/diegoclair/athlete-weekly-bot/internal/metrics"
	"github.com/diegoclair/athlete-weekly-bot/internal/storage"
	"github.com/diegoclair/athlete-weekly-bot/migrator/sqlite"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.LogConfig)

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		fatal("failed to initialize database", err)
	}
	defer db.Close()

	logger.Info("running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		fatal("failed to run migrations", err)
	}
	logger.Info("migrations completed successfully")

	m, err := metrics.New(prometheus.DefaultRegisterer)
	if err != nil {
		fatal("failed to register metrics", err)
	}

	discordClient, err := discord.New(cfg.DiscordToken)
	if err != nil {
		fatal("failed to create discord client", err)
	}

	stores := storage.New(cfg.DataDir, map[domain.ChannelKind]string{
		domain.ChannelAnnounce:  cfg.FallbackChannel,
		domain.ChannelSpotlight: cfg.FallbackChannel,
	})

	dm := database.NewInstance(db)

	svc := service.NewInstance(service.Options{
		DataManager:      dm,
		Discord:          discordClient,
		Stores:           stores,
		Metrics:          m,
		Location:         cfg.Location(),
		AssetsDir:        cfg.AssetsDir,
		MentionRoleID:    cfg.MentionRoleID,
		GeneralChannelID: cfg.GeneralChannel,
		QuizWindow:       cfg.QuizWindow,
		PresenceOverride: cfg.PresenceOverride,
	})

	services := handlers.Services{
		Announcement: svc.Announcement,
		Spotlight:    svc.Spotlight,
		Activity:     svc.Activity,
		Feedback:     svc.Feedback,
	}

	handler := handlers.New(discordClient, services, stores.Channels)
	discordClient.Session().AddHandler(handler.OnInteraction)
	discordClient.Session().AddHandler(handler.OnMessageCreate)

	if err := discordClient.Open(); err != nil {
		fatal("failed to open discord gateway", err)
	}
	defer discordClient.Close()

	registered, err := discordClient.RegisterCommands(cfg.GuildID)
	if err != nil {
		logger.Error("slash commands unavailable", "error", err)
	} else {
		logger.Info("slash commands registered", "count", len(registered), "guild_id", cfg.GuildID)
	}

	svc.Presence.Refresh()

	if err := svc.Scheduler.Start(); err != nil {
		fatal("failed to start scheduler", err)
	}
	defer svc.Scheduler.Stop()

	gin.SetMode(gin.ReleaseMode)
	admin := handlers.NewAdmin(dm, services, stores, cfg.AdminToken)
	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           admin.Router(prometheus.DefaultGatherer),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("http server starting", "addr", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", "error", err)
		}
	}()

	logger.Info("bot is running", "timezone", cfg.Location().String())

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	logger.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("http server shutdown failed", "error", err)
	}
}

func fatal(msg string, err error) {
	logger.Error(msg, "error", err)
	os.Exit(1)
}
