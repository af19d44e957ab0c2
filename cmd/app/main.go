package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"telegram-blackout-bot/internal/config"
	tele "telegram-blackout-bot/internal/infra/adapters/telegram"
	"telegram-blackout-bot/internal/infra/adapters/yasno"
	httpapi "telegram-blackout-bot/internal/infra/http"
	"telegram-blackout-bot/internal/infra/i18n"
	"telegram-blackout-bot/internal/infra/logging"
	"telegram-blackout-bot/internal/infra/metrics"
	red "telegram-blackout-bot/internal/infra/redis"
	"telegram-blackout-bot/internal/usecase"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ---- CLI flags ----
	cfgPath := flag.String("config", "config.yaml", "path to YAML config file")
	devMode := flag.Bool("dev", false, "development mode (console logging)")
	flag.Parse()

	cfg, err := config.LoadConfig(*cfgPath, *devMode)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.Log, cfg.Runtime.Dev)
	metrics.MustRegister()

	// ---- i18n ----
	tr, err := i18n.NewTranslator(i18n.LocalesFS, cfg.Language)
	if err != nil {
		logger.Fatal().Err(err).Str("language", cfg.Language).Msg("translator")
	}

	// ---- Redis (optional, rate limiting only) ----
	var rateLimiter tele.RateLimiter
	if cfg.Redis.URL != "" {
		redisClient, err := red.NewClient(ctx, &cfg.Redis)
		if err != nil {
			logger.Fatal().Err(err).Msg("redis")
		}
		defer redisClient.Close()
		rateLimiter = red.NewRateLimiter(redisClient)
	} else {
		logger.Info().Msg("redis not configured, rate limiting disabled")
	}

	// ---- Provider + navigation ----
	schedules, err := yasno.NewClient(cfg.Yasno.BaseURL, cfg.Yasno.Timeout, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("yasno client")
	}
	nav, err := usecase.NewNavigationUC(schedules, tr, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("navigation usecase")
	}

	// ---- Telegram ----
	bot, err := tele.NewRealBotAdapter(cfg, nav, tr, rateLimiter, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("telegram bot")
	}

	// ---- HTTP (webhook + health + metrics) ----
	srv := httpapi.NewServer(cfg, bot, logger)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server")
		}
	}()

	logger.Info().Str("mode", cfg.Bot.Mode).Int("workers", cfg.Bot.Workers).Msg("bot starting")
	if err := bot.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error().Err(err).Msg("bot stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("http shutdown")
	}
	logger.Info().Msg("bye")
}
