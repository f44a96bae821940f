// Package main runs the buy-alert webhook service: an HTTP listener that
// receives swap-event notifications from the indexing provider, detects
// qualifying purchases of the tracked token and forwards formatted alerts
// to the notification channel.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"solana-buy-alerts/internal/alert"
	"solana-buy-alerts/internal/config"
	"solana-buy-alerts/internal/detect"
	"solana-buy-alerts/internal/notify"
	"solana-buy-alerts/internal/observability"
	"solana-buy-alerts/internal/pipeline"
	"solana-buy-alerts/internal/price"
	"solana-buy-alerts/internal/webhook"
)

func main() {
	logger := log.New(os.Stdout, "[server] ", log.LstdFlags)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("config: %v", err)
	}

	metrics := observability.NewMetrics("buy_alerts")

	composer, err := alert.NewComposer(cfg.TokenSymbol, cfg.LargeTradeSOL, cfg.DisplayTimezone)
	if err != nil {
		logger.Fatalf("composer: %v", err)
	}

	var prices price.Provider = price.Disabled{}
	if cfg.BirdeyeAPIKey != "" {
		prices = price.NewBirdeye(cfg.BirdeyeBaseURL, cfg.BirdeyeAPIKey, price.WithTimeout(cfg.HTTPTimeout))
	} else {
		logger.Println("BIRDEYE_API_KEY not set, alerts will omit USD valuation")
	}

	var notifier notify.Notifier
	if cfg.TelegramBotToken != "" && cfg.TelegramChatID != "" {
		notifier = notify.NewTelegram(cfg.TelegramBotToken, cfg.TelegramChatID)
	} else {
		logger.Println("Telegram credentials not set, alerts go to stdout")
		notifier = notify.NewConsole(log.New(os.Stdout, "[alert] ", log.LstdFlags))
	}

	media := mediaAssets(cfg, logger)

	processor := pipeline.New(
		detect.NewDetector(cfg.TokenMint, cfg.TokenSymbol, cfg.PoolAddress),
		detect.NewResolver(),
		detect.Policy{MinUSDC: cfg.MinUSDCPayment, MinSOL: cfg.MinSOLPayment},
		composer,
		prices,
		notifier,
		cfg.TokenMint,
		media,
		metrics,
		log.New(os.Stdout, "[pipeline] ", log.LstdFlags),
	)

	handler := webhook.NewHandler(processor, cfg.AuthToken, metrics, log.New(os.Stdout, "[webhook] ", log.LstdFlags))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler.Routes(),
	}

	go func() {
		logger.Printf("listening on %s (token %s, pool %q)", srv.Addr, cfg.TokenMint, cfg.PoolAddress)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Printf("received signal %v, shutting down", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("shutdown: %v", err)
	}
	logger.Println("shutdown complete")
}

// mediaAssets resolves configured media files, dropping any that do not
// exist so alerts degrade to text instead of failing at send time.
func mediaAssets(cfg *config.Config, logger *log.Logger) map[alert.MediaKey]string {
	media := make(map[alert.MediaKey]string)
	for key, name := range map[alert.MediaKey]string{
		alert.MediaStandard: cfg.MediaStandard,
		alert.MediaLarge:    cfg.MediaLarge,
	} {
		if name == "" {
			continue
		}
		path := filepath.Join(cfg.MediaDir, name)
		if _, err := os.Stat(path); err != nil {
			logger.Printf("media asset %s not found, %s alerts will be text-only", path, key)
			continue
		}
		media[key] = path
	}
	return media
}
