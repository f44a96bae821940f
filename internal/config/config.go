// Package config loads the service configuration from environment
// variables, with an optional .env file for local runs.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"solana-buy-alerts/internal/solkey"
)

// Config holds all configuration for the application. It is passed
// explicitly into each pipeline stage; nothing reads ambient environment
// state past startup.
type Config struct {
	Port string

	// Tracked token.
	TokenMint   string
	TokenSymbol string
	PoolAddress string // optional; known liquidity pool, never a buyer

	// Inbound webhook.
	AuthToken string // optional shared secret; empty disables the check

	// Alert policy. Thresholds are in the payment's own unit.
	MinUSDCPayment float64
	MinSOLPayment  float64
	LargeTradeSOL  float64 // native payment above this selects the large-trade media/title

	// Collaborators.
	BirdeyeAPIKey    string
	BirdeyeBaseURL   string
	TelegramBotToken string
	TelegramChatID   string

	// Media assets sent with alerts.
	MediaDir      string
	MediaStandard string
	MediaLarge    string

	DisplayTimezone string
	HTTPTimeout     time.Duration
}

// Default threshold values, taken over from the service this replaces.
const (
	DefaultMinUSDCPayment = 10
	DefaultMinSOLPayment  = 0.00001
	DefaultLargeTradeSOL  = 28
)

// Load reads configuration from the environment. A missing .env file is
// not an error; variables may be set externally.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:             getEnv("PORT", "3000"),
		TokenMint:        os.Getenv("TOKEN_MINT"),
		TokenSymbol:      getEnv("TOKEN_SYMBOL", "MOON"),
		PoolAddress:      os.Getenv("POOL_ADDRESS"),
		AuthToken:        os.Getenv("WEBHOOK_AUTH_TOKEN"),
		MinUSDCPayment:   getEnvAsFloat("MIN_USDC_PAYMENT", DefaultMinUSDCPayment),
		MinSOLPayment:    getEnvAsFloat("MIN_SOL_PAYMENT", DefaultMinSOLPayment),
		LargeTradeSOL:    getEnvAsFloat("LARGE_TRADE_SOL", DefaultLargeTradeSOL),
		BirdeyeAPIKey:    os.Getenv("BIRDEYE_API_KEY"),
		BirdeyeBaseURL:   getEnv("BIRDEYE_BASE_URL", "https://public-api.birdeye.so"),
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:   os.Getenv("TELEGRAM_CHAT_ID"),
		MediaDir:         getEnv("MEDIA_DIR", "images"),
		MediaStandard:    getEnv("MEDIA_STANDARD", "whale.jpg"),
		MediaLarge:       getEnv("MEDIA_LARGE", "big_whale.jpg"),
		DisplayTimezone:  getEnv("DISPLAY_TIMEZONE", "Asia/Seoul"),
		HTTPTimeout:      time.Duration(getEnvAsInt("HTTP_TIMEOUT", 5)) * time.Second,
	}

	if cfg.TokenMint == "" {
		return nil, fmt.Errorf("TOKEN_MINT is required")
	}
	if err := solkey.Validate(cfg.TokenMint); err != nil {
		return nil, fmt.Errorf("TOKEN_MINT: %w", err)
	}
	if cfg.PoolAddress != "" {
		if err := solkey.Validate(cfg.PoolAddress); err != nil {
			return nil, fmt.Errorf("POOL_ADDRESS: %w", err)
		}
		// Pool accounts are program derived and lie off the ed25519 curve.
		// An on-curve pool address is almost certainly a wallet key pasted
		// into the wrong variable.
		if solkey.IsOnCurve(cfg.PoolAddress) {
			log.Printf("POOL_ADDRESS %s is an on-curve wallet key, not a program-derived pool account; check the configured address", cfg.PoolAddress)
		}
	}
	if cfg.MinUSDCPayment < 0 || cfg.MinSOLPayment < 0 || cfg.LargeTradeSOL < 0 {
		return nil, fmt.Errorf("thresholds must be non-negative")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			return parsed
		}
	}
	return fallback
}
