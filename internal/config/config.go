package config

import (
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Port       string
	DBURL      string
	LogLevel   string
	DBMaxConns int

	TelegramToken    string
	AdminTelegramIDs []int64
	BotWebhookURL    string
	GameURL          string
	TONWalletAddress string

	StartingBalance decimal.Decimal
}

func LoadConfig() (*Config, error) {
	_ = godotenv.Load("config.env")

	maxConns := 8 // default
	if v, err := strconv.Atoi(os.Getenv("DB_MAX_CONNS")); err == nil && v > 0 {
		maxConns = v
	}

	startingBalance := decimal.NewFromInt(100)
	if s := os.Getenv("STARTING_BALANCE"); s != "" {
		if v, err := decimal.NewFromString(s); err == nil {
			startingBalance = v
		}
	}

	return &Config{
		Port:             getenv("APP_PORT", "8080"),
		DBURL:            os.Getenv("DATABASE_URL"),
		LogLevel:         os.Getenv("LOG_LEVEL"),
		DBMaxConns:       maxConns,
		TelegramToken:    os.Getenv("TELEGRAM_BOT_TOKEN"),
		AdminTelegramIDs: parseAdminIDs(os.Getenv("ADMIN_TELEGRAM_ID")),
		BotWebhookURL:    os.Getenv("BOT_WEBHOOK_URL"),
		GameURL:          getenv("GAME_URL", "https://coin-toss-betting-ga.poehali.app"),
		TONWalletAddress: os.Getenv("TON_WALLET_ADDRESS"),
		StartingBalance:  startingBalance,
	}, nil
}

// IsAdmin проверяет, входит ли telegram id в список администраторов.
func (c *Config) IsAdmin(telegramID int64) bool {
	return slices.Contains(c.AdminTelegramIDs, telegramID)
}

// ADMIN_TELEGRAM_ID принимает список через запятую.
func parseAdminIDs(raw string) []int64 {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if id, err := strconv.ParseInt(part, 10, 64); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
