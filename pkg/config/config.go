package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	SQLitePath   string
	ShopName     string

	// Advice generator settings. The external call is optional: with no URL
	// configured the advisor always serves the static fallback.
	AdviceAPIURL    string
	AdviceAPIKey    string
	AdviceTimeout   time.Duration
	AdviceRateLimit string // ulule/limiter format, e.g. "10-M"
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("SQLITE_PATH", "data/ledger.db")
	viper.SetDefault("SHOP_NAME", "")
	viper.SetDefault("ADVICE_API_URL", "")
	viper.SetDefault("ADVICE_API_KEY", "")
	viper.SetDefault("ADVICE_TIMEOUT", "8s")
	viper.SetDefault("ADVICE_RATE_LIMIT", "10-M")

	viper.AutomaticEnv()

	cfg := &Config{}
	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.SQLitePath = viper.GetString("SQLITE_PATH")
	cfg.ShopName = viper.GetString("SHOP_NAME")
	cfg.AdviceAPIURL = viper.GetString("ADVICE_API_URL")
	cfg.AdviceAPIKey = viper.GetString("ADVICE_API_KEY")
	cfg.AdviceRateLimit = viper.GetString("ADVICE_RATE_LIMIT")

	adviceTimeoutStr := viper.GetString("ADVICE_TIMEOUT")
	adviceTimeout, err := time.ParseDuration(adviceTimeoutStr)
	if err != nil {
		adviceTimeout = 8 * time.Second
		log.Printf("Warning: Invalid value for ADVICE_TIMEOUT ('%s'). Defaulting to %s.\n", adviceTimeoutStr, adviceTimeout)
	}
	cfg.AdviceTimeout = adviceTimeout

	if cfg.AdviceAPIURL == "" {
		log.Println("Warning: ADVICE_API_URL not set. Business advice will use the static fallback.")
	}

	return cfg, nil
}
