package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Order     OrderConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name    string
	Env     string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	URL         string
	MaxConns    int32
	SSLInsecure bool
}

type JWTConfig struct {
	Secret string
	// Admin sessions expire sooner than customer sessions.
	AdminExpiryHours    int
	CustomerExpiryHours int
}

type OrderConfig struct {
	// StrictTransitions enforces forward-only tracking status changes.
	// Off by default: the admin panel relies on free overwrite.
	StrictTransitions bool
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "bakerist")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("DB_SSL_INSECURE", false)
	viper.SetDefault("JWT_ADMIN_EXPIRY_HOURS", 24)
	viper.SetDefault("JWT_CUSTOMER_EXPIRY_HOURS", 168)
	viper.SetDefault("ORDER_STRICT_TRANSITIONS", false)
	viper.SetDefault("RATE_LIMIT_RPS", 10)
	viper.SetDefault("RATE_LIMIT_BURST", 20)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Env:     viper.GetString("APP_ENV"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			URL:         viper.GetString("DATABASE_URL"),
			MaxConns:    viper.GetInt32("DB_MAX_CONNS"),
			SSLInsecure: viper.GetBool("DB_SSL_INSECURE"),
		},
		JWT: JWTConfig{
			Secret:              viper.GetString("JWT_SECRET"),
			AdminExpiryHours:    viper.GetInt("JWT_ADMIN_EXPIRY_HOURS"),
			CustomerExpiryHours: viper.GetInt("JWT_CUSTOMER_EXPIRY_HOURS"),
		},
		Order: OrderConfig{
			StrictTransitions: viper.GetBool("ORDER_STRICT_TRANSITIONS"),
		},
		RateLimit: RateLimitConfig{
			RPS:   viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst: viper.GetInt("RATE_LIMIT_BURST"),
		},
	}

	return config, nil
}
