package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the application's configuration values.
// Tags like `envconfig:"CATALOG_PATH"` specify the environment variable name.
// `default:""` provides a default value if the env var is not set.
// `required:"true"` makes an environment variable mandatory.
type Config struct {
	AppEnv   string `envconfig:"APP_ENV" default:"development"` // e.g., development, staging, production
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`      // e.g., debug, info, warn, error
	Catalog  CatalogConfig
	Profile  ProfileConfig
	Order    OrderConfig
}

// CatalogConfig locates the menu definition on disk.
type CatalogConfig struct {
	Path string `envconfig:"CATALOG_PATH" default:"menu.json"`
}

// ProfileConfig holds the customer-profile storage locations.
type ProfileConfig struct {
	SQLitePath string `envconfig:"PROFILE_SQLITE_PATH" default:"profile.db"`
	CookiePath string `envconfig:"PROFILE_COOKIE_PATH" default:"profile-cookies.json"`
}

// OrderConfig holds order hand-off and checkout settings.
type OrderConfig struct {
	WhatsAppBaseURL string   `envconfig:"ORDER_WHATSAPP_BASE_URL" default:"https://wa.me"`
	WhatsAppPhone   string   `envconfig:"ORDER_WHATSAPP_PHONE" required:"true"`
	Header          string   `envconfig:"ORDER_HEADER" default:"NUEVO PEDIDO - EL GALLINERAL"`
	Branches        []string `envconfig:"ORDER_BRANCHES" default:"Crespo,Manga,Los Alpes"`
	TipPresets      []int    `envconfig:"ORDER_TIP_PRESETS" default:"0,10,15"`
}

// Load initializes the configuration from environment variables.
// It should be called once during application startup.
func Load() (*Config, error) {
	// A missing .env file is fine: in production the variables come
	// from the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Println("INFO: no .env file found, reading configuration from environment")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process configuration: %w", err)
	}

	log.Printf("INFO: configuration loaded for APP_ENV: %s", cfg.AppEnv)
	return &cfg, nil
}
