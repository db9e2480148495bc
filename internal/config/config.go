package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App         App
	Log         Log
	Backend     Backend
	Preferences Preferences
	Redis       Redis
	Clock       Clock
	HTTP        HTTP
	Bot         Bot
	Display     Display
}

type App struct {
	Name    string `env:"APP_NAME" envDefault:"pet_market"`
	Version string `env:"APP_VERSION" envDefault:"dev"`
}

type Log struct {
	Level   string `env:"LOG_LEVEL" envDefault:"info"`
	NoColor bool   `env:"LOG_NO_COLOR" envDefault:"false"`
	// LogFieldMaxLen caps dumped request/response bodies, 0 disables the cap.
	FieldMaxLen int `env:"LOG_FIELD_MAX_LEN" envDefault:"2048"`
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	return Parse()
}

func Parse() (Config, error) {
	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

func (c Config) Validate() error {
	switch c.Preferences.Backend {
	case PreferenceBackendFile, PreferenceBackendRedis:
	default:
		return fmt.Errorf("PREFERENCES_BACKEND: unknown backend %q", c.Preferences.Backend)
	}

	if c.Bot.Enabled() && c.Bot.ChatID == 0 {
		return fmt.Errorf("BOT_CHAT_ID is required when BOT_TOKEN is set")
	}

	return nil
}
