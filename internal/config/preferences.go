package config

import "time"

const (
	PreferenceBackendFile  = "file"
	PreferenceBackendRedis = "redis"
)

type Preferences struct {
	Backend  string        `env:"PREFERENCES_BACKEND" envDefault:"file"`
	FilePath string        `env:"PREFERENCES_FILE" envDefault:".pet_market/preferences.json"`
	TTL      time.Duration `env:"PREFERENCES_TTL" envDefault:"720h"`
}

type Redis struct {
	Address            string `env:"REDIS_ADDRESS" envDefault:"127.0.0.1:6379"`
	Username           string `env:"REDIS_USERNAME"`
	Password           string `env:"REDIS_PASSWORD" json:"-"`
	DatabaseNumber     int    `env:"REDIS_DB" envDefault:"0"`
	PoolSize           int    `env:"REDIS_POOL_SIZE" envDefault:"4"`
	MinIdleConnections int    `env:"REDIS_MIN_IDLE_CONNECTIONS" envDefault:"1"`
	MaxIdleConnections int    `env:"REDIS_MAX_IDLE_CONNECTIONS" envDefault:"2"`
	KeyPrefix          string `env:"REDIS_KEY_PREFIX" envDefault:"pet_market:"`
}
