package config

import "time"

type Backend struct {
	BaseURL     string        `env:"BACKEND_URL" envDefault:"http://127.0.0.1:5000"`
	AnalyzePath string        `env:"BACKEND_ANALYZE_PATH" envDefault:"/analyze"`
	SearchPath  string        `env:"BACKEND_SEARCH_PATH" envDefault:"/search"`
	StatusPath  string        `env:"BACKEND_STATUS_PATH" envDefault:"/test_timer"`
	Timeout     time.Duration `env:"BACKEND_TIMEOUT" envDefault:"2m"`
	// TimeZone is applied to timestamps the backend sends without a zone.
	TimeZone string `env:"BACKEND_TIME_ZONE" envDefault:"Local"`
}

type Clock struct {
	CountingInterval time.Duration `env:"CLOCK_COUNTING_INTERVAL" envDefault:"1s"`
	IdleInterval     time.Duration `env:"CLOCK_IDLE_INTERVAL" envDefault:"5s"`
}

type Display struct {
	AlertThresholdPercent float64 `env:"ALERT_THRESHOLD_PERCENT" envDefault:"5"`
	// LevelLabelOverrides is "Name=Low/High;Name=Low/High".
	LevelLabelOverrides string `env:"LEVEL_LABEL_OVERRIDES"`
}
