package config

import "time"

type HTTP struct {
	ListenAddress        string        `env:"HTTP_LISTEN_ADDRESS" envDefault:"127.0.0.1:8080"`
	ProbeListenAddress   string        `env:"PROBE_LISTEN_ADDRESS" envDefault:"127.0.0.1:8081"`
	MetricsListenAddress string        `env:"METRICS_LISTEN_ADDRESS" envDefault:"127.0.0.1:9090"`
	ReadHeaderTimeout    time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" envDefault:"5s"`
}

type Bot struct {
	Token   string `env:"BOT_TOKEN" json:"-"`
	ChatID  int64  `env:"BOT_CHAT_ID"`
	AdminID int64  `env:"BOT_ADMIN_ID"`
}

// Enabled reports whether alerts and bot commands should run.
func (b Bot) Enabled() bool {
	return b.Token != ""
}
