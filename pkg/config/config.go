package config

import (
	"log"
	"strings"
	"sync"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		SentryUrl string `env:"SENTRY_URL"`
	}
	Telegram struct {
		Token  string `env:"TELEGRAM_BOT_TOKEN" env-required:"true"`
		ChatID int64  `env:"TELEGRAM_CHAT_ID" env-required:"true"`
	}
	Nitter struct {
		BaseURL string `env:"NITTER_BASE" env-default:"https://nitter.net"`
	}
	Accounts struct {
		FilePath string `env:"ACCOUNTS_FILE" env-default:"accounts.txt"`
	}
	State struct {
		FilePath string `env:"STATE_FILE" env-default:"state.json"`
	}
	Media struct {
		MaxDownloadBytes int64  `env:"MAX_DOWNLOAD_BYTES" env-default:"50331648"`
		TempDir          string `env:"TEMP_DIR" env-default:"tmp_media"`
	}
}

var (
	once sync.Once
	cfg  *Config
)

func New() (*Config, error) {
	once.Do(func() {
		cfg = &Config{}
		if err := cleanenv.ReadEnv(cfg); err != nil {
			help, _ := cleanenv.GetDescription(cfg, nil)
			log.Fatalf("Failed to read configuration: %v\n%v", err, help)
		}
		cfg.Nitter.BaseURL = strings.TrimRight(cfg.Nitter.BaseURL, "/")
	})
	return cfg, nil
}
