package telegramimpl

import (
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/orgball2608/nitter-relay-telegram-bot/internal/telegram"
	"github.com/orgball2608/nitter-relay-telegram-bot/pkg/config"
	"github.com/orgball2608/nitter-relay-telegram-bot/pkg/logger"
	"go.uber.org/fx"
)

// uploadTimeout bounds the slowest operation, a multipart video upload.
const uploadTimeout = 120 * time.Second

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type TelegramImpl struct {
	TgBot  *tgbotapi.BotAPI
	Logger logger.Logger
	ChatID int64
}

func New(opts Opts) (*TelegramImpl, error) {
	httpClient := &http.Client{Timeout: uploadTimeout}

	tgBot, err := tgbotapi.NewBotAPIWithClient(opts.Config.Telegram.Token, tgbotapi.APIEndpoint, httpClient)
	if err != nil {
		opts.Logger.Error("Error creating bot", "Error", err)
		return nil, err
	}

	return &TelegramImpl{
		TgBot:  tgBot,
		Logger: opts.Logger.WithComponent("Telegram"),
		ChatID: opts.Config.Telegram.ChatID,
	}, nil
}

var _ telegram.Client = (*TelegramImpl)(nil)
