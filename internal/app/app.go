package app

import (
	"context"

	"github.com/orgball2608/nitter-relay-telegram-bot/internal/cursor"
	"github.com/orgball2608/nitter-relay-telegram-bot/internal/media"
	"github.com/orgball2608/nitter-relay-telegram-bot/internal/media/mediaimpl"
	"github.com/orgball2608/nitter-relay-telegram-bot/internal/nitter"
	"github.com/orgball2608/nitter-relay-telegram-bot/internal/nitter/nitterimpl"
	"github.com/orgball2608/nitter-relay-telegram-bot/internal/relay"
	"github.com/orgball2608/nitter-relay-telegram-bot/internal/relay/relayimpl"
	"github.com/orgball2608/nitter-relay-telegram-bot/internal/telegram"
	"github.com/orgball2608/nitter-relay-telegram-bot/internal/telegram/telegramimpl"
	"github.com/orgball2608/nitter-relay-telegram-bot/pkg/config"
	"github.com/orgball2608/nitter-relay-telegram-bot/pkg/logger"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
	),
	fx.Provide(
		fx.Annotate(
			telegramimpl.New,
			fx.As(new(telegram.Client)),
		), fx.Annotate(
			nitterimpl.New,
			fx.As(new(nitter.Client)),
		), fx.Annotate(
			mediaimpl.New,
			fx.As(new(media.Downloader)),
		),
		fx.Annotate(
			relayimpl.New,
			fx.As(new(relay.Client)),
		),
	),
	cursor.Module,
	fx.Invoke(run),
)

// run performs exactly one pass over all accounts and then shuts the
// process down; scheduling repeated runs belongs to the external invoker.
func run(lc fx.Lifecycle, shutdowner fx.Shutdowner, log logger.Logger, relayClient relay.Client) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				if err := relayClient.Run(context.Background()); err != nil {
					log.Error("Relay run failed", "error", err)
				}
				if err := shutdowner.Shutdown(); err != nil {
					log.Error("Failed to shut down", "error", err)
				}
			}()
			return nil
		},
	})
}
