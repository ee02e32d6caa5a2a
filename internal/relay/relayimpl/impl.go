package relayimpl

import (
	"os"
	"time"

	"github.com/orgball2608/nitter-relay-telegram-bot/internal/cursor"
	"github.com/orgball2608/nitter-relay-telegram-bot/internal/media"
	"github.com/orgball2608/nitter-relay-telegram-bot/internal/nitter"
	"github.com/orgball2608/nitter-relay-telegram-bot/internal/ratelimit"
	"github.com/orgball2608/nitter-relay-telegram-bot/internal/relay"
	"github.com/orgball2608/nitter-relay-telegram-bot/internal/telegram"
	"github.com/orgball2608/nitter-relay-telegram-bot/pkg/config"
	apperrors "github.com/orgball2608/nitter-relay-telegram-bot/pkg/errors"
	"github.com/orgball2608/nitter-relay-telegram-bot/pkg/logger"
	"go.uber.org/fx"
)

// postSendInterval spaces out consecutive posts toward the endpoint.
const postSendInterval = time.Second

type Opts struct {
	fx.In

	Nitter   nitter.Client
	Telegram telegram.Client
	Media    media.Downloader
	Cursor   cursor.Store
	Logger   logger.Logger
	Config   *config.Config
}

type RelayImpl struct {
	Nitter   nitter.Client
	Telegram telegram.Client
	Media    media.Downloader
	Cursor   cursor.Store
	Logger   logger.Logger
	Config   *config.Config

	pacer   ratelimit.Pacer
	tempDir string
}

func New(opts Opts) (*RelayImpl, error) {
	tempDir := opts.Config.Media.TempDir
	if err := os.MkdirAll(tempDir, 0o755); err != nil {
		return nil, apperrors.Wrap(err, "create temp media directory")
	}

	return &RelayImpl{
		Nitter:   opts.Nitter,
		Telegram: opts.Telegram,
		Media:    opts.Media,
		Cursor:   opts.Cursor,
		Logger:   opts.Logger.WithComponent("Relay"),
		Config:   opts.Config,
		pacer:    ratelimit.NewIntervalPacer(postSendInterval),
		tempDir:  tempDir,
	}, nil
}

var _ relay.Client = (*RelayImpl)(nil)
