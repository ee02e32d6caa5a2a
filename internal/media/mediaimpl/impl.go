package mediaimpl

import (
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/orgball2608/nitter-relay-telegram-bot/internal/media"
	"github.com/orgball2608/nitter-relay-telegram-bot/pkg/config"
	"github.com/orgball2608/nitter-relay-telegram-bot/pkg/logger"
	"go.uber.org/fx"
)

const (
	probeTimeout    = 15 * time.Second
	downloadTimeout = 60 * time.Second

	// Slack past the configured ceiling before a stream is cut off.
	sizeSafetyMargin = 5 * 1024 * 1024
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type MediaImpl struct {
	probe    *resty.Client
	stream   *resty.Client
	maxBytes int64
	logger   logger.Logger
}

func New(opts Opts) *MediaImpl {
	return &MediaImpl{
		probe: resty.New().SetTimeout(probeTimeout),
		stream: resty.New().
			SetTimeout(downloadTimeout).
			SetDoNotParseResponse(true),
		maxBytes: opts.Config.Media.MaxDownloadBytes,
		logger:   opts.Logger.WithComponent("MediaDownloader"),
	}
}

var _ media.Downloader = (*MediaImpl)(nil)
