package nitterimpl

import (
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/orgball2608/nitter-relay-telegram-bot/internal/nitter"
	"github.com/orgball2608/nitter-relay-telegram-bot/pkg/config"
	apperrors "github.com/orgball2608/nitter-relay-telegram-bot/pkg/errors"
	"github.com/orgball2608/nitter-relay-telegram-bot/pkg/logger"
	"github.com/orgball2608/nitter-relay-telegram-bot/pkg/retry"
	"go.uber.org/fx"
)

const (
	fetchTimeout = 20 * time.Second
	userAgent    = "nitter-relay-bot/1.0"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type NitterImpl struct {
	http     *resty.Client
	base     *url.URL
	logger   logger.Logger
	retryCfg retry.Config
}

func New(opts Opts) (*NitterImpl, error) {
	base, err := url.Parse(opts.Config.Nitter.BaseURL)
	if err != nil {
		return nil, apperrors.Wrap(err, "parse mirror base URL")
	}

	httpClient := resty.New().
		SetTimeout(fetchTimeout).
		SetHeader("User-Agent", userAgent)

	return &NitterImpl{
		http:     httpClient,
		base:     base,
		logger:   opts.Logger.WithComponent("Nitter"),
		retryCfg: retry.DefaultConfig(),
	}, nil
}

var _ nitter.Client = (*NitterImpl)(nil)
