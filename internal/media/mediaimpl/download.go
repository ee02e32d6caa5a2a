package mediaimpl

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"

	apperrors "github.com/orgball2608/nitter-relay-telegram-bot/pkg/errors"

	"github.com/orgball2608/nitter-relay-telegram-bot/internal/media"
)

func (d *MediaImpl) ProbeSize(ctx context.Context, mediaURL string) (int64, error) {
	resp, err := d.probe.R().SetContext(ctx).Head(mediaURL)
	if err != nil {
		return 0, apperrors.Wrap(err, "probe media size")
	}
	if resp.StatusCode() != http.StatusOK {
		return 0, fmt.Errorf("probe returned status %s", resp.Status())
	}

	length := resp.Header().Get("Content-Length")
	if length == "" {
		return 0, apperrors.New("no content length reported")
	}

	size, err := strconv.ParseInt(length, 10, 64)
	if err != nil {
		return 0, apperrors.Wrap(err, "parse content length")
	}
	return size, nil
}

func (d *MediaImpl) Download(ctx context.Context, mediaURL, dest string) error {
	resp, err := d.stream.R().SetContext(ctx).Get(mediaURL)
	if err != nil {
		return apperrors.Wrap(err, "request media")
	}
	body := resp.RawBody()
	defer body.Close()

	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("download returned status %s", resp.Status())
	}

	f, err := os.Create(dest)
	if err != nil {
		return apperrors.Wrap(err, "create media file")
	}

	limit := d.maxBytes + sizeSafetyMargin
	written, err := io.Copy(f, io.LimitReader(body, limit+1))
	closeErr := f.Close()

	switch {
	case err != nil:
		os.Remove(dest)
		return apperrors.Wrap(err, "stream media")
	case written > limit:
		os.Remove(dest)
		d.logger.Info("Download exceeded size limit, aborted", "url", mediaURL, "bytes", written)
		return media.ErrTooLarge
	case closeErr != nil:
		os.Remove(dest)
		return apperrors.Wrap(closeErr, "flush media file")
	}

	return nil
}
