package media

import (
	"context"
	"errors"
)

// ErrTooLarge is returned when a download exceeds the configured byte
// ceiling mid-stream.
var ErrTooLarge = errors.New("media exceeds maximum download size")

// Downloader probes and fetches media resources from the mirror.
type Downloader interface {
	// ProbeSize reports the resource's Content-Length via a HEAD request.
	// An error means the size is unknown, not that the resource is gone.
	ProbeSize(ctx context.Context, mediaURL string) (int64, error)

	// Download streams the resource into dest. The download is aborted with
	// ErrTooLarge once it exceeds the configured maximum plus a safety
	// margin, guarding against servers that lie about or omit
	// Content-Length. No partial file is left behind on failure.
	Download(ctx context.Context, mediaURL, dest string) error
}
