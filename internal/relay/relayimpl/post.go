package relayimpl

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/orgball2608/nitter-relay-telegram-bot/internal/domain"
	"github.com/orgball2608/nitter-relay-telegram-bot/pkg/formatter"
)

var (
	imageExtensions = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".webp": true}
	videoExtensions = map[string]bool{".mp4": true, ".mov": true, ".webm": true, ".gif": true}
)

// relayPost delivers one post to the destination chat: the caption as plain
// text when the post has no media, otherwise each media item in order with
// size-limit and download-failure fallbacks. Every failure path degrades to
// a user-visible notice or a log entry; none aborts the post.
func (r *RelayImpl) relayPost(ctx context.Context, username string, post domain.Post) {
	caption := formatter.BuildCaption(username, post.URL, post.Text)

	if len(post.Media) == 0 {
		if err := r.Telegram.SendMessage(caption); err != nil {
			r.Logger.Error("Failed to send text post", "username", username, "postID", post.ID, "error", err)
		}
		return
	}

	sentAny := false
	for i, mediaURL := range post.Media {
		if r.relayMediaItem(ctx, username, post, i, mediaURL, caption, sentAny) {
			sentAny = true
		}
	}

	if !sentAny {
		if err := r.Telegram.SendMessage(caption + "\n\n(All media failed to send)"); err != nil {
			r.Logger.Error("Failed to send fallback notice", "username", username, "postID", post.ID, "error", err)
		}
	}
}

// relayMediaItem handles one media URL and reports whether anything was
// delivered for it. captionSent suppresses the caption on items after the
// first successful one.
func (r *RelayImpl) relayMediaItem(ctx context.Context, username string, post domain.Post, index int, mediaURL, caption string, captionSent bool) bool {
	if size, err := r.Media.ProbeSize(ctx, mediaURL); err == nil && size > r.Config.Media.MaxDownloadBytes {
		r.Logger.Info("Media too big, sending link instead", "url", mediaURL, "size", size)
		if err := r.Telegram.SendMessage(fmt.Sprintf("%s\n\nMedia too large to upload: %s", caption, mediaURL)); err != nil {
			r.Logger.Error("Failed to send size notice", "url", mediaURL, "error", err)
		}
		// The notice stands in for the item either way.
		return true
	}

	ext := mediaExt(mediaURL)
	dest := filepath.Join(r.tempDir, fmt.Sprintf("%s_%s_%d%s", username, post.ID, index, ext))

	if err := r.Media.Download(ctx, mediaURL, dest); err != nil {
		r.Logger.Warn("Failed to download media", "url", mediaURL, "error", err)
		if err := r.Telegram.SendMessage(fmt.Sprintf("%s\n\n(Couldn't download media: %s)", caption, mediaURL)); err != nil {
			r.Logger.Error("Failed to send download notice", "url", mediaURL, "error", err)
		}
		return false
	}

	itemCaption := caption
	if captionSent {
		itemCaption = ""
	}

	var sendErr error
	switch {
	case imageExtensions[ext]:
		sendErr = r.Telegram.SendPhoto(dest, itemCaption)
	case videoExtensions[ext]:
		sendErr = r.Telegram.SendVideo(dest, itemCaption)
	default:
		sendErr = r.Telegram.SendMessage(fmt.Sprintf("%s\n\nMedia: %s", caption, mediaURL))
	}

	// Best-effort cleanup regardless of send outcome.
	os.Remove(dest)

	if sendErr != nil {
		r.Logger.Error("Failed to send media", "url", mediaURL, "error", sendErr)
		return false
	}
	return true
}

// mediaExt returns the lowercased extension of the URL's path, ".bin" when
// it has none.
func mediaExt(mediaURL string) string {
	u, err := url.Parse(mediaURL)
	if err != nil {
		return ".bin"
	}
	ext := strings.ToLower(path.Ext(u.Path))
	if ext == "" {
		return ".bin"
	}
	return ext
}
