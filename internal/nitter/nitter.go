package nitter

import (
	"context"

	"github.com/orgball2608/nitter-relay-telegram-bot/internal/domain"
)

// Client reads profile pages from the mirror.
type Client interface {
	// FetchProfile retrieves the profile page for username and extracts the
	// posts currently visible on it, unordered. The mirror's markup is a
	// best-effort contract: malformed timeline blocks are skipped, a failed
	// fetch is an error the caller treats as "no update this run".
	FetchProfile(ctx context.Context, username string) ([]domain.Post, error)
}
