package relayimpl

import (
	"context"
	"fmt"

	"github.com/orgball2608/nitter-relay-telegram-bot/internal/accounts"
	"github.com/orgball2608/nitter-relay-telegram-bot/internal/delta"
	apperrors "github.com/orgball2608/nitter-relay-telegram-bot/pkg/errors"
)

func (r *RelayImpl) Run(ctx context.Context) error {
	usernames, err := accounts.Read(r.Config.Accounts.FilePath)
	if err != nil {
		r.Logger.Error("Accounts file missing or unreadable", "path", r.Config.Accounts.FilePath, "error", err)
		return err
	}
	if len(usernames) == 0 {
		r.Logger.Error("No accounts configured, nothing to do", "path", r.Config.Accounts.FilePath)
		return nil
	}

	r.Logger.Info("Starting relay run", "accounts", len(usernames))

	for _, username := range usernames {
		if err := r.processAccountSafe(ctx, username); err != nil {
			// Failure boundary: one broken account never aborts the rest.
			r.Logger.Error("Failed to process account", "username", username, "error", err)
		}
	}

	if err := r.Cursor.Save(); err != nil {
		return apperrors.Wrap(err, "save cursor state")
	}

	r.Logger.Info("Relay run complete")
	return nil
}

func (r *RelayImpl) processAccountSafe(ctx context.Context, username string) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic while processing %s: %v", username, rec)
		}
	}()
	return r.ProcessAccount(ctx, username)
}

func (r *RelayImpl) ProcessAccount(ctx context.Context, username string) error {
	r.Logger.Info("Checking account", "username", username)

	posts, err := r.Nitter.FetchProfile(ctx, username)
	if err != nil {
		// Treated as "no update this run".
		return apperrors.Wrap(err, "fetch profile")
	}
	if len(posts) == 0 {
		r.Logger.Info("No posts parsed", "username", username)
		return nil
	}

	lastSeen, _ := r.Cursor.Get(username)
	fresh := delta.SelectNew(posts, lastSeen)
	if len(fresh) == 0 {
		r.Logger.Info("No new posts", "username", username)
		return nil
	}

	r.Logger.Info("Relaying new posts", "username", username, "count", len(fresh))

	for _, post := range fresh {
		r.relayPost(ctx, username, post)

		// A post is never retried once processed, even when every send
		// attempt failed: forward progress beats redelivery of a
		// permanently broken post.
		r.Cursor.Advance(username, post.ID)

		if err := r.pacer.Wait(ctx); err != nil {
			return apperrors.Wrap(err, "pacing interrupted")
		}
	}

	return nil
}
