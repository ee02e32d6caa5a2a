package nitterimpl

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/cenkalti/backoff/v4"
	"github.com/orgball2608/nitter-relay-telegram-bot/internal/domain"
	apperrors "github.com/orgball2608/nitter-relay-telegram-bot/pkg/errors"
	"github.com/orgball2608/nitter-relay-telegram-bot/pkg/retry"
)

func (c *NitterImpl) FetchProfile(ctx context.Context, username string) ([]domain.Post, error) {
	pageURL := c.base.String() + "/" + username

	html, err := c.fetchPage(ctx, pageURL)
	if err != nil {
		return nil, apperrors.Wrap(err, fmt.Sprintf("fetch profile page %s", pageURL))
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, apperrors.Wrap(err, "parse profile page")
	}

	posts := extractPosts(doc, c.base)
	c.logger.Debug("Extracted posts from profile page", "username", username, "count", len(posts))
	return posts, nil
}

// fetchPage GETs pageURL, retrying on transport failures and server-side
// errors. Client-side error statuses fail immediately.
func (c *NitterImpl) fetchPage(ctx context.Context, pageURL string) (string, error) {
	var body string

	err := retry.Do(ctx, c.logger, "fetch "+pageURL, func() error {
		resp, err := c.http.R().SetContext(ctx).Get(pageURL)
		if err != nil {
			return err
		}
		if resp.StatusCode() >= 500 {
			return fmt.Errorf("server error: %s", resp.Status())
		}
		if resp.IsError() {
			return backoff.Permanent(fmt.Errorf("unexpected status: %s", resp.Status()))
		}
		body = resp.String()
		return nil
	}, c.retryCfg)

	return body, err
}
