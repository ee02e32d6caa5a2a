package nitterimpl

import (
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/orgball2608/nitter-relay-telegram-bot/internal/domain"
	"github.com/stretchr/testify/require"
)

func parseTimeline(t *testing.T, html string) []domain.Post {
	t.Helper()
	base, err := url.Parse("https://nitter.example")
	require.NoError(t, err)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)

	return extractPosts(doc, base)
}

func TestExtractPosts(t *testing.T) {
	t.Run("FullTimelineItem", func(t *testing.T) {
		html := `
		<div class="timeline-item">
			<a href="/alice"></a>
			<a href="/alice/status/101?cursor=abc#m"></a>
			<div class="tweet-content">hello
				world</div>
			<img data-src="/pic/media%2Fabc.jpg" src="/pic/eager.jpg">
		</div>`

		posts := parseTimeline(t, html)
		require.Len(t, posts, 1)
		require.Equal(t, "101", posts[0].ID)
		require.Equal(t, "https://nitter.example/alice/status/101?cursor=abc#m", posts[0].URL)
		require.Equal(t, "hello world", posts[0].Text)
		// data-src wins over the eager src
		require.Equal(t, []string{"https://nitter.example/pic/media%2Fabc.jpg"}, posts[0].Media)
	})

	t.Run("BlockWithoutStatusLinkIsSkipped", func(t *testing.T) {
		html := `
		<div class="timeline-item">
			<a href="/settings"></a>
			<div class="tweet-content">sponsored</div>
		</div>
		<div class="timeline-item">
			<a href="/alice/status/102"></a>
		</div>`

		posts := parseTimeline(t, html)
		require.Len(t, posts, 1)
		require.Equal(t, "102", posts[0].ID)
	})

	t.Run("NonNumericStatusIDIsSkipped", func(t *testing.T) {
		html := `<div class="timeline-item"><a href="/alice/status/abc123"></a></div>`

		posts := parseTimeline(t, html)
		require.Empty(t, posts)
	})

	t.Run("LinkWithoutContentOrMediaStillYieldsPost", func(t *testing.T) {
		html := `<div class="timeline-item"><a href="/alice/status/103"></a></div>`

		posts := parseTimeline(t, html)
		require.Len(t, posts, 1)
		require.Equal(t, "103", posts[0].ID)
		require.Equal(t, "", posts[0].Text)
		require.Empty(t, posts[0].Media)
	})

	t.Run("VideoDirectAndNestedSources", func(t *testing.T) {
		html := `
		<div class="timeline-item">
			<a href="/alice/status/104"></a>
			<video src="/video/a.mp4">
				<source src="/video/b.webm">
				<source src="/video/c.mp4">
			</video>
		</div>`

		posts := parseTimeline(t, html)
		require.Len(t, posts, 1)
		require.Equal(t, []string{
			"https://nitter.example/video/a.mp4",
			"https://nitter.example/video/b.webm",
			"https://nitter.example/video/c.mp4",
		}, posts[0].Media)
	})

	t.Run("DuplicateMediaRemovedFirstSeenOrder", func(t *testing.T) {
		html := `
		<div class="timeline-item">
			<a href="/alice/status/105"></a>
			<img src="/pic/one.jpg">
			<img src="/pic/two.jpg">
			<img src="/pic/one.jpg">
		</div>`

		posts := parseTimeline(t, html)
		require.Len(t, posts, 1)
		require.Equal(t, []string{
			"https://nitter.example/pic/one.jpg",
			"https://nitter.example/pic/two.jpg",
		}, posts[0].Media)
	})

	t.Run("AbsoluteMediaURLsLeftAlone", func(t *testing.T) {
		html := `
		<div class="timeline-item">
			<a href="/alice/status/106"></a>
			<img src="https://cdn.example/full.png">
		</div>`

		posts := parseTimeline(t, html)
		require.Len(t, posts, 1)
		require.Equal(t, []string{"https://cdn.example/full.png"}, posts[0].Media)
	})

	t.Run("MultipleItemsKeepDocumentOrder", func(t *testing.T) {
		html := `
		<div class="timeline-item"><a href="/alice/status/2"></a></div>
		<div class="timeline-item"><a href="/alice/status/1"></a></div>`

		posts := parseTimeline(t, html)
		require.Len(t, posts, 2)
		require.Equal(t, "2", posts[0].ID)
		require.Equal(t, "1", posts[1].ID)
	})
}

func TestStatusID(t *testing.T) {
	require.Equal(t, "100", statusID("/alice/status/100"))
	require.Equal(t, "100", statusID("/alice/status/100?s=20"))
	require.Equal(t, "", statusID("/alice/with_replies"))
}
