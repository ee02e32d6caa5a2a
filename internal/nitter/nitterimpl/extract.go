package nitterimpl

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/orgball2608/nitter-relay-telegram-bot/internal/domain"
)

const statusMarker = "/status/"

// extractPosts scans the document for timeline-item blocks and builds a Post
// per block. Blocks without a status link (ads, headers) are skipped, as are
// blocks whose status ID is not numeric.
func extractPosts(doc *goquery.Document, base *url.URL) []domain.Post {
	var posts []domain.Post

	doc.Find("div.timeline-item").Each(func(_ int, item *goquery.Selection) {
		link := findStatusLink(item)
		if link == "" {
			return
		}

		id := statusID(link)
		if !isNumeric(id) {
			return
		}

		post := domain.Post{
			ID:    id,
			URL:   resolveURL(base, link),
			Text:  extractText(item),
			Media: extractMedia(item, base),
		}
		posts = append(posts, post)
	})

	return posts
}

// findStatusLink returns the href of the first anchor in the block whose
// target contains the status marker.
func findStatusLink(item *goquery.Selection) string {
	var link string
	item.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		if strings.Contains(href, statusMarker) {
			link = href
			return false
		}
		return true
	})
	return link
}

// statusID extracts the path segment after the status marker, stripped of
// any query parameters.
func statusID(link string) string {
	idx := strings.LastIndex(link, statusMarker)
	if idx < 0 {
		return ""
	}
	id := link[idx+len(statusMarker):]
	if q := strings.IndexByte(id, '?'); q >= 0 {
		id = id[:q]
	}
	return id
}

func extractText(item *goquery.Selection) string {
	content := item.Find("div.tweet-content").First()
	if content.Length() == 0 {
		return ""
	}
	// Collapse inner whitespace the way a visible-text rendering would.
	return strings.Join(strings.Fields(content.Text()), " ")
}

// extractMedia collects media URLs from image and video elements, resolved
// against the mirror base, duplicates removed preserving first occurrence.
func extractMedia(item *goquery.Selection, base *url.URL) []string {
	var media []string

	item.Find("img").Each(func(_ int, img *goquery.Selection) {
		// Lazy-load attribute wins over the eager one.
		src, ok := img.Attr("data-src")
		if !ok || src == "" {
			src, _ = img.Attr("src")
		}
		if src != "" {
			media = appendResolved(media, base, src)
		}
	})

	item.Find("video").Each(func(_ int, video *goquery.Selection) {
		if src, ok := video.Attr("src"); ok && src != "" {
			media = appendResolved(media, base, src)
		}
		video.Find("source").Each(func(_ int, source *goquery.Selection) {
			if src, ok := source.Attr("src"); ok && src != "" {
				media = appendResolved(media, base, src)
			}
		})
	})

	return dedupe(media)
}

func appendResolved(urls []string, base *url.URL, ref string) []string {
	resolved := resolveURL(base, ref)
	if resolved == "" {
		return urls
	}
	return append(urls, resolved)
}

func resolveURL(base *url.URL, ref string) string {
	u, err := base.Parse(ref)
	if err != nil {
		return ""
	}
	return u.String()
}

func dedupe(urls []string) []string {
	if len(urls) < 2 {
		return urls
	}
	seen := make(map[string]struct{}, len(urls))
	out := urls[:0]
	for _, u := range urls {
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	return out
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
