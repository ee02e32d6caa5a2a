package formatter

import "fmt"

// MaxCaptionLength is the Telegram caption limit.
const MaxCaptionLength = 1024

// BuildCaption combines the account name, post URL and post text into the
// message attached to every relayed post, truncated to the Telegram limit.
func BuildCaption(username, postURL, text string) string {
	return Truncate(fmt.Sprintf("%s — %s\n\n%s", username, postURL, text), MaxCaptionLength)
}

// Truncate cuts s to at most max characters. The cut is rune-safe so a
// multi-byte character is never split in half.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
