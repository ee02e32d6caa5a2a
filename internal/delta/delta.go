package delta

import (
	"sort"
	"strconv"

	"github.com/orgball2608/nitter-relay-telegram-bot/internal/domain"
)

// SelectNew returns the posts newer than lastSeen, ordered oldest-first so
// downstream delivery stays chronological within a run. IDs compare by
// numeric value, not lexically. An empty lastSeen selects every post.
func SelectNew(posts []domain.Post, lastSeen string) []domain.Post {
	sorted := make([]domain.Post, len(posts))
	copy(sorted, posts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return numericID(sorted[i].ID) < numericID(sorted[j].ID)
	})

	if lastSeen == "" {
		return sorted
	}

	cursor := numericID(lastSeen)
	var fresh []domain.Post
	for _, post := range sorted {
		if numericID(post.ID) > cursor {
			fresh = append(fresh, post)
		}
	}
	return fresh
}

func numericID(id string) int64 {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
