package domain

// Post is one timeline entry extracted from a mirror profile page. Posts are
// transient: they are rebuilt from markup on every run and never stored.
type Post struct {
	ID    string   // numeric status ID, larger means newer
	URL   string   // canonical post URL on the mirror
	Text  string   // visible text, may be empty
	Media []string // resolved media URLs, first-seen order, deduplicated
}
