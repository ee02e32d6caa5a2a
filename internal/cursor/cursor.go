package cursor

// Store tracks the last-forwarded post ID per account. A cursor only ever
// moves forward: once advanced it is never rewound, so a post is forwarded
// at most once across runs.
type Store interface {
	// Get returns the stored cursor for an account, if any.
	Get(username string) (string, bool)

	// Advance moves the account's cursor to id. Values that do not compare
	// numerically greater than the current cursor are ignored.
	Advance(username, id string)

	// Snapshot returns a copy of the full account -> cursor mapping.
	Snapshot() map[string]string

	// Save persists the full mapping, overwriting previous contents.
	Save() error
}
