package relay

import "context"

// Client drives one full pass over the configured accounts.
type Client interface {
	// Run iterates the account list in file order, processes each account
	// inside a failure boundary and persists the cursor store exactly once
	// at the end.
	Run(ctx context.Context) error

	// ProcessAccount fetches the account's profile page, selects the posts
	// newer than its cursor and relays them oldest-first.
	ProcessAccount(ctx context.Context, username string) error
}
