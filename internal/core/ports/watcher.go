package ports

import "context"

// Watcher observes a directory tree for file changes.
type Watcher interface {
	// Start begins watching the given roots recursively. Events are
	// delivered until ctx is canceled or Stop is called. Start must be
	// called at most once.
	Start(ctx context.Context, roots ...string) error

	// Events returns the channel of changed file paths.
	Events() <-chan string

	// Stop releases watcher resources and closes the events channel.
	Stop() error
}
