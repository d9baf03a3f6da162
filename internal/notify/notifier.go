package notify

import "context"

// Notifier dispatches an outbound text message through the relay provider.
// Dispatch failures must surface to the caller; they are never swallowed.
type Notifier interface {
	Send(ctx context.Context, to, from, body string) error
}
