package mocks

import (
	"context"
	"sync"

	"wordleboard/internal/notify"
)

// SentMessage records one dispatched notification
type SentMessage struct {
	To   string
	From string
	Body string
}

// MockNotifier is a mock implementation of Notifier for testing. It records
// every send and can be made to fail.
type MockNotifier struct {
	mu   sync.Mutex
	sent []SentMessage

	// Err, if set, is returned from every Send
	Err error
}

// Ensure MockNotifier implements Notifier
var _ notify.Notifier = (*MockNotifier)(nil)

// NewMockNotifier creates a new MockNotifier
func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

// Send records the message, or returns the configured error
func (n *MockNotifier) Send(_ context.Context, to, from, body string) error {
	if n.Err != nil {
		return n.Err
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, SentMessage{To: to, From: from, Body: body})
	return nil
}

// Sent returns a copy of the recorded messages
func (n *MockNotifier) Sent() []SentMessage {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]SentMessage, len(n.sent))
	copy(out, n.sent)
	return out
}

// LastSent returns the most recent message, or nil if none were sent
func (n *MockNotifier) LastSent() *SentMessage {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.sent) == 0 {
		return nil
	}
	msg := n.sent[len(n.sent)-1]
	return &msg
}

// Reset clears the recorded messages
func (n *MockNotifier) Reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = nil
}
