package testutil

import (
	"context"
	"sync"
)

// RecordingNotifier captures notification messages. When Err is set every
// call records the message and then fails with Err.
type RecordingNotifier struct {
	mu       sync.Mutex
	messages []string
	Err      error
}

func (n *RecordingNotifier) Notify(_ context.Context, message string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
	return n.Err
}

// Messages returns a copy of the captured messages.
func (n *RecordingNotifier) Messages() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.messages...)
}
