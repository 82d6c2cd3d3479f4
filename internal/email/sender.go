package email

import (
	"context"
	"sync"
)

// Sender is the interface that all email providers must implement.
// This abstraction allows swapping email providers (Resend, Gmail, etc.)
// without changing business logic.
type Sender interface {
	// Send delivers msg and returns the provider's delivery ID.
	Send(ctx context.Context, msg Message) (string, error)
}

// Message represents an email message to be sent.
type Message struct {
	From     string // sender address, may include a display name
	To       string // recipient email address
	Subject  string // email subject
	HTMLBody string // HTML email body
	TextBody string // plain-text fallback body
}

// RecordingSender keeps every message in memory and returns a fixed ID.
// It is used when no provider is configured and in tests.
type RecordingSender struct {
	mu     sync.Mutex
	Outbox []Message
	ID     string
	Err    error
}

// Send records msg
func (r *RecordingSender) Send(_ context.Context, msg Message) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return "", r.Err
	}
	r.Outbox = append(r.Outbox, msg)
	return r.ID, nil
}

// Sent returns a copy of the recorded messages
func (r *RecordingSender) Sent() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Message, len(r.Outbox))
	copy(out, r.Outbox)
	return out
}
