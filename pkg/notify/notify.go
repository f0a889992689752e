// Package notify decouples transfer latency from notification delivery.
//
// Producers enqueue balance-change events onto a bounded buffer and never
// wait for delivery; a single consumer goroutine drains the buffer and
// invokes the configured Notifier. Delivery failures are logged and
// absorbed, never surfaced to the transfer caller.
package notify

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event describes a balance change queued for out-of-band delivery.
// Immutable; owned by the pipeline once enqueued.
type Event struct {
	ID         uuid.UUID
	AccountID  string
	Message    string
	OccurredAt time.Time
}

// NewEvent creates an Event for the given account and message.
func NewEvent(accountID, message string) Event {
	return Event{
		ID:         uuid.New(),
		AccountID:  accountID,
		Message:    message,
		OccurredAt: time.Now(),
	}
}

// Notifier delivers a balance-change message to the affected party. The
// pipeline only requires this capability, not its transport: email, a
// message broker, or a log sink are all valid implementations.
type Notifier interface {
	Notify(ctx context.Context, accountID, message string) error
}
