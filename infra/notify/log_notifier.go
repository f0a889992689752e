// Package notify provides Notifier implementations. The log sink is the
// default; a broker- or email-backed notifier plugs in behind the same
// interface.
package notify

import (
	"context"
	"log/slog"

	"github.com/amirasaad/transfers/pkg/notify"
)

// LogNotifier delivers balance-change messages to the process log. It
// stands in for an outbound channel such as email or a message broker.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a log-backed notifier.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With("notifier", "log")}
}

// Notify writes the notification to the log.
func (n *LogNotifier) Notify(ctx context.Context, accountID, message string) error {
	n.logger.InfoContext(ctx, "notifying account",
		"account_id", accountID, "message", message)
	return nil
}

var _ notify.Notifier = (*LogNotifier)(nil)
