// Package notify delivers out-of-band notifications to hackers.
package notify

import (
	"context"

	"go.uber.org/zap"
)

// Notifier sends a message to the hacker behind an account id. Delivery is
// fire-and-forget: implementations log failures and never surface them to the
// request that triggered the notification.
type Notifier interface {
	Notify(ctx context.Context, accountID, subject, body string)
}

// LogNotifier records notifications in the application log. Stands in for a
// mail provider in environments without one configured.
type LogNotifier struct {
	log *zap.SugaredLogger
}

// NewLogNotifier constructs a LogNotifier.
func NewLogNotifier(log *zap.SugaredLogger) *LogNotifier {
	return &LogNotifier{log: log.Named("notify")}
}

// Notify logs the notification.
func (n *LogNotifier) Notify(_ context.Context, accountID, subject, body string) {
	n.log.Infow("notification", "account_id", accountID, "subject", subject, "body", body)
}
