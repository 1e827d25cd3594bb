package notify

import (
	"context"
	"log"
)

// Severity mirrors the storefront toast levels.
type Severity string

const (
	Success Severity = "success"
	Info    Severity = "info"
	Error   Severity = "error"
)

// Notifier informs the submitting actor of success or failure. How the
// message is displayed is the collaborator's business.
type Notifier interface {
	Notify(ctx context.Context, message string, severity Severity)
}

// LogNotifier writes notifications to the server log. It is the default
// collaborator when no UI channel is wired.
type LogNotifier struct {
	Logger *log.Logger
}

func (n *LogNotifier) Notify(_ context.Context, message string, severity Severity) {
	if n.Logger == nil {
		return
	}
	n.Logger.Printf("notify [%s] %s", severity, message)
}

// Discard drops all notifications.
type Discard struct{}

func (Discard) Notify(context.Context, string, Severity) {}
