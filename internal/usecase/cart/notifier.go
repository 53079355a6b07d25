package cart

import (
	"context"
	"log"
)

type Level string

const (
	LevelError Level = "error"
)

type Notification struct {
	CartID  string
	Level   Level
	Message string
}

// Notifier delivers shopper-facing notifications.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

type LogNotifier struct {
	logger *log.Logger
}

func NewLogNotifier(logger *log.Logger) *LogNotifier {
	if logger == nil {
		logger = log.Default()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(ctx context.Context, note Notification) {
	n.logger.Printf("cart %s [%s]: %s", note.CartID, note.Level, note.Message)
}

type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, Notification) {}
