// Package notify is the write-only toast/alert sink the stores report
// user-visible messages through. The real UI subscribes to these messages;
// the default implementation just logs them.
package notify

import (
	"storefront-core/internal/logger"

	"go.uber.org/zap"
)

// Notifier receives user-facing messages. Implementations must not block.
type Notifier interface {
	Info(message string)
	Error(message string)
}

type logNotifier struct{}

// NewLogNotifier returns a Notifier that writes toasts to the global logger.
func NewLogNotifier() Notifier {
	return &logNotifier{}
}

func (n *logNotifier) Info(message string) {
	logger.L().Info("toast", zap.String("kind", "info"), zap.String("message", message))
}

func (n *logNotifier) Error(message string) {
	logger.L().Error("toast", zap.String("kind", "error"), zap.String("message", message))
}
