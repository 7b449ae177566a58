package app

import (
	"simple-file-explorer/internal/logger"
	"simple-file-explorer/internal/shutdown"
)

// Lifecycle runs the shutdown sequence once the event loop has stopped
type Lifecycle struct {
	shutdown   *shutdown.Manager
	logger     logger.Logger
	isShutdown bool
}

func NewLifecycle(sm *shutdown.Manager, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		shutdown: sm,
		logger:   log,
	}
}

func (l *Lifecycle) Shutdown() {
	if l.isShutdown {
		return
	}

	l.isShutdown = true
	l.logger.Info("Lifecycle", "shutdown sequence initiated", nil)

	if l.shutdown != nil {
		l.shutdown.Shutdown()
	}

	l.logger.Info("Lifecycle", "shutdown sequence completed", nil)
}
