package bootstrap

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Audit actions recorded over the server lifecycle. The audit channel exists
// because this service stores client portal credentials; operational events
// around it should be attributable after the fact.
const (
	AuditServerStart    = "SERVER_START"
	AuditServerShutdown = "SERVER_SHUTDOWN"
)

type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}

type StdoutAuditLogger struct{}

func NewStdoutAuditLogger() *StdoutAuditLogger {
	return &StdoutAuditLogger{}
}

func (l *StdoutAuditLogger) Log(ctx context.Context, entry AuditLog) {
	zap.L().Named("audit").Info("audit event",
		zap.String("service", "client-dashboard"),
		zap.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
		zap.String("action", entry.Action),
		zap.String("message", entry.Message),
		zap.Any("meta", entry.Meta),
	)
}
