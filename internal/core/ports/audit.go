package ports

import (
	"context"

	"github.com/wellness/portal/internal/core/domain"
)

// AuditRepository appends audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
}

// AuditSink accepts audit events without blocking the caller.
type AuditSink interface {
	Record(event domain.AuditEvent)
}
