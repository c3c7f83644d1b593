// Package worker maintains the report event audit trail: it records every
// consumed broker event and prunes entries past the retention window.
package worker

import (
	"context"
	"time"

	"finhealth/internal/amqp"
	"finhealth/internal/log"
	"finhealth/internal/storage"
)

// EventStore is the slice of the repository the audit worker needs.
type EventStore interface {
	AppendEvent(ctx context.Context, event storage.ReportEvent) error
	PruneEvents(ctx context.Context, cutoff uint64) (int64, error)
}

type AuditWorker struct {
	store     EventStore
	retention time.Duration
	logger    *log.Logger
}

func NewAuditWorker(store EventStore, retention time.Duration, logger *log.Logger) *AuditWorker {
	return &AuditWorker{
		store:     store,
		retention: retention,
		logger:    logger.WithComponent(log.ComponentWorker),
	}
}

// RecordEvent appends one consumed broker event to the audit trail. A
// returned error requeues the delivery.
func (w *AuditWorker) RecordEvent(ctx context.Context, msg *amqp.ReportEventMessage) error {
	if err := w.store.AppendEvent(ctx, storage.ReportEvent{
		Kind:       msg.Kind,
		Owner:      msg.Owner,
		PeriodKey:  msg.PeriodKey,
		OccurredAt: msg.OccurredAt,
	}); err != nil {
		return err
	}

	w.logger.InfoContext(ctx, "Report event recorded",
		log.FieldEventKind, msg.Kind,
		log.FieldOwner, msg.Owner,
		log.FieldPeriodKey, msg.PeriodKey)
	return nil
}

// RunRetentionSweep deletes audit entries recorded before the retention
// window.
func (w *AuditWorker) RunRetentionSweep(ctx context.Context) error {
	cutoff := uint64(time.Now().Add(-w.retention).Unix())
	deleted, err := w.store.PruneEvents(ctx, cutoff)
	if err != nil {
		return err
	}

	w.logger.InfoContext(ctx, "Audit retention sweep completed",
		"deleted", deleted,
		"cutoff", cutoff)
	return nil
}
