package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"finhealth/internal/amqp"
	"finhealth/internal/log"
	"finhealth/internal/storage"
)

type fakeEventStore struct {
	events []storage.ReportEvent
	pruned uint64
	err    error
}

func (s *fakeEventStore) AppendEvent(_ context.Context, event storage.ReportEvent) error {
	if s.err != nil {
		return s.err
	}
	s.events = append(s.events, event)
	return nil
}

func (s *fakeEventStore) PruneEvents(_ context.Context, cutoff uint64) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.pruned = cutoff
	return 2, nil
}

func testLogger() *log.Logger {
	return log.New(log.Config{Handler: slog.NewTextHandler(io.Discard, nil)})
}

func TestRecordEvent(t *testing.T) {
	store := &fakeEventStore{}
	w := NewAuditWorker(store, 24*time.Hour, testLogger())

	msg := amqp.NewReportEventMessage(amqp.EventReportStored, "GOWNER", 202401, 1_700_000_000)
	if err := w.RecordEvent(context.Background(), msg); err != nil {
		t.Fatalf("RecordEvent: %v", err)
	}

	if len(store.events) != 1 {
		t.Fatalf("expected 1 recorded event, got %d", len(store.events))
	}
	got := store.events[0]
	if got.Kind != amqp.EventReportStored || got.Owner != "GOWNER" || got.PeriodKey != 202401 || got.OccurredAt != 1_700_000_000 {
		t.Errorf("unexpected recorded event %+v", got)
	}
}

func TestRecordEventPropagatesStoreError(t *testing.T) {
	store := &fakeEventStore{err: errors.New("disk full")}
	w := NewAuditWorker(store, 24*time.Hour, testLogger())

	msg := amqp.NewReportEventMessage(amqp.EventReportGenerated, "GOWNER", 0, 100)
	if err := w.RecordEvent(context.Background(), msg); err == nil {
		t.Fatal("expected store error to propagate for requeue")
	}
}

func TestRunRetentionSweep(t *testing.T) {
	store := &fakeEventStore{}
	w := NewAuditWorker(store, 24*time.Hour, testLogger())

	before := uint64(time.Now().Add(-24 * time.Hour).Unix())
	if err := w.RunRetentionSweep(context.Background()); err != nil {
		t.Fatalf("RunRetentionSweep: %v", err)
	}
	after := uint64(time.Now().Add(-24 * time.Hour).Unix())

	if store.pruned < before || store.pruned > after {
		t.Errorf("cutoff %d outside expected range [%d, %d]", store.pruned, before, after)
	}
}
