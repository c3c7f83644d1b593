// Package storage persists engine state: the admin and collaborator
// address singletons, the keyed report mapping, and the report event audit
// trail the worker maintains.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"finhealth/internal/core"

	_ "modernc.org/sqlite"
)

const (
	settingAdmin     = "admin"
	settingAddresses = "addresses"
)

// ReportEvent is one audited report lifecycle event.
type ReportEvent struct {
	ID         int64
	Kind       string
	Owner      string
	PeriodKey  uint64
	OccurredAt uint64
	RecordedAt uint64
}

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

func (r *SQLiteRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *SQLiteRepository) Admin(ctx context.Context) (string, error) {
	admin, err := r.getSetting(ctx, settingAdmin)
	if errors.Is(err, sql.ErrNoRows) {
		return "", core.ErrNotInitialized
	}
	if err != nil {
		return "", fmt.Errorf("get admin: %w", err)
	}
	return admin, nil
}

func (r *SQLiteRepository) SetAdmin(ctx context.Context, admin string) error {
	if err := r.setSetting(ctx, settingAdmin, admin); err != nil {
		return fmt.Errorf("set admin: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Addresses(ctx context.Context) (core.ContractAddresses, error) {
	raw, err := r.getSetting(ctx, settingAddresses)
	if errors.Is(err, sql.ErrNoRows) {
		return core.ContractAddresses{}, core.ErrNotConfigured
	}
	if err != nil {
		return core.ContractAddresses{}, fmt.Errorf("get addresses: %w", err)
	}

	var addrs core.ContractAddresses
	if err := json.Unmarshal([]byte(raw), &addrs); err != nil {
		return core.ContractAddresses{}, fmt.Errorf("decode addresses: %w", err)
	}
	return addrs, nil
}

func (r *SQLiteRepository) SetAddresses(ctx context.Context, addrs core.ContractAddresses) error {
	raw, err := json.Marshal(addrs)
	if err != nil {
		return fmt.Errorf("encode addresses: %w", err)
	}
	if err := r.setSetting(ctx, settingAddresses, string(raw)); err != nil {
		return fmt.Errorf("set addresses: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) PutReport(ctx context.Context, owner string, periodKey uint64, report core.FinancialHealthReport) error {
	raw, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO reports (owner, period_key, report, generated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (owner, period_key) DO UPDATE SET
			report = excluded.report,
			generated_at = excluded.generated_at,
			stored_at = strftime('%s', 'now')`,
		owner, int64(periodKey), string(raw), int64(report.GeneratedAt))
	if err != nil {
		return fmt.Errorf("upsert report: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetReport(ctx context.Context, owner string, periodKey uint64) (core.FinancialHealthReport, error) {
	var raw string
	err := r.db.QueryRowContext(ctx,
		`SELECT report FROM reports WHERE owner = ? AND period_key = ?`,
		owner, int64(periodKey)).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return core.FinancialHealthReport{}, core.ErrReportNotFound
	}
	if err != nil {
		return core.FinancialHealthReport{}, fmt.Errorf("get report: %w", err)
	}

	var report core.FinancialHealthReport
	if err := json.Unmarshal([]byte(raw), &report); err != nil {
		return core.FinancialHealthReport{}, fmt.Errorf("decode report: %w", err)
	}
	return report, nil
}

// AppendEvent records one report lifecycle event in the audit trail.
func (r *SQLiteRepository) AppendEvent(ctx context.Context, event ReportEvent) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO report_events (kind, owner, period_key, occurred_at)
		VALUES (?, ?, ?, ?)`,
		event.Kind, event.Owner, int64(event.PeriodKey), int64(event.OccurredAt))
	if err != nil {
		return fmt.Errorf("append event: %w", err)
	}
	return nil
}

// ListEvents returns the most recent events for an owner, newest first.
func (r *SQLiteRepository) ListEvents(ctx context.Context, owner string, limit int) ([]ReportEvent, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, kind, owner, period_key, occurred_at, recorded_at
		FROM report_events
		WHERE owner = ?
		ORDER BY occurred_at DESC, id DESC
		LIMIT ?`, owner, limit)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []ReportEvent
	for rows.Next() {
		var e ReportEvent
		var periodKey, occurredAt, recordedAt int64
		if err := rows.Scan(&e.ID, &e.Kind, &e.Owner, &periodKey, &occurredAt, &recordedAt); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		e.PeriodKey = uint64(periodKey)
		e.OccurredAt = uint64(occurredAt)
		e.RecordedAt = uint64(recordedAt)
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return events, nil
}

// PruneEvents removes audit entries recorded before the cutoff and returns
// how many rows were deleted.
func (r *SQLiteRepository) PruneEvents(ctx context.Context, cutoff uint64) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM report_events WHERE recorded_at < ?`, int64(cutoff))
	if err != nil {
		return 0, fmt.Errorf("prune events: %w", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("prune events rows affected: %w", err)
	}
	return deleted, nil
}

func (r *SQLiteRepository) getSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	return value, err
}

func (r *SQLiteRepository) setSetting(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO settings (key, value)
		VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET
			value = excluded.value,
			updated_at = strftime('%s', 'now')`, key, value)
	return err
}
