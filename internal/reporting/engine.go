// Package reporting implements the aggregation engine. Every operation is
// one sequential unit of work: it resolves the configured collaborator
// addresses, pulls raw records, reduces them with the pure calculators in
// core, and either returns a fully assembled report or fails with no
// partial output.
package reporting

import (
	"context"
	"errors"
	"fmt"

	"finhealth/internal/clients"
	"finhealth/internal/core"
	"finhealth/internal/log"
)

// Store is the persistence port the engine writes through: the keyed report
// mapping plus the two configuration singletons.
type Store interface {
	Admin(ctx context.Context) (string, error)
	SetAdmin(ctx context.Context, admin string) error
	Addresses(ctx context.Context) (core.ContractAddresses, error)
	SetAddresses(ctx context.Context, addrs core.ContractAddresses) error
	PutReport(ctx context.Context, owner string, periodKey uint64, report core.FinancialHealthReport) error
	GetReport(ctx context.Context, owner string, periodKey uint64) (core.FinancialHealthReport, error)
}

// Publisher emits the observational report events. Emission is best-effort:
// a publish failure is logged, never surfaced to the caller.
type Publisher interface {
	PublishReportGenerated(ctx context.Context, owner string, occurredAt uint64) error
	PublishReportStored(ctx context.Context, owner string, periodKey uint64, occurredAt uint64) error
	PublishAddressesConfigured(ctx context.Context, caller string, occurredAt uint64) error
}

// Engine aggregates per-owner financial state from the four upstream
// services into composite reports and the health score.
type Engine struct {
	store  Store
	dir    clients.Directory
	clock  clients.Clock
	events Publisher // may be nil when no broker is configured
	logger *log.Logger
}

func New(store Store, dir clients.Directory, clock clients.Clock, events Publisher, logger *log.Logger) *Engine {
	return &Engine{
		store:  store,
		dir:    dir,
		clock:  clock,
		events: events,
		logger: logger.WithComponent(log.ComponentEngine),
	}
}

// Init installs the admin identity. It runs once; a second call fails with
// ErrAlreadyInitialized. The caller must be the admin being installed.
func (e *Engine) Init(ctx context.Context, caller, admin string) error {
	if admin == "" {
		return errors.New("admin identity is empty")
	}
	if caller != admin {
		return core.ErrUnauthorized
	}
	if _, err := e.store.Admin(ctx); err == nil {
		return core.ErrAlreadyInitialized
	} else if !errors.Is(err, core.ErrNotInitialized) {
		return err
	}
	if err := e.store.SetAdmin(ctx, admin); err != nil {
		return err
	}
	e.logger.InfoContext(ctx, "Admin initialized", log.FieldCaller, caller)
	return nil
}

// ConfigureAddresses replaces the collaborator address record. Admin only.
func (e *Engine) ConfigureAddresses(ctx context.Context, caller string, addrs core.ContractAddresses) error {
	admin, err := e.store.Admin(ctx)
	if err != nil {
		return err
	}
	if caller != admin {
		return core.ErrUnauthorized
	}
	if err := addrs.Validate(); err != nil {
		return fmt.Errorf("invalid addresses: %w", err)
	}
	if err := e.store.SetAddresses(ctx, addrs); err != nil {
		return err
	}

	e.publish(ctx, func(p Publisher) error {
		return p.PublishAddressesConfigured(ctx, caller, e.clock.Now())
	})
	e.logger.InfoContext(ctx, "Collaborator addresses configured", log.FieldCaller, caller)
	return nil
}

// Addresses returns the configured collaborator record.
func (e *Engine) Addresses(ctx context.Context) (core.ContractAddresses, error) {
	return e.store.Addresses(ctx)
}

// Admin returns the configured admin identity.
func (e *Engine) Admin(ctx context.Context) (string, error) {
	return e.store.Admin(ctx)
}

// RemittanceSummary builds the allocation report for a caller-supplied
// total. The total is not derived from any ledger state, and the period
// bounds pass through unvalidated.
func (e *Engine) RemittanceSummary(ctx context.Context, owner string, totalAmount int64, periodStart, periodEnd uint64) (core.RemittanceSummary, error) {
	addrs, err := e.store.Addresses(ctx)
	if err != nil {
		return core.RemittanceSummary{}, err
	}

	split := e.dir.RemittanceSplit(addrs.RemittanceSplit)
	percentages, err := split.GetSplit(ctx)
	if err != nil {
		return core.RemittanceSummary{}, e.collabErr("remittance split", err)
	}
	amounts, err := split.CalculateSplit(ctx, totalAmount)
	if err != nil {
		return core.RemittanceSummary{}, e.collabErr("remittance split", err)
	}

	return core.NewRemittanceSummary(totalAmount, percentages, amounts, periodStart, periodEnd), nil
}

// SavingsReport builds the savings progress report for owner.
func (e *Engine) SavingsReport(ctx context.Context, owner string, periodStart, periodEnd uint64) (core.SavingsReport, error) {
	addrs, err := e.store.Addresses(ctx)
	if err != nil {
		return core.SavingsReport{}, err
	}

	goals, err := e.dir.SavingsGoals(addrs.SavingsGoals).GetAllGoals(ctx, owner)
	if err != nil {
		return core.SavingsReport{}, e.collabErr("savings goals", err)
	}

	return core.SummarizeSavings(goals, periodStart, periodEnd)
}

// BillCompliance builds the bill compliance report for owner over the
// inclusive created-at window.
func (e *Engine) BillCompliance(ctx context.Context, owner string, periodStart, periodEnd uint64) (core.BillComplianceReport, error) {
	addrs, err := e.store.Addresses(ctx)
	if err != nil {
		return core.BillComplianceReport{}, err
	}

	// The bill service is queried system-wide; owner scoping happens here.
	bills, err := e.dir.BillPayments(addrs.BillPayments).GetAllBills(ctx)
	if err != nil {
		return core.BillComplianceReport{}, e.collabErr("bill payments", err)
	}

	return core.SummarizeBills(bills, owner, periodStart, periodEnd, e.clock.Now())
}

// InsuranceReport builds the coverage report for owner.
func (e *Engine) InsuranceReport(ctx context.Context, owner string, periodStart, periodEnd uint64) (core.InsuranceReport, error) {
	addrs, err := e.store.Addresses(ctx)
	if err != nil {
		return core.InsuranceReport{}, err
	}

	insurance := e.dir.Insurance(addrs.Insurance)
	policies, err := insurance.GetActivePolicies(ctx, owner)
	if err != nil {
		return core.InsuranceReport{}, e.collabErr("insurance", err)
	}
	monthlyPremium, err := insurance.GetTotalMonthlyPremium(ctx, owner)
	if err != nil {
		return core.InsuranceReport{}, e.collabErr("insurance", err)
	}

	return core.SummarizeInsurance(policies, monthlyPremium, periodStart, periodEnd)
}

// HealthScore derives the composite 0-100 score. It re-fetches goals,
// unpaid bills and active policies itself rather than reusing the other
// report operations, so every report type stays self-contained.
func (e *Engine) HealthScore(ctx context.Context, owner string) (core.HealthScore, error) {
	addrs, err := e.store.Addresses(ctx)
	if err != nil {
		return core.HealthScore{}, err
	}

	goals, err := e.dir.SavingsGoals(addrs.SavingsGoals).GetAllGoals(ctx, owner)
	if err != nil {
		return core.HealthScore{}, e.collabErr("savings goals", err)
	}
	unpaidBills, err := e.dir.BillPayments(addrs.BillPayments).GetUnpaidBills(ctx, owner)
	if err != nil {
		return core.HealthScore{}, e.collabErr("bill payments", err)
	}
	policies, err := e.dir.Insurance(addrs.Insurance).GetActivePolicies(ctx, owner)
	if err != nil {
		return core.HealthScore{}, e.collabErr("insurance", err)
	}

	return core.CalculateHealthScore(goals, unpaidBills, policies, e.clock.Now())
}

// FinancialHealthReport assembles the composite report: the health score,
// the four domain reports and the generation timestamp. Any collaborator
// failure aborts the whole invocation with no partial report.
func (e *Engine) FinancialHealthReport(ctx context.Context, owner string, totalAmount int64, periodStart, periodEnd uint64) (core.FinancialHealthReport, error) {
	healthScore, err := e.HealthScore(ctx, owner)
	if err != nil {
		return core.FinancialHealthReport{}, err
	}
	remittance, err := e.RemittanceSummary(ctx, owner, totalAmount, periodStart, periodEnd)
	if err != nil {
		return core.FinancialHealthReport{}, err
	}
	savings, err := e.SavingsReport(ctx, owner, periodStart, periodEnd)
	if err != nil {
		return core.FinancialHealthReport{}, err
	}
	bills, err := e.BillCompliance(ctx, owner, periodStart, periodEnd)
	if err != nil {
		return core.FinancialHealthReport{}, err
	}
	insurance, err := e.InsuranceReport(ctx, owner, periodStart, periodEnd)
	if err != nil {
		return core.FinancialHealthReport{}, err
	}

	generatedAt := e.clock.Now()
	e.publish(ctx, func(p Publisher) error {
		return p.PublishReportGenerated(ctx, owner, generatedAt)
	})
	e.logger.InfoContext(ctx, "Financial health report generated",
		log.FieldOwner, owner,
		log.FieldScore, healthScore.Score,
		log.FieldPeriodStart, periodStart,
		log.FieldPeriodEnd, periodEnd)

	return core.FinancialHealthReport{
		HealthScore:       healthScore,
		RemittanceSummary: remittance,
		SavingsReport:     savings,
		BillCompliance:    bills,
		InsuranceReport:   insurance,
		GeneratedAt:       generatedAt,
	}, nil
}

// TrendAnalysis compares two period amounts. No collaborator calls.
func (e *Engine) TrendAnalysis(currentAmount, previousAmount int64) (core.TrendData, error) {
	return core.AnalyzeTrend(currentAmount, previousAmount)
}

// StoreReport upserts a previously assembled report under (owner,
// periodKey). Overwriting an existing entry is allowed and silent. The
// caller must be the owner.
func (e *Engine) StoreReport(ctx context.Context, caller, owner string, periodKey uint64, report core.FinancialHealthReport) error {
	if caller != owner {
		return core.ErrUnauthorized
	}
	if err := e.store.PutReport(ctx, owner, periodKey, report); err != nil {
		return err
	}

	e.publish(ctx, func(p Publisher) error {
		return p.PublishReportStored(ctx, owner, periodKey, e.clock.Now())
	})
	e.logger.InfoContext(ctx, "Report stored",
		log.FieldOwner, owner,
		log.FieldPeriodKey, periodKey)
	return nil
}

// StoredReport returns the report stored under (owner, periodKey), or
// core.ErrReportNotFound. A never-written key is an explicit absence, not a
// zero-valued report.
func (e *Engine) StoredReport(ctx context.Context, owner string, periodKey uint64) (core.FinancialHealthReport, error) {
	return e.store.GetReport(ctx, owner, periodKey)
}

func (e *Engine) collabErr(service string, err error) error {
	return fmt.Errorf("%w: %s: %v", core.ErrCollaborator, service, err)
}

func (e *Engine) publish(ctx context.Context, emit func(Publisher) error) {
	if e.events == nil {
		return
	}
	if err := emit(e.events); err != nil {
		e.logger.ErrorContext(ctx, "Failed to publish report event", log.FieldError, err)
	}
}
