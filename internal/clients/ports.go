// Package clients defines the outbound ports for the four upstream domain
// services the reporting engine consumes, plus the clock that supplies
// report timestamps. The engine never reimplements upstream logic; it only
// reads already-materialized records through these interfaces.
package clients

import (
	"context"
	"time"

	"finhealth/internal/core"
)

type (
	// RemittanceSplit exposes the configured split vector and the per-
	// category amounts it produces for a given total.
	RemittanceSplit interface {
		GetSplit(ctx context.Context) ([]uint32, error)
		CalculateSplit(ctx context.Context, totalAmount int64) ([]int64, error)
	}

	// SavingsGoals exposes an owner's savings goals. IsGoalCompleted is
	// part of the upstream contract but no report operation calls it.
	SavingsGoals interface {
		GetAllGoals(ctx context.Context, owner string) ([]core.SavingsGoal, error)
		IsGoalCompleted(ctx context.Context, goalID uint32) (bool, error)
	}

	// BillPayments exposes bill records. GetAllBills is system-wide, not
	// owner-scoped; the engine filters locally. GetTotalUnpaid is part of
	// the upstream contract but no report operation calls it.
	BillPayments interface {
		GetUnpaidBills(ctx context.Context, owner string) ([]core.Bill, error)
		GetTotalUnpaid(ctx context.Context, owner string) (int64, error)
		GetAllBills(ctx context.Context) ([]core.Bill, error)
	}

	// Insurance exposes an owner's active policies and the premium total
	// the upstream service maintains for them.
	Insurance interface {
		GetActivePolicies(ctx context.Context, owner string) ([]core.InsurancePolicy, error)
		GetTotalMonthlyPremium(ctx context.Context, owner string) (int64, error)
	}

	// Directory binds a configured collaborator address to a concrete
	// client. Addresses are resolved per invocation from stored
	// configuration, so a reconfiguration takes effect on the next report.
	Directory interface {
		RemittanceSplit(addr string) RemittanceSplit
		SavingsGoals(addr string) SavingsGoals
		BillPayments(addr string) BillPayments
		Insurance(addr string) Insurance
	}

	// Clock supplies the timestamp every report derivation uses. One
	// invocation reads the clock, not each bill comparison.
	Clock interface {
		Now() uint64
	}
)

// SystemClock reports the host's wall clock as unix seconds.
type SystemClock struct{}

func (SystemClock) Now() uint64 {
	return uint64(time.Now().Unix())
}
