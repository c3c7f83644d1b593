// Package memory provides in-memory collaborator implementations. They back
// the engine in tests and in the memory data backend, where no upstream
// services are running.
package memory

import (
	"context"
	"errors"
	"sync"

	"finhealth/internal/clients"
	"finhealth/internal/core"
)

// ErrGoalNotFound is returned when a completion lookup misses.
var ErrGoalNotFound = errors.New("goal not found")

// Directory hands out the same fake services regardless of address.
type Directory struct {
	Split     *SplitService
	Goals     *GoalService
	Bills     *BillService
	Ins       *InsuranceService
}

func NewDirectory() *Directory {
	return &Directory{
		Split:     &SplitService{},
		Goals:     &GoalService{},
		Bills:     &BillService{},
		Ins:       &InsuranceService{},
	}
}

func (d *Directory) RemittanceSplit(string) clients.RemittanceSplit { return d.Split }
func (d *Directory) SavingsGoals(string) clients.SavingsGoals      { return d.Goals }
func (d *Directory) BillPayments(string) clients.BillPayments      { return d.Bills }
func (d *Directory) Insurance(string) clients.Insurance            { return d.Ins }

// Clock reports a fixed instant.
type Clock struct {
	Time uint64
}

func (c Clock) Now() uint64 { return c.Time }

// SplitService serves a fixed percentage vector and derives amounts from it.
type SplitService struct {
	mu          sync.Mutex
	Percentages []uint32
	Err         error
}

func (s *SplitService) GetSplit(context.Context) ([]uint32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return append([]uint32(nil), s.Percentages...), nil
}

func (s *SplitService) CalculateSplit(_ context.Context, totalAmount int64) ([]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	amounts := make([]int64, len(s.Percentages))
	for i, pct := range s.Percentages {
		amounts[i] = totalAmount * int64(pct) / 100
	}
	return amounts, nil
}

// GoalService serves a fixed goal list.
type GoalService struct {
	mu    sync.Mutex
	Goals []core.SavingsGoal
	Err   error
}

func (s *GoalService) GetAllGoals(_ context.Context, owner string) ([]core.SavingsGoal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	var out []core.SavingsGoal
	for _, g := range s.Goals {
		if g.Owner == owner {
			out = append(out, g)
		}
	}
	return out, nil
}

func (s *GoalService) IsGoalCompleted(_ context.Context, goalID uint32) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return false, s.Err
	}
	for _, g := range s.Goals {
		if g.ID == goalID {
			return g.CurrentAmount >= g.TargetAmount, nil
		}
	}
	return false, ErrGoalNotFound
}

// BillService serves a fixed system-wide bill list.
type BillService struct {
	mu    sync.Mutex
	Bills []core.Bill
	Err   error
}

func (s *BillService) GetUnpaidBills(_ context.Context, owner string) ([]core.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	var out []core.Bill
	for _, b := range s.Bills {
		if b.Owner == owner && !b.Paid {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *BillService) GetTotalUnpaid(_ context.Context, owner string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	var total int64
	for _, b := range s.Bills {
		if b.Owner == owner && !b.Paid {
			total += b.Amount
		}
	}
	return total, nil
}

func (s *BillService) GetAllBills(context.Context) ([]core.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return append([]core.Bill(nil), s.Bills...), nil
}

// InsuranceService serves a fixed policy list; the premium total is derived
// from the active policies unless overridden.
type InsuranceService struct {
	mu              sync.Mutex
	Policies        []core.InsurancePolicy
	PremiumOverride *int64
	Err             error
}

func (s *InsuranceService) GetActivePolicies(_ context.Context, owner string) ([]core.InsurancePolicy, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	var out []core.InsurancePolicy
	for _, p := range s.Policies {
		if p.Owner == owner && p.Active {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *InsuranceService) GetTotalMonthlyPremium(_ context.Context, owner string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	if s.PremiumOverride != nil {
		return *s.PremiumOverride, nil
	}
	var total int64
	for _, p := range s.Policies {
		if p.Owner == owner && p.Active {
			total += p.MonthlyPremium
		}
	}
	return total, nil
}
