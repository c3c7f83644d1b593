package core

import (
	"errors"
	"math"
	"testing"
)

func paidAt(ts uint64) *uint64 { return &ts }

func TestSummarizeBills(t *testing.T) {
	const now = 1000
	bills := []Bill{
		{ID: 1, Owner: "alice", Amount: 300, CreatedAt: 150, Paid: true, PaidAt: paidAt(160), DueDate: 500},
		{ID: 2, Owner: "alice", Amount: 200, CreatedAt: 150, Paid: false, DueDate: 900},  // overdue
		{ID: 3, Owner: "alice", Amount: 100, CreatedAt: 180, Paid: false, DueDate: 2000}, // unpaid, not overdue
		{ID: 4, Owner: "bob", Amount: 999, CreatedAt: 150, Paid: false, DueDate: 1},      // other owner
		{ID: 5, Owner: "alice", Amount: 999, CreatedAt: 99, Paid: false, DueDate: 1},     // before window
		{ID: 6, Owner: "alice", Amount: 999, CreatedAt: 201, Paid: false, DueDate: 1},    // after window
	}

	r, err := SummarizeBills(bills, "alice", 100, 200, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.TotalBills != 3 || r.PaidBills != 1 || r.UnpaidBills != 2 || r.OverdueBills != 1 {
		t.Fatalf("counts mismatch: %+v", r)
	}
	if r.PaidBills+r.UnpaidBills != r.TotalBills {
		t.Fatalf("paid+unpaid != total: %+v", r)
	}
	if r.OverdueBills > r.UnpaidBills {
		t.Fatalf("overdue exceeds unpaid: %+v", r)
	}
	if r.TotalAmount != 600 || r.PaidAmount != 300 || r.UnpaidAmount != 300 {
		t.Fatalf("amounts mismatch: %+v", r)
	}
	if r.PaidAmount+r.UnpaidAmount != r.TotalAmount {
		t.Fatalf("paid+unpaid amount != total: %+v", r)
	}
	if r.CompliancePercentage != 33 {
		t.Fatalf("compliance %d, want 33", r.CompliancePercentage)
	}
}

func TestSummarizeBillsInclusiveWindow(t *testing.T) {
	bills := []Bill{
		{ID: 1, Owner: "alice", Amount: 10, CreatedAt: 100, Paid: true},
		{ID: 2, Owner: "alice", Amount: 10, CreatedAt: 200, Paid: true},
	}
	r, err := SummarizeBills(bills, "alice", 100, 200, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.TotalBills != 2 {
		t.Fatalf("window boundaries must be inclusive, got %d bills", r.TotalBills)
	}
}

func TestSummarizeBillsVacuousCompliance(t *testing.T) {
	// No bills in the window means full compliance, not zero.
	r, err := SummarizeBills(nil, "alice", 0, 100, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.CompliancePercentage != 100 {
		t.Fatalf("empty window must report 100%%, got %d", r.CompliancePercentage)
	}
	if r.TotalBills != 0 {
		t.Fatalf("expected no bills, got %d", r.TotalBills)
	}
}

func TestSummarizeBillsDueExactlyNow(t *testing.T) {
	// A bill due exactly at now is not overdue yet; overdue means strictly
	// past due.
	bills := []Bill{{ID: 1, Owner: "alice", Amount: 10, CreatedAt: 5, Paid: false, DueDate: 50}}
	r, err := SummarizeBills(bills, "alice", 0, 100, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.OverdueBills != 0 {
		t.Fatalf("bill due at now must not be overdue: %+v", r)
	}
}

func TestSummarizeBillsOverflow(t *testing.T) {
	bills := []Bill{
		{Owner: "alice", Amount: math.MaxInt64, CreatedAt: 10, Paid: true},
		{Owner: "alice", Amount: 1, CreatedAt: 10, Paid: true},
	}
	if _, err := SummarizeBills(bills, "alice", 0, 100, 0); !errors.Is(err, ErrAmountOverflow) {
		t.Fatalf("expected overflow, got %v", err)
	}
}
