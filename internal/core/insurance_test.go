package core

import (
	"errors"
	"math"
	"testing"
)

func TestSummarizeInsurance(t *testing.T) {
	policies := []InsurancePolicy{
		{ID: 1, Owner: "alice", CoverageAmount: 100000, MonthlyPremium: 60, Active: true},
		{ID: 2, Owner: "alice", CoverageAmount: 50000, MonthlyPremium: 40, Active: true},
	}

	r, err := SummarizeInsurance(policies, 100, 10, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.ActivePolicies != 2 {
		t.Fatalf("active policies %d, want 2", r.ActivePolicies)
	}
	if r.TotalCoverage != 150000 {
		t.Fatalf("total coverage %d, want 150000", r.TotalCoverage)
	}
	if r.MonthlyPremium != 100 || r.AnnualPremium != 1200 {
		t.Fatalf("premium mismatch: %+v", r)
	}
	// floor(150000*100/1200) = 12500
	if r.CoverageToPremiumRatio != 12500 {
		t.Fatalf("ratio %d, want 12500", r.CoverageToPremiumRatio)
	}
}

func TestSummarizeInsuranceNoPolicies(t *testing.T) {
	r, err := SummarizeInsurance(nil, 0, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.ActivePolicies != 0 || r.TotalCoverage != 0 {
		t.Fatalf("expected empty report: %+v", r)
	}
	if r.AnnualPremium != 0 {
		t.Fatalf("annual premium %d, want 0", r.AnnualPremium)
	}
	// Zero annual premium means the ratio defaults to 0.
	if r.CoverageToPremiumRatio != 0 {
		t.Fatalf("ratio %d, want 0", r.CoverageToPremiumRatio)
	}
}

func TestSummarizeInsuranceAnnualPremiumInvariant(t *testing.T) {
	r, err := SummarizeInsurance(nil, 77, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.AnnualPremium != r.MonthlyPremium*12 {
		t.Fatalf("annual premium %d, want %d", r.AnnualPremium, r.MonthlyPremium*12)
	}
}

func TestSummarizeInsuranceOverflow(t *testing.T) {
	if _, err := SummarizeInsurance(nil, math.MaxInt64, 0, 0); !errors.Is(err, ErrAmountOverflow) {
		t.Fatalf("expected overflow on annual premium, got %v", err)
	}
	policies := []InsurancePolicy{
		{CoverageAmount: math.MaxInt64},
		{CoverageAmount: 1},
	}
	if _, err := SummarizeInsurance(policies, 1, 0, 0); !errors.Is(err, ErrAmountOverflow) {
		t.Fatalf("expected overflow on coverage sum, got %v", err)
	}
}
