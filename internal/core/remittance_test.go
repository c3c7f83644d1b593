package core

import "testing"

func TestNewCategoryBreakdownFixedOrder(t *testing.T) {
	breakdown := NewCategoryBreakdown(
		[]uint32{50, 20, 20, 10},
		[]int64{5000, 2000, 2000, 1000},
	)
	if len(breakdown) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(breakdown))
	}
	want := Categories()
	for i, entry := range breakdown {
		if entry.Category != want[i] {
			t.Fatalf("entry %d: category %q, want %q", i, entry.Category, want[i])
		}
	}
	if breakdown[0].Amount != 5000 || breakdown[0].Percentage != 50 {
		t.Fatalf("spending entry mismatch: %+v", breakdown[0])
	}
	if breakdown[3].Amount != 1000 || breakdown[3].Percentage != 10 {
		t.Fatalf("insurance entry mismatch: %+v", breakdown[3])
	}
}

func TestNewCategoryBreakdownShortVectors(t *testing.T) {
	// Upstream vectors shorter than four are not an error: missing indices
	// report zero.
	breakdown := NewCategoryBreakdown([]uint32{50}, []int64{5000, 2000})
	if len(breakdown) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(breakdown))
	}
	if breakdown[1].Percentage != 0 || breakdown[1].Amount != 2000 {
		t.Fatalf("savings entry mismatch: %+v", breakdown[1])
	}
	for _, entry := range breakdown[2:] {
		if entry.Amount != 0 || entry.Percentage != 0 {
			t.Fatalf("expected zero entry, got %+v", entry)
		}
	}
}

func TestNewCategoryBreakdownEmptyVectors(t *testing.T) {
	breakdown := NewCategoryBreakdown(nil, nil)
	if len(breakdown) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(breakdown))
	}
	for _, entry := range breakdown {
		if entry.Amount != 0 || entry.Percentage != 0 {
			t.Fatalf("expected zero entry, got %+v", entry)
		}
	}
}

func TestNewRemittanceSummary(t *testing.T) {
	s := NewRemittanceSummary(10000, []uint32{50, 20, 20, 10}, []int64{5000, 2000, 2000, 1000}, 100, 200)
	if s.TotalReceived != 10000 || s.TotalAllocated != 10000 {
		t.Fatalf("totals mismatch: %+v", s)
	}
	if s.PeriodStart != 100 || s.PeriodEnd != 200 {
		t.Fatalf("period mismatch: %+v", s)
	}
	if len(s.CategoryBreakdown) != 4 {
		t.Fatalf("expected 4 breakdown entries, got %d", len(s.CategoryBreakdown))
	}
}
