package core

import (
	"errors"
	"math"
	"testing"
)

func TestAddAmount(t *testing.T) {
	cases := []struct {
		a, b int64
		out  int64
		ok   bool
	}{
		{0, 0, 0, true},
		{1, 2, 3, true},
		{-5, 3, -2, true},
		{math.MaxInt64, 0, math.MaxInt64, true},
		{math.MaxInt64, 1, 0, false},
		{math.MinInt64, -1, 0, false},
	}
	for i, tc := range cases {
		got, err := addAmount(tc.a, tc.b)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("case %d: got %d, err %v, want %d", i, got, err, tc.out)
			}
		} else if !errors.Is(err, ErrAmountOverflow) {
			t.Fatalf("case %d: expected overflow, got %d, err %v", i, got, err)
		}
	}
}

func TestSubAmount(t *testing.T) {
	if got, err := subAmount(150, 100); err != nil || got != 50 {
		t.Fatalf("got %d, err %v", got, err)
	}
	if got, err := subAmount(-100, 100); err != nil || got != -200 {
		t.Fatalf("got %d, err %v", got, err)
	}
	if _, err := subAmount(math.MinInt64, 1); !errors.Is(err, ErrAmountOverflow) {
		t.Fatalf("expected overflow, got %v", err)
	}
	if _, err := subAmount(0, math.MinInt64); !errors.Is(err, ErrAmountOverflow) {
		t.Fatalf("expected overflow, got %v", err)
	}
}

func TestMulAmount(t *testing.T) {
	cases := []struct {
		a, b int64
		out  int64
		ok   bool
	}{
		{0, math.MaxInt64, 0, true},
		{7, 12, 84, true},
		{-3, 12, -36, true},
		{math.MaxInt64, 2, 0, false},
		{math.MinInt64, 2, 0, false},
		{math.MinInt64, 1, math.MinInt64, true},
	}
	for i, tc := range cases {
		got, err := mulAmount(tc.a, tc.b)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("case %d: got %d, err %v, want %d", i, got, err, tc.out)
			}
		} else if !errors.Is(err, ErrAmountOverflow) {
			t.Fatalf("case %d: expected overflow, got %d, err %v", i, got, err)
		}
	}
}

func TestPercentOf(t *testing.T) {
	cases := []struct {
		part, whole int64
		out         uint32
	}{
		{50, 100, 50},
		{1, 3, 33},       // truncates toward zero
		{150, 100, 150},  // not capped here
		{10, 0, 0},       // zero denominator defaults to 0
		{10, -5, 0},      // negative denominator treated as empty
		{0, 100, 0},
	}
	for i, tc := range cases {
		got, err := percentOf(tc.part, tc.whole)
		if err != nil || got != tc.out {
			t.Fatalf("case %d: got %d, err %v, want %d", i, got, err, tc.out)
		}
	}

	if _, err := percentOf(math.MaxInt64, 7); !errors.Is(err, ErrAmountOverflow) {
		t.Fatalf("expected overflow, got %v", err)
	}
}
