package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newDirectory() *HTTPDirectory {
	return NewHTTPDirectory(2 * time.Second)
}

func TestRemittanceSplitClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/split":
			w.Write([]byte(`{"percentages":[50,20,20,10]}`))
		case "/split/calculate":
			if got := r.URL.Query().Get("total_amount"); got != "10000" {
				t.Errorf("total_amount = %q, want 10000", got)
			}
			w.Write([]byte(`{"amounts":[5000,2000,2000,1000]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := newDirectory().RemittanceSplit(srv.URL)

	percentages, err := c.GetSplit(context.Background())
	if err != nil {
		t.Fatalf("GetSplit: %v", err)
	}
	if len(percentages) != 4 || percentages[0] != 50 {
		t.Fatalf("percentages mismatch: %v", percentages)
	}

	amounts, err := c.CalculateSplit(context.Background(), 10000)
	if err != nil {
		t.Fatalf("CalculateSplit: %v", err)
	}
	if len(amounts) != 4 || amounts[0] != 5000 {
		t.Fatalf("amounts mismatch: %v", amounts)
	}
}

func TestSavingsGoalsClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/goals":
			if got := r.URL.Query().Get("owner"); got != "alice" {
				t.Errorf("owner = %q, want alice", got)
			}
			w.Write([]byte(`{"goals":[{"id":7,"owner":"alice","name":"car","target_amount":1000,"current_amount":250}]}`))
		case "/goals/7/completed":
			w.Write([]byte(`{"completed":false}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := newDirectory().SavingsGoals(srv.URL)

	goals, err := c.GetAllGoals(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GetAllGoals: %v", err)
	}
	if len(goals) != 1 || goals[0].ID != 7 || goals[0].TargetAmount != 1000 {
		t.Fatalf("goals mismatch: %+v", goals)
	}

	done, err := c.IsGoalCompleted(context.Background(), 7)
	if err != nil {
		t.Fatalf("IsGoalCompleted: %v", err)
	}
	if done {
		t.Fatal("expected goal to be incomplete")
	}
}

func TestBillPaymentsClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/bills":
			w.Write([]byte(`{"bills":[{"id":1,"owner":"alice","amount":300,"paid":true,"created_at":150}]}`))
		case "/bills/unpaid":
			w.Write([]byte(`{"bills":[]}`))
		case "/bills/unpaid/total":
			w.Write([]byte(`{"total":0}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := newDirectory().BillPayments(srv.URL)

	bills, err := c.GetAllBills(context.Background())
	if err != nil {
		t.Fatalf("GetAllBills: %v", err)
	}
	if len(bills) != 1 || bills[0].Amount != 300 || !bills[0].Paid {
		t.Fatalf("bills mismatch: %+v", bills)
	}

	unpaid, err := c.GetUnpaidBills(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GetUnpaidBills: %v", err)
	}
	if len(unpaid) != 0 {
		t.Fatalf("expected no unpaid bills, got %+v", unpaid)
	}

	total, err := c.GetTotalUnpaid(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GetTotalUnpaid: %v", err)
	}
	if total != 0 {
		t.Fatalf("total = %d, want 0", total)
	}
}

func TestInsuranceClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/policies/active":
			w.Write([]byte(`{"policies":[{"id":3,"owner":"alice","coverage_amount":100000,"monthly_premium":60,"active":true}]}`))
		case "/premium/monthly":
			w.Write([]byte(`{"monthly_premium":60}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := newDirectory().Insurance(srv.URL)

	policies, err := c.GetActivePolicies(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GetActivePolicies: %v", err)
	}
	if len(policies) != 1 || policies[0].CoverageAmount != 100000 {
		t.Fatalf("policies mismatch: %+v", policies)
	}

	premium, err := c.GetTotalMonthlyPremium(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GetTotalMonthlyPremium: %v", err)
	}
	if premium != 60 {
		t.Fatalf("premium = %d, want 60", premium)
	}
}

func TestCollaboratorErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal fault", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newDirectory().RemittanceSplit(srv.URL)
	if _, err := c.GetSplit(context.Background()); err == nil {
		t.Fatal("expected error on non-200 status")
	}
}

func TestCollaboratorUnreachable(t *testing.T) {
	// A closed server simulates an unreachable address.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := newDirectory().SavingsGoals(srv.URL)
	if _, err := c.GetAllGoals(context.Background(), "alice"); err == nil {
		t.Fatal("expected error on unreachable collaborator")
	}
}
