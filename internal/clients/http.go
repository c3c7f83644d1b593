package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"finhealth/internal/core"
)

// HTTPDirectory builds JSON clients for collaborator base URLs over one
// shared http.Client. No retries and no local recovery: a failed call
// aborts the whole report invocation.
type HTTPDirectory struct {
	client *http.Client
}

func NewHTTPDirectory(timeout time.Duration) *HTTPDirectory {
	return &HTTPDirectory{
		client: &http.Client{Timeout: timeout},
	}
}

func (d *HTTPDirectory) RemittanceSplit(addr string) RemittanceSplit {
	return &remittanceSplitClient{base: strings.TrimRight(addr, "/"), client: d.client}
}

func (d *HTTPDirectory) SavingsGoals(addr string) SavingsGoals {
	return &savingsGoalsClient{base: strings.TrimRight(addr, "/"), client: d.client}
}

func (d *HTTPDirectory) BillPayments(addr string) BillPayments {
	return &billPaymentsClient{base: strings.TrimRight(addr, "/"), client: d.client}
}

func (d *HTTPDirectory) Insurance(addr string) Insurance {
	return &insuranceClient{base: strings.TrimRight(addr, "/"), client: d.client}
}

// getJSON performs a GET against a collaborator endpoint and decodes the
// JSON body into out. Any non-200 status is a collaborator failure.
func getJSON(ctx context.Context, client *http.Client, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("call %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain a little of the body for the error message.
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return fmt.Errorf("call %s: status %d: %s", rawURL, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", rawURL, err)
	}
	return nil
}

func ownerQuery(owner string) string {
	return "owner=" + url.QueryEscape(owner)
}

type remittanceSplitClient struct {
	base   string
	client *http.Client
}

func (c *remittanceSplitClient) GetSplit(ctx context.Context) ([]uint32, error) {
	var out struct {
		Percentages []uint32 `json:"percentages"`
	}
	if err := getJSON(ctx, c.client, c.base+"/split", &out); err != nil {
		return nil, err
	}
	return out.Percentages, nil
}

func (c *remittanceSplitClient) CalculateSplit(ctx context.Context, totalAmount int64) ([]int64, error) {
	var out struct {
		Amounts []int64 `json:"amounts"`
	}
	u := c.base + "/split/calculate?total_amount=" + strconv.FormatInt(totalAmount, 10)
	if err := getJSON(ctx, c.client, u, &out); err != nil {
		return nil, err
	}
	return out.Amounts, nil
}

type savingsGoalsClient struct {
	base   string
	client *http.Client
}

func (c *savingsGoalsClient) GetAllGoals(ctx context.Context, owner string) ([]core.SavingsGoal, error) {
	var out struct {
		Goals []core.SavingsGoal `json:"goals"`
	}
	if err := getJSON(ctx, c.client, c.base+"/goals?"+ownerQuery(owner), &out); err != nil {
		return nil, err
	}
	return out.Goals, nil
}

func (c *savingsGoalsClient) IsGoalCompleted(ctx context.Context, goalID uint32) (bool, error) {
	var out struct {
		Completed bool `json:"completed"`
	}
	u := fmt.Sprintf("%s/goals/%d/completed", c.base, goalID)
	if err := getJSON(ctx, c.client, u, &out); err != nil {
		return false, err
	}
	return out.Completed, nil
}

type billPaymentsClient struct {
	base   string
	client *http.Client
}

func (c *billPaymentsClient) GetUnpaidBills(ctx context.Context, owner string) ([]core.Bill, error) {
	var out struct {
		Bills []core.Bill `json:"bills"`
	}
	if err := getJSON(ctx, c.client, c.base+"/bills/unpaid?"+ownerQuery(owner), &out); err != nil {
		return nil, err
	}
	return out.Bills, nil
}

func (c *billPaymentsClient) GetTotalUnpaid(ctx context.Context, owner string) (int64, error) {
	var out struct {
		Total int64 `json:"total"`
	}
	if err := getJSON(ctx, c.client, c.base+"/bills/unpaid/total?"+ownerQuery(owner), &out); err != nil {
		return 0, err
	}
	return out.Total, nil
}

func (c *billPaymentsClient) GetAllBills(ctx context.Context) ([]core.Bill, error) {
	var out struct {
		Bills []core.Bill `json:"bills"`
	}
	if err := getJSON(ctx, c.client, c.base+"/bills", &out); err != nil {
		return nil, err
	}
	return out.Bills, nil
}

type insuranceClient struct {
	base   string
	client *http.Client
}

func (c *insuranceClient) GetActivePolicies(ctx context.Context, owner string) ([]core.InsurancePolicy, error) {
	var out struct {
		Policies []core.InsurancePolicy `json:"policies"`
	}
	if err := getJSON(ctx, c.client, c.base+"/policies/active?"+ownerQuery(owner), &out); err != nil {
		return nil, err
	}
	return out.Policies, nil
}

func (c *insuranceClient) GetTotalMonthlyPremium(ctx context.Context, owner string) (int64, error) {
	var out struct {
		MonthlyPremium int64 `json:"monthly_premium"`
	}
	if err := getJSON(ctx, c.client, c.base+"/premium/monthly?"+ownerQuery(owner), &out); err != nil {
		return 0, err
	}
	return out.MonthlyPremium, nil
}
