package core

import "errors"

const (
	CategorySpending  Category = "spending"
	CategorySavings   Category = "savings"
	CategoryBills     Category = "bills"
	CategoryInsurance Category = "insurance"
)

type (
	// Category identifies one of the four fixed allocation buckets every
	// remittance is split across.
	Category string

	// CategoryBreakdown pairs one category with its allocated amount and
	// split percentage for a single reporting period.
	CategoryBreakdown struct {
		Category   Category `json:"category"`
		Amount     int64    `json:"amount"`
		Percentage uint32   `json:"percentage"`
	}

	// RemittanceSummary reports how a received total was allocated across
	// the four categories. CategoryBreakdown always has exactly one entry
	// per category, in the fixed order returned by Categories.
	RemittanceSummary struct {
		TotalReceived     int64               `json:"total_received"`
		TotalAllocated    int64               `json:"total_allocated"`
		CategoryBreakdown []CategoryBreakdown `json:"category_breakdown"`
		PeriodStart       uint64              `json:"period_start"`
		PeriodEnd         uint64              `json:"period_end"`
	}

	// SavingsReport aggregates an owner's savings goals. CompletedGoals
	// never exceeds TotalGoals; a goal counts as complete once its current
	// amount reaches its target.
	SavingsReport struct {
		TotalGoals           uint32 `json:"total_goals"`
		CompletedGoals       uint32 `json:"completed_goals"`
		TotalTarget          int64  `json:"total_target"`
		TotalSaved           int64  `json:"total_saved"`
		CompletionPercentage uint32 `json:"completion_percentage"`
		PeriodStart          uint64 `json:"period_start"`
		PeriodEnd            uint64 `json:"period_end"`
	}

	// BillComplianceReport aggregates an owner's bills created inside the
	// reporting window. PaidBills+UnpaidBills always equals TotalBills and
	// PaidAmount+UnpaidAmount always equals TotalAmount.
	BillComplianceReport struct {
		TotalBills           uint32 `json:"total_bills"`
		PaidBills            uint32 `json:"paid_bills"`
		UnpaidBills          uint32 `json:"unpaid_bills"`
		OverdueBills         uint32 `json:"overdue_bills"`
		TotalAmount          int64  `json:"total_amount"`
		PaidAmount           int64  `json:"paid_amount"`
		UnpaidAmount         int64  `json:"unpaid_amount"`
		CompliancePercentage uint32 `json:"compliance_percentage"`
		PeriodStart          uint64 `json:"period_start"`
		PeriodEnd            uint64 `json:"period_end"`
	}

	// InsuranceReport aggregates an owner's active policies. AnnualPremium
	// is always MonthlyPremium times twelve.
	InsuranceReport struct {
		ActivePolicies         uint32 `json:"active_policies"`
		TotalCoverage          int64  `json:"total_coverage"`
		MonthlyPremium         int64  `json:"monthly_premium"`
		AnnualPremium          int64  `json:"annual_premium"`
		CoverageToPremiumRatio uint32 `json:"coverage_to_premium_ratio"`
		PeriodStart            uint64 `json:"period_start"`
		PeriodEnd              uint64 `json:"period_end"`
	}

	// HealthScore is the composite 0-100 financial health metric. Score is
	// always the sum of the three sub-scores.
	HealthScore struct {
		Score          uint32 `json:"score"`
		SavingsScore   uint32 `json:"savings_score"`
		BillsScore     uint32 `json:"bills_score"`
		InsuranceScore uint32 `json:"insurance_score"`
	}

	// FinancialHealthReport is the composite record assembled by a single
	// report request. It is read-only once generated.
	FinancialHealthReport struct {
		HealthScore       HealthScore          `json:"health_score"`
		RemittanceSummary RemittanceSummary    `json:"remittance_summary"`
		SavingsReport     SavingsReport        `json:"savings_report"`
		BillCompliance    BillComplianceReport `json:"bill_compliance"`
		InsuranceReport   InsuranceReport      `json:"insurance_report"`
		GeneratedAt       uint64               `json:"generated_at"`
	}

	// TrendData compares one scalar amount across two periods.
	TrendData struct {
		CurrentAmount    int64 `json:"current_amount"`
		PreviousAmount   int64 `json:"previous_amount"`
		ChangeAmount     int64 `json:"change_amount"`
		ChangePercentage int32 `json:"change_percentage"`
	}

	// ContractAddresses is the singleton record of configured collaborator
	// endpoints. FamilyWallet is carried in the record but no report
	// operation reads from it yet.
	ContractAddresses struct {
		RemittanceSplit string `json:"remittance_split"`
		SavingsGoals    string `json:"savings_goals"`
		BillPayments    string `json:"bill_payments"`
		Insurance       string `json:"insurance"`
		FamilyWallet    string `json:"family_wallet"`
	}
)

// Raw records owned by the upstream domain services. The engine consumes
// them as-is and never re-derives their per-domain figures.
type (
	SavingsGoal struct {
		ID            uint32 `json:"id"`
		Owner         string `json:"owner"`
		Name          string `json:"name"`
		TargetAmount  int64  `json:"target_amount"`
		CurrentAmount int64  `json:"current_amount"`
		TargetDate    uint64 `json:"target_date"`
		Locked        bool   `json:"locked"`
	}

	Bill struct {
		ID            uint32  `json:"id"`
		Owner         string  `json:"owner"`
		Name          string  `json:"name"`
		Amount        int64   `json:"amount"`
		DueDate       uint64  `json:"due_date"`
		Recurring     bool    `json:"recurring"`
		FrequencyDays uint32  `json:"frequency_days"`
		Paid          bool    `json:"paid"`
		CreatedAt     uint64  `json:"created_at"`
		PaidAt        *uint64 `json:"paid_at,omitempty"`
	}

	InsurancePolicy struct {
		ID              uint32 `json:"id"`
		Owner           string `json:"owner"`
		Name            string `json:"name"`
		CoverageType    string `json:"coverage_type"`
		MonthlyPremium  int64  `json:"monthly_premium"`
		CoverageAmount  int64  `json:"coverage_amount"`
		Active          bool   `json:"active"`
		NextPaymentDate uint64 `json:"next_payment_date"`
	}
)

var (
	ErrNotInitialized     = errors.New("admin not initialized")
	ErrAlreadyInitialized = errors.New("admin already initialized")
	ErrNotConfigured      = errors.New("collaborator addresses not configured")
	ErrUnauthorized       = errors.New("caller is not authorized")
	ErrReportNotFound     = errors.New("report not found")
	ErrCollaborator       = errors.New("collaborator call failed")
)

// Categories returns the fixed breakdown order shared by every report.
func Categories() [4]Category {
	return [4]Category{CategorySpending, CategorySavings, CategoryBills, CategoryInsurance}
}

// Validate checks that every consumed collaborator endpoint is present.
// FamilyWallet may stay empty since no report operation reads from it.
func (a ContractAddresses) Validate() error {
	switch "" {
	case a.RemittanceSplit:
		return errors.New("remittance split address is empty")
	case a.SavingsGoals:
		return errors.New("savings goals address is empty")
	case a.BillPayments:
		return errors.New("bill payments address is empty")
	case a.Insurance:
		return errors.New("insurance address is empty")
	}
	return nil
}
