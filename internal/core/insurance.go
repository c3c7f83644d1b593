package core

// SummarizeInsurance reduces an owner's active policies plus the
// collaborator-reported monthly premium total into the coverage report.
// The premium total is trusted as-is and never cross-checked against the
// policy list. Period bounds are carried but do not filter policies, the
// same asymmetry as the savings report.
func SummarizeInsurance(policies []InsurancePolicy, monthlyPremium int64, periodStart, periodEnd uint64) (InsuranceReport, error) {
	var (
		totalCoverage int64
		err           error
	)
	for _, p := range policies {
		if totalCoverage, err = addAmount(totalCoverage, p.CoverageAmount); err != nil {
			return InsuranceReport{}, err
		}
	}

	annualPremium, err := mulAmount(monthlyPremium, 12)
	if err != nil {
		return InsuranceReport{}, err
	}

	ratio, err := percentOf(totalCoverage, annualPremium)
	if err != nil {
		return InsuranceReport{}, err
	}

	return InsuranceReport{
		ActivePolicies:         uint32(len(policies)),
		TotalCoverage:          totalCoverage,
		MonthlyPremium:         monthlyPremium,
		AnnualPremium:          annualPremium,
		CoverageToPremiumRatio: ratio,
		PeriodStart:            periodStart,
		PeriodEnd:              periodEnd,
	}, nil
}
