package core

// Sub-score bounds. The composite score is their sum, so it always lands
// in [0,100].
const (
	savingsScoreMax     = 40
	savingsScoreNeutral = 20

	billsScoreClean   = 40
	billsScoreUnpaid  = 35
	billsScoreOverdue = 20

	insuranceScoreCovered = 20
)

// savingsScore awards 0-40 points proportional to aggregate goal progress,
// capped at 40 once progress exceeds 100%. With no targets at all the score
// is a neutral 20, not 0: having no goal pressure is not treated as failure.
func savingsScore(goals []SavingsGoal) (uint32, error) {
	var (
		totalTarget int64
		totalSaved  int64
		err         error
	)
	for _, g := range goals {
		if totalTarget, err = addAmount(totalTarget, g.TargetAmount); err != nil {
			return 0, err
		}
		if totalSaved, err = addAmount(totalSaved, g.CurrentAmount); err != nil {
			return 0, err
		}
	}

	if totalTarget <= 0 {
		return savingsScoreNeutral, nil
	}
	progress, err := percentOf(totalSaved, totalTarget)
	if err != nil {
		return 0, err
	}
	if progress > 100 {
		return savingsScoreMax, nil
	}
	return progress * savingsScoreMax / 100, nil
}

// billsScore is a threshold, not a proportion: 40 with nothing unpaid, 35
// with unpaid but nothing overdue, 20 as soon as a single bill is overdue.
func billsScore(unpaidBills []Bill, now uint64) uint32 {
	if len(unpaidBills) == 0 {
		return billsScoreClean
	}
	for _, b := range unpaidBills {
		if b.DueDate < now {
			return billsScoreOverdue
		}
	}
	return billsScoreUnpaid
}

// insuranceScore is binary: any active policy earns the full 20.
func insuranceScore(policies []InsurancePolicy) uint32 {
	if len(policies) > 0 {
		return insuranceScoreCovered
	}
	return 0
}

// CalculateHealthScore composes the three independently derived sub-scores
// into the 0-100 composite.
func CalculateHealthScore(goals []SavingsGoal, unpaidBills []Bill, policies []InsurancePolicy, now uint64) (HealthScore, error) {
	savings, err := savingsScore(goals)
	if err != nil {
		return HealthScore{}, err
	}
	bills := billsScore(unpaidBills, now)
	insurance := insuranceScore(policies)

	return HealthScore{
		Score:          savings + bills + insurance,
		SavingsScore:   savings,
		BillsScore:     bills,
		InsuranceScore: insurance,
	}, nil
}
