package core

// SummarizeSavings reduces an owner's goals into the savings progress
// report. The period bounds are carried into the report but do not filter
// the goal list: every goal counts regardless of target date, which matches
// the bill report asymmetrically (bills do filter by period).
func SummarizeSavings(goals []SavingsGoal, periodStart, periodEnd uint64) (SavingsReport, error) {
	var (
		totalTarget int64
		totalSaved  int64
		completed   uint32
		err         error
	)
	for _, g := range goals {
		if totalTarget, err = addAmount(totalTarget, g.TargetAmount); err != nil {
			return SavingsReport{}, err
		}
		if totalSaved, err = addAmount(totalSaved, g.CurrentAmount); err != nil {
			return SavingsReport{}, err
		}
		if g.CurrentAmount >= g.TargetAmount {
			completed++
		}
	}

	pct, err := percentOf(totalSaved, totalTarget)
	if err != nil {
		return SavingsReport{}, err
	}

	return SavingsReport{
		TotalGoals:           uint32(len(goals)),
		CompletedGoals:       completed,
		TotalTarget:          totalTarget,
		TotalSaved:           totalSaved,
		CompletionPercentage: pct,
		PeriodStart:          periodStart,
		PeriodEnd:            periodEnd,
	}, nil
}
