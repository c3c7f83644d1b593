package core

// AnalyzeTrend compares two period amounts. The change percentage truncates
// toward zero against the previous amount. With no positive previous
// amount, any move from zero to positive reports exactly +100, never more,
// and zero to zero reports 0.
func AnalyzeTrend(currentAmount, previousAmount int64) (TrendData, error) {
	change, err := subAmount(currentAmount, previousAmount)
	if err != nil {
		return TrendData{}, err
	}

	var pct int32
	switch {
	case previousAmount > 0:
		scaled, err := mulAmount(change, 100)
		if err != nil {
			return TrendData{}, err
		}
		pct = int32(scaled / previousAmount)
	case currentAmount > 0:
		pct = 100
	default:
		pct = 0
	}

	return TrendData{
		CurrentAmount:    currentAmount,
		PreviousAmount:   previousAmount,
		ChangeAmount:     change,
		ChangePercentage: pct,
	}, nil
}
