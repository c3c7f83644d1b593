package core

// NewCategoryBreakdown zips a split percentage vector and a split amount
// vector into the fixed four-category breakdown. Both vectors are indexed in
// category order; a vector shorter than four is not an error, the missing
// entries simply report zero.
func NewCategoryBreakdown(percentages []uint32, amounts []int64) []CategoryBreakdown {
	cats := Categories()
	breakdown := make([]CategoryBreakdown, 0, len(cats))
	for i, cat := range cats {
		entry := CategoryBreakdown{Category: cat}
		if i < len(amounts) {
			entry.Amount = amounts[i]
		}
		if i < len(percentages) {
			entry.Percentage = percentages[i]
		}
		breakdown = append(breakdown, entry)
	}
	return breakdown
}

// NewRemittanceSummary builds the remittance summary for a caller-supplied
// total. TotalReceived and TotalAllocated are reported equal by
// construction: the split is assumed to allocate the full total. Period
// bounds are carried through unvalidated; ordering them is the caller's
// responsibility.
func NewRemittanceSummary(totalAmount int64, percentages []uint32, amounts []int64, periodStart, periodEnd uint64) RemittanceSummary {
	return RemittanceSummary{
		TotalReceived:     totalAmount,
		TotalAllocated:    totalAmount,
		CategoryBreakdown: NewCategoryBreakdown(percentages, amounts),
		PeriodStart:       periodStart,
		PeriodEnd:         periodEnd,
	}
}
