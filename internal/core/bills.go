package core

// SummarizeBills reduces a system-wide bill list into the owner's
// compliance report. Bills are kept when they belong to owner and were
// created inside [periodStart, periodEnd], inclusive on both ends. An
// unpaid bill is overdue once its due date has passed now.
//
// With no bills in the window the compliance percentage is 100, not 0:
// absence of bills is vacuous full compliance. This is the one percentage
// in the system with a non-zero empty default.
func SummarizeBills(bills []Bill, owner string, periodStart, periodEnd, now uint64) (BillComplianceReport, error) {
	report := BillComplianceReport{
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
	}

	var err error
	for _, b := range bills {
		if b.Owner != owner {
			continue
		}
		if b.CreatedAt < periodStart || b.CreatedAt > periodEnd {
			continue
		}

		report.TotalBills++
		if report.TotalAmount, err = addAmount(report.TotalAmount, b.Amount); err != nil {
			return BillComplianceReport{}, err
		}

		if b.Paid {
			report.PaidBills++
			if report.PaidAmount, err = addAmount(report.PaidAmount, b.Amount); err != nil {
				return BillComplianceReport{}, err
			}
			continue
		}

		report.UnpaidBills++
		if report.UnpaidAmount, err = addAmount(report.UnpaidAmount, b.Amount); err != nil {
			return BillComplianceReport{}, err
		}
		if b.DueDate < now {
			report.OverdueBills++
		}
	}

	if report.TotalBills > 0 {
		report.CompliancePercentage = report.PaidBills * 100 / report.TotalBills
	} else {
		report.CompliancePercentage = 100
	}

	return report, nil
}
