package simulation

import (
	"time"

	"github.com/cashsight/simulator/internal/models"
)

// CPI escalation draws a fresh multiplier in this range for every period at
// or past the twelve-month boundary. The draw is applied to base rent each
// period rather than compounding from the prior period.
const (
	cpiFactorLow  = 1.01
	cpiFactorHigh = 1.04
)

// escalationBoundaryMonths is the schedule offset at which escalation
// begins to apply.
const escalationBoundaryMonths = 12

// Schedule expands each lease into a bounded, month-ordered sequence of
// billing entries. monthsOut caps how far past the rent start the schedule
// extends. Free-rent months are suppressed entirely, the first entry may be
// prorated, and the billed date shifts a month later for arrears leases.
func (g *Generator) Schedule(leases []models.Lease, monthsOut int) []models.BillingScheduleEntry {
	entries := []models.BillingScheduleEntry{}

	for _, lease := range leases {
		firstBillMonth := monthStart(lease.RentStartDate)
		termMonths := monthsBetween(firstBillMonth, lease.LeaseEnd)

		months := monthsOut
		if termMonths+1 < months {
			months = termMonths + 1
		}

		for i := 0; i < months; i++ {
			if i < lease.FreeRentMonths {
				continue
			}

			billMonth := firstBillMonth.AddDate(0, i, 0)
			periodStart := billMonth
			periodEnd := billMonth.AddDate(0, 1, -1)

			amount := g.effectiveRent(lease, i)

			prorated := false
			if i == 0 && lease.ProratedStart {
				days := daysInMonth(lease.LeaseStart)
				factor := float64(days-lease.LeaseStart.Day()+1) / float64(days)
				amount = round2(amount * factor)
				prorated = true
			}

			billDate := billMonth
			basis := models.BasisAdvance
			if lease.PaymentTiming != models.TimingAdvance {
				billDate = billMonth.AddDate(0, 1, 0)
				basis = models.BasisArrears
			}

			entries = append(entries, models.BillingScheduleEntry{
				ID:             newID(),
				LeaseID:        lease.ID,
				PropertyID:     lease.PropertyID,
				UnitID:         lease.UnitID,
				TenantID:       lease.TenantID,
				DueDate:        billDate,
				Amount:         amount,
				EscalationType: lease.EscalationType,
				IsProrated:     prorated,
				PeriodStart:    periodStart,
				PeriodEnd:      periodEnd,
				Basis:          basis,
				Year:           billMonth.Year(),
				MonthName:      billMonth.Month().String(),
			})
		}
	}
	return entries
}

// effectiveRent applies the lease's escalation rule at schedule offset i.
// Fixed % compounds once per elapsed twelve-month boundary; CPI applies a
// fresh random factor to base rent each period.
func (g *Generator) effectiveRent(lease models.Lease, i int) float64 {
	if i < escalationBoundaryMonths {
		return lease.MonthlyRent
	}

	switch lease.EscalationType {
	case models.EscalationFixedPct:
		rent := lease.MonthlyRent
		for steps := i / escalationBoundaryMonths; steps > 0; steps-- {
			rent *= 1 + lease.EscalationRate
		}
		return round2(rent)
	case models.EscalationCPI:
		return round2(lease.MonthlyRent * g.floatBetween(cpiFactorLow, cpiFactorHigh))
	default:
		return lease.MonthlyRent
	}
}

// ScheduleDueBefore filters a schedule to the entries billed strictly
// before the cutoff date.
func ScheduleDueBefore(entries []models.BillingScheduleEntry, cutoff time.Time) []models.BillingScheduleEntry {
	out := []models.BillingScheduleEntry{}
	for _, e := range entries {
		if e.DueDate.Before(cutoff) {
			out = append(out, e)
		}
	}
	return out
}

// ScheduleDueOn filters a schedule to the entries billed on the given day.
func ScheduleDueOn(entries []models.BillingScheduleEntry, day time.Time) []models.BillingScheduleEntry {
	y, m, d := day.Date()
	out := []models.BillingScheduleEntry{}
	for _, e := range entries {
		ey, em, ed := e.DueDate.Date()
		if ey == y && em == m && ed == d {
			out = append(out, e)
		}
	}
	return out
}
