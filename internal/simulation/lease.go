package simulation

import (
	"github.com/cashsight/simulator/internal/models"
)

// Rent and deposit constants. CAM is a flat per-square-foot add-on; the
// deposit floor is 10% of annual rent.
const (
	camRatePerSqFt       = 1.5
	depositAnnualPercent = 0.10
	fixedEscalationRate  = 0.03
)

// Leases originates one lease per occupied unit: a random tenant, a
// type-specific term and rent rate, a credit-tiered deposit, and the rent
// timing flags the schedule engine consumes.
func (g *Generator) Leases(properties []models.Property, tenants []models.Tenant, units []models.Unit) []models.Lease {
	if len(tenants) == 0 {
		return []models.Lease{}
	}

	propertyByID := make(map[string]models.Property, len(properties))
	for _, p := range properties {
		propertyByID[p.ID] = p
	}

	var leases []models.Lease
	for _, unit := range units {
		if unit.OccupancyStatus != models.OccupancyOccupied {
			continue
		}

		prop, ok := propertyByID[unit.PropertyID]
		if !ok {
			continue
		}

		tenant := tenants[g.rng.Intn(len(tenants))]

		startDate := g.asOf
		if unit.LastVacated != nil {
			startDate = *unit.LastVacated
		}

		propType := prop.Type
		terms, ok := leaseTermYearsByType[propType]
		if !ok {
			terms = leaseTermYearsByType[DefaultKey]
		}
		termYears := terms.Values[g.weightedIndex(terms.Weights)]
		endDate := startDate.AddDate(0, 0, termYears*365)

		rates, ok := rentPerSqFtByType[propType]
		if !ok {
			rates = rentPerSqFtByType[DefaultKey]
		}
		baseRate := g.floatBetween(rates.Low, rates.High)
		baseRent := float64(unit.SqFt) * baseRate / 12
		camCharges := float64(unit.SqFt) * camRatePerSqFt
		monthlyRent := round2(baseRent + camCharges)

		deposit := g.depositFor(monthlyRent, tenant.CreditScore, propType)

		status := models.LeaseActive
		if endDate.Before(g.asOf) {
			status = models.LeaseTerminated
		} else if startDate.After(g.asOf) {
			status = models.LeasePending
		}

		renewWeights, ok := autoRenewWeightsByType[propType]
		if !ok {
			renewWeights = autoRenewWeightsByType[DefaultKey]
		}
		autoRenew := g.weightedIndex(renewWeights[:]) == 0

		timing := models.TimingArrears
		switch propType {
		case "Office", "Retail", "Mixed-Use":
			timing = models.TimingAdvance
		}

		escalation := [3]models.EscalationType{
			models.EscalationFixedPct,
			models.EscalationCPI,
			models.EscalationNone,
		}[g.rng.Intn(3)]
		escalationRate := 0.0
		if escalation == models.EscalationFixedPct {
			escalationRate = fixedEscalationRate
		}

		fixedCommencement := g.coinFlip()
		deferralMonths := []int{0, 0, 1, 2}[g.rng.Intn(4)]
		freeRentMonths := []int{0, 0, 1, 2, 3}[g.rng.Intn(5)]
		prorated := startDate.Day() > 1

		rentStart := startDate
		if fixedCommencement {
			rentStart = monthStart(startDate).AddDate(0, 1, 0)
		}
		rentStart = rentStart.AddDate(0, deferralMonths, 0)

		leases = append(leases, models.Lease{
			ID:                         newID(),
			TenantID:                   tenant.ID,
			UnitID:                     unit.ID,
			PropertyID:                 unit.PropertyID,
			LeaseStart:                 startDate,
			LeaseEnd:                   endDate,
			RentStartDate:              rentStart,
			DepositAmount:              deposit,
			MonthlyRent:                monthlyRent,
			PaymentTiming:              timing,
			LeaseStatus:                status,
			AutoRenew:                  autoRenew,
			LeaseType:                  "Commercial",
			LateFeeTerms:               "5% after 5 days",
			EarlyTerminationClause:     "2 months rent",
			ProratedStart:              prorated,
			EscalationClause:           g.coinFlip(),
			ExpenseReimbursementClause: g.coinFlip(),
			EscalationType:             escalation,
			EscalationRate:             escalationRate,
			FixedRentCommencement:      fixedCommencement,
			RentDeferralMonths:         deferralMonths,
			FreeRentMonths:             freeRentMonths,
		})
	}
	return leases
}

// depositFor blends a credit-risk multiplier (escalating as the score drops
// below the 750 and 650 tiers) with the property-category multiplier, and
// floors the result at 10% of annual rent.
func (g *Generator) depositFor(monthlyRent float64, creditScore int, propType string) float64 {
	riskMultiplier := 3.0
	switch {
	case creditScore >= 750:
		riskMultiplier = 1.0
	case creditScore >= 650:
		riskMultiplier = 2.0
	}

	categoryMultiplier, ok := depositCategoryMultiplier[propType]
	if !ok {
		categoryMultiplier = depositCategoryMultiplier[DefaultKey]
	}

	byMultiplier := monthlyRent * riskMultiplier * categoryMultiplier
	byAnnualPercent := monthlyRent * 12 * depositAnnualPercent
	if byAnnualPercent > byMultiplier {
		return round2(byAnnualPercent)
	}
	return round2(byMultiplier)
}
