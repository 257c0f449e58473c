package simulation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cashsight/simulator/internal/models"
)

func scheduleLease(rent float64) models.Lease {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	return models.Lease{
		ID:            "lease-1",
		TenantID:      "tenant-1",
		UnitID:        "unit-1",
		PropertyID:    "prop-1",
		LeaseStart:    start,
		LeaseEnd:      start.AddDate(5, 0, 0),
		RentStartDate: start,
		MonthlyRent:   rent,
		LeaseType:     "Commercial",
		PaymentTiming: models.TimingAdvance,
		LeaseStatus:   models.LeaseActive,
	}
}

func TestSchedule_FixedEscalationCompoundsAnnually(t *testing.T) {
	g := testGenerator(20)
	lease := scheduleLease(1000)
	lease.EscalationType = models.EscalationFixedPct
	lease.EscalationRate = 0.10

	entries := g.Schedule([]models.Lease{lease}, 25)
	require.Len(t, entries, 25)

	assert.Equal(t, 1000.0, entries[0].Amount)
	assert.Equal(t, 1000.0, entries[11].Amount)
	assert.Equal(t, 1100.0, entries[12].Amount)
	assert.Equal(t, 1100.0, entries[23].Amount)
	assert.Equal(t, 1210.0, entries[24].Amount)
}

func TestSchedule_CPIAppliesFreshFactorToBaseRent(t *testing.T) {
	g := testGenerator(21)
	lease := scheduleLease(2000)
	lease.EscalationType = models.EscalationCPI

	entries := g.Schedule([]models.Lease{lease}, 36)
	require.Len(t, entries, 36)

	for i, e := range entries {
		if i < escalationBoundaryMonths {
			assert.Equal(t, 2000.0, e.Amount, "month %d", i)
			continue
		}
		// Factors multiply base rent, never the prior period, so the amount
		// stays inside one draw's band for the whole schedule.
		assert.GreaterOrEqual(t, e.Amount, 2000*cpiFactorLow-0.01, "month %d", i)
		assert.LessOrEqual(t, e.Amount, 2000*cpiFactorHigh+0.01, "month %d", i)
	}
}

func TestSchedule_NoEscalationKeepsBaseRent(t *testing.T) {
	g := testGenerator(22)
	lease := scheduleLease(1500)

	entries := g.Schedule([]models.Lease{lease}, 24)
	require.Len(t, entries, 24)
	for _, e := range entries {
		assert.Equal(t, 1500.0, e.Amount)
	}
}

func TestSchedule_FreeRentSuppressesLeadingMonths(t *testing.T) {
	g := testGenerator(23)
	lease := scheduleLease(1000)
	lease.FreeRentMonths = 2

	entries := g.Schedule([]models.Lease{lease}, 12)
	require.Len(t, entries, 10)

	wantFirst := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, entries[0].PeriodStart.Equal(wantFirst),
		"first billed period %v, want %v", entries[0].PeriodStart, wantFirst)
}

func TestSchedule_ProratesOnlyFirstEntry(t *testing.T) {
	g := testGenerator(24)
	lease := scheduleLease(3100)
	// Mid-month start in a 31-day month: 16 remaining days.
	lease.LeaseStart = time.Date(2024, time.January, 16, 0, 0, 0, 0, time.UTC)
	lease.RentStartDate = lease.LeaseStart
	lease.ProratedStart = true

	entries := g.Schedule([]models.Lease{lease}, 6)
	require.Len(t, entries, 6)

	assert.Equal(t, 1600.0, entries[0].Amount)
	assert.True(t, entries[0].IsProrated)
	for _, e := range entries[1:] {
		assert.Equal(t, 3100.0, e.Amount)
		assert.False(t, e.IsProrated)
	}
}

func TestSchedule_ArrearsShiftsBillDate(t *testing.T) {
	g := testGenerator(25)
	lease := scheduleLease(1000)
	lease.PaymentTiming = models.TimingArrears

	entries := g.Schedule([]models.Lease{lease}, 3)
	require.Len(t, entries, 3)

	for _, e := range entries {
		assert.Equal(t, models.BasisArrears, e.Basis)
		assert.True(t, e.DueDate.Equal(e.PeriodStart.AddDate(0, 1, 0)),
			"arrears bill date %v for period starting %v", e.DueDate, e.PeriodStart)
	}
}

func TestSchedule_AdvanceBillsAtPeriodStart(t *testing.T) {
	g := testGenerator(26)
	lease := scheduleLease(1000)

	entries := g.Schedule([]models.Lease{lease}, 3)
	require.Len(t, entries, 3)
	for _, e := range entries {
		assert.Equal(t, models.BasisAdvance, e.Basis)
		assert.True(t, e.DueDate.Equal(e.PeriodStart))
	}
}

func TestSchedule_CappedByLeaseTerm(t *testing.T) {
	g := testGenerator(27)
	lease := scheduleLease(1000)
	lease.LeaseEnd = lease.RentStartDate.AddDate(1, 0, 0)

	entries := g.Schedule([]models.Lease{lease}, 120)
	assert.Len(t, entries, 13)
}

func TestSchedule_EntriesAreMonthlyAndOrdered(t *testing.T) {
	g := testGenerator(28)
	lease := scheduleLease(1000)

	entries := g.Schedule([]models.Lease{lease}, 24)
	require.Len(t, entries, 24)

	for i := 1; i < len(entries); i++ {
		want := entries[i-1].PeriodStart.AddDate(0, 1, 0)
		assert.True(t, entries[i].PeriodStart.Equal(want),
			"entry %d period start %v, want %v", i, entries[i].PeriodStart, want)
		assert.True(t, entries[i].PeriodEnd.Equal(entries[i].PeriodStart.AddDate(0, 1, -1)))
	}
}

func TestScheduleDueBefore(t *testing.T) {
	g := testGenerator(29)
	lease := scheduleLease(1000)

	entries := g.Schedule([]models.Lease{lease}, 24)
	cutoff := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)

	past := ScheduleDueBefore(entries, cutoff)
	require.Len(t, past, 6)
	for _, e := range past {
		assert.True(t, e.DueDate.Before(cutoff))
	}
}

func TestScheduleDueOn(t *testing.T) {
	g := testGenerator(30)
	lease := scheduleLease(1000)

	entries := g.Schedule([]models.Lease{lease}, 24)
	day := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)

	due := ScheduleDueOn(entries, day)
	require.Len(t, due, 1)
	assert.True(t, due[0].DueDate.Equal(day))

	none := ScheduleDueOn(entries, day.AddDate(0, 0, 10))
	assert.Empty(t, none)
}
