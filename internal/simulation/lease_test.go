package simulation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cashsight/simulator/internal/models"
)

func buildPopulation(t *testing.T, g *Generator, prop models.Property) ([]models.Unit, []models.Tenant) {
	t.Helper()
	units := g.Units([]models.Property{prop})
	tenants, err := g.Tenants([]models.Property{prop}, units)
	require.NoError(t, err)
	return units, tenants
}

func TestLeases_OnePerOccupiedUnit(t *testing.T) {
	g := testGenerator(10)
	prop := testProperty("p1", 10, 0.6)
	units, tenants := buildPopulation(t, g, prop)

	leases := g.Leases([]models.Property{prop}, tenants, units)
	require.Len(t, leases, 6)

	seen := make(map[string]struct{})
	for _, l := range leases {
		_, dup := seen[l.UnitID]
		assert.False(t, dup, "unit %s has two leases", l.UnitID)
		seen[l.UnitID] = struct{}{}
		assert.Equal(t, "p1", l.PropertyID)
		assert.Equal(t, "Commercial", l.LeaseType)
	}
}

func TestLeases_RentCoversCAMCharges(t *testing.T) {
	g := testGenerator(11)
	prop := testProperty("p1", 10, 0.6)
	units, tenants := buildPopulation(t, g, prop)

	rates := rentPerSqFtByType[prop.Type]
	leases := g.Leases([]models.Property{prop}, tenants, units)
	require.NotEmpty(t, leases)

	for _, l := range leases {
		sqft := 1200.0
		minRent := sqft*rates.Low/12 + sqft*camRatePerSqFt
		maxRent := sqft*rates.High/12 + sqft*camRatePerSqFt
		assert.GreaterOrEqual(t, l.MonthlyRent, minRent-0.01)
		assert.LessOrEqual(t, l.MonthlyRent, maxRent+0.01)
	}
}

func TestLeases_StatusDerivedFromTerm(t *testing.T) {
	g := testGenerator(12)
	prop := testProperty("p1", 4, 1.0)
	units, tenants := buildPopulation(t, g, prop)

	// Push every occupied unit's turnover date far into the past so no term
	// can reach the as-of date.
	ancient := testAsOf.AddDate(-30, 0, 0)
	for i := range units {
		if units[i].OccupancyStatus == models.OccupancyOccupied {
			units[i].LastVacated = &ancient
		}
	}

	leases := g.Leases([]models.Property{prop}, tenants, units)
	require.NotEmpty(t, leases)
	for _, l := range leases {
		assert.Equal(t, models.LeaseTerminated, l.LeaseStatus)
		assert.True(t, l.LeaseEnd.Before(testAsOf))
	}
}

func TestLeases_PaymentTimingByPropertyType(t *testing.T) {
	tests := []struct {
		propType string
		want     models.PaymentTiming
	}{
		{"Office", models.TimingAdvance},
		{"Retail", models.TimingAdvance},
		{"Mixed-Use", models.TimingAdvance},
		{"Industrial", models.TimingArrears},
		{"Commercial", models.TimingArrears},
	}

	for _, tt := range tests {
		t.Run(tt.propType, func(t *testing.T) {
			g := testGenerator(13)
			prop := testProperty("p1", 6, 0.5)
			prop.Type = tt.propType
			units, tenants := buildPopulation(t, g, prop)

			leases := g.Leases([]models.Property{prop}, tenants, units)
			require.NotEmpty(t, leases)
			for _, l := range leases {
				assert.Equal(t, tt.want, l.PaymentTiming)
			}
		})
	}
}

func TestLeases_RentStartHonorsCommencementAndDeferral(t *testing.T) {
	g := testGenerator(14)
	prop := testProperty("p1", 10, 0.8)
	units, tenants := buildPopulation(t, g, prop)

	leases := g.Leases([]models.Property{prop}, tenants, units)
	require.NotEmpty(t, leases)

	for _, l := range leases {
		expected := l.LeaseStart
		if l.FixedRentCommencement {
			expected = time.Date(expected.Year(), expected.Month(), 1, 0, 0, 0, 0, expected.Location()).AddDate(0, 1, 0)
		}
		expected = expected.AddDate(0, l.RentDeferralMonths, 0)
		assert.True(t, l.RentStartDate.Equal(expected),
			"rent start %v, expected %v (commencement=%v deferral=%d)",
			l.RentStartDate, expected, l.FixedRentCommencement, l.RentDeferralMonths)

		assert.Equal(t, l.LeaseStart.Day() > 1, l.ProratedStart)

		if l.EscalationType == models.EscalationFixedPct {
			assert.Equal(t, fixedEscalationRate, l.EscalationRate)
		} else {
			assert.Zero(t, l.EscalationRate)
		}
	}
}

func TestDepositFor_TiersAndFloor(t *testing.T) {
	g := testGenerator(15)

	// Strong credit in a low-multiplier category: the 10% annual floor wins
	// over one month of rent.
	industrial := g.depositFor(1000, 800, "Industrial")
	assert.Equal(t, 1200.0, industrial)

	// Weak credit triples the multiplier; 1000 * 3 * 1.0 beats the floor.
	weak := g.depositFor(1000, 600, "Industrial")
	assert.Equal(t, 3000.0, weak)

	// Mid tier in Retail: 1000 * 2 * 2.0.
	mid := g.depositFor(1000, 700, "Retail")
	assert.Equal(t, 4000.0, mid)

	// Unknown property types use the named default multiplier.
	fallback := g.depositFor(1000, 800, "Bowling Alley")
	assert.Equal(t, g.depositFor(1000, 800, DefaultKey), fallback)
}
