package simulation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cashsight/simulator/internal/models"
)

// Default bounds for the user draw when no explicit count is requested.
const (
	DefaultUserCountMin = 5
	DefaultUserCountMax = 10
)

var (
	// ErrInvalidUserCount is returned before any generation work when a
	// negative user count is requested.
	ErrInvalidUserCount = errors.New("user count must not be negative")

	// ErrNoOccupiedUnits is returned when no property has a single occupied
	// unit, which makes tenant assignment (and the rest of the pipeline)
	// impossible.
	ErrNoOccupiedUnits = errors.New("no occupied units available across all properties")
)

// Users generates count back-office users with unique zero-padded ids.
func (g *Generator) Users(count int) ([]models.User, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidUserCount, count)
	}

	ids := g.uniqueUserIDs(count, 6)
	users := make([]models.User, 0, count)
	for i := 0; i < count; i++ {
		users = append(users, models.User{
			ID:       newID(),
			UserID:   ids[i],
			UserName: g.fake.Name(),
		})
	}
	return users, nil
}

// UsersDefault generates a user population whose size is drawn from
// [DefaultUserCountMin, DefaultUserCountMax].
func (g *Generator) UsersDefault() ([]models.User, error) {
	return g.Users(g.intBetween(DefaultUserCountMin, DefaultUserCountMax))
}

// uniqueUserIDs draws count distinct ids of the form U-prefix + idLength
// zero-padded digits.
func (g *Generator) uniqueUserIDs(count, idLength int) []string {
	limit := 1
	for i := 0; i < idLength; i++ {
		limit *= 10
	}

	seen := make(map[string]struct{}, count)
	ids := make([]string, 0, count)
	for len(ids) < count {
		id := fmt.Sprintf("U%0*d", idLength, g.rng.Intn(limit))
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

// Vendors generates count vendors with a weighted category draw and
// creator/modifier attribution sampled from the user population.
func (g *Generator) Vendors(users []models.User, count int) []models.Vendor {
	vendors := make([]models.Vendor, 0, count)

	weights := make([]float64, len(vendorCategories))
	for i, c := range vendorCategories {
		weights[i] = c.Weight
	}

	for i := 0; i < count; i++ {
		cat := vendorCategories[g.weightedIndex(weights)]
		suffix := cat.Suffixes[g.rng.Intn(len(cat.Suffixes))]

		name := g.fake.Company()
		if g.rng.Float64() < 0.75 {
			name = g.fake.LastName() + " " + suffix
		}

		creator := users[g.rng.Intn(len(users))].UserID
		modifier := creator
		if g.rng.Float64() >= 0.7 {
			modifier = users[g.rng.Intn(len(users))].UserID
		}

		createdAt := g.dateBetween(g.asOf.AddDate(-10, 0, 0), g.asOf)
		modifiedAt := g.dateBetween(createdAt, g.asOf)

		status := models.VendorActive
		if g.rng.Float64() >= 0.9 {
			status = models.VendorInactive
		}

		vendors = append(vendors, models.Vendor{
			ID:           newID(),
			Name:         name,
			ServiceType:  cat.Name,
			Address:      strings.ReplaceAll(g.fake.Address().Address, "\n", ", "),
			ContactName:  g.fake.Name(),
			ContactEmail: g.fake.Email(),
			Phone:        g.fake.Phone(),
			TaxID:        g.fake.SSN(),
			Status:       status,
			Approved:     g.coinFlip(),
			CreatedBy:    creator,
			CreatedAt:    createdAt,
			ModifiedBy:   modifier,
			ModifiedAt:   modifiedAt,
		})
	}
	return vendors
}

// Units expands each property into its units, assigning exactly
// round(occupancyRate * unitCount) units to Occupied via sampling without
// replacement of unit indices.
func (g *Generator) Units(properties []models.Property) []models.Unit {
	var units []models.Unit

	for _, prop := range properties {
		if prop.Units <= 0 {
			continue
		}

		avgSqFt := 0
		if prop.Units > 0 {
			avgSqFt = prop.TotalSqFt / prop.Units
		}

		floors := prop.Floors
		if floors < 1 {
			floors = 1
		}

		numOccupied := int(float64(prop.Units)*prop.OccupancyRate + 0.5)
		if numOccupied > prop.Units {
			numOccupied = prop.Units
		}
		occupied := g.sampleIndices(prop.Units, numOccupied)

		renovationFloor := time.Date(prop.YearBuilt, time.January, 1, 0, 0, 0, 0, time.UTC)

		for i := 0; i < prop.Units; i++ {
			floorNumber := g.intBetween(1, floors)
			createdAt := g.dateBetween(g.asOf.AddDate(-10, 0, 0), g.asOf.AddDate(-1, 0, 0))
			modifiedAt := g.dateBetween(createdAt, g.asOf)

			unit := models.Unit{
				ID:              newID(),
				PropertyID:      prop.ID,
				UnitNumber:      fmt.Sprintf("%02d%03d", floorNumber, i+1),
				FloorNumber:     floorNumber,
				SqFt:            avgSqFt,
				OccupancyStatus: models.OccupancyVacant,
				LastRenovated:   g.dateBetween(renovationFloor, g.asOf),
				CreatedAt:       createdAt,
				ModifiedAt:      modifiedAt,
			}

			if _, ok := occupied[i]; ok {
				unit.OccupancyStatus = models.OccupancyOccupied
				vacated := g.dateBetween(g.asOf.AddDate(-5, 0, 0), g.asOf)
				unit.LastVacated = &vacated
			} else {
				occupiedAt := g.dateBetween(g.asOf.AddDate(-5, 0, 0), g.asOf)
				unit.LastOccupied = &occupiedAt
			}

			units = append(units, unit)
		}
	}
	return units
}

// sampleIndices draws k distinct indices from [0, n) without replacement.
func (g *Generator) sampleIndices(n, k int) map[int]struct{} {
	perm := g.rng.Perm(n)
	out := make(map[int]struct{}, k)
	for i := 0; i < k && i < n; i++ {
		out[perm[i]] = struct{}{}
	}
	return out
}

// Tenants assigns exactly one tenant to every occupied unit, drawing
// industry and move-in reason from the category lookup keyed by the owning
// property's subtype. It fails hard when no occupied units exist anywhere.
func (g *Generator) Tenants(properties []models.Property, units []models.Unit) ([]models.Tenant, error) {
	propertyByID := make(map[string]models.Property, len(properties))
	for _, p := range properties {
		propertyByID[p.ID] = p
	}

	var occupied []models.Unit
	for _, u := range units {
		if u.OccupancyStatus == models.OccupancyOccupied {
			occupied = append(occupied, u)
		}
	}
	if len(occupied) == 0 {
		return nil, ErrNoOccupiedUnits
	}

	g.rng.Shuffle(len(occupied), func(i, j int) {
		occupied[i], occupied[j] = occupied[j], occupied[i]
	})

	tenants := make([]models.Tenant, 0, len(occupied))
	for _, unit := range occupied {
		prop, ok := propertyByID[unit.PropertyID]
		if !ok {
			continue
		}

		category := categoryFor(prop.Subtype)
		industries := industriesByCategory[category]
		reasons := moveInReasonsByCategory[category]

		tenants = append(tenants, models.Tenant{
			ID:             newID(),
			PropertyID:     unit.PropertyID,
			UnitID:         unit.ID,
			BusinessName:   g.fake.Company(),
			PrimaryContact: g.fake.Name(),
			Email:          g.fake.Email(),
			Phone:          g.fake.Phone(),
			Industry:       industries[g.rng.Intn(len(industries))],
			AnnualRevenue:  revenueBands[g.rng.Intn(len(revenueBands))],
			EmployeeCount:  g.employeeCount(category),
			CreditScore:    g.intBetween(580, 820),
			LeaseStartDate: unit.LastVacated,
			MoveInReason:   reasons[g.rng.Intn(len(reasons))],
		})
	}
	return tenants, nil
}

var revenueBands = []string{"<1M", "1M–5M", "5M–25M", "25M+"}

func (g *Generator) employeeCount(category string) int {
	switch category {
	case "Retail":
		return g.intBetween(5, 30)
	case "Office":
		return g.intBetween(20, 200)
	default:
		return g.intBetween(50, 500)
	}
}
