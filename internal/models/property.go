package models

import (
	"time"
)

// OccupancyStatus describes whether a unit currently has a tenant.
type OccupancyStatus string

const (
	OccupancyOccupied OccupancyStatus = "Occupied"
	OccupancyVacant   OccupancyStatus = "Vacant"
)

// Property represents a commercial property from the seed listing.
// Properties are inputs to the simulation, not outputs; the id is assigned
// at load time when the seed file does not carry one.
type Property struct {
	ID            string
	Name          string
	Type          string
	Subtype       string
	Units         int
	Floors        int
	TotalSqFt     int
	OccupancyRate float64
	YearBuilt     int
}

// Unit represents a leasable unit within a property.
// LastOccupied is set only for vacant units and LastVacated only for
// occupied units, mirroring how a property system records turnover.
type Unit struct {
	ID              string
	PropertyID      string
	UnitNumber      string
	FloorNumber     int
	SqFt            int
	OccupancyStatus OccupancyStatus
	LastRenovated   time.Time
	LastOccupied    *time.Time
	LastVacated     *time.Time
	CreatedAt       time.Time
	ModifiedAt      time.Time
}

// Tenant represents a business occupying exactly one occupied unit.
type Tenant struct {
	ID             string
	PropertyID     string
	UnitID         string
	BusinessName   string
	PrimaryContact string
	Email          string
	Phone          string
	Industry       string
	AnnualRevenue  string
	EmployeeCount  int
	CreditScore    int
	LeaseStartDate *time.Time
	MoveInReason   string
}

// User represents a back-office user referenced by creator/modifier stamps.
type User struct {
	ID       string
	UserID   string
	UserName string
}

// VendorStatus describes whether a vendor is available for new work.
type VendorStatus string

const (
	VendorActive   VendorStatus = "Active"
	VendorInactive VendorStatus = "Inactive"
)

// Vendor represents a service provider billed against properties.
type Vendor struct {
	ID           string
	Name         string
	ServiceType  string
	Address      string
	ContactName  string
	ContactEmail string
	Phone        string
	TaxID        string
	Status       VendorStatus
	Approved     bool
	CreatedBy    string
	CreatedAt    time.Time
	ModifiedBy   string
	ModifiedAt   time.Time
}
