package models

import (
	"time"
)

// EscalationType describes how scheduled rent increases are computed.
type EscalationType string

const (
	EscalationFixedPct EscalationType = "Fixed %"
	EscalationCPI      EscalationType = "CPI"
	EscalationNone     EscalationType = ""
)

// PaymentTiming describes whether rent is billed before or after the
// period it covers.
type PaymentTiming string

const (
	TimingAdvance PaymentTiming = "In Advance"
	TimingArrears PaymentTiming = "In Arrears"
)

// BillingBasis is the schedule-level tag derived from PaymentTiming.
type BillingBasis string

const (
	BasisAdvance BillingBasis = "Advance"
	BasisArrears BillingBasis = "Arrears"
)

// LeaseStatus is derived from comparing the lease term to the as-of date.
type LeaseStatus string

const (
	LeaseActive     LeaseStatus = "Active"
	LeasePending    LeaseStatus = "Pending"
	LeaseTerminated LeaseStatus = "Terminated"
)

// Lease represents an executed lease on an occupied unit. The rent-logic
// flags (proration, free rent, deferral, commencement shift) are recorded
// here and consumed by the billing schedule engine.
type Lease struct {
	ID                         string
	TenantID                   string
	UnitID                     string
	PropertyID                 string
	LeaseStart                 time.Time
	LeaseEnd                   time.Time
	RentStartDate              time.Time
	DepositAmount              float64
	MonthlyRent                float64
	PaymentTiming              PaymentTiming
	LeaseStatus                LeaseStatus
	AutoRenew                  bool
	LeaseType                  string
	LateFeeTerms               string
	EarlyTerminationClause     string
	ProratedStart              bool
	EscalationClause           bool
	ExpenseReimbursementClause bool
	EscalationType             EscalationType
	EscalationRate             float64
	FixedRentCommencement      bool
	RentDeferralMonths         int
	FreeRentMonths             int
}

// BillingScheduleEntry is one month of expected rent for a lease. Entries
// within a lease are strictly monthly and ordered; only the first entry
// may be prorated.
type BillingScheduleEntry struct {
	ID             string
	LeaseID        string
	PropertyID     string
	UnitID         string
	TenantID       string
	DueDate        time.Time
	Amount         float64
	EscalationType EscalationType
	IsProrated     bool
	PeriodStart    time.Time
	PeriodEnd      time.Time
	Basis          BillingBasis
	Year           int
	MonthName      string
}
