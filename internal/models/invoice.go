package models

import (
	"time"
)

// InvoiceStatus describes where an invoice sits in its payment lifecycle.
type InvoiceStatus string

const (
	InvoiceUnpaid  InvoiceStatus = "Unpaid"
	InvoicePaid    InvoiceStatus = "Paid"
	InvoiceOverdue InvoiceStatus = "Overdue"
)

// CustomerInvoice is a rent invoice raised from one billing schedule entry.
// PaymentDate and GLBatchID are back-references filled in by the settlement
// and ledger stages on annotated copies of the table.
type CustomerInvoice struct {
	ID          string
	InvoiceDate time.Time
	DueDate     time.Time
	TenantID    string
	PropertyID  string
	UnitID      string
	LeaseID     string
	PeriodStart time.Time
	PeriodEnd   time.Time
	AmountDue   float64
	Status      InvoiceStatus
	PaymentDate *time.Time
	Description string
	GLBatchID   string
}

// VendorInvoice is a payable raised by a vendor against a property, coded
// to a GL account drawn from the vendor-category mapping.
type VendorInvoice struct {
	ID            string
	InvoiceDate   time.Time
	DueDate       time.Time
	PropertyID    string
	VendorID      string
	VendorName    string
	AmountDue     float64
	Status        InvoiceStatus
	PaymentDate   *time.Time
	Description   string
	GLAccount     string
	GLAccountName string
	GLClass       string
	GLType        string
	GLBatchID     string
}

// CheckRegisterEntry records a check cut against a paid vendor invoice.
type CheckRegisterEntry struct {
	ID          string
	InvoiceID   string
	VendorID    string
	CheckNumber string
	CheckDate   time.Time
	Amount      float64
	PropertyID  string
	GLBatchID   string
	CreatedBy   string
	CreatedAt   time.Time
	ModifiedBy  string
	ModifiedAt  time.Time
}

// Receipt records cash received against a paid customer invoice.
type Receipt struct {
	ID            string
	InvoiceID     string
	TenantID      string
	ReceiptNumber string
	ReceiptDate   time.Time
	Amount        float64
	PaymentMethod string
	PropertyID    string
	GLBatchID     string
	CreatedBy     string
	CreatedAt     time.Time
	ModifiedBy    string
	ModifiedAt    time.Time
}
