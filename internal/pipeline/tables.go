package pipeline

import (
	"fmt"
	"strconv"
	"time"

	"github.com/cashsight/simulator/internal/models"
)

// Output table names. The warehouse loader and the daily append mode both
// address tables by these names.
const (
	TableProperties      = "properties"
	TableUnits           = "units"
	TableTenants         = "tenants"
	TableVendors         = "vendors"
	TableUsers           = "users"
	TableLeases          = "leases"
	TablePaymentSchedule = "payment_schedule"
	TableCustInvoices    = "cust_invoices"
	TableVendInvoices    = "vend_invoices"
	TableCheckReg        = "checkreg"
	TableReceipts        = "receipts"
	TableGLTran          = "gltran"
)

// AllTables lists every output table in pipeline order.
var AllTables = []string{
	TableProperties, TableUnits, TableTenants, TableVendors, TableUsers,
	TableLeases, TablePaymentSchedule, TableCustInvoices, TableVendInvoices,
	TableCheckReg, TableReceipts, TableGLTran,
}

const (
	dateFormat      = "2006-01-02"
	timestampFormat = time.RFC3339
)

func formatDate(t time.Time) string {
	return t.Format(dateFormat)
}

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateFormat)
}

func formatTimestamp(t time.Time) string {
	return t.Format(timestampFormat)
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateFormat, s)
}

func parseDatePtr(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateFormat, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

var propertyHeader = []string{
	"property_id", "property_name", "type", "subtype", "units", "floors",
	"total_sq_ft", "occupancy", "year_built",
}

func propertyRecord(p models.Property) []string {
	return []string{
		p.ID, p.Name, p.Type, p.Subtype,
		strconv.Itoa(p.Units), strconv.Itoa(p.Floors), strconv.Itoa(p.TotalSqFt),
		strconv.FormatFloat(p.OccupancyRate, 'f', -1, 64), strconv.Itoa(p.YearBuilt),
	}
}

func parseProperty(row map[string]string) (models.Property, error) {
	units, _ := strconv.Atoi(row["units"])
	floors, _ := strconv.Atoi(row["floors"])
	sqft, _ := strconv.Atoi(row["total_sq_ft"])
	yearBuilt, _ := strconv.Atoi(row["year_built"])
	occupancy, err := strconv.ParseFloat(row["occupancy"], 64)
	if err != nil {
		return models.Property{}, fmt.Errorf("property %s: invalid occupancy: %w", row["property_id"], err)
	}
	return models.Property{
		ID:            row["property_id"],
		Name:          row["property_name"],
		Type:          row["type"],
		Subtype:       row["subtype"],
		Units:         units,
		Floors:        floors,
		TotalSqFt:     sqft,
		OccupancyRate: occupancy,
		YearBuilt:     yearBuilt,
	}, nil
}

var unitHeader = []string{
	"id", "property_id", "unit_number", "floor_number", "sq_ft",
	"occupancy_status", "last_renovated", "last_occupied", "last_vacated",
	"created_at", "modified_at",
}

func unitRecord(u models.Unit) []string {
	return []string{
		u.ID, u.PropertyID, u.UnitNumber, strconv.Itoa(u.FloorNumber),
		strconv.Itoa(u.SqFt), string(u.OccupancyStatus),
		formatDate(u.LastRenovated), formatDatePtr(u.LastOccupied), formatDatePtr(u.LastVacated),
		formatDate(u.CreatedAt), formatDate(u.ModifiedAt),
	}
}

var tenantHeader = []string{
	"id", "property_id", "unit_id", "business_name", "primary_contact",
	"email", "phone", "industry", "annual_revenue", "employee_count",
	"credit_score", "lease_start_date", "move_in_reason",
}

func tenantRecord(t models.Tenant) []string {
	return []string{
		t.ID, t.PropertyID, t.UnitID, t.BusinessName, t.PrimaryContact,
		t.Email, t.Phone, t.Industry, t.AnnualRevenue,
		strconv.Itoa(t.EmployeeCount), strconv.Itoa(t.CreditScore),
		formatDatePtr(t.LeaseStartDate), t.MoveInReason,
	}
}

func parseTenant(row map[string]string) (models.Tenant, error) {
	employees, _ := strconv.Atoi(row["employee_count"])
	credit, _ := strconv.Atoi(row["credit_score"])
	leaseStart, err := parseDatePtr(row["lease_start_date"])
	if err != nil {
		return models.Tenant{}, fmt.Errorf("tenant %s: invalid lease_start_date: %w", row["id"], err)
	}
	return models.Tenant{
		ID:             row["id"],
		PropertyID:     row["property_id"],
		UnitID:         row["unit_id"],
		BusinessName:   row["business_name"],
		PrimaryContact: row["primary_contact"],
		Email:          row["email"],
		Phone:          row["phone"],
		Industry:       row["industry"],
		AnnualRevenue:  row["annual_revenue"],
		EmployeeCount:  employees,
		CreditScore:    credit,
		LeaseStartDate: leaseStart,
		MoveInReason:   row["move_in_reason"],
	}, nil
}

var vendorHeader = []string{
	"id", "name", "service_type", "address", "contact_name", "contact_email",
	"phone", "tax_id", "vendor_status", "approved_vendor",
	"created_by", "created_at", "modified_by", "modified_at",
}

func vendorRecord(v models.Vendor) []string {
	return []string{
		v.ID, v.Name, v.ServiceType, v.Address, v.ContactName, v.ContactEmail,
		v.Phone, v.TaxID, string(v.Status), strconv.FormatBool(v.Approved),
		v.CreatedBy, formatTimestamp(v.CreatedAt), v.ModifiedBy, formatTimestamp(v.ModifiedAt),
	}
}

func parseVendor(row map[string]string) (models.Vendor, error) {
	approved, _ := strconv.ParseBool(row["approved_vendor"])
	createdAt, err := time.Parse(timestampFormat, row["created_at"])
	if err != nil {
		return models.Vendor{}, fmt.Errorf("vendor %s: invalid created_at: %w", row["id"], err)
	}
	modifiedAt, err := time.Parse(timestampFormat, row["modified_at"])
	if err != nil {
		return models.Vendor{}, fmt.Errorf("vendor %s: invalid modified_at: %w", row["id"], err)
	}
	return models.Vendor{
		ID:           row["id"],
		Name:         row["name"],
		ServiceType:  row["service_type"],
		Address:      row["address"],
		ContactName:  row["contact_name"],
		ContactEmail: row["contact_email"],
		Phone:        row["phone"],
		TaxID:        row["tax_id"],
		Status:       models.VendorStatus(row["vendor_status"]),
		Approved:     approved,
		CreatedBy:    row["created_by"],
		CreatedAt:    createdAt,
		ModifiedBy:   row["modified_by"],
		ModifiedAt:   modifiedAt,
	}, nil
}

var userHeader = []string{"id", "user_id", "user_name"}

func userRecord(u models.User) []string {
	return []string{u.ID, u.UserID, u.UserName}
}

var leaseHeader = []string{
	"id", "tenant_id", "unit_id", "property_id", "lease_start", "lease_end",
	"rent_start_date", "deposit_amount", "monthly_rent", "payment_timing",
	"lease_status", "auto_renew", "lease_type", "late_fee_terms",
	"early_termination_clause", "pro_rated_start", "escalation_clause",
	"expense_reimbursement_clause", "escalation_type", "escalation_rate",
	"fixed_rent_commencement", "rent_deferral_months", "free_rent_months",
}

func leaseRecord(l models.Lease) []string {
	return []string{
		l.ID, l.TenantID, l.UnitID, l.PropertyID,
		formatDate(l.LeaseStart), formatDate(l.LeaseEnd), formatDate(l.RentStartDate),
		formatAmount(l.DepositAmount), formatAmount(l.MonthlyRent),
		string(l.PaymentTiming), string(l.LeaseStatus), strconv.FormatBool(l.AutoRenew),
		l.LeaseType, l.LateFeeTerms, l.EarlyTerminationClause,
		strconv.FormatBool(l.ProratedStart), strconv.FormatBool(l.EscalationClause),
		strconv.FormatBool(l.ExpenseReimbursementClause), string(l.EscalationType),
		strconv.FormatFloat(l.EscalationRate, 'f', -1, 64),
		strconv.FormatBool(l.FixedRentCommencement),
		strconv.Itoa(l.RentDeferralMonths), strconv.Itoa(l.FreeRentMonths),
	}
}

func parseLease(row map[string]string) (models.Lease, error) {
	leaseStart, err := parseDate(row["lease_start"])
	if err != nil {
		return models.Lease{}, fmt.Errorf("lease %s: invalid lease_start: %w", row["id"], err)
	}
	leaseEnd, err := parseDate(row["lease_end"])
	if err != nil {
		return models.Lease{}, fmt.Errorf("lease %s: invalid lease_end: %w", row["id"], err)
	}
	rentStart, err := parseDate(row["rent_start_date"])
	if err != nil {
		return models.Lease{}, fmt.Errorf("lease %s: invalid rent_start_date: %w", row["id"], err)
	}
	deposit, _ := strconv.ParseFloat(row["deposit_amount"], 64)
	rent, _ := strconv.ParseFloat(row["monthly_rent"], 64)
	escalationRate, _ := strconv.ParseFloat(row["escalation_rate"], 64)
	autoRenew, _ := strconv.ParseBool(row["auto_renew"])
	prorated, _ := strconv.ParseBool(row["pro_rated_start"])
	escalationClause, _ := strconv.ParseBool(row["escalation_clause"])
	reimbursement, _ := strconv.ParseBool(row["expense_reimbursement_clause"])
	fixedCommencement, _ := strconv.ParseBool(row["fixed_rent_commencement"])
	deferral, _ := strconv.Atoi(row["rent_deferral_months"])
	freeRent, _ := strconv.Atoi(row["free_rent_months"])

	return models.Lease{
		ID:                         row["id"],
		TenantID:                   row["tenant_id"],
		UnitID:                     row["unit_id"],
		PropertyID:                 row["property_id"],
		LeaseStart:                 leaseStart,
		LeaseEnd:                   leaseEnd,
		RentStartDate:              rentStart,
		DepositAmount:              deposit,
		MonthlyRent:                rent,
		PaymentTiming:              models.PaymentTiming(row["payment_timing"]),
		LeaseStatus:                models.LeaseStatus(row["lease_status"]),
		AutoRenew:                  autoRenew,
		LeaseType:                  row["lease_type"],
		LateFeeTerms:               row["late_fee_terms"],
		EarlyTerminationClause:     row["early_termination_clause"],
		ProratedStart:              prorated,
		EscalationClause:           escalationClause,
		ExpenseReimbursementClause: reimbursement,
		EscalationType:             models.EscalationType(row["escalation_type"]),
		EscalationRate:             escalationRate,
		FixedRentCommencement:      fixedCommencement,
		RentDeferralMonths:         deferral,
		FreeRentMonths:             freeRent,
	}, nil
}

var scheduleHeader = []string{
	"id", "lease_id", "property_id", "unit_id", "tenant_id", "schd_dt",
	"pymnt_amt", "escal_type", "is_prorated", "bill_period_start",
	"bill_period_end", "billing_basis", "yr", "mo_txt",
}

func scheduleRecord(e models.BillingScheduleEntry) []string {
	return []string{
		e.ID, e.LeaseID, e.PropertyID, e.UnitID, e.TenantID,
		formatDate(e.DueDate), formatAmount(e.Amount), string(e.EscalationType),
		strconv.FormatBool(e.IsProrated), formatDate(e.PeriodStart),
		formatDate(e.PeriodEnd), string(e.Basis), strconv.Itoa(e.Year), e.MonthName,
	}
}

var custInvoiceHeader = []string{
	"id", "invoice_date", "due_date", "tenant_id", "property_id", "unit_id",
	"lease_id", "billing_period_start", "billing_period_end", "amount_due",
	"status", "payment_date", "description", "gltran_id",
}

func custInvoiceRecord(inv models.CustomerInvoice) []string {
	return []string{
		inv.ID, formatDate(inv.InvoiceDate), formatDate(inv.DueDate),
		inv.TenantID, inv.PropertyID, inv.UnitID, inv.LeaseID,
		formatDate(inv.PeriodStart), formatDate(inv.PeriodEnd),
		formatAmount(inv.AmountDue), string(inv.Status),
		formatDatePtr(inv.PaymentDate), inv.Description, inv.GLBatchID,
	}
}

var vendInvoiceHeader = []string{
	"id", "invoice_date", "due_date", "property_id", "vendor_id",
	"vendor_name", "amount_due", "status", "payment_date", "description",
	"gl_account", "gl_account_name", "gl_class", "gl_type", "gltran_id",
}

func vendInvoiceRecord(inv models.VendorInvoice) []string {
	return []string{
		inv.ID, formatDate(inv.InvoiceDate), formatDate(inv.DueDate),
		inv.PropertyID, inv.VendorID, inv.VendorName,
		formatAmount(inv.AmountDue), string(inv.Status),
		formatDatePtr(inv.PaymentDate), inv.Description,
		inv.GLAccount, inv.GLAccountName, inv.GLClass, inv.GLType, inv.GLBatchID,
	}
}

var checkRegHeader = []string{
	"id", "invoice_id", "vendor_id", "check_number", "check_date", "amount",
	"property_id", "gltran_id", "created_by", "created_at", "modified_by", "modified_at",
}

func checkRegRecord(c models.CheckRegisterEntry) []string {
	return []string{
		c.ID, c.InvoiceID, c.VendorID, c.CheckNumber, formatDate(c.CheckDate),
		formatAmount(c.Amount), c.PropertyID, c.GLBatchID,
		c.CreatedBy, formatTimestamp(c.CreatedAt), c.ModifiedBy, formatTimestamp(c.ModifiedAt),
	}
}

var receiptHeader = []string{
	"id", "invoice_id", "tenant_id", "receipt_number", "receipt_date",
	"amount", "payment_method", "property_id", "gltran_id",
	"created_by", "created_at", "modified_by", "modified_at",
}

func receiptRecord(r models.Receipt) []string {
	return []string{
		r.ID, r.InvoiceID, r.TenantID, r.ReceiptNumber, formatDate(r.ReceiptDate),
		formatAmount(r.Amount), r.PaymentMethod, r.PropertyID, r.GLBatchID,
		r.CreatedBy, formatTimestamp(r.CreatedAt), r.ModifiedBy, formatTimestamp(r.ModifiedAt),
	}
}

var glEntryHeader = []string{
	"id", "date", "amount", "debit_credit", "account_id", "property_id",
	"tenant_id", "vendor_id", "transaction_type", "source_document",
	"batch_id", "cleared_in_bank", "created_by", "created_at", "modified_by", "modified_at",
}

func glEntryRecord(e models.GLEntry) []string {
	return []string{
		e.ID, formatDate(e.Date), formatAmount(e.Amount), string(e.Side),
		e.Account, e.PropertyID, e.TenantID, e.VendorID, e.TransactionType,
		e.SourceDocument, e.BatchID, strconv.FormatBool(e.ClearedInBank),
		e.CreatedBy, formatTimestamp(e.CreatedAt), e.ModifiedBy, formatTimestamp(e.ModifiedAt),
	}
}
