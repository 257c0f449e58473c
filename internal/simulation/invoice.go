package simulation

import (
	"fmt"
	"time"

	"github.com/cashsight/simulator/internal/models"
)

// UnclassifiedAccount is the explicit fallback used when a vendor category
// has no GL mapping or the mapped code is missing from the chart of
// accounts. Invoices never fail on an unresolvable lookup.
var UnclassifiedAccount = models.Account{
	Number: "",
	Name:   "Unknown",
	Class:  "Unclassified",
	Type:   "Unknown",
}

var customerDueDayOffsets = []int{5, 7, 10}
var vendorDueDayOffsets = []int{15, 30}

// CustomerInvoices raises exactly one invoice per billing schedule entry.
// Invoice status is a stochastic function of days past due at the as-of
// date. An empty schedule yields an empty, correctly-typed table.
func (g *Generator) CustomerInvoices(schedule []models.BillingScheduleEntry, leases []models.Lease, tenants []models.Tenant) []models.CustomerInvoice {
	leaseByID := make(map[string]models.Lease, len(leases))
	for _, l := range leases {
		leaseByID[l.ID] = l
	}
	tenantByID := make(map[string]models.Tenant, len(tenants))
	for _, t := range tenants {
		tenantByID[t.ID] = t
	}

	invoices := make([]models.CustomerInvoice, 0, len(schedule))
	for _, entry := range schedule {
		invoiceDate := entry.DueDate
		dueDate := invoiceDate.AddDate(0, 0, customerDueDayOffsets[g.rng.Intn(len(customerDueDayOffsets))])

		leaseType := "Commercial"
		if lease, ok := leaseByID[entry.LeaseID]; ok {
			leaseType = lease.LeaseType
		}
		tenantName := "Tenant"
		if tenant, ok := tenantByID[entry.TenantID]; ok {
			tenantName = tenant.BusinessName
		}

		description := fmt.Sprintf("%s rent due for %s covering %s",
			leaseType, tenantName, entry.PeriodStart.Format("Jan 2006"))
		if entry.IsProrated {
			description += " (prorated)"
		}
		switch entry.Basis {
		case models.BasisAdvance:
			description += " - billed in advance"
		case models.BasisArrears:
			description += " - billed in arrears"
		}

		invoices = append(invoices, models.CustomerInvoice{
			ID:          newID(),
			InvoiceDate: invoiceDate,
			DueDate:     dueDate,
			TenantID:    entry.TenantID,
			PropertyID:  entry.PropertyID,
			UnitID:      entry.UnitID,
			LeaseID:     entry.LeaseID,
			PeriodStart: entry.PeriodStart,
			PeriodEnd:   entry.PeriodEnd,
			AmountDue:   entry.Amount,
			Status:      g.invoiceStatus(dueDate),
			Description: description,
		})
	}
	return invoices
}

// invoiceStatus derives a payment status from days past due at the as-of
// date: not yet due is Unpaid, recently due leans Unpaid, long past due
// leans Paid with a residue of Overdue.
func (g *Generator) invoiceStatus(dueDate time.Time) models.InvoiceStatus {
	daysPastDue := int(g.asOf.Sub(dueDate).Hours() / 24)
	switch {
	case daysPastDue <= 0:
		return models.InvoiceUnpaid
	case daysPastDue <= 30:
		if g.rng.Float64() < 0.7 {
			return models.InvoiceUnpaid
		}
		return models.InvoicePaid
	default:
		if g.rng.Float64() < 0.7 {
			return models.InvoicePaid
		}
		return models.InvoiceOverdue
	}
}

// VendorInvoices synthesizes payables independently of the billing schedule:
// per property, a draw in [minPerProperty, maxPerProperty] invoices, each
// against a random vendor and a random property, coded to a GL account from
// the vendor-category mapping.
func (g *Generator) VendorInvoices(vendors []models.Vendor, properties []models.Property, leases []models.Lease, coa []models.Account, minPerProperty, maxPerProperty int) []models.VendorInvoice {
	if len(vendors) == 0 || len(properties) == 0 {
		return []models.VendorInvoice{}
	}

	accountByNumber := make(map[string]models.Account, len(coa))
	for _, a := range coa {
		accountByNumber[a.Number] = a
	}

	// Earliest lease start per property anchors how far back an invoice
	// date may fall.
	earliestLease := make(map[string]time.Time, len(properties))
	for _, l := range leases {
		if cur, ok := earliestLease[l.PropertyID]; !ok || l.LeaseStart.Before(cur) {
			earliestLease[l.PropertyID] = l.LeaseStart
		}
	}

	invoices := []models.VendorInvoice{}
	for range properties {
		count := g.intBetween(minPerProperty, maxPerProperty)
		for i := 0; i < count; i++ {
			vendor := vendors[g.rng.Intn(len(vendors))]
			prop := properties[g.rng.Intn(len(properties))]

			account := g.vendorAccount(vendor.ServiceType, accountByNumber)

			windowStart, ok := earliestLease[prop.ID]
			if !ok {
				windowStart = g.asOf.AddDate(-2, 0, 0)
			}
			invoiceDate := g.dateBetween(windowStart, g.asOf)
			dueDate := invoiceDate.AddDate(0, 0, vendorDueDayOffsets[g.rng.Intn(len(vendorDueDayOffsets))])

			invoices = append(invoices, models.VendorInvoice{
				ID:            newID(),
				InvoiceDate:   invoiceDate,
				DueDate:       dueDate,
				PropertyID:    prop.ID,
				VendorID:      vendor.ID,
				VendorName:    vendor.Name,
				AmountDue:     round2(g.floatBetween(500, 10000)),
				Status:        g.invoiceStatus(dueDate),
				Description:   fmt.Sprintf("%s invoice for %s", vendor.ServiceType, propertyLabel(prop)),
				GLAccount:     account.Number,
				GLAccountName: account.Name,
				GLClass:       account.Class,
				GLType:        account.Type,
			})
		}
	}
	return invoices
}

// DailyVendorInvoices synthesizes a single day's payables with every invoice
// dated on the as-of day, for the incremental run.
func (g *Generator) DailyVendorInvoices(vendors []models.Vendor, properties []models.Property, coa []models.Account, minPerProperty, maxPerProperty int) []models.VendorInvoice {
	if len(vendors) == 0 || len(properties) == 0 {
		return []models.VendorInvoice{}
	}

	accountByNumber := make(map[string]models.Account, len(coa))
	for _, a := range coa {
		accountByNumber[a.Number] = a
	}

	invoices := []models.VendorInvoice{}
	for range properties {
		count := g.intBetween(minPerProperty, maxPerProperty)
		for i := 0; i < count; i++ {
			vendor := vendors[g.rng.Intn(len(vendors))]
			prop := properties[g.rng.Intn(len(properties))]

			account := g.vendorAccount(vendor.ServiceType, accountByNumber)

			// Status is drawn against a historical due date before the
			// invoice is pinned to the as-of day, so a share of the
			// day's payables arrives already settled.
			drawnDate := g.dateBetween(g.asOf.AddDate(-2, 0, 0), g.asOf)
			drawnDue := drawnDate.AddDate(0, 0, vendorDueDayOffsets[g.rng.Intn(len(vendorDueDayOffsets))])
			status := g.invoiceStatus(drawnDue)

			dueDate := g.asOf.AddDate(0, 0, vendorDueDayOffsets[g.rng.Intn(len(vendorDueDayOffsets))])

			invoices = append(invoices, models.VendorInvoice{
				ID:            newID(),
				InvoiceDate:   g.asOf,
				DueDate:       dueDate,
				PropertyID:    prop.ID,
				VendorID:      vendor.ID,
				VendorName:    vendor.Name,
				AmountDue:     round2(g.floatBetween(500, 10000)),
				Status:        status,
				Description:   fmt.Sprintf("%s invoice for %s", vendor.ServiceType, propertyLabel(prop)),
				GLAccount:     account.Number,
				GLAccountName: account.Name,
				GLClass:       account.Class,
				GLType:        account.Type,
			})
		}
	}
	return invoices
}

// vendorAccount draws a GL account for a vendor category, resolving the
// code against the chart of accounts. Unknown categories and unmapped codes
// both land on the unclassified placeholder.
func (g *Generator) vendorAccount(category string, accountByNumber map[string]models.Account) models.Account {
	mapping, ok := vendorGLAccounts[category]
	if !ok || len(mapping.Codes) == 0 {
		return UnclassifiedAccount
	}

	code := mapping.Codes[g.weightedIndex(mapping.Weights)]
	if account, ok := accountByNumber[code]; ok {
		return account
	}

	fallback := UnclassifiedAccount
	fallback.Number = code
	return fallback
}

func propertyLabel(p models.Property) string {
	if p.Name != "" {
		return p.Name
	}
	return "Property"
}
