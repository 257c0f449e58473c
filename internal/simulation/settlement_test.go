package simulation

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cashsight/simulator/internal/models"
)

func settledVendorInvoice(id string, status models.InvoiceStatus) models.VendorInvoice {
	invoiceDate := testAsOf.AddDate(0, -3, 0)
	return models.VendorInvoice{
		ID:          id,
		InvoiceDate: invoiceDate,
		DueDate:     invoiceDate.AddDate(0, 0, 30),
		PropertyID:  "prop-1",
		VendorID:    "vendor-1",
		VendorName:  "Crestline Engineering",
		AmountDue:   1250.50,
		Status:      status,
	}
}

func settledCustomerInvoice(id string, status models.InvoiceStatus) models.CustomerInvoice {
	invoiceDate := testAsOf.AddDate(0, -2, 0)
	return models.CustomerInvoice{
		ID:          id,
		InvoiceDate: invoiceDate,
		DueDate:     invoiceDate.AddDate(0, 0, 7),
		TenantID:    "tenant-1",
		PropertyID:  "prop-1",
		AmountDue:   900,
		Status:      status,
	}
}

func TestChecks_OnlyPaidInvoicesSettle(t *testing.T) {
	g := testGenerator(60)
	invoices := []models.VendorInvoice{
		settledVendorInvoice("vi1", models.InvoicePaid),
		settledVendorInvoice("vi2", models.InvoiceUnpaid),
		settledVendorInvoice("vi3", models.InvoiceOverdue),
		settledVendorInvoice("vi4", models.InvoicePaid),
	}

	register, annotated := g.Checks(invoices)
	require.Len(t, register, 2)
	require.Len(t, annotated, 4)

	numberPattern := regexp.MustCompile(`^\d{5}$`)
	for _, chk := range register {
		assert.Regexp(t, numberPattern, chk.CheckNumber)
		assert.Equal(t, 1250.50, chk.Amount)
		assert.Equal(t, systemUser, chk.CreatedBy)
		assert.False(t, chk.CheckDate.Before(invoices[0].DueDate),
			"check cut before the invoice fell due")
	}

	for _, inv := range annotated {
		if inv.Status == models.InvoicePaid {
			require.NotNil(t, inv.PaymentDate, "paid invoice %s missing payment date", inv.ID)
		} else {
			assert.Nil(t, inv.PaymentDate, "unpaid invoice %s has payment date", inv.ID)
		}
	}
}

func TestChecks_DoesNotMutateInput(t *testing.T) {
	g := testGenerator(61)
	invoices := []models.VendorInvoice{settledVendorInvoice("vi1", models.InvoicePaid)}

	_, annotated := g.Checks(invoices)
	require.NotNil(t, annotated[0].PaymentDate)
	assert.Nil(t, invoices[0].PaymentDate, "settlement mutated the source table")
}

func TestReceipts_OnlyPaidInvoicesSettle(t *testing.T) {
	g := testGenerator(62)
	invoices := []models.CustomerInvoice{
		settledCustomerInvoice("ci1", models.InvoicePaid),
		settledCustomerInvoice("ci2", models.InvoiceUnpaid),
		settledCustomerInvoice("ci3", models.InvoicePaid),
	}

	receipts, annotated := g.Receipts(invoices)
	require.Len(t, receipts, 2)

	for _, r := range receipts {
		assert.Contains(t, paymentMethods, r.PaymentMethod)
		assert.Equal(t, 900.0, r.Amount)
		assert.Equal(t, "tenant-1", r.TenantID)
		assert.False(t, r.ReceiptDate.Before(invoices[0].DueDate))
	}

	for _, inv := range annotated {
		if inv.Status == models.InvoicePaid {
			require.NotNil(t, inv.PaymentDate)
			assert.True(t, inv.PaymentDate.Equal(findReceiptDate(t, receipts, inv.ID)))
		} else {
			assert.Nil(t, inv.PaymentDate)
		}
	}
	assert.Nil(t, invoices[0].PaymentDate, "settlement mutated the source table")
}

func findReceiptDate(t *testing.T, receipts []models.Receipt, invoiceID string) time.Time {
	t.Helper()
	for _, r := range receipts {
		if r.InvoiceID == invoiceID {
			return r.ReceiptDate
		}
	}
	t.Fatalf("no receipt for invoice %s", invoiceID)
	return time.Time{}
}

func TestLagDays_Bounds(t *testing.T) {
	g := testGenerator(63)
	invoiceDate := testAsOf.AddDate(0, -1, 0)
	dueDate := invoiceDate.AddDate(0, 0, 15)

	for i := 0; i < 500; i++ {
		lag := g.lagDays(invoiceDate, dueDate)
		assert.GreaterOrEqual(t, lag, 0)
		assert.LessOrEqual(t, lag, 120)
	}
}

func TestLagDays_ZeroSpanOnTime(t *testing.T) {
	g := testGenerator(64)
	day := testAsOf
	// When the invoice is due on its own date, an on-time draw has no room.
	for i := 0; i < 200; i++ {
		lag := g.lagDays(day, day)
		if lag != 0 {
			// A late bucket was drawn; still bounded.
			assert.GreaterOrEqual(t, lag, 1)
			assert.LessOrEqual(t, lag, 120)
		}
	}
}
