package simulation

import (
	"strconv"
	"time"

	"github.com/cashsight/simulator/internal/models"
)

// systemUser stamps rows produced by the settlement and ledger stages.
const systemUser = "system"

// lagBucket is one band of the stochastic payment-lag distribution.
type lagBucket struct {
	MinDays int
	MaxDays int
	Weight  float64
	OnTime  bool
}

// Payment lags: most invoices settle on time, a tail settles 1-30, 31-60,
// or 90-120 days late. The on-time lag is bounded by the invoice's own
// due-minus-invoice-date span.
var lagBuckets = []lagBucket{
	{Weight: 0.70, OnTime: true},
	{MinDays: 1, MaxDays: 30, Weight: 0.15},
	{MinDays: 31, MaxDays: 60, Weight: 0.10},
	{MinDays: 90, MaxDays: 120, Weight: 0.05},
}

var paymentMethods = []string{"ACH", "Check", "Credit Card"}

// lagDays draws a settlement lag for an invoice issued on invoiceDate and
// due on dueDate.
func (g *Generator) lagDays(invoiceDate, dueDate time.Time) int {
	weights := make([]float64, len(lagBuckets))
	for i, b := range lagBuckets {
		weights[i] = b.Weight
	}
	bucket := lagBuckets[g.weightedIndex(weights)]

	if bucket.OnTime {
		span := int(dueDate.Sub(invoiceDate).Hours() / 24)
		if span < 0 {
			span = 0
		}
		return g.intBetween(0, span)
	}
	return g.intBetween(bucket.MinDays, bucket.MaxDays)
}

// Checks cuts one check per paid vendor invoice and returns the check
// register alongside an annotated copy of the invoice table with payment
// dates back-filled. The input slice is never mutated.
func (g *Generator) Checks(invoices []models.VendorInvoice) ([]models.CheckRegisterEntry, []models.VendorInvoice) {
	annotated := make([]models.VendorInvoice, len(invoices))
	copy(annotated, invoices)

	register := []models.CheckRegisterEntry{}
	now := g.asOf

	for i := range annotated {
		if annotated[i].Status != models.InvoicePaid {
			continue
		}

		lag := g.lagDays(annotated[i].InvoiceDate, annotated[i].DueDate)
		checkDate := annotated[i].DueDate.AddDate(0, 0, lag)
		annotated[i].PaymentDate = &checkDate

		register = append(register, models.CheckRegisterEntry{
			ID:          newID(),
			InvoiceID:   annotated[i].ID,
			VendorID:    annotated[i].VendorID,
			CheckNumber: strconv.Itoa(g.intBetween(10000, 99999)),
			CheckDate:   checkDate,
			Amount:      annotated[i].AmountDue,
			PropertyID:  annotated[i].PropertyID,
			CreatedBy:   systemUser,
			CreatedAt:   now,
			ModifiedBy:  systemUser,
			ModifiedAt:  now,
		})
	}
	return register, annotated
}

// Receipts records one receipt per paid customer invoice and returns the
// receipts alongside an annotated copy of the invoice table with payment
// dates back-filled. The input slice is never mutated.
func (g *Generator) Receipts(invoices []models.CustomerInvoice) ([]models.Receipt, []models.CustomerInvoice) {
	annotated := make([]models.CustomerInvoice, len(invoices))
	copy(annotated, invoices)

	receipts := []models.Receipt{}
	now := g.asOf

	for i := range annotated {
		if annotated[i].Status != models.InvoicePaid {
			continue
		}

		lag := g.lagDays(annotated[i].InvoiceDate, annotated[i].DueDate)
		receiptDate := annotated[i].DueDate.AddDate(0, 0, lag)
		annotated[i].PaymentDate = &receiptDate

		receipts = append(receipts, models.Receipt{
			ID:            newID(),
			InvoiceID:     annotated[i].ID,
			TenantID:      annotated[i].TenantID,
			ReceiptNumber: strconv.Itoa(g.intBetween(10000, 99999)),
			ReceiptDate:   receiptDate,
			Amount:        annotated[i].AmountDue,
			PaymentMethod: paymentMethods[g.rng.Intn(len(paymentMethods))],
			PropertyID:    annotated[i].PropertyID,
			CreatedBy:     systemUser,
			CreatedAt:     now,
			ModifiedBy:    systemUser,
			ModifiedAt:    now,
		})
	}
	return receipts, annotated
}
