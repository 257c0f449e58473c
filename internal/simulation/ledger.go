package simulation

import (
	"strings"

	"github.com/cashsight/simulator/internal/models"
)

// Fixed sides of the four posting templates. The vendor-invoice debit side
// comes from the invoice's resolved GL account instead.
const (
	accountTenantReceivable = "Tenant Receivable"
	accountRentRevenue      = "Rent Revenue"
	accountAccountsPayable  = "Accounts Payable"
	accountCash             = "Cash"
)

// LedgerResult bundles the GL table with annotated copies of every source
// table; each source row that produced a posting carries its batch id.
type LedgerResult struct {
	Entries          []models.GLEntry
	CustomerInvoices []models.CustomerInvoice
	VendorInvoices   []models.VendorInvoice
	Receipts         []models.Receipt
	Checks           []models.CheckRegisterEntry
}

// PostLedger converts every paid invoice, receipt, and check into a balanced
// pair of GL entries sharing a batch id: one Debit and one Credit of equal
// amount. Because each batch is internally balanced, the trial balance holds
// for the whole run.
func (g *Generator) PostLedger(custInvoices []models.CustomerInvoice, vendInvoices []models.VendorInvoice, receipts []models.Receipt, checks []models.CheckRegisterEntry, coa []models.Account) LedgerResult {
	result := LedgerResult{
		Entries:          []models.GLEntry{},
		CustomerInvoices: make([]models.CustomerInvoice, len(custInvoices)),
		VendorInvoices:   make([]models.VendorInvoice, len(vendInvoices)),
		Receipts:         make([]models.Receipt, len(receipts)),
		Checks:           make([]models.CheckRegisterEntry, len(checks)),
	}
	copy(result.CustomerInvoices, custInvoices)
	copy(result.VendorInvoices, vendInvoices)
	copy(result.Receipts, receipts)
	copy(result.Checks, checks)

	for i := range result.CustomerInvoices {
		inv := &result.CustomerInvoices[i]
		if inv.Status != models.InvoicePaid {
			continue
		}
		inv.GLBatchID = g.postPair(&result.Entries, posting{
			Source:     "Customer Invoice",
			SourceID:   inv.ID,
			PropertyID: inv.PropertyID,
			TenantID:   inv.TenantID,
			Amount:     inv.AmountDue,
			DebitAcct:  accountTenantReceivable,
			CreditAcct: accountRentRevenue,
		}, coa)
	}

	for i := range result.VendorInvoices {
		inv := &result.VendorInvoices[i]
		if inv.Status != models.InvoicePaid {
			continue
		}
		inv.GLBatchID = g.postPair(&result.Entries, posting{
			Source:     "Vendor Invoice",
			SourceID:   inv.ID,
			PropertyID: inv.PropertyID,
			VendorID:   inv.VendorID,
			Amount:     inv.AmountDue,
			DebitAcct:  inv.GLAccountName,
			CreditAcct: accountAccountsPayable,
		}, coa)
	}

	for i := range result.Receipts {
		rcpt := &result.Receipts[i]
		rcpt.GLBatchID = g.postPair(&result.Entries, posting{
			Source:     "Receipt",
			SourceID:   rcpt.ID,
			PropertyID: rcpt.PropertyID,
			TenantID:   rcpt.TenantID,
			Amount:     rcpt.Amount,
			DebitAcct:  accountCash,
			CreditAcct: accountTenantReceivable,
		}, coa)
	}

	for i := range result.Checks {
		chk := &result.Checks[i]
		chk.GLBatchID = g.postPair(&result.Entries, posting{
			Source:     "Check",
			SourceID:   chk.ID,
			PropertyID: chk.PropertyID,
			VendorID:   chk.VendorID,
			Amount:     chk.Amount,
			DebitAcct:  accountAccountsPayable,
			CreditAcct: accountCash,
		}, coa)
	}

	return result
}

type posting struct {
	Source     string
	SourceID   string
	PropertyID string
	TenantID   string
	VendorID   string
	Amount     float64
	DebitAcct  string
	CreditAcct string
}

// postPair appends one Debit and one Credit row sharing a fresh batch id
// and returns that id.
func (g *Generator) postPair(entries *[]models.GLEntry, p posting, coa []models.Account) string {
	batchID := newID()
	cleared := g.coinFlip()
	now := g.asOf

	for _, side := range []struct {
		Side    models.EntrySide
		Account string
	}{
		{models.SideDebit, p.DebitAcct},
		{models.SideCredit, p.CreditAcct},
	} {
		*entries = append(*entries, models.GLEntry{
			ID:              newID(),
			Date:            now,
			Amount:          p.Amount,
			Side:            side.Side,
			Account:         ResolveAccountName(coa, side.Account),
			PropertyID:      p.PropertyID,
			TenantID:        p.TenantID,
			VendorID:        p.VendorID,
			TransactionType: p.Source,
			SourceDocument:  p.SourceID,
			BatchID:         batchID,
			ClearedInBank:   cleared,
			CreatedBy:       systemUser,
			CreatedAt:       now,
			ModifiedBy:      systemUser,
			ModifiedAt:      now,
		})
	}
	return batchID
}

// ResolveAccountName matches a posting account against the chart of
// accounts with a case-insensitive substring match on the account name.
// Unresolved names pass through unchanged.
func ResolveAccountName(coa []models.Account, name string) string {
	needle := strings.ToLower(name)
	if needle == "" {
		return name
	}
	for _, account := range coa {
		if strings.Contains(strings.ToLower(account.Name), needle) {
			return account.Name
		}
	}
	return name
}
