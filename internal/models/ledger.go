package models

import (
	"time"
)

// EntrySide is the debit/credit side of a GL row.
type EntrySide string

const (
	SideDebit  EntrySide = "Debit"
	SideCredit EntrySide = "Credit"
)

// GLEntry is one side of a balanced general-ledger posting. Every batch id
// appears on exactly two rows, one Debit and one Credit, with equal amounts.
type GLEntry struct {
	ID              string
	Date            time.Time
	Amount          float64
	Side            EntrySide
	Account         string
	PropertyID      string
	TenantID        string
	VendorID        string
	TransactionType string
	SourceDocument  string
	BatchID         string
	ClearedInBank   bool
	CreatedBy       string
	CreatedAt       time.Time
	ModifiedBy      string
	ModifiedAt      time.Time
}

// Account is one row of the chart of accounts seed table.
type Account struct {
	Number string
	Name   string
	Class  string
	Type   string
}

// StreamedTransaction is the synthetic cash feed published to the message
// bus and served by the read API. It is structurally unrelated to the
// ledger entities above.
type StreamedTransaction struct {
	TxnID       string  `json:"txn_id"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Entity      string  `json:"entity"`
	CashAccount string  `json:"cash_account"`
}
