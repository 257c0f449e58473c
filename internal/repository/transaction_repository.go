package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/cashsight/simulator/internal/database"
	"github.com/cashsight/simulator/internal/models"
)

// Maximum number of transactions returned by a single query.
const maxTransactionResults = 100

// TransactionFilter narrows a transaction query. Zero-value fields are
// ignored.
type TransactionFilter struct {
	// CashAccount, when set, matches rows with exactly this cash account.
	CashAccount string
	// StartDate, when set, keeps rows dated on or after it (ISO date string).
	StartDate string
}

// TransactionRepository defines the interface for streamed-transaction
// data access operations.
type TransactionRepository interface {
	// FindRecent returns the most recent transactions matching the filter,
	// newest first. Returns an empty slice if none match (not an error).
	// Returns error only for actual database failures.
	FindRecent(ctx context.Context, filter TransactionFilter) ([]models.StreamedTransaction, error)
}

// transactionRepository is the concrete implementation of TransactionRepository.
type transactionRepository struct {
	db *database.Database
}

// NewTransactionRepository creates a new instance of TransactionRepository.
func NewTransactionRepository(db *database.Database) TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// FindRecent queries the streamed_transactions table with the optional
// cash-account and start-date filters applied, ordered newest first and
// capped at maxTransactionResults rows.
func (r *transactionRepository) FindRecent(ctx context.Context, filter TransactionFilter) ([]models.StreamedTransaction, error) {
	query := `SELECT txn_id, amount, date, entity, cash_account FROM streamed_transactions`

	var conditions []string
	var args []interface{}
	if filter.CashAccount != "" {
		args = append(args, filter.CashAccount)
		conditions = append(conditions, fmt.Sprintf("cash_account = $%d", len(args)))
	}
	if filter.StartDate != "" {
		args = append(args, filter.StartDate)
		conditions = append(conditions, fmt.Sprintf("date >= $%d", len(args)))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	args = append(args, maxTransactionResults)
	query += fmt.Sprintf(" ORDER BY date DESC LIMIT $%d", len(args))

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var results []models.StreamedTransaction
	for rows.Next() {
		var txn models.StreamedTransaction
		if err := rows.Scan(&txn.TxnID, &txn.Amount, &txn.Date, &txn.Entity, &txn.CashAccount); err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		results = append(results, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	// Return empty slice if no transactions found (not an error)
	if results == nil {
		results = []models.StreamedTransaction{}
	}

	return results, nil
}
