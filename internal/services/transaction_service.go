package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cashsight/simulator/internal/logger"
	"github.com/cashsight/simulator/internal/models"
	"github.com/cashsight/simulator/internal/repository"
)

// Service-level errors
var (
	ErrInvalidStartDate = errors.New("start_date must be an ISO date (YYYY-MM-DD)")
)

// TransactionService defines the interface for transaction query business logic.
type TransactionService interface {
	// ListTransactions retrieves the most recent streamed transactions,
	// optionally narrowed by cash account and start date.
	// Returns ErrInvalidStartDate if the start date does not parse.
	// Returns empty slice if no transactions found (not an error).
	// Returns error for database failures.
	ListTransactions(ctx context.Context, cashAccount, startDate string) ([]models.StreamedTransaction, error)
}

// transactionService is the concrete implementation of TransactionService.
type transactionService struct {
	repo repository.TransactionRepository
	log  *logger.Logger
}

// NewTransactionService creates a new instance of TransactionService.
func NewTransactionService(repo repository.TransactionRepository, log *logger.Logger) TransactionService {
	return &transactionService{
		repo: repo,
		log:  log,
	}
}

// ListTransactions validates the optional filters, logs the query, and
// returns the newest matching transactions.
func (s *transactionService) ListTransactions(ctx context.Context, cashAccount, startDate string) ([]models.StreamedTransaction, error) {
	// Validate the start date before it reaches the query
	if startDate != "" {
		if _, err := time.Parse("2006-01-02", startDate); err != nil {
			s.log.Warn("Invalid start date provided", map[string]interface{}{
				"start_date": startDate,
			})
			return nil, fmt.Errorf("%w: got %q", ErrInvalidStartDate, startDate)
		}
	}

	// Log the query
	s.log.Info("Querying transactions", map[string]interface{}{
		"cash_account": cashAccount,
		"start_date":   startDate,
	})

	// Query repository
	transactions, err := s.repo.FindRecent(ctx, repository.TransactionFilter{
		CashAccount: cashAccount,
		StartDate:   startDate,
	})
	if err != nil {
		s.log.Error("Failed to query transactions", err, map[string]interface{}{
			"cash_account": cashAccount,
			"start_date":   startDate,
		})
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}

	// Log results
	s.log.Info("Transactions found", map[string]interface{}{
		"cash_account": cashAccount,
		"start_date":   startDate,
		"count":        len(transactions),
	})

	return transactions, nil
}
