package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cashsight/simulator/internal/logger"
	"github.com/cashsight/simulator/internal/models"
	"github.com/cashsight/simulator/internal/repository"
)

// MockTransactionRepository is a mock implementation of TransactionRepository for testing
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindRecent(ctx context.Context, filter repository.TransactionFilter) ([]models.StreamedTransaction, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	txns, ok := args.Get(0).([]models.StreamedTransaction)
	if !ok {
		return nil, args.Error(1)
	}
	return txns, args.Error(1)
}

func TestListTransactions_Success(t *testing.T) {
	// Arrange
	mockRepo := new(MockTransactionRepository)
	log := logger.New("test")
	service := NewTransactionService(mockRepo, log)

	ctx := context.Background()
	expected := []models.StreamedTransaction{
		{
			TxnID:       "3f1d9a6e-0001-4bd2-9c61-63f0a9b8a001",
			Amount:      1250.75,
			Date:        "2025-06-14T10:00:00Z",
			Entity:      "Harbor Freight Co",
			CashAccount: "GB29NWBK60161331926819",
		},
		{
			TxnID:       "3f1d9a6e-0002-4bd2-9c61-63f0a9b8a002",
			Amount:      88.10,
			Date:        "2025-06-13T16:45:00Z",
			Entity:      "Gateway Logistics",
			CashAccount: "GB29NWBK60161331926819",
		},
	}

	filter := repository.TransactionFilter{CashAccount: "GB29NWBK60161331926819", StartDate: "2025-06-01"}
	mockRepo.On("FindRecent", ctx, filter).Return(expected, nil)

	// Act
	txns, err := service.ListTransactions(ctx, "GB29NWBK60161331926819", "2025-06-01")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, expected, txns)
	mockRepo.AssertExpectations(t)
}

func TestListTransactions_NoFilters(t *testing.T) {
	// Arrange
	mockRepo := new(MockTransactionRepository)
	log := logger.New("test")
	service := NewTransactionService(mockRepo, log)

	ctx := context.Background()
	mockRepo.On("FindRecent", ctx, repository.TransactionFilter{}).
		Return([]models.StreamedTransaction{}, nil)

	// Act
	txns, err := service.ListTransactions(ctx, "", "")

	// Assert
	require.NoError(t, err)
	assert.NotNil(t, txns)
	assert.Empty(t, txns)
	mockRepo.AssertExpectations(t)
}

func TestListTransactions_InvalidStartDate(t *testing.T) {
	testCases := []struct {
		name      string
		startDate string
	}{
		{name: "Not a date", startDate: "yesterday"},
		{name: "Wrong ordering", startDate: "15-06-2025"},
		{name: "Missing day", startDate: "2025-06"},
		{name: "Out of range month", startDate: "2025-13-01"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			mockRepo := new(MockTransactionRepository)
			log := logger.New("test")
			service := NewTransactionService(mockRepo, log)

			// Act
			txns, err := service.ListTransactions(context.Background(), "", tc.startDate)

			// Assert
			assert.Error(t, err)
			assert.Nil(t, txns)
			assert.ErrorIs(t, err, ErrInvalidStartDate)
			// Repository should not be called for validation errors
			mockRepo.AssertNotCalled(t, "FindRecent")
		})
	}
}

func TestListTransactions_RepositoryError(t *testing.T) {
	// Arrange
	mockRepo := new(MockTransactionRepository)
	log := logger.New("test")
	service := NewTransactionService(mockRepo, log)

	ctx := context.Background()
	dbError := errors.New("database connection failed")
	mockRepo.On("FindRecent", ctx, repository.TransactionFilter{}).Return(nil, dbError)

	// Act
	txns, err := service.ListTransactions(ctx, "", "")

	// Assert
	assert.Error(t, err)
	assert.Nil(t, txns)
	assert.Contains(t, err.Error(), "failed to query transactions")
	assert.ErrorIs(t, err, dbError)
	mockRepo.AssertExpectations(t)
}

func TestListTransactions_ContextCancellation(t *testing.T) {
	// Arrange
	mockRepo := new(MockTransactionRepository)
	log := logger.New("test")
	service := NewTransactionService(mockRepo, log)

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel context immediately

	mockRepo.On("FindRecent", ctx, repository.TransactionFilter{}).Return(nil, context.Canceled)

	// Act
	txns, err := service.ListTransactions(ctx, "", "")

	// Assert
	assert.Error(t, err)
	assert.Nil(t, txns)
	assert.ErrorIs(t, err, context.Canceled)
	mockRepo.AssertExpectations(t)
}
