package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apierrors "github.com/cashsight/simulator/internal/errors"
	"github.com/cashsight/simulator/internal/middleware"
	"github.com/cashsight/simulator/internal/models"
	"github.com/cashsight/simulator/internal/services"
)

// TransactionHandler handles transaction-related HTTP requests.
type TransactionHandler struct {
	service services.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler instance.
func NewTransactionHandler(service services.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		service: service,
	}
}

// ListRequest represents the query parameters for the transactions endpoint.
// Both filters are optional.
type ListRequest struct {
	CashAccount string `form:"cash_account"`
	StartDate   string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
}

// ListResponse represents the response for the transactions endpoint.
type ListResponse struct {
	Transactions []models.StreamedTransaction `json:"transactions"`
	Count        int                          `json:"count"`
}

// List handles GET /api/v1/transactions.
// It returns the most recent streamed transactions, newest first, optionally
// filtered by cash account and start date.
func (h *TransactionHandler) List(c *gin.Context) {
	log := middleware.GetLogger(c)

	// Bind and validate query parameters
	var req ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		// Check if it's a validation error
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors)
			return
		}
		// Generic bad request for other binding errors
		apierrors.BadRequest(c, "Invalid query parameters", nil)
		return
	}

	if log != nil {
		log.Info("Processing transactions request", map[string]interface{}{
			"cash_account": req.CashAccount,
			"start_date":   req.StartDate,
		})
	}

	// Call service layer
	transactions, err := h.service.ListTransactions(c.Request.Context(), req.CashAccount, req.StartDate)
	if err != nil {
		// Handle service-level errors
		if errors.Is(err, services.ErrInvalidStartDate) {
			apierrors.BadRequest(c, err.Error(), nil)
			return
		}
		// Database or other unexpected errors
		apierrors.InternalServerError(c, "Failed to query transaction data", err)
		return
	}

	response := ListResponse{
		Transactions: transactions,
		Count:        len(transactions),
	}

	c.JSON(http.StatusOK, response)
}
