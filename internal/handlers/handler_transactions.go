package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/condobooks/condo_books_app/internal/apperrors"
	portssvc "github.com/condobooks/condo_books_app/internal/core/ports/services"
	"github.com/condobooks/condo_books_app/internal/dto"
	"github.com/condobooks/condo_books_app/internal/middleware"
)

type transactionHandler struct {
	transactionService portssvc.TransactionService
}

func newTransactionHandler(ts portssvc.TransactionService) *transactionHandler {
	return &transactionHandler{transactionService: ts}
}

// registerTransactionRoutes registers the review workflow routes.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionService) {
	h := newTransactionHandler(transactionService)

	transactions := rg.Group("/transactions")
	{
		transactions.GET("", h.listTransactions)
		transactions.POST("", h.createTransaction)
		transactions.PUT("/:id", h.updateTransaction)
		transactions.POST("/:id/approve", h.approveTransaction)
		transactions.POST("/approve", h.approveBatch)
		transactions.POST("/recategorize", h.recategorizeAll)
	}
	rg.GET("/patterns", h.listPatterns)
}

func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.LoggerFromCtx(c.Request.Context())

	filter := dto.TransactionFilter{
		AccountID: c.Query("accountID"),
		FromDate:  c.Query("fromDate"),
		ToDate:    c.Query("toDate"),
		Category:  c.Query("category"),
		Type:      c.Query("type"),
	}
	if approvedStr := c.Query("approved"); approvedStr != "" {
		approved, err := strconv.ParseBool(approvedStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "approved must be true or false"})
			return
		}
		filter.Approved = &approved
	}

	txns, err := h.transactionService.ListTransactions(c.Request.Context(), filter)
	if err != nil {
		logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": dto.ToTransactionResponses(txns)})
}

func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.LoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create transaction")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.LoggerFromCtx(c.Request.Context())
	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.transactionService.UpdateTransaction(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

func (h *transactionHandler) approveTransaction(c *gin.Context) {
	logger := middleware.LoggerFromCtx(c.Request.Context())
	var req dto.ApproveTransactionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn("Failed to bind JSON for ApproveTransaction", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
			return
		}
	}

	txn, err := h.transactionService.ApproveTransaction(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to approve transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

func (h *transactionHandler) approveBatch(c *gin.Context) {
	logger := middleware.LoggerFromCtx(c.Request.Context())
	var req dto.ApproveBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ApproveBatch", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	approved, err := h.transactionService.ApproveTransactions(c.Request.Context(), req.TransactionIDs)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to approve transactions")
		return
	}
	c.JSON(http.StatusOK, gin.H{"approved": approved})
}

func (h *transactionHandler) recategorizeAll(c *gin.Context) {
	logger := middleware.LoggerFromCtx(c.Request.Context())

	changed, err := h.transactionService.RecategorizeAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to recategorize transactions")
		return
	}
	c.JSON(http.StatusOK, gin.H{"changed": changed})
}

func (h *transactionHandler) listPatterns(c *gin.Context) {
	logger := middleware.LoggerFromCtx(c.Request.Context())

	patterns, err := h.transactionService.ListPatterns(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list patterns", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list patterns"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"patterns": patterns})
}

// respondServiceError maps sentinel service errors to status codes; any
// unrecognized error is a 500 with a generic message.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, genericMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrUnbalanced):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		logger.Error(genericMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": genericMsg})
	}
}
