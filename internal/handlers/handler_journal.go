package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/condobooks/condo_books_app/internal/core/ports/services"
	"github.com/condobooks/condo_books_app/internal/dto"
	"github.com/condobooks/condo_books_app/internal/middleware"
)

type journalHandler struct {
	ledgerService portssvc.LedgerService
}

func newJournalHandler(ls portssvc.LedgerService) *journalHandler {
	return &journalHandler{ledgerService: ls}
}

// registerJournalRoutes registers journal entry and opening balance
// routes.
func registerJournalRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerService) {
	h := newJournalHandler(ledgerService)

	journal := rg.Group("/journal-entries")
	{
		journal.GET("", h.listEntries)
		journal.POST("", h.createEntry)
	}
	rg.GET("/opening-balances", h.getOpeningBalances)
	rg.PUT("/opening-balances", h.setOpeningBalances)
}

func (h *journalHandler) createEntry(c *gin.Context) {
	logger := middleware.LoggerFromCtx(c.Request.Context())
	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateJournalEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.ledgerService.CreateEntry(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create journal entry")
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (h *journalHandler) listEntries(c *gin.Context) {
	logger := middleware.LoggerFromCtx(c.Request.Context())

	entries, err := h.ledgerService.ListEntries(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list journal entries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list journal entries"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func (h *journalHandler) getOpeningBalances(c *gin.Context) {
	logger := middleware.LoggerFromCtx(c.Request.Context())

	balances, err := h.ledgerService.GetOpeningBalances(c.Request.Context())
	if err != nil {
		logger.Error("Failed to get opening balances", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get opening balances"})
		return
	}
	c.JSON(http.StatusOK, balances)
}

func (h *journalHandler) setOpeningBalances(c *gin.Context) {
	logger := middleware.LoggerFromCtx(c.Request.Context())
	var req dto.OpeningBalancesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetOpeningBalances", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.ledgerService.SetOpeningBalances(c.Request.Context(), req); err != nil {
		respondServiceError(c, logger, err, "Failed to set opening balances")
		return
	}
	c.Status(http.StatusNoContent)
}
