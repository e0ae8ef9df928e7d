package handlers

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/condobooks/condo_books_app/internal/core/ports/services"
	"github.com/condobooks/condo_books_app/internal/dto"
	"github.com/condobooks/condo_books_app/internal/middleware"
)

type reportHandler struct {
	reportingService portssvc.ReportingService
}

func newReportHandler(rs portssvc.ReportingService) *reportHandler {
	return &reportHandler{reportingService: rs}
}

// registerReportRoutes registers the financial statement routes.
func registerReportRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/profit-and-loss", h.profitAndLoss)
		reports.GET("/profit-and-loss/export", h.exportProfitAndLoss)
		reports.GET("/balance-sheet", h.balanceSheet)
	}
}

// reportDates validates the from/to query parameters, defaulting to the
// current calendar year when both are omitted.
func reportDates(c *gin.Context) (string, string, bool) {
	from := c.Query("fromDate")
	to := c.Query("toDate")
	if from == "" && to == "" {
		year := time.Now().UTC().Year()
		return fmt.Sprintf("%d-01-01", year), fmt.Sprintf("%d-12-31", year), true
	}
	for _, d := range []string{from, to} {
		if _, err := time.Parse("2006-01-02", d); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "fromDate and toDate must be YYYY-MM-DD"})
			return "", "", false
		}
	}
	return from, to, true
}

func (h *reportHandler) profitAndLoss(c *gin.Context) {
	logger := middleware.LoggerFromCtx(c.Request.Context())
	from, to, ok := reportDates(c)
	if !ok {
		return
	}

	report, err := h.reportingService.ProfitAndLoss(c.Request.Context(), from, to)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate profit and loss report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// exportProfitAndLoss streams the P&L as a CSV attachment, with the
// Schedule E line labels alongside each category.
func (h *reportHandler) exportProfitAndLoss(c *gin.Context) {
	logger := middleware.LoggerFromCtx(c.Request.Context())
	from, to, ok := reportDates(c)
	if !ok {
		return
	}

	report, err := h.reportingService.ProfitAndLoss(c.Request.Context(), from, to)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate profit and loss report")
		return
	}

	filename := fmt.Sprintf("profit-and-loss_%s_%s.csv", from, to)
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	writer := csv.NewWriter(c.Writer)
	if err := writer.WriteAll(dto.PLExportRows(report)); err != nil {
		logger.Error("Failed to write CSV export", slog.String("error", err.Error()))
	}
}

func (h *reportHandler) balanceSheet(c *gin.Context) {
	logger := middleware.LoggerFromCtx(c.Request.Context())

	asOf := c.Query("asOfDate")
	if asOf == "" {
		asOf = time.Now().UTC().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", asOf); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "asOfDate must be YYYY-MM-DD"})
		return
	}

	report, err := h.reportingService.BalanceSheet(c.Request.Context(), asOf)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate balance sheet")
		return
	}
	c.JSON(http.StatusOK, report)
}
