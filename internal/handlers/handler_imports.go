package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/condobooks/condo_books_app/internal/apperrors"
	portssvc "github.com/condobooks/condo_books_app/internal/core/ports/services"
	"github.com/condobooks/condo_books_app/internal/dto"
	"github.com/condobooks/condo_books_app/internal/middleware"
)

type importHandler struct {
	importService portssvc.ImportService
}

func newImportHandler(is portssvc.ImportService) *importHandler {
	return &importHandler{importService: is}
}

// registerImportRoutes registers statement import routes.
func registerImportRoutes(rg *gin.RouterGroup, importService portssvc.ImportService) {
	h := newImportHandler(importService)

	imports := rg.Group("/imports")
	{
		imports.POST("", h.importStatement)
		imports.GET("", h.listBatches)
	}
}

// importStatement accepts a multipart statement upload targeted at one
// account and returns the import summary, including skipped duplicates
// and per-row parse errors.
func (h *importHandler) importStatement(c *gin.Context) {
	logger := middleware.LoggerFromCtx(c.Request.Context())

	accountID := c.PostForm("accountID")
	if accountID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "accountID form field is required"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		logger.Warn("Statement file missing from upload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "file form field is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	summary, err := h.importService.ImportStatement(c.Request.Context(), fileHeader.Filename, accountID, file)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to import statement", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import statement"})
		}
		return
	}

	c.JSON(http.StatusCreated, summary)
}

func (h *importHandler) listBatches(c *gin.Context) {
	logger := middleware.LoggerFromCtx(c.Request.Context())

	batches, err := h.importService.ListBatches(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list import batches", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list import batches"})
		return
	}

	responses := make([]dto.ImportBatchResponse, 0, len(batches))
	for i := range batches {
		responses = append(responses, dto.ToImportBatchResponse(&batches[i]))
	}
	c.JSON(http.StatusOK, gin.H{"batches": responses})
}
