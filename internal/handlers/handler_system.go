package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/condobooks/condo_books_app/internal/core/ports/services"
	"github.com/condobooks/condo_books_app/internal/middleware"
)

type systemHandler struct {
	systemService portssvc.SystemService
}

func newSystemHandler(ss portssvc.SystemService) *systemHandler {
	return &systemHandler{systemService: ss}
}

// registerSystemRoutes registers the dashboard and store administration
// routes.
func registerSystemRoutes(rg *gin.RouterGroup, systemService portssvc.SystemService) {
	h := newSystemHandler(systemService)

	rg.GET("/dashboard", h.dashboard)
	rg.DELETE("/snapshot", h.clearStore)
}

func (h *systemHandler) dashboard(c *gin.Context) {
	logger := middleware.LoggerFromCtx(c.Request.Context())

	response, err := h.systemService.Dashboard(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build dashboard", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard"})
		return
	}
	c.JSON(http.StatusOK, response)
}

// clearStore wipes every imported transaction, batch, learned pattern
// and journal entry, resetting the rules to the seeded defaults.
func (h *systemHandler) clearStore(c *gin.Context) {
	logger := middleware.LoggerFromCtx(c.Request.Context())

	if err := h.systemService.ClearStore(c.Request.Context()); err != nil {
		logger.Error("Failed to clear store", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear store"})
		return
	}
	c.Status(http.StatusNoContent)
}
