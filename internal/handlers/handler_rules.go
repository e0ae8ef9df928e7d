package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/condobooks/condo_books_app/internal/core/ports/services"
	"github.com/condobooks/condo_books_app/internal/dto"
	"github.com/condobooks/condo_books_app/internal/middleware"
)

type ruleHandler struct {
	ruleService portssvc.RuleService
}

func newRuleHandler(rs portssvc.RuleService) *ruleHandler {
	return &ruleHandler{ruleService: rs}
}

// registerRuleRoutes registers categorization rule routes.
func registerRuleRoutes(rg *gin.RouterGroup, ruleService portssvc.RuleService) {
	h := newRuleHandler(ruleService)

	rules := rg.Group("/rules")
	{
		rules.GET("", h.listRules)
		rules.POST("", h.createRule)
		rules.PUT("/:id", h.updateRule)
		rules.DELETE("/:id", h.deleteRule)
		rules.POST("/from-transaction/:transactionID", h.createRuleFromTransaction)
	}
}

func (h *ruleHandler) listRules(c *gin.Context) {
	logger := middleware.LoggerFromCtx(c.Request.Context())

	rules, err := h.ruleService.ListRules(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list rules", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list rules"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rules": rules})
}

func (h *ruleHandler) createRule(c *gin.Context) {
	logger := middleware.LoggerFromCtx(c.Request.Context())
	var req dto.CreateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateRule", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	rule, err := h.ruleService.CreateRule(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create rule")
		return
	}
	c.JSON(http.StatusCreated, rule)
}

func (h *ruleHandler) updateRule(c *gin.Context) {
	logger := middleware.LoggerFromCtx(c.Request.Context())
	var req dto.UpdateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateRule", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	rule, err := h.ruleService.UpdateRule(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update rule")
		return
	}
	c.JSON(http.StatusOK, rule)
}

func (h *ruleHandler) deleteRule(c *gin.Context) {
	logger := middleware.LoggerFromCtx(c.Request.Context())

	if err := h.ruleService.DeleteRule(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, logger, err, "Failed to delete rule")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ruleHandler) createRuleFromTransaction(c *gin.Context) {
	logger := middleware.LoggerFromCtx(c.Request.Context())
	var req dto.RuleFromTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateRuleFromTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	rule, err := h.ruleService.CreateRuleFromTransaction(c.Request.Context(), c.Param("transactionID"), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create rule from transaction")
		return
	}
	c.JSON(http.StatusCreated, rule)
}
