package handlers

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/tripofis/travel_ledger_app/internal/core/ports/services"
	"github.com/tripofis/travel_ledger_app/internal/dto"
	"github.com/tripofis/travel_ledger_app/internal/middleware"
)

// transactionHandler serves the merged transaction view and its CSV export.
type transactionHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newTransactionHandler(rs portssvc.ReportingSvcFacade) *transactionHandler {
	return &transactionHandler{
		reportingService: rs,
	}
}

// registerTransactionRoutes registers the merged transaction routes.
func registerTransactionRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newTransactionHandler(reportingService)

	txns := rg.Group("/transactions")
	{
		txns.GET("", h.listTransactions)
		txns.GET("/export", h.exportTransactions)
	}
}

// listTransactions godoc
// @Summary List merged transactions
// @Description Returns the unified view of ledger entries and the raw feed, newest first
// @Tags transactions
// @Produce  json
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list transactions"
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	principal, ok := middleware.GetPrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	txns, err := h.reportingService.UnifiedTransactions(c.Request.Context(), principal)
	if err != nil {
		logger.Error("Failed to list merged transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(txns))
}

// exportTransactions godoc
// @Summary Export merged transactions as CSV
// @Description Streams the unified transaction view as a CSV download
// @Tags transactions
// @Produce  text/csv
// @Success 200 {string} string "CSV data"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to export transactions"
// @Security BearerAuth
// @Router /transactions/export [get]
func (h *transactionHandler) exportTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	principal, ok := middleware.GetPrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	txns, err := h.reportingService.UnifiedTransactions(c.Request.Context(), principal)
	if err != nil {
		logger.Error("Failed to export merged transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to export transactions"})
		return
	}

	filename := fmt.Sprintf("transactions_%s.csv", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"transaction_id", "type", "amount", "currency", "category", "description", "transaction_date", "due_date", "created_by"})
	for _, t := range txns {
		dueDate := ""
		if t.DueDate != nil {
			dueDate = t.DueDate.UTC().Format("2006-01-02")
		}
		createdBy := t.CreatedByRef.Name
		if createdBy == "" {
			createdBy = t.CreatedByRef.Username
		}
		_ = w.Write([]string{
			t.TransactionID,
			string(t.Type),
			t.Amount.StringFixed(2),
			string(t.Currency),
			t.Category,
			t.Description,
			t.EffectiveDate().UTC().Format("2006-01-02"),
			dueDate,
			createdBy,
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		logger.Error("Failed to flush CSV export", slog.String("error", err.Error()))
	}
}
