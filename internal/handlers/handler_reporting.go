package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tripofis/travel_ledger_app/internal/core/domain"
	portssvc "github.com/tripofis/travel_ledger_app/internal/core/ports/services"
	"github.com/tripofis/travel_ledger_app/internal/core/projection"
	"github.com/tripofis/travel_ledger_app/internal/dto"
	"github.com/tripofis/travel_ledger_app/internal/middleware"
)

// reportingHandler serves the derived read-side reports. Every report is
// computed fresh against the current instant; nothing here is persisted.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers the report routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/balances", h.getBalanceSummary)
		reports.GET("/due", h.getDueReport)
		reports.GET("/dashboard", h.getDashboard)
	}
}

// getBalanceSummary godoc
// @Summary Balance summary
// @Description Per-currency receivable/payable/net totals over entries visible to the caller
// @Tags reports
// @Produce  json
// @Param   entityID query string false "Restrict to one entity"
// @Success 200 {object} dto.BalanceSummaryResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to compute balances"
// @Security BearerAuth
// @Router /reports/balances [get]
func (h *reportingHandler) getBalanceSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	principal, ok := middleware.GetPrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	summary, err := h.reportingService.BalanceSummary(c.Request.Context(), c.Query("entityID"), principal, time.Now().UTC())
	if err != nil {
		logger.Error("Failed to compute balance summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute balances"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBalanceSummaryResponse(summary))
}

// getDueReport godoc
// @Summary Due report
// @Description Partitions unpaid dated entries into upcoming and overdue lists
// @Tags reports
// @Produce  json
// @Param   days query int false "Truncate upcoming items to the next N days"
// @Param   entityType query string false "Entity type filter" Enums(customer, hotel, vehicle_owner, sub_agency)
// @Param   entityID query string false "Restrict to one entity"
// @Success 200 {object} dto.DueReportResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to compute due report"
// @Security BearerAuth
// @Router /reports/due [get]
func (h *reportingHandler) getDueReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	principal, ok := middleware.GetPrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	filters := projection.DueFilters{
		EntityType: domain.EntityType(c.Query("entityType")),
		EntityID:   c.Query("entityID"),
	}
	if daysStr := c.Query("days"); daysStr != "" {
		days, err := strconv.Atoi(daysStr)
		if err != nil || days < 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "days must be a non-negative integer"})
			return
		}
		filters.DaysWindow = &days
	}

	upcoming, overdue, err := h.reportingService.DueItems(c.Request.Context(), filters, principal, time.Now().UTC())
	if err != nil {
		logger.Error("Failed to compute due report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute due report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDueReportResponse(upcoming, overdue))
}

// getDashboard godoc
// @Summary Dashboard aggregate
// @Description Balances, due counts, weekly totals and expense breakdown in one payload
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to compute dashboard"
// @Security BearerAuth
// @Router /reports/dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	principal, ok := middleware.GetPrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	dashboard, err := h.reportingService.Dashboard(c.Request.Context(), principal, time.Now().UTC())
	if err != nil {
		logger.Error("Failed to compute dashboard", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute dashboard"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(dashboard))
}
