package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/chaikhata/shop_ledger_app/internal/core/ports/services"
	"github.com/chaikhata/shop_ledger_app/internal/dto"
	"github.com/chaikhata/shop_ledger_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for derived report figures.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers all report routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/totals", h.totals)
		reports.GET("/payment-breakdown", h.paymentBreakdown)
		reports.GET("/daily-trend", h.dailyTrend)
	}
}

// totals godoc
// @Summary All-time totals
// @Description Income, expenses and profit over every present transaction
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.TotalsResponse
// @Router /reports/totals [get]
func (h *reportingHandler) totals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	totals, err := h.reportingService.ComputeTotals(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute totals", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute totals"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTotalsResponse(totals))
}

// paymentBreakdown godoc
// @Summary Income by payment method
// @Description Sums INCOME transactions per payment method; silent methods are omitted
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.PaymentBreakdownResponse
// @Router /reports/payment-breakdown [get]
func (h *reportingHandler) paymentBreakdown(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	breakdown, err := h.reportingService.ComputePaymentBreakdown(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute payment breakdown", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute payment breakdown"})
		return
	}

	c.JSON(http.StatusOK, dto.PaymentBreakdownResponse{Breakdown: breakdown})
}

// dailyTrend godoc
// @Summary 7-day income/expense trend
// @Description Exactly 7 UTC calendar days ending today, oldest first
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.DailyTrendResponse
// @Router /reports/daily-trend [get]
func (h *reportingHandler) dailyTrend(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	points, err := h.reportingService.ComputeDailyTrend(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute daily trend", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute daily trend"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDailyTrendResponse(points))
}
