package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/chaikhata/shop_ledger_app/internal/core/ports/services"
	"github.com/chaikhata/shop_ledger_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// adviceHandler handles HTTP requests for AI business advice.
type adviceHandler struct {
	advisorService portssvc.AdvisorSvcFacade
}

func newAdviceHandler(as portssvc.AdvisorSvcFacade) *adviceHandler {
	return &adviceHandler{advisorService: as}
}

// registerAdviceRoutes registers the advice route. The extra middleware is
// the rate limiter guarding the external completion call.
func registerAdviceRoutes(rg *gin.RouterGroup, advisorService portssvc.AdvisorSvcFacade, mw ...gin.HandlerFunc) {
	h := newAdviceHandler(advisorService)

	handlers := append(mw, h.businessAdvice)
	rg.GET("/advice", handlers...)
}

// businessAdvice godoc
// @Summary Business advice from the current ledger
// @Description Builds a snapshot of recent activity and asks the configured advisor; serves a static fallback when the advisor is unavailable
// @Tags advice
// @Produce  json
// @Success 200 {object} dto.AdviceResponse
// @Failure 429 {object} map[string]string "Rate limit exceeded"
// @Router /advice [get]
func (h *adviceHandler) businessAdvice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	advice, err := h.advisorService.BusinessAdvice(c.Request.Context())
	if err != nil {
		logger.Error("Failed to generate business advice", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate advice"})
		return
	}

	c.JSON(http.StatusOK, advice)
}
