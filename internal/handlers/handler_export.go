package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/chaikhata/shop_ledger_app/internal/core/ports/services"
	"github.com/chaikhata/shop_ledger_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// exportHandler handles CSV export downloads.
type exportHandler struct {
	exportService portssvc.ExportSvcFacade
}

func newExportHandler(es portssvc.ExportSvcFacade) *exportHandler {
	return &exportHandler{exportService: es}
}

// registerExportRoutes registers the CSV export routes.
func registerExportRoutes(rg *gin.RouterGroup, exportService portssvc.ExportSvcFacade) {
	h := newExportHandler(exportService)

	export := rg.Group("/export")
	{
		export.GET("/transactions.csv", h.transactionsCSV)
		export.GET("/staff.csv", h.staffCSV)
	}
}

// transactionsCSV godoc
// @Summary Export transactions as CSV
// @Description Streams every ledger transaction as a CSV attachment
// @Tags export
// @Produce  text/csv
// @Success 200 {string} string "CSV content"
// @Router /export/transactions.csv [get]
func (h *exportHandler) transactionsCSV(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	data, err := h.exportService.TransactionsCSV(c.Request.Context())
	if err != nil {
		logger.Error("Failed to export transactions CSV", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export transactions"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="transactions.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}

// staffCSV godoc
// @Summary Export staff as CSV
// @Description Streams every staff record as a CSV attachment
// @Tags export
// @Produce  text/csv
// @Success 200 {string} string "CSV content"
// @Router /export/staff.csv [get]
func (h *exportHandler) staffCSV(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	data, err := h.exportService.StaffCSV(c.Request.Context())
	if err != nil {
		logger.Error("Failed to export staff CSV", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export staff"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="staff.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}
