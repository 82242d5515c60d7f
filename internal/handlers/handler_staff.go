package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/chaikhata/shop_ledger_app/internal/apperrors"
	portssvc "github.com/chaikhata/shop_ledger_app/internal/core/ports/services"
	"github.com/chaikhata/shop_ledger_app/internal/dto"
	"github.com/chaikhata/shop_ledger_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// staffHandler handles HTTP requests for staff and payroll operations.
type staffHandler struct {
	payrollService portssvc.PayrollSvcFacade
}

func newStaffHandler(ps portssvc.PayrollSvcFacade) *staffHandler {
	return &staffHandler{payrollService: ps}
}

// registerStaffRoutes registers all staff- and payroll-related routes.
func registerStaffRoutes(rg *gin.RouterGroup, payrollService portssvc.PayrollSvcFacade) {
	h := newStaffHandler(payrollService)

	staff := rg.Group("/staff")
	{
		staff.POST("", h.registerStaff)
		staff.GET("", h.listStaff)
		staff.GET("/escrow-liability", h.escrowLiability)
		staff.GET("/:id", h.getStaff)
		staff.PUT("/:id", h.updateStaff)
		staff.POST("/:id/weekly-pay", h.processWeeklyPay)
		staff.POST("/:id/settle-hold", h.settleMonthlyHold)
	}
}

// registerStaff godoc
// @Summary Register a staff member
// @Description Creates a staff record with a zero escrow balance
// @Tags staff
// @Accept  json
// @Produce  json
// @Param   staff body dto.RegisterStaffRequest true "Staff details"
// @Success 201 {object} dto.StaffResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /staff [post]
func (h *staffHandler) registerStaff(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for register staff request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	staff, err := h.payrollService.RegisterStaff(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to register staff in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register staff"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToStaffResponse(staff))
}

// listStaff godoc
// @Summary List staff
// @Tags staff
// @Produce  json
// @Success 200 {object} dto.ListStaffResponse
// @Router /staff [get]
func (h *staffHandler) listStaff(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	staff, err := h.payrollService.ListStaff(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list staff", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve staff"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListStaffResponse(staff))
}

// getStaff godoc
// @Summary Get a staff member by ID
// @Tags staff
// @Produce  json
// @Param   id path string true "Staff ID"
// @Success 200 {object} dto.StaffResponse
// @Failure 404 {object} map[string]string "Staff not found"
// @Router /staff/{id} [get]
func (h *staffHandler) getStaff(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	staffID := c.Param("id")

	staff, err := h.payrollService.GetStaffByID(c.Request.Context(), staffID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Staff not found"})
			return
		}
		logger.Error("Failed to get staff from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve staff"})
		return
	}

	c.JSON(http.StatusOK, dto.ToStaffResponse(staff))
}

// updateStaff godoc
// @Summary Update staff identity details
// @Description Corrects name/phone/address/aadhaar; the escrow balance cannot be edited
// @Tags staff
// @Accept  json
// @Produce  json
// @Param   id path string true "Staff ID"
// @Param   staff body dto.UpdateStaffRequest true "Fields to update"
// @Success 200 {object} dto.StaffResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Staff not found"
// @Router /staff/{id} [put]
func (h *staffHandler) updateStaff(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	staffID := c.Param("id")

	var req dto.UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for update staff request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	staff, err := h.payrollService.UpdateStaffDetails(c.Request.Context(), staffID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Staff not found"})
		default:
			logger.Error("Failed to update staff in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update staff"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToStaffResponse(staff))
}

// processWeeklyPay godoc
// @Summary Process weekly pay
// @Description Pays 40% of base pay now and escrows 60%; appends one EXPENSE transaction
// @Tags staff
// @Produce  json
// @Param   id path string true "Staff ID"
// @Success 200 {object} dto.PayrollRunResponse
// @Failure 404 {object} map[string]string "Staff not found"
// @Router /staff/{id}/weekly-pay [post]
func (h *staffHandler) processWeeklyPay(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	staffID := c.Param("id")

	run, err := h.payrollService.ProcessWeeklyPay(c.Request.Context(), staffID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Staff not found"})
			return
		}
		logger.Error("Failed to process weekly pay", slog.String("staff_id", staffID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process weekly pay"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPayrollRunResponse(run))
}

// settleMonthlyHold godoc
// @Summary Settle the monthly hold
// @Description Pays out the full held balance; settled=false when nothing is held
// @Tags staff
// @Produce  json
// @Param   id path string true "Staff ID"
// @Success 200 {object} dto.PayrollRunResponse
// @Failure 404 {object} map[string]string "Staff not found"
// @Router /staff/{id}/settle-hold [post]
func (h *staffHandler) settleMonthlyHold(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	staffID := c.Param("id")

	run, err := h.payrollService.SettleMonthlyHold(c.Request.Context(), staffID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Staff not found"})
			return
		}
		logger.Error("Failed to settle monthly hold", slog.String("staff_id", staffID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to settle monthly hold"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPayrollRunResponse(run))
}

// escrowLiability godoc
// @Summary Total escrow liability
// @Description Sums the held balances across all staff
// @Tags staff
// @Produce  json
// @Success 200 {object} dto.EscrowLiabilityResponse
// @Router /staff/escrow-liability [get]
func (h *staffHandler) escrowLiability(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	total, err := h.payrollService.TotalEscrowLiability(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute escrow liability", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute escrow liability"})
		return
	}

	c.JSON(http.StatusOK, dto.EscrowLiabilityResponse{TotalEscrowLiability: total})
}
