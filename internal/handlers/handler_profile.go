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

// profileHandler handles HTTP requests for the shop profile.
type profileHandler struct {
	profileService portssvc.ProfileSvcFacade
}

func newProfileHandler(ps portssvc.ProfileSvcFacade) *profileHandler {
	return &profileHandler{profileService: ps}
}

// registerProfileRoutes registers the shop profile routes.
func registerProfileRoutes(rg *gin.RouterGroup, profileService portssvc.ProfileSvcFacade) {
	h := newProfileHandler(profileService)

	profile := rg.Group("/profile")
	{
		profile.GET("", h.getProfile)
		profile.PUT("", h.saveProfile)
	}
}

// getProfile godoc
// @Summary Get the shop profile
// @Tags profile
// @Produce  json
// @Success 200 {object} dto.ProfileResponse
// @Failure 404 {object} map[string]string "Profile not found"
// @Router /profile [get]
func (h *profileHandler) getProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	profile, err := h.profileService.GetProfile(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
		logger.Error("Failed to get profile from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

// saveProfile godoc
// @Summary Save the shop profile
// @Description Creates or replaces the single shop profile
// @Tags profile
// @Accept  json
// @Produce  json
// @Param   profile body dto.SaveProfileRequest true "Shop details"
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /profile [put]
func (h *profileHandler) saveProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for save profile request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	profile, err := h.profileService.SaveProfile(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to save profile in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save profile"})
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}
