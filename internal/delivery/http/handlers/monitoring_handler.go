package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/veyra-labs/veyra-risk-service/internal/domain"
	"github.com/veyra-labs/veyra-risk-service/internal/usecase"
)

type MonitoringHandler struct {
	monitoringUC usecase.MonitoringUsecase
	configRepo   domain.MonitoringConfigRepository
	settingsRepo domain.MerchantSettingsRepository
}

func NewMonitoringHandler(
	monitoringUC usecase.MonitoringUsecase,
	configRepo domain.MonitoringConfigRepository,
	settingsRepo domain.MerchantSettingsRepository,
) *MonitoringHandler {
	return &MonitoringHandler{
		monitoringUC: monitoringUC,
		configRepo:   configRepo,
		settingsRepo: settingsRepo,
	}
}

func (h *MonitoringHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/merchants/:merchantId/monitoring/run", h.RunNow)
	router.PUT("/merchants/:merchantId/monitoring/schedule", h.UpsertSchedule)
	router.PUT("/merchants/:merchantId/settings", h.UpsertSettings)
}

// RunNow triggers an immediate sweep for one merchant, outside the
// scheduled window.
func (h *MonitoringHandler) RunNow(c *gin.Context) {
	result, err := h.monitoringUC.RunNow(c.Request.Context(), c.Param("merchantId"), time.Now().UTC())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"scanned":          result.Scanned,
		"still_monitoring": result.StillMonitoring,
		"cleared_now":      result.ClearedNow,
	})
}

type upsertScheduleRequest struct {
	PreferredCheckMinutes *int `json:"preferred_check_minutes"`
	TimezoneOffsetMinutes int  `json:"timezone_offset_minutes" binding:"min=-840,max=840"`
}

func (h *MonitoringHandler) UpsertSchedule(c *gin.Context) {
	var req upsertScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	preferred := domain.DefaultCheckMinutes
	if req.PreferredCheckMinutes != nil {
		preferred = *req.PreferredCheckMinutes
	}
	if preferred < 0 || preferred >= 1440 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "preferred_check_minutes must be in [0, 1440)"})
		return
	}

	config := &domain.MerchantMonitoringConfig{
		MerchantID:            c.Param("merchantId"),
		PreferredCheckMinutes: preferred,
		TimezoneOffsetMinutes: req.TimezoneOffsetMinutes,
	}
	if err := h.configRepo.Upsert(config); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"merchant_id":             config.MerchantID,
		"preferred_check_minutes": config.PreferredCheckMinutes,
		"timezone_offset_minutes": config.TimezoneOffsetMinutes,
	})
}

type upsertSettingsRequest struct {
	AutoApproveThreshold float64 `json:"auto_approve_threshold"`
	AutoApproveEnabled   bool    `json:"auto_approve_enabled"`
	AutoBlockThreshold   float64 `json:"auto_block_threshold"`
	AutoBlockEnabled     bool    `json:"auto_block_enabled"`
}

func (h *MonitoringHandler) UpsertSettings(c *gin.Context) {
	var req upsertSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.AutoApproveThreshold < 0 || req.AutoBlockThreshold > 100 ||
		req.AutoApproveThreshold >= req.AutoBlockThreshold {
		c.JSON(http.StatusBadRequest, gin.H{"error": "thresholds must satisfy 0 <= approve < block <= 100"})
		return
	}

	settings := &domain.MerchantSettings{
		MerchantID:           c.Param("merchantId"),
		AutoApproveThreshold: req.AutoApproveThreshold,
		AutoApproveEnabled:   req.AutoApproveEnabled,
		AutoBlockThreshold:   req.AutoBlockThreshold,
		AutoBlockEnabled:     req.AutoBlockEnabled,
	}
	if err := h.settingsRepo.Upsert(settings); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}
