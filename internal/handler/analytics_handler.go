package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/trading-journal/internal/analytics"
	"github.com/trading-journal/internal/middleware"
	"github.com/trading-journal/internal/service"
	"github.com/trading-journal/pkg/response"
)

// AnalyticsHandler handles analytics API requests
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// Summary handles the overall summary
// GET /analytics/summary?from&to
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	var req service.AnalyticsRangeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ValidationError(c, bindingIssues(err))
		return
	}

	summary, err := h.analyticsService.Summary(middleware.GetUserID(c), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, summary)
}

// Strategies handles the per-strategy summary
// GET /analytics/strategies
func (h *AnalyticsHandler) Strategies(c *gin.Context) {
	stats, err := h.analyticsService.Strategies(middleware.GetUserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, stats)
}

// Weekly handles the weekly bucket summary
// GET /analytics/weekly?weeks&from&to
func (h *AnalyticsHandler) Weekly(c *gin.Context) {
	var req service.WeeklyRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ValidationError(c, bindingIssues(err))
		return
	}

	result, err := h.analyticsService.Weekly(middleware.GetUserID(c), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, result)
}

func (h *AnalyticsHandler) handleError(c *gin.Context, err error) {
	if errors.Is(err, analytics.ErrInvalidRange) {
		response.ValidationError(c, []response.Issue{{Path: "from", Message: "`from` must be <= `to`"}})
		return
	}
	_ = c.Error(err)
	response.InternalError(c)
}

// RegisterRoutes registers analytics routes behind the auth middleware
func (h *AnalyticsHandler) RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc) {
	group := r.Group("/analytics", auth)
	{
		group.GET("/summary", h.Summary)
		group.GET("/strategies", h.Strategies)
		group.GET("/weekly", h.Weekly)
	}
}
