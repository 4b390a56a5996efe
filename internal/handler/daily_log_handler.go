package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/trading-journal/internal/middleware"
	"github.com/trading-journal/internal/repository"
	"github.com/trading-journal/internal/service"
	"github.com/trading-journal/pkg/response"
)

// DailyLogHandler handles daily log API requests
type DailyLogHandler struct {
	logService *service.DailyLogService
}

// NewDailyLogHandler creates a new DailyLogHandler
func NewDailyLogHandler(logService *service.DailyLogService) *DailyLogHandler {
	return &DailyLogHandler{logService: logService}
}

// Create handles daily log creation
// POST /daily-logs
func (h *DailyLogHandler) Create(c *gin.Context) {
	var req service.DailyLogCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, bindingIssues(err))
		return
	}

	log, err := h.logService.Create(middleware.GetUserID(c), &req)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateDailyLog) {
			response.Conflict(c, "Daily log already exists for this date/ticker")
			return
		}
		_ = c.Error(err)
		response.InternalError(c)
		return
	}

	response.Created(c, gin.H{"dailyLog": log})
}

// List handles paginated daily log listing
// GET /daily-logs?page&limit&ticker&from&to&sortBy&order
func (h *DailyLogHandler) List(c *gin.Context) {
	var req service.DailyLogListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ValidationError(c, bindingIssues(err))
		return
	}

	page, err := h.logService.List(middleware.GetUserID(c), &req)
	if err != nil {
		_ = c.Error(err)
		response.InternalError(c)
		return
	}

	response.OK(c, page)
}

// Get handles fetching one daily log with its trades
// GET /daily-logs/:id
func (h *DailyLogHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	log, err := h.logService.Get(middleware.GetUserID(c), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, gin.H{"dailyLog": log})
}

// Update handles a partial daily log update
// PUT /daily-logs/:id
func (h *DailyLogHandler) Update(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req service.DailyLogUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, bindingIssues(err))
		return
	}

	log, err := h.logService.Update(middleware.GetUserID(c), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateDailyLog) {
			response.Conflict(c, "Daily log already exists for this date/ticker")
			return
		}
		h.handleError(c, err)
		return
	}

	response.OK(c, gin.H{"dailyLog": log})
}

// Delete handles daily log deletion, trades included
// DELETE /daily-logs/:id
func (h *DailyLogHandler) Delete(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.logService.Delete(middleware.GetUserID(c), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.NoContent(c)
}

func (h *DailyLogHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrDailyLogNotFound):
		response.NotFound(c, "Daily log not found.")
	case errors.Is(err, service.ErrForbidden):
		response.Forbidden(c, "Forbidden")
	case errors.Is(err, service.ErrEmptyUpdate):
		response.ValidationError(c, []response.Issue{{Path: "", Message: "At least one field is required"}})
	default:
		_ = c.Error(err)
		response.InternalError(c)
	}
}

// RegisterRoutes registers daily log routes behind the auth middleware
func (h *DailyLogHandler) RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc) {
	logs := r.Group("/daily-logs", auth)
	{
		logs.POST("", h.Create)
		logs.GET("", h.List)
		logs.GET("/:id", h.Get)
		logs.PUT("/:id", h.Update)
		logs.DELETE("/:id", h.Delete)
	}
}
