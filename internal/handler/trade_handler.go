package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/trading-journal/internal/middleware"
	"github.com/trading-journal/internal/repository"
	"github.com/trading-journal/internal/service"
	"github.com/trading-journal/pkg/response"
)

// TradeHandler handles trade API requests
type TradeHandler struct {
	tradeService *service.TradeService
}

// NewTradeHandler creates a new TradeHandler
func NewTradeHandler(tradeService *service.TradeService) *TradeHandler {
	return &TradeHandler{tradeService: tradeService}
}

// Create handles adding a trade to a daily log the caller owns
// POST /trades/daily-logs/:id/trades
func (h *TradeHandler) Create(c *gin.Context) {
	dailyLogID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req service.TradeCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, bindingIssues(err))
		return
	}

	trade, err := h.tradeService.Create(middleware.GetUserID(c), dailyLogID, &req)
	if err != nil {
		if errors.Is(err, repository.ErrDailyLogNotFound) {
			response.NotFound(c, "Daily log not found.")
			return
		}
		h.handleError(c, err)
		return
	}

	response.Created(c, gin.H{"trade": trade})
}

// Update handles a partial trade update; PUT and PATCH behave identically
// PUT|PATCH /trades/:tradeId
func (h *TradeHandler) Update(c *gin.Context) {
	tradeID, ok := uuidParam(c, "tradeId")
	if !ok {
		return
	}

	var req service.TradeUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, bindingIssues(err))
		return
	}

	trade, err := h.tradeService.Update(middleware.GetUserID(c), tradeID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, gin.H{"trade": trade})
}

// Delete handles trade deletion
// DELETE /trades/:tradeId
func (h *TradeHandler) Delete(c *gin.Context) {
	tradeID, ok := uuidParam(c, "tradeId")
	if !ok {
		return
	}

	if err := h.tradeService.Delete(middleware.GetUserID(c), tradeID); err != nil {
		h.handleError(c, err)
		return
	}

	response.NoContent(c)
}

func (h *TradeHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrTradeNotFound):
		response.NotFound(c, "Trade not found.")
	case errors.Is(err, service.ErrForbidden):
		response.Forbidden(c, "Forbidden")
	case errors.Is(err, service.ErrEmptyUpdate):
		response.ValidationError(c, []response.Issue{{Path: "", Message: "At least one field is required"}})
	default:
		_ = c.Error(err)
		response.InternalError(c)
	}
}

// RegisterRoutes registers trade routes behind the auth middleware
func (h *TradeHandler) RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc) {
	trades := r.Group("/trades", auth)
	{
		trades.POST("/daily-logs/:id/trades", h.Create)
		trades.PUT("/:tradeId", h.Update)
		trades.PATCH("/:tradeId", h.Update)
		trades.DELETE("/:tradeId", h.Delete)
	}
}
