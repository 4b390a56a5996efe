package service

import (
	"github.com/shopspring/decimal"

	"github.com/trading-journal/internal/models"
	"github.com/trading-journal/internal/repository"
)

// TradeService handles trade CRUD with ownership checks
type TradeService struct {
	trades *repository.TradeRepository
	logs   *repository.DailyLogRepository
}

// NewTradeService creates a new TradeService
func NewTradeService(trades *repository.TradeRepository, logs *repository.DailyLogRepository) *TradeService {
	return &TradeService{trades: trades, logs: logs}
}

// TradeCreateRequest represents the trade creation payload. Numeric-like
// fields accept numbers or numeric strings; empty strings fail validation
// instead of becoming zero.
type TradeCreateRequest struct {
	TimeIn  string `json:"timeIn" binding:"required,hhmm"`
	TimeOut string `json:"timeOut" binding:"required,hhmm"`

	ProfitLoss      *decimal.Decimal `json:"profitLoss" binding:"required"`
	DripPercent     *decimal.Decimal `json:"dripPercent"`
	AmountLeveraged *decimal.Decimal `json:"amountLeveraged"`

	Runner         Boolish `json:"runner"`
	ContractsCount *int    `json:"contractsCount" binding:"omitempty,gt=0"`
	OptionType     *string `json:"optionType" binding:"omitempty,max=20"`
	OutcomeColor   *string `json:"outcomeColor" binding:"omitempty,max=20"`
	Strategy       *string `json:"strategy" binding:"omitempty,max=20"`
}

// Create records a trade under the caller's daily log. The user id is
// denormalized from the parent log so both ownership paths stay consistent.
func (s *TradeService) Create(userID, dailyLogID string, req *TradeCreateRequest) (*models.Trade, error) {
	log, err := s.logs.GetByID(dailyLogID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(log.UserID, userID); err != nil {
		return nil, err
	}

	trade := &models.Trade{
		DailyLogID:      log.ID,
		UserID:          log.UserID,
		TimeIn:          &req.TimeIn,
		TimeOut:         &req.TimeOut,
		ProfitLoss:      *req.ProfitLoss,
		DripPercent:     req.DripPercent,
		AmountLeveraged: req.AmountLeveraged,
		Runner:          bool(req.Runner),
		ContractsCount:  req.ContractsCount,
		OptionType:      tagPtr(req.OptionType),
		OutcomeColor:    tagPtr(req.OutcomeColor),
		Strategy:        tagPtr(req.Strategy),
	}

	if err := s.trades.Create(trade); err != nil {
		return nil, err
	}
	return trade, nil
}

// TradeUpdateRequest represents a partial trade update (PUT and PATCH share
// it). Absent fields stay absent.
type TradeUpdateRequest struct {
	TimeIn  *string `json:"timeIn" binding:"omitempty,hhmm"`
	TimeOut *string `json:"timeOut" binding:"omitempty,hhmm"`

	ProfitLoss      *decimal.Decimal `json:"profitLoss"`
	DripPercent     *decimal.Decimal `json:"dripPercent"`
	AmountLeveraged *decimal.Decimal `json:"amountLeveraged"`

	Runner         *Boolish `json:"runner"`
	ContractsCount *int     `json:"contractsCount" binding:"omitempty,gt=0"`
	OptionType     *string  `json:"optionType" binding:"omitempty,max=20"`
	OutcomeColor   *string  `json:"outcomeColor" binding:"omitempty,max=20"`
	Strategy       *string  `json:"strategy" binding:"omitempty,max=20"`
}

// Updates returns the partial update map containing exactly the present keys
func (r *TradeUpdateRequest) Updates() map[string]interface{} {
	u := make(map[string]interface{})

	if r.TimeIn != nil {
		u["time_in"] = *r.TimeIn
	}
	if r.TimeOut != nil {
		u["time_out"] = *r.TimeOut
	}
	if r.ProfitLoss != nil {
		u["profit_loss"] = *r.ProfitLoss
	}
	if r.DripPercent != nil {
		u["drip_percent"] = *r.DripPercent
	}
	if r.AmountLeveraged != nil {
		u["amount_leveraged"] = *r.AmountLeveraged
	}
	if r.Runner != nil {
		u["runner"] = bool(*r.Runner)
	}
	if r.ContractsCount != nil {
		u["contracts_count"] = *r.ContractsCount
	}
	if r.OptionType != nil {
		u["option_type"] = normalizeTag(*r.OptionType)
	}
	if r.OutcomeColor != nil {
		u["outcome_color"] = normalizeTag(*r.OutcomeColor)
	}
	if r.Strategy != nil {
		u["strategy"] = normalizeTag(*r.Strategy)
	}

	return u
}

// Update applies a partial update to the caller's trade
func (s *TradeService) Update(userID, tradeID string, req *TradeUpdateRequest) (*models.Trade, error) {
	if _, err := s.authorize(userID, tradeID); err != nil {
		return nil, err
	}

	updates := req.Updates()
	if len(updates) == 0 {
		return nil, ErrEmptyUpdate
	}

	return s.trades.Update(tradeID, updates)
}

// Delete removes the caller's trade
func (s *TradeService) Delete(userID, tradeID string) error {
	if _, err := s.authorize(userID, tradeID); err != nil {
		return err
	}
	return s.trades.Delete(tradeID)
}

// authorize resolves a trade and checks the caller owns it: absent trades
// keep their not-found error, foreign trades become ErrForbidden.
func (s *TradeService) authorize(userID, tradeID string) (*models.Trade, error) {
	trade, err := s.trades.GetByID(tradeID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(trade.UserID, userID); err != nil {
		return nil, err
	}
	return trade, nil
}

func tagPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := normalizeTag(*s)
	return &v
}
