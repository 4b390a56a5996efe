package service

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/trading-journal/internal/models"
	"github.com/trading-journal/internal/repository"
)

var (
	ErrDuplicateDailyLog = errors.New("daily log already exists for this date/ticker")
)

// DailyLogService handles daily log CRUD with ownership checks
type DailyLogService struct {
	logs *repository.DailyLogRepository
}

// NewDailyLogService creates a new DailyLogService
func NewDailyLogService(logs *repository.DailyLogRepository) *DailyLogService {
	return &DailyLogService{logs: logs}
}

// DailyLogCreateRequest represents the daily log creation payload
type DailyLogCreateRequest struct {
	Date   string `json:"date" binding:"required,datetime=2006-01-02"`
	Ticker string `json:"ticker" binding:"required,min=1,max=10"`

	CurrentPrice *decimal.Decimal `json:"currentPrice"`
	PMH          *decimal.Decimal `json:"pmh"`
	PML          *decimal.Decimal `json:"pml"`
	YDH          *decimal.Decimal `json:"ydh"`
	YDL          *decimal.Decimal `json:"ydl"`

	KeyLevels     *string  `json:"keyLevels"`
	PremarketGaps *Boolish `json:"premarketGaps"`

	StrategyOrb15 Boolish `json:"strategyOrb15"`
	StrategyOrb5  Boolish `json:"strategyOrb5"`
	Strategy3Conf Boolish `json:"strategy3Conf"`

	WaitedAPlus   *Boolish `json:"waitedAPlus"`
	TradedInZone  *Boolish `json:"tradedInZone"`
	FollowedRules *Boolish `json:"followedRules"`

	Feelings    *string `json:"feelings"`
	Reflections *string `json:"reflections"`
}

// Create creates a daily log for the user. A duplicate (date, ticker) for the
// same user yields ErrDuplicateDailyLog.
func (s *DailyLogService) Create(userID string, req *DailyLogCreateRequest) (*models.DailyLog, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, err
	}

	log := &models.DailyLog{
		UserID:        userID,
		Date:          date,
		Ticker:        normalizeTag(req.Ticker),
		CurrentPrice:  req.CurrentPrice,
		PMH:           req.PMH,
		PML:           req.PML,
		YDH:           req.YDH,
		YDL:           req.YDL,
		KeyLevels:     req.KeyLevels,
		PremarketGaps: boolPtr(req.PremarketGaps),
		StrategyOrb15: bool(req.StrategyOrb15),
		StrategyOrb5:  bool(req.StrategyOrb5),
		Strategy3Conf: bool(req.Strategy3Conf),
		WaitedAPlus:   boolPtr(req.WaitedAPlus),
		TradedInZone:  boolPtr(req.TradedInZone),
		FollowedRules: boolPtr(req.FollowedRules),
		Feelings:      req.Feelings,
		Reflections:   req.Reflections,
	}

	if err := s.logs.Create(log); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateDailyLog
		}
		return nil, err
	}
	return log, nil
}

// Get retrieves one daily log, trades included, for its owner
func (s *DailyLogService) Get(userID, id string) (*models.DailyLog, error) {
	log, err := s.logs.GetByIDWithTrades(id)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(log.UserID, userID); err != nil {
		return nil, err
	}
	return log, nil
}

// DailyLogListRequest represents the listing query parameters
type DailyLogListRequest struct {
	Ticker string `form:"ticker"`
	From   string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To     string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Page   int    `form:"page,default=1" binding:"min=1"`
	Limit  int    `form:"limit,default=10" binding:"min=1,max=50"`
	SortBy string `form:"sortBy" binding:"omitempty,oneof=date ticker"`
	Order  string `form:"order" binding:"omitempty,oneof=asc desc"`
}

// DailyLogPage is the paginated listing result
type DailyLogPage struct {
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	Total      int64             `json:"total"`
	TotalPages int               `json:"totalPages"`
	DailyLogs  []models.DailyLog `json:"dailyLogs"`
}

// List retrieves the user's daily logs with pagination and filters
func (s *DailyLogService) List(userID string, req *DailyLogListRequest) (*DailyLogPage, error) {
	filter := repository.ListFilter{
		UserID: userID,
		Ticker: normalizeTag(req.Ticker),
		Page:   req.Page,
		Limit:  req.Limit,
		SortBy: req.SortBy,
		Order:  req.Order,
	}
	if req.From != "" {
		from, err := time.Parse("2006-01-02", req.From)
		if err != nil {
			return nil, err
		}
		filter.From = &from
	}
	if req.To != "" {
		to, err := time.Parse("2006-01-02", req.To)
		if err != nil {
			return nil, err
		}
		end := time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 999000000, time.UTC)
		filter.To = &end
	}

	logs, total, err := s.logs.List(filter)
	if err != nil {
		return nil, err
	}

	totalPages := int(total) / req.Limit
	if int(total)%req.Limit > 0 {
		totalPages++
	}

	if logs == nil {
		logs = []models.DailyLog{}
	}

	return &DailyLogPage{
		Page:       req.Page,
		Limit:      req.Limit,
		Total:      total,
		TotalPages: totalPages,
		DailyLogs:  logs,
	}, nil
}

// DailyLogUpdateRequest represents a partial daily log update. Absent fields
// stay absent; only present keys reach storage.
type DailyLogUpdateRequest struct {
	Date   *string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Ticker *string `json:"ticker" binding:"omitempty,min=1,max=10"`

	CurrentPrice *decimal.Decimal `json:"currentPrice"`
	PMH          *decimal.Decimal `json:"pmh"`
	PML          *decimal.Decimal `json:"pml"`
	YDH          *decimal.Decimal `json:"ydh"`
	YDL          *decimal.Decimal `json:"ydl"`

	KeyLevels     *string  `json:"keyLevels"`
	PremarketGaps *Boolish `json:"premarketGaps"`

	StrategyOrb15 *Boolish `json:"strategyOrb15"`
	StrategyOrb5  *Boolish `json:"strategyOrb5"`
	Strategy3Conf *Boolish `json:"strategy3Conf"`

	WaitedAPlus   *Boolish `json:"waitedAPlus"`
	TradedInZone  *Boolish `json:"tradedInZone"`
	FollowedRules *Boolish `json:"followedRules"`

	Feelings    *string `json:"feelings"`
	Reflections *string `json:"reflections"`
}

// Updates returns the partial update map containing exactly the present keys
func (r *DailyLogUpdateRequest) Updates() (map[string]interface{}, error) {
	u := make(map[string]interface{})

	if r.Date != nil {
		date, err := time.Parse("2006-01-02", *r.Date)
		if err != nil {
			return nil, err
		}
		u["date"] = date
	}
	if r.Ticker != nil {
		u["ticker"] = normalizeTag(*r.Ticker)
	}
	if r.CurrentPrice != nil {
		u["current_price"] = *r.CurrentPrice
	}
	if r.PMH != nil {
		u["pmh"] = *r.PMH
	}
	if r.PML != nil {
		u["pml"] = *r.PML
	}
	if r.YDH != nil {
		u["ydh"] = *r.YDH
	}
	if r.YDL != nil {
		u["ydl"] = *r.YDL
	}
	if r.KeyLevels != nil {
		u["key_levels"] = *r.KeyLevels
	}
	if r.PremarketGaps != nil {
		u["premarket_gaps"] = bool(*r.PremarketGaps)
	}
	if r.StrategyOrb15 != nil {
		u["strategy_orb15"] = bool(*r.StrategyOrb15)
	}
	if r.StrategyOrb5 != nil {
		u["strategy_orb5"] = bool(*r.StrategyOrb5)
	}
	if r.Strategy3Conf != nil {
		u["strategy_3conf"] = bool(*r.Strategy3Conf)
	}
	if r.WaitedAPlus != nil {
		u["waited_a_plus"] = bool(*r.WaitedAPlus)
	}
	if r.TradedInZone != nil {
		u["traded_in_zone"] = bool(*r.TradedInZone)
	}
	if r.FollowedRules != nil {
		u["followed_rules"] = bool(*r.FollowedRules)
	}
	if r.Feelings != nil {
		u["feelings"] = *r.Feelings
	}
	if r.Reflections != nil {
		u["reflections"] = *r.Reflections
	}

	return u, nil
}

// Update applies a partial update to the caller's daily log
func (s *DailyLogService) Update(userID, id string, req *DailyLogUpdateRequest) (*models.DailyLog, error) {
	log, err := s.logs.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(log.UserID, userID); err != nil {
		return nil, err
	}

	updates, err := req.Updates()
	if err != nil {
		return nil, err
	}
	if len(updates) == 0 {
		return nil, ErrEmptyUpdate
	}

	updated, err := s.logs.Update(id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateDailyLog
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes the caller's daily log together with its trades
func (s *DailyLogService) Delete(userID, id string) error {
	log, err := s.logs.GetByID(id)
	if err != nil {
		return err
	}
	if err := requireOwner(log.UserID, userID); err != nil {
		return err
	}
	return s.logs.DeleteWithTrades(id)
}
