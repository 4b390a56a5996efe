package repository

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/trading-journal/internal/models"
)

var (
	ErrTradeNotFound = errors.New("trade not found")
)

// TradeRepository handles trade data access
type TradeRepository struct {
	db *gorm.DB
}

// NewTradeRepository creates a new TradeRepository
func NewTradeRepository(db *gorm.DB) *TradeRepository {
	return &TradeRepository{db: db}
}

// Create creates a new trade
func (r *TradeRepository) Create(trade *models.Trade) error {
	return r.db.Create(trade).Error
}

// GetByID retrieves a trade by ID
func (r *TradeRepository) GetByID(id string) (*models.Trade, error) {
	var trade models.Trade
	result := r.db.Where("id = ?", id).First(&trade)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTradeNotFound
		}
		return nil, result.Error
	}
	return &trade, nil
}

// Update applies a partial update and returns the updated row
func (r *TradeRepository) Update(id string, updates map[string]interface{}) (*models.Trade, error) {
	if err := r.db.Model(&models.Trade{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

// Delete deletes a trade
func (r *TradeRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Trade{}).Error
}

// PLByLog is the (profit/loss, parent log) projection used by the summary
type PLByLog struct {
	ProfitLoss decimal.Decimal
	DailyLogID string
}

// ByLogIDs retrieves P/L rows for a user's trades under the given logs
func (r *TradeRepository) ByLogIDs(userID string, logIDs []string) ([]PLByLog, error) {
	var rows []PLByLog
	err := r.db.Model(&models.Trade{}).
		Select("profit_loss, daily_log_id").
		Where("user_id = ? AND daily_log_id IN ?", userID, logIDs).
		Scan(&rows).Error
	return rows, err
}

// DatedPL is the (profit/loss, log date) projection used by weekly buckets
type DatedPL struct {
	ProfitLoss decimal.Decimal
	Date       time.Time
}

// InDateRange retrieves a user's trades joined with their parent log dates,
// bounded by the given range (inclusive on both ends).
func (r *TradeRepository) InDateRange(userID string, start, end time.Time) ([]DatedPL, error) {
	var rows []DatedPL
	err := r.db.Model(&models.Trade{}).
		Select("trades.profit_loss, daily_logs.date").
		Joins("JOIN daily_logs ON daily_logs.id = trades.daily_log_id").
		Where("trades.user_id = ? AND daily_logs.date >= ? AND daily_logs.date <= ?", userID, start, end).
		Scan(&rows).Error
	return rows, err
}

// StrategyPL is the (profit/loss, strategy) projection used by the
// per-strategy summary
type StrategyPL struct {
	ProfitLoss decimal.Decimal
	Strategy   string
}

// WithStrategy retrieves a user's trades that carry a strategy tag
func (r *TradeRepository) WithStrategy(userID string) ([]StrategyPL, error) {
	var rows []StrategyPL
	err := r.db.Model(&models.Trade{}).
		Select("profit_loss, strategy").
		Where("user_id = ? AND strategy IS NOT NULL AND strategy <> ''", userID).
		Scan(&rows).Error
	return rows, err
}
