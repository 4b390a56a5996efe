package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/trading-journal/internal/models"
)

var (
	ErrDailyLogNotFound = errors.New("daily log not found")
)

// DailyLogRepository handles daily log data access
type DailyLogRepository struct {
	db *gorm.DB
}

// NewDailyLogRepository creates a new DailyLogRepository
func NewDailyLogRepository(db *gorm.DB) *DailyLogRepository {
	return &DailyLogRepository{db: db}
}

// Create creates a new daily log. A (user, date, ticker) duplicate surfaces
// as gorm.ErrDuplicatedKey.
func (r *DailyLogRepository) Create(log *models.DailyLog) error {
	return r.db.Create(log).Error
}

// GetByID retrieves a daily log by ID
func (r *DailyLogRepository) GetByID(id string) (*models.DailyLog, error) {
	var log models.DailyLog
	result := r.db.Where("id = ?", id).First(&log)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrDailyLogNotFound
		}
		return nil, result.Error
	}
	return &log, nil
}

// GetByIDWithTrades retrieves a daily log with its trades preloaded
func (r *DailyLogRepository) GetByIDWithTrades(id string) (*models.DailyLog, error) {
	var log models.DailyLog
	result := r.db.Preload("Trades").Where("id = ?", id).First(&log)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrDailyLogNotFound
		}
		return nil, result.Error
	}
	return &log, nil
}

// ListFilter describes a paginated daily log listing
type ListFilter struct {
	UserID string
	Ticker string
	From   *time.Time
	To     *time.Time
	Page   int
	Limit  int
	SortBy string // "date" or "ticker"
	Order  string // "asc" or "desc"
}

// List retrieves daily logs for a user with pagination and filters
func (r *DailyLogRepository) List(f ListFilter) ([]models.DailyLog, int64, error) {
	query := r.db.Model(&models.DailyLog{}).Where("user_id = ?", f.UserID)

	if f.Ticker != "" {
		query = query.Where("ticker = ?", f.Ticker)
	}
	if f.From != nil {
		query = query.Where("date >= ?", *f.From)
	}
	if f.To != nil {
		query = query.Where("date <= ?", *f.To)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := "date"
	if f.SortBy == "ticker" {
		sortBy = "ticker"
	}
	order := "desc"
	if f.Order == "asc" {
		order = "asc"
	}

	var logs []models.DailyLog
	offset := (f.Page - 1) * f.Limit
	result := query.
		Order(sortBy + " " + order).
		Offset(offset).
		Limit(f.Limit).
		Find(&logs)

	return logs, total, result.Error
}

// Update applies a partial update and returns the updated row
func (r *DailyLogRepository) Update(id string, updates map[string]interface{}) (*models.DailyLog, error) {
	if err := r.db.Model(&models.DailyLog{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

// DeleteWithTrades deletes a daily log and its trades in one transaction.
// The cascade is explicit so it does not depend on database FK configuration.
func (r *DailyLogRepository) DeleteWithTrades(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("daily_log_id = ?", id).Delete(&models.Trade{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.DailyLog{}).Error
	})
}

// LogRef is the (id, ticker) projection used by analytics
type LogRef struct {
	ID     string
	Ticker string
}

// RefsInRange retrieves log references for a user, optionally bounded by a
// date range (inclusive on both ends).
func (r *DailyLogRepository) RefsInRange(userID string, from, to *time.Time) ([]LogRef, error) {
	query := r.db.Model(&models.DailyLog{}).Where("user_id = ?", userID)
	if from != nil {
		query = query.Where("date >= ?", *from)
	}
	if to != nil {
		query = query.Where("date <= ?", *to)
	}

	var refs []LogRef
	err := query.Select("id, ticker").Scan(&refs).Error
	return refs, err
}
