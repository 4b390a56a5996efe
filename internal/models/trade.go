package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Trade represents one executed position recorded under a DailyLog.
// UserID is denormalized from the parent log and must always agree with it.
type Trade struct {
	ID         string `gorm:"type:uuid;primaryKey" json:"id"`
	DailyLogID string `gorm:"type:uuid;not null;index" json:"dailyLogId"`
	UserID     string `gorm:"type:uuid;not null;index" json:"userId"`

	TimeIn  *string `gorm:"size:5" json:"timeIn"`
	TimeOut *string `gorm:"size:5" json:"timeOut"`

	ProfitLoss      decimal.Decimal  `gorm:"type:decimal(20,8);not null" json:"profitLoss"`
	DripPercent     *decimal.Decimal `gorm:"type:decimal(20,8)" json:"dripPercent"`
	AmountLeveraged *decimal.Decimal `gorm:"type:decimal(20,8)" json:"amountLeveraged"`

	Runner         bool    `gorm:"default:false" json:"runner"`
	ContractsCount *int    `json:"contractsCount"`
	OptionType     *string `gorm:"size:20" json:"optionType"`
	OutcomeColor   *string `gorm:"size:20" json:"outcomeColor"`
	Strategy       *string `gorm:"size:20;index" json:"strategy"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relations
	DailyLog DailyLog `gorm:"foreignKey:DailyLogID" json:"-"`
}

// TableName specifies the table name for Trade model
func (Trade) TableName() string {
	return "trades"
}

// BeforeCreate assigns a UUID primary key
func (t *Trade) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
