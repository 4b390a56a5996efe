package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DailyLog represents one user's journal entry for a single trading day
// and ticker. The (user, date, ticker) combination is unique.
type DailyLog struct {
	ID     string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID string    `gorm:"type:uuid;not null;uniqueIndex:uidx_user_date_ticker" json:"userId"`
	Date   time.Time `gorm:"type:date;not null;uniqueIndex:uidx_user_date_ticker" json:"date"`
	Ticker string    `gorm:"size:10;not null;uniqueIndex:uidx_user_date_ticker" json:"ticker"`

	// Price reference points, full input precision
	CurrentPrice *decimal.Decimal `gorm:"column:current_price;type:decimal(20,8)" json:"currentPrice"`
	PMH          *decimal.Decimal `gorm:"column:pmh;type:decimal(20,8)" json:"pmh"`
	PML          *decimal.Decimal `gorm:"column:pml;type:decimal(20,8)" json:"pml"`
	YDH          *decimal.Decimal `gorm:"column:ydh;type:decimal(20,8)" json:"ydh"`
	YDL          *decimal.Decimal `gorm:"column:ydl;type:decimal(20,8)" json:"ydl"`

	KeyLevels     *string `json:"keyLevels"`
	PremarketGaps *bool   `json:"premarketGaps"`

	// Strategy checklist
	StrategyOrb15 bool `gorm:"column:strategy_orb15;default:false" json:"strategyOrb15"`
	StrategyOrb5  bool `gorm:"column:strategy_orb5;default:false" json:"strategyOrb5"`
	Strategy3Conf bool `gorm:"column:strategy_3conf;default:false" json:"strategy3Conf"`

	// Rule-adherence self assessment
	WaitedAPlus   *bool `json:"waitedAPlus"`
	TradedInZone  *bool `json:"tradedInZone"`
	FollowedRules *bool `json:"followedRules"`

	Feelings    *string `json:"feelings"`
	Reflections *string `json:"reflections"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relations
	Trades []Trade `gorm:"foreignKey:DailyLogID" json:"trades,omitempty"`
}

// TableName specifies the table name for DailyLog model
func (DailyLog) TableName() string {
	return "daily_logs"
}

// BeforeCreate assigns a UUID primary key
func (d *DailyLog) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
