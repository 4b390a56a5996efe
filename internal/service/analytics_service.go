package service

import (
	"time"

	"github.com/trading-journal/internal/analytics"
	"github.com/trading-journal/internal/repository"
)

// AnalyticsService computes aggregate statistics over a user's trades
type AnalyticsService struct {
	logs   *repository.DailyLogRepository
	trades *repository.TradeRepository
}

// NewAnalyticsService creates a new AnalyticsService
func NewAnalyticsService(logs *repository.DailyLogRepository, trades *repository.TradeRepository) *AnalyticsService {
	return &AnalyticsService{logs: logs, trades: trades}
}

// AnalyticsRangeRequest represents the summary query parameters
type AnalyticsRangeRequest struct {
	From string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To   string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

// WeeklyRequest represents the weekly query parameters
type WeeklyRequest struct {
	Weeks int    `form:"weeks,default=8" binding:"min=1,max=52"`
	From  string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To    string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

// Summary computes the overall summary plus a per-ticker breakdown over the
// optional [from, to] range (inclusive, UTC).
func (s *AnalyticsService) Summary(userID string, req *AnalyticsRangeRequest) (*analytics.Summary, error) {
	var from, to *time.Time
	if req.From != "" {
		d, err := time.Parse("2006-01-02", req.From)
		if err != nil {
			return nil, err
		}
		from = &d
	}
	if req.To != "" {
		d, err := time.Parse("2006-01-02", req.To)
		if err != nil {
			return nil, err
		}
		end := analytics.EndOfDay(d)
		to = &end
	}
	if from != nil && to != nil && from.After(*to) {
		return nil, analytics.ErrInvalidRange
	}

	refs, err := s.logs.RefsInRange(userID, from, to)
	if err != nil {
		return nil, err
	}
	if len(refs) == 0 {
		summary := analytics.Summarize(nil)
		return &summary, nil
	}

	ids := make([]string, len(refs))
	tickerByLog := make(map[string]string, len(refs))
	for i, ref := range refs {
		ids[i] = ref.ID
		tickerByLog[ref.ID] = ref.Ticker
	}

	rows, err := s.trades.ByLogIDs(userID, ids)
	if err != nil {
		return nil, err
	}

	records := make([]analytics.Record, len(rows))
	for i, row := range rows {
		records[i] = analytics.Record{
			ProfitLoss: row.ProfitLoss,
			Ticker:     tickerByLog[row.DailyLogID],
		}
	}

	summary := analytics.Summarize(records)
	return &summary, nil
}

// Strategies computes per-strategy statistics over all tagged trades
func (s *AnalyticsService) Strategies(userID string) (map[string]analytics.StrategyStats, error) {
	rows, err := s.trades.WithStrategy(userID)
	if err != nil {
		return nil, err
	}

	records := make([]analytics.StrategyRecord, len(rows))
	for i, row := range rows {
		records[i] = analytics.StrategyRecord{
			ProfitLoss: row.ProfitLoss,
			Strategy:   row.Strategy,
		}
	}

	return analytics.ByStrategy(records), nil
}

// WeeklyRange echoes the resolved date range
type WeeklyRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// WeeklyResult is the weekly summary response
type WeeklyResult struct {
	Range          WeeklyRange            `json:"range"`
	WeeksRequested int                    `json:"weeksRequested"`
	WeeksReturned  int                    `json:"weeksReturned"`
	Weeks          []analytics.WeekBucket `json:"weeks"`
}

// Weekly buckets the user's trades into Monday-anchored weeks
func (s *AnalyticsService) Weekly(userID string, req *WeeklyRequest) (*WeeklyResult, error) {
	start, end, count, err := analytics.ResolveWeeklyRange(req.From, req.To, req.Weeks, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	rows, err := s.trades.InDateRange(userID, start, end)
	if err != nil {
		return nil, err
	}

	records := make([]analytics.DatedRecord, len(rows))
	for i, row := range rows {
		records[i] = analytics.DatedRecord{
			ProfitLoss: row.ProfitLoss,
			Date:       row.Date,
		}
	}

	weeks := analytics.Weekly(records, end, count)

	return &WeeklyResult{
		Range:          WeeklyRange{From: analytics.YMD(start), To: analytics.YMD(end)},
		WeeksRequested: req.Weeks,
		WeeksReturned:  len(weeks),
		Weeks:          weeks,
	}, nil
}
