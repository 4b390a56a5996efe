package analytics

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// tally is the shared reduction primitive. A trade counts as a win when its
// P/L is strictly positive and as a loss when strictly negative; zero counts
// as neither.
type tally struct {
	trades    int
	wins      int
	losses    int
	total     decimal.Decimal
	winTotal  decimal.Decimal
	lossTotal decimal.Decimal
}

func (t *tally) add(pl decimal.Decimal) {
	t.trades++
	t.total = t.total.Add(pl)
	switch {
	case pl.IsPositive():
		t.wins++
		t.winTotal = t.winTotal.Add(pl)
	case pl.IsNegative():
		t.losses++
		t.lossTotal = t.lossTotal.Add(pl)
	}
}

// winRate returns the win percentage as an integer, rounded half-up.
func (t *tally) winRate() int {
	if t.trades == 0 {
		return 0
	}
	return int(math.Round(float64(t.wins) / float64(t.trades) * 100))
}

func avg(sum decimal.Decimal, n int) string {
	if n == 0 {
		return "0.00"
	}
	return sum.Div(decimal.NewFromInt(int64(n))).StringFixed(2)
}

// Record is one trade already scoped to the caller's user and date range.
type Record struct {
	ProfitLoss decimal.Decimal
	Ticker     string
}

// TickerStats is the per-ticker breakdown in the overall summary.
type TickerStats struct {
	Trades  int    `json:"trades"`
	TotalPL string `json:"totalPL"`
}

// Summary is the overall analytics summary.
type Summary struct {
	TotalTrades     int                    `json:"totalTrades"`
	TotalProfitLoss string                 `json:"totalProfitLoss"`
	WinRate         int                    `json:"winRate"`
	AvgWin          string                 `json:"avgWin"`
	AvgLoss         string                 `json:"avgLoss"`
	BestTicker      *string                `json:"bestTicker"`
	TradesByTicker  map[string]TickerStats `json:"tradesByTicker"`
}

// Summarize reduces records to a single aggregate plus a per-ticker
// breakdown. Empty input yields an all-zero summary with a null best ticker.
// The best ticker is the one with the highest total P/L; ties keep the
// first-encountered ticker (the leader only changes on strictly greater).
func Summarize(records []Record) Summary {
	var agg tally
	perTicker := make(map[string]*tally)
	var order []string

	for _, r := range records {
		agg.add(r.ProfitLoss)

		ticker := r.Ticker
		if ticker == "" {
			ticker = "UNKNOWN"
		}
		t, ok := perTicker[ticker]
		if !ok {
			t = &tally{}
			perTicker[ticker] = t
			order = append(order, ticker)
		}
		t.add(r.ProfitLoss)
	}

	byTicker := make(map[string]TickerStats, len(order))
	var best *string
	var bestPL decimal.Decimal

	for _, ticker := range order {
		t := perTicker[ticker]
		byTicker[ticker] = TickerStats{
			Trades:  t.trades,
			TotalPL: t.total.StringFixed(2),
		}
		if best == nil || t.total.GreaterThan(bestPL) {
			name := ticker
			best = &name
			bestPL = t.total
		}
	}

	return Summary{
		TotalTrades:     agg.trades,
		TotalProfitLoss: agg.total.StringFixed(2),
		WinRate:         agg.winRate(),
		AvgWin:          avg(agg.winTotal, agg.wins),
		AvgLoss:         avg(agg.lossTotal, agg.losses),
		BestTicker:      best,
		TradesByTicker:  byTicker,
	}
}

// StrategyRecord is one trade with its strategy tag.
type StrategyRecord struct {
	ProfitLoss decimal.Decimal
	Strategy   string
}

// StrategyStats is the per-strategy aggregate.
type StrategyStats struct {
	Trades  int    `json:"trades"`
	Wins    int    `json:"wins"`
	Losses  int    `json:"losses"`
	WinRate int    `json:"winRate"`
	TotalPL string `json:"totalPL"`
}

// ByStrategy groups records by uppercased, trimmed strategy tag. Records
// without a strategy are excluded entirely, not bucketed as unknown.
func ByStrategy(records []StrategyRecord) map[string]StrategyStats {
	perStrategy := make(map[string]*tally)

	for _, r := range records {
		strategy := strings.ToUpper(strings.TrimSpace(r.Strategy))
		if strategy == "" {
			continue
		}
		t, ok := perStrategy[strategy]
		if !ok {
			t = &tally{}
			perStrategy[strategy] = t
		}
		t.add(r.ProfitLoss)
	}

	out := make(map[string]StrategyStats, len(perStrategy))
	for strategy, t := range perStrategy {
		out[strategy] = StrategyStats{
			Trades:  t.trades,
			Wins:    t.wins,
			Losses:  t.losses,
			WinRate: t.winRate(),
			TotalPL: t.total.StringFixed(2),
		}
	}
	return out
}
