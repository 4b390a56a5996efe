package analytics

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)

	assert.Equal(t, 0, s.TotalTrades)
	assert.Equal(t, "0.00", s.TotalProfitLoss)
	assert.Equal(t, 0, s.WinRate)
	assert.Equal(t, "0.00", s.AvgWin)
	assert.Equal(t, "0.00", s.AvgLoss)
	assert.Nil(t, s.BestTicker)
	assert.Empty(t, s.TradesByTicker)
}

func TestSummarizeSingleTicker(t *testing.T) {
	records := []Record{
		{ProfitLoss: dec("100"), Ticker: "AAPL"},
		{ProfitLoss: dec("-50"), Ticker: "AAPL"},
		{ProfitLoss: dec("25"), Ticker: "AAPL"},
		{ProfitLoss: dec("0"), Ticker: "AAPL"},
	}

	s := Summarize(records)

	assert.Equal(t, 4, s.TotalTrades)
	assert.Equal(t, "75.00", s.TotalProfitLoss)
	assert.Equal(t, 50, s.WinRate)
	assert.Equal(t, "62.50", s.AvgWin)
	assert.Equal(t, "-50.00", s.AvgLoss)
	require.NotNil(t, s.BestTicker)
	assert.Equal(t, "AAPL", *s.BestTicker)
	assert.Equal(t, TickerStats{Trades: 4, TotalPL: "75.00"}, s.TradesByTicker["AAPL"])
}

func TestSummarizeZeroCountsNeitherWinNorLoss(t *testing.T) {
	s := Summarize([]Record{{ProfitLoss: dec("0"), Ticker: "SPY"}})

	assert.Equal(t, 1, s.TotalTrades)
	assert.Equal(t, 0, s.WinRate)
	assert.Equal(t, "0.00", s.AvgWin)
	assert.Equal(t, "0.00", s.AvgLoss)
}

func TestSummarizeBestTickerStrictlyGreater(t *testing.T) {
	// TSLA ties AAPL; the first-encountered ticker keeps the lead.
	records := []Record{
		{ProfitLoss: dec("40"), Ticker: "AAPL"},
		{ProfitLoss: dec("40"), Ticker: "TSLA"},
	}
	s := Summarize(records)
	require.NotNil(t, s.BestTicker)
	assert.Equal(t, "AAPL", *s.BestTicker)

	// A strictly greater total takes over.
	records = append(records, Record{ProfitLoss: dec("0.01"), Ticker: "TSLA"})
	s = Summarize(records)
	require.NotNil(t, s.BestTicker)
	assert.Equal(t, "TSLA", *s.BestTicker)
}

func TestSummarizeBestTickerAllNegative(t *testing.T) {
	records := []Record{
		{ProfitLoss: dec("-10"), Ticker: "AAPL"},
		{ProfitLoss: dec("-5"), Ticker: "TSLA"},
	}
	s := Summarize(records)
	require.NotNil(t, s.BestTicker)
	assert.Equal(t, "TSLA", *s.BestTicker)
}

func TestSummarizeDecimalPrecision(t *testing.T) {
	// Many small values that drift under binary floating point.
	var records []Record
	for i := 0; i < 1000; i++ {
		records = append(records, Record{ProfitLoss: dec("0.10"), Ticker: "AAPL"})
	}
	s := Summarize(records)
	assert.Equal(t, "100.00", s.TotalProfitLoss)
	assert.Equal(t, "0.10", s.AvgWin)
}

func TestWinRateRoundsHalfUp(t *testing.T) {
	// 1 win out of 3 trades = 33.33.. -> 33; 2 of 3 = 66.66.. -> 67
	s := Summarize([]Record{
		{ProfitLoss: dec("1"), Ticker: "A"},
		{ProfitLoss: dec("-1"), Ticker: "A"},
		{ProfitLoss: dec("-1"), Ticker: "A"},
	})
	assert.Equal(t, 33, s.WinRate)

	s = Summarize([]Record{
		{ProfitLoss: dec("1"), Ticker: "A"},
		{ProfitLoss: dec("1"), Ticker: "A"},
		{ProfitLoss: dec("-1"), Ticker: "A"},
	})
	assert.Equal(t, 67, s.WinRate)
}

func TestByStrategy(t *testing.T) {
	records := []StrategyRecord{
		{ProfitLoss: dec("100"), Strategy: "orb15"},
		{ProfitLoss: dec("-20"), Strategy: " ORB15 "},
		{ProfitLoss: dec("0"), Strategy: "ORB15"},
		{ProfitLoss: dec("30"), Strategy: "vwap"},
	}

	out := ByStrategy(records)
	require.Len(t, out, 2)

	orb := out["ORB15"]
	assert.Equal(t, 3, orb.Trades)
	assert.Equal(t, 1, orb.Wins)
	assert.Equal(t, 1, orb.Losses)
	assert.Equal(t, 33, orb.WinRate)
	assert.Equal(t, "80.00", orb.TotalPL)

	vwap := out["VWAP"]
	assert.Equal(t, 1, vwap.Trades)
	assert.Equal(t, 100, vwap.WinRate)
	assert.Equal(t, "30.00", vwap.TotalPL)
}

func TestByStrategyExcludesUntagged(t *testing.T) {
	out := ByStrategy([]StrategyRecord{
		{ProfitLoss: dec("10"), Strategy: ""},
		{ProfitLoss: dec("10"), Strategy: "   "},
	})
	assert.Empty(t, out)
}
