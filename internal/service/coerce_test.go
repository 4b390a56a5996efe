package service

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoolishUnmarshal(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{`true`, true},
		{`false`, false},
		{`"true"`, true},
		{`"false"`, false},
		{`"1"`, true},
		{`"0"`, false},
		{`""`, false},
		{`1`, true},
		{`0`, false},
		{`null`, false},
		{`"yes"`, true},
	}

	for _, tc := range cases {
		var b Boolish
		require.NoError(t, json.Unmarshal([]byte(tc.in), &b), "input %s", tc.in)
		assert.Equal(t, tc.want, bool(b), "input %s", tc.in)
	}
}

func TestNormalizeTag(t *testing.T) {
	assert.Equal(t, "ORB15", normalizeTag(" orb15 "))
	assert.Equal(t, "CALL", normalizeTag("Call"))
	assert.Equal(t, "", normalizeTag("   "))
}

func TestTradeUpdateRequestPartial(t *testing.T) {
	var req TradeUpdateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"profitLoss":"12.5"}`), &req))

	updates := req.Updates()
	require.Len(t, updates, 1, "absent fields must stay absent")

	pl, ok := updates["profit_loss"].(decimal.Decimal)
	require.True(t, ok)
	assert.True(t, pl.Equal(decimal.RequireFromString("12.5")))
}

func TestTradeUpdateRequestRejectsEmptyNumericString(t *testing.T) {
	var req TradeUpdateRequest
	err := json.Unmarshal([]byte(`{"profitLoss":""}`), &req)
	assert.Error(t, err, "empty strings are invalid, not zero")

	err = json.Unmarshal([]byte(`{"profitLoss":"   "}`), &req)
	assert.Error(t, err)
}

func TestTradeUpdateRequestNormalizesTags(t *testing.T) {
	var req TradeUpdateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"strategy":" orb15 ","optionType":"call","outcomeColor":"green"}`), &req))

	updates := req.Updates()
	assert.Equal(t, "ORB15", updates["strategy"])
	assert.Equal(t, "CALL", updates["option_type"])
	assert.Equal(t, "GREEN", updates["outcome_color"])
}

func TestTradeUpdateRequestAcceptsNumericValues(t *testing.T) {
	var req TradeUpdateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"profitLoss":125.5,"contractsCount":3,"runner":"1"}`), &req))

	updates := req.Updates()
	require.Len(t, updates, 3)

	pl := updates["profit_loss"].(decimal.Decimal)
	assert.Equal(t, "125.50", pl.StringFixed(2))
	assert.Equal(t, 3, updates["contracts_count"])
	assert.Equal(t, true, updates["runner"])
}

func TestDailyLogUpdateRequestPartial(t *testing.T) {
	var req DailyLogUpdateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"ticker":"aapl","followedRules":"true"}`), &req))

	updates, err := req.Updates()
	require.NoError(t, err)
	require.Len(t, updates, 2)
	assert.Equal(t, "AAPL", updates["ticker"])
	assert.Equal(t, true, updates["followed_rules"])
}
