package piconero_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sebamiro/piconero"
)

func TestAmountUnmarshalExact(t *testing.T) {
	for _, raw := range []string{
		"0",
		"1",
		"1125125151521",
		// 2^53 + 1, the first value float64 cannot hold, then max
		// uint64, then 2^128.
		"9007199254740993",
		"18446744073709551615",
		"340282366920938463463374607431768211456",
	} {
		var a piconero.Amount
		require.NoError(t, json.Unmarshal([]byte(raw), &a), raw)
		assert.Equal(t, raw, a.String())
	}
}

func TestAmountRejectsFloatLexicalForm(t *testing.T) {
	for _, raw := range []string{"1.5", "1e12", "1E12", "0.0", "9007199254740993.0"} {
		var a piconero.Amount
		assert.Error(t, json.Unmarshal([]byte(raw), &a), raw)
	}
}

func TestAmountRejectsStrings(t *testing.T) {
	// A string that merely looks numeric must never decode as an amount.
	var a piconero.Amount
	assert.Error(t, json.Unmarshal([]byte(`"123"`), &a))
	assert.Error(t, json.Unmarshal([]byte(`"deadbeef"`), &a))
}

func TestAmountMarshalBareNumber(t *testing.T) {
	b, err := json.Marshal(piconero.NewAmount(9007199254740993))
	require.NoError(t, err)
	assert.Equal(t, "9007199254740993", string(b))

	// Inside a params struct the amount must serialize as a native JSON
	// number, not a quoted string.
	b, err = json.Marshal(piconero.Destination{
		Amount:  *piconero.NewAmount(1125125151521),
		Address: "9wviCeWe2D8XS82k2ovp5EUYLzBt9pYNW2LXUFsZiv8S3Mt21FZ5qQaAroko1enzw3eGr9qC7X1D7Geoo2RrAotYPwq9Gm8",
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":1125125151521,"address":"9wviCeWe2D8XS82k2ovp5EUYLzBt9pYNW2LXUFsZiv8S3Mt21FZ5qQaAroko1enzw3eGr9qC7X1D7Geoo2RrAotYPwq9Gm8"}`, string(b))
}

func TestAmountRoundTripIdempotent(t *testing.T) {
	raw := []byte("9007199254740993")
	var a piconero.Amount
	require.NoError(t, json.Unmarshal(raw, &a))

	encoded, err := json.Marshal(&a)
	require.NoError(t, err)
	require.Equal(t, string(raw), string(encoded))

	var b piconero.Amount
	require.NoError(t, json.Unmarshal(encoded, &b))
	assert.Zero(t, a.Cmp(&b))
}

func TestAmountInArrays(t *testing.T) {
	var list []piconero.Amount
	require.NoError(t, json.Unmarshal([]byte(`[1,2,9007199254740993]`), &list))
	require.Len(t, list, 3)
	assert.Equal(t, "1", list[0].String())
	assert.Equal(t, "2", list[1].String())
	assert.Equal(t, "9007199254740993", list[2].String())
}

func TestAmountXMRConversion(t *testing.T) {
	a := piconero.NewAmount(1125125151521)
	assert.Equal(t, "1.125125151521", a.XMR().String())

	back, err := piconero.AmountFromXMR(decimal.RequireFromString("1.125125151521"))
	require.NoError(t, err)
	assert.Zero(t, a.Cmp(back))

	_, err = piconero.AmountFromXMR(decimal.RequireFromString("0.1234567890123"))
	assert.Error(t, err, "sub-piconero precision must not silently truncate")
}
