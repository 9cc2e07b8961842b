package piconero_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sebamiro/piconero"
)

func TestGetAddress(t *testing.T) {
	ws := newWalletServer(t, `{
		"address": "9wviCeWe2D8XS82k2ovp5EUYLzBt9pYNW2LXUFsZiv8S3Mt21FZ5qQaAroko1enzw3eGr9qC7X1D7Geoo2RrAotYPwq9Gm8",
		"addresses": [
			{"address": "9wviCeWe2D8XS82k2ovp5EUYLzBt9pYNW2LXUFsZiv8S3Mt21FZ5qQaAroko1enzw3eGr9qC7X1D7Geoo2RrAotYPwq9Gm8", "address_index": 0, "label": "Primary account", "used": true},
			{"address": "Bh3ttLbjGFnVGCeGJF1HgVh4DfCaBNpDt7PQAgsC2GFug7WKskgfbTmB6e7UupyiijiHDQPmDC7wSCo9eLoGgbAFJQaAaDS", "address_index": 1, "label": "", "used": true}
		]
	}`)

	r, err := ws.client(t).GetAddress(0, 0, 1)
	require.NoError(t, err)

	assert.Equal(t, "get_address", ws.method)
	assert.JSONEq(t, `{"account_index": 0, "address_index": [0, 1]}`, string(ws.params))
	require.Len(t, r.Addresses, 2)
	assert.Equal(t, "Primary account", r.Addresses[0].Label)
	assert.Equal(t, uint32(1), r.Addresses[1].AddressIndex)
}

func TestGetAccounts(t *testing.T) {
	ws := newWalletServer(t, `{
		"subaddress_accounts": [
			{"account_index": 0, "balance": 157663195572433688, "base_address": "55LTR8KniP4LQGJSPtbYDacR7dz8RBFnsfAKMaMuwUNYX6aQbBcovzDPyrQF9KXF9tVU6Xk3K8no1BywnJX6GvZX8yJsXvt", "label": "Primary account", "tag": "myTag", "unlocked_balance": 157443303037455077},
			{"account_index": 1, "balance": 0, "base_address": "77Vx9cs1VPicFndSVgYUvTdLCJEZw9h81hXLMYsjBCXSJfUehLa9TDW3Ffh45SQa7xb6dUs18mpNxfUhQGqfwXPSMrvKhVp", "label": "Secondary account", "tag": "", "unlocked_balance": 0}
		],
		"total_balance": 157663195572433688,
		"total_unlocked_balance": 157443303037455077
	}`)

	r, err := ws.client(t).GetAccounts("myTag")
	require.NoError(t, err)

	assert.JSONEq(t, `{"tag": "myTag"}`, string(ws.params))
	require.Len(t, r.SubaddressAccounts, 2)
	assert.Equal(t, "157663195572433688", r.SubaddressAccounts[0].Balance.String())
	assert.Equal(t, "157443303037455077", r.TotalUnlockedBalance.String())
}

func TestCreateAccountOmitsEmptyLabel(t *testing.T) {
	ws := newWalletServer(t, `{"account_index": 1, "address": "77Vx9cs1VPicFndSVgYUvTdLCJEZw9h81hXLMYsjBCXSJfUehLa9TDW3Ffh45SQa7xb6dUs18mpNxfUhQGqfwXPSMrvKhVp"}`)

	r, err := ws.client(t).CreateAccount("")
	require.NoError(t, err)

	// Unset optionals are dropped from the body, never sent as null.
	assert.JSONEq(t, `{}`, string(ws.params))
	assert.Equal(t, uint32(1), r.AccountIndex)
}

func TestLabelAddress(t *testing.T) {
	ws := newWalletServer(t, `{}`)

	err := ws.client(t).LabelAddress(piconero.SubaddressIndex{Major: 0, Minor: 5}, "cold storage")
	require.NoError(t, err)

	assert.Equal(t, "label_address", ws.method)
	assert.JSONEq(t, `{"index": {"major": 0, "minor": 5}, "label": "cold storage"}`, string(ws.params))
}

func TestGetHeight(t *testing.T) {
	ws := newWalletServer(t, `{"height": 145545}`)

	r, err := ws.client(t).GetHeight()
	require.NoError(t, err)
	assert.Equal(t, uint64(145545), r.Height)
}

func TestValidateAddress(t *testing.T) {
	ws := newWalletServer(t, `{"valid": true, "integrated": false, "subaddress": false, "nettype": "mainnet", "openalias_address": ""}`)

	r, err := ws.client(t).ValidateAddress(piconero.ValidateAddressRequest{
		Address: "55LTR8KniP4LQGJSPtbYDacR7dz8RBFnsfAKMaMuwUNYX6aQbBcovzDPyrQF9KXF9tVU6Xk3K8no1BywnJX6GvZX8yJsXvt",
	})
	require.NoError(t, err)
	assert.True(t, r.Valid)
	assert.Equal(t, "mainnet", r.Nettype)
}
