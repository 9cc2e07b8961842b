package piconero_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sebamiro/piconero"
)

func TestOpenWallet(t *testing.T) {
	ws := newWalletServer(t, `{}`)

	require.NoError(t, ws.client(t).OpenWallet("wallet1", "secret"))
	assert.Equal(t, "open_wallet", ws.method)
	assert.JSONEq(t, `{"filename": "wallet1", "password": "secret"}`, string(ws.params))
}

func TestCreateWalletOmitsEmptyPassword(t *testing.T) {
	ws := newWalletServer(t, `{}`)

	require.NoError(t, ws.client(t).CreateWallet("wallet1", "", "English"))
	assert.JSONEq(t, `{"filename": "wallet1", "language": "English"}`, string(ws.params))
}

func TestRestoreDeterministicWallet(t *testing.T) {
	ws := newWalletServer(t, `{
		"address": "9wviCeWe2D8XS82k2ovp5EUYLzBt9pYNW2LXUFsZiv8S3Mt21FZ5qQaAroko1enzw3eGr9qC7X1D7Geoo2RrAotYPwq9Gm8",
		"info": "Wallet has been restored successfully.",
		"seed": "awkward vogue odometer amply bagpipe kisses poker aspire slug eluded hydrogen selfish later toolbox enigma wolf tweezers eluded gnome soprano ladder broken jukebox lordship aspire",
		"was_deprecated": false
	}`)

	r, err := ws.client(t).RestoreDeterministicWallet(piconero.RestoreDeterministicWalletRequest{
		Filename: "restored",
		Seed:     "awkward vogue odometer ...",
	})
	require.NoError(t, err)
	assert.Equal(t, "restore_deterministic_wallet", ws.method)
	assert.NotEmpty(t, r.Seed)
	assert.False(t, r.WasDeprecated)
}

func TestRefresh(t *testing.T) {
	ws := newWalletServer(t, `{"blocks_fetched": 24, "received_money": true}`)

	r, err := ws.client(t).Refresh(100000)
	require.NoError(t, err)
	assert.JSONEq(t, `{"start_height": 100000}`, string(ws.params))
	assert.Equal(t, uint64(24), r.BlocksFetched)
	assert.True(t, r.ReceivedMoney)
}

func TestCheckTxKey(t *testing.T) {
	ws := newWalletServer(t, `{"confirmations": 0, "in_pool": false, "received": 1000000000000}`)

	r, err := ws.client(t).CheckTxKey(
		"19d5089f9469db3d90aca9024dfcb17ce94b948300101c8345a5e9f7257353be",
		"feba662cf8fb6d0d0da18fc9b70ab28e01cc76311278fdd7fe7ab16360762b06",
		"7BnERTpvL5MbCLtj5n9No7J5oE5hHiB3tVCK5cjSvCsYWD2WRJLFuWeKTLiXo5QJqt2ZwUaLy2Vh1Ad51K7FNgqcHgjW85o")
	require.NoError(t, err)
	assert.Equal(t, "1000000000000", r.Received.String())
	assert.False(t, r.InPool)
}

func TestQueryKey(t *testing.T) {
	ws := newWalletServer(t, `{"key": "7e341d..."}`)

	key, err := ws.client(t).QueryKey(piconero.KeyMnemonic)
	require.NoError(t, err)
	assert.Equal(t, "query_key", ws.method)
	assert.JSONEq(t, `{"key_type": "mnemonic"}`, string(ws.params))
	assert.Equal(t, "7e341d...", key)
}

func TestExportKeyImages(t *testing.T) {
	ws := newWalletServer(t, `{"offset": 0, "signed_key_images": [{"key_image": "cd35239b72a35e26a57ed17400c0b66944a55de9d5bda0f21190fed17f8ea876", "signature": "c9d736869355da2538ab4af188279f84138c958edbae3c5caf388a63cd8e780b8c5a1aed850bd79657df659422c463608ea4e0c730ba9b662c906ae933816d00"}]}`)

	r, err := ws.client(t).ExportKeyImages(true)
	require.NoError(t, err)
	require.Len(t, r.SignedKeyImages, 1)
	assert.NotEmpty(t, r.SignedKeyImages[0].Signature)
}
