package piconero_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sebamiro/piconero"
	"github.com/sebamiro/piconero/internal/rpc"
)

// walletServer fakes one wallet RPC method: it records the request
// envelope and answers with the given result payload.
type walletServer struct {
	srv    *httptest.Server
	method string
	params json.RawMessage
}

func newWalletServer(t *testing.T, result string) *walletServer {
	t.Helper()
	ws := &walletServer{}
	ws.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Method string          `json:"method"`
			Params json.RawMessage `json:"params"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		ws.method = req.Method
		ws.params = req.Params
		w.Write([]byte(`{"jsonrpc":"2.0","id":"0","result":` + result + `}`))
	}))
	t.Cleanup(ws.srv.Close)
	return ws
}

func (ws *walletServer) client(t *testing.T) piconero.Client {
	t.Helper()
	u, err := url.Parse(ws.srv.URL)
	require.NoError(t, err)
	port, err := strconv.Atoi(u.Port())
	require.NoError(t, err)
	return piconero.New(u.Hostname(), uint16(port))
}

func TestGetBalance(t *testing.T) {
	ws := newWalletServer(t, `{
		"balance": 1125125151521,
		"unlocked_balance": 1125125151521,
		"multisig_import_needed": false,
		"per_subaddress": [{"address_index": 0, "balance": 1125125151521}]
	}`)

	r, err := ws.client(t).GetBalance(piconero.GetBalanceRequest{})
	require.NoError(t, err)

	assert.Equal(t, "get_balance", ws.method)
	assert.Equal(t, "1125125151521", r.Balance.String())
	assert.Equal(t, "1125125151521", r.UnlockedBalance.String())
	assert.False(t, r.MultisigImportNeeded)
	require.Len(t, r.PerSubaddress, 1)
	assert.Equal(t, "1125125151521", r.PerSubaddress[0].Balance.String())
}

func TestGetBalanceBeyondFloatRange(t *testing.T) {
	ws := newWalletServer(t, `{"balance": 9007199254740993, "unlocked_balance": 0}`)

	r, err := ws.client(t).GetBalance(piconero.GetBalanceRequest{})
	require.NoError(t, err)
	assert.Equal(t, "9007199254740993", r.Balance.String(),
		"a balance past 2^53 must survive decoding exactly")
}

func TestProtocolErrorSurfacesCodeAndMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"jsonrpc":"2.0","id":"0","error":{"code":-1,"message":"denied"}}`))
	}))
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	port, err := strconv.Atoi(u.Port())
	require.NoError(t, err)

	_, err = piconero.New(u.Hostname(), uint16(port)).GetVersion()
	require.Error(t, err)

	var rpcErr *rpc.Error
	require.ErrorAs(t, err, &rpcErr)
	assert.Equal(t, rpc.KindProtocol, rpcErr.Kind)
	assert.Equal(t, int64(-1), rpcErr.Code)
	assert.Equal(t, "denied", rpcErr.Message)
}

func TestGetVersion(t *testing.T) {
	ws := newWalletServer(t, `{"version": 65539, "release": true}`)

	r, err := ws.client(t).GetVersion()
	require.NoError(t, err)
	assert.Equal(t, "get_version", ws.method)
	assert.Nil(t, ws.params, "no-param methods must omit params")
	assert.Equal(t, uint32(65539), r.Version)
	assert.True(t, r.Release)
}

func TestGetLanguages(t *testing.T) {
	ws := newWalletServer(t, `{"languages": ["English", "Nederlands"], "languages_local": ["English", "Nederlands"]}`)

	r, err := ws.client(t).GetLanguages()
	require.NoError(t, err)
	assert.Equal(t, []string{"English", "Nederlands"}, r.Languages)
}
