package rpc

import (
	"encoding/json"
	"net/http"
)

// HTTP is the transport used to reach the wallet server. Defaults to
// http.DefaultClient; inject a custom one for timeouts or tests.
type HTTP interface {
	Do(req *http.Request) (*http.Response, error)
}

type Request struct {
	Version string      `json:"jsonrpc"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params,omitempty"`
	ID      uint64      `json:"id"`
}

// Response keeps Result and Error raw: the caller decides how to decode
// Result, and amount fields must never pass through float64 on the way.
// ID is raw too, servers are seen echoing it as either a number or a
// quoted string.
type Response struct {
	Version string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   json.RawMessage `json:"error,omitempty"`
}
