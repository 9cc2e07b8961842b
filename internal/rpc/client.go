package rpc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Path every wallet method is posted to; the method itself travels in the
// envelope, not the URL.
const endpoint = "/json_rpc"

// Client performs JSON-RPC 2.0 calls against a wallet server listening on
// Host:Port. Host and Port are fixed for the client's lifetime. The zero
// Log is disabled; set one to get per-call debug lines.
//
// The client enforces no timeout and never retries: a hanging server hangs
// the call. Callers wanting a deadline inject HTTP, e.g.
// &http.Client{Timeout: 10 * time.Second}.
type Client struct {
	HTTP HTTP
	Host string
	Port uint16
	Log  zerolog.Logger

	id atomic.Uint64
}

func NewClient(host string, port uint16) *Client {
	return &Client{Host: host, Port: port}
}

func (c *Client) http() HTTP {
	if c.HTTP == nil {
		return http.DefaultClient
	}
	return c.HTTP
}

func (c *Client) url() string {
	return "http://" + net.JoinHostPort(c.Host, strconv.Itoa(int(c.Port))) + endpoint
}

// Call posts one request envelope for method and returns the response
// envelope. One argument is passed as params directly, several become a
// positional array, none omits params entirely.
//
// Apart from unencodable params, every failure is an *Error: transport
// failures and unparseable bodies are KindTransport, a status outside
// 200-299 is KindStatus (the body is not parsed in that case), an
// envelope error is KindProtocol, and an envelope with neither result
// nor error is KindContract.
func (c *Client) Call(method string, args ...interface{}) (*Response, error) {
	req := Request{Version: "2.0", Method: method, ID: c.id.Add(1)}
	switch {
	case len(args) == 1:
		req.Params = args[0]
	case len(args) > 1:
		req.Params = args
	}
	b, err := json.Marshal(req)
	if err != nil {
		return nil, errors.Wrapf(err, "rpc: encode %s request", method)
	}

	httpReq, err := http.NewRequest(http.MethodPost, c.url(), bytes.NewReader(b))
	if err != nil {
		return nil, &Error{Kind: KindTransport, Message: "building request for " + c.url(), cause: err}
	}
	httpReq.Header.Set("Content-Type", "application/json; charset=utf-8")
	httpReq.ContentLength = int64(len(b))

	c.Log.Debug().Str("method", method).Uint64("id", req.ID).Int("bytes", len(b)).Msg("rpc call")

	resp, err := c.http().Do(httpReq)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Message: "calling " + method + ": " + err.Error(), cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{Kind: KindStatus, Message: fmt.Sprintf("unexpected status %d for %s", resp.StatusCode, method)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Message: "reading " + method + " response body", cause: err}
	}

	r := Response{}
	if err := json.Unmarshal(body, &r); err != nil {
		return nil, &Error{Kind: KindTransport, Message: "malformed response body for " + method, cause: err}
	}
	if len(r.Error) > 0 && string(r.Error) != "null" {
		e := classifyError(r.Error)
		c.Log.Debug().Str("method", method).Str("error", e.Message).Msg("rpc error")
		return nil, e
	}
	if len(r.Result) == 0 || string(r.Result) == "null" {
		// The server answered without result or error; treating that as
		// success would hand back nothing with no explanation.
		return nil, &Error{Kind: KindContract, Message: "response for " + method + " carries neither result nor error"}
	}

	c.Log.Debug().Str("method", method).Int("bytes", len(r.Result)).Msg("rpc result")
	return &r, nil
}
