// Package piconero is a typed client for the monero-wallet-rpc JSON-RPC
// interface. Every method is a thin facade over one HTTP POST: it names
// the remote procedure, types its parameters and result, and forwards.
// Atomic-unit quantities decode as Amount so balances beyond 2^53 keep
// their exact value.
//
// The target wallet server must run with RPC authentication disabled;
// the client sends no credentials.
package piconero

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/sebamiro/piconero/internal/rpc"
)

// Client wrapper of rpc.Client
type Client struct {
	*rpc.Client
}

// New returns a Client for the wallet server at host:port.
func New(host string, port uint16) Client {
	return Client{rpc.NewClient(host, port)}
}

// Methods
const (
	GetVersion   = "get_version"
	GetLanguages = "get_languages"
)

// CallResult executes a call, with params if any, and decodes the result
// into the value passed as param. A nil result discards the payload, for
// methods whose result is an empty object.
func (c Client) CallResult(method string, result interface{}, params ...interface{}) error {
	resp, err := c.Call(method, params...)
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Result, result); err != nil {
		return errors.Wrapf(err, "decode %s result", method)
	}
	return nil
}

// GetVersionResult as defined in the docs https://www.getmonero.org/resources/developer-guides/wallet-rpc.html#get_version
type GetVersionResult struct {
	Version uint32 `json:"version"`
	Release bool   `json:"release"`
}

// GetVersion returns the wallet RPC version as a packed integer,
// Major * 2^16 + Minor.
func (c Client) GetVersion() (*GetVersionResult, error) {
	var getVersionResult GetVersionResult
	err := c.CallResult(GetVersion, &getVersionResult)
	if err != nil {
		return nil, err
	}
	return &getVersionResult, nil
}

// GetLanguagesResult as defined in the docs https://www.getmonero.org/resources/developer-guides/wallet-rpc.html#get_languages
type GetLanguagesResult struct {
	Languages      []string `json:"languages"`
	LanguagesLocal []string `json:"languages_local"`
}

// GetLanguages returns the list of seed languages the wallet can create
// wallets in.
func (c Client) GetLanguages() (*GetLanguagesResult, error) {
	var getLanguagesResult GetLanguagesResult
	err := c.CallResult(GetLanguages, &getLanguagesResult)
	if err != nil {
		return nil, err
	}
	return &getLanguagesResult, nil
}
