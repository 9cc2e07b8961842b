package rpc

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Kind says which stage of the call failed.
type Kind int

const (
	// KindTransport covers connection-level failures: dial, write, read,
	// or a body that is not valid JSON.
	KindTransport Kind = iota + 1
	// KindStatus is an HTTP status code outside 200-299.
	KindStatus
	// KindProtocol is an error object carried by the JSON-RPC envelope.
	KindProtocol
	// KindContract is a response with neither result nor error.
	KindContract
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindStatus:
		return "status"
	case KindProtocol:
		return "protocol"
	case KindContract:
		return "contract"
	}
	return "unknown"
}

// Error is the single failure value every call resolves to. Code is only
// meaningful when HasCode is set; Message is always non-empty.
type Error struct {
	Kind    Kind
	Code    int64
	HasCode bool
	Message string

	cause error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("rpc ")
	b.WriteString(e.Kind.String())
	b.WriteString(" error")
	if e.HasCode {
		fmt.Fprintf(&b, " %d", e.Code)
	}
	b.WriteString(": ")
	b.WriteString(e.Message)
	return b.String()
}

func (e *Error) Unwrap() error { return e.cause }

// classifyError builds an *Error from whatever the server put in the
// envelope's error field. The value is matched against the known variants:
// an object carrying code and/or message, a bare string, or anything else,
// for which the raw text is kept so the failure is never empty.
func classifyError(raw json.RawMessage) *Error {
	var obj struct {
		Code    *int64  `json:"code"`
		Message *string `json:"message"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil && (obj.Code != nil || obj.Message != nil) {
		e := &Error{Kind: KindProtocol}
		if obj.Code != nil {
			e.Code = *obj.Code
			e.HasCode = true
		}
		if obj.Message != nil && *obj.Message != "" {
			e.Message = *obj.Message
		} else {
			e.Message = "server returned an error with no message"
		}
		return e
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil && s != "" {
		return &Error{Kind: KindProtocol, Message: s}
	}

	return &Error{Kind: KindProtocol, Message: "unrecognized error shape: " + string(raw)}
}
