package piconero

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// AtomicUnitsPerXMR is the number of piconero in one XMR.
const AtomicUnitsPerXMR = 1e12

// Amount is an atomic-unit quantity: a balance, fee, or transfer amount in
// piconero. It is an arbitrary-precision integer because the wire carries
// these as bare JSON numbers whose magnitude contract is "unbounded
// currency amount", not "machine integer".
//
// Decoding reads the numeric token's lexical form directly, so values
// beyond 2^53 survive exactly and a float literal (decimal point or
// exponent) is rejected instead of silently truncated. Quoted strings are
// rejected too: only fields declared as Amount are ever promoted, a string
// field whose content looks numeric is never touched.
type Amount big.Int

// NewAmount returns v piconero as an Amount.
func NewAmount(v uint64) *Amount {
	return (*Amount)(new(big.Int).SetUint64(v))
}

// BigInt returns the amount as a big.Int, sharing the underlying value.
func (a *Amount) BigInt() *big.Int { return (*big.Int)(a) }

func (a *Amount) String() string { return (*big.Int)(a).String() }

// Cmp compares a and b like big.Int.Cmp.
func (a *Amount) Cmp(b *Amount) int {
	return (*big.Int)(a).Cmp((*big.Int)(b))
}

// XMR converts atomic units to whole XMR with 12 fractional digits.
func (a *Amount) XMR() decimal.Decimal {
	return decimal.NewFromBigInt((*big.Int)(a), -12)
}

// AmountFromXMR converts an XMR quantity to atomic units. Fails if d is
// more precise than one piconero.
func AmountFromXMR(d decimal.Decimal) (*Amount, error) {
	shifted := d.Shift(12)
	if !shifted.IsInteger() {
		return nil, fmt.Errorf("piconero: %s XMR is below one atomic unit of precision", d)
	}
	return (*Amount)(shifted.BigInt()), nil
}

// UnmarshalJSON decodes a bare integer literal.
func (a *Amount) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		return nil
	}
	if strings.ContainsAny(s, ".eE") {
		return fmt.Errorf("piconero: amount %s is not an integer literal", s)
	}
	if _, ok := (*big.Int)(a).SetString(s, 10); !ok {
		return fmt.Errorf("piconero: invalid amount %s", s)
	}
	return nil
}

// MarshalJSON emits the bare digits, no quotes: the server expects native
// JSON numbers for amounts.
func (a Amount) MarshalJSON() ([]byte, error) {
	i := big.Int(a)
	return []byte(i.String()), nil
}
