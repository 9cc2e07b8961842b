package piconero

// Methods
const (
	GetTxKey          = "get_tx_key"
	CheckTxKey        = "check_tx_key"
	GetTxProof        = "get_tx_proof"
	CheckTxProof      = "check_tx_proof"
	GetSpendProof     = "get_spend_proof"
	CheckSpendProof   = "check_spend_proof"
	GetReserveProof   = "get_reserve_proof"
	CheckReserveProof = "check_reserve_proof"
	Sign              = "sign"
	Verify            = "verify"
	GetTxNotes        = "get_tx_notes"
	SetTxNotes        = "set_tx_notes"
)

// GetTxKey returns the transaction secret key of an outgoing transaction.
func (c Client) GetTxKey(txid string) (string, error) {
	var getTxKeyResult struct {
		TxKey string `json:"tx_key"`
	}
	err := c.CallResult(GetTxKey, &getTxKeyResult, struct {
		Txid string `json:"txid"`
	}{txid})
	if err != nil {
		return "", err
	}
	return getTxKeyResult.TxKey, nil
}

// CheckTxKeyResult as defined in the docs https://www.getmonero.org/resources/developer-guides/wallet-rpc.html#check_tx_key
type CheckTxKeyResult struct {
	Confirmations uint64 `json:"confirmations"`
	InPool        bool   `json:"in_pool"`
	Received      Amount `json:"received"`
}

// CheckTxKey proves with a transaction key that address received funds in
// the transaction.
func (c Client) CheckTxKey(txid, txKey, address string) (*CheckTxKeyResult, error) {
	var checkTxKeyResult CheckTxKeyResult
	err := c.CallResult(CheckTxKey, &checkTxKeyResult, struct {
		Txid    string `json:"txid"`
		TxKey   string `json:"tx_key"`
		Address string `json:"address"`
	}{txid, txKey, address})
	if err != nil {
		return nil, err
	}
	return &checkTxKeyResult, nil
}

// GetTxProof produces a signature proving that funds went to address in
// the transaction. message is an optional challenge covered by the
// signature.
func (c Client) GetTxProof(txid, address, message string) (string, error) {
	var getTxProofResult struct {
		Signature string `json:"signature"`
	}
	err := c.CallResult(GetTxProof, &getTxProofResult, struct {
		Txid    string `json:"txid"`
		Address string `json:"address"`
		Message string `json:"message,omitempty"`
	}{txid, address, message})
	if err != nil {
		return "", err
	}
	return getTxProofResult.Signature, nil
}

// CheckTxProofResult as defined in the docs https://www.getmonero.org/resources/developer-guides/wallet-rpc.html#check_tx_proof
type CheckTxProofResult struct {
	Confirmations uint64 `json:"confirmations"`
	Good          bool   `json:"good"`
	InPool        bool   `json:"in_pool"`
	Received      Amount `json:"received"`
}

// CheckTxProof verifies a signature produced by GetTxProof. Received is
// only meaningful when Good is set.
func (c Client) CheckTxProof(txid, address, message, signature string) (*CheckTxProofResult, error) {
	var checkTxProofResult CheckTxProofResult
	err := c.CallResult(CheckTxProof, &checkTxProofResult, struct {
		Txid      string `json:"txid"`
		Address   string `json:"address"`
		Message   string `json:"message,omitempty"`
		Signature string `json:"signature"`
	}{txid, address, message, signature})
	if err != nil {
		return nil, err
	}
	return &checkTxProofResult, nil
}

// GetSpendProof proves the wallet spent in the transaction, without
// revealing the amount.
func (c Client) GetSpendProof(txid, message string) (string, error) {
	var getSpendProofResult struct {
		Signature string `json:"signature"`
	}
	err := c.CallResult(GetSpendProof, &getSpendProofResult, struct {
		Txid    string `json:"txid"`
		Message string `json:"message,omitempty"`
	}{txid, message})
	if err != nil {
		return "", err
	}
	return getSpendProofResult.Signature, nil
}

// CheckSpendProof verifies a signature produced by GetSpendProof.
func (c Client) CheckSpendProof(txid, message, signature string) (bool, error) {
	var checkSpendProofResult struct {
		Good bool `json:"good"`
	}
	err := c.CallResult(CheckSpendProof, &checkSpendProofResult, struct {
		Txid      string `json:"txid"`
		Message   string `json:"message,omitempty"`
		Signature string `json:"signature"`
	}{txid, message, signature})
	if err != nil {
		return false, err
	}
	return checkSpendProofResult.Good, nil
}

// GetReserveProofRequest are the params of GetReserveProof. With All set
// the proof covers the whole wallet; otherwise Amount of the given
// account.
type GetReserveProofRequest struct {
	All          bool    `json:"all"`
	AccountIndex uint32  `json:"account_index"`
	Amount       *Amount `json:"amount,omitempty"`
	Message      string  `json:"message,omitempty"`
}

// GetReserveProof proves the wallet holds at least a given reserve.
func (c Client) GetReserveProof(req GetReserveProofRequest) (string, error) {
	var getReserveProofResult struct {
		Signature string `json:"signature"`
	}
	err := c.CallResult(GetReserveProof, &getReserveProofResult, req)
	if err != nil {
		return "", err
	}
	return getReserveProofResult.Signature, nil
}

// CheckReserveProofResult as defined in the docs https://www.getmonero.org/resources/developer-guides/wallet-rpc.html#check_reserve_proof
type CheckReserveProofResult struct {
	Good  bool   `json:"good"`
	Spent Amount `json:"spent"`
	Total Amount `json:"total"`
}

// CheckReserveProof verifies a signature produced by GetReserveProof.
// Spent and Total are only meaningful when Good is set.
func (c Client) CheckReserveProof(address, message, signature string) (*CheckReserveProofResult, error) {
	var checkReserveProofResult CheckReserveProofResult
	err := c.CallResult(CheckReserveProof, &checkReserveProofResult, struct {
		Address   string `json:"address"`
		Message   string `json:"message,omitempty"`
		Signature string `json:"signature"`
	}{address, message, signature})
	if err != nil {
		return nil, err
	}
	return &checkReserveProofResult, nil
}

// Sign signs arbitrary data with the wallet's spend key.
func (c Client) Sign(data string) (string, error) {
	var signResult struct {
		Signature string `json:"signature"`
	}
	err := c.CallResult(Sign, &signResult, struct {
		Data string `json:"data"`
	}{data})
	if err != nil {
		return "", err
	}
	return signResult.Signature, nil
}

// Verify checks a Sign signature made by address over data.
func (c Client) Verify(data, address, signature string) (bool, error) {
	var verifyResult struct {
		Good bool `json:"good"`
	}
	err := c.CallResult(Verify, &verifyResult, struct {
		Data      string `json:"data"`
		Address   string `json:"address"`
		Signature string `json:"signature"`
	}{data, address, signature})
	if err != nil {
		return false, err
	}
	return verifyResult.Good, nil
}

// GetTxNotes returns the notes attached to the given transactions, in the
// same order.
func (c Client) GetTxNotes(txids ...string) ([]string, error) {
	var getTxNotesResult struct {
		Notes []string `json:"notes"`
	}
	err := c.CallResult(GetTxNotes, &getTxNotesResult, struct {
		Txids []string `json:"txids"`
	}{txids})
	if err != nil {
		return nil, err
	}
	return getTxNotesResult.Notes, nil
}

// SetTxNotes attaches notes to transactions, matched by position.
func (c Client) SetTxNotes(txids, notes []string) error {
	return c.CallResult(SetTxNotes, nil, struct {
		Txids []string `json:"txids"`
		Notes []string `json:"notes"`
	}{txids, notes})
}
