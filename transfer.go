package piconero

// Methods
const (
	Transfer                = "transfer"
	TransferSplit           = "transfer_split"
	SignTransfer            = "sign_transfer"
	SubmitTransfer          = "submit_transfer"
	SweepDust               = "sweep_dust"
	SweepAll                = "sweep_all"
	SweepSingle             = "sweep_single"
	RelayTx                 = "relay_tx"
	GetPayments             = "get_payments"
	GetBulkPayments         = "get_bulk_payments"
	IncomingTransfers       = "incoming_transfers"
	GetTransfers            = "get_transfers"
	GetTransferByTxid       = "get_transfer_by_txid"
	DescribeTransfer        = "describe_transfer"
	EstimateTxSizeAndWeight = "estimate_tx_size_and_weight"
	ScanTx                  = "scan_tx"
)

// Destination is one recipient of a transfer: an amount in atomic units
// and the address receiving it.
type Destination struct {
	Amount  Amount `json:"amount"`
	Address string `json:"address"`
}

// TransferRequest are the params of Transfer and TransferSplit. RingSize
// and UnlockTime of 0 let the server pick its defaults.
type TransferRequest struct {
	Destinations   []Destination `json:"destinations"`
	AccountIndex   uint32        `json:"account_index,omitempty"`
	SubaddrIndices []uint32      `json:"subaddr_indices,omitempty"`
	Priority       uint32        `json:"priority,omitempty"`
	RingSize       uint64        `json:"ring_size,omitempty"`
	UnlockTime     uint64        `json:"unlock_time,omitempty"`
	GetTxKey       bool          `json:"get_tx_key,omitempty"`
	DoNotRelay     bool          `json:"do_not_relay,omitempty"`
	GetTxHex       bool          `json:"get_tx_hex,omitempty"`
	GetTxMetadata  bool          `json:"get_tx_metadata,omitempty"`
}

// TransferResult as defined in the docs https://www.getmonero.org/resources/developer-guides/wallet-rpc.html#transfer
type TransferResult struct {
	Amount        Amount `json:"amount"`
	Fee           Amount `json:"fee"`
	Weight        uint64 `json:"weight"`
	TxHash        string `json:"tx_hash"`
	TxKey         string `json:"tx_key"`
	TxBlob        string `json:"tx_blob"`
	TxMetadata    string `json:"tx_metadata"`
	MultisigTxset string `json:"multisig_txset"`
	UnsignedTxset string `json:"unsigned_txset"`
}

// Transfer sends to one or more recipients in a single transaction.
func (c Client) Transfer(req TransferRequest) (*TransferResult, error) {
	var transferResult TransferResult
	err := c.CallResult(Transfer, &transferResult, req)
	if err != nil {
		return nil, err
	}
	return &transferResult, nil
}

// TransferSplitResult as defined in the docs https://www.getmonero.org/resources/developer-guides/wallet-rpc.html#transfer_split
type TransferSplitResult struct {
	TxHashList     []string `json:"tx_hash_list"`
	TxKeyList      []string `json:"tx_key_list"`
	AmountList     []Amount `json:"amount_list"`
	FeeList        []Amount `json:"fee_list"`
	WeightList     []uint64 `json:"weight_list"`
	TxBlobList     []string `json:"tx_blob_list"`
	TxMetadataList []string `json:"tx_metadata_list"`
	MultisigTxset  string   `json:"multisig_txset"`
	UnsignedTxset  string   `json:"unsigned_txset"`
}

// TransferSplit is Transfer, split into several transactions when the
// amount does not fit one.
func (c Client) TransferSplit(req TransferRequest) (*TransferSplitResult, error) {
	var transferSplitResult TransferSplitResult
	err := c.CallResult(TransferSplit, &transferSplitResult, req)
	if err != nil {
		return nil, err
	}
	return &transferSplitResult, nil
}

// SignTransferResult as defined in the docs https://www.getmonero.org/resources/developer-guides/wallet-rpc.html#sign_transfer
type SignTransferResult struct {
	SignedTxset string   `json:"signed_txset"`
	TxHashList  []string `json:"tx_hash_list"`
	TxRawList   []string `json:"tx_raw_list"`
	TxKeyList   []string `json:"tx_key_list"`
}

// SignTransfer signs an unsigned transaction set from a cold wallet.
func (c Client) SignTransfer(unsignedTxset string, exportRaw, getTxKeys bool) (*SignTransferResult, error) {
	var signTransferResult SignTransferResult
	err := c.CallResult(SignTransfer, &signTransferResult, struct {
		UnsignedTxset string `json:"unsigned_txset"`
		ExportRaw     bool   `json:"export_raw,omitempty"`
		GetTxKeys     bool   `json:"get_tx_keys,omitempty"`
	}{unsignedTxset, exportRaw, getTxKeys})
	if err != nil {
		return nil, err
	}
	return &signTransferResult, nil
}

// SubmitTransferResult as defined in the docs https://www.getmonero.org/resources/developer-guides/wallet-rpc.html#submit_transfer
type SubmitTransferResult struct {
	TxHashList []string `json:"tx_hash_list"`
}

// SubmitTransfer relays a previously signed transaction set.
func (c Client) SubmitTransfer(txDataHex string) (*SubmitTransferResult, error) {
	var submitTransferResult SubmitTransferResult
	err := c.CallResult(SubmitTransfer, &submitTransferResult, struct {
		TxDataHex string `json:"tx_data_hex"`
	}{txDataHex})
	if err != nil {
		return nil, err
	}
	return &submitTransferResult, nil
}

// SweepRequest are the params of SweepDust and, with the address fields
// set, SweepAll.
type SweepRequest struct {
	Address        string   `json:"address,omitempty"`
	AccountIndex   uint32   `json:"account_index,omitempty"`
	SubaddrIndices []uint32 `json:"subaddr_indices,omitempty"`
	Priority       uint32   `json:"priority,omitempty"`
	RingSize       uint64   `json:"ring_size,omitempty"`
	Outputs        uint64   `json:"outputs,omitempty"`
	UnlockTime     uint64   `json:"unlock_time,omitempty"`
	BelowAmount    *Amount  `json:"below_amount,omitempty"`
	GetTxKeys      bool     `json:"get_tx_keys,omitempty"`
	DoNotRelay     bool     `json:"do_not_relay,omitempty"`
	GetTxHex       bool     `json:"get_tx_hex,omitempty"`
	GetTxMetadata  bool     `json:"get_tx_metadata,omitempty"`
}

// SweepResult is shared by the sweep methods; like TransferSplitResult
// since a sweep may produce several transactions.
type SweepResult struct {
	TxHashList     []string `json:"tx_hash_list"`
	TxKeyList      []string `json:"tx_key_list"`
	AmountList     []Amount `json:"amount_list"`
	FeeList        []Amount `json:"fee_list"`
	WeightList     []uint64 `json:"weight_list"`
	TxBlobList     []string `json:"tx_blob_list"`
	TxMetadataList []string `json:"tx_metadata_list"`
	MultisigTxset  string   `json:"multisig_txset"`
	UnsignedTxset  string   `json:"unsigned_txset"`
}

// SweepDust sends all unmixable outputs back to the wallet.
func (c Client) SweepDust(req SweepRequest) (*SweepResult, error) {
	var sweepDustResult SweepResult
	err := c.CallResult(SweepDust, &sweepDustResult, req)
	if err != nil {
		return nil, err
	}
	return &sweepDustResult, nil
}

// SweepAll sends the whole unlocked balance of an account to an address.
func (c Client) SweepAll(req SweepRequest) (*SweepResult, error) {
	var sweepAllResult SweepResult
	err := c.CallResult(SweepAll, &sweepAllResult, req)
	if err != nil {
		return nil, err
	}
	return &sweepAllResult, nil
}

// SweepSingleRequest are the params of SweepSingle: one output, named by
// its key image, swept to one address.
type SweepSingleRequest struct {
	Address       string `json:"address"`
	KeyImage      string `json:"key_image"`
	Priority      uint32 `json:"priority,omitempty"`
	RingSize      uint64 `json:"ring_size,omitempty"`
	UnlockTime    uint64 `json:"unlock_time,omitempty"`
	GetTxKey      bool   `json:"get_tx_key,omitempty"`
	DoNotRelay    bool   `json:"do_not_relay,omitempty"`
	GetTxHex      bool   `json:"get_tx_hex,omitempty"`
	GetTxMetadata bool   `json:"get_tx_metadata,omitempty"`
}

// SweepSingle sweeps a single output.
func (c Client) SweepSingle(req SweepSingleRequest) (*TransferResult, error) {
	var sweepSingleResult TransferResult
	err := c.CallResult(SweepSingle, &sweepSingleResult, req)
	if err != nil {
		return nil, err
	}
	return &sweepSingleResult, nil
}

// RelayTx relays a transaction previously created with DoNotRelay and
// returns its hash.
func (c Client) RelayTx(hex string) (string, error) {
	var relayTxResult struct {
		TxHash string `json:"tx_hash"`
	}
	err := c.CallResult(RelayTx, &relayTxResult, struct {
		Hex string `json:"hex"`
	}{hex})
	if err != nil {
		return "", err
	}
	return relayTxResult.TxHash, nil
}

// Payment is one incoming payment as reported by GetPayments and
// GetBulkPayments.
type Payment struct {
	PaymentID    string          `json:"payment_id"`
	TxHash       string          `json:"tx_hash"`
	Amount       Amount          `json:"amount"`
	BlockHeight  uint64          `json:"block_height"`
	UnlockTime   uint64          `json:"unlock_time"`
	Locked       bool            `json:"locked"`
	SubaddrIndex SubaddressIndex `json:"subaddr_index"`
	Address      string          `json:"address"`
}

type paymentsResult struct {
	Payments []Payment `json:"payments"`
}

// GetPayments returns incoming payments carrying the given payment id.
func (c Client) GetPayments(paymentID string) ([]Payment, error) {
	var getPaymentsResult paymentsResult
	err := c.CallResult(GetPayments, &getPaymentsResult, struct {
		PaymentID string `json:"payment_id"`
	}{paymentID})
	if err != nil {
		return nil, err
	}
	return getPaymentsResult.Payments, nil
}

// GetBulkPayments returns incoming payments for several payment ids at
// once, at or above minBlockHeight.
func (c Client) GetBulkPayments(paymentIDs []string, minBlockHeight uint64) ([]Payment, error) {
	var getBulkPaymentsResult paymentsResult
	err := c.CallResult(GetBulkPayments, &getBulkPaymentsResult, struct {
		PaymentIDs     []string `json:"payment_ids"`
		MinBlockHeight uint64   `json:"min_block_height"`
	}{paymentIDs, minBlockHeight})
	if err != nil {
		return nil, err
	}
	return getBulkPaymentsResult.Payments, nil
}

// Incoming transfer_type values.
const (
	TransferAll         = "all"
	TransferAvailable   = "available"
	TransferUnavailable = "unavailable"
)

// IncomingTransfer is one output owned by the wallet.
type IncomingTransfer struct {
	Amount       Amount          `json:"amount"`
	BlockHeight  uint64          `json:"block_height"`
	GlobalIndex  uint64          `json:"global_index"`
	KeyImage     string          `json:"key_image"`
	Spent        bool            `json:"spent"`
	Frozen       bool            `json:"frozen"`
	Unlocked     bool            `json:"unlocked"`
	SubaddrIndex SubaddressIndex `json:"subaddr_index"`
	TxHash       string          `json:"tx_hash"`
	Pubkey       string          `json:"pubkey"`
}

// IncomingTransfers lists the wallet's own outputs; transferType is one of
// TransferAll, TransferAvailable, TransferUnavailable.
func (c Client) IncomingTransfers(transferType string, accountIndex uint32, subaddrIndices ...uint32) ([]IncomingTransfer, error) {
	var incomingTransfersResult struct {
		Transfers []IncomingTransfer `json:"transfers"`
	}
	err := c.CallResult(IncomingTransfers, &incomingTransfersResult, struct {
		TransferType   string   `json:"transfer_type"`
		AccountIndex   uint32   `json:"account_index,omitempty"`
		SubaddrIndices []uint32 `json:"subaddr_indices,omitempty"`
	}{transferType, accountIndex, subaddrIndices})
	if err != nil {
		return nil, err
	}
	return incomingTransfersResult.Transfers, nil
}

// TransferEntry is one entry of the wallet's transfer history.
type TransferEntry struct {
	Address                         string            `json:"address"`
	Amount                          Amount            `json:"amount"`
	Amounts                         []Amount          `json:"amounts"`
	Fee                             Amount            `json:"fee"`
	Confirmations                   uint64            `json:"confirmations"`
	Destinations                    []Destination     `json:"destinations,omitempty"`
	DoubleSpendSeen                 bool              `json:"double_spend_seen"`
	Height                          uint64            `json:"height"`
	Locked                          bool              `json:"locked"`
	Note                            string            `json:"note"`
	PaymentID                       string            `json:"payment_id"`
	SubaddrIndex                    SubaddressIndex   `json:"subaddr_index"`
	SubaddrIndices                  []SubaddressIndex `json:"subaddr_indices"`
	SuggestedConfirmationsThreshold uint64            `json:"suggested_confirmations_threshold"`
	Timestamp                       uint64            `json:"timestamp"`
	Txid                            string            `json:"txid"`
	Type                            string            `json:"type"`
	UnlockTime                      uint64            `json:"unlock_time"`
}

// GetTransfersRequest selects which parts of the transfer history to
// return. The bool fields pick categories; FilterByHeight bounds the scan.
type GetTransfersRequest struct {
	In             bool     `json:"in,omitempty"`
	Out            bool     `json:"out,omitempty"`
	Pending        bool     `json:"pending,omitempty"`
	Failed         bool     `json:"failed,omitempty"`
	Pool           bool     `json:"pool,omitempty"`
	FilterByHeight bool     `json:"filter_by_height,omitempty"`
	MinHeight      uint64   `json:"min_height,omitempty"`
	MaxHeight      uint64   `json:"max_height,omitempty"`
	AccountIndex   uint32   `json:"account_index,omitempty"`
	SubaddrIndices []uint32 `json:"subaddr_indices,omitempty"`
	AllAccounts    bool     `json:"all_accounts,omitempty"`
}

// GetTransfersResult as defined in the docs https://www.getmonero.org/resources/developer-guides/wallet-rpc.html#get_transfers
type GetTransfersResult struct {
	In      []TransferEntry `json:"in"`
	Out     []TransferEntry `json:"out"`
	Pending []TransferEntry `json:"pending"`
	Failed  []TransferEntry `json:"failed"`
	Pool    []TransferEntry `json:"pool"`
}

// GetTransfers returns the wallet's transfer history.
func (c Client) GetTransfers(req GetTransfersRequest) (*GetTransfersResult, error) {
	var getTransfersResult GetTransfersResult
	err := c.CallResult(GetTransfers, &getTransfersResult, req)
	if err != nil {
		return nil, err
	}
	return &getTransfersResult, nil
}

// GetTransferByTxidResult as defined in the docs https://www.getmonero.org/resources/developer-guides/wallet-rpc.html#get_transfer_by_txid
type GetTransferByTxidResult struct {
	Transfer  TransferEntry   `json:"transfer"`
	Transfers []TransferEntry `json:"transfers"`
}

// GetTransferByTxid returns the history entries for one transaction; a
// transaction touching several subaddresses yields several entries.
func (c Client) GetTransferByTxid(txid string, accountIndex uint32) (*GetTransferByTxidResult, error) {
	var getTransferByTxidResult GetTransferByTxidResult
	err := c.CallResult(GetTransferByTxid, &getTransferByTxidResult, struct {
		Txid         string `json:"txid"`
		AccountIndex uint32 `json:"account_index,omitempty"`
	}{txid, accountIndex})
	if err != nil {
		return nil, err
	}
	return &getTransferByTxidResult, nil
}

// TransferDescription is the decoded content of an unsigned or multisig
// transaction set.
type TransferDescription struct {
	AmountIn      Amount        `json:"amount_in"`
	AmountOut     Amount        `json:"amount_out"`
	Recipients    []Destination `json:"recipients"`
	ChangeAddress string        `json:"change_address"`
	ChangeAmount  Amount        `json:"change_amount"`
	Fee           Amount        `json:"fee"`
	PaymentID     string        `json:"payment_id"`
	RingSize      uint64        `json:"ring_size"`
	UnlockTime    uint64        `json:"unlock_time"`
	DummyOutputs  uint64        `json:"dummy_outputs"`
	Extra         string        `json:"extra"`
}

// DescribeTransfer decodes a transaction set without signing or sending
// it. Exactly one of unsignedTxset/multisigTxset should be non-empty.
func (c Client) DescribeTransfer(unsignedTxset, multisigTxset string) ([]TransferDescription, error) {
	var describeTransferResult struct {
		Desc []TransferDescription `json:"desc"`
	}
	err := c.CallResult(DescribeTransfer, &describeTransferResult, struct {
		UnsignedTxset string `json:"unsigned_txset,omitempty"`
		MultisigTxset string `json:"multisig_txset,omitempty"`
	}{unsignedTxset, multisigTxset})
	if err != nil {
		return nil, err
	}
	return describeTransferResult.Desc, nil
}

// EstimateTxSizeAndWeightResult as defined in the docs https://www.getmonero.org/resources/developer-guides/wallet-rpc.html#estimate_tx_size_and_weight
type EstimateTxSizeAndWeightResult struct {
	Size   uint64 `json:"size"`
	Weight uint64 `json:"weight"`
}

// EstimateTxSizeAndWeight estimates a transaction's size and weight
// without building it.
func (c Client) EstimateTxSizeAndWeight(nInputs, nOutputs, ringSize uint32, rct bool) (*EstimateTxSizeAndWeightResult, error) {
	var estimateResult EstimateTxSizeAndWeightResult
	err := c.CallResult(EstimateTxSizeAndWeight, &estimateResult, struct {
		NInputs  uint32 `json:"n_inputs"`
		NOutputs uint32 `json:"n_outputs"`
		RingSize uint32 `json:"ring_size"`
		Rct      bool   `json:"rct"`
	}{nInputs, nOutputs, ringSize, rct})
	if err != nil {
		return nil, err
	}
	return &estimateResult, nil
}

// ScanTx rescans the given transactions for outputs belonging to the
// wallet.
func (c Client) ScanTx(txids ...string) error {
	return c.CallResult(ScanTx, nil, struct {
		Txids []string `json:"txids"`
	}{txids})
}
