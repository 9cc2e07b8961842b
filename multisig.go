package piconero

// Methods
const (
	IsMultisig           = "is_multisig"
	PrepareMultisig      = "prepare_multisig"
	MakeMultisig         = "make_multisig"
	ExportMultisigInfo   = "export_multisig_info"
	ImportMultisigInfo   = "import_multisig_info"
	FinalizeMultisig     = "finalize_multisig"
	ExchangeMultisigKeys = "exchange_multisig_keys"
	SignMultisig         = "sign_multisig"
	SubmitMultisig       = "submit_multisig"
)

// IsMultisigResult as defined in the docs https://www.getmonero.org/resources/developer-guides/wallet-rpc.html#is_multisig
type IsMultisigResult struct {
	Multisig  bool   `json:"multisig"`
	Ready     bool   `json:"ready"`
	Threshold uint32 `json:"threshold"`
	Total     uint32 `json:"total"`
}

// IsMultisig reports whether the open wallet is multisig and, if so, its
// threshold/total configuration.
func (c Client) IsMultisig() (*IsMultisigResult, error) {
	var isMultisigResult IsMultisigResult
	err := c.CallResult(IsMultisig, &isMultisigResult)
	if err != nil {
		return nil, err
	}
	return &isMultisigResult, nil
}

// PrepareMultisig returns this wallet's multisig info blob, the first
// value the participants exchange.
func (c Client) PrepareMultisig() (string, error) {
	var prepareMultisigResult struct {
		MultisigInfo string `json:"multisig_info"`
	}
	err := c.CallResult(PrepareMultisig, &prepareMultisigResult)
	if err != nil {
		return "", err
	}
	return prepareMultisigResult.MultisigInfo, nil
}

// MakeMultisigResult as defined in the docs https://www.getmonero.org/resources/developer-guides/wallet-rpc.html#make_multisig
type MakeMultisigResult struct {
	Address      string `json:"address"`
	MultisigInfo string `json:"multisig_info"`
}

// MakeMultisig turns the wallet into a threshold-of-N multisig wallet from
// the other participants' PrepareMultisig blobs. For N-1/N setups the
// returned MultisigInfo feeds another exchange round.
func (c Client) MakeMultisig(multisigInfo []string, threshold uint32, password string) (*MakeMultisigResult, error) {
	var makeMultisigResult MakeMultisigResult
	err := c.CallResult(MakeMultisig, &makeMultisigResult, struct {
		MultisigInfo []string `json:"multisig_info"`
		Threshold    uint32   `json:"threshold"`
		Password     string   `json:"password"`
	}{multisigInfo, threshold, password})
	if err != nil {
		return nil, err
	}
	return &makeMultisigResult, nil
}

// ExportMultisigInfo exports the partial key images the other participants
// need to see this wallet's outputs.
func (c Client) ExportMultisigInfo() (string, error) {
	var exportMultisigInfoResult struct {
		Info string `json:"info"`
	}
	err := c.CallResult(ExportMultisigInfo, &exportMultisigInfoResult)
	if err != nil {
		return "", err
	}
	return exportMultisigInfoResult.Info, nil
}

// ImportMultisigInfo imports the other participants' ExportMultisigInfo
// blobs and returns how many outputs were updated.
func (c Client) ImportMultisigInfo(info []string) (uint64, error) {
	var importMultisigInfoResult struct {
		NOutputs uint64 `json:"n_outputs"`
	}
	err := c.CallResult(ImportMultisigInfo, &importMultisigInfoResult, struct {
		Info []string `json:"info"`
	}{info})
	if err != nil {
		return 0, err
	}
	return importMultisigInfoResult.NOutputs, nil
}

// FinalizeMultisig completes an N-1/N wallet after the second exchange
// round and returns the multisig address.
func (c Client) FinalizeMultisig(multisigInfo []string, password string) (string, error) {
	var finalizeMultisigResult struct {
		Address string `json:"address"`
	}
	err := c.CallResult(FinalizeMultisig, &finalizeMultisigResult, struct {
		MultisigInfo []string `json:"multisig_info"`
		Password     string   `json:"password"`
	}{multisigInfo, password})
	if err != nil {
		return "", err
	}
	return finalizeMultisigResult.Address, nil
}

// ExchangeMultisigKeysResult as defined in the docs https://www.getmonero.org/resources/developer-guides/wallet-rpc.html#exchange_multisig_keys
type ExchangeMultisigKeysResult struct {
	Address      string `json:"address"`
	MultisigInfo string `json:"multisig_info"`
}

// ExchangeMultisigKeys performs one round of the arbitrary M/N key
// exchange. The wallet is ready once MultisigInfo comes back empty.
func (c Client) ExchangeMultisigKeys(multisigInfo []string, password string) (*ExchangeMultisigKeysResult, error) {
	var exchangeMultisigKeysResult ExchangeMultisigKeysResult
	err := c.CallResult(ExchangeMultisigKeys, &exchangeMultisigKeysResult, struct {
		MultisigInfo []string `json:"multisig_info"`
		Password     string   `json:"password"`
	}{multisigInfo, password})
	if err != nil {
		return nil, err
	}
	return &exchangeMultisigKeysResult, nil
}

// SignMultisigResult as defined in the docs https://www.getmonero.org/resources/developer-guides/wallet-rpc.html#sign_multisig
type SignMultisigResult struct {
	TxDataHex  string   `json:"tx_data_hex"`
	TxHashList []string `json:"tx_hash_list"`
}

// SignMultisig adds this wallet's signature to a multisig transaction set.
func (c Client) SignMultisig(txDataHex string) (*SignMultisigResult, error) {
	var signMultisigResult SignMultisigResult
	err := c.CallResult(SignMultisig, &signMultisigResult, struct {
		TxDataHex string `json:"tx_data_hex"`
	}{txDataHex})
	if err != nil {
		return nil, err
	}
	return &signMultisigResult, nil
}

// SubmitMultisig relays a fully signed multisig transaction set and
// returns the transaction hashes.
func (c Client) SubmitMultisig(txDataHex string) ([]string, error) {
	var submitMultisigResult struct {
		TxHashList []string `json:"tx_hash_list"`
	}
	err := c.CallResult(SubmitMultisig, &submitMultisigResult, struct {
		TxDataHex string `json:"tx_data_hex"`
	}{txDataHex})
	if err != nil {
		return nil, err
	}
	return submitMultisigResult.TxHashList, nil
}
