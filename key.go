package piconero

// Methods
const (
	QueryKey        = "query_key"
	ExportOutputs   = "export_outputs"
	ImportOutputs   = "import_outputs"
	ExportKeyImages = "export_key_images"
	ImportKeyImages = "import_key_images"
	Freeze          = "freeze"
	Frozen          = "frozen"
	Thaw            = "thaw"
)

// Key types accepted by QueryKey.
const (
	KeyMnemonic = "mnemonic"
	KeyViewKey  = "view_key"
	KeySpendKey = "spend_key"
)

// QueryKey returns one of the wallet's keys; keyType is one of
// KeyMnemonic, KeyViewKey, KeySpendKey.
func (c Client) QueryKey(keyType string) (string, error) {
	var queryKeyResult struct {
		Key string `json:"key"`
	}
	err := c.CallResult(QueryKey, &queryKeyResult, struct {
		KeyType string `json:"key_type"`
	}{keyType})
	if err != nil {
		return "", err
	}
	return queryKeyResult.Key, nil
}

// ExportOutputs exports the wallet's outputs as hex, for importing into a
// view-only counterpart. With all set, previously exported outputs are
// included again.
func (c Client) ExportOutputs(all bool) (string, error) {
	var exportOutputsResult struct {
		OutputsDataHex string `json:"outputs_data_hex"`
	}
	err := c.CallResult(ExportOutputs, &exportOutputsResult, struct {
		All bool `json:"all,omitempty"`
	}{all})
	if err != nil {
		return "", err
	}
	return exportOutputsResult.OutputsDataHex, nil
}

// ImportOutputs imports outputs exported by ExportOutputs and returns how
// many were imported.
func (c Client) ImportOutputs(outputsDataHex string) (uint64, error) {
	var importOutputsResult struct {
		NumImported uint64 `json:"num_imported"`
	}
	err := c.CallResult(ImportOutputs, &importOutputsResult, struct {
		OutputsDataHex string `json:"outputs_data_hex"`
	}{outputsDataHex})
	if err != nil {
		return 0, err
	}
	return importOutputsResult.NumImported, nil
}

// SignedKeyImage is one key image plus its signature, as exchanged between
// a wallet and its view-only counterpart.
type SignedKeyImage struct {
	KeyImage  string `json:"key_image"`
	Signature string `json:"signature"`
}

// ExportKeyImagesResult as defined in the docs https://www.getmonero.org/resources/developer-guides/wallet-rpc.html#export_key_images
type ExportKeyImagesResult struct {
	Offset          uint32           `json:"offset"`
	SignedKeyImages []SignedKeyImage `json:"signed_key_images"`
}

// ExportKeyImages exports the wallet's signed key images.
func (c Client) ExportKeyImages(all bool) (*ExportKeyImagesResult, error) {
	var exportKeyImagesResult ExportKeyImagesResult
	err := c.CallResult(ExportKeyImages, &exportKeyImagesResult, struct {
		All bool `json:"all,omitempty"`
	}{all})
	if err != nil {
		return nil, err
	}
	return &exportKeyImagesResult, nil
}

// ImportKeyImagesResult as defined in the docs https://www.getmonero.org/resources/developer-guides/wallet-rpc.html#import_key_images
type ImportKeyImagesResult struct {
	Height  uint64 `json:"height"`
	Spent   Amount `json:"spent"`
	Unspent Amount `json:"unspent"`
}

// ImportKeyImages imports signed key images and recomputes which outputs
// are spent.
func (c Client) ImportKeyImages(offset uint32, signedKeyImages []SignedKeyImage) (*ImportKeyImagesResult, error) {
	var importKeyImagesResult ImportKeyImagesResult
	err := c.CallResult(ImportKeyImages, &importKeyImagesResult, struct {
		Offset          uint32           `json:"offset,omitempty"`
		SignedKeyImages []SignedKeyImage `json:"signed_key_images"`
	}{offset, signedKeyImages})
	if err != nil {
		return nil, err
	}
	return &importKeyImagesResult, nil
}

// Freeze excludes the output with the given key image from balance and
// from transfer selection.
func (c Client) Freeze(keyImage string) error {
	return c.CallResult(Freeze, nil, struct {
		KeyImage string `json:"key_image"`
	}{keyImage})
}

// Frozen reports whether the output with the given key image is frozen.
func (c Client) Frozen(keyImage string) (bool, error) {
	var frozenResult struct {
		Frozen bool `json:"frozen"`
	}
	err := c.CallResult(Frozen, &frozenResult, struct {
		KeyImage string `json:"key_image"`
	}{keyImage})
	if err != nil {
		return false, err
	}
	return frozenResult.Frozen, nil
}

// Thaw undoes Freeze.
func (c Client) Thaw(keyImage string) error {
	return c.CallResult(Thaw, nil, struct {
		KeyImage string `json:"key_image"`
	}{keyImage})
}
