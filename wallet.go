package piconero

// Methods
const (
	CreateWallet               = "create_wallet"
	GenerateFromKeys           = "generate_from_keys"
	OpenWallet                 = "open_wallet"
	RestoreDeterministicWallet = "restore_deterministic_wallet"
	CloseWallet                = "close_wallet"
	ChangeWalletPassword       = "change_wallet_password"
	StopWallet                 = "stop_wallet"
	Store                      = "store"
	Refresh                    = "refresh"
	AutoRefresh                = "auto_refresh"
	RescanBlockchain           = "rescan_blockchain"
	RescanSpent                = "rescan_spent"
	StartMining                = "start_mining"
	StopMining                 = "stop_mining"
)

// CreateWallet creates a new wallet file on the server. The server must
// run with a --wallet-dir for this to be allowed. language is the seed
// language, e.g. "English".
func (c Client) CreateWallet(filename, password, language string) error {
	return c.CallResult(CreateWallet, nil, struct {
		Filename string `json:"filename"`
		Password string `json:"password,omitempty"`
		Language string `json:"language"`
	}{filename, password, language})
}

// GenerateFromKeysRequest are the params of GenerateFromKeys. Leaving
// Spendkey empty restores a view-only wallet.
type GenerateFromKeysRequest struct {
	RestoreHeight   uint64 `json:"restore_height,omitempty"`
	Filename        string `json:"filename"`
	Address         string `json:"address"`
	Spendkey        string `json:"spendkey,omitempty"`
	Viewkey         string `json:"viewkey"`
	Password        string `json:"password"`
	AutosaveCurrent bool   `json:"autosave_current"`
}

// GenerateFromKeysResult as defined in the docs https://www.getmonero.org/resources/developer-guides/wallet-rpc.html#generate_from_keys
type GenerateFromKeysResult struct {
	Address string `json:"address"`
	Info    string `json:"info"`
}

// GenerateFromKeys restores a wallet from its address and keys.
func (c Client) GenerateFromKeys(req GenerateFromKeysRequest) (*GenerateFromKeysResult, error) {
	var generateFromKeysResult GenerateFromKeysResult
	err := c.CallResult(GenerateFromKeys, &generateFromKeysResult, req)
	if err != nil {
		return nil, err
	}
	return &generateFromKeysResult, nil
}

// OpenWallet opens a wallet file, closing the currently open one first.
func (c Client) OpenWallet(filename, password string) error {
	return c.CallResult(OpenWallet, nil, struct {
		Filename string `json:"filename"`
		Password string `json:"password,omitempty"`
	}{filename, password})
}

type RestoreDeterministicWalletRequest struct {
	Filename        string `json:"filename"`
	Password        string `json:"password"`
	Seed            string `json:"seed"`
	RestoreHeight   uint64 `json:"restore_height,omitempty"`
	Language        string `json:"language,omitempty"`
	SeedOffset      string `json:"seed_offset,omitempty"`
	AutosaveCurrent bool   `json:"autosave_current"`
}

// RestoreDeterministicWalletResult as defined in the docs https://www.getmonero.org/resources/developer-guides/wallet-rpc.html#restore_deterministic_wallet
type RestoreDeterministicWalletResult struct {
	Address       string `json:"address"`
	Info          string `json:"info"`
	Seed          string `json:"seed"`
	WasDeprecated bool   `json:"was_deprecated"`
}

// RestoreDeterministicWallet restores a wallet from its mnemonic seed.
func (c Client) RestoreDeterministicWallet(req RestoreDeterministicWalletRequest) (*RestoreDeterministicWalletResult, error) {
	var restoreResult RestoreDeterministicWalletResult
	err := c.CallResult(RestoreDeterministicWallet, &restoreResult, req)
	if err != nil {
		return nil, err
	}
	return &restoreResult, nil
}

// CloseWallet saves and closes the currently open wallet.
func (c Client) CloseWallet() error {
	return c.CallResult(CloseWallet, nil)
}

// ChangeWalletPassword changes the open wallet's password.
func (c Client) ChangeWalletPassword(oldPassword, newPassword string) error {
	return c.CallResult(ChangeWalletPassword, nil, struct {
		OldPassword string `json:"old_password,omitempty"`
		NewPassword string `json:"new_password,omitempty"`
	}{oldPassword, newPassword})
}

// StopWallet saves the wallet and stops the server process.
func (c Client) StopWallet() error {
	return c.CallResult(StopWallet, nil)
}

// Store saves the wallet file.
func (c Client) Store() error {
	return c.CallResult(Store, nil)
}

// RefreshResult as defined in the docs https://www.getmonero.org/resources/developer-guides/wallet-rpc.html#refresh
type RefreshResult struct {
	BlocksFetched uint64 `json:"blocks_fetched"`
	ReceivedMoney bool   `json:"received_money"`
}

// Refresh scans the chain from startHeight for the wallet's outputs.
func (c Client) Refresh(startHeight uint64) (*RefreshResult, error) {
	var refreshResult RefreshResult
	err := c.CallResult(Refresh, &refreshResult, struct {
		StartHeight uint64 `json:"start_height,omitempty"`
	}{startHeight})
	if err != nil {
		return nil, err
	}
	return &refreshResult, nil
}

// AutoRefresh enables or disables periodic refreshing every period seconds.
func (c Client) AutoRefresh(enable bool, period uint32) error {
	return c.CallResult(AutoRefresh, nil, struct {
		Enable bool   `json:"enable"`
		Period uint32 `json:"period,omitempty"`
	}{enable, period})
}

// RescanBlockchain rescans from genesis. With hard set, cached tx data
// (keys, notes, payments) is dropped too.
func (c Client) RescanBlockchain(hard bool) error {
	return c.CallResult(RescanBlockchain, nil, struct {
		Hard bool `json:"hard,omitempty"`
	}{hard})
}

// RescanSpent rechecks which outputs the chain considers spent.
func (c Client) RescanSpent() error {
	return c.CallResult(RescanSpent, nil)
}

// StartMining starts mining in the connected daemon.
func (c Client) StartMining(threadsCount uint64, doBackgroundMining, ignoreBattery bool) error {
	return c.CallResult(StartMining, nil, struct {
		ThreadsCount       uint64 `json:"threads_count"`
		DoBackgroundMining bool   `json:"do_background_mining"`
		IgnoreBattery      bool   `json:"ignore_battery"`
	}{threadsCount, doBackgroundMining, ignoreBattery})
}

// StopMining stops mining in the connected daemon.
func (c Client) StopMining() error {
	return c.CallResult(StopMining, nil)
}
