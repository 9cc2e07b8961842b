package piconero

// Methods
const (
	GetBalance               = "get_balance"
	GetAddress               = "get_address"
	GetAddressIndex          = "get_address_index"
	CreateAddress            = "create_address"
	LabelAddress             = "label_address"
	ValidateAddress          = "validate_address"
	GetAccounts              = "get_accounts"
	CreateAccount            = "create_account"
	LabelAccount             = "label_account"
	GetAccountTags           = "get_account_tags"
	TagAccounts              = "tag_accounts"
	UntagAccounts            = "untag_accounts"
	SetAccountTagDescription = "set_account_tag_description"
	GetHeight                = "get_height"
)

// SubaddressIndex locates a subaddress: major is the account, minor the
// address within it.
type SubaddressIndex struct {
	Major uint32 `json:"major"`
	Minor uint32 `json:"minor"`
}

type SubaddressBalance struct {
	AccountIndex      uint32 `json:"account_index"`
	AddressIndex      uint32 `json:"address_index"`
	Address           string `json:"address"`
	Balance           Amount `json:"balance"`
	UnlockedBalance   Amount `json:"unlocked_balance"`
	Label             string `json:"label"`
	NumUnspentOutputs uint64 `json:"num_unspent_outputs"`
	BlocksToUnlock    uint64 `json:"blocks_to_unlock"`
	TimeToUnlock      uint64 `json:"time_to_unlock"`
}

// GetBalanceResult as defined in the docs https://www.getmonero.org/resources/developer-guides/wallet-rpc.html#get_balance
type GetBalanceResult struct {
	Balance              Amount              `json:"balance"`
	UnlockedBalance      Amount              `json:"unlocked_balance"`
	MultisigImportNeeded bool                `json:"multisig_import_needed"`
	PerSubaddress        []SubaddressBalance `json:"per_subaddress"`
	BlocksToUnlock       uint64              `json:"blocks_to_unlock"`
	TimeToUnlock         uint64              `json:"time_to_unlock"`
}

// GetBalanceRequest are the params of GetBalance. AddressIndices narrows
// the per-subaddress breakdown; AllAccounts sums over every account.
type GetBalanceRequest struct {
	AccountIndex   uint32   `json:"account_index"`
	AddressIndices []uint32 `json:"address_indices,omitempty"`
	AllAccounts    bool     `json:"all_accounts,omitempty"`
	Strict         bool     `json:"strict,omitempty"`
}

// GetBalance returns the wallet's total and unlocked balance in atomic
// units, with an optional per-subaddress breakdown.
func (c Client) GetBalance(req GetBalanceRequest) (*GetBalanceResult, error) {
	var getBalanceResult GetBalanceResult
	err := c.CallResult(GetBalance, &getBalanceResult, req)
	if err != nil {
		return nil, err
	}
	return &getBalanceResult, nil
}

type SubaddressInfo struct {
	Address      string `json:"address"`
	Label        string `json:"label"`
	AddressIndex uint32 `json:"address_index"`
	Used         bool   `json:"used"`
}

// GetAddressResult as defined in the docs https://www.getmonero.org/resources/developer-guides/wallet-rpc.html#get_address
type GetAddressResult struct {
	Address   string           `json:"address"`
	Addresses []SubaddressInfo `json:"addresses"`
}

// GetAddress returns the addresses of an account, optionally restricted to
// the given subaddress indices.
func (c Client) GetAddress(accountIndex uint32, addressIndices ...uint32) (*GetAddressResult, error) {
	var getAddressResult GetAddressResult
	err := c.CallResult(GetAddress, &getAddressResult, struct {
		AccountIndex uint32   `json:"account_index"`
		AddressIndex []uint32 `json:"address_index,omitempty"`
	}{accountIndex, addressIndices})
	if err != nil {
		return nil, err
	}
	return &getAddressResult, nil
}

// GetAddressIndexResult as defined in the docs https://www.getmonero.org/resources/developer-guides/wallet-rpc.html#get_address_index
type GetAddressIndexResult struct {
	Index SubaddressIndex `json:"index"`
}

// GetAddressIndex looks up the account and subaddress index of an address
// belonging to the wallet.
func (c Client) GetAddressIndex(address string) (*GetAddressIndexResult, error) {
	var getAddressIndexResult GetAddressIndexResult
	err := c.CallResult(GetAddressIndex, &getAddressIndexResult, struct {
		Address string `json:"address"`
	}{address})
	if err != nil {
		return nil, err
	}
	return &getAddressIndexResult, nil
}

// CreateAddressResult as defined in the docs https://www.getmonero.org/resources/developer-guides/wallet-rpc.html#create_address
type CreateAddressResult struct {
	Address        string   `json:"address"`
	AddressIndex   uint32   `json:"address_index"`
	Addresses      []string `json:"addresses"`
	AddressIndices []uint32 `json:"address_indices"`
}

// CreateAddress creates count new subaddresses (one if count is 0) in the
// given account.
func (c Client) CreateAddress(accountIndex uint32, label string, count uint32) (*CreateAddressResult, error) {
	var createAddressResult CreateAddressResult
	err := c.CallResult(CreateAddress, &createAddressResult, struct {
		AccountIndex uint32 `json:"account_index"`
		Label        string `json:"label,omitempty"`
		Count        uint32 `json:"count,omitempty"`
	}{accountIndex, label, count})
	if err != nil {
		return nil, err
	}
	return &createAddressResult, nil
}

// LabelAddress labels the subaddress at index.
func (c Client) LabelAddress(index SubaddressIndex, label string) error {
	return c.CallResult(LabelAddress, nil, struct {
		Index SubaddressIndex `json:"index"`
		Label string          `json:"label"`
	}{index, label})
}

// ValidateAddressResult as defined in the docs https://www.getmonero.org/resources/developer-guides/wallet-rpc.html#validate_address
type ValidateAddressResult struct {
	Valid            bool   `json:"valid"`
	Integrated       bool   `json:"integrated"`
	Subaddress       bool   `json:"subaddress"`
	Nettype          string `json:"nettype"`
	OpenaliasAddress string `json:"openalias_address"`
}

type ValidateAddressRequest struct {
	Address        string `json:"address"`
	AnyNetType     bool   `json:"any_net_type,omitempty"`
	AllowOpenalias bool   `json:"allow_openalias,omitempty"`
}

// ValidateAddress checks the syntax of an address on the server side. The
// client itself never judges well-formedness.
func (c Client) ValidateAddress(req ValidateAddressRequest) (*ValidateAddressResult, error) {
	var validateAddressResult ValidateAddressResult
	err := c.CallResult(ValidateAddress, &validateAddressResult, req)
	if err != nil {
		return nil, err
	}
	return &validateAddressResult, nil
}

type SubaddressAccount struct {
	AccountIndex    uint32 `json:"account_index"`
	Balance         Amount `json:"balance"`
	BaseAddress     string `json:"base_address"`
	Label           string `json:"label"`
	Tag             string `json:"tag"`
	UnlockedBalance Amount `json:"unlocked_balance"`
}

// GetAccountsResult as defined in the docs https://www.getmonero.org/resources/developer-guides/wallet-rpc.html#get_accounts
type GetAccountsResult struct {
	SubaddressAccounts   []SubaddressAccount `json:"subaddress_accounts"`
	TotalBalance         Amount              `json:"total_balance"`
	TotalUnlockedBalance Amount              `json:"total_unlocked_balance"`
}

// GetAccounts returns the wallet's accounts, optionally filtered by tag.
func (c Client) GetAccounts(tag string) (*GetAccountsResult, error) {
	var getAccountsResult GetAccountsResult
	err := c.CallResult(GetAccounts, &getAccountsResult, struct {
		Tag string `json:"tag,omitempty"`
	}{tag})
	if err != nil {
		return nil, err
	}
	return &getAccountsResult, nil
}

// CreateAccountResult as defined in the docs https://www.getmonero.org/resources/developer-guides/wallet-rpc.html#create_account
type CreateAccountResult struct {
	AccountIndex uint32 `json:"account_index"`
	Address      string `json:"address"`
}

// CreateAccount creates a new account with an optional label.
func (c Client) CreateAccount(label string) (*CreateAccountResult, error) {
	var createAccountResult CreateAccountResult
	err := c.CallResult(CreateAccount, &createAccountResult, struct {
		Label string `json:"label,omitempty"`
	}{label})
	if err != nil {
		return nil, err
	}
	return &createAccountResult, nil
}

// LabelAccount labels the account at accountIndex.
func (c Client) LabelAccount(accountIndex uint32, label string) error {
	return c.CallResult(LabelAccount, nil, struct {
		AccountIndex uint32 `json:"account_index"`
		Label        string `json:"label"`
	}{accountIndex, label})
}

type AccountTag struct {
	Tag      string   `json:"tag"`
	Label    string   `json:"label"`
	Accounts []uint32 `json:"accounts"`
}

// GetAccountTagsResult as defined in the docs https://www.getmonero.org/resources/developer-guides/wallet-rpc.html#get_account_tags
type GetAccountTagsResult struct {
	AccountTags []AccountTag `json:"account_tags"`
}

func (c Client) GetAccountTags() (*GetAccountTagsResult, error) {
	var getAccountTagsResult GetAccountTagsResult
	err := c.CallResult(GetAccountTags, &getAccountTagsResult)
	if err != nil {
		return nil, err
	}
	return &getAccountTagsResult, nil
}

// TagAccounts applies tag to the given accounts.
func (c Client) TagAccounts(tag string, accounts ...uint32) error {
	return c.CallResult(TagAccounts, nil, struct {
		Tag      string   `json:"tag"`
		Accounts []uint32 `json:"accounts"`
	}{tag, accounts})
}

// UntagAccounts removes any tag from the given accounts.
func (c Client) UntagAccounts(accounts ...uint32) error {
	return c.CallResult(UntagAccounts, nil, struct {
		Accounts []uint32 `json:"accounts"`
	}{accounts})
}

// SetAccountTagDescription attaches a description to a tag.
func (c Client) SetAccountTagDescription(tag, description string) error {
	return c.CallResult(SetAccountTagDescription, nil, struct {
		Tag         string `json:"tag"`
		Description string `json:"description"`
	}{tag, description})
}

// GetHeightResult as defined in the docs https://www.getmonero.org/resources/developer-guides/wallet-rpc.html#get_height
type GetHeightResult struct {
	Height uint64 `json:"height"`
}

// GetHeight returns the wallet's current blockchain height.
func (c Client) GetHeight() (*GetHeightResult, error) {
	var getHeightResult GetHeightResult
	err := c.CallResult(GetHeight, &getHeightResult)
	if err != nil {
		return nil, err
	}
	return &getHeightResult, nil
}
