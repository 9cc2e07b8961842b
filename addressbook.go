package piconero

// Methods
const (
	MakeIntegratedAddress  = "make_integrated_address"
	SplitIntegratedAddress = "split_integrated_address"
	MakeURI                = "make_uri"
	ParseURI               = "parse_uri"
	GetAddressBook         = "get_address_book"
	AddAddressBook         = "add_address_book"
	EditAddressBook        = "edit_address_book"
	DeleteAddressBook      = "delete_address_book"
	SetAttribute           = "set_attribute"
	GetAttribute           = "get_attribute"
)

// MakeIntegratedAddressResult as defined in the docs https://www.getmonero.org/resources/developer-guides/wallet-rpc.html#make_integrated_address
type MakeIntegratedAddressResult struct {
	IntegratedAddress string `json:"integrated_address"`
	PaymentID         string `json:"payment_id"`
}

// MakeIntegratedAddress merges a payment id into an address. Empty
// standardAddress means the wallet's primary address; empty paymentID
// means a random one.
func (c Client) MakeIntegratedAddress(standardAddress, paymentID string) (*MakeIntegratedAddressResult, error) {
	var makeIntegratedAddressResult MakeIntegratedAddressResult
	err := c.CallResult(MakeIntegratedAddress, &makeIntegratedAddressResult, struct {
		StandardAddress string `json:"standard_address,omitempty"`
		PaymentID       string `json:"payment_id,omitempty"`
	}{standardAddress, paymentID})
	if err != nil {
		return nil, err
	}
	return &makeIntegratedAddressResult, nil
}

// SplitIntegratedAddressResult as defined in the docs https://www.getmonero.org/resources/developer-guides/wallet-rpc.html#split_integrated_address
type SplitIntegratedAddressResult struct {
	IsSubaddress    bool   `json:"is_subaddress"`
	PaymentID       string `json:"payment_id"`
	StandardAddress string `json:"standard_address"`
}

// SplitIntegratedAddress recovers the standard address and payment id of
// an integrated address.
func (c Client) SplitIntegratedAddress(integratedAddress string) (*SplitIntegratedAddressResult, error) {
	var splitIntegratedAddressResult SplitIntegratedAddressResult
	err := c.CallResult(SplitIntegratedAddress, &splitIntegratedAddressResult, struct {
		IntegratedAddress string `json:"integrated_address"`
	}{integratedAddress})
	if err != nil {
		return nil, err
	}
	return &splitIntegratedAddressResult, nil
}

// URI is a monero: payment request. Amount is nil when the request names
// no amount.
type URI struct {
	Address       string  `json:"address"`
	Amount        *Amount `json:"amount,omitempty"`
	PaymentID     string  `json:"payment_id,omitempty"`
	RecipientName string  `json:"recipient_name,omitempty"`
	TxDescription string  `json:"tx_description,omitempty"`
}

// MakeURI formats a payment request URI.
func (c Client) MakeURI(uri URI) (string, error) {
	var makeURIResult struct {
		URI string `json:"uri"`
	}
	err := c.CallResult(MakeURI, &makeURIResult, uri)
	if err != nil {
		return "", err
	}
	return makeURIResult.URI, nil
}

// ParseURI decodes a payment request URI.
func (c Client) ParseURI(uri string) (*URI, error) {
	var parseURIResult struct {
		URI URI `json:"uri"`
	}
	err := c.CallResult(ParseURI, &parseURIResult, struct {
		URI string `json:"uri"`
	}{uri})
	if err != nil {
		return nil, err
	}
	return &parseURIResult.URI, nil
}

// AddressBookEntry as returned by GetAddressBook.
type AddressBookEntry struct {
	Address     string `json:"address"`
	Description string `json:"description"`
	Index       uint64 `json:"index"`
}

// GetAddressBook returns the entries at the given indices, or every entry
// when none are given.
func (c Client) GetAddressBook(entries ...uint64) ([]AddressBookEntry, error) {
	var getAddressBookResult struct {
		Entries []AddressBookEntry `json:"entries"`
	}
	err := c.CallResult(GetAddressBook, &getAddressBookResult, struct {
		Entries []uint64 `json:"entries,omitempty"`
	}{entries})
	if err != nil {
		return nil, err
	}
	return getAddressBookResult.Entries, nil
}

// AddAddressBook stores an address with a description and returns the new
// entry's index.
func (c Client) AddAddressBook(address, description string) (uint64, error) {
	var addAddressBookResult struct {
		Index uint64 `json:"index"`
	}
	err := c.CallResult(AddAddressBook, &addAddressBookResult, struct {
		Address     string `json:"address"`
		Description string `json:"description,omitempty"`
	}{address, description})
	if err != nil {
		return 0, err
	}
	return addAddressBookResult.Index, nil
}

// EditAddressBookRequest are the params of EditAddressBook. The Set flags
// say which fields to overwrite, so a field can be cleared explicitly.
type EditAddressBookRequest struct {
	Index          uint64 `json:"index"`
	SetAddress     bool   `json:"set_address"`
	Address        string `json:"address,omitempty"`
	SetDescription bool   `json:"set_description"`
	Description    string `json:"description,omitempty"`
}

// EditAddressBook overwrites chosen fields of an entry.
func (c Client) EditAddressBook(req EditAddressBookRequest) error {
	return c.CallResult(EditAddressBook, nil, req)
}

// DeleteAddressBook removes the entry at index.
func (c Client) DeleteAddressBook(index uint64) error {
	return c.CallResult(DeleteAddressBook, nil, struct {
		Index uint64 `json:"index"`
	}{index})
}

// SetAttribute stores an arbitrary key/value attribute in the wallet file.
func (c Client) SetAttribute(key, value string) error {
	return c.CallResult(SetAttribute, nil, struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	}{key, value})
}

// GetAttribute reads an attribute stored with SetAttribute.
func (c Client) GetAttribute(key string) (string, error) {
	var getAttributeResult struct {
		Value string `json:"value"`
	}
	err := c.CallResult(GetAttribute, &getAttributeResult, struct {
		Key string `json:"key"`
	}{key})
	if err != nil {
		return "", err
	}
	return getAttributeResult.Value, nil
}
