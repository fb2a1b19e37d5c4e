package chain

import "context"

// HashStorage binds the IpfsHashStorage contract: the on-chain map from
// account address to the IPFS hash of that account's profile document.
type HashStorage struct {
	contract *BoundContract
}

// NewHashStorage binds the contract at address, sending from account.
func NewHashStorage(address, from string, rpc *RPCClient) *HashStorage {
	return &HashStorage{contract: NewBoundContract("IpfsHashStorage", address, from, rpc)}
}

// Deployed reports whether an address is bound.
func (h *HashStorage) Deployed() bool {
	return h.contract.Deployed()
}

// AccountHasIpfsHash reports whether account has a stored profile hash, i.e.
// is registered.
func (h *HashStorage) AccountHasIpfsHash(ctx context.Context, account string) (bool, error) {
	result, err := h.contract.Call(ctx, "accountHasIpfsHash(address)", AddressArg(account))
	if err != nil {
		return false, err
	}
	return DecodeBool(result)
}

// GetAccountIpfsHash returns the profile document hash stored for account.
func (h *HashStorage) GetAccountIpfsHash(ctx context.Context, account string) (string, error) {
	result, err := h.contract.Call(ctx, "getAccountIpfsHash(address)", AddressArg(account))
	if err != nil {
		return "", err
	}
	return DecodeString(result)
}

// SetAccountIpfsHash stores hash as the sender's profile document hash.
func (h *HashStorage) SetAccountIpfsHash(ctx context.Context, hash string) error {
	_, err := h.contract.Send(ctx, nil, "setAccountIpfsHash(string)", StringArg(hash))
	return err
}

// GetAccounts returns every registered account address.
func (h *HashStorage) GetAccounts(ctx context.Context) ([]string, error) {
	result, err := h.contract.Call(ctx, "getAccounts()")
	if err != nil {
		return nil, err
	}
	return DecodeAddressArray(result)
}
