package chain

import (
	"context"
	"fmt"
	"math/big"
)

// BoundContract couples a contract name and deployed address with the RPC
// client. It is the base of the typed bindings; an address-less binding is
// valid to construct but every call through it fails with
// [ErrContractNotDeployed].
type BoundContract struct {
	name    string
	address string
	from    string
	rpc     *RPCClient
}

// NewBoundContract binds the contract at address, sending from the given
// account. An empty address is allowed and deferred to call time.
func NewBoundContract(name, address, from string, rpc *RPCClient) *BoundContract {
	return &BoundContract{
		name:    name,
		address: address,
		from:    from,
		rpc:     rpc,
	}
}

// Address returns the bound deployed address, or "" when undeployed.
func (c *BoundContract) Address() string {
	return c.address
}

// Deployed reports whether the registry provided an address for this binding.
func (c *BoundContract) Deployed() bool {
	return c.address != ""
}

// Call performs a read-only method call and returns the raw hex result.
func (c *BoundContract) Call(ctx context.Context, signature string, args ...Arg) (string, error) {
	if !c.Deployed() {
		return "", fmt.Errorf("%w: %s", ErrContractNotDeployed, c.name)
	}

	result, err := c.rpc.Call(ctx, c.from, c.address, EncodeCall(signature, args...))
	if err != nil {
		return "", fmt.Errorf("%s.%s: %w", c.name, signature, err)
	}

	return result, nil
}

// Send submits a state-changing method call and waits for its receipt.
// value, when non-nil, is the wei amount attached to the transaction.
func (c *BoundContract) Send(ctx context.Context, value *big.Int, signature string, args ...Arg) (*Receipt, error) {
	if !c.Deployed() {
		return nil, fmt.Errorf("%w: %s", ErrContractNotDeployed, c.name)
	}

	hexValue := ""
	if value != nil && value.Sign() > 0 {
		hexValue = "0x" + value.Text(16)
	}

	txHash, err := c.rpc.SendTransaction(ctx, c.from, c.address, EncodeCall(signature, args...), hexValue)
	if err != nil {
		return nil, fmt.Errorf("%s.%s: %w", c.name, signature, err)
	}

	receipt, err := c.rpc.WaitForReceipt(ctx, txHash)
	if err != nil {
		return nil, fmt.Errorf("%s.%s: %w", c.name, signature, err)
	}

	return receipt, nil
}
