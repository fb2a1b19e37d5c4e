package chain

import (
	"context"
	"math/big"
)

// Crowdsale binds the TokenCrowdsale contract selling the crowdfunding token
// for ether.
type Crowdsale struct {
	contract *BoundContract
}

// NewCrowdsale binds the contract at address, sending from account.
func NewCrowdsale(address, from string, rpc *RPCClient) *Crowdsale {
	return &Crowdsale{contract: NewBoundContract("TokenCrowdsale", address, from, rpc)}
}

// Deployed reports whether an address is bound.
func (c *Crowdsale) Deployed() bool {
	return c.contract.Deployed()
}

// Address returns the bound contract address. The crowdsale's own token
// balance is the remaining supply for sale.
func (c *Crowdsale) Address() string {
	return c.contract.Address()
}

// Rate returns how many token smallest units one wei buys.
func (c *Crowdsale) Rate(ctx context.Context) (*big.Int, error) {
	result, err := c.contract.Call(ctx, "rate()")
	if err != nil {
		return nil, err
	}
	return DecodeUint256(result)
}

// TokenAddress returns the address of the token being sold.
func (c *Crowdsale) TokenAddress(ctx context.Context) (string, error) {
	result, err := c.contract.Call(ctx, "token()")
	if err != nil {
		return "", err
	}
	return DecodeAddress(result)
}

// BuyTokens purchases tokens for beneficiary, attaching value wei.
func (c *Crowdsale) BuyTokens(ctx context.Context, beneficiary string, value *big.Int) error {
	_, err := c.contract.Send(ctx, value, "buyTokens(address)", AddressArg(beneficiary))
	return err
}
