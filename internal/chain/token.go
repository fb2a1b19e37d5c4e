package chain

import (
	"context"
	"math/big"
)

// Token binds the crowdfunding ERC-20 token contract.
type Token struct {
	contract *BoundContract
}

// NewToken binds the contract at address, sending from account.
func NewToken(address, from string, rpc *RPCClient) *Token {
	return &Token{contract: NewBoundContract("CrowdFundingToken", address, from, rpc)}
}

// Deployed reports whether an address is bound.
func (t *Token) Deployed() bool {
	return t.contract.Deployed()
}

// Symbol returns the token ticker.
func (t *Token) Symbol(ctx context.Context) (string, error) {
	result, err := t.contract.Call(ctx, "symbol()")
	if err != nil {
		return "", err
	}
	return DecodeString(result)
}

// Decimals returns the token's decimal count.
func (t *Token) Decimals(ctx context.Context) (uint8, error) {
	result, err := t.contract.Call(ctx, "decimals()")
	if err != nil {
		return 0, err
	}
	return DecodeUint8(result)
}

// BalanceOf returns account's token balance in smallest units.
func (t *Token) BalanceOf(ctx context.Context, account string) (*big.Int, error) {
	result, err := t.contract.Call(ctx, "balanceOf(address)", AddressArg(account))
	if err != nil {
		return nil, err
	}
	return DecodeUint256(result)
}

// Approve grants spender an allowance of amount smallest units from the
// sender's balance.
func (t *Token) Approve(ctx context.Context, spender string, amount *big.Int) error {
	_, err := t.contract.Send(ctx, nil, "approve(address,uint256)", AddressArg(spender), Uint256Arg(amount))
	return err
}

// TransferFrom moves amount smallest units from from to to using the
// sender's allowance.
func (t *Token) TransferFrom(ctx context.Context, from, to string, amount *big.Int) error {
	_, err := t.contract.Send(ctx, nil, "transferFrom(address,address,uint256)",
		AddressArg(from), AddressArg(to), Uint256Arg(amount))
	return err
}
