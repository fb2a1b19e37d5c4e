// Package service implements the page-level operations of the crowdfunding
// client: account registration and login, project browsing and mutations, and
// the token sale. Every operation talks to the chain through the narrow
// contract interfaces below, never mutates local state before the chain
// confirms, and re-queries affected values after each write.
package service

import (
	"context"
	"math/big"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// HashStorage is the profile-hash contract surface used by the services:
// the on-chain map from account to profile document hash.
type HashStorage interface {
	// AccountHasIpfsHash reports whether account is registered.
	AccountHasIpfsHash(ctx context.Context, account string) (bool, error)
	// GetAccountIpfsHash returns account's profile document hash.
	GetAccountIpfsHash(ctx context.Context, account string) (string, error)
	// SetAccountIpfsHash stores hash for the sending account.
	SetAccountIpfsHash(ctx context.Context, hash string) error
	// GetAccounts returns every registered account.
	GetAccounts(ctx context.Context) ([]string, error)
}

// ProjectRegistry is the crowdfunding contract surface.
type ProjectRegistry interface {
	// Address returns the contract address, used as the token spender for
	// deposit allowances and as the transfer source on withdrawals.
	Address() string

	GetLastProjectId(ctx context.Context) (*big.Int, error)
	GetOwner(ctx context.Context, id *big.Int) (string, error)
	GetName(ctx context.Context, id *big.Int) (string, error)
	GetGoal(ctx context.Context, id *big.Int) (*big.Int, error)
	GetBalance(ctx context.Context, id *big.Int) (*big.Int, error)
	IsApproved(ctx context.Context, id *big.Int) (bool, error)
	IsOpen(ctx context.Context, id *big.Int) (bool, error)
	GetIpfsHash(ctx context.Context, id *big.Int) (string, error)
	SetIpfsHash(ctx context.Context, id *big.Int, hash string) error
	ProjectExists(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, name string, goal *big.Int) error
	Approve(ctx context.Context, id *big.Int) error
	Deposit(ctx context.Context, id, amount *big.Int) error
	Withdraw(ctx context.Context, id, amount *big.Int) error
	Close(ctx context.Context, id *big.Int) error
	GetFunderBalance(ctx context.Context, id *big.Int, funder string) (*big.Int, error)
	GetOwnerProjects(ctx context.Context, owner string) ([]*big.Int, error)
	GetUserFundedProjects(ctx context.Context, funder string) ([]*big.Int, error)
}

// Token is the ERC-20 surface of the crowdfunding token.
type Token interface {
	Symbol(ctx context.Context) (string, error)
	Decimals(ctx context.Context) (uint8, error)
	BalanceOf(ctx context.Context, account string) (*big.Int, error)
	Approve(ctx context.Context, spender string, amount *big.Int) error
	TransferFrom(ctx context.Context, from, to string, amount *big.Int) error
}

// Crowdsale is the token sale contract surface.
type Crowdsale interface {
	// Address returns the sale contract address; its own token balance is
	// the remaining supply for sale.
	Address() string
	Rate(ctx context.Context) (*big.Int, error)
	BuyTokens(ctx context.Context, beneficiary string, value *big.Int) error
}

// ContentStore reads and writes content-addressed JSON documents.
type ContentStore interface {
	Cat(ctx context.Context, hash string) ([]byte, error)
	AddJSON(ctx context.Context, v any) (string, error)
}

// Sessions is the local session slot surface.
type Sessions interface {
	Start() error
	Expired() bool
	End() error
}
