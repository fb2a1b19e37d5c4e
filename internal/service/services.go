package service

import (
	"github.com/cfdapp/crowdfund-client/internal/logger"
)

// Services bundles the client services the TUI depends on.
type Services struct {
	Accounts *AccountService
	Projects *ProjectService
	Sale     *TokenSaleService
}

// NewServices wires the service layer on top of the chain bindings, the
// content store and the session manager, all acting as account.
func NewServices(
	registry ProjectRegistry,
	token Token,
	crowdsale Crowdsale,
	hashes HashStorage,
	content ContentStore,
	sessions Sessions,
	account string,
	log *logger.Logger,
) *Services {
	accounts := NewAccountService(hashes, content, sessions, account, log)

	return &Services{
		Accounts: accounts,
		Projects: NewProjectService(registry, token, content, accounts, account, log),
		Sale:     NewTokenSaleService(token, crowdsale, account, log),
	}
}
