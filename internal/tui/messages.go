package tui

import (
	"math/big"

	"github.com/cfdapp/crowdfund-client/internal/service"
	"github.com/cfdapp/crowdfund-client/models"
)

type identityMsg struct {
	ident models.Identity
	err   error
}

// gateOpenedMsg carries the freshly resolved identity of a session-gated
// navigation together with the page it unlocks.
type gateOpenedMsg struct {
	target screen
	ident  models.Identity
	err    error
}

type logoutDoneMsg struct {
	err error
}

type authDoneMsg struct {
	profile models.Profile
	err     error
}

type registerDoneMsg struct {
	err error
}

type discoverLoadedMsg struct {
	projects []models.Project
	err      error
}

type projectLoadedMsg struct {
	project models.Project
	quote   models.TokenQuote
	err     error
}

type fundsUpdatedMsg struct {
	funds service.ProjectFunds
	err   error
}

type closeDoneMsg struct {
	open bool
	err  error
}

type approveDoneMsg struct {
	id       int64
	approved bool
	err      error
}

type projectCreatedMsg struct {
	err error
}

type updatePublishedMsg struct {
	err error
}

type quoteLoadedMsg struct {
	quote  models.TokenQuote
	wallet *big.Int
	err    error
}

type buyDoneMsg struct {
	balances service.SaleBalances
	err      error
}

type accountLoadedMsg struct {
	profile *models.Profile
	quote   models.TokenQuote
	wallet  *big.Int
	created []models.Project
	funded  []models.Project
	err     error
}

type adminLoadedMsg struct {
	projects []models.Project
	users    []models.Account
	err      error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
