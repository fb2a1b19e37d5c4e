package tui

import (
	"errors"

	"github.com/cfdapp/crowdfund-client/internal/chain"
	"github.com/cfdapp/crowdfund-client/internal/service"
)

// humanizeError maps the chain and service sentinels onto the wording the
// pages show. Anything unrecognized passes through verbatim.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, chain.ErrNotConnected):
		return "The blockchain node is not reachable. Check the RPC endpoint and try again."
	case errors.Is(err, chain.ErrNoAccount):
		return "The node exposes no unlocked account."
	case errors.Is(err, chain.ErrRejected):
		return "The transaction was rejected in the wallet."
	case errors.Is(err, chain.ErrReverted):
		return "The transaction was reverted by the contract."
	case errors.Is(err, chain.ErrContractNotDeployed):
		return "The contract is not deployed on this network."
	case errors.Is(err, service.ErrNotRegistered):
		return "This account is not registered yet."
	case errors.Is(err, service.ErrAlreadyRegistered):
		return "This account is already registered."
	case errors.Is(err, service.ErrBadCredentials):
		return "Invalid username or password."
	case errors.Is(err, service.ErrProjectName):
		return "The project name must be 8 to 30 characters long."
	case errors.Is(err, service.ErrProjectNameTaken):
		return "A project with that name already exists."
	case errors.Is(err, service.ErrProjectNotFound):
		return "The project does not exist or is not approved."
	case errors.Is(err, service.ErrNotOwner):
		return "Only the project owner can do that."
	}

	return err.Error()
}
