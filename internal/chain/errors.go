package chain

import "errors"

// Sentinel errors for chain gateway failures. Callers branch on these with
// errors.Is; page controllers map them to terminal panels or overlays.
var (
	// ErrNotConnected indicates the JSON-RPC endpoint could not be reached.
	ErrNotConnected = errors.New("node not connected")
	// ErrNoAccount indicates the node exposes no unlocked accounts, so no
	// session is possible.
	ErrNoAccount = errors.New("no account available")
	// ErrRejected indicates the wallet user denied the transaction request.
	ErrRejected = errors.New("transaction rejected by user")
	// ErrReverted indicates the contract reverted execution, either in the
	// RPC error or as a status-0 receipt.
	ErrReverted = errors.New("transaction reverted")
	// ErrContractNotDeployed indicates the deployments registry has no
	// address for the contract on the connected network.
	ErrContractNotDeployed = errors.New("contract not deployed on this network")
)
