package chain

import (
	"context"
	"fmt"

	"github.com/cfdapp/crowdfund-client/internal/config"
	"github.com/cfdapp/crowdfund-client/internal/logger"
)

// Registry keys for the platform contracts.
const (
	ContractHashStorage  = "IpfsHashStorage"
	ContractCrowdFunding = "CrowdFunding"
	ContractToken        = "CrowdFundingToken"
	ContractCrowdsale    = "TokenCrowdsale"
)

// Gateway is the connected view of the chain: the active account and the
// four contract bindings resolved for the current network.
type Gateway struct {
	Account   string
	NetworkID string

	HashStorage  *HashStorage
	CrowdFunding *CrowdFunding
	Token        *Token
	Crowdsale    *Crowdsale
}

// Connect dials the node, picks the first unlocked account, resolves the
// network id, and binds every contract through the deployments registry.
//
// Transport failures and an unreachable node surface as [ErrNotConnected];
// a node without accounts as [ErrNoAccount]. Contracts missing from the
// registry produce address-less bindings that fail at call time.
func Connect(ctx context.Context, rpc *RPCClient, chainCfg config.Chain, log *logger.Logger) (*Gateway, error) {
	accounts, err := rpc.Accounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing accounts: %w", err)
	}
	account := accounts[0]

	networkID, err := rpc.NetworkID(ctx)
	if err != nil {
		return nil, fmt.Errorf("error resolving network id: %w", err)
	}

	registry, err := LoadDeployments(chainCfg.DeploymentsPath)
	if err != nil {
		log.Warn().Err(err).Str("path", chainCfg.DeploymentsPath).
			Msg("deployments registry unavailable; contracts will be unbound")
		registry = nil
	}

	gw := &Gateway{
		Account:      account,
		NetworkID:    networkID,
		HashStorage:  NewHashStorage(registry.Address(ContractHashStorage, networkID), account, rpc),
		CrowdFunding: NewCrowdFunding(registry.Address(ContractCrowdFunding, networkID), account, rpc),
		Token:        NewToken(registry.Address(ContractToken, networkID), account, rpc),
		Crowdsale:    NewCrowdsale(registry.Address(ContractCrowdsale, networkID), account, rpc),
	}

	log.Info().
		Str("account", account).
		Str("network_id", networkID).
		Bool("crowdfunding_deployed", gw.CrowdFunding.Deployed()).
		Msg("chain gateway connected")

	return gw, nil
}
