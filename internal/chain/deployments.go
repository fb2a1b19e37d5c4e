package chain

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Registry maps contract names to their deployed address per network id. It
// is loaded from a JSON file of the shape:
//
//	{
//	  "CrowdFunding": { "5777": "0xabc..." },
//	  "Token":        { "5777": "0xdef..." }
//	}
//
// A contract missing for the connected network is not a load error; the
// binding stays address-less and calls through it fail with
// [ErrContractNotDeployed].
type Registry struct {
	deployments map[string]map[string]string
}

// LoadDeployments reads the registry from the JSON file at path.
func LoadDeployments(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading deployments file: %w", err)
	}

	var deployments map[string]map[string]string
	if err := json.Unmarshal(data, &deployments); err != nil {
		return nil, fmt.Errorf("error decoding deployments file: %w", err)
	}

	return &Registry{deployments: deployments}, nil
}

// Address returns the deployed address of contract on networkID, or ""
// when the registry has no entry for that combination.
func (r *Registry) Address(contract, networkID string) string {
	if r == nil || r.deployments == nil {
		return ""
	}

	byNetwork, ok := r.deployments[contract]
	if !ok {
		return ""
	}

	return strings.TrimSpace(byNetwork[networkID])
}
