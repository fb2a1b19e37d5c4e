package chain

import (
	"context"
	"math/big"
)

// CrowdFunding binds the CrowdFunding contract holding the project registry
// and the deposit/withdraw accounting.
type CrowdFunding struct {
	contract *BoundContract
}

// NewCrowdFunding binds the contract at address, sending from account.
func NewCrowdFunding(address, from string, rpc *RPCClient) *CrowdFunding {
	return &CrowdFunding{contract: NewBoundContract("CrowdFunding", address, from, rpc)}
}

// Deployed reports whether an address is bound.
func (c *CrowdFunding) Deployed() bool {
	return c.contract.Deployed()
}

// Address returns the bound contract address, needed as the spender for
// token approvals before deposits.
func (c *CrowdFunding) Address() string {
	return c.contract.Address()
}

// GetLastProjectId returns the id one past the newest project; valid ids are
// 0..last-1.
func (c *CrowdFunding) GetLastProjectId(ctx context.Context) (*big.Int, error) {
	result, err := c.contract.Call(ctx, "getLastProjectId()")
	if err != nil {
		return nil, err
	}
	return DecodeUint256(result)
}

// GetOwner returns the owner address of project id.
func (c *CrowdFunding) GetOwner(ctx context.Context, id *big.Int) (string, error) {
	result, err := c.contract.Call(ctx, "getOwner(uint256)", Uint256Arg(id))
	if err != nil {
		return "", err
	}
	return DecodeAddress(result)
}

// GetName returns the name of project id.
func (c *CrowdFunding) GetName(ctx context.Context, id *big.Int) (string, error) {
	result, err := c.contract.Call(ctx, "getName(uint256)", Uint256Arg(id))
	if err != nil {
		return "", err
	}
	return DecodeString(result)
}

// GetGoal returns the funding goal of project id in token smallest units.
func (c *CrowdFunding) GetGoal(ctx context.Context, id *big.Int) (*big.Int, error) {
	result, err := c.contract.Call(ctx, "getGoal(uint256)", Uint256Arg(id))
	if err != nil {
		return nil, err
	}
	return DecodeUint256(result)
}

// GetBalance returns the current funded balance of project id.
func (c *CrowdFunding) GetBalance(ctx context.Context, id *big.Int) (*big.Int, error) {
	result, err := c.contract.Call(ctx, "getBalance(uint256)", Uint256Arg(id))
	if err != nil {
		return nil, err
	}
	return DecodeUint256(result)
}

// IsApproved reports whether project id has been approved by an admin.
func (c *CrowdFunding) IsApproved(ctx context.Context, id *big.Int) (bool, error) {
	result, err := c.contract.Call(ctx, "isApproved(uint256)", Uint256Arg(id))
	if err != nil {
		return false, err
	}
	return DecodeBool(result)
}

// IsOpen reports whether project id still accepts deposits.
func (c *CrowdFunding) IsOpen(ctx context.Context, id *big.Int) (bool, error) {
	result, err := c.contract.Call(ctx, "isOpen(uint256)", Uint256Arg(id))
	if err != nil {
		return false, err
	}
	return DecodeBool(result)
}

// GetIpfsHash returns the metadata document hash of project id, or "" when
// none was attached.
func (c *CrowdFunding) GetIpfsHash(ctx context.Context, id *big.Int) (string, error) {
	result, err := c.contract.Call(ctx, "getIpfsHash(uint256)", Uint256Arg(id))
	if err != nil {
		return "", err
	}
	return DecodeString(result)
}

// SetIpfsHash attaches hash as the metadata document of project id. Only the
// project owner may call this.
func (c *CrowdFunding) SetIpfsHash(ctx context.Context, id *big.Int, hash string) error {
	_, err := c.contract.Send(ctx, nil, "setIpfsHash(uint256,string)", Uint256Arg(id), StringArg(hash))
	return err
}

// ProjectExists reports whether a project with the given name already exists.
func (c *CrowdFunding) ProjectExists(ctx context.Context, name string) (bool, error) {
	result, err := c.contract.Call(ctx, "projectExists(string)", StringArg(name))
	if err != nil {
		return false, err
	}
	return DecodeBool(result)
}

// Create registers a new project with the given name and goal.
func (c *CrowdFunding) Create(ctx context.Context, name string, goal *big.Int) error {
	_, err := c.contract.Send(ctx, nil, "create(string,uint256)", StringArg(name), Uint256Arg(goal))
	return err
}

// Approve marks project id as approved. Admin only.
func (c *CrowdFunding) Approve(ctx context.Context, id *big.Int) error {
	_, err := c.contract.Send(ctx, nil, "approve(uint256)", Uint256Arg(id))
	return err
}

// Deposit adds amount token units to project id from the sender's balance.
// The contract must already hold a matching token allowance.
func (c *CrowdFunding) Deposit(ctx context.Context, id, amount *big.Int) error {
	_, err := c.contract.Send(ctx, nil, "deposit(uint256,uint256)", Uint256Arg(id), Uint256Arg(amount))
	return err
}

// Withdraw takes amount token units out of the sender's stake in project id.
func (c *CrowdFunding) Withdraw(ctx context.Context, id, amount *big.Int) error {
	_, err := c.contract.Send(ctx, nil, "withdraw(uint256,uint256)", Uint256Arg(id), Uint256Arg(amount))
	return err
}

// Close stops project id from accepting further deposits. Owner only.
func (c *CrowdFunding) Close(ctx context.Context, id *big.Int) error {
	_, err := c.contract.Send(ctx, nil, "close(uint256)", Uint256Arg(id))
	return err
}

// GetFunderBalance returns funder's stake in project id.
func (c *CrowdFunding) GetFunderBalance(ctx context.Context, id *big.Int, funder string) (*big.Int, error) {
	result, err := c.contract.Call(ctx, "getFunderBalance(uint256,address)", Uint256Arg(id), AddressArg(funder))
	if err != nil {
		return nil, err
	}
	return DecodeUint256(result)
}

// GetFunders returns the addresses that funded project id.
func (c *CrowdFunding) GetFunders(ctx context.Context, id *big.Int) ([]string, error) {
	result, err := c.contract.Call(ctx, "getFunders(uint256)", Uint256Arg(id))
	if err != nil {
		return nil, err
	}
	return DecodeAddressArray(result)
}

// GetOwnerProjects returns the ids of every project created by owner.
func (c *CrowdFunding) GetOwnerProjects(ctx context.Context, owner string) ([]*big.Int, error) {
	result, err := c.contract.Call(ctx, "getOwnerProjects(address)", AddressArg(owner))
	if err != nil {
		return nil, err
	}
	return DecodeUint256Array(result)
}

// GetUserFundedProjects returns the ids of every project funder deposited to.
func (c *CrowdFunding) GetUserFundedProjects(ctx context.Context, funder string) ([]*big.Int, error) {
	result, err := c.contract.Call(ctx, "getUserFundedProjects(address)", AddressArg(funder))
	if err != nil {
		return nil, err
	}
	return DecodeUint256Array(result)
}
