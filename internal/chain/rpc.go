package chain

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/cfdapp/crowdfund-client/internal/config"
	"github.com/cfdapp/crowdfund-client/internal/logger"
)

// FallbackRPCAddress is the local development node used when no endpoint is
// configured, matching the injected-provider fallback of the web client.
const FallbackRPCAddress = "http://127.0.0.1:8545"

// receiptPollInterval is the pause between eth_getTransactionReceipt polls
// while waiting for a transaction to be mined.
const receiptPollInterval = 500 * time.Millisecond

// RPCClient is a JSON-RPC 2.0 client for an Ethereum node. All methods take
// a context; per-request deadlines come from the configured request timeout.
type RPCClient struct {
	client *resty.Client
	nextID atomic.Uint64

	receiptTimeout time.Duration
	logger         *logger.Logger
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
	ID      uint64 `json:"id"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      uint64          `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcError       `json:"error"`
}

// Receipt is the subset of an Ethereum transaction receipt the client needs.
type Receipt struct {
	TransactionHash string `json:"transactionHash"`
	BlockNumber     string `json:"blockNumber"`
	Status          string `json:"status"`
}

// Succeeded reports whether the receipt carries a success status.
func (r *Receipt) Succeeded() bool {
	return r != nil && r.Status == "0x1"
}

// NewRPCClient constructs an *RPCClient against chainCfg.RPCAddress, falling
// back to [FallbackRPCAddress] when no endpoint is configured.
//
// Returns an error if the configured address cannot be parsed as a URL.
func NewRPCClient(chainCfg config.Chain, logger *logger.Logger) (*RPCClient, error) {
	address := chainCfg.RPCAddress
	if strings.TrimSpace(address) == "" {
		address = FallbackRPCAddress
	}

	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid rpc address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(chainCfg.RequestTimeout)

	return &RPCClient{
		client:         client,
		receiptTimeout: chainCfg.ReceiptTimeout,
		logger:         logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// call performs one JSON-RPC request and returns the raw result.
func (c *RPCClient) call(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	if params == nil {
		params = []any{}
	}

	req := rpcRequest{
		JSONRPC: "2.0",
		Method:  method,
		Params:  params,
		ID:      c.nextID.Add(1),
	}

	var rpcResp rpcResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&rpcResp).
		Post("/")
	if err != nil {
		return nil, fmt.Errorf("%w: %s %v", ErrNotConnected, method, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: %s http %d", ErrNotConnected, method, resp.StatusCode())
	}
	if rpcResp.Error != nil {
		return nil, mapRPCError(method, rpcResp.Error)
	}

	return rpcResp.Result, nil
}

// mapRPCError converts a JSON-RPC error object into a sentinel-wrapped error.
// Code 4001 is the EIP-1193 user-rejection code; revert messages come back as
// generic execution errors.
func mapRPCError(method string, rpcErr *rpcError) error {
	message := strings.ToLower(rpcErr.Message)

	switch {
	case rpcErr.Code == 4001 ||
		strings.Contains(message, "denied") ||
		strings.Contains(message, "rejected"):
		return fmt.Errorf("%w: %s", ErrRejected, rpcErr.Message)
	case strings.Contains(message, "revert"):
		return fmt.Errorf("%w: %s", ErrReverted, rpcErr.Message)
	default:
		return fmt.Errorf("rpc %s failed: %s (code %d)", method, rpcErr.Message, rpcErr.Code)
	}
}

// Accounts returns the node's unlocked account addresses via eth_accounts.
// A reachable node with no accounts yields [ErrNoAccount].
func (c *RPCClient) Accounts(ctx context.Context) ([]string, error) {
	result, err := c.call(ctx, "eth_accounts")
	if err != nil {
		return nil, err
	}

	var accounts []string
	if err := json.Unmarshal(result, &accounts); err != nil {
		return nil, fmt.Errorf("decode eth_accounts result: %w", err)
	}
	if len(accounts) == 0 {
		return nil, ErrNoAccount
	}

	return accounts, nil
}

// NetworkID returns the connected network id via net_version.
func (c *RPCClient) NetworkID(ctx context.Context) (string, error) {
	result, err := c.call(ctx, "net_version")
	if err != nil {
		return "", err
	}

	var id string
	if err := json.Unmarshal(result, &id); err != nil {
		return "", fmt.Errorf("decode net_version result: %w", err)
	}

	return id, nil
}

// Call performs a read-only eth_call against to with the given calldata and
// returns the hex-encoded result.
func (c *RPCClient) Call(ctx context.Context, from, to, data string) (string, error) {
	params := map[string]string{"to": to, "data": data}
	if from != "" {
		params["from"] = from
	}

	result, err := c.call(ctx, "eth_call", params, "latest")
	if err != nil {
		return "", err
	}

	var hexResult string
	if err := json.Unmarshal(result, &hexResult); err != nil {
		return "", fmt.Errorf("decode eth_call result: %w", err)
	}

	return hexResult, nil
}

// SendTransaction submits a state-changing transaction via
// eth_sendTransaction and returns the transaction hash. value, when non-empty,
// is the hex-encoded wei amount attached to the call.
func (c *RPCClient) SendTransaction(ctx context.Context, from, to, data, value string) (string, error) {
	params := map[string]string{"from": from, "to": to, "data": data}
	if value != "" {
		params["value"] = value
	}

	result, err := c.call(ctx, "eth_sendTransaction", params)
	if err != nil {
		return "", err
	}

	var txHash string
	if err := json.Unmarshal(result, &txHash); err != nil {
		return "", fmt.Errorf("decode eth_sendTransaction result: %w", err)
	}

	return txHash, nil
}

// TransactionReceipt fetches the receipt for txHash, or nil when the
// transaction is not yet mined.
func (c *RPCClient) TransactionReceipt(ctx context.Context, txHash string) (*Receipt, error) {
	result, err := c.call(ctx, "eth_getTransactionReceipt", txHash)
	if err != nil {
		return nil, err
	}
	if string(result) == "null" || len(result) == 0 {
		return nil, nil
	}

	var receipt Receipt
	if err := json.Unmarshal(result, &receipt); err != nil {
		return nil, fmt.Errorf("decode receipt result: %w", err)
	}

	return &receipt, nil
}

// WaitForReceipt polls for the receipt of txHash until it appears, the
// receipt timeout elapses, or ctx is cancelled. A status-0 receipt yields
// [ErrReverted].
func (c *RPCClient) WaitForReceipt(ctx context.Context, txHash string) (*Receipt, error) {
	ctx, cancel := context.WithTimeout(ctx, c.receiptTimeout)
	defer cancel()

	ticker := time.NewTicker(receiptPollInterval)
	defer ticker.Stop()

	for {
		receipt, err := c.TransactionReceipt(ctx, txHash)
		if err != nil {
			return nil, err
		}
		if receipt != nil {
			if !receipt.Succeeded() {
				return nil, fmt.Errorf("%w: tx %s", ErrReverted, txHash)
			}
			c.logger.Debug().Str("tx", txHash).Str("block", receipt.BlockNumber).Msg("transaction mined")
			return receipt, nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("waiting for receipt of %s: %w", txHash, ctx.Err())
		case <-ticker.C:
		}
	}
}
