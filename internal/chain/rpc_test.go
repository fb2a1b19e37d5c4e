package chain

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cfdapp/crowdfund-client/internal/config"
	"github.com/cfdapp/crowdfund-client/internal/logger"
)

// rpcHandler answers one JSON-RPC method call in tests.
type rpcHandler func(method string, params []json.RawMessage) (any, *rpcError)

func newRPCServer(t *testing.T, handle rpcHandler) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Method string            `json:"method"`
			Params []json.RawMessage `json:"params"`
			ID     uint64            `json:"id"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		result, rpcErr := handle(req.Method, req.Params)

		resp := map[string]any{"jsonrpc": "2.0", "id": req.ID}
		if rpcErr != nil {
			resp["error"] = rpcErr
		} else {
			resp["result"] = result
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestRPCClient(t *testing.T, srv *httptest.Server) *RPCClient {
	t.Helper()
	client, err := NewRPCClient(config.Chain{
		RPCAddress:     srv.URL,
		RequestTimeout: 5 * time.Second,
		ReceiptTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return client
}

// TestNewRPCClient_FallbackAddress verifies the local development fallback.
func TestNewRPCClient_FallbackAddress(t *testing.T) {
	client, err := NewRPCClient(config.Chain{RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, FallbackRPCAddress, client.client.BaseURL)
}

// TestNewRPCClient_InvalidAddress verifies URL validation.
func TestNewRPCClient_InvalidAddress(t *testing.T) {
	_, err := NewRPCClient(config.Chain{RPCAddress: "://bad"}, logger.Nop())
	assert.Error(t, err)
}

// TestAccounts verifies account listing and the no-account sentinel.
func TestAccounts(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := newRPCServer(t, func(method string, _ []json.RawMessage) (any, *rpcError) {
			require.Equal(t, "eth_accounts", method)
			return []string{"0xaaa", "0xbbb"}, nil
		})

		accounts, err := newTestRPCClient(t, srv).Accounts(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"0xaaa", "0xbbb"}, accounts)
	})

	t.Run("empty list", func(t *testing.T) {
		srv := newRPCServer(t, func(string, []json.RawMessage) (any, *rpcError) {
			return []string{}, nil
		})

		_, err := newTestRPCClient(t, srv).Accounts(context.Background())
		assert.ErrorIs(t, err, ErrNoAccount)
	})
}

// TestNetworkID verifies the net_version decode.
func TestNetworkID(t *testing.T) {
	srv := newRPCServer(t, func(method string, _ []json.RawMessage) (any, *rpcError) {
		require.Equal(t, "net_version", method)
		return "5777", nil
	})

	id, err := newTestRPCClient(t, srv).NetworkID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "5777", id)
}

// TestCall verifies eth_call parameter shape and result decode.
func TestCall(t *testing.T) {
	srv := newRPCServer(t, func(method string, params []json.RawMessage) (any, *rpcError) {
		require.Equal(t, "eth_call", method)
		require.Len(t, params, 2)

		var call map[string]string
		require.NoError(t, json.Unmarshal(params[0], &call))
		assert.Equal(t, "0xcontract", call["to"])
		assert.Equal(t, "0xsender", call["from"])

		var block string
		require.NoError(t, json.Unmarshal(params[1], &block))
		assert.Equal(t, "latest", block)

		return "0x0000000000000000000000000000000000000000000000000000000000000001", nil
	})

	result, err := newTestRPCClient(t, srv).Call(context.Background(), "0xsender", "0xcontract", "0xdata")
	require.NoError(t, err)

	ok, err := DecodeBool(result)
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestCall_Reverted verifies the revert error mapping.
func TestCall_Reverted(t *testing.T) {
	srv := newRPCServer(t, func(string, []json.RawMessage) (any, *rpcError) {
		return nil, &rpcError{Code: -32000, Message: "execution reverted"}
	})

	_, err := newTestRPCClient(t, srv).Call(context.Background(), "", "0xcontract", "0xdata")
	assert.ErrorIs(t, err, ErrReverted)
}

// TestSendTransaction_Rejected verifies the EIP-1193 user-denial mapping.
func TestSendTransaction_Rejected(t *testing.T) {
	srv := newRPCServer(t, func(string, []json.RawMessage) (any, *rpcError) {
		return nil, &rpcError{Code: 4001, Message: "User denied transaction signature"}
	})

	_, err := newTestRPCClient(t, srv).SendTransaction(context.Background(), "0xsender", "0xcontract", "0xdata", "")
	assert.ErrorIs(t, err, ErrRejected)
}

// TestWaitForReceipt verifies polling through a not-yet-mined phase.
func TestWaitForReceipt(t *testing.T) {
	var polls atomic.Int64
	srv := newRPCServer(t, func(method string, _ []json.RawMessage) (any, *rpcError) {
		require.Equal(t, "eth_getTransactionReceipt", method)
		if polls.Add(1) < 2 {
			return nil, nil // not mined yet
		}
		return map[string]string{
			"transactionHash": "0xtx",
			"blockNumber":     "0x10",
			"status":          "0x1",
		}, nil
	})

	receipt, err := newTestRPCClient(t, srv).WaitForReceipt(context.Background(), "0xtx")
	require.NoError(t, err)
	assert.True(t, receipt.Succeeded())
	assert.GreaterOrEqual(t, polls.Load(), int64(2))
}

// TestWaitForReceipt_StatusZero verifies that a mined-but-failed transaction
// maps to ErrReverted.
func TestWaitForReceipt_StatusZero(t *testing.T) {
	srv := newRPCServer(t, func(string, []json.RawMessage) (any, *rpcError) {
		return map[string]string{
			"transactionHash": "0xtx",
			"blockNumber":     "0x10",
			"status":          "0x0",
		}, nil
	})

	_, err := newTestRPCClient(t, srv).WaitForReceipt(context.Background(), "0xtx")
	assert.ErrorIs(t, err, ErrReverted)
}

// TestWaitForReceipt_Timeout verifies that the receipt timeout bounds the
// poll loop instead of hanging.
func TestWaitForReceipt_Timeout(t *testing.T) {
	srv := newRPCServer(t, func(string, []json.RawMessage) (any, *rpcError) {
		return nil, nil // never mined
	})

	client, err := NewRPCClient(config.Chain{
		RPCAddress:     srv.URL,
		RequestTimeout: time.Second,
		ReceiptTimeout: 50 * time.Millisecond,
	}, logger.Nop())
	require.NoError(t, err)

	_, err = client.WaitForReceipt(context.Background(), "0xtx")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

// TestCall_NodeUnreachable verifies transport failures map to ErrNotConnected.
func TestCall_NodeUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused from here on

	client, err := NewRPCClient(config.Chain{
		RPCAddress:     srv.URL,
		RequestTimeout: time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	_, err = client.Call(context.Background(), "", "0xcontract", "0xdata")
	assert.ErrorIs(t, err, ErrNotConnected)
}

// TestMapRPCError covers the message-based fallbacks.
func TestMapRPCError(t *testing.T) {
	tests := []struct {
		name    string
		err     *rpcError
		wantErr error
	}{
		{"eip1193 code", &rpcError{Code: 4001, Message: "denied"}, ErrRejected},
		{"rejected message", &rpcError{Code: -32000, Message: "Transaction rejected"}, ErrRejected},
		{"revert message", &rpcError{Code: -32000, Message: "VM Exception: revert"}, ErrReverted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapRPCError("eth_call", tt.err), tt.wantErr)
		})
	}
}

// TestNormalizeBaseURL mirrors the accepted input shapes.
func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"full url", "http://localhost:8545", "http://localhost:8545", false},
		{"no scheme", "localhost:8545", "http://localhost:8545", false},
		{"trailing slash", "http://localhost:8545/", "http://localhost:8545", false},
		{"empty", "  ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
