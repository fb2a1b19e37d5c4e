package config

import (
	"flag"
	"strings"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-rpc Ethereum JSON-RPC endpoint URL
//	-deployments contract deployments JSON file path
//	-request-timeout JSON-RPC request timeout (e.g., "15s", "1m")
//	-receipt-timeout transaction receipt wait timeout (e.g., "2m")
//	-ipfs IPFS HTTP API endpoint URL
//	-session-path session slot file path
//	-session-ttl session time-to-live (e.g., "24h")
//	-admin comma-separated admin account addresses
//	-log client log file path
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var rpcAddress string
	var deploymentsPath string
	var requestTimeout time.Duration
	var receiptTimeout time.Duration
	var ipfsAddress string
	var ipfsTimeout time.Duration
	var sessionPath string
	var sessionTTL time.Duration
	var adminAddresses string
	var logPath string
	var jsonConfigPath string

	flag.StringVar(&rpcAddress, "rpc", "", "Ethereum JSON-RPC endpoint URL")
	flag.StringVar(&deploymentsPath, "deployments", "", "Contract deployments JSON file path")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "JSON-RPC request timeout (e.g., 15s, 1m)")
	flag.DurationVar(&receiptTimeout, "receipt-timeout", 0, "Transaction receipt wait timeout (e.g., 2m)")
	flag.StringVar(&ipfsAddress, "ipfs", "", "IPFS HTTP API endpoint URL")
	flag.DurationVar(&ipfsTimeout, "ipfs-timeout", 0, "IPFS request timeout (e.g., 15s)")
	flag.StringVar(&sessionPath, "session-path", "", "Session slot file path")
	flag.DurationVar(&sessionTTL, "session-ttl", 0, "Session time-to-live (e.g., 24h)")
	flag.StringVar(&adminAddresses, "admin", "", "Comma-separated admin account addresses")
	flag.StringVar(&logPath, "log", "", "Client log file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			LogPath: logPath,
		},
		Chain: Chain{
			RPCAddress:      rpcAddress,
			RequestTimeout:  requestTimeout,
			ReceiptTimeout:  receiptTimeout,
			DeploymentsPath: deploymentsPath,
		},
		IPFS: IPFS{
			APIAddress:     ipfsAddress,
			RequestTimeout: ipfsTimeout,
		},
		Session: Session{
			Path: sessionPath,
			TTL:  sessionTTL,
		},
		Admin: Admin{
			Addresses: splitAddresses(adminAddresses),
		},
		JSONFilePath: jsonConfigPath,
	}
}

// splitAddresses splits a comma-separated address list, dropping empty items.
func splitAddresses(s string) []string {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	addresses := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			addresses = append(addresses, trimmed)
		}
	}

	if len(addresses) == 0 {
		return nil
	}
	return addresses
}
