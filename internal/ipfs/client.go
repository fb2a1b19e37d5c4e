// Package ipfs is the HTTP API client for the content store holding profile
// and project metadata documents. Documents are content-addressed JSON blobs;
// updating one means uploading a replacement and re-pointing the on-chain
// hash at it.
package ipfs

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/cfdapp/crowdfund-client/internal/config"
	"github.com/cfdapp/crowdfund-client/internal/logger"
)

// Client talks to an IPFS node's HTTP API (the /api/v0 RPC surface).
type Client struct {
	client *resty.Client
	logger *logger.Logger
}

// addResponse is the node's reply to /api/v0/add.
type addResponse struct {
	Name string `json:"Name"`
	Hash string `json:"Hash"`
	Size string `json:"Size"`
}

// NewClient constructs a *Client against ipfsCfg.APIAddress.
//
// Returns an error if the address cannot be parsed as a URL.
func NewClient(ipfsCfg config.IPFS, logger *logger.Logger) (*Client, error) {
	baseURL, err := normalizeBaseURL(ipfsCfg.APIAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid ipfs api address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(ipfsCfg.RequestTimeout)

	return &Client{client: client, logger: logger}, nil
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

// Cat fetches the raw bytes of the document at hash via POST /api/v0/cat.
func (c *Client) Cat(ctx context.Context, hash string) ([]byte, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("arg", hash).
		Post("/api/v0/cat")
	if err != nil {
		return nil, fmt.Errorf("cat request: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("cat %s: http %d: %s", hash, resp.StatusCode(), strings.TrimSpace(string(resp.Body())))
	}

	return resp.Body(), nil
}

// Add uploads data as a new document via multipart POST /api/v0/add and
// returns its content hash.
func (c *Client) Add(ctx context.Context, data []byte) (string, error) {
	var added addResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetFileReader("file", "document.json", strings.NewReader(string(data))).
		SetResult(&added).
		Post("/api/v0/add")
	if err != nil {
		return "", fmt.Errorf("add request: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("add: http %d: %s", resp.StatusCode(), strings.TrimSpace(string(resp.Body())))
	}
	if added.Hash == "" {
		return "", fmt.Errorf("add: node returned no hash")
	}

	c.logger.Debug().Str("hash", added.Hash).Str("size", added.Size).Msg("document added to content store")
	return added.Hash, nil
}

// AddJSON marshals v and uploads it, returning the content hash.
func (c *Client) AddJSON(ctx context.Context, v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}
	return c.Add(ctx, data)
}

// Ping checks that the node answers its version endpoint.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.client.R().
		SetContext(ctx).
		Post("/api/v0/version")
	if err != nil {
		return fmt.Errorf("ipfs ping: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("ipfs ping: http %d", resp.StatusCode())
	}
	return nil
}
