package chain

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrChainUnavailable indicates the RPC endpoint could not serve the read.
// Callers may retry; the failure carries no partial state.
var ErrChainUnavailable = errors.New("chain: rpc unavailable")

// HolderCounter reads the number of holders for a dish token.
type HolderCounter interface {
	HolderCount(ctx context.Context, key [KeySize]byte) (int64, error)
}

// Client reads dish token state over a JSON RPC endpoint.
type Client struct {
	rpcURL     string
	httpClient *http.Client
}

func NewClient(rpcURL string, timeout time.Duration) *Client {
	return &Client{
		rpcURL: rpcURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type holderCountRequest struct {
	Method string `json:"method"`
	DishID string `json:"dish_id"`
}

type holderCountResponse struct {
	HolderCount int64  `json:"holder_count"`
	Error       string `json:"error,omitempty"`
}

// HolderCount returns the current holder count for the given dish key.
func (c *Client) HolderCount(ctx context.Context, key [KeySize]byte) (int64, error) {
	body, err := json.Marshal(holderCountRequest{
		Method: "getHolderCount",
		DishID: KeyHex(key),
	})
	if err != nil {
		return 0, fmt.Errorf("chain: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.rpcURL, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("chain: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrChainUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%w: status %d", ErrChainUnavailable, resp.StatusCode)
	}

	var parsed holderCountResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return 0, fmt.Errorf("%w: decode response: %v", ErrChainUnavailable, err)
	}
	if parsed.Error != "" {
		return 0, fmt.Errorf("%w: %s", ErrChainUnavailable, parsed.Error)
	}

	return parsed.HolderCount, nil
}
