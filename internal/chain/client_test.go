package chain

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_HolderCount(t *testing.T) {
	key := DishKey("0x" + strings.Repeat("ab", 32))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req holderCountRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		assert.Equal(t, "getHolderCount", req.Method)
		assert.Equal(t, KeyHex(key), req.DishID)

		_ = json.NewEncoder(w).Encode(holderCountResponse{HolderCount: 42})
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)

	count, err := client.HolderCount(context.Background(), key)

	require.NoError(t, err)
	assert.Equal(t, int64(42), count)
}

func TestClient_HolderCount_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)

	_, err := client.HolderCount(context.Background(), DishKey("taco"))

	assert.ErrorIs(t, err, ErrChainUnavailable)
}

func TestClient_HolderCount_RPCError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(holderCountResponse{Error: "unknown dish"})
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)

	_, err := client.HolderCount(context.Background(), DishKey("taco"))

	assert.ErrorIs(t, err, ErrChainUnavailable)
}

func TestClient_HolderCount_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, time.Second)

	_, err := client.HolderCount(context.Background(), DishKey("taco"))

	assert.ErrorIs(t, err, ErrChainUnavailable)
}
