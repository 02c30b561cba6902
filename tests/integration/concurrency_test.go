package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tryPost is postJSON without test assertions, safe to call from spawned
// goroutines.
func (a *testApp) tryPost(path string, payload interface{}) (int, map[string]interface{}, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, err
	}

	resp, err := http.Post(a.server.URL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	var out map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, out, nil
}

// TestConcurrentBuys_ExactlyOneWins fires many simultaneous buys against a
// single listing. The claim gate must let exactly one settle; every loser
// gets a conflict before any of its money moves.
func TestConcurrentBuys_ExactlyOneWins(t *testing.T) {
	app := newTestApp(t)
	seller, _, listingID := marketplaceFixture(t, app)

	const buyers = 8
	addresses := make([]string, buyers)
	for i := range addresses {
		addresses[i] = app.newFundedWallet(t, "Concurrent Buyer", "500000")
	}

	var (
		wins   atomic.Int32
		losses atomic.Int32
		wg     sync.WaitGroup
	)

	start := make(chan struct{})
	for _, buyer := range addresses {
		wg.Add(1)
		go func(buyer string) {
			defer wg.Done()
			<-start

			status, body, err := app.tryPost("/api/v1/marketplace/buy", map[string]string{
				"listing_id":    listingID,
				"buyer_address": buyer,
			})
			if err != nil {
				t.Errorf("buy request failed: %v", err)
				return
			}
			switch status {
			case http.StatusCreated:
				wins.Add(1)
			case http.StatusConflict:
				losses.Add(1)
			default:
				t.Errorf("unexpected status %d: %v", status, body)
			}
		}(buyer)
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load(), "exactly one buy must settle")
	assert.Equal(t, int32(buyers-1), losses.Load())

	// The seller was paid exactly once.
	status, body := app.getJSON(t, "/api/v1/wallets/"+seller+"/balances")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "237500", data(t, body)["brlx"])

	// Every loser still holds its full stake.
	fullStake := 0
	for _, buyer := range addresses {
		status, body := app.getJSON(t, "/api/v1/wallets/"+buyer+"/balances")
		require.Equal(t, http.StatusOK, status)
		if data(t, body)["brlx"] == "500000" {
			fullStake++
		}
	}
	assert.Equal(t, buyers-1, fullStake)

	// The listing stays sold; a late buy is rejected.
	status, _ = app.getJSON(t, "/api/v1/marketplace/listings")
	require.Equal(t, http.StatusOK, status)

	status, _ = app.postJSON(t, "/api/v1/marketplace/buy", map[string]string{
		"listing_id":    listingID,
		"buyer_address": addresses[0],
	})
	assert.Equal(t, http.StatusConflict, status)
}
