package authority

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldoria/market-client/internal/domain"
	"github.com/aldoria/market-client/internal/gateway"
)

func newTestServer(t *testing.T) (*httptest.Server, *State) {
	t.Helper()

	state := NewState(testCatalog(t))
	state.SeedPlayer("seller", "Seller", 1000, domain.Inventory{
		{ItemID: "T1_WOOD", Quantity: 50},
	})
	state.SeedPlayer("buyer", "Buyer", 1000, domain.Inventory{})

	hub := NewHub()
	hub.Start()
	t.Cleanup(hub.Stop)

	srv := NewServer(0, state, hub)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	return ts, state
}

func TestCommandFlow_ListBuyClaim(t *testing.T) {
	ts, state := newTestServer(t)
	ctx := context.Background()

	seller := gateway.NewClient(ts.URL, "seller", time.Second)
	buyer := gateway.NewClient(ts.URL, "buyer", time.Second)

	// seller lists 20 wood for 100 silver
	msg, err := seller.List(ctx, "T1_WOOD", 20, 100)
	require.NoError(t, err)
	assert.Equal(t, MsgListingCreated, msg)

	listings, err := buyer.FetchListings(ctx)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "T1_WOOD", listings[0].ItemID)
	assert.Equal(t, "Seller", listings[0].SellerName)

	// buyer purchases it
	_, err = buyer.Buy(ctx, listings[0].ID)
	require.NoError(t, err)

	listings, err = buyer.FetchListings(ctx)
	require.NoError(t, err)
	assert.Empty(t, listings)

	// buyer collects the claim through the wire
	gs := state.GameState("buyer")
	require.Len(t, gs.Claims, 1)
	_, err = buyer.Claim(ctx, gs.Claims[0].ID)
	require.NoError(t, err)

	gs = state.GameState("buyer")
	assert.Equal(t, 20, gs.Inventory.Quantity("T1_WOOD"))
	assert.Equal(t, 900, gs.Silver)
}

func TestCommandFlow_Rejections(t *testing.T) {
	ts, _ := newTestServer(t)
	ctx := context.Background()

	buyer := gateway.NewClient(ts.URL, "buyer", time.Second)

	// non-existent listing (well-formed ID): authority-side rejection
	_, err := buyer.Buy(ctx, "4f2c01de-9067-4f7e-b278-1fe751f3b1b0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrMsgListingNotFound)

	// malformed payload fails validation before reaching the book
	_, err = buyer.Buy(ctx, "not-a-uuid")
	require.Error(t, err)

	// listing an unheld item
	_, err = buyer.List(ctx, "T1_WOOD", 5, 50)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrMsgInsufficientQuantity)
}

func TestCommandFlow_CancelOwnership(t *testing.T) {
	ts, _ := newTestServer(t)
	ctx := context.Background()

	seller := gateway.NewClient(ts.URL, "seller", time.Second)
	buyer := gateway.NewClient(ts.URL, "buyer", time.Second)

	_, err := seller.List(ctx, "T1_WOOD", 10, 60)
	require.NoError(t, err)
	listings, err := seller.FetchListings(ctx)
	require.NoError(t, err)
	require.Len(t, listings, 1)

	_, err = buyer.Cancel(ctx, listings[0].ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrMsgNotSeller)

	_, err = seller.Cancel(ctx, listings[0].ID)
	require.NoError(t, err)
}

func TestCommandFlow_VendorSellAlias(t *testing.T) {
	ts, state := newTestServer(t)
	ctx := context.Background()

	seller := gateway.NewClient(ts.URL, "seller", time.Second)
	require.NoError(t, seller.SellVendor(ctx, "T1_WOOD", 10))

	// T1 vendor price is 5; ten of them settle immediately
	gs := state.GameState("seller")
	assert.Equal(t, 1050, gs.Silver)
	assert.Equal(t, 40, gs.Inventory.Quantity("T1_WOOD"))
}

func TestStream_AcceptedThroughFullRouter(t *testing.T) {
	ts, _ := newTestServer(t)

	// the event-stream handshake must survive the metrics middleware: the
	// handler type-asserts http.Flusher on the wrapped writer
	req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/v1/stream", nil)
	require.NoError(t, err)
	req.Header.Set("X-User-ID", "buyer")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))
}

func TestStream_PushesSnapshotsAfterCommands(t *testing.T) {
	ts, _ := newTestServer(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	buyer := gateway.NewClient(ts.URL, "buyer", time.Second)
	pushes, err := buyer.Subscribe(ctx)
	require.NoError(t, err)

	// the stream primes new subscribers with both snapshots
	initial := collectPushes(t, pushes, 2)
	assert.Contains(t, eventNames(initial), domain.EventGameStateUpdate)
	assert.Contains(t, eventNames(initial), domain.EventMarketListingsUpdate)

	// a listing by another player reaches the buyer as a listings push
	seller := gateway.NewClient(ts.URL, "seller", time.Second)
	_, err = seller.List(ctx, "T1_WOOD", 5, 40)
	require.NoError(t, err)

	deadline := time.After(5 * time.Second)
	for {
		select {
		case push := <-pushes:
			if push.Event == domain.EventMarketListingsUpdate && len(push.Listings) == 1 {
				assert.Equal(t, "T1_WOOD", push.Listings[0].ItemID)
				return
			}
		case <-deadline:
			t.Fatal("listings push never arrived")
		}
	}
}

func collectPushes(t *testing.T, pushes <-chan domain.Push, n int) []domain.Push {
	t.Helper()
	out := make([]domain.Push, 0, n)
	deadline := time.After(5 * time.Second)
	for len(out) < n {
		select {
		case push := <-pushes:
			out = append(out, push)
		case <-deadline:
			t.Fatalf("expected %d pushes, got %d", n, len(out))
		}
	}
	return out
}

func eventNames(pushes []domain.Push) []string {
	out := make([]string, len(pushes))
	for i, p := range pushes {
		out[i] = p.Event
	}
	return out
}
