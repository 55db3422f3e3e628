package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldoria/market-client/internal/domain"
)

// writeFrame writes one SSE frame the way the authority formats it.
func writeFrame(w http.ResponseWriter, id, eventType string, payload interface{}) {
	raw, _ := json.Marshal(payload)
	env := map[string]interface{}{
		"id":        id,
		"type":      eventType,
		"timestamp": time.Now().Unix(),
		"payload":   json.RawMessage(raw),
	}
	data, _ := json.Marshal(env)
	fmt.Fprintf(w, "id: %s\nevent: %s\ndata: %s\n\n", id, eventType, data)
}

func TestSubscribe_DecodesPushes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, StreamPath, r.URL.Path)
		assert.Equal(t, "user-1", r.Header.Get(HeaderUserID))
		w.Header().Set(HeaderContentType, ContentTypeEventStream)

		writeFrame(w, "e1", domain.EventMarketListingsUpdate,
			[]domain.Listing{{ID: "l1", ItemID: "T1_WOOD"}})
		writeFrame(w, "e2", domain.EventGameStateUpdate,
			domain.GameState{UserID: "user-1", Silver: 300})
		writeFrame(w, "e3", domain.EventMarketActionSuccess,
			domain.MarketActionSuccessPayload{Message: "sold"})
		w.(http.Flusher).Flush()

		// hold the connection open so the client does not reconnect mid-test
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := NewClient(srv.URL, "user-1", time.Second)
	pushes, err := c.Subscribe(ctx)
	require.NoError(t, err)

	push := <-pushes
	assert.Equal(t, domain.EventMarketListingsUpdate, push.Event)
	require.Len(t, push.Listings, 1)
	assert.Equal(t, "T1_WOOD", push.Listings[0].ItemID)

	push = <-pushes
	assert.Equal(t, domain.EventGameStateUpdate, push.Event)
	require.NotNil(t, push.State)
	assert.Equal(t, 300, push.State.Silver)

	push = <-pushes
	assert.Equal(t, domain.EventMarketActionSuccess, push.Event)
	assert.Equal(t, "sold", push.Message)
}

func TestSubscribe_DedupesReplayedEvents(t *testing.T) {
	var conns atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := conns.Add(1)
		w.Header().Set(HeaderContentType, ContentTypeEventStream)

		// every connection replays the same event, then drops; the second
		// connection adds one genuinely new event after the replay
		writeFrame(w, "dup-1", domain.EventGameStateUpdate,
			domain.GameState{UserID: "user-1", Silver: 100})
		if n >= 2 {
			writeFrame(w, "new-1", domain.EventGameStateUpdate,
				domain.GameState{UserID: "user-1", Silver: 200})
		}
		w.(http.Flusher).Flush()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := NewClient(srv.URL, "user-1", time.Second)
	pushes, err := c.Subscribe(ctx)
	require.NoError(t, err)

	first := <-pushes
	require.NotNil(t, first.State)
	assert.Equal(t, 100, first.State.Silver)

	// the replayed dup-1 must never come through again; the next delivery
	// is the new event from the reconnected stream
	second := <-pushes
	require.NotNil(t, second.State)
	assert.Equal(t, 200, second.State.Silver)
}

func TestSubscribe_IgnoresUnknownAndMalformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(HeaderContentType, ContentTypeEventStream)

		fmt.Fprint(w, "data: {malformed\n\n")
		writeFrame(w, "k1", "keepalive", nil)
		writeFrame(w, "u1", "mystery_event", map[string]string{"x": "y"})
		writeFrame(w, "e1", domain.EventError, domain.ErrorPayload{Message: "boom"})
		w.(http.Flusher).Flush()
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := NewClient(srv.URL, "user-1", time.Second)
	pushes, err := c.Subscribe(ctx)
	require.NoError(t, err)

	// only the decodable, known event arrives
	push := <-pushes
	assert.Equal(t, domain.EventError, push.Event)
	assert.Equal(t, "boom", push.Message)
}

func TestStreamOnce_RejectedStatusIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "user-1", time.Second)
	seen := expirable.NewLRU[string, struct{}](SeenEventCacheSize, nil, SeenEventTTL)
	out := make(chan domain.Push, 1)

	// a rejected subscription must surface its status, not scan an empty
	// body and report a clean disconnect
	err := c.streamOnce(context.Background(), seen, out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
	assert.Contains(t, err.Error(), "Streaming not supported")
}

func TestSubscribe_ClosesOnCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(HeaderContentType, ContentTypeEventStream)
		w.(http.Flusher).Flush()
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	c := NewClient(srv.URL, "user-1", time.Second)
	pushes, err := c.Subscribe(ctx)
	require.NoError(t, err)

	cancel()

	select {
	case _, open := <-pushes:
		assert.False(t, open)
	case <-time.After(5 * time.Second):
		t.Fatal("push channel did not close after cancel")
	}
}
