package gateway

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/aldoria/market-client/internal/domain"
	"github.com/aldoria/market-client/internal/logger"
	"github.com/aldoria/market-client/internal/metrics"
)

// pushEnvelope mirrors the authority's SSE event framing.
type pushEnvelope struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Timestamp int64           `json:"timestamp"`
	Payload   json.RawMessage `json:"payload"`
}

// Subscribe opens the push stream and returns a channel of decoded pushes.
// The stream reconnects on failure until ctx is cancelled; the channel
// closes when the subscription ends for good.
//
// Snapshots are applied exactly once: every envelope carries a unique event
// ID, and IDs already seen (reconnect replays) are dropped before decoding.
func (c *Client) Subscribe(ctx context.Context) (<-chan domain.Push, error) {
	// The dedupe window only needs to outlive a reconnect replay burst.
	seen := expirable.NewLRU[string, struct{}](SeenEventCacheSize, nil, SeenEventTTL)

	out := make(chan domain.Push, PushBufferSize)
	go func() {
		defer close(out)
		log := logger.FromContext(ctx)
		for {
			if err := c.streamOnce(ctx, seen, out); err != nil {
				log.Warn(LogMsgStreamInterrupted, "error", err)
			}
			select {
			case <-ctx.Done():
				return
			case <-time.After(ReconnectDelay):
			}
		}
	}()
	return out, nil
}

// streamOnce runs one stream connection until it drops or ctx ends.
func (c *Client) streamOnce(ctx context.Context, seen *expirable.LRU[string, struct{}], out chan<- domain.Push) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+StreamPath, nil)
	if err != nil {
		return err
	}
	req.Header.Set(HeaderUserID, c.userID)
	req.Header.Set(HeaderAccept, ContentTypeEventStream)

	// The stream client carries no round-trip timeout: the connection is
	// long-lived and torn down via ctx.
	streamClient := &http.Client{}
	resp, err := streamClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBytes))
		return fmt.Errorf("%s: status %d: %s", ErrMsgStreamRejected, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	log := logger.FromContext(ctx)
	log.Info(LogMsgStreamConnected)

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxEventBytes)

	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data: ") {
			continue
		}

		var env pushEnvelope
		if err := json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &env); err != nil {
			log.Warn(LogMsgBadStreamEvent, "error", err)
			continue
		}

		// Keepalives carry no ID and are never deduped.
		if env.ID != "" {
			if _, dup := seen.Get(env.ID); dup {
				metrics.SnapshotsDeduped.Inc()
				continue
			}
			seen.Add(env.ID, struct{}{})
		}

		push, ok := decodePush(env)
		if !ok {
			log.Debug(LogMsgUnknownStreamEvent, "type", env.Type)
			continue
		}

		select {
		case out <- push:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return nil
}

// decodePush turns an envelope into a typed push event.
func decodePush(env pushEnvelope) (domain.Push, bool) {
	push := domain.Push{Event: env.Type}
	switch env.Type {
	case domain.EventMarketListingsUpdate:
		if err := json.Unmarshal(env.Payload, &push.Listings); err != nil {
			return domain.Push{}, false
		}
	case domain.EventGameStateUpdate:
		var gs domain.GameState
		if err := json.Unmarshal(env.Payload, &gs); err != nil {
			return domain.Push{}, false
		}
		push.State = &gs
	case domain.EventMarketActionSuccess:
		var p domain.MarketActionSuccessPayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			return domain.Push{}, false
		}
		push.Message = p.Message
	case domain.EventError:
		var p domain.ErrorPayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			return domain.Push{}, false
		}
		push.Message = p.Message
	default:
		return domain.Push{}, false
	}
	return push, true
}
