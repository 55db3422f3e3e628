package authority

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aldoria/market-client/internal/domain"
	"github.com/aldoria/market-client/internal/logger"
)

// StreamHandler returns the SSE endpoint. Each connection is bound to the
// user named in the X-User-ID header and receives that user's game state
// plus the shared listing snapshots.
func (s *Server) StreamHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		userID := r.Header.Get("X-User-ID")
		if userID == "" {
			http.Error(w, ErrMsgMissingUserID, http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, ErrMsgStreamingUnsupported, http.StatusInternalServerError)
			return
		}

		sub := s.hub.Register(userID)
		log.Info(LogMsgSubscriberConnected,
			"subscriber_id", sub.ID,
			"user_id", userID,
			"total_subscribers", s.hub.SubscriberCount())

		defer func() {
			s.hub.Unregister(sub.ID)
			log.Info(LogMsgSubscriberDisconnected,
				"subscriber_id", sub.ID,
				"total_subscribers", s.hub.SubscriberCount())
		}()

		// Prime the new subscriber with the current world before any
		// incremental pushes arrive.
		initial := []Event{
			newEvent(EventTypeConnected, map[string]interface{}{"subscriber_id": sub.ID}),
			newEvent(domain.EventGameStateUpdate, s.state.GameState(userID)),
			newEvent(domain.EventMarketListingsUpdate, s.state.ActiveListings()),
		}
		for _, event := range initial {
			if !writeStreamEvent(w, flusher, event, log) {
				return
			}
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		ctx := r.Context()
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-sub.EventChannel:
				if !ok {
					// Hub is shutting down
					return
				}
				if !writeStreamEvent(w, flusher, event, log) {
					return
				}

			case <-ticker.C:
				keepalive := Event{
					Type:      EventTypeKeepalive,
					Timestamp: time.Now().Unix(),
				}
				if !writeStreamEvent(w, flusher, keepalive, log) {
					return
				}
			}
		}
	}
}

func writeStreamEvent(w http.ResponseWriter, flusher http.Flusher, event Event, log *slog.Logger) bool {
	msg, err := FormatStreamMessage(event)
	if err != nil {
		log.Error(LogMsgWriteError, "error", err)
		return true
	}
	if _, err := w.Write(msg); err != nil {
		log.Warn(LogMsgWriteError, "error", err)
		return false
	}
	flusher.Flush()
	return true
}
