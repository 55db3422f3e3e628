package authority

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aldoria/market-client/internal/domain"
	"github.com/aldoria/market-client/internal/logger"
	"github.com/aldoria/market-client/internal/metrics"
)

// Server is the stub market authority: an HTTP command surface plus a push
// stream, backed by the in-memory State. It exists so the client has a real
// counterpart to settle against in development and tests.
type Server struct {
	httpServer *http.Server
	state      *State
	hub        *Hub
	validate   *validator.Validate
	router     chi.Router
}

// NewServer creates a Server listening on the given port.
func NewServer(port int, state *State, hub *Hub) *Server {
	s := &Server{
		state:    state,
		hub:      hub,
		validate: validator.New(),
	}

	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(metrics.Middleware)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/market/listings", s.handleGetListings)
		r.Get("/stream", s.StreamHandler())
		r.Post("/command/{event}", s.handleCommand)
	})

	s.router = r
	s.httpServer = &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: r,
	}
	return s
}

// Handler exposes the router, primarily for tests driving httptest.Server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start begins serving. Blocks until the server stops.
func (s *Server) Start() error {
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the HTTP server and the push hub.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	s.hub.Stop()
	return err
}

// commandAck is the acknowledgement envelope for command requests.
type commandAck struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (s *Server) handleGetListings(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, s.state.ActiveListings())
}

// handleCommand dispatches one wire command by its event name.
func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	event := chi.URLParam(r, "event")
	userID := r.Header.Get("X-User-ID")
	if userID == "" {
		respondJSON(w, http.StatusBadRequest, commandAck{Error: ErrMsgMissingUserID})
		return
	}

	log.Info(LogMsgCommandReceived, "event", event, "user_id", userID)

	msg, err := s.dispatch(r, event, userID)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, errUnknownCommand) {
			status = http.StatusNotFound
		}
		log.Warn(LogMsgCommandFailed, "event", event, "error", err)
		s.hub.BroadcastUser(userID, domain.EventError, domain.ErrorPayload{Message: err.Error()})
		respondJSON(w, status, commandAck{Error: err.Error()})
		return
	}

	s.pushUpdates(event, userID)
	respondJSON(w, http.StatusOK, commandAck{Message: msg})
}

var errUnknownCommand = errors.New(ErrMsgUnknownCommand)

// dispatch decodes, validates and settles one command.
func (s *Server) dispatch(r *http.Request, event, userID string) (string, error) {
	switch event {
	case domain.EventGetMarketListings:
		// Snapshot-only command; the refresh itself is the push below.
		return "", nil

	case domain.EventBuyMarketItem:
		var req domain.BuyMarketItemPayload
		if err := s.decode(r, &req); err != nil {
			return "", err
		}
		return s.state.Buy(userID, req.ListingID)

	case domain.EventListMarketItem:
		var req domain.ListMarketItemPayload
		if err := s.decode(r, &req); err != nil {
			return "", err
		}
		return s.state.List(userID, req)

	case domain.EventCancelListing:
		var req domain.CancelListingPayload
		if err := s.decode(r, &req); err != nil {
			return "", err
		}
		return s.state.Cancel(userID, req.ListingID)

	case domain.EventClaimMarketItem:
		var req domain.ClaimMarketItemPayload
		if err := s.decode(r, &req); err != nil {
			return "", err
		}
		return s.state.Claim(userID, req.ClaimID)

	case domain.EventEquipItem:
		var req domain.EquipItemPayload
		if err := s.decode(r, &req); err != nil {
			return "", err
		}
		return s.state.Equip(userID, req.ItemID)

	case domain.EventSellItemVendor, domain.EventSellItemVendorAlias:
		var req domain.SellItemVendorPayload
		if err := s.decode(r, &req); err != nil {
			return "", err
		}
		return s.state.VendorSell(userID, req)

	default:
		return "", errUnknownCommand
	}
}

// pushUpdates broadcasts the snapshots a settled command may have changed.
// Snapshots are wholesale; over-pushing is harmless, under-pushing is not.
func (s *Server) pushUpdates(event, userID string) {
	switch event {
	case domain.EventGetMarketListings:
		s.hub.BroadcastUser(userID, domain.EventMarketListingsUpdate, s.state.ActiveListings())

	case domain.EventListMarketItem, domain.EventCancelListing:
		s.hub.BroadcastAll(domain.EventMarketListingsUpdate, s.state.ActiveListings())
		s.hub.BroadcastUser(userID, domain.EventGameStateUpdate, s.state.GameState(userID))

	case domain.EventBuyMarketItem:
		s.hub.BroadcastAll(domain.EventMarketListingsUpdate, s.state.ActiveListings())
		// Both sides of the trade gained a claim or lost silver. The buyer is
		// known; sellers learn of the sale on their next state push, so push
		// everyone's state cheaply by pushing each registered player.
		s.pushAllGameStates()

	case domain.EventClaimMarketItem, domain.EventSellItemVendor, domain.EventSellItemVendorAlias:
		s.hub.BroadcastUser(userID, domain.EventGameStateUpdate, s.state.GameState(userID))
	}
}

func (s *Server) pushAllGameStates() {
	for _, userID := range s.state.PlayerIDs() {
		s.hub.BroadcastUser(userID, domain.EventGameStateUpdate, s.state.GameState(userID))
	}
}

// decode unmarshals and validates a command payload.
func (s *Server) decode(r *http.Request, req interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgInvalidRequest, err)
	}
	if err := s.validate.Struct(req); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgInvalidRequestSummary, err)
	}
	return nil
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// requestIDMiddleware stamps each request context with a request ID so log
// lines from one command can be correlated.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
