// Package market orchestrates the marketplace flows: buy, list, cancel and
// claim round trips against the external authority, the confirmation gate in
// front of spend actions, and the transient feedback channel. The controller
// owns no authoritative state — every mutation is requested from the
// authority and only observed back through snapshots or acknowledgements.
package market

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/aldoria/market-client/internal/domain"
	"github.com/aldoria/market-client/internal/inventory"
	"github.com/aldoria/market-client/internal/listing"
	"github.com/aldoria/market-client/internal/logger"
	"github.com/aldoria/market-client/internal/metrics"
)

// Gateway is the asynchronous message interface to the market authority.
// Command calls block until the authority acknowledges or ctx expires.
type Gateway interface {
	FetchListings(ctx context.Context) ([]domain.Listing, error)
	Buy(ctx context.Context, listingID string) (string, error)
	List(ctx context.Context, itemID string, amount, price int) (string, error)
	Cancel(ctx context.Context, listingID string) (string, error)
	Claim(ctx context.Context, claimID string) (string, error)
	Equip(ctx context.Context, itemID string) error
	SellVendor(ctx context.Context, itemID string, quantity int) error
}

// Options configures a Controller.
type Options struct {
	UserID          string
	RequestTimeout  time.Duration // 0 = DefaultRequestTimeout
	NotificationTTL time.Duration // 0 = DefaultNotificationTTL
}

// DefaultRequestTimeout bounds a command round trip. The authority never
// leaves a request unanswered on purpose, but the controller must not hang
// forever on a response that never arrives.
const DefaultRequestTimeout = 10 * time.Second

// Controller is the transaction flow controller behind the market views.
type Controller struct {
	gw        Gateway
	store     *listing.Store
	projector *inventory.Projector
	gate      *Gate
	notifier  *Notifier
	form      *SellForm
	validate  *validator.Validate
	timeout   time.Duration

	mu     sync.RWMutex
	state  domain.GameState
	tab    Tab
	userID string

	wg sync.WaitGroup
}

// NewController creates a controller around the given gateway and stores.
func NewController(gw Gateway, store *listing.Store, projector *inventory.Projector, opts Options) *Controller {
	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	return &Controller{
		gw:        gw,
		store:     store,
		projector: projector,
		gate:      NewGate(),
		notifier:  NewNotifier(opts.NotificationTTL),
		form:      &SellForm{},
		validate:  validator.New(),
		timeout:   timeout,
		tab:       TabBrowse,
		userID:    opts.UserID,
	}
}

// Accessors for the UI layer.

func (c *Controller) Gate() *Gate         { return c.gate }
func (c *Controller) Notifier() *Notifier { return c.notifier }
func (c *Controller) Form() *SellForm     { return c.form }
func (c *Controller) Store() *listing.Store {
	return c.store
}

// Tab returns the active market tab.
func (c *Controller) Tab() Tab {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tab
}

// SwitchTab selects a market tab. Unknown tabs are ignored; switching never
// cancels in-flight requests.
func (c *Controller) SwitchTab(t Tab) {
	if !ValidTab(t) {
		return
	}
	c.mu.Lock()
	c.tab = t
	c.mu.Unlock()
}

// ==================== Snapshot application ====================

// ApplyGameState wholesale-replaces the authoritative player snapshot.
func (c *Controller) ApplyGameState(gs domain.GameState) {
	c.mu.Lock()
	c.state = gs
	if gs.UserID != "" {
		c.userID = gs.UserID
	}
	c.mu.Unlock()
	metrics.SnapshotsApplied.WithLabelValues("game_state").Inc()
}

// ApplyListings wholesale-replaces the listings snapshot.
func (c *Controller) ApplyListings(listings []domain.Listing) {
	c.store.SetSnapshot(listings)
	metrics.SnapshotsApplied.WithLabelValues("listings").Inc()
}

// GameState returns a copy of the latest player snapshot.
func (c *Controller) GameState() domain.GameState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Silver returns the latest authoritative balance. Never computed locally.
func (c *Controller) Silver() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.Silver
}

// UserID returns the local player identity.
func (c *Controller) UserID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.userID
}

// PendingClaims returns the claim badge count.
func (c *Controller) PendingClaims() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.state.Claims)
}

// ==================== Derived views ====================

// InventoryView projects the inventory snapshot for the given bucket.
func (c *Controller) InventoryView(cat domain.Category) []inventory.Entry {
	c.mu.RLock()
	inv := c.state.Inventory
	c.mu.RUnlock()
	return c.projector.Project(inv, cat)
}

// BrowseListings returns the filtered view of other players' listings.
func (c *Controller) BrowseListings(query string, cat domain.MarketCategory) []domain.Listing {
	return c.store.Search(c.UserID(), query, cat)
}

// MyListings returns the caller's own active listings.
func (c *Controller) MyListings() []domain.Listing {
	return c.store.Mine(c.UserID())
}

// Claims returns the pending claims from the latest snapshot.
func (c *Controller) Claims() []domain.Claim {
	c.mu.RLock()
	defer c.mu.RUnlock()
	claims := make([]domain.Claim, len(c.state.Claims))
	copy(claims, c.state.Claims)
	return claims
}

// ==================== Advisory preconditions ====================

// CanBuy is the advisory affordance check for a buy. A nil error only means
// the action looks valid locally; the authority stays free to reject it
// (another buyer may win the race), and that rejection flows through the
// ordinary error path.
func (c *Controller) CanBuy(listingID string) error {
	l, ok := c.store.Get(listingID)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrListingNotFound, listingID)
	}
	if c.Silver() < l.Price {
		return fmt.Errorf("%w: have %d, need %d", domain.ErrInsufficientFunds, c.Silver(), l.Price)
	}
	return nil
}

// HeldQuantity returns the held amount of an item per the latest snapshot.
func (c *Controller) HeldQuantity(itemID string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.Inventory.Quantity(itemID)
}

// ==================== Verbs ====================

// RequestBuy opens the confirmation gate for a purchase. The request is sent
// only on confirm; dismissing is free. The advisory funds check does not
// block the request — a forced send is still an ordinary async call whose
// error path the authority exercises.
func (c *Controller) RequestBuy(listingID string) {
	c.gate.Request(ConfirmBuyMessage, ConfirmBuySubtext, func() {
		c.send(VerbBuy, func(ctx context.Context) (string, error) {
			return c.gw.Buy(ctx, listingID)
		})
	})
}

// RequestCancel opens the confirmation gate for cancelling one of the
// caller's own listings. The ownership check is a usability restriction, not
// a security boundary — the authority enforces the real one.
func (c *Controller) RequestCancel(listingID string) error {
	if l, ok := c.store.Get(listingID); ok && l.SellerID != c.UserID() {
		return fmt.Errorf("%w: %s", domain.ErrNotSeller, listingID)
	}
	c.gate.Request(ConfirmCancelMessage, ConfirmCancelSubtext, func() {
		c.send(VerbCancel, func(ctx context.Context) (string, error) {
			return c.gw.Cancel(ctx, listingID)
		})
	})
	return nil
}

// ListItem submits the sell form as a new listing. Amount and price must be
// positive integers; the held-quantity ceiling is advisory only and logged,
// never blocking — the authority re-checks it.
func (c *Controller) ListItem(ctx context.Context) error {
	itemID, amount, price := c.form.Snapshot()
	if itemID == "" {
		return fmt.Errorf("%w: no item selected", domain.ErrItemNotFound)
	}

	payload := domain.ListMarketItemPayload{ItemID: itemID, Amount: amount, Price: price}
	if err := c.validate.Struct(payload); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			switch verrs[0].Field() {
			case "Amount":
				return fmt.Errorf("%w: %d", domain.ErrInvalidQuantity, amount)
			case "Price":
				return fmt.Errorf("%w: %d", domain.ErrInvalidPrice, price)
			}
		}
		return fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
	}

	if held := c.HeldQuantity(itemID); amount > held {
		logger.FromContext(ctx).Warn(LogMsgAmountExceedsHeld, "item", itemID, "amount", amount, "held", held)
	}

	c.send(VerbList, func(ctx context.Context) (string, error) {
		return c.gw.List(ctx, itemID, amount, price)
	})
	return nil
}

// ClaimItem collects a pending claim. Claiming is always non-destructive to
// the player, so no confirmation gate applies.
func (c *Controller) ClaimItem(claimID string) {
	c.send(VerbClaim, func(ctx context.Context) (string, error) {
		return c.gw.Claim(ctx, claimID)
	})
}

// EquipItem sends the fire-and-forget equip command. Equip eligibility is
// an affordance concern; unknown items are rejected locally because the
// authority cannot resolve them either.
func (c *Controller) EquipItem(ctx context.Context, itemID string, meta domain.ItemMetadata) error {
	if !meta.Equippable() {
		return fmt.Errorf("item %s is not equippable", itemID)
	}
	logger.FromContext(ctx).Info(LogMsgEquipItem, "item", itemID)
	return c.gw.Equip(ctx, itemID)
}

// RequestVendorSell opens the confirmation gate for a vendor quick-sell.
// The sale itself is fire-and-forget; the new balance arrives with the next
// game state snapshot.
func (c *Controller) RequestVendorSell(itemID string, quantity int, hintPrice int) {
	msg := fmt.Sprintf(ConfirmVendorSellMessageFmt, quantity, itemID, hintPrice)
	c.gate.Request(msg, ConfirmVendorSellSubtext, func() {
		ctx, cancel := c.requestContext()
		defer cancel()
		if err := c.gw.SellVendor(ctx, itemID, quantity); err != nil {
			c.handleError(err)
		}
	})
}

// RefreshListings fetches the full listing snapshot and applies it.
func (c *Controller) RefreshListings(ctx context.Context) error {
	listings, err := c.gw.FetchListings(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch listings: %w", err)
	}
	c.ApplyListings(listings)
	return nil
}

// ==================== Push handling ====================

// HandlePush routes a decoded authority push event.
func (c *Controller) HandlePush(ctx context.Context, push domain.Push) {
	log := logger.FromContext(ctx)
	switch push.Event {
	case domain.EventMarketListingsUpdate:
		c.ApplyListings(push.Listings)
	case domain.EventGameStateUpdate:
		if push.State != nil {
			c.ApplyGameState(*push.State)
		}
	case domain.EventMarketActionSuccess:
		c.handleSuccess(push.Message)
		// the success may belong to an action acknowledged out-of-band, so
		// the listing snapshot is re-fetched rather than trusted stale
		if err := c.RefreshListings(ctx); err != nil {
			log.Warn(LogMsgRefreshFailed, "error", err)
		}
	case domain.EventError:
		c.handleError(errors.New(nonEmpty(push.Message, GenericErrorMessage)))
	default:
		log.Debug(LogMsgUnknownPush, "event", push.Event)
	}
}

// ==================== Request plumbing ====================

// send runs one command round trip in the background. Every outcome ends in
// a notification; a success additionally clears the sell form and triggers a
// full listing re-fetch (no incremental patching). Errors are terminal for
// the request — no retry, no queueing; the user re-triggers.
func (c *Controller) send(verb string, call func(ctx context.Context) (string, error)) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		ctx, cancel := c.requestContext()
		defer cancel()

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestSent, "verb", verb)

		start := time.Now()
		msg, err := call(ctx)
		metrics.MarketRequestDuration.WithLabelValues(verb).Observe(time.Since(start).Seconds())

		if err != nil {
			outcome := metrics.OutcomeError
			if errors.Is(err, context.DeadlineExceeded) {
				err = fmt.Errorf("%w: %s", domain.ErrRequestTimeout, verb)
				outcome = metrics.OutcomeTimeout
			}
			metrics.MarketRequestsTotal.WithLabelValues(verb, outcome).Inc()
			log.Warn(LogMsgRequestFailed, "verb", verb, "error", err)
			c.handleError(err)
			return
		}

		metrics.MarketRequestsTotal.WithLabelValues(verb, metrics.OutcomeSuccess).Inc()
		log.Info(LogMsgRequestSucceeded, "verb", verb)
		c.handleSuccess(msg)

		if err := c.RefreshListings(ctx); err != nil {
			log.Warn(LogMsgRefreshFailed, "error", err)
		}
	}()
}

func (c *Controller) requestContext() (context.Context, context.CancelFunc) {
	ctx := logger.WithRequestID(context.Background(), logger.GenerateRequestID())
	return context.WithTimeout(ctx, c.timeout)
}

func (c *Controller) handleSuccess(message string) {
	c.notifier.Push(NotifySuccess, nonEmpty(message, GenericSuccessMessage))
	c.form.Clear()
}

func (c *Controller) handleError(err error) {
	c.notifier.Push(NotifyError, err.Error())
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// Shutdown waits for in-flight requests to finish and stops the notifier.
func (c *Controller) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	defer c.notifier.Stop()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf(ErrMsgShutdownTimedOut, ctx.Err())
	}
}
