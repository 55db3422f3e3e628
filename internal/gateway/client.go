// Package gateway is the client side of the asynchronous message interface
// to the market authority: commands go out as HTTP requests carrying the
// wire event names, pushes come back over a server-sent event stream. The
// stream is the only way authoritative state reaches the client.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aldoria/market-client/internal/domain"
)

// Client talks to one market authority on behalf of one player.
type Client struct {
	baseURL string
	userID  string
	http    *http.Client
}

// NewClient creates a gateway client. timeout bounds a single command round
// trip; the push stream is exempt (it is long-lived by design).
func NewClient(baseURL, userID string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		userID:  userID,
		http:    &http.Client{Timeout: timeout},
	}
}

// commandResponse is the authority's acknowledgement envelope.
type commandResponse struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// command POSTs one wire event to the authority and waits for the ack.
func (c *Client) command(ctx context.Context, event string, payload interface{}) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode %s payload: %w", event, err)
	}

	url := c.baseURL + CommandPathPrefix + event
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build %s request: %w", event, err)
	}
	req.Header.Set(HeaderContentType, ContentTypeJSON)
	req.Header.Set(HeaderUserID, c.userID)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s request failed: %w", event, err)
	}
	defer resp.Body.Close()

	var ack commandResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, MaxResponseBytes)).Decode(&ack); err != nil {
		return "", fmt.Errorf("failed to decode %s response: %w", event, err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := ack.Error
		if msg == "" {
			msg = resp.Status
		}
		return "", fmt.Errorf("%s rejected: %s", event, msg)
	}
	return ack.Message, nil
}

// FetchListings requests the full listings snapshot.
func (c *Client) FetchListings(ctx context.Context) ([]domain.Listing, error) {
	url := c.baseURL + ListingsPath
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build listings request: %w", err)
	}
	req.Header.Set(HeaderUserID, c.userID)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s request failed: %w", domain.EventGetMarketListings, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s rejected: %s", domain.EventGetMarketListings, resp.Status)
	}

	var listings []domain.Listing
	if err := json.NewDecoder(resp.Body).Decode(&listings); err != nil {
		return nil, fmt.Errorf("failed to decode listings: %w", err)
	}
	return listings, nil
}

// Buy asks the authority to purchase a listing.
func (c *Client) Buy(ctx context.Context, listingID string) (string, error) {
	return c.command(ctx, domain.EventBuyMarketItem, domain.BuyMarketItemPayload{ListingID: listingID})
}

// List asks the authority to create a listing from the player's inventory.
func (c *Client) List(ctx context.Context, itemID string, amount, price int) (string, error) {
	return c.command(ctx, domain.EventListMarketItem, domain.ListMarketItemPayload{
		ItemID: itemID, Amount: amount, Price: price,
	})
}

// Cancel asks the authority to withdraw one of the player's listings.
func (c *Client) Cancel(ctx context.Context, listingID string) (string, error) {
	return c.command(ctx, domain.EventCancelListing, domain.CancelListingPayload{ListingID: listingID})
}

// Claim collects a pending claim.
func (c *Client) Claim(ctx context.Context, claimID string) (string, error) {
	return c.command(ctx, domain.EventClaimMarketItem, domain.ClaimMarketItemPayload{ClaimID: claimID})
}

// Equip sends the fire-and-forget equip command. The authority updates the
// equipped state out of band; the ack carries no information worth keeping.
func (c *Client) Equip(ctx context.Context, itemID string) error {
	_, err := c.command(ctx, domain.EventEquipItem, domain.EquipItemPayload{ItemID: itemID})
	return err
}

// SellVendor sends the fire-and-forget vendor sale. Always the canonical
// event name; the legacy "sell_item" alias is inbound-only on the authority.
func (c *Client) SellVendor(ctx context.Context, itemID string, quantity int) error {
	_, err := c.command(ctx, domain.EventSellItemVendor, domain.SellItemVendorPayload{
		ItemID: itemID, Quantity: quantity,
	})
	return err
}
