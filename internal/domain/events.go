package domain

// Wire event names exchanged with the market authority. The names mirror the
// production socket protocol so payloads stay byte-compatible across
// transports.
const (
	// Commands (client -> authority)
	EventGetMarketListings = "get_market_listings"
	EventBuyMarketItem     = "buy_market_item"
	EventListMarketItem    = "list_market_item"
	EventCancelListing     = "cancel_listing"
	EventClaimMarketItem   = "claim_market_item"
	EventEquipItem         = "equip_item"
	// EventSellItemVendor is the canonical vendor-sale event name. A legacy
	// client variant emitted "sell_item"; the authority accepts it as an
	// inbound alias but the client only ever sends the canonical name.
	EventSellItemVendor      = "sell_item_vendor"
	EventSellItemVendorAlias = "sell_item"

	// Pushes (authority -> client)
	EventMarketListingsUpdate = "market_listings_update"
	EventGameStateUpdate      = "game_state_update"
	EventMarketActionSuccess  = "market_action_success"
	EventError                = "error"
)

// Command payloads. Validation tags are enforced on both ends: the client
// checks its own form input before sending, the authority re-validates.

type BuyMarketItemPayload struct {
	ListingID string `json:"listing_id" validate:"required,uuid4"`
}

type ListMarketItemPayload struct {
	ItemID string `json:"item_id" validate:"required,max=100"`
	Amount int    `json:"amount" validate:"min=1,max=10000"`
	Price  int    `json:"price" validate:"min=1,max=100000000"`
}

type CancelListingPayload struct {
	ListingID string `json:"listing_id" validate:"required,uuid4"`
}

type ClaimMarketItemPayload struct {
	ClaimID string `json:"claim_id" validate:"required,uuid4"`
}

type EquipItemPayload struct {
	ItemID string `json:"item_id" validate:"required,max=100"`
}

type SellItemVendorPayload struct {
	ItemID   string `json:"item_id" validate:"required,max=100"`
	Quantity int    `json:"quantity" validate:"min=1,max=10000"`
}

// Push payloads.

// MarketActionSuccessPayload acknowledges a settled command. Message is
// human-readable and optional; the client substitutes a generic one.
type MarketActionSuccessPayload struct {
	Message string `json:"message,omitempty"`
}

// ErrorPayload is the single generic error channel from the authority.
type ErrorPayload struct {
	Message string `json:"message,omitempty"`
}

// Push is a decoded authority push event. Exactly one of the payload fields
// is set, matching Event.
type Push struct {
	Event    string
	Listings []Listing  // EventMarketListingsUpdate
	State    *GameState // EventGameStateUpdate
	Message  string     // EventMarketActionSuccess / EventError
}
