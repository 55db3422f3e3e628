package domain

import "time"

// ListingStatus is the lifecycle state of a market listing.
// Clients only ever observe the ACTIVE subset; SOLD and CANCELLED listings
// drop out of the broadcast snapshot and settle as claims.
type ListingStatus string

const (
	ListingActive    ListingStatus = "ACTIVE"
	ListingSold      ListingStatus = "SOLD"
	ListingCancelled ListingStatus = "CANCELLED"
)

// Listing is an active offer to sell a quantity of an item at a fixed total
// price. Amount and Price are strictly positive at creation; the authority
// enforces this and the client validates it advisorily before sending.
type Listing struct {
	ID         string        `json:"id"`
	SellerID   string        `json:"seller_id"`
	SellerName string        `json:"seller_name"`
	ItemID     string        `json:"item_id"`
	ItemData   ItemMetadata  `json:"item_data"`
	Amount     int           `json:"amount"`
	Price      int           `json:"price"`
	CreatedAt  time.Time     `json:"created_at"`
	Status     ListingStatus `json:"status"`
}

// ClaimKind distinguishes what a settled transaction owes the player.
type ClaimKind string

const (
	ClaimBoughtItem       ClaimKind = "BOUGHT_ITEM"
	ClaimSoldItem         ClaimKind = "SOLD_ITEM"
	ClaimCancelledListing ClaimKind = "CANCELLED_LISTING"
)

// Claim is a pending credit (item or silver) owed to the player, generated by
// a settled transaction and collected through an explicit claim action.
type Claim struct {
	ID        string    `json:"id"`
	Kind      ClaimKind `json:"kind"`
	ItemID    string    `json:"item_id,omitempty"`
	Amount    int       `json:"amount"`
	Silver    int       `json:"silver,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// CarriesItem reports whether the claim credits an item (as opposed to
// silver only). Sold-item claims pay out silver; the item already left.
func (c Claim) CarriesItem() bool {
	return c.Kind == ClaimBoughtItem || c.Kind == ClaimCancelledListing
}
