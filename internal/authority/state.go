package authority

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aldoria/market-client/internal/catalog"
	"github.com/aldoria/market-client/internal/domain"
	"github.com/aldoria/market-client/internal/inventory"
	"github.com/aldoria/market-client/internal/market"
)

// playerState is the authority-side record for one player.
type playerState struct {
	userID   string
	name     string
	silver   int
	inv      domain.Inventory
	claims   []domain.Claim
	equipped string
}

// State is the in-memory order book and player ledger. Every mutation is
// settled under one lock so balances, escrow and claims never drift apart.
type State struct {
	mu       sync.Mutex
	catalog  *catalog.Catalog
	players  map[string]*playerState
	listings []*domain.Listing
	byID     map[string]*domain.Listing
}

// NewState creates an empty state backed by the given item catalog.
func NewState(cat *catalog.Catalog) *State {
	return &State{
		catalog: cat,
		players: make(map[string]*playerState),
		byID:    make(map[string]*domain.Listing),
	}
}

// SeedPlayer registers a player with a starting balance and inventory.
// Existing players are left untouched.
func (s *State) SeedPlayer(userID, name string, silver int, inv domain.Inventory) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.players[userID]; ok {
		return
	}
	s.players[userID] = &playerState{
		userID: userID,
		name:   name,
		silver: silver,
		inv:    append(domain.Inventory(nil), inv...),
	}
}

func (s *State) player(userID string) *playerState {
	p, ok := s.players[userID]
	if !ok {
		p = &playerState{userID: userID, name: userID, silver: StartingSilver}
		s.players[userID] = p
	}
	return p
}

// PlayerIDs returns the IDs of every known player.
func (s *State) PlayerIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.players))
	for id := range s.players {
		ids = append(ids, id)
	}
	return ids
}

// ActiveListings returns the current order book snapshot, oldest first.
func (s *State) ActiveListings() []domain.Listing {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeListingsLocked()
}

func (s *State) activeListingsLocked() []domain.Listing {
	out := make([]domain.Listing, 0, len(s.listings))
	for _, l := range s.listings {
		if l.Status == domain.ListingActive {
			out = append(out, *l)
		}
	}
	return out
}

// GameState returns the full authoritative snapshot for one player.
func (s *State) GameState(userID string) domain.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gameStateLocked(s.player(userID))
}

func (s *State) gameStateLocked(p *playerState) domain.GameState {
	return domain.GameState{
		UserID:    p.userID,
		Silver:    p.silver,
		Inventory: append(domain.Inventory(nil), p.inv...),
		Claims:    append([]domain.Claim(nil), p.claims...),
	}
}

// List escrows items out of the seller's inventory and opens a listing.
func (s *State) List(userID string, req domain.ListMarketItemPayload) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	meta, ok := s.catalog.Resolve(req.ItemID)
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrItemNotFound, req.ItemID)
	}
	if req.Amount <= 0 {
		return "", domain.ErrInvalidQuantity
	}
	if req.Price <= 0 {
		return "", domain.ErrInvalidPrice
	}

	p := s.player(userID)
	if p.inv.Quantity(req.ItemID) < req.Amount {
		return "", fmt.Errorf("%w: %s", domain.ErrInsufficientQuantity, req.ItemID)
	}
	removeItem(p, req.ItemID, req.Amount)

	l := &domain.Listing{
		ID:         uuid.New().String(),
		SellerID:   p.userID,
		SellerName: p.name,
		ItemID:     req.ItemID,
		ItemData:   meta,
		Amount:     req.Amount,
		Price:      req.Price,
		CreatedAt:  time.Now(),
		Status:     domain.ListingActive,
	}
	s.listings = append(s.listings, l)
	s.byID[l.ID] = l

	return MsgListingCreated, nil
}

// Buy settles a purchase: the buyer pays the full price up front, the item
// lands in the buyer's claims, and the seller is owed the price minus tax.
func (s *State) Buy(userID, listingID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.byID[listingID]
	if !ok || l.Status != domain.ListingActive {
		return "", fmt.Errorf("%w: %s", domain.ErrListingNotFound, listingID)
	}

	buyer := s.player(userID)
	if buyer.silver < l.Price {
		return "", domain.ErrInsufficientFunds
	}

	buyer.silver -= l.Price
	l.Status = domain.ListingSold

	now := time.Now()
	buyer.claims = append(buyer.claims, domain.Claim{
		ID:        uuid.New().String(),
		Kind:      domain.ClaimBoughtItem,
		ItemID:    l.ItemID,
		Amount:    l.Amount,
		Timestamp: now,
	})

	_, net := market.TaxEstimate(l.Price)
	seller := s.player(l.SellerID)
	seller.claims = append(seller.claims, domain.Claim{
		ID:        uuid.New().String(),
		Kind:      domain.ClaimSoldItem,
		ItemID:    l.ItemID,
		Amount:    l.Amount,
		Silver:    net,
		Timestamp: now,
	})

	return MsgListingBought, nil
}

// Cancel withdraws a listing and returns the escrowed items as a claim.
// Only the seller may cancel.
func (s *State) Cancel(userID, listingID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.byID[listingID]
	if !ok || l.Status != domain.ListingActive {
		return "", fmt.Errorf("%w: %s", domain.ErrListingNotFound, listingID)
	}
	if l.SellerID != userID {
		return "", domain.ErrNotSeller
	}

	l.Status = domain.ListingCancelled

	p := s.player(userID)
	p.claims = append(p.claims, domain.Claim{
		ID:        uuid.New().String(),
		Kind:      domain.ClaimCancelledListing,
		ItemID:    l.ItemID,
		Amount:    l.Amount,
		Timestamp: time.Now(),
	})

	return MsgListingCancelled, nil
}

// Claim collects a pending claim, crediting silver or items.
func (s *State) Claim(userID, claimID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.player(userID)
	for i, c := range p.claims {
		if c.ID != claimID {
			continue
		}
		if c.CarriesItem() {
			addItem(p, c.ItemID, c.Amount)
		}
		p.silver += c.Silver
		p.claims = append(p.claims[:i], p.claims[i+1:]...)
		return MsgClaimCollected, nil
	}
	return "", fmt.Errorf("%w: %s", domain.ErrClaimNotFound, claimID)
}

// VendorSell converts items into silver at the fixed vendor rate. Unlike a
// market sale this settles immediately with no claim step.
func (s *State) VendorSell(userID string, req domain.SellItemVendorPayload) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	meta, ok := s.catalog.Resolve(req.ItemID)
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrItemNotFound, req.ItemID)
	}
	if req.Quantity <= 0 {
		return "", domain.ErrInvalidQuantity
	}

	p := s.player(userID)
	if p.inv.Quantity(req.ItemID) < req.Quantity {
		return "", fmt.Errorf("%w: %s", domain.ErrInsufficientQuantity, req.ItemID)
	}
	removeItem(p, req.ItemID, req.Quantity)

	payout := inventory.VendorPrice(meta) * req.Quantity
	p.silver += payout

	return fmt.Sprintf(MsgVendorSold, payout), nil
}

// Equip marks a held equippable item as the player's active gear.
func (s *State) Equip(userID, itemID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	meta, ok := s.catalog.Resolve(itemID)
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
	}
	if !meta.Equippable() {
		return "", errors.New(ErrMsgItemNotEquippable)
	}

	p := s.player(userID)
	if p.inv.Quantity(itemID) < 1 {
		return "", fmt.Errorf("%w: %s", domain.ErrInsufficientQuantity, itemID)
	}
	p.equipped = itemID

	return MsgItemEquipped, nil
}

// addItem credits quantity, appending a fresh entry at the end so snapshot
// order reflects acquisition order.
func addItem(p *playerState, itemID string, qty int) {
	for i := range p.inv {
		if p.inv[i].ItemID == itemID {
			p.inv[i].Quantity += qty
			return
		}
	}
	p.inv = append(p.inv, domain.InventoryEntry{ItemID: itemID, Quantity: qty})
}

// removeItem debits quantity and drops the entry once it hits zero.
// Callers check the held quantity first.
func removeItem(p *playerState, itemID string, qty int) {
	for i := range p.inv {
		if p.inv[i].ItemID != itemID {
			continue
		}
		p.inv[i].Quantity -= qty
		if p.inv[i].Quantity <= 0 {
			p.inv = append(p.inv[:i], p.inv[i+1:]...)
		}
		return
	}
}
