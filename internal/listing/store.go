// Package listing holds the last broadcast snapshot of marketplace listings
// and derives the partitioned, filtered views the market tabs render.
package listing

import (
	"strings"
	"sync"

	"github.com/aldoria/market-client/internal/classify"
	"github.com/aldoria/market-client/internal/domain"
)

// Store keeps the latest listings snapshot. Snapshots are applied by
// wholesale replacement only: no merging, no incremental patching. That rule
// is what makes concurrent market actions by other players safe to observe.
type Store struct {
	mu       sync.RWMutex
	listings []domain.Listing
	byID     map[string]domain.Listing
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{byID: make(map[string]domain.Listing)}
}

// SetSnapshot replaces the full listing set. Applying the same snapshot
// twice is idempotent. Listings absent from the new snapshot disappear
// immediately, even if a request referencing them is still in flight.
func (s *Store) SetSnapshot(listings []domain.Listing) {
	next := make([]domain.Listing, len(listings))
	copy(next, listings)
	byID := make(map[string]domain.Listing, len(next))
	for _, l := range next {
		byID[l.ID] = l
	}

	s.mu.Lock()
	s.listings = next
	s.byID = byID
	s.mu.Unlock()
}

// Len returns the size of the current snapshot.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.listings)
}

// Get looks up a listing by ID in the current snapshot.
func (s *Store) Get(id string) (domain.Listing, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.byID[id]
	return l, ok
}

// Mine returns the listings owned by the given user, in snapshot order.
func (s *Store) Mine(userID string) []domain.Listing {
	return s.filter(func(l domain.Listing) bool { return l.SellerID == userID })
}

// Others returns the listings not owned by the given user, in snapshot order.
func (s *Store) Others(userID string) []domain.Listing {
	return s.filter(func(l domain.Listing) bool { return l.SellerID != userID })
}

// Search filters the Others partition by free-text query and market
// category. The query matches case-insensitively against the item identifier
// or its display name; the category applies the market taxonomy predicate.
// Both conditions must hold; an empty query or the ALL category passes
// everything through.
func (s *Store) Search(userID, query string, cat domain.MarketCategory) []domain.Listing {
	q := strings.ToLower(query)
	return s.filter(func(l domain.Listing) bool {
		if l.SellerID == userID {
			return false
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(l.ItemID), q) &&
			!strings.Contains(strings.ToLower(l.ItemData.Name), q) {
			return false
		}
		return classify.MatchesMarket(cat, l.ItemData)
	})
}

func (s *Store) filter(keep func(domain.Listing) bool) []domain.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Listing, 0, len(s.listings))
	for _, l := range s.listings {
		if keep(l) {
			out = append(out, l)
		}
	}
	return out
}
