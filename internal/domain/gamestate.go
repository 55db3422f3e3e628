package domain

// InventoryEntry is one (item, quantity) pair of the player's inventory
// snapshot. Quantities are never negative; entries with quantity <= 0 are
// not materialized in any derived view.
type InventoryEntry struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// Inventory is the ordered inventory snapshot. The authority serializes it
// as an array so insertion order survives the wire; views must preserve that
// order and never re-sort.
type Inventory []InventoryEntry

// Quantity returns the held quantity for an item, or 0 when absent.
func (inv Inventory) Quantity(itemID string) int {
	for _, e := range inv {
		if e.ItemID == itemID {
			return e.Quantity
		}
	}
	return 0
}

// GameState is the authority's full view of the player: balance, inventory
// and pending claims. It is wholesale-replaced on every authoritative update;
// the client never merges partial diffs and never computes silver locally.
type GameState struct {
	UserID    string    `json:"user_id"`
	Silver    int       `json:"silver"`
	Inventory Inventory `json:"inventory"`
	Claims    []Claim   `json:"claims"`
}
