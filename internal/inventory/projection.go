// Package inventory turns the raw inventory snapshot into the filtered,
// ordered view the grid renders. The projection is recomputed from scratch on
// every snapshot refresh; it never mutates the snapshot and never re-sorts
// entries.
package inventory

import (
	"github.com/aldoria/market-client/internal/classify"
	"github.com/aldoria/market-client/internal/domain"
)

// Entry is one occupied slot of the projected view.
type Entry struct {
	ItemID   string
	Quantity int
	Meta     domain.ItemMetadata
}

// Resolver is the catalog lookup the projector depends on.
type Resolver interface {
	Resolve(itemID string) (domain.ItemMetadata, bool)
}

// Projector derives inventory views against a fixed slot capacity.
// Capacity 0 means the unbounded-grid deployment; any positive value caps
// the view at that many slots.
type Projector struct {
	catalog  Resolver
	capacity int
}

// NewProjector creates a projector. capacity < 0 is treated as unbounded.
func NewProjector(catalog Resolver, capacity int) *Projector {
	if capacity < 0 {
		capacity = 0
	}
	return &Projector{catalog: catalog, capacity: capacity}
}

// Capacity returns the configured slot capacity, 0 for unbounded.
func (p *Projector) Capacity() int {
	return p.capacity
}

// Project filters the snapshot down to visible entries: quantity > 0,
// identifier resolvable, category match. Snapshot order is preserved and the
// result is capped at the slot capacity.
func (p *Projector) Project(inv domain.Inventory, cat domain.Category) []Entry {
	entries := make([]Entry, 0, len(inv))
	for _, e := range inv {
		if e.Quantity <= 0 {
			continue
		}
		meta, ok := p.catalog.Resolve(e.ItemID)
		if !ok {
			continue
		}
		if !classify.Matches(cat, e.ItemID, meta) {
			continue
		}
		entries = append(entries, Entry{ItemID: e.ItemID, Quantity: e.Quantity, Meta: meta})
		if p.capacity > 0 && len(entries) == p.capacity {
			break
		}
	}
	return entries
}

// UsedSlots counts the snapshot entries that occupy a slot (visible under
// the ALL filter).
func (p *Projector) UsedSlots(inv domain.Inventory) int {
	n := 0
	for _, e := range inv {
		if e.Quantity <= 0 {
			continue
		}
		if _, ok := p.catalog.Resolve(e.ItemID); !ok {
			continue
		}
		n++
	}
	return n
}
