// Package catalog resolves item identifiers to their static metadata. The
// catalog is loaded once from a JSON config and immutable afterwards; an
// unresolved identifier is not an error, downstream views simply treat the
// item as invisible.
package catalog

import (
	"github.com/aldoria/market-client/internal/domain"
)

// Catalog is the immutable identifier -> metadata lookup.
type Catalog struct {
	items map[string]domain.ItemMetadata
	order []string
}

// NewCatalog builds a catalog from a validated config.
func NewCatalog(cfg *Config) *Catalog {
	c := &Catalog{
		items: make(map[string]domain.ItemMetadata, len(cfg.Items)),
		order: make([]string, 0, len(cfg.Items)),
	}
	for _, def := range cfg.Items {
		meta := domain.ItemMetadata{
			ID:          def.ID,
			Tier:        def.Tier,
			Quality:     def.Quality,
			Type:        domain.ItemType(def.Type),
			Name:        def.Name,
			RarityColor: def.RarityColor,
		}
		if meta.Name == "" {
			meta.Name = DisplayNameFromID(def.ID)
		}
		c.items[def.ID] = meta
		c.order = append(c.order, def.ID)
	}
	return c
}

// Resolve maps an item identifier to its metadata. The second return is false
// for unknown identifiers; callers must exclude those from every view rather
// than treating them as failures.
func (c *Catalog) Resolve(itemID string) (domain.ItemMetadata, bool) {
	meta, ok := c.items[itemID]
	return meta, ok
}

// Len returns the number of cataloged items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// IDs returns the catalog identifiers in config order.
func (c *Catalog) IDs() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// tierColors maps item tiers to their display color, tier 1 through 8.
var tierColors = []string{
	"#9d9d9d", // T1 gray
	"#ffffff", // T2 white
	"#1eff00", // T3 green
	"#0070dd", // T4 blue
	"#a335ee", // T5 purple
	"#ff8000", // T6 orange
	"#e6cc80", // T7 gold
	"#e268a8", // T8 pink
}

// TierColor returns the display color for a tier. Out-of-range tiers clamp
// to the nearest defined tier.
func TierColor(tier int) string {
	if tier < 1 {
		tier = 1
	}
	if tier > len(tierColors) {
		tier = len(tierColors)
	}
	return tierColors[tier-1]
}
