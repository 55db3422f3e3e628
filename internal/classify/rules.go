// Package classify derives coarse category buckets from an item's structured
// type and its raw identifier. Classification is deliberately a hybrid:
// equipment, food, and maps are typed, while raw and refined resources are
// recognized by naming convention over the identifier (substring tokens, not
// whole words). The token matching must stay exact to remain compatible with
// existing item identifiers.
package classify

import (
	"strings"

	"github.com/aldoria/market-client/internal/domain"
)

// Rule binds one category bucket to its matching predicate.
type Rule struct {
	Category domain.Category
	Matches  func(itemID string, meta domain.ItemMetadata) bool
}

// equipmentTypes is the gear type set for the inventory EQUIPMENT bucket.
// Tool sub-variants are included via the type itself, never by ID suffix.
var equipmentTypes = map[domain.ItemType]bool{
	domain.TypeWeapon: true, domain.TypeArmor: true, domain.TypeHelmet: true,
	domain.TypeBoots: true, domain.TypeGloves: true, domain.TypeOffHand: true,
	domain.TypeCape: true,
}

// Identifier suffix tokens recognized by naming convention.
var (
	rawTokens     = []string{"_WOOD", "_ORE", "_HIDE", "_FIBER", "_FISH"}
	refinedTokens = []string{"_PLANK", "_BAR", "_LEATHER", "_CLOTH"}
)

func containsAny(id string, tokens []string) bool {
	for _, tok := range tokens {
		if strings.Contains(id, tok) {
			return true
		}
	}
	return false
}

// Rules is the ordered rule table. Order matters only for First: rules are
// not mutually exclusive by construction, and an identifier matching two
// buckets must degrade predictably to the first one.
var Rules = []Rule{
	{domain.CategoryEquipment, func(_ string, meta domain.ItemMetadata) bool {
		return equipmentTypes[meta.Type] || meta.Type.IsTool()
	}},
	{domain.CategoryConsumable, func(id string, meta domain.ItemMetadata) bool {
		return meta.Type == domain.TypeFood || strings.Contains(id, "_FOOD")
	}},
	{domain.CategoryMap, func(_ string, meta domain.ItemMetadata) bool {
		return meta.Type == domain.TypeMap
	}},
	{domain.CategoryRaw, func(id string, _ domain.ItemMetadata) bool {
		return containsAny(id, rawTokens)
	}},
	{domain.CategoryRefined, func(id string, _ domain.ItemMetadata) bool {
		return containsAny(id, refinedTokens)
	}},
}

// Matches reports whether the item belongs to the given bucket. ALL matches
// everything. Pure function: same inputs always yield the same answer.
func Matches(cat domain.Category, itemID string, meta domain.ItemMetadata) bool {
	if cat == domain.CategoryAll {
		return true
	}
	for _, r := range Rules {
		if r.Category == cat {
			return r.Matches(itemID, meta)
		}
	}
	return false
}

// First returns the first bucket in rule order the item matches, or ALL when
// no specific rule applies.
func First(itemID string, meta domain.ItemMetadata) domain.Category {
	for _, r := range Rules {
		if r.Matches(itemID, meta) {
			return r.Category
		}
	}
	return domain.CategoryAll
}

// marketEquipmentTypes is the market taxonomy's equipment set. Unlike the
// inventory bucket it does not include tools; the market never lists them
// under equipment.
var marketEquipmentTypes = map[domain.ItemType]bool{
	domain.TypeWeapon: true, domain.TypeArmor: true, domain.TypeHelmet: true,
	domain.TypeBoots: true, domain.TypeOffHand: true, domain.TypeGloves: true,
	domain.TypeCape: true,
}

// MatchesMarket reports whether listed item metadata belongs to the given
// market-facing category. The market taxonomy is type-only: listings carry a
// metadata snapshot and the authority normalizes resource types on it.
func MatchesMarket(cat domain.MarketCategory, meta domain.ItemMetadata) bool {
	switch cat {
	case domain.MarketAll:
		return true
	case domain.MarketEquipment:
		return marketEquipmentTypes[meta.Type]
	case domain.MarketResource:
		return meta.Type == domain.TypeResource || meta.Type == domain.TypeRaw
	case domain.MarketRefined:
		return meta.Type == domain.TypeRefined
	case domain.MarketConsumable:
		return meta.Type == domain.TypeFood || meta.Type == domain.TypePotion
	}
	return false
}
