package domain

// ItemType is the structured type of an item as declared in the catalog.
type ItemType string

const (
	TypeWeapon      ItemType = "WEAPON"
	TypeArmor       ItemType = "ARMOR"
	TypeHelmet      ItemType = "HELMET"
	TypeBoots       ItemType = "BOOTS"
	TypeGloves      ItemType = "GLOVES"
	TypeOffHand     ItemType = "OFF_HAND"
	TypeCape        ItemType = "CAPE"
	TypeTool        ItemType = "TOOL"
	TypeToolAxe     ItemType = "TOOL_AXE"
	TypeToolPickaxe ItemType = "TOOL_PICKAXE"
	TypeToolKnife   ItemType = "TOOL_KNIFE"
	TypeToolSickle  ItemType = "TOOL_SICKLE"
	TypeToolRod     ItemType = "TOOL_ROD"
	TypeFood        ItemType = "FOOD"
	TypePotion      ItemType = "POTION"
	TypeMap         ItemType = "MAP"
	TypeResource    ItemType = "RESOURCE"
	TypeRaw         ItemType = "RAW"
	TypeRefined     ItemType = "REFINED"
)

// ValidItemTypes lists every type the catalog loader accepts.
var ValidItemTypes = map[ItemType]bool{
	TypeWeapon: true, TypeArmor: true, TypeHelmet: true, TypeBoots: true,
	TypeGloves: true, TypeOffHand: true, TypeCape: true, TypeTool: true,
	TypeToolAxe: true, TypeToolPickaxe: true, TypeToolKnife: true,
	TypeToolSickle: true, TypeToolRod: true, TypeFood: true, TypePotion: true,
	TypeMap: true, TypeResource: true, TypeRaw: true, TypeRefined: true,
}

// IsTool reports whether the type is the generic tool type or a sub-variant.
func (t ItemType) IsTool() bool {
	switch t {
	case TypeTool, TypeToolAxe, TypeToolPickaxe, TypeToolKnife, TypeToolSickle, TypeToolRod:
		return true
	}
	return false
}

// ItemMetadata is the static, catalog-owned description of an item.
// Instances are immutable once loaded; consumers receive copies.
type ItemMetadata struct {
	ID          string   `json:"id"`
	Tier        int      `json:"tier"`
	Quality     int      `json:"quality"` // 0 = no named quality
	Type        ItemType `json:"type"`
	Name        string   `json:"name"`
	RarityColor string   `json:"rarityColor,omitempty"`
}

// equipEligibleTypes is the set of types the equip action accepts.
// The two legacy client variants disagreed on this set; the canonical set is
// their union: all gear slots, tools including sub-variants, and food.
var equipEligibleTypes = map[ItemType]bool{
	TypeWeapon: true, TypeArmor: true, TypeHelmet: true, TypeBoots: true,
	TypeGloves: true, TypeOffHand: true, TypeCape: true, TypeTool: true,
	TypeToolAxe: true, TypeToolPickaxe: true, TypeToolKnife: true,
	TypeToolSickle: true, TypeToolRod: true, TypeFood: true,
}

// Equippable reports whether the item can be sent to the equip action.
func (m ItemMetadata) Equippable() bool {
	return equipEligibleTypes[m.Type]
}
