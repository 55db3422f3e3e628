package domain

// Category is the coarse bucket used to filter the inventory view.
type Category string

const (
	CategoryAll        Category = "ALL"
	CategoryEquipment  Category = "EQUIPMENT"
	CategoryRaw        Category = "RAW"
	CategoryRefined    Category = "REFINED"
	CategoryConsumable Category = "CONSUMABLE"
	CategoryMap        Category = "MAP"
)

// InventoryCategories lists the filter buckets the inventory view offers,
// in display order.
var InventoryCategories = []Category{
	CategoryAll, CategoryEquipment, CategoryRaw, CategoryRefined,
	CategoryConsumable, CategoryMap,
}

// MarketCategory is the market-facing filter taxonomy. It is coarser than
// the inventory buckets: the market groups raw resources under RESOURCE and
// widens consumables to include potions.
type MarketCategory string

const (
	MarketAll        MarketCategory = "ALL"
	MarketEquipment  MarketCategory = "EQUIPMENT"
	MarketResource   MarketCategory = "RESOURCE"
	MarketRefined    MarketCategory = "REFINED"
	MarketConsumable MarketCategory = "CONSUMABLE"
)

// MarketCategories lists the market filter buckets in display order.
var MarketCategories = []MarketCategory{
	MarketAll, MarketEquipment, MarketResource, MarketRefined, MarketConsumable,
}
