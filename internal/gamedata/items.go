package gamedata

// ItemType classifies an item for inventory bookkeeping and loot eligibility.
type ItemType string

const (
	ItemConsumable       ItemType = "consumable"
	ItemPermanentUpgrade ItemType = "permanent_upgrade"
	ItemEquipment        ItemType = "equipment"
)

// ItemEffect is a declarative effect descriptor. The engine interprets only
// the kinds below; unknown kinds are inert.
type ItemEffect struct {
	Kind   string `json:"kind"` // "heal", "restore_resource", "damage_bonus", "defense_bonus"
	Amount int    `json:"amount"`
}

// ItemDef defines an item loaded from JSON.
type ItemDef struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Type       ItemType   `json:"type"`
	Rarity     string     `json:"rarity"`
	Effect     ItemEffect `json:"effect"`
	LootWeight int        `json:"lootWeight"` // Relative chest-drop frequency; 0 removes the item from the pool
}

// ItemsFile represents the structure of items.json.
type ItemsFile struct {
	Items []ItemDef `json:"items"`
}

// LoadItems loads item definitions from the embedded items.json file.
func LoadItems() ([]ItemDef, error) {
	file, err := Load[ItemsFile]("items.json")
	if err != nil {
		return nil, err
	}
	return file.Items, nil
}
