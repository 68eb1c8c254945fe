// Package save defines the persisted game state and its SQLite-backed store.
// The engine packages read and return these structures but never persist them
// directly; the shell owns the store.
package save

import "time"

// HeroID identifies a hero template across battles and saves.
type HeroID string

// HeroProgressionState is the persisted, cross-battle state of one hero.
// TotalXP only grows; Level is always derivable from TotalXP via the level
// table and is stored redundantly for display and migration checks.
type HeroProgressionState struct {
	TotalXP         int    `json:"totalXp"`
	Level           int    `json:"level"`
	CurrentHP       int    `json:"currentHp"`
	CurrentResource int    `json:"currentResource"`
	EquippedItemID  string `json:"equippedItemId,omitempty"`
	DamageBonus     int    `json:"damageBonus"`
}

// InventoryState is the party's shared inventory.
type InventoryState struct {
	// Consumables maps item id to count.
	Consumables map[string]int `json:"consumables"`
	// Unequipped holds owned equipment not currently worn by anyone.
	Unequipped []string `json:"unequipped"`
	// Obtained records every equipment id ever acquired; loot generation
	// excludes these so equipment drops at most once per save.
	Obtained []string `json:"obtained"`
	// BonusTokens counts unspent permanent-upgrade pickups.
	BonusTokens int `json:"bonusTokens"`
}

// ChestState records a single chest's lifecycle. Contents are fixed the first
// time they are determined and never re-rolled.
type ChestState struct {
	Opened   bool     `json:"opened"`
	Contents []string `json:"contents,omitempty"`
}

// SaveData is one save slot. MapID and the party position locate the party in
// the world; a position that no longer exists on the named map is discarded on
// load in favor of the map's start position.
type SaveData struct {
	Slot        int                              `json:"slot"`
	ActiveHero  HeroID                           `json:"activeHero"`
	MapID       string                           `json:"mapId"`
	PartyX      int                              `json:"partyX"`
	PartyY      int                              `json:"partyY"`
	PlaySeconds int64                            `json:"playSeconds"`
	Heroes      map[HeroID]*HeroProgressionState `json:"heroes"`
	Inventory   InventoryState                   `json:"inventory"`
	Chests      map[string]*ChestState           `json:"chests"`
	Flags       map[string]bool                  `json:"flags"`
	SavedAt     string                           `json:"savedAt"` // RFC 3339
}

// StartingHeroes is the roster a fresh save begins with.
var StartingHeroes = []HeroID{"aldric", "mira", "tessai"}

// DefaultSave builds a fresh slot with the starting roster at level 1.
// Per-hero vitals are zeroed here; Migrate fills them from the level tables
// the first time the slot is loaded into a party.
func DefaultSave(slot int) *SaveData {
	data := &SaveData{
		Slot:       slot,
		ActiveHero: StartingHeroes[0],
		Heroes:     make(map[HeroID]*HeroProgressionState, len(StartingHeroes)),
		Inventory: InventoryState{
			Consumables: make(map[string]int),
		},
		Chests:  make(map[string]*ChestState),
		Flags:   make(map[string]bool),
		SavedAt: time.Now().UTC().Format(time.RFC3339),
	}
	for _, id := range StartingHeroes {
		data.Heroes[id] = &HeroProgressionState{Level: 1}
	}
	return data
}

// Migrate backfills missing or zero fields with safe defaults so no component
// ever observes a partially-initialized save. It never fails: unknown fields
// were already dropped at decode time, and every absent field has a documented
// default here.
func Migrate(data *SaveData) {
	if data.Heroes == nil {
		data.Heroes = make(map[HeroID]*HeroProgressionState)
	}
	for _, h := range data.Heroes {
		if h.Level < 1 {
			h.Level = 1
		}
		if h.TotalXP < 0 {
			h.TotalXP = 0
		}
		if h.CurrentHP < 0 {
			h.CurrentHP = 0
		}
		if h.CurrentResource < 0 {
			h.CurrentResource = 0
		}
	}
	if _, ok := data.Heroes[data.ActiveHero]; !ok {
		data.ActiveHero = ""
		for _, id := range StartingHeroes {
			if _, ok := data.Heroes[id]; ok {
				data.ActiveHero = id
				break
			}
		}
	}
	if data.PlaySeconds < 0 {
		data.PlaySeconds = 0
	}
	if data.Inventory.Consumables == nil {
		data.Inventory.Consumables = make(map[string]int)
	}
	if data.Chests == nil {
		data.Chests = make(map[string]*ChestState)
	}
	if data.Flags == nil {
		data.Flags = make(map[string]bool)
	}
	if data.SavedAt == "" {
		data.SavedAt = time.Now().UTC().Format(time.RFC3339)
	}
}

// HasObtained reports whether the equipment id was ever acquired on this save.
func (inv *InventoryState) HasObtained(itemID string) bool {
	for _, id := range inv.Obtained {
		if id == itemID {
			return true
		}
	}
	return false
}
