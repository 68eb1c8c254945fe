// Package inventory implements the party inventory and chest loot: typed item
// acquisition, consumable use, equipment, and weighted loot generation.
package inventory

import (
	"log/slog"
	"math/rand"

	"github.com/samdwyer/gridvale/internal/gamedata"
	"github.com/samdwyer/gridvale/internal/save"
)

// Engine operates on the save's inventory and chest state in place. It never
// panics on bad item ids; invalid operations are logged no-ops so a corrupt
// save or a typoed chest table can't crash a session.
type Engine struct {
	items  *gamedata.ItemRegistry
	inv    *save.InventoryState
	chests map[string]*save.ChestState
	rng    *rand.Rand
	logger *slog.Logger
}

// NewEngine wires the engine to the given save state.
func NewEngine(items *gamedata.ItemRegistry, inv *save.InventoryState, chests map[string]*save.ChestState, rng *rand.Rand, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{items: items, inv: inv, chests: chests, rng: rng, logger: logger}
}

// AddItem acquires an item by id, dispatching on its type: consumables stack,
// equipment lands in the unequipped pile and is recorded as obtained, and
// permanent upgrades become bonus tokens. Duplicate equipment and unknown ids
// are rejected.
func (e *Engine) AddItem(itemID string) bool {
	def := e.items.GetByID(itemID)
	if def == nil {
		e.logger.Warn("ignoring unknown item", "item", itemID)
		return false
	}

	switch def.Type {
	case gamedata.ItemConsumable:
		e.inv.Consumables[itemID]++
	case gamedata.ItemEquipment:
		if e.inv.HasObtained(itemID) {
			e.logger.Warn("ignoring duplicate equipment", "item", itemID)
			return false
		}
		e.inv.Obtained = append(e.inv.Obtained, itemID)
		e.inv.Unequipped = append(e.inv.Unequipped, itemID)
	case gamedata.ItemPermanentUpgrade:
		e.inv.BonusTokens++
	default:
		e.logger.Warn("ignoring item of unknown type", "item", itemID, "type", string(def.Type))
		return false
	}
	return true
}

// UseConsumable decrements a consumable's count and returns its definition
// for the caller to apply. Using an item the party doesn't hold is a no-op.
func (e *Engine) UseConsumable(itemID string) (*gamedata.ItemDef, bool) {
	if e.inv.Consumables[itemID] <= 0 {
		return nil, false
	}
	def := e.items.GetByID(itemID)
	if def == nil || def.Type != gamedata.ItemConsumable {
		e.logger.Warn("inventory holds a non-consumable under a consumable count", "item", itemID)
		return nil, false
	}
	e.inv.Consumables[itemID]--
	if e.inv.Consumables[itemID] == 0 {
		delete(e.inv.Consumables, itemID)
	}
	return def, true
}

// Equip moves a piece of equipment from the unequipped pile onto a hero,
// swapping out whatever the hero wore before.
func (e *Engine) Equip(hero *save.HeroProgressionState, itemID string) bool {
	def := e.items.GetByID(itemID)
	if def == nil || def.Type != gamedata.ItemEquipment {
		return false
	}

	idx := -1
	for i, id := range e.inv.Unequipped {
		if id == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	e.inv.Unequipped = append(e.inv.Unequipped[:idx], e.inv.Unequipped[idx+1:]...)
	if hero.EquippedItemID != "" {
		e.inv.Unequipped = append(e.inv.Unequipped, hero.EquippedItemID)
	}
	hero.EquippedItemID = itemID
	return true
}

// Unequip returns a hero's worn equipment to the unequipped pile.
func (e *Engine) Unequip(hero *save.HeroProgressionState) bool {
	if hero.EquippedItemID == "" {
		return false
	}
	e.inv.Unequipped = append(e.inv.Unequipped, hero.EquippedItemID)
	hero.EquippedItemID = ""
	return true
}

// SpendBonusToken consumes one banked upgrade token, adding its bonus to the
// hero permanently. Each token is worth one point of damage bonus.
func (e *Engine) SpendBonusToken(hero *save.HeroProgressionState) bool {
	if e.inv.BonusTokens <= 0 {
		return false
	}
	e.inv.BonusTokens--
	hero.DamageBonus++
	return true
}

// EquipmentBonuses returns the flat damage and defense contributions of a
// hero's worn equipment, for the battle layer to fold into unit stats.
func (e *Engine) EquipmentBonuses(hero *save.HeroProgressionState) (damage, defense int) {
	if hero.EquippedItemID == "" {
		return 0, 0
	}
	def := e.items.GetByID(hero.EquippedItemID)
	if def == nil {
		e.logger.Warn("hero wears unknown equipment", "item", hero.EquippedItemID)
		return 0, 0
	}
	switch def.Effect.Kind {
	case "damage_bonus":
		return def.Effect.Amount, 0
	case "defense_bonus":
		return 0, def.Effect.Amount
	}
	return 0, 0
}
